/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/samsonasik/mezzio-hal/apis"
)

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the entries of a metadata map file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mm, err := c.load()
			if err != nil {
				return err
			}

			headers := []string{"TYPE", "KIND", "TARGET", "RELATION"}
			rows := make([][]string, 0, mm.Count())
			for _, md := range mm.Entries() {
				rows = append(rows, []string{md.TypeID(), apis.KindName(apis.KindOf(md)), target(md), relation(md)})
			}
			c.table(headers, rows)
			return nil
		},
	}
}

// target is the route name or URL the self link of md is built from.
func target(md apis.Metadata) string {
	switch t := md.(type) {
	case interface{ Route() string }:
		return "route:" + t.Route()
	case interface{ URL() string }:
		return t.URL()
	}
	return "-"
}

func relation(md apis.Metadata) string {
	if cmd, ok := md.(apis.CollectionMetadata); ok {
		return cmd.CollectionRelation()
	}
	return "-"
}

func (c *cli) table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	bold := color.New(color.Bold, color.FgCyan)
	if c.noColor() {
		bold.DisableColor()
	}
	for i, h := range headers {
		bold.Fprint(c.out, pad(h, widths[i], i == len(headers)-1))
	}
	fmt.Fprintln(c.out)
	for _, row := range rows {
		for i, cell := range row {
			fmt.Fprint(c.out, pad(cell, widths[i], i == len(row)-1))
		}
		fmt.Fprintln(c.out)
	}
}

func pad(s string, width int, last bool) string {
	if last {
		return s
	}
	return s + strings.Repeat(" ", width-len(s)+2)
}
