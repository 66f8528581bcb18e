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
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/samsonasik/mezzio-hal/apis"
	"github.com/samsonasik/mezzio-hal/builder"
	"github.com/samsonasik/mezzio-hal/config"
	"github.com/samsonasik/mezzio-hal/extractor"
)

func (c *cli) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a metadata map file",
		Long: `Load the metadata map file and check that every entry has a strategy
for its kind and names a known extractor.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mm, err := c.load()
			if err != nil {
				return err
			}

			problems := validate(mm)
			for _, p := range problems {
				c.fail(p)
			}
			if len(problems) > 0 {
				return errors.Newf("%d invalid metadata entries", len(problems))
			}

			green := color.New(color.FgGreen, color.Bold)
			if c.noColor() {
				green.DisableColor()
			}
			green.Fprintf(c.out, "✓ %d metadata entries valid\n", mm.Count())
			return nil
		},
	}
}

// validate returns one message per entry without a strategy or with an
// unknown extractor.
func validate(mm apis.MetadataMap) []string {
	strategies := builder.New().BuildStrategies(config.DefaultConfig(), nil)
	extractors := extractor.NewDefault()

	var problems []string
	for _, md := range mm.Entries() {
		if _, ok := strategies.Lookup(reflect.TypeOf(md)); !ok {
			problems = append(problems, fmt.Sprintf("%s: no strategy for %s", md.TypeID(), apis.KindName(apis.KindOf(md))))
		}
		if ex, ok := md.(interface{ Extractor() string }); ok && !extractors.Has(ex.Extractor()) {
			problems = append(problems, fmt.Sprintf("%s: unknown extractor %q", md.TypeID(), ex.Extractor()))
		}
	}
	return problems
}

func (c *cli) fail(msg string) {
	red := color.New(color.FgRed, color.Bold)
	if c.noColor() {
		red.DisableColor()
	}
	red.Fprintf(c.errOut, "✗ %s\n", msg)
	c.logger.Debug("validation failure", zap.String("message", msg))
}
