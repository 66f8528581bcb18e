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
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/samsonasik/mezzio-hal/apis"
	"github.com/samsonasik/mezzio-hal/config"
	"github.com/samsonasik/mezzio-hal/registry"
)

// cli carries the state shared by the subcommands.
type cli struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
	logger *zap.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{v: viper.New(), out: out, errOut: errOut, logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "halmap",
		Short: "Inspect HAL metadata map files",
		Long: `halmap loads a metadata map file (YAML, JSON or TOML) the way the
HAL generator does and reports what it describes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = c.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "hal.yaml", "metadata map file")
	flags.String("key", config.DefaultMetadataKey, "configuration key holding the metadata list")
	flags.BoolP("verbose", "v", false, "log debug output")
	flags.Bool("no-color", false, "disable colored output")
	_ = c.v.BindPFlags(flags)

	c.v.SetEnvPrefix("HALMAP")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	rootCmd.AddCommand(c.validateCmd(), c.listCmd())
	return rootCmd
}

func (c *cli) setup() error {
	if !c.v.GetBool("verbose") {
		return nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	c.logger = logger
	return nil
}

// load reads the configured file into a metadata map.
func (c *cli) load() (apis.MetadataMap, error) {
	path, key := c.v.GetString("config"), c.v.GetString("key")
	c.logger.Debug("loading metadata map", zap.String("path", path), zap.String("key", key))

	mds, err := config.LoadMetadataFile(path, key)
	if err != nil {
		return nil, err
	}
	mm := registry.New()
	if err := config.Populate(mm, mds); err != nil {
		return nil, err
	}
	c.logger.Debug("metadata map loaded", zap.Int("entries", mm.Count()))
	return mm, nil
}

func (c *cli) noColor() bool {
	return c.v.GetBool("no-color")
}
