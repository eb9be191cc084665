// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robokit/roboutil/cliout"
	"github.com/robokit/roboutil/fspath"
	"github.com/robokit/roboutil/logutil"
)

func newMkdirsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdirs <path>...",
		Short: "Create directories, including missing parents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				p := fspath.New(arg)
				logutil.Debug("creating directories", "path", p.String())
				if !fspath.CreateDirectories(p) {
					return fmt.Errorf("could not create directory %s", p.String())
				}
				cliout.Success("%s", p.String())
			}
			return nil
		},
	}
}
