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

func newRmCommand() *cobra.Command {
	var recursive bool
	cmd := &cobra.Command{
		Use:   "rm <path>...",
		Short: "Remove files and directories",
		Long: "Remove a file or an empty directory. With --recursive, remove a " +
			"directory and everything beneath it; entries deleted before a " +
			"failure stay deleted.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				p := fspath.New(arg)
				logutil.Debug("removing", "path", p.String(), "recursive", recursive)

				var ok bool
				if recursive {
					ok = fspath.RemoveAll(p)
				} else {
					ok = fspath.Remove(p)
				}
				if !ok {
					return fmt.Errorf("could not remove %s", p.String())
				}
				cliout.Success("%s", p.String())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Remove directories and their contents recursively")
	return cmd
}
