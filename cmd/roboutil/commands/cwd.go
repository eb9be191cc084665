// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robokit/roboutil/fspath"
)

func newCwdCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cwd",
		Short: "Print the current working directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := fspath.CurrentPath()
			if err != nil {
				return err
			}
			fmt.Println(cwd.String())
			return nil
		},
	}
}
