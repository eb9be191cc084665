// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robokit/roboutil/fspath"
)

func newTempdirCommand() *cobra.Command {
	var create bool
	var base string
	cmd := &cobra.Command{
		Use:   "tempdir",
		Short: "Print the temporary directory path",
		Long: "Print the platform's base directory for temporary entries. With " +
			"--create, atomically create a uniquely named directory inside it " +
			"and print the new path instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !create {
				fmt.Println(fspath.TempDirectoryPath().String())
				return nil
			}
			dir, err := fspath.CreateTempDirectory(base, fspath.TempDirectoryPath())
			if err != nil {
				return err
			}
			fmt.Println(dir.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&create, "create", false, "Create a unique directory under the temp path")
	cmd.Flags().StringVar(&base, "base", "roboutil", "Base name for the created directory")
	return cmd
}
