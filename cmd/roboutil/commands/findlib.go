// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robokit/roboutil/dylib"
	"github.com/robokit/roboutil/logutil"
)

func newFindlibCommand() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "findlib <name>",
		Short: "Locate a shared library on the loader search path",
		Long: "Resolve a bare library name (e.g. \"m\" for libm) to a full path " +
			"by probing the platform's dynamic loader search path, or a single " +
			"directory when --dir is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			logutil.Debug("searching for library", "name", name, "filename", dylib.FilenameForLibrary(name))

			var found string
			if dir != "" {
				found = dylib.PathForLibrary(dir, name)
			} else {
				found = dylib.FindLibrary(name)
			}
			if found == "" {
				return fmt.Errorf("library %s not found", name)
			}
			fmt.Println(found)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Search only this directory")
	return cmd
}
