// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/robokit/roboutil/cliout"
	"github.com/robokit/roboutil/logutil"
	"github.com/robokit/roboutil/version"
)

var (
	debugFlag    bool
	outputFormat string
)

// NewRootCommand builds the roboutil command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "roboutil",
		Short:         "Filesystem and path utilities",
		Long:          "roboutil exposes the roboutil library's path and directory operations as a command line tool.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logutil.SetupLogger(debugFlag || logutil.IsDebugEnabled(), outputFormat == "json")
			cmd.Flags().Visit(func(f *pflag.Flag) {
				logutil.Debug("flag set", "name", f.Name, "value", f.Value.String())
			})
		},
	}

	root.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format (default, json, yaml)")

	root.AddCommand(
		newMkdirsCommand(),
		newRmCommand(),
		newTempdirCommand(),
		newStatCommand(),
		newCwdCommand(),
		newFindlibCommand(),
		version.NewCommand(version.New("roboutil"), &outputFormat),
	)
	return root
}

// Execute runs the root command, reporting errors on stderr.
func Execute() error {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		cliout.Error("%v", err)
		return err
	}
	return nil
}
