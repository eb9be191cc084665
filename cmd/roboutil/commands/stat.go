// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/robokit/roboutil/cliout"
	"github.com/robokit/roboutil/fspath"
	"github.com/robokit/roboutil/logutil"
)

// statResult is the serializable shape of one stat query.
type statResult struct {
	Path        string  `json:"path" yaml:"path"`
	Exists      bool    `json:"exists" yaml:"exists"`
	Directory   bool    `json:"directory" yaml:"directory"`
	RegularFile bool    `json:"regularFile" yaml:"regularFile"`
	SizeBytes   *uint64 `json:"sizeBytes,omitempty" yaml:"sizeBytes,omitempty"`
	Absolute    bool    `json:"absolute" yaml:"absolute"`
	Parent      string  `json:"parent" yaml:"parent"`
	Filename    string  `json:"filename" yaml:"filename"`
	Extension   string  `json:"extension,omitempty" yaml:"extension,omitempty"`
}

func newStatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stat <path>",
		Short: "Show existence, type, size and decomposition of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := fspath.New(args[0])

			result := statResult{
				Path:        p.String(),
				Exists:      fspath.Exists(p),
				Directory:   fspath.IsDirectory(p),
				RegularFile: fspath.IsRegularFile(p),
				Absolute:    p.IsAbsolute(),
				Parent:      p.Parent().String(),
				Filename:    p.Filename().String(),
				Extension:   p.Extension().String(),
			}
			if result.RegularFile {
				size, err := fspath.FileSize(p)
				if err != nil {
					logutil.Warn("could not read file size", "path", p.String(), "error", err)
				} else {
					result.SizeBytes = &size
				}
			}

			switch outputFormat {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			case "yaml":
				enc := yaml.NewEncoder(os.Stdout)
				defer func() { _ = enc.Close() }()
				return enc.Encode(result)
			default:
				cliout.Header(result.Path)
				cliout.Label("Exists", fmt.Sprintf("%v", result.Exists))
				cliout.Label("Directory", fmt.Sprintf("%v", result.Directory))
				cliout.Label("Regular file", fmt.Sprintf("%v", result.RegularFile))
				if result.SizeBytes != nil {
					cliout.Label("Size", fmt.Sprintf("%d bytes", *result.SizeBytes))
				}
				cliout.Label("Absolute", fmt.Sprintf("%v", result.Absolute))
				cliout.Label("Parent", result.Parent)
				cliout.Label("Filename", result.Filename)
				if result.Extension != "" {
					cliout.Label("Extension", result.Extension)
				}
				return nil
			}
		},
	}
}
