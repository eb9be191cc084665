// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"os"

	"github.com/robokit/roboutil/cmd/roboutil/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
