// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package envutil

import (
	"fmt"
	"os"
)

// Get returns the value of the named environment variable, or the empty
// string if the variable is unset. An empty value and an unset variable are
// indistinguishable; callers that need the distinction should use os.LookupEnv.
func Get(name string) string {
	return os.Getenv(name)
}

// GetDefault returns the value of the named environment variable, or
// fallback if the variable is unset or empty.
func GetDefault(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// Set sets the named environment variable for the current process.
func Set(name, value string) error {
	if err := os.Setenv(name, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", name, err)
	}
	return nil
}

// Unset removes the named environment variable from the current process.
func Unset(name string) error {
	if err := os.Unsetenv(name); err != nil {
		return fmt.Errorf("failed to unset %s: %w", name, err)
	}
	return nil
}
