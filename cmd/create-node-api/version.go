package main

import (
	"go.eggybyte.com/create-node-api/internal/version"
)

// There is no version subcommand: the first positional argument is always
// the project name, and "version" is a valid one.
func init() {
	rootCmd.Version = version.GetFullVersionInfo()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}
