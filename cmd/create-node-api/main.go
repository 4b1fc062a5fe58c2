// Package main provides the create-node-api CLI entry point.
//
// Overview:
//   - Responsibility: Parse flags, collect answers, scaffold the project
//   - Key Types: Cobra root command
//   - Concurrency Model: Single goroutine; interrupts cancel the run context
//   - Error Semantics: Errors are printed once and exit with status 1
//
// Usage:
//
//	create-node-api [project-name] [flags]
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"go.eggybyte.com/create-node-api/internal/ui"
)

var (
	verbose        bool
	nonInteractive bool
	jsonOutput     bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "create-node-api [project-name]",
	Short: "Generate a Node.js Express API template with customizable features",
	Long: `Generate a Node.js Express API project with customizable features.

The generated project can include:
- MongoDB connection with Mongoose
- Winston logging and Morgan HTTP request logging
- Global error handling middleware
- CORS
- README and .gitignore

Answers are collected interactively, from a YAML answers file (--config),
or taken from the defaults (--yes).`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetVerbose(verbose)
		ui.SetJSONOutput(jsonOutput)
	},
	RunE: runCreate,
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.Error("Error creating project: %v", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Accept every default without prompting")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	addCreateFlags(rootCmd)
}

func main() {
	Execute()
}
