package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"go.eggybyte.com/create-node-api/internal/composer"
	"go.eggybyte.com/create-node-api/internal/configschema"
	"go.eggybyte.com/create-node-api/internal/errors"
	"go.eggybyte.com/create-node-api/internal/log"
	"go.eggybyte.com/create-node-api/internal/logx"
	"go.eggybyte.com/create-node-api/internal/projectfs"
	"go.eggybyte.com/create-node-api/internal/scaffold"
	"go.eggybyte.com/create-node-api/internal/survey"
	"go.eggybyte.com/create-node-api/internal/ui"
)

// createOptions holds the flags of the root command.
type createOptions struct {
	configFile string
	yes        bool
	dir        string
	dryRun     bool
}

var createOpts createOptions

func addCreateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&createOpts.configFile, "config", "c", "", "Read answers from a YAML file instead of prompting")
	cmd.Flags().BoolVarP(&createOpts.yes, "yes", "y", false, "Accept every default without prompting")
	cmd.Flags().StringVar(&createOpts.dir, "dir", ".", "Parent directory of the project")
	cmd.Flags().BoolVar(&createOpts.dryRun, "dry-run", false, "List the files that would be generated without writing them")
}

// runCreate executes the root command.
func runCreate(cmd *cobra.Command, args []string) error {
	projectName := ""
	if len(args) > 0 {
		projectName = args[0]
	}

	opts := createOpts
	opts.yes = opts.yes || nonInteractive

	logger := newLogger(cmd.ErrOrStderr())
	return create(cmd.Context(), opts, projectName, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
}

func newLogger(w io.Writer) log.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	format := logx.FormatLogfmt
	if jsonOutput {
		format = logx.FormatJSON
	}
	return logx.New(
		logx.WithWriter(w),
		logx.WithLevel(level),
		logx.WithFormat(format),
		logx.WithColorAuto(),
	)
}

// create collects answers, validates them and scaffolds or lists the project.
func create(ctx context.Context, opts createOptions, projectName string, in io.Reader, out io.Writer, logger log.Logger) error {
	ui.Banner("🚀 Welcome to Node.js Express API Template Generator!")

	answers, err := collectAnswers(ctx, opts, projectName, in, out)
	if err != nil {
		return err
	}
	if answers.UseMorganLogging && !answers.UseLogger {
		ui.Warning("Morgan HTTP logging requires the Winston logger; config/morgan.js will not be generated")
	}

	cfg, err := configschema.Validate(answers)
	if err != nil {
		return err
	}
	logger.Debug("configuration accepted", "project", cfg.ProjectName, "mongodb", cfg.UseMongoDB,
		"logger", cfg.UseLogger, "morgan", cfg.MorganEnabled())

	if opts.dryRun {
		return dryRun(cfg)
	}

	ui.Info("Creating project in %s", filepath.Join(opts.dir, cfg.ProjectName))
	pfs := projectfs.NewOS(opts.dir, logger)
	gen := scaffold.NewGenerator(pfs, scaffold.WithLogger(logger))
	result, err := gen.Run(ctx, cfg)
	if err != nil {
		reportLeftovers(pfs, cfg.ProjectName, err)
		return err
	}

	ui.SuccessWithData(result, "Project %q created successfully!", cfg.ProjectName)
	printNextSteps(cfg)
	return nil
}

func collectAnswers(ctx context.Context, opts createOptions, projectName string, in io.Reader, out io.Writer) (configschema.Answers, error) {
	if opts.configFile != "" {
		ui.Debug("Reading answers from %s", opts.configFile)
		return configschema.LoadAnswers(opts.configFile, projectName)
	}

	prompter := ui.NewPrompter(in, out, ui.WithNonInteractive(opts.yes), ui.WithContext(ctx))
	return survey.Ask(prompter, projectName)
}

func dryRun(cfg configschema.Config) error {
	artifacts, err := composer.Compose(cfg)
	if err != nil {
		return err
	}

	files := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		files = append(files, a.Path)
	}

	ui.SuccessWithData(files, "Dry run: %d files would be written to %s/", len(artifacts), cfg.ProjectName)
	for _, a := range artifacts {
		ui.Plain("  %s (%d bytes)", a.Path, len(a.Content))
	}
	return nil
}

// reportLeftovers tells the user what a failed or interrupted run left on disk.
// Nothing is removed.
func reportLeftovers(pfs *projectfs.ProjectFS, dir string, err error) {
	if !errors.IsCode(err, errors.CodeWriteFailed) && !errors.IsCode(err, errors.CodeCanceled) {
		return
	}
	exists, statErr := pfs.Exists(dir)
	if statErr != nil || !exists {
		return
	}
	files, listErr := pfs.ListFiles(dir)
	if listErr != nil {
		return
	}
	ui.Warning("%d files were written to %s before the run stopped; they were not removed", len(files), dir)
	for _, f := range files {
		ui.Plain("  %s", f)
	}
}

func printNextSteps(cfg configschema.Config) {
	ui.Plain("")
	ui.Heading("Next steps:")
	ui.Step(1, "cd %s", cfg.ProjectName)
	ui.Step(2, "npm install")
	ui.Step(3, "Create a .env file from `.env.example` (important!)")
	ui.Step(4, "npm start")
	ui.Banner("Happy coding! 🎉")
}
