// Package scaffold persists a composed project to a file system.
//
// Overview:
//   - Responsibility: Preflight the target directory, create the skeleton, write artifacts
//   - Key Types: FileSystem capability, Generator, Result
//   - Concurrency Model: Sequential; one file at a time, no locking between runs
//   - Error Semantics: errors.CodeAlreadyExists before any write, errors.CodeWriteFailed
//     with Op = artifact path on the first failed write; earlier files are not removed
//   - Performance Notes: Artifacts are rendered in memory before the first write
//
// Usage:
//
//	gen := scaffold.NewGenerator(projectfs.NewOS(".", logger), scaffold.WithLogger(logger))
//	result, err := gen.Run(ctx, cfg)
package scaffold

import (
	"context"
	"path"

	"go.eggybyte.com/create-node-api/internal/composer"
	"go.eggybyte.com/create-node-api/internal/configschema"
	"go.eggybyte.com/create-node-api/internal/errors"
	"go.eggybyte.com/create-node-api/internal/log"
)

// Skeleton lists the directories created in every project, whatever the options.
var Skeleton = []string{"config", "controller", "middleware", "routes", "template"}

// FileSystem is the file-system capability the scaffolder writes through.
// Paths are slash-separated and relative to the file-system root.
type FileSystem interface {
	Exists(name string) (bool, error)
	EnsureDir(name string) error
	WriteFile(name, content string) error
}

// ComposeFunc renders the artifacts of a configuration.
type ComposeFunc func(configschema.Config) ([]composer.Artifact, error)

// Generator writes projects through a FileSystem.
//
// Parameters:
//   - fs: Target file system
//   - logger: Structured logger for progress
//   - compose: Artifact source, composer.Compose by default
//
// Concurrency:
//   - Not safe for concurrent runs against the same directory
type Generator struct {
	fs      FileSystem
	logger  log.Logger
	compose ComposeFunc
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithComposer replaces the artifact source.
func WithComposer(fn ComposeFunc) Option {
	return func(g *Generator) {
		if fn != nil {
			g.compose = fn
		}
	}
}

// NewGenerator creates a generator writing through fs.
func NewGenerator(fs FileSystem, opts ...Option) *Generator {
	g := &Generator{
		fs:      fs,
		logger:  log.Nop(),
		compose: composer.Compose,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Result describes a completed run.
type Result struct {
	// Dir is the project directory relative to the file-system root.
	Dir string `json:"dir"`
	// Files lists the written artifact paths relative to Dir, in write order.
	Files []string `json:"files"`
}

// Preflight checks that dir does not exist, then creates it and the skeleton.
//
// Parameters:
//   - fs: Target file system
//   - dir: Project directory
//
// Returns:
//   - error: errors.CodeAlreadyExists if dir exists; errors.CodeWriteFailed on mkdir failure
func Preflight(fs FileSystem, dir string) error {
	exists, err := fs.Exists(dir)
	if err != nil {
		return err
	}
	if exists {
		return errors.Newf(errors.CodeAlreadyExists, "directory %q already exists", dir)
	}

	if err := fs.EnsureDir(dir); err != nil {
		return err
	}
	for _, sub := range Skeleton {
		if err := fs.EnsureDir(path.Join(dir, sub)); err != nil {
			return err
		}
	}
	return nil
}

// Run composes cfg and writes the project into cfg.ProjectName.
//
// Parameters:
//   - ctx: Checked before the skeleton is created and before each write
//   - cfg: Validated configuration
//
// Returns:
//   - *Result: Written files, also on partial failure
//   - error: Preflight, compose, write, or cancellation error
func (g *Generator) Run(ctx context.Context, cfg configschema.Config) (*Result, error) {
	dir := cfg.ProjectName
	result := &Result{Dir: dir}
	logger := g.logger.With("project", dir)

	artifacts, err := g.compose(cfg)
	if err != nil {
		return result, err
	}

	if err := ctx.Err(); err != nil {
		return result, errors.Wrap(errors.CodeCanceled, dir, err)
	}
	if err := Preflight(g.fs, dir); err != nil {
		return result, err
	}
	logger.Debug("project skeleton created", log.Int("dirs", len(Skeleton)))

	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrap(errors.CodeCanceled, a.Path, err)
		}
		if err := g.fs.WriteFile(path.Join(dir, a.Path), a.Content); err != nil {
			logger.Error(err, "artifact write failed", log.Str("path", a.Path), log.Int("written", len(result.Files)))
			return result, errors.Wrap(errors.CodeWriteFailed, a.Path, causeOf(err))
		}
		result.Files = append(result.Files, a.Path)
	}

	logger.Info("project created", log.Int("files", len(result.Files)))
	return result, nil
}

// causeOf strips the file-system layer's own wrapping so the artifact path is
// reported once.
func causeOf(err error) error {
	var e *errors.E
	if errors.As(err, &e) && e.Err != nil {
		return e.Err
	}
	return err
}
