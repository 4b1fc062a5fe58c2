// Package composer turns a validated configuration into the files of an Express API project.
//
// Overview:
//   - Responsibility: Produce the ordered list of artifacts for one configuration
//   - Key Types: Artifact, Composer
//   - Concurrency Model: Pure functions over an immutable template set
//   - Error Semantics: Only template render failures, reported as errors.CodeInternal
//   - Performance Notes: Everything is rendered in memory; nothing touches disk
//
// Usage:
//
//	artifacts, err := composer.Compose(cfg)
//	for _, a := range artifacts {
//		fmt.Println(a.Path, len(a.Content))
//	}
package composer

import (
	"sync"

	"go.eggybyte.com/create-node-api/internal/configschema"
	"go.eggybyte.com/create-node-api/internal/templates"
)

// Artifact is one generated file.
type Artifact struct {
	// Path is slash-separated and relative to the project root.
	Path    string
	Content string
}

// Composer renders artifacts from the embedded templates.
//
// Concurrency:
//   - Safe for concurrent use
type Composer struct {
	loader *templates.Loader
}

// New creates a composer over the embedded template set.
func New() (*Composer, error) {
	loader, err := templates.NewLoader()
	if err != nil {
		return nil, err
	}
	return &Composer{loader: loader}, nil
}

var defaultComposer = sync.OnceValues(New)

// Compose renders the artifacts for cfg with the shared default composer.
func Compose(cfg configschema.Config) ([]Artifact, error) {
	c, err := defaultComposer()
	if err != nil {
		return nil, err
	}
	return c.Compose(cfg)
}

type renderFunc func(*Composer, configschema.Config) (string, error)

type generator struct {
	path    string
	enabled func(configschema.Config) bool
	render  renderFunc
}

// generators is the artifact order of every run.
var generators = []generator{
	{"package.json", always, func(_ *Composer, cfg configschema.Config) (string, error) { return Manifest(cfg) }},
	{"server.js", always, (*Composer).ServerEntry},
	{"config/db.js", withMongoDB, fromTemplate("db.js.tmpl")},
	{"config/logger.js", withLogger, fromTemplate("logger.js.tmpl")},
	{"config/morgan.js", configschema.Config.MorganEnabled, fromTemplate("morgan.js.tmpl")},
	{"middleware/error-handler.js", withErrorHandler, fromTemplate("error-handler.js.tmpl")},
	{"template/response.js", always, fromTemplate("response.js.tmpl")},
	{"controller/test.js", always, fromTemplate("controller.js.tmpl")},
	{"routes/test.js", always, fromTemplate("routes.js.tmpl")},
	{".gitignore", withGitignore, fromTemplate("gitignore.tmpl")},
	{"README.md", withReadme, fromTemplate("readme.md.tmpl")},
	{".env.example", always, fromTemplate("env.example.tmpl")},
	{"eslint.config.js", always, fromTemplate("eslint.config.js.tmpl")},
}

// Compose renders every artifact enabled by cfg, in fixed order.
//
// Parameters:
//   - cfg: Validated configuration
//
// Returns:
//   - []Artifact: Path and content pairs; equal configurations give equal results
//   - error: Template render failure
func (c *Composer) Compose(cfg configschema.Config) ([]Artifact, error) {
	artifacts := make([]Artifact, 0, len(generators))
	for _, g := range generators {
		if !g.enabled(cfg) {
			continue
		}
		content, err := g.render(c, cfg)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, Artifact{Path: g.path, Content: content})
	}
	return artifacts, nil
}

// Paths returns the artifact paths enabled by cfg without rendering anything.
func Paths(cfg configschema.Config) []string {
	var paths []string
	for _, g := range generators {
		if g.enabled(cfg) {
			paths = append(paths, g.path)
		}
	}
	return paths
}

func fromTemplate(name string) renderFunc {
	return func(c *Composer, cfg configschema.Config) (string, error) {
		return c.loader.Render(name, cfg)
	}
}

func always(configschema.Config) bool { return true }

func withMongoDB(cfg configschema.Config) bool { return cfg.UseMongoDB }
func withLogger(cfg configschema.Config) bool { return cfg.UseLogger }
func withErrorHandler(cfg configschema.Config) bool { return cfg.UseErrorHandler }
func withCORS(cfg configschema.Config) bool { return cfg.UseCORS }
func withGitignore(cfg configschema.Config) bool { return cfg.CreateGitignore }
func withReadme(cfg configschema.Config) bool { return cfg.CreateReadme }
