// Package configschema provides the scaffold configuration, its defaults, and validation.
//
// Overview:
//   - Responsibility: Turn raw answers into a validated, immutable Config
//   - Key Types: Answers (raw input), Config (validated record)
//   - Concurrency Model: Config is a value type, safe to share after Validate returns
//   - Error Semantics: Validation errors carry CodeInvalidArgument and the offending field
//   - Performance Notes: Single-pass normalization and struct validation
//
// Usage:
//
//	answers := configschema.DefaultAnswers("demo")
//	cfg, err := configschema.Validate(answers)
//	if err != nil {
//	    return err
//	}
package configschema

import (
	"os"

	"gopkg.in/yaml.v3"

	"go.eggybyte.com/create-node-api/internal/errors"
)

// Default answer values offered by the prompts.
const (
	DefaultPort       = "3001"
	DefaultAPIVersion = "v1"
)

// Answers is the raw answer record produced by the prompts or an answers file.
//
// Text answers are kept as strings so that validation can report the exact
// field that failed; booleans are taken as given.
type Answers struct {
	ProjectName      string `yaml:"projectName"`
	UseMongoDB       bool   `yaml:"useMongoDB"`
	UseLogger        bool   `yaml:"useLogger"`
	UseMorganLogging bool   `yaml:"useMorganLogging"`
	UseErrorHandler  bool   `yaml:"useErrorHandler"`
	UseCORS          bool   `yaml:"useCORS"`
	ServiceName      string `yaml:"serviceName"`
	DefaultPort      string `yaml:"defaultPort"`
	APIVersion       string `yaml:"apiVersion"`
	CreateGitignore  bool   `yaml:"createGitignore"`
	CreateReadme     bool   `yaml:"createReadme"`
}

// Config is the validated generation configuration.
//
// It is the sole input of every artifact generator and is never mutated
// during a run.
type Config struct {
	ProjectName      string `json:"projectName" validate:"required,projectname"`
	UseMongoDB       bool   `json:"useMongoDB"`
	UseLogger        bool   `json:"useLogger"`
	UseMorganLogging bool   `json:"useMorganLogging"`
	UseErrorHandler  bool   `json:"useErrorHandler"`
	UseCORS          bool   `json:"useCORS"`
	ServiceName      string `json:"serviceName" validate:"required"`
	DefaultPort      int    `json:"defaultPort" validate:"min=1,max=65535"`
	APIVersion       string `json:"apiVersion" validate:"required"`
	CreateGitignore  bool   `json:"createGitignore"`
	CreateReadme     bool   `json:"createReadme"`
}

// MorganEnabled reports whether HTTP request logging is wired.
// Morgan writes through the structured logger, so it requires UseLogger
// regardless of how UseMorganLogging was set.
func (c Config) MorganEnabled() bool {
	return c.UseLogger && c.UseMorganLogging
}

// DefaultAnswers returns the answers a user gets by accepting every prompt default.
func DefaultAnswers(projectName string) Answers {
	return Answers{
		ProjectName:      projectName,
		UseMongoDB:       true,
		UseLogger:        true,
		UseMorganLogging: true,
		UseErrorHandler:  true,
		UseCORS:          true,
		ServiceName:      projectName,
		DefaultPort:      DefaultPort,
		APIVersion:       DefaultAPIVersion,
		CreateGitignore:  true,
		CreateReadme:     true,
	}
}

// LoadAnswers reads answers from a YAML file.
//
// Keys missing from the file keep their prompt defaults. A project name given
// on the command line (non-empty projectName) overrides the file's value.
func LoadAnswers(path, projectName string) (Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Answers{}, errors.Wrapf(errors.CodeNotFound, path, err, "answers file not found")
		}
		return Answers{}, errors.Wrap(errors.CodeInternal, path, err)
	}

	answers := DefaultAnswers("")
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return Answers{}, errors.Wrapf(errors.CodeInvalidArgument, path, err, "failed to parse answers file")
	}

	if projectName != "" {
		answers.ProjectName = projectName
	}

	return answers, nil
}
