// Package survey asks the project configuration questions in their fixed order.
package survey

import (
	"go.eggybyte.com/create-node-api/internal/configschema"
	"go.eggybyte.com/create-node-api/internal/ui"
)

// Question texts, in asking order.
const (
	QuestionProjectName     = "What is your project name?"
	QuestionMongoDB         = "Do you want to use MongoDB?"
	QuestionLogger          = "Do you want to use Winston logger? (Recommended)"
	QuestionMorgan          = "Do you want to use Morgan HTTP request logging? (Recommended)"
	QuestionErrorHandler    = "Do you want to include error handling middleware? (Recommended)"
	QuestionCORS            = "Do you want to enable CORS? (Recommended)"
	QuestionServiceName     = "What is your service name? (used in logs)"
	QuestionDefaultPort     = "What default port should the server use?"
	QuestionAPIVersion      = "What API version do you want to use?"
	QuestionCreateGitignore = "Do you want to create a .gitignore file?"
	QuestionCreateReadme    = "Do you want to create a README.md file?"
)

// Prompter asks single questions. *ui.Prompter implements it.
type Prompter interface {
	PromptInput(question, def string, validate ui.Validator) (string, error)
	PromptConfirm(question string, def bool) (bool, error)
}

// asker stops asking after the first error.
type asker struct {
	p   Prompter
	err error
}

func (a *asker) confirm(question string, def bool) bool {
	if a.err != nil {
		return def
	}
	v, err := a.p.PromptConfirm(question, def)
	a.err = err
	return v
}

func (a *asker) input(question, def, field string) string {
	if a.err != nil {
		return def
	}
	v, err := a.p.PromptInput(question, def, func(s string) error {
		return configschema.ValidateField(field, s)
	})
	a.err = err
	return v
}

// Ask runs the questionnaire. The project name question is skipped when
// projectName is non-empty; the Morgan question is asked only when the
// logger is enabled.
func Ask(p Prompter, projectName string) (configschema.Answers, error) {
	answers := configschema.DefaultAnswers(projectName)
	a := &asker{p: p}

	if projectName == "" {
		answers.ProjectName = a.input(QuestionProjectName, "", "projectName")
	}

	answers.UseMongoDB = a.confirm(QuestionMongoDB, true)
	answers.UseLogger = a.confirm(QuestionLogger, true)
	answers.UseMorganLogging = false
	if answers.UseLogger {
		answers.UseMorganLogging = a.confirm(QuestionMorgan, true)
	}
	answers.UseErrorHandler = a.confirm(QuestionErrorHandler, true)
	answers.UseCORS = a.confirm(QuestionCORS, true)
	answers.ServiceName = a.input(QuestionServiceName, answers.ProjectName, "serviceName")
	answers.DefaultPort = a.input(QuestionDefaultPort, configschema.DefaultPort, "defaultPort")
	answers.APIVersion = a.input(QuestionAPIVersion, configschema.DefaultAPIVersion, "apiVersion")
	answers.CreateGitignore = a.confirm(QuestionCreateGitignore, true)
	answers.CreateReadme = a.confirm(QuestionCreateReadme, true)

	if a.err != nil {
		return configschema.Answers{}, a.err
	}
	return answers, nil
}
