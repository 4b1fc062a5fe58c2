package survey

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.eggybyte.com/create-node-api/internal/configschema"
	"go.eggybyte.com/create-node-api/internal/errors"
	"go.eggybyte.com/create-node-api/internal/testingx"
	"go.eggybyte.com/create-node-api/internal/ui"
)

// scripted answers questions from a map and records the asking order.
type scripted struct {
	inputs   map[string]string
	confirms map[string]bool
	asked    []string
}

func (s *scripted) PromptInput(question, def string, validate ui.Validator) (string, error) {
	s.asked = append(s.asked, question)
	answer, ok := s.inputs[question]
	if !ok {
		answer = def
	}
	if validate != nil {
		if err := validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (s *scripted) PromptConfirm(question string, def bool) (bool, error) {
	s.asked = append(s.asked, question)
	if v, ok := s.confirms[question]; ok {
		return v, nil
	}
	return def, nil
}

func TestAskOrder(t *testing.T) {
	p := &scripted{inputs: map[string]string{QuestionProjectName: "my-api"}}

	answers, err := Ask(p, "")
	require.NoError(t, err)

	assert.Equal(t, []string{
		QuestionProjectName,
		QuestionMongoDB,
		QuestionLogger,
		QuestionMorgan,
		QuestionErrorHandler,
		QuestionCORS,
		QuestionServiceName,
		QuestionDefaultPort,
		QuestionAPIVersion,
		QuestionCreateGitignore,
		QuestionCreateReadme,
	}, p.asked)

	assert.Equal(t, configschema.DefaultAnswers("my-api"), answers)
}

func TestAskSkipsProjectName(t *testing.T) {
	p := &scripted{}

	answers, err := Ask(p, "demo")
	require.NoError(t, err)

	assert.NotContains(t, p.asked, QuestionProjectName)
	assert.Equal(t, "demo", answers.ProjectName)
	assert.Equal(t, "demo", answers.ServiceName)
}

func TestAskSkipsMorganWithoutLogger(t *testing.T) {
	p := &scripted{confirms: map[string]bool{QuestionLogger: false}}

	answers, err := Ask(p, "demo")
	require.NoError(t, err)

	assert.NotContains(t, p.asked, QuestionMorgan)
	assert.False(t, answers.UseLogger)
	assert.False(t, answers.UseMorganLogging)
}

func TestAskStopsOnError(t *testing.T) {
	p := &scripted{inputs: map[string]string{QuestionDefaultPort: "http"}}

	_, err := Ask(p, "demo")
	testingx.AssertCode(t, err, errors.CodeInvalidArgument)
	assert.Equal(t, "defaultPort", errors.FieldOf(err))

	assert.Equal(t, QuestionDefaultPort, p.asked[len(p.asked)-1])
}

func TestAskInteractive(t *testing.T) {
	input := strings.Join([]string{
		"my project", // rejected
		"shop-api",
		"n",     // MongoDB
		"y",     // logger
		"n",     // morgan
		"",      // error handler, default yes
		"no",    // CORS
		"",      // service name, defaults to project name
		"99999", // rejected port
		"8080",
		"v2",
		"y",
		"n",
	}, "\n") + "\n"

	var out bytes.Buffer
	answers, err := Ask(ui.NewPrompter(strings.NewReader(input), &out), "")
	require.NoError(t, err)

	assert.Equal(t, configschema.Answers{
		ProjectName:      "shop-api",
		UseMongoDB:       false,
		UseLogger:        true,
		UseMorganLogging: false,
		UseErrorHandler:  true,
		UseCORS:          false,
		ServiceName:      "shop-api",
		DefaultPort:      "8080",
		APIVersion:       "v2",
		CreateGitignore:  true,
		CreateReadme:     false,
	}, answers)

	assert.Contains(t, out.String(), ">> Project name can only contain letters, numbers, hyphens, and underscores!")
	assert.Contains(t, out.String(), ">> Please enter a valid port number (1-65535)!")

	cfg, err := configschema.Validate(answers)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.DefaultPort)
}

func TestAskInputClosed(t *testing.T) {
	_, err := Ask(ui.NewPrompter(strings.NewReader("demo\ny\n"), io.Discard), "")
	testingx.AssertCode(t, err, errors.CodeCanceled)
}
