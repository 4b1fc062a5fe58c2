package configschema

import (
	stderrors "errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"go.eggybyte.com/create-node-api/internal/errors"
)

var projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// fieldRules maps each validated text field to its validator tag.
var fieldRules = map[string]string{
	"projectName": "required,projectname",
	"serviceName": "required",
	"defaultPort": "min=1,max=65535",
	"apiVersion":  "required",
}

// messages are the user-facing texts per field and failed tag.
var messages = map[string]string{
	"projectName.required":    "Project name is required!",
	"projectName.projectname": "Project name can only contain letters, numbers, hyphens, and underscores!",
	"serviceName.required":    "Service name is required!",
	"defaultPort":             "Please enter a valid port number (1-65535)!",
	"apiVersion.required":     "API version is required!",
}

var validate = newValidator()

// newValidator builds the struct validator with the scaffolder's custom tags.
// Field names in errors come from the json tags so they match the answer keys.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("projectname", func(fl validator.FieldLevel) bool {
		return projectNamePattern.MatchString(fl.Field().String())
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate normalizes raw answers and returns a valid Config.
//
// Normalization trims text answers other than the project name, defaults the service name to the project
// name, parses the port and clears UseMorganLogging when the logger is off.
// The first failing field is reported as a CodeInvalidArgument error.
func Validate(a Answers) (Config, error) {
	cfg := Config{
		ProjectName:      a.ProjectName,
		UseMongoDB:       a.UseMongoDB,
		UseLogger:        a.UseLogger,
		UseMorganLogging: a.UseLogger && a.UseMorganLogging,
		UseErrorHandler:  a.UseErrorHandler,
		UseCORS:          a.UseCORS,
		ServiceName:      strings.TrimSpace(a.ServiceName),
		APIVersion:       strings.TrimSpace(a.APIVersion),
		CreateGitignore:  a.CreateGitignore,
		CreateReadme:     a.CreateReadme,
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = cfg.ProjectName
	}

	cfg.DefaultPort = atoiOrZero(a.DefaultPort)

	if err := validate.Struct(cfg); err != nil {
		return Config{}, translate(err, "")
	}

	return cfg, nil
}

// ValidateField checks a single raw text answer with the same rules Validate
// applies. Prompts use it to re-ask until the answer is acceptable.
func ValidateField(field, value string) error {
	rule, ok := fieldRules[field]
	if !ok {
		return errors.Invalid(field, "unknown field")
	}

	if field == "defaultPort" {
		return translate(validate.Var(atoiOrZero(value), rule), field)
	}
	if field == "projectName" {
		return translate(validate.Var(value, rule), field)
	}
	return translate(validate.Var(strings.TrimSpace(value), rule), field)
}

// atoiOrZero parses a port answer; anything non-numeric becomes 0 so the
// range rule rejects it.
func atoiOrZero(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// translate converts validator errors into a field-naming validation error.
// field overrides the reported field for single-value checks.
func translate(err error, field string) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Wrap(errors.CodeInvalidArgument, "validate", err)
	}

	fe := verrs[0]
	name := fe.Field()
	if field != "" {
		name = field
	}

	msg, ok := messages[name+"."+fe.Tag()]
	if !ok {
		msg, ok = messages[name]
	}
	if !ok {
		msg = "invalid value"
	}
	return errors.Invalid(name, msg)
}
