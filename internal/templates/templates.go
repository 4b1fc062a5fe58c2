// Package templates provides loading and rendering of the embedded project templates.
//
// Overview:
//   - Responsibility: Parse the embedded Express templates once, render them by name
//   - Key Types: Loader
//   - Concurrency Model: A Loader is immutable after construction and safe for concurrent use
//   - Error Semantics: Unknown templates and render failures return errors.CodeInternal
//   - Performance Notes: All templates are parsed once at construction
//
// Usage:
//
//	loader, err := templates.NewLoader()
//	content, err := loader.Render("logger.js.tmpl", cfg)
package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"sort"
	"strings"
	"text/template"

	"go.eggybyte.com/create-node-api/internal/errors"
)

//go:embed templates/*
var templateFS embed.FS

// Loader renders the embedded templates.
//
// Parameters:
//   - tmpl: Template set holding every embedded file, keyed by base name
//
// Concurrency:
//   - Safe for concurrent use
type Loader struct {
	tmpl *template.Template
}

// NewLoader parses every embedded template.
//
// Returns:
//   - *Loader: Loader instance
//   - error: Parse error if an embedded template is malformed
func NewLoader() (*Loader, error) {
	tmpl, err := template.New("templates").
		Option("missingkey=error").
		Funcs(FuncMap()).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "parse templates", err)
	}
	return &Loader{tmpl: tmpl}, nil
}

// Render executes the named template with data.
//
// Parameters:
//   - name: Template base name, e.g. "db.js.tmpl"
//   - data: Template data
//
// Returns:
//   - string: Rendered content
//   - error: errors.CodeInternal with Op = name on failure
func (l *Loader) Render(name string, data any) (string, error) {
	t := l.tmpl.Lookup(name)
	if t == nil {
		return "", errors.New(errors.CodeInternal, "template not found: "+name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", errors.Wrap(errors.CodeInternal, name, err)
	}
	return buf.String(), nil
}

// names lists the embedded template names in sorted order.
func (l *Loader) names() []string {
	var names []string
	for _, t := range l.tmpl.Templates() {
		if strings.HasSuffix(t.Name(), ".tmpl") {
			names = append(names, t.Name())
		}
	}
	sort.Strings(names)
	return names
}

// FuncMap returns the helper functions available to every template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"quote":    QuoteSingle,
		"jsString": QuoteDouble,
		"branch":   Branch,
		"comment":  CommentText,
	}
}

// CommentText makes s safe inside a /* */ block comment.
func CommentText(s string) string {
	return strings.ReplaceAll(s, "*/", `*\/`)
}

// QuoteSingle renders s as a single-quoted JavaScript string literal.
func QuoteSingle(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	return "'" + r.Replace(s) + "'"
}

// QuoteDouble renders s as a double-quoted JavaScript string literal.
func QuoteDouble(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// A string always encodes.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

// Branch returns the tree connector for a directory listing entry.
func Branch(last bool) string {
	if last {
		return "└──"
	}
	return "├──"
}
