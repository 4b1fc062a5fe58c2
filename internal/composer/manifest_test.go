package composer

import (
	"strings"
	"testing"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func query(t *testing.T, doc any, path string) []any {
	t.Helper()
	return jp.MustParseString(path).Get(doc)
}

func TestManifest(t *testing.T) {
	content, err := Manifest(fullConfig())
	require.NoError(t, err)

	doc, err := oj.ParseString(content)
	require.NoError(t, err)

	tests := []struct {
		path     string
		expected any
	}{
		{"$.name", "my-api"},
		{"$.version", "1.0.0"},
		{"$.main", "server.js"},
		{"$.type", "module"},
		{"$.license", "ISC"},
		{"$.author", ""},
		{"$.scripts.start", "node server.js"},
		{"$.scripts.dev", "nodemon server.js"},
		{"$.scripts.test", `echo "Error: no test specified" && exit 1`},
		{"$.dependencies.express", "^4.18.2"},
		{"$.dependencies.dotenv", "^16.3.1"},
		{"$.dependencies.mongoose", "^7.5.0"},
		{"$.dependencies.winston", "^3.10.0"},
		{"$.dependencies.morgan", "^1.10.0"},
		{"$.dependencies.cors", "^2.8.5"},
		{"$.devDependencies.nodemon", "^3.0.1"},
		{"$.keywords[1]", "express"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := query(t, doc, tt.path)
			require.Len(t, got, 1)
			assert.Equal(t, tt.expected, got[0])
		})
	}
}

func TestManifestLayout(t *testing.T) {
	content, err := Manifest(fullConfig())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(content, "{\n  \"name\": \"my-api\",\n  \"version\": \"1.0.0\","))
	assert.True(t, strings.HasSuffix(content, "}\n"))
	assert.Contains(t, content, `no test specified\" && exit 1"`)
	assert.NotContains(t, content, `\u0026`)

	keys := []string{`"name"`, `"version"`, `"description"`, `"main"`, `"type"`, `"scripts"`,
		`"keywords"`, `"author"`, `"license"`, `"dependencies"`, `"devDependencies"`}
	last := -1
	for _, key := range keys {
		idx := strings.Index(content, key)
		require.Greater(t, idx, last, key)
		last = idx
	}
}

func TestDependencies(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(cfg *configCase)
		expected []string
	}{
		{
			name:     "all features",
			mutate:   func(*configCase) {},
			expected: []string{"express", "dotenv", "mongoose", "winston", "morgan", "cors"},
		},
		{
			name:     "logger off drops morgan",
			mutate:   func(c *configCase) { c.logger = false },
			expected: []string{"express", "dotenv", "mongoose", "cors"},
		},
		{
			name:     "morgan off",
			mutate:   func(c *configCase) { c.morgan = false },
			expected: []string{"express", "dotenv", "mongoose", "winston", "cors"},
		},
		{
			name:     "minimal",
			mutate:   func(c *configCase) { *c = configCase{} },
			expected: []string{"express", "dotenv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := configCase{mongo: true, logger: true, morgan: true, cors: true}
			tt.mutate(&c)
			cfg := fullConfig()
			cfg.UseMongoDB, cfg.UseLogger, cfg.UseMorganLogging, cfg.UseCORS = c.mongo, c.logger, c.morgan, c.cors

			var names []string
			deps := Dependencies(cfg)
			for pair := deps.Oldest(); pair != nil; pair = pair.Next() {
				names = append(names, pair.Key)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

type configCase struct {
	mongo, logger, morgan, cors bool
}

func TestDevDependencies(t *testing.T) {
	deps := DevDependencies(demoConfig())
	require.Equal(t, 1, deps.Len())
	version, ok := deps.Get("nodemon")
	require.True(t, ok)
	assert.Equal(t, "^3.0.1", version)
}
