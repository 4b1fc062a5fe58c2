package composer

import (
	"bytes"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"go.eggybyte.com/create-node-api/internal/configschema"
	"go.eggybyte.com/create-node-api/internal/errors"
)

const manifestDescription = "Node.js Express API generated with create-node-api"

type dependency struct {
	name    string
	version string
	when    func(configschema.Config) bool
}

var runtimeDependencies = []dependency{
	{"express", "^4.18.2", always},
	{"dotenv", "^16.3.1", always},
	{"mongoose", "^7.5.0", withMongoDB},
	{"winston", "^3.10.0", withLogger},
	{"morgan", "^1.10.0", configschema.Config.MorganEnabled},
	{"cors", "^2.8.5", withCORS},
}

var developmentDependencies = []dependency{
	{"nodemon", "^3.0.1", always},
}

type manifestScripts struct {
	Start string `json:"start"`
	Dev   string `json:"dev"`
	Test  string `json:"test"`
}

// packageManifest fixes the key order of package.json through field order.
type packageManifest struct {
	Name            string                                 `json:"name"`
	Version         string                                 `json:"version"`
	Description     string                                 `json:"description"`
	Main            string                                 `json:"main"`
	Type            string                                 `json:"type"`
	Scripts         manifestScripts                        `json:"scripts"`
	Keywords        []string                               `json:"keywords"`
	Author          string                                 `json:"author"`
	License         string                                 `json:"license"`
	Dependencies    *orderedmap.OrderedMap[string, string] `json:"dependencies"`
	DevDependencies *orderedmap.OrderedMap[string, string] `json:"devDependencies"`
}

// Dependencies returns the runtime dependencies enabled by cfg, in manifest order.
func Dependencies(cfg configschema.Config) *orderedmap.OrderedMap[string, string] {
	return collect(runtimeDependencies, cfg)
}

// DevDependencies returns the development dependencies, in manifest order.
func DevDependencies(cfg configschema.Config) *orderedmap.OrderedMap[string, string] {
	return collect(developmentDependencies, cfg)
}

func collect(deps []dependency, cfg configschema.Config) *orderedmap.OrderedMap[string, string] {
	m := orderedmap.New[string, string]()
	for _, d := range deps {
		if d.when(cfg) {
			m.Set(d.name, d.version)
		}
	}
	return m
}

// Manifest renders package.json for cfg as 2-space indented JSON.
//
// Parameters:
//   - cfg: Validated configuration
//
// Returns:
//   - string: Manifest content with a trailing newline
//   - error: Encoding failure
func Manifest(cfg configschema.Config) (string, error) {
	m := packageManifest{
		Name:        cfg.ProjectName,
		Version:     "1.0.0",
		Description: manifestDescription,
		Main:        "server.js",
		Type:        "module",
		Scripts: manifestScripts{
			Start: "node server.js",
			Dev:   "nodemon server.js",
			Test:  `echo "Error: no test specified" && exit 1`,
		},
		Keywords:        []string{"nodejs", "express", "api"},
		Author:          "",
		License:         "ISC",
		Dependencies:    Dependencies(cfg),
		DevDependencies: DevDependencies(cfg),
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return "", errors.Wrap(errors.CodeInternal, "package.json", err)
	}
	return buf.String(), nil
}
