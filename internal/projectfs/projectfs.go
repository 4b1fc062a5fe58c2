// Package projectfs provides the file-system capability used to scaffold projects.
//
// Overview:
//   - Responsibility: Existence checks, directory creation, file writes, listing
//   - Key Types: ProjectFS over a go-billy filesystem
//   - Concurrency Model: Sequential operations, no locking
//   - Error Semantics: Write failures wrapped as errors.CodeWriteFailed with Op = path
//   - Performance Notes: Whole-file writes, parents created on demand
//
// Usage:
//
//	pfs := projectfs.NewOS(".", logger)
//	err := pfs.EnsureDir("my-api/config")
//	err = pfs.WriteFile("my-api/server.js", content)
package projectfs

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"go.eggybyte.com/create-node-api/internal/errors"
	"go.eggybyte.com/create-node-api/internal/log"
)

const (
	dirMode  os.FileMode = 0o755
	fileMode os.FileMode = 0o644
)

// ProjectFS performs scaffolding file operations relative to a root.
//
// Parameters:
//   - fs: Underlying billy filesystem (osfs for real runs, memfs in tests)
//   - logger: Receives a debug entry per operation
//
// Concurrency:
//   - Not safe for concurrent writes to the same path
type ProjectFS struct {
	fs     billy.Filesystem
	logger log.Logger
}

// New wraps an existing billy filesystem. A nil logger discards output.
func New(fs billy.Filesystem, logger log.Logger) *ProjectFS {
	if logger == nil {
		logger = log.Nop()
	}
	return &ProjectFS{fs: fs, logger: logger}
}

// NewOS creates a ProjectFS rooted at rootDir on the host filesystem.
func NewOS(rootDir string, logger log.Logger) *ProjectFS {
	return New(osfs.New(rootDir), logger)
}

// Exists reports whether path exists, as a file or a directory.
//
// Parameters:
//   - name: Slash-separated path relative to root
//
// Returns:
//   - bool: True if the path exists
//   - error: Stat failure other than not-exist
func (p *ProjectFS) Exists(name string) (bool, error) {
	_, err := p.fs.Stat(name)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrap(errors.CodeInternal, name, err)
}

// EnsureDir creates a directory and its parents. Existing directories are left alone.
func (p *ProjectFS) EnsureDir(name string) error {
	if err := p.fs.MkdirAll(name, dirMode); err != nil {
		return errors.Wrap(errors.CodeWriteFailed, name, err)
	}
	p.logger.Debug("directory created", log.Str("path", name))
	return nil
}

// WriteFile writes content to name, creating parent directories first.
//
// Parameters:
//   - name: Slash-separated file path relative to root
//   - content: Full file content
//
// Returns:
//   - error: errors.CodeWriteFailed with Op = name on any failure
func (p *ProjectFS) WriteFile(name, content string) error {
	if dir := path.Dir(name); dir != "." {
		if err := p.fs.MkdirAll(dir, dirMode); err != nil {
			return errors.Wrap(errors.CodeWriteFailed, name, err)
		}
	}
	if err := util.WriteFile(p.fs, name, []byte(content), fileMode); err != nil {
		return errors.Wrap(errors.CodeWriteFailed, name, err)
	}
	p.logger.Debug("file written", log.Str("path", name), log.Int("bytes", len(content)))
	return nil
}

// ListFiles returns every regular file below dir, as sorted slash paths
// relative to dir.
func (p *ProjectFS) ListFiles(dir string) ([]string, error) {
	var files []string
	err := util.Walk(p.fs, dir, func(name string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel := filepath.ToSlash(name)
		if prefix := path.Clean(dir); prefix != "." && prefix != "" {
			rel = strings.TrimPrefix(rel, prefix+"/")
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, dir, err)
	}
	sort.Strings(files)
	return files, nil
}
