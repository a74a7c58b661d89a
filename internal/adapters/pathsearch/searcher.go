// Package pathsearch implements the PathSearcher port over the real
// PATH environment variable and filesystem.
package pathsearch

import (
	"os"
	"path/filepath"

	"github.com/hcastellon/shdw/internal/core/ports"
)

// OSSearcher implements the PathSearcher interface using os and filepath.
type OSSearcher struct{}

// New creates a new OSSearcher.
func New() ports.PathSearcher {
	return &OSSearcher{}
}

// Dirs returns the PATH entries in search order. Empty entries are
// dropped rather than interpreted as the current directory.
func (s *OSSearcher) Dirs() []string {
	var dirs []string
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

// Executable returns dir/name and true when it names an executable
// regular file, following symlinks to judge the final target.
func (s *OSSearcher) Executable(dir, name string) (string, bool) {
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	if info.Mode().Perm()&0o111 == 0 {
		return "", false
	}
	return path, true
}

// Canonical resolves path to an absolute path with all symlinks expanded.
func (s *OSSearcher) Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
