package testutil

import (
	"errors"
	"path/filepath"
)

// MockPathSearcher is a mock implementation of ports.PathSearcher for
// testing. Executables maps a full candidate path to its canonical
// path, and PathDirs fixes the search order, so tests can lay out a
// fake PATH without touching the filesystem.
type MockPathSearcher struct {
	PathDirs    []string
	Executables map[string]string

	DirsFunc       func() []string
	ExecutableFunc func(dir, name string) (string, bool)
	CanonicalFunc  func(path string) (string, error)
}

func (m *MockPathSearcher) Dirs() []string {
	if m.DirsFunc != nil {
		return m.DirsFunc()
	}
	return m.PathDirs
}

func (m *MockPathSearcher) Executable(dir, name string) (string, bool) {
	if m.ExecutableFunc != nil {
		return m.ExecutableFunc(dir, name)
	}
	path := filepath.Join(dir, name)
	if _, ok := m.Executables[path]; ok {
		return path, true
	}
	return "", false
}

func (m *MockPathSearcher) Canonical(path string) (string, error) {
	if m.CanonicalFunc != nil {
		return m.CanonicalFunc(path)
	}
	if canonical, ok := m.Executables[path]; ok {
		return canonical, nil
	}
	return "", errors.New("MockPathSearcher: no canonical path for " + path)
}
