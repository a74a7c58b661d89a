// Package symlink implements the Symlinker port with real OS calls.
package symlink

import (
	"fmt"
	"os"

	"github.com/hcastellon/shdw/internal/core/ports"
)

// OSSymlinker implements the Symlinker interface using the os package.
type OSSymlinker struct{}

// New creates a new OSSymlinker.
func New() ports.Symlinker {
	return &OSSymlinker{}
}

// Create makes a symbolic link at link pointing to target.
func (l *OSSymlinker) Create(target, link string) error {
	if err := os.Symlink(target, link); err != nil {
		return fmt.Errorf("failed to create symlink %s -> %s: %w", link, target, err)
	}
	return nil
}

// Resolve returns the immediate target of the symlink at link.
func (l *OSSymlinker) Resolve(link string) (string, error) {
	target, err := os.Readlink(link)
	if err != nil {
		return "", fmt.Errorf("failed to read symlink %s: %w", link, err)
	}
	return target, nil
}

// Remove deletes the entry at link.
func (l *OSSymlinker) Remove(link string) error {
	if err := os.Remove(link); err != nil {
		return fmt.Errorf("failed to remove symlink %s: %w", link, err)
	}
	return nil
}

// Probe reports whether link exists and whether it is a symlink,
// without following it.
func (l *OSSymlinker) Probe(link string) (bool, bool, error) {
	info, err := os.Lstat(link)
	if err != nil {
		if os.IsNotExist(err) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("failed to stat %s: %w", link, err)
	}
	return true, info.Mode()&os.ModeSymlink != 0, nil
}
