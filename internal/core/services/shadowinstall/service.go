/*
Package shadowinstall implements the management operations that bring a
shim symlink and its store record into agreement: add, remove, list.
*/
package shadowinstall

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hcastellon/shdw/internal/core/domain/shadow"
	"github.com/hcastellon/shdw/internal/core/ports"
)

type service struct {
	store ports.ShadowStore
	links ports.Symlinker
	// self is the path of the running shadow binary; every shim symlink
	// points at it, never at the replacement command.
	self string
}

// NewService creates a new shadow installation service. self is the
// running binary's own executable path. It panics if store or links is
// nil.
func NewService(store ports.ShadowStore, links ports.Symlinker, self string) ports.InstallService {
	if store == nil {
		panic("store cannot be nil")
	}
	if links == nil {
		panic("links cannot be nil")
	}
	return &service{store: store, links: links, self: self}
}

// Add shadows name with command by creating a shim symlink in binPath
// and recording the mapping. The symlink and the store write form one
// logical transaction: a persist failure removes the symlink created
// for it, so no partial state survives a failed Add.
func (s *service) Add(name, command, description, binPath string) (shadow.Shadow, error) {
	if name == "" {
		return shadow.Shadow{}, fmt.Errorf("shadow name cannot be empty")
	}
	if _, _, ok := shadow.SplitCommand(command); !ok {
		return shadow.Shadow{}, fmt.Errorf("replacement command for '%s' cannot be empty", name)
	}

	state, err := s.store.Load()
	if err != nil {
		return shadow.Shadow{}, err
	}

	dir, err := s.resolveBinPath(binPath, state.Settings)
	if err != nil {
		return shadow.Shadow{}, err
	}

	if _, ok := state.Shadows.Find(name, dir); ok {
		return shadow.Shadow{}, fmt.Errorf("'%s' in %s: %w", name, dir, shadow.ErrAlreadyShadowed)
	}

	link := filepath.Join(dir, name)
	created, err := s.ensureLink(link)
	if err != nil {
		return shadow.Shadow{}, err
	}

	rec := shadow.Shadow{
		Name:        name,
		Command:     command,
		BinPath:     dir,
		Description: description,
	}
	state.Shadows = state.Shadows.Upsert(rec)

	if err := s.store.Save(state); err != nil {
		// Compensating action: undo the symlink this Add created so the
		// store and the filesystem stay in agreement.
		if created {
			_ = s.links.Remove(link)
		}
		return shadow.Shadow{}, err
	}
	return rec, nil
}

// Remove deletes the symlink and the record for name. A record whose
// symlink has already disappeared is still removed; that inconsistency
// is reported through RemoveResult.LinkMissing, not as an error, so
// repeated removes converge to "not shadowed".
func (s *service) Remove(name, binPath string) (ports.RemoveResult, error) {
	state, err := s.store.Load()
	if err != nil {
		return ports.RemoveResult{}, err
	}

	rec, err := s.findForRemoval(state.Shadows, name, binPath)
	if err != nil {
		return ports.RemoveResult{}, err
	}

	result := ports.RemoveResult{Removed: rec}
	link := filepath.Join(rec.BinPath, rec.Name)
	exists, isLink, err := s.links.Probe(link)
	if err != nil {
		return ports.RemoveResult{}, err
	}
	switch {
	case exists && isLink:
		if err := s.links.Remove(link); err != nil {
			return ports.RemoveResult{}, err
		}
	default:
		// Missing, or occupied by a foreign file we will not delete.
		result.LinkMissing = true
	}

	state.Shadows = state.Shadows.Delete(rec.Name, rec.BinPath)
	if err := s.store.Save(state); err != nil {
		return ports.RemoveResult{}, err
	}
	return result, nil
}

// List returns all shadows sorted by name, then bin path.
func (s *service) List() (shadow.Shadows, error) {
	state, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return state.Shadows.Sorted(), nil
}

// resolveBinPath picks the symlink directory for an add: the explicit
// argument, else the configured default, else ~/.local/bin. The result
// is absolute and guaranteed to exist.
func (s *service) resolveBinPath(binPath string, settings shadow.Settings) (string, error) {
	dir := binPath
	if dir == "" {
		dir = settings.BinPath
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine home directory: %w: %v", shadow.ErrInvalidBinPath, err)
		}
		dir = filepath.Join(home, ".local", "bin")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("'%s': %w: %v", dir, shadow.ErrInvalidBinPath, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", fmt.Errorf("'%s': %w: %v", abs, shadow.ErrInvalidBinPath, err)
	}
	return abs, nil
}

// ensureLink creates the shim symlink at link, reporting whether this
// call created it. An existing symlink that already points back at the
// running binary is reused; anything else occupying the path is a
// collision and is never overwritten.
func (s *service) ensureLink(link string) (bool, error) {
	exists, isLink, err := s.links.Probe(link)
	if err != nil {
		return false, err
	}
	if !exists {
		if err := s.links.Create(s.self, link); err != nil {
			return false, err
		}
		return true, nil
	}
	if !isLink {
		return false, fmt.Errorf("%s exists and is not a shim symlink: %w", link, shadow.ErrNameCollision)
	}
	target, err := s.links.Resolve(link)
	if err != nil {
		return false, err
	}
	if filepath.Clean(target) != filepath.Clean(s.self) {
		return false, fmt.Errorf("%s is a symlink to %s, not to this binary: %w", link, target, shadow.ErrNameCollision)
	}
	return false, nil
}

// findForRemoval resolves which record a remove refers to. An explicit
// binPath demands an exact match; without one, a single name match is
// unambiguous and several are an error listing the candidates.
func (s *service) findForRemoval(shadows shadow.Shadows, name, binPath string) (shadow.Shadow, error) {
	if binPath != "" {
		abs, err := filepath.Abs(binPath)
		if err != nil {
			return shadow.Shadow{}, fmt.Errorf("'%s': %w: %v", binPath, shadow.ErrInvalidBinPath, err)
		}
		rec, ok := shadows.Find(name, abs)
		if !ok {
			return shadow.Shadow{}, fmt.Errorf("'%s' in %s: %w", name, abs, shadow.ErrShadowNotFound)
		}
		return rec, nil
	}

	matches := shadows.FindByName(name)
	switch len(matches) {
	case 0:
		return shadow.Shadow{}, fmt.Errorf("'%s': %w", name, shadow.ErrShadowNotFound)
	case 1:
		return matches[0], nil
	default:
		dirs := make([]string, len(matches))
		for i, m := range matches {
			dirs[i] = m.BinPath
		}
		return shadow.Shadow{}, fmt.Errorf("'%s' is shadowed in %s: %w (pass --bin-path)", name, strings.Join(dirs, ", "), shadow.ErrAmbiguousShadow)
	}
}
