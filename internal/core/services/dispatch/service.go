/*
Package dispatch implements the shim path: every execution of a shim
symlink re-enters the shadow binary, and this service decides what to
actually run. That is either the recorded replacement command or, for a
raw bypass, the original binary found on PATH with the shim itself
filtered out.
*/
package dispatch

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hcastellon/shdw/internal/core/domain/shadow"
	"github.com/hcastellon/shdw/internal/core/ports"
)

// Raw bypass flags, recognized only as the first shim argument so they
// remain forwardable to the replacement anywhere else in the argv.
const (
	RawFlag      = "--raw"
	RawFlagShort = "-R"
)

type service struct {
	store  ports.ShadowStore
	search ports.PathSearcher
	runner ports.Runner
	// self and selfCanonical identify the running shadow binary. The
	// canonical form is what PATH candidates are compared against: the
	// anti-recursion rule is a path identity check, never a name check.
	self          string
	selfCanonical string
}

// NewService creates a new dispatch service. self is the running
// binary's own executable path. It panics if any port is nil.
func NewService(store ports.ShadowStore, search ports.PathSearcher, runner ports.Runner, self string) ports.DispatchService {
	if store == nil {
		panic("store cannot be nil")
	}
	if search == nil {
		panic("search cannot be nil")
	}
	if runner == nil {
		panic("runner cannot be nil")
	}
	canonical, err := search.Canonical(self)
	if err != nil {
		canonical = filepath.Clean(self)
	}
	return &service{
		store:         store,
		search:        search,
		runner:        runner,
		self:          self,
		selfCanonical: canonical,
	}
}

// Dispatch resolves and runs the command behind a shim invocation.
// Any resolution failure is terminal: nothing is executed, and the
// dispatcher never runs more than one command per invocation.
func (s *service) Dispatch(argv0 string, args []string) (int, error) {
	name := filepath.Base(argv0)

	state, err := s.store.Load()
	if err != nil {
		return int(shadow.ExitCodeFor(err)), err
	}

	rec, err := s.resolveShadow(state.Shadows, argv0, name)
	if err != nil {
		return int(shadow.ExitCodeFor(err)), err
	}

	raw := state.Settings.AlwaysUseRaw
	if len(args) > 0 && (args[0] == RawFlag || args[0] == RawFlagShort) {
		raw = true
		args = args[1:]
	}

	if raw {
		original, err := s.locate(name)
		if err != nil {
			return int(shadow.ExitCodeFor(err)), err
		}
		return s.runner.Run(original, args)
	}

	head, baseArgs, ok := shadow.SplitCommand(rec.Command)
	if !ok {
		err := fmt.Errorf("shadow '%s' has an empty replacement command: %w", name, shadow.ErrStoreCorrupt)
		return int(shadow.ExitCodeFor(err)), err
	}
	path, err := s.locate(head)
	if err != nil {
		return int(shadow.ExitCodeFor(err)), err
	}
	return s.runner.Run(path, append(baseArgs, args...))
}

// resolveShadow finds the store record for this invocation. Lookups are
// scoped to the directory the invoking symlink resides in, so the same
// name shadowed under two directories resolves independently. When
// argv0 arrived as a bare name (the usual PATH launch), that directory
// is recovered by finding the PATH entry that links back to this
// binary.
func (s *service) resolveShadow(shadows shadow.Shadows, argv0, name string) (shadow.Shadow, error) {
	if strings.ContainsRune(argv0, filepath.Separator) {
		dir, err := filepath.Abs(filepath.Dir(argv0))
		if err != nil {
			return shadow.Shadow{}, fmt.Errorf("'%s': %w", argv0, shadow.ErrShadowNotFound)
		}
		if rec, ok := shadows.Find(name, dir); ok {
			return rec, nil
		}
		return shadow.Shadow{}, fmt.Errorf("'%s' in %s is not recorded (dangling shim?): %w", name, dir, shadow.ErrShadowNotFound)
	}

	if dir, ok := s.shimDir(name); ok {
		if rec, found := shadows.Find(name, dir); found {
			return rec, nil
		}
		return shadow.Shadow{}, fmt.Errorf("'%s' in %s is not recorded (dangling shim?): %w", name, dir, shadow.ErrShadowNotFound)
	}

	// No shim directory recoverable from PATH; fall back to a
	// name-only lookup.
	matches := shadows.FindByName(name)
	switch len(matches) {
	case 0:
		return shadow.Shadow{}, fmt.Errorf("'%s': %w", name, shadow.ErrShadowNotFound)
	case 1:
		return matches[0], nil
	default:
		return shadow.Shadow{}, fmt.Errorf("'%s' is shadowed in multiple directories: %w", name, shadow.ErrAmbiguousShadow)
	}
}

// shimDir walks PATH for the entry named name that canonically resolves
// to this binary, i.e. the symlink that triggered this invocation.
func (s *service) shimDir(name string) (string, bool) {
	for _, dir := range s.search.Dirs() {
		candidate, ok := s.search.Executable(dir, name)
		if !ok {
			continue
		}
		canonical, err := s.search.Canonical(candidate)
		if err != nil || canonical != s.selfCanonical {
			continue
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		return abs, true
	}
	return "", false
}

// locate finds the executable to run for name, filtering out every PATH
// candidate whose canonical path is the running binary itself. Without
// that filter, resolving "the original ls" would find the very shim
// that triggered this invocation and recurse forever. The same filter
// covers replacement commands that resolve back to a shim (e.g. a
// replacement of "ls --color" for ls).
func (s *service) locate(name string) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) {
		canonical, err := s.search.Canonical(name)
		if err == nil && canonical == s.selfCanonical {
			return "", fmt.Errorf("'%s' resolves to the shadow binary itself: %w", name, shadow.ErrOriginalNotFound)
		}
		return name, nil
	}

	for _, dir := range s.search.Dirs() {
		candidate, ok := s.search.Executable(dir, name)
		if !ok {
			continue
		}
		canonical, err := s.search.Canonical(candidate)
		if err != nil {
			continue
		}
		if canonical == s.selfCanonical {
			continue
		}
		return candidate, nil
	}
	return "", fmt.Errorf("'%s': no candidate on PATH besides the shim: %w", name, shadow.ErrOriginalNotFound)
}
