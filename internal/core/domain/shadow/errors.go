package shadow

import "errors"

// Sentinel errors for every failure kind the core can report. Callers
// branch with errors.Is; messages built on top of these add the name,
// path, or underlying cause.
var (
	// ErrStoreCorrupt means the persisted store file exists but cannot
	// be parsed.
	ErrStoreCorrupt = errors.New("shadow store is corrupt")

	// ErrInvalidBinPath means the requested symlink directory does not
	// exist and could not be created.
	ErrInvalidBinPath = errors.New("invalid bin path")

	// ErrAlreadyShadowed means a record for (name, bin path) already
	// exists. Add is not idempotent; remove first.
	ErrAlreadyShadowed = errors.New("command already shadowed")

	// ErrNameCollision means the symlink location is occupied by a file
	// that is not one of our shims. It is never overwritten.
	ErrNameCollision = errors.New("name collides with an existing file")

	// ErrShadowNotFound means no record matches the requested name, or a
	// shim symlink exists that the store does not know about.
	ErrShadowNotFound = errors.New("no shadow found")

	// ErrAmbiguousShadow means a name-only lookup matched records in
	// more than one directory.
	ErrAmbiguousShadow = errors.New("shadow name is ambiguous")

	// ErrOriginalNotFound means no PATH entry for the invoked name
	// resolves to anything other than the shim binary itself.
	ErrOriginalNotFound = errors.New("original binary not found")

	// ErrCommandFailed means a fully resolved command could not be
	// spawned. Distinct from the child's own non-zero exit status, which
	// passes through untouched.
	ErrCommandFailed = errors.New("command execution failed")
)
