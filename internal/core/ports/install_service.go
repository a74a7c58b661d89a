package ports

import "github.com/hcastellon/shdw/internal/core/domain/shadow"

// RemoveResult reports what a remove operation did, so the handler can
// surface the one tolerated inconsistency (a missing symlink) without
// failing the invocation.
type RemoveResult struct {
	Removed shadow.Shadow
	// LinkMissing is true when the store record existed but no symlink
	// was found at its location (or the location held a non-symlink,
	// which is left in place). The record is still removed.
	LinkMissing bool
}

// InstallService defines the contract for managing shadow installations:
// bringing the symlink and the store record into agreement.
type InstallService interface {
	// Add shadows name with command, installing a shim symlink in
	// binPath (or the configured default when binPath is empty).
	// It fails with shadow.ErrAlreadyShadowed if the pair is already
	// recorded, and never overwrites a foreign file at the link path.
	Add(name, command, description, binPath string) (shadow.Shadow, error)

	// Remove deletes the symlink and the record for name. With an empty
	// binPath it matches any directory, failing with
	// shadow.ErrAmbiguousShadow when several match.
	Remove(name, binPath string) (RemoveResult, error)

	// List returns all shadows sorted by name, then bin path.
	List() (shadow.Shadows, error)
}
