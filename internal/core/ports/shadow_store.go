package ports

import "github.com/hcastellon/shdw/internal/core/domain/shadow"

/*
ShadowStore defines the contract for the durable record of shadow
relationships. This is a driven port, implemented by a repository
adapter that owns the on-disk format.
*/
type ShadowStore interface {
	// Load reads the persisted state, returning an empty state with
	// defaulted settings if nothing has been persisted yet. A file that
	// exists but cannot be parsed is reported as shadow.ErrStoreCorrupt.
	Load() (shadow.StoreState, error)

	// Save writes the full state back, replacing prior content. The
	// write is atomic with respect to process crash: concurrent readers
	// either see the old file or the new one, never a torn write.
	Save(state shadow.StoreState) error

	// Path returns the location of the backing file, for diagnostics.
	Path() string
}
