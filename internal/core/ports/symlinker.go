package ports

/*
Symlinker defines the OS symlink primitives the core consumes. The core
never touches the filesystem namespace directly; an adapter provides
these operations so services stay testable without a real filesystem.
*/
type Symlinker interface {
	// Create makes a symbolic link at link pointing to target.
	Create(target, link string) error

	// Resolve returns the immediate target of the symlink at link.
	Resolve(link string) (string, error)

	// Remove deletes the entry at link.
	Remove(link string) error

	// Probe reports whether link exists and, if so, whether it is a
	// symlink. A missing entry is (false, false, nil), not an error.
	Probe(link string) (exists bool, isSymlink bool, err error)
}
