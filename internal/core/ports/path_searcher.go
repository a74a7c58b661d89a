package ports

/*
PathSearcher enumerates PATH candidates for an executable name. The
dispatch service owns the anti-recursion filtering; this port only
exposes the raw lookup primitives it filters over.
*/
type PathSearcher interface {
	// Dirs returns the PATH entries in search order.
	Dirs() []string

	// Executable returns the full path of dir/name and true when it
	// exists as an executable regular file (or a symlink to one).
	Executable(dir, name string) (string, bool)

	// Canonical resolves path to an absolute path with every symlink
	// expanded. Two paths naming the same binary canonicalize equal.
	Canonical(path string) (string, error)
}
