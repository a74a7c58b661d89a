package ports

/*
DispatchService defines the contract for the shim path: resolving what
to run when the program is invoked under a shadowed name and running it.
*/
type DispatchService interface {
	// Dispatch resolves the invocation named by argv0 (the path or bare
	// name the process was launched as) against the shadow store and
	// executes either the replacement command or, for a raw bypass, the
	// original binary found on PATH. It returns the exit status to
	// propagate. When err is non-nil nothing was executed.
	Dispatch(argv0 string, args []string) (int, error)
}
