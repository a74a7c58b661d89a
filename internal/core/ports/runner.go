package ports

// Runner defines an interface for executing a fully resolved command.
type Runner interface {
	// Run executes path with args, inheriting the caller's standard
	// streams and environment, and returns the child's exit status.
	// A non-zero child status is not an error; err is set only when the
	// command could not be spawned at all.
	Run(path string, args []string) (int, error)
}
