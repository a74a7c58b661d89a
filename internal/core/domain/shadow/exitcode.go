package shadow

import "errors"

// ExitCode is the process exit status reported for an invocation.
// Successful shim invocations instead propagate the child's own status.
type ExitCode int

const (
	ExitSuccess          ExitCode = 0
	ExitGeneralError     ExitCode = 1
	ExitStoreError       ExitCode = 2
	ExitInvalidArguments ExitCode = 64
	ExitCommandNotFound  ExitCode = 127
	ExitCommandFailed    ExitCode = 128
	ExitDuplicate        ExitCode = 129
)

// ExitCodeFor maps an error to the exit status the process should
// terminate with. Unrecognized errors map to ExitGeneralError.
func ExitCodeFor(err error) ExitCode {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrStoreCorrupt):
		return ExitStoreError
	case errors.Is(err, ErrInvalidBinPath), errors.Is(err, ErrAmbiguousShadow):
		return ExitInvalidArguments
	case errors.Is(err, ErrShadowNotFound), errors.Is(err, ErrOriginalNotFound):
		return ExitCommandNotFound
	case errors.Is(err, ErrCommandFailed):
		return ExitCommandFailed
	case errors.Is(err, ErrAlreadyShadowed), errors.Is(err, ErrNameCollision):
		return ExitDuplicate
	default:
		return ExitGeneralError
	}
}
