package cli

import (
	"fmt"
	"os"

	"github.com/hcastellon/shdw/internal/core/domain/shadow"
	"github.com/hcastellon/shdw/internal/core/ports"
	"github.com/hcastellon/shdw/internal/handlers/ui"
)

// RunShim drives one shim invocation and returns the process exit
// status: the dispatched command's own status on success, or the exit
// code for the resolution failure. Resolution failures never fall back
// to executing anything.
func RunShim(dispatcher ports.DispatchService, argv0 string, args []string) int {
	code, err := dispatcher.Dispatch(argv0, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(err.Error()))
		return int(shadow.ExitCodeFor(err))
	}
	return code
}
