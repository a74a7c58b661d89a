package cli

import (
	"fmt"

	"github.com/hcastellon/shdw/internal/core/ports"
	"github.com/spf13/cobra"
)

// ProgramName is the canonical management name of the binary. Being
// invoked under any other name means a shim symlink was executed and
// control belongs to the dispatcher, not to these commands.
const ProgramName = "shdw"

func NewRootCommand(version string, installService ports.InstallService) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   ProgramName,
		Short: "shdw transparently replaces shell commands via symlink shims.",
		Long: `shdw shadows a command name by installing a symlink that redirects
invocations of that name back through shdw, which then runs the replacement
command you configured. Pass --raw (or -R) as the first argument of a
shadowed command to run the original binary instead.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if installService == nil {
				return fmt.Errorf("install service not initialized for command %s", cmd.Name())
			}
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(NewAddCommand(installService))
	rootCmd.AddCommand(NewRemoveCommand(installService))
	rootCmd.AddCommand(NewListCommand(installService))

	return rootCmd
}
