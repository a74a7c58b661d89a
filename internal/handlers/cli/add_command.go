package cli

import (
	"fmt"
	"strings"

	"github.com/hcastellon/shdw/internal/core/ports"
	"github.com/hcastellon/shdw/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewAddCommand creates the 'add' subcommand.
func NewAddCommand(installService ports.InstallService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name> <command...>",
		Short: "Shadow a command name with a replacement command.",
		Long: `Installs a shim symlink for <name> and records the replacement.
Everything after <name> forms the replacement command line, so
'shdw add ls eza --tree' shadows ls with 'eza --tree'. Re-adding an
existing shadow fails; remove it first.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddCmd(cmd, args, installService)
		},
	}

	cmd.Flags().String("bin-path", "", "Directory to install the shim symlink in (default: configured bin path, else ~/.local/bin).")
	cmd.Flags().String("description", "", "Optional description shown by 'shdw list'.")

	// The replacement command line may carry its own flags; stop flag
	// parsing at the first positional so they reach the replacement
	// instead of cobra. Our flags go before <name>.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runAddCmd(cmd *cobra.Command, args []string, installService ports.InstallService) error {
	binPath, _ := cmd.Flags().GetString("bin-path")
	description, _ := cmd.Flags().GetString("description")

	name := args[0]
	command := strings.Join(args[1:], " ")

	rec, err := installService.Add(name, command, description, binPath)
	if err != nil {
		return fmt.Errorf("could not add shadow: %w", err)
	}

	fmt.Printf("%s %s %s %s\n",
		ui.SuccessColor("Added shadow:"),
		ui.ShadowNameColor(rec.Name),
		ui.ShadowCmdColor("-> "+rec.Command),
		ui.DetailColor("["+rec.BinPath+"]"),
	)
	return nil
}
