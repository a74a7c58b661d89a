package cli

import (
	"fmt"

	"github.com/hcastellon/shdw/internal/core/ports"
	"github.com/hcastellon/shdw/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the 'remove' subcommand.
func NewRemoveCommand(installService ports.InstallService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a shadow, restoring the original command.",
		Long: `Deletes the shim symlink and the recorded shadow for <name>.
If the same name is shadowed in several directories, --bin-path picks
which one to remove.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemoveCmd(cmd, args, installService)
		},
	}

	cmd.Flags().String("bin-path", "", "Directory containing the shim symlink to remove.")

	return cmd
}

func runRemoveCmd(cmd *cobra.Command, args []string, installService ports.InstallService) error {
	binPath, _ := cmd.Flags().GetString("bin-path")

	result, err := installService.Remove(args[0], binPath)
	if err != nil {
		return fmt.Errorf("could not remove shadow: %w", err)
	}

	if result.LinkMissing {
		fmt.Println(ui.WarningColor(fmt.Sprintf(
			"No shim symlink found at %s; removed the stale record anyway.",
			result.Removed.BinPath+"/"+result.Removed.Name)))
	}
	fmt.Printf("%s %s %s\n",
		ui.SuccessColor("Removed shadow:"),
		ui.ShadowNameColor(result.Removed.Name),
		ui.DetailColor("["+result.Removed.BinPath+"]"),
	)
	return nil
}
