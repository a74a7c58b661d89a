package cli

import (
	"fmt"
	"os"

	"github.com/hcastellon/shdw/internal/core/ports"
	"github.com/hcastellon/shdw/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(installService ports.InstallService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configured shadows.",
		Long:  `Displays every shadow in the store, sorted by name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, installService)
		},
	}
	return cmd
}

func runListCmd(
	_ *cobra.Command,
	_ []string,
	installService ports.InstallService,
) error {
	shadows, err := installService.List()
	if err != nil {
		return fmt.Errorf("could not list shadows: %w", err)
	}

	if len(shadows) == 0 {
		fmt.Println(ui.InfoColor("No shadows configured."))
		return nil
	}

	fmt.Println(ui.HeaderColor("Configured shadows:"))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Command", "Bin Path", "Description"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, sh := range shadows {
		table.Append([]string{sh.Name, sh.Command, sh.BinPath, sh.Description})
	}
	table.Render()
	return nil
}
