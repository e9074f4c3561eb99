package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// inspectCommand creates the inspect command, an interactive browser over
// the computed and measured records of a scene.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts sourceOpts
	tolerance := defaultTolerance

	cmd := &cobra.Command{
		Use:   "inspect [scene]",
		Short: "Browse layout records interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ly, _, err := loadAndCompute(cmd.Context(), args[0], &opts)
			if err != nil {
				return err
			}

			model := NewInspectModel(ly, tolerance)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	addSourceFlags(cmd, &opts)
	cmd.Flags().Float64Var(&tolerance, "tolerance", tolerance, "largest accepted disagreement in layout units")

	return cmd
}
