package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/drodenkirchen/rio/pkg/export"
)

// treeCommand creates the tree command for printing the component tree to
// the terminal, optionally annotated with computed geometry.
func (c *CLI) treeCommand() *cobra.Command {
	var geometry bool
	var opts sourceOpts

	cmd := &cobra.Command{
		Use:   "tree [scene]",
		Short: "Print the component tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !geometry {
				root, _, err := loadTree(args[0])
				if err != nil {
					return err
				}
				return export.WriteTree(os.Stdout, root, nil)
			}

			ly, _, err := loadAndCompute(cmd.Context(), args[0], &opts)
			if err != nil {
				return err
			}
			return export.WriteTree(os.Stdout, ly.Root(), export.GeometryLabel(ly))
		},
	}

	addSourceFlags(cmd, &opts)
	cmd.Flags().BoolVarP(&geometry, "geometry", "g", false, "annotate each component with its computed position and size")

	return cmd
}
