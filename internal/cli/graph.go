package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drodenkirchen/rio/pkg/export"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// graphCommand creates the graph command for rendering the component tree
// structure (not its geometry) as a node-link diagram.
func (c *CLI) graphCommand() *cobra.Command {
	var output, format string
	var detailed bool

	cmd := &cobra.Command{
		Use:   "graph [scene]",
		Short: "Render the component tree as a Graphviz diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatDOT && format != formatSVG {
				return fmt.Errorf("invalid format: %s (must be 'dot' or 'svg')", format)
			}

			root, _, err := loadTree(args[0])
			if err != nil {
				return err
			}

			dot := export.ToDOT(root, export.DiagramOptions{Detailed: detailed})
			data := []byte(dot)
			if format == formatSVG {
				if data, err = export.RenderDiagram(dot); err != nil {
					return err
				}
			}

			if output == "" && format == formatSVG {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + "_structure.svg"
			}
			return writeOutput(data, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout for dot, derived path for svg)")
	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot or svg")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include constraints and alignment in node labels")

	return cmd
}
