package cli

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/drodenkirchen/rio/pkg/export"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	source   sourceOpts
	output   string // output file path
	measured bool   // draw the client-measured geometry instead of the computed one
	noLabels bool   // suppress per-component labels
}

// renderCommand creates the render command for drawing the computed
// geometry to scale as an SVG.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Draw the computed layout geometry as an SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)

			ly, sc, err := loadAndCompute(ctx, args[0], &opts.source)
			if err != nil {
				return err
			}

			var svgOpts []export.SVGOption
			if opts.measured {
				svgOpts = append(svgOpts, export.WithMeasured())
			}
			if opts.noLabels {
				svgOpts = append(svgOpts, export.WithoutLabels())
			}

			data := export.RenderSVG(ly, svgOpts...)
			logger.Debugf("Rendered scene %q: %d bytes", sc.Name, len(data))

			output := opts.output
			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".svg"
			}
			return writeOutput(data, output)
		},
	}

	addSourceFlags(cmd, &opts.source)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: derived from the scene path)")
	cmd.Flags().BoolVar(&opts.measured, "measured", false, "draw the client-measured geometry instead")
	cmd.Flags().BoolVar(&opts.noLabels, "no-labels", false, "suppress per-component labels")

	return cmd
}
