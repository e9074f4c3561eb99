package cli

import (
	"bytes"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/drodenkirchen/rio/pkg/export"
)

// dumpCommand creates the dump command for exporting a finished
// computation as JSON.
func (c *CLI) dumpCommand() *cobra.Command {
	var output string
	var opts sourceOpts

	cmd := &cobra.Command{
		Use:   "dump [scene]",
		Short: "Export computed and measured layout records as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)

			ly, sc, err := loadAndCompute(ctx, args[0], &opts)
			if err != nil {
				return err
			}
			logger.Debugf("Computed layout for scene %q: %d components", sc.Name, len(ly.Order()))

			var buf bytes.Buffer
			if err := export.WriteJSON(ly, &buf); err != nil {
				return err
			}
			return writeOutput(buf.Bytes(), output)
		},
	}

	addSourceFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
