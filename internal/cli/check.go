package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/drodenkirchen/rio/pkg/layouter"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	source    sourceOpts
	tolerance float64 // comparison tolerance in layout units
	limit     int     // cap on mismatch rows displayed
}

// checkCommand creates the check command, the core validation workflow:
// recompute the layout and compare it field by field with the client
// report. A non-empty diff makes the command fail so it can gate CI.
func (c *CLI) checkCommand() *cobra.Command {
	opts := checkOpts{tolerance: defaultTolerance, limit: 50}

	cmd := &cobra.Command{
		Use:   "check [scene]",
		Short: "Compare the computed layout against the client report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], &opts)
		},
	}

	addSourceFlags(cmd, &opts.source)
	cmd.Flags().Float64Var(&opts.tolerance, "tolerance", opts.tolerance, "largest accepted disagreement in layout units")
	cmd.Flags().IntVar(&opts.limit, "limit", opts.limit, "maximum number of mismatch rows to display")

	return cmd
}

func runCheck(cmd *cobra.Command, scenePath string, opts *checkOpts) error {
	ctx := cmd.Context()
	logger := log.FromContext(ctx)
	prog := newProgress(logger)

	ly, sc, err := loadAndCompute(ctx, scenePath, &opts.source)
	if err != nil {
		return err
	}

	mismatches := ly.Diff(opts.tolerance)
	prog.done(fmt.Sprintf("Compared %d components", len(ly.Order())))

	printKeyValue("scene", sc.Name)
	printKeyValue("window", fmt.Sprintf("%g x %g", ly.WindowWidth, ly.WindowHeight))
	printKeyValue("run", ly.RunID.String())
	printStats(len(ly.Order()), len(mismatches))

	if len(mismatches) == 0 {
		printSuccess("Client layout agrees with the computed layout (tolerance %g)", opts.tolerance)
		return nil
	}

	fmt.Println(renderMismatchTable(mismatches, opts.limit))
	if len(mismatches) > opts.limit {
		printDetail("%d more mismatches not shown (raise --limit)", len(mismatches)-opts.limit)
	}
	printNextStep("Inspect a component interactively", fmt.Sprintf("%s inspect %s", appName, scenePath))

	return fmt.Errorf("%d fields disagree beyond tolerance %g", len(mismatches), opts.tolerance)
}

// renderMismatchTable formats mismatches as a bordered table, one row per
// disagreeing field.
func renderMismatchTable(mismatches []layouter.Mismatch, limit int) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for i, m := range mismatches {
		if i >= limit {
			break
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.ID),
			m.Kind.String(),
			m.Field,
			fmt.Sprintf("%.1f", m.Should),
			fmt.Sprintf("%.1f", m.Are),
			fmt.Sprintf("%.1f", m.Delta()),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Kind", "Field", "Should", "Are", "Delta").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 3:
				return StyleSuccess
			case 4:
				return StyleError
			case 5:
				return StyleWarning
			default:
				return StyleValue
			}
		}).
		Render()
}
