// Package cli implements the riolayout command-line interface.
//
// This package provides commands for validating client-reported layouts
// against the authoritative server-side computation, exporting computed
// layouts in several formats, and managing recorded snapshots. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - check: Recompute a scene's layout and compare it with the client report
//   - dump: Export the computed and measured records as JSON
//   - render: Draw the computed geometry as an SVG
//   - graph: Render the component tree structure as a Graphviz diagram
//   - tree: Print the component tree to the terminal
//   - inspect: Browse records interactively
//   - listen: Receive layout reports pushed by clients over HTTP
//   - snapshots: Manage recorded client snapshots
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/drodenkirchen/rio/pkg/buildinfo"
	"github.com/drodenkirchen/rio/pkg/snapshot"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "riolayout"

	// defaultTolerance is the comparison tolerance in layout units. Clients
	// report at one decimal, so disagreements below 0.1 are noise.
	defaultTolerance = 0.1
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Riolayout validates client UI layouts server-side",
		Long:         `Riolayout recomputes the layout of a UI component tree from scratch and compares it against what the rendering client measured, pinpointing layout bugs down to the individual record field.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(log.WithContext(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.dumpCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.listenCommand())
	root.AddCommand(c.snapshotsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Snapshot Store Factory
// =============================================================================

// newStore creates the snapshot store used for recording and replay.
func newStore() (snapshot.Store, error) {
	dir, err := snapshotDir()
	if err != nil {
		return snapshot.NewNull(), nil
	}
	return snapshot.NewFileStore(dir)
}

// =============================================================================
// Paths
// =============================================================================

// snapshotDir returns the snapshot directory using XDG standard
// (~/.cache/riolayout/snapshots/).
func snapshotDir() (string, error) {
	return snapshot.DefaultDir(appName)
}
