package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// snapshotsCommand creates the snapshot store management command.
func (c *CLI) snapshotsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "Manage recorded client snapshots",
	}

	cmd.AddCommand(c.snapshotsListCommand())
	cmd.AddCommand(c.snapshotsClearCommand())
	cmd.AddCommand(c.snapshotsPathCommand())

	return cmd
}

// snapshotsListCommand creates the "snapshots list" subcommand.
func (c *CLI) snapshotsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded snapshots, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore()
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				printInfo("No snapshots recorded")
				return nil
			}

			for _, e := range entries {
				printKeyValue(e.SavedAt.Local().Format("Jan 2 15:04"),
					fmt.Sprintf("%s (%d records)", e.Key, len(e.Snapshot.Records)))
			}
			return nil
		},
	}
}

// snapshotsClearCommand creates the "snapshots clear" subcommand.
func (c *CLI) snapshotsClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore()
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			count := 0
			for _, e := range entries {
				if err := store.Delete(cmd.Context(), e.Key); err == nil {
					count++
				}
			}

			printSuccess("Cleared %d recorded snapshots", count)
			return nil
		},
	}
}

// snapshotsPathCommand creates the "snapshots path" subcommand.
func (c *CLI) snapshotsPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the snapshot directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := snapshotDir()
			if err != nil {
				return fmt.Errorf("get snapshot dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}
