package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all planner sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		all, err := d.sessions.List(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(all) == 0 {
			fmt.Fprintln(out, "Nothing to reset.")
			return nil
		}
		if force, _ := cmd.Flags().GetBool("force"); !force {
			fmt.Fprintf(out, "This deletes all %d sessions. Re-run with --force to confirm.\n", len(all))
			return nil
		}

		if err := d.sessions.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d sessions.\n", len(all))
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation")
}
