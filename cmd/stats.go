package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
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
		sum := stats.Compute(all, time.Now())

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Time studied:        %s\n", stats.FormatMinutes(sum.TotalMinutes))
		fmt.Fprintf(out, "Sessions completed:  %d of %d\n", sum.Completed, sum.Completed+sum.Scheduled)
		fmt.Fprintf(out, "Current streak:      %d days\n", sum.StreakDays)

		if len(sum.Subjects) == 0 {
			return nil
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%-36s  %s\n", "Subject", "Time")
		for _, st := range sum.Subjects {
			fmt.Fprintf(out, "%-36s  %s\n", st.Subject, stats.FormatMinutes(st.Minutes))
		}
		return nil
	},
}
