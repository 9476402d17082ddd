package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/filter"
	"github.com/abhisek/studyplan/internal/sessions"
	"github.com/abhisek/studyplan/internal/timeutil"
)

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"sessions"},
	Short:   "Add, edit, and list planner sessions",
}

var sessionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a session manually",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		in := sessions.Input{}
		applySessionFlags(cmd, &in)
		s, err := d.sessions.Save(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s on %s %s-%s (%s)\n", s.Subject, s.DateKey(), s.Start, s.End, s.ID)
		return nil
	},
}

var sessionEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a session; unset flags keep their current values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		id, err := resolveID(cmd.Context(), d.sessions, args[0])
		if err != nil {
			return err
		}
		cur, err := d.sessions.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		in := sessions.Input{
			ID:       cur.ID,
			Subject:  cur.Subject,
			Date:     cur.DateKey(),
			Start:    cur.Start,
			End:      cur.End,
			Priority: string(cur.Priority),
		}
		applySessionFlags(cmd, &in)

		s, err := d.sessions.Save(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s on %s %s-%s\n", s.Subject, s.DateKey(), s.Start, s.End)
		return nil
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		id, err := resolveID(cmd.Context(), d.sessions, args[0])
		if err != nil {
			return err
		}
		if err := d.sessions.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Deleted", id)
		return nil
	},
}

var sessionDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a session between scheduled and completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		id, err := resolveID(cmd.Context(), d.sessions, args[0])
		if err != nil {
			return err
		}
		s, err := d.sessions.ToggleComplete(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", s.Subject, s.Status)
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List sessions (optionally for one date or matching a filter)",
	Example: `  studyplan session list --date 2025-03-03
  studyplan session list --filter 'priority == "High" && !completed'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		expr, _ := cmd.Flags().GetString("filter")

		f, err := filter.Compile(expr)
		if err != nil {
			return err
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		var list []sessions.Session
		if date != "" {
			day, err := timeutil.ParseDate(date)
			if err != nil {
				return err
			}
			list, err = d.sessions.ForDate(cmd.Context(), day)
			if err != nil {
				return err
			}
		} else {
			list, err = d.sessions.List(cmd.Context())
			if err != nil {
				return err
			}
		}

		list, err = f.Apply(list)
		if err != nil {
			return err
		}
		printSessions(cmd.OutOrStdout(), list)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{sessionAddCmd, sessionEditCmd} {
		c.Flags().String("subject", "", "Subject or topic")
		c.Flags().String("date", "", "Date (YYYY-MM-DD)")
		c.Flags().String("start", "", "Start time (HH:MM)")
		c.Flags().String("end", "", "End time (HH:MM)")
		c.Flags().String("priority", "", "Crucial, High, Medium, or Low")
	}
	sessionListCmd.Flags().String("date", "", "Only sessions on this date (YYYY-MM-DD)")
	sessionListCmd.Flags().String("filter", "", "CEL expression over subject, date, weekday, start, end, duration, priority, status, completed")

	sessionCmd.AddCommand(sessionAddCmd)
	sessionCmd.AddCommand(sessionEditCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
	sessionCmd.AddCommand(sessionDoneCmd)
	sessionCmd.AddCommand(sessionListCmd)
}

// applySessionFlags overwrites fields of in whose flags were set.
func applySessionFlags(cmd *cobra.Command, in *sessions.Input) {
	set := func(name string, dst *string) {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	set("subject", &in.Subject)
	set("date", &in.Date)
	set("start", &in.Start)
	set("end", &in.End)
	set("priority", &in.Priority)
}

func printSessions(w io.Writer, list []sessions.Session) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No sessions found.")
		return
	}

	fmt.Fprintf(w, "%-8s  %-10s  %-3s  %-11s  %-36s  %-8s  %s\n",
		"ID", "Date", "Day", "Time", "Subject", "Priority", "Done")
	fmt.Fprintln(w, strings.Repeat("─", 96))

	for _, s := range list {
		subject := truncate(s.Subject, 36)
		done := " "
		if s.Completed() {
			done = "✓"
		}
		fmt.Fprintf(w, "%-8s  %-10s  %-3s  %-11s  %-36s  %-8s  %s\n",
			shortID(s.ID),
			s.DateKey(),
			s.Date.Weekday().String()[:3],
			s.Start+"-"+s.End,
			subject,
			s.Priority,
			done,
		)
	}
	fmt.Fprintf(w, "\n%d sessions\n", len(list))
}

// truncate shortens s to at most width terminal cells, ending in "...".
func truncate(s string, width int) string {
	return ansi.Truncate(s, width, "...")
}

// resolveID expands a unique ID prefix, as printed by "session list".
func resolveID(ctx context.Context, svc *sessions.Service, prefix string) (string, error) {
	all, err := svc.List(ctx)
	if err != nil {
		return "", err
	}
	if _, ok := lo.Find(all, func(s sessions.Session) bool { return s.ID == prefix }); ok {
		return prefix, nil
	}
	matches := lo.Filter(all, func(s sessions.Session, _ int) bool { return strings.HasPrefix(s.ID, prefix) })
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", sessions.ErrNotFound, prefix)
	case 1:
		return matches[0].ID, nil
	default:
		return "", fmt.Errorf("id prefix %q matches %d sessions", prefix, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
