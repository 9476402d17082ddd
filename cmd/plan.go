package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/materialize"
	"github.com/abhisek/studyplan/internal/planfile"
	"github.com/abhisek/studyplan/internal/scheduler"
	planscreen "github.com/abhisek/studyplan/internal/screens/plan"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a study schedule up to a deadline",
	Long: `Generate a study schedule from topics, a deadline, and weekly free time.

The deadline must be today or later; a date in the past is rejected rather
than counted backwards. Schedules cover at most 14 days from today, and
overlapping free-time slots on the same weekday are merged.`,
	Example: `  studyplan plan --deadline 2025-03-10 --topic "Calculus:3" --topic "Physics:2" --slot "Mon 18:00-20:00" --slot "Wed 18:00-20:00"
  studyplan plan --file plan.json --save`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringP("file", "f", "", "JSON plan file")
	planCmd.Flags().String("deadline", "", "Deadline date (YYYY-MM-DD), today or later")
	planCmd.Flags().String("today", "", "First day of the schedule (YYYY-MM-DD, default today)")
	planCmd.Flags().StringArray("topic", nil, "Topic as NAME:WEIGHT, weight 1-3 (repeatable)")
	planCmd.Flags().StringArray("slot", nil, `Weekly free time as "DAY HH:MM-HH:MM" (repeatable)`)
	planCmd.Flags().Bool("save", false, "Add the generated sessions to the planner")
}

func runPlan(cmd *cobra.Command, args []string) error {
	p, err := planFromFlags(cmd)
	if err != nil {
		return err
	}

	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	res, err := generateFromPlan(d, p)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, strings.Join(planscreen.RenderLines(materialize.Materialize(res), 100), "\n"))

	if save, _ := cmd.Flags().GetBool("save"); save && !res.Empty() {
		n, err := d.sessions.AddSchedule(cmd.Context(), res.Schedule)
		if err != nil {
			return fmt.Errorf("save schedule: %w", err)
		}
		fmt.Fprintf(out, "Saved %d sessions.\n", n)
	}
	return nil
}

// planFromFlags reads --file, or assembles a plan from the inline flags.
func planFromFlags(cmd *cobra.Command) (*planfile.Plan, error) {
	file, _ := cmd.Flags().GetString("file")
	deadline, _ := cmd.Flags().GetString("deadline")
	today, _ := cmd.Flags().GetString("today")
	topics, _ := cmd.Flags().GetStringArray("topic")
	slots, _ := cmd.Flags().GetStringArray("slot")

	if file != "" {
		if deadline != "" || len(topics) > 0 || len(slots) > 0 {
			return nil, errors.New("use --file or --deadline/--topic/--slot, not both")
		}
		return loadPlanFile(file)
	}

	p := &planfile.Plan{Today: today, Deadline: deadline}
	for _, s := range topics {
		t, err := planfile.ParseTopic(s)
		if err != nil {
			return nil, err
		}
		p.Topics = append(p.Topics, t)
	}
	for _, s := range slots {
		sl, err := planfile.ParseSlot(s)
		if err != nil {
			return nil, err
		}
		p.Slots = append(p.Slots, sl)
	}
	return p, nil
}

func loadPlanFile(path string) (*planfile.Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open plan file: %w", err)
	}
	defer f.Close()
	return planfile.Load(f)
}

func generateFromPlan(d *deps, p *planfile.Plan) (*scheduler.Result, error) {
	req, err := p.Request()
	if err != nil {
		return nil, err
	}
	return generate(d, req)
}

func generateFromFile(d *deps, path string) (*scheduler.Result, error) {
	p, err := loadPlanFile(path)
	if err != nil {
		return nil, err
	}
	return generateFromPlan(d, p)
}
