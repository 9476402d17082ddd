// Package materialize turns scheduler output into a render-ready view.
package materialize

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/abhisek/studyplan/internal/scheduler"
	"github.com/abhisek/studyplan/internal/timeutil"
)

// HeaderLayout formats day-group headers, e.g. "Monday, Mar 3".
const HeaderLayout = "Monday, Jan 2"

// NoPlacementMessage is shown when the run placed nothing.
const NoPlacementMessage = "The scheduler could not assign tasks within the available time slots. " +
	"Check the deadline and topics, or add more availability."

// Item is a session annotated for display.
type Item struct {
	Session scheduler.Session
	Display string
	Review  bool
}

// Group is one non-empty day of the schedule.
type Group struct {
	DateKey string
	Header  string
	Items   []Item
}

// View is the presentation form of a scheduling result.
type View struct {
	Groups []Group

	WorkloadHours  int
	AvailableHours int

	// Warning is non-empty when the workload exceeds available time.
	Warning string

	NoPlacement bool
	Message     string
}

// Materialize builds the view for res. It does not modify res.
func Materialize(res *scheduler.Result) View {
	v := View{
		WorkloadHours:  ceilHours(res.WorkloadMinutes),
		AvailableHours: res.AvailableMinutes / 60,
	}
	if res.CapacityWarning {
		v.Warning = fmt.Sprintf(
			"Workload (%d hours) exceeds available time (%d hours). The schedule will be tight and incomplete.",
			v.WorkloadHours, v.AvailableHours)
	}

	days := lo.Filter(res.Schedule.Days, func(d scheduler.Day, _ int) bool {
		return len(d.Sessions) > 0
	})
	v.Groups = lo.Map(days, func(d scheduler.Day, _ int) Group {
		return Group{
			DateKey: timeutil.DateKey(d.Date),
			Header:  d.Date.Format(HeaderLayout),
			Items:   lo.Map(d.Sessions, func(s scheduler.Session, _ int) Item { return itemFor(s) }),
		}
	})

	if len(v.Groups) == 0 {
		v.NoPlacement = true
		v.Message = NoPlacementMessage
	}
	return v
}

// Display formats a session's time range, e.g. "18:00 - 19:00 (60 min)".
func Display(start, end string, duration int) string {
	return fmt.Sprintf("%s - %s (%d min)", start, end, duration)
}

func itemFor(s scheduler.Session) Item {
	return Item{
		Session: s,
		Display: Display(s.Start, s.End, s.Duration),
		Review:  s.Review,
	}
}

func ceilHours(minutes int) int {
	return (minutes + 59) / 60
}
