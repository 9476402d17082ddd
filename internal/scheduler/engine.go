package scheduler

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/studyplan/internal/availability"
	"github.com/abhisek/studyplan/internal/timeutil"
	"github.com/abhisek/studyplan/internal/workload"
)

// Options tunes an engine run.
type Options struct {
	// NewID generates session identifiers. Defaults to uuid.NewString.
	NewID func() string
}

func (o Options) newID() string {
	if o.NewID != nil {
		return o.NewID()
	}
	return uuid.NewString()
}

// Outcome is the result of a single engine run.
type Outcome struct {
	Schedule Schedule

	// Units is the work queue after the run, in allocation order. Units with
	// Remaining > 0 could not be placed within the horizon.
	Units []workload.Unit

	ReviewMinutes int
}

// UnscheduledMinutes returns the workload left over after the run.
func (o Outcome) UnscheduledMinutes() int {
	n := 0
	for _, u := range o.Units {
		n += u.Remaining
	}
	return n
}

// engine carries the mutable state of one allocation run.
type engine struct {
	opts          Options
	queue         []workload.Unit
	checklist     *reviewChecklist
	reviewBudget  float64
	reviewMinutes int
	midpoint      int
}

// Run greedily allocates the workload into the calendar's windows.
//
// Each window is carved into QuantumMinutes blocks; leftovers shorter than a
// quantum are discarded. Every block goes to the first applicable of: a due
// spaced review (from the horizon midpoint on), the first unit with time
// remaining, or filler revision while the review budget lasts. This is a
// heuristic and makes no optimality claim.
func Run(wl workload.Workload, cal availability.Calendar, opts Options) Outcome {
	queue := make([]workload.Unit, len(wl.Units))
	copy(queue, wl.Units)
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].Weight > queue[j].Weight
	})

	e := &engine{
		opts:         opts,
		queue:        queue,
		checklist:    newReviewChecklist(),
		reviewBudget: float64(wl.TotalMinutes) * ReviewBudgetRatio,
		midpoint:     len(cal.Days) / 2,
	}

	var sched Schedule
	for i, day := range cal.Days {
		placed := Day{Date: day.Date, Sessions: []Session{}}
		for _, w := range day.Windows {
			placed.Sessions = append(placed.Sessions, e.fillWindow(i, day.Date, w)...)
		}
		sched.Days = append(sched.Days, placed)
	}

	return Outcome{
		Schedule:      sched,
		Units:         e.queue,
		ReviewMinutes: e.reviewMinutes,
	}
}

func (e *engine) fillWindow(dayIndex int, date time.Time, w availability.Window) []Session {
	var out []Session
	cursor := w.StartMin
	left := w.Duration

	for left >= QuantumMinutes {
		s, ok := e.next(dayIndex, date)
		if !ok {
			break
		}
		s.ID = e.opts.newID()
		s.Date = date
		s.Start = timeutil.FormatClock(cursor)
		s.End = timeutil.FormatClock(cursor + s.Duration)
		out = append(out, s)

		cursor += s.Duration
		left -= s.Duration
	}
	return out
}

// next decides what fills the next quantum on the given day.
func (e *engine) next(dayIndex int, date time.Time) (Session, bool) {
	if dayIndex >= e.midpoint {
		if topic, ok := e.checklist.TakeEligible(date); ok {
			e.reviewMinutes += QuantumMinutes
			return Session{
				Subject:  reviewPrefix + topic,
				Duration: QuantumMinutes,
				Priority: PriorityCrucial,
				Review:   true,
			}, true
		}
	}

	for i := range e.queue {
		u := &e.queue[i]
		if u.Remaining <= 0 {
			continue
		}
		taken := u.Consume(QuantumMinutes)
		priority := PriorityMedium
		if u.Weight == ReviewWeight {
			priority = PriorityHigh
		}
		if u.Completed && u.Weight == ReviewWeight {
			e.checklist.Mark(u.Topic, date)
		}
		return Session{
			Subject:  u.Label,
			Duration: taken,
			Priority: priority,
		}, true
	}

	if float64(e.reviewMinutes) < e.reviewBudget {
		e.reviewMinutes += QuantumMinutes
		return Session{
			Subject:  FillerSubject,
			Duration: QuantumMinutes,
			Priority: PriorityLow,
			Review:   true,
		}, true
	}

	return Session{}, false
}
