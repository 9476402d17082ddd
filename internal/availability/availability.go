package availability

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/abhisek/studyplan/internal/timeutil"
)

// MaxHorizonDays caps how far ahead a schedule is generated.
const MaxHorizonDays = 14

var ErrNoSlots = errors.New("at least one available study slot required")

// Slot is a weekly recurring window of study availability.
type Slot struct {
	Day   time.Weekday
	Start string
	End   string
}

// Window is a validated slot with its clock times resolved to minutes.
type Window struct {
	Day      time.Weekday
	Start    string
	End      string
	StartMin int
	Duration int
}

// DaySlots is the ordered set of windows open on a single calendar date.
type DaySlots struct {
	Date    time.Time
	Windows []Window
}

// Calendar is the per-date availability over a scheduling horizon.
type Calendar struct {
	Days         []DaySlots
	TotalMinutes int
}

// HorizonDays returns min(days-until-deadline + 1, MaxHorizonDays), where
// days-until-deadline is rounded up to whole days.
func HorizonDays(start, deadline time.Time) int {
	hours := deadline.Sub(timeutil.Day(start)).Hours()
	days := int(math.Ceil(hours / 24))
	return min(days+1, MaxHorizonDays)
}

// Windows validates slots and drops the ones with a non-positive duration.
// Malformed clock times are reported as errors.
func Windows(slots []Slot) ([]Window, error) {
	if len(slots) == 0 {
		return nil, ErrNoSlots
	}
	windows := make([]Window, 0, len(slots))
	for _, s := range slots {
		start, err := timeutil.ParseClock(s.Start)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", s.Day, err)
		}
		end, err := timeutil.ParseClock(s.End)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", s.Day, err)
		}
		if end-start <= 0 {
			continue
		}
		windows = append(windows, Window{
			Day:      s.Day,
			Start:    timeutil.FormatClock(start),
			End:      timeutil.FormatClock(end),
			StartMin: start,
			Duration: end - start,
		})
	}
	return windows, nil
}

// Resolve expands weekly slots into concrete dates in [start, start+horizon).
// Every date in the horizon is present, possibly with no windows.
func Resolve(slots []Slot, start time.Time, horizon int) (Calendar, error) {
	windows, err := Windows(slots)
	if err != nil {
		return Calendar{}, err
	}

	byDay := make(map[time.Weekday][]Window)
	for _, w := range windows {
		byDay[w.Day] = append(byDay[w.Day], w)
	}
	for d := range byDay {
		sort.SliceStable(byDay[d], func(i, j int) bool {
			return byDay[d][i].StartMin < byDay[d][j].StartMin
		})
		byDay[d] = merge(byDay[d])
	}

	first := timeutil.Day(start)
	var cal Calendar
	for i := 0; i < horizon; i++ {
		date := first.AddDate(0, 0, i)
		open := byDay[date.Weekday()]
		ds := DaySlots{Date: date, Windows: append([]Window(nil), open...)}
		for _, w := range open {
			cal.TotalMinutes += w.Duration
		}
		cal.Days = append(cal.Days, ds)
	}
	return cal, nil
}

// merge joins overlapping windows of one weekday, which must be sorted by
// start. Windows that only touch stay separate.
func merge(sorted []Window) []Window {
	out := make([]Window, 0, len(sorted))
	for _, w := range sorted {
		if n := len(out); n > 0 {
			last := &out[n-1]
			lastEnd := last.StartMin + last.Duration
			if w.StartMin < lastEnd {
				end := max(lastEnd, w.StartMin+w.Duration)
				last.Duration = end - last.StartMin
				last.End = timeutil.FormatClock(end)
				continue
			}
		}
		out = append(out, w)
	}
	return out
}
