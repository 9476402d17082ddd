package scheduler

import (
	"time"

	"github.com/abhisek/studyplan/internal/timeutil"
)

// Priority tags how important a session is.
type Priority string

const (
	PriorityCrucial Priority = "Crucial"
	PriorityHigh    Priority = "High"
	PriorityMedium  Priority = "Medium"
	PriorityLow     Priority = "Low"
)

// Priorities lists every valid priority, most important first.
var Priorities = []Priority{PriorityCrucial, PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}

const (
	// QuantumMinutes is the fixed allocation granularity within a slot.
	QuantumMinutes = 60

	// ReviewBudgetRatio is the share of total workload reserved for review.
	ReviewBudgetRatio = 0.2

	// ReviewMinAgeDays and ReviewMaxAgeDays bound the spaced review window.
	ReviewMinAgeDays = 2
	ReviewMaxAgeDays = 4

	// ReviewWeight is the difficulty weight whose topics earn a spaced review.
	ReviewWeight = 3

	// FillerSubject labels generic revision sessions.
	FillerSubject = "General Revision & Practice"

	reviewPrefix = "Review: "
)

// Session is a single time-stamped block produced by the engine.
type Session struct {
	ID       string
	Subject  string
	Date     time.Time
	Start    string
	End      string
	Duration int
	Priority Priority
	Review   bool
}

// DateKey returns the session date as YYYY-MM-DD.
func (s Session) DateKey() string {
	return timeutil.DateKey(s.Date)
}

// Day holds the sessions placed on one calendar date, in start order.
type Day struct {
	Date     time.Time
	Sessions []Session
}

// Schedule is the engine output: every horizon date in chronological order.
type Schedule struct {
	Days []Day
}

// SessionCount returns the number of sessions across all days.
func (s Schedule) SessionCount() int {
	n := 0
	for _, d := range s.Days {
		n += len(d.Sessions)
	}
	return n
}

// On returns the sessions scheduled on the given date.
func (s Schedule) On(date time.Time) []Session {
	key := timeutil.DateKey(timeutil.Day(date))
	for _, d := range s.Days {
		if timeutil.DateKey(d.Date) == key {
			return d.Sessions
		}
	}
	return nil
}

// Sessions returns every session in chronological order.
func (s Schedule) Sessions() []Session {
	var all []Session
	for _, d := range s.Days {
		all = append(all, d.Sessions...)
	}
	return all
}
