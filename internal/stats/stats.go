// Package stats summarizes completed study sessions.
package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/abhisek/studyplan/internal/sessions"
	"github.com/abhisek/studyplan/internal/timeutil"
)

// SubjectTotal is the completed time for one subject.
type SubjectTotal struct {
	Subject string
	Minutes int
}

// Summary holds progress figures over the persisted sessions.
type Summary struct {
	TotalMinutes int
	Completed    int
	Scheduled    int

	// StreakDays counts consecutive study days ending today or yesterday.
	StreakDays int

	// Subjects is in first-seen order.
	Subjects []SubjectTotal
}

// Compute builds a Summary. Only completed sessions count toward time,
// streak, and subject totals.
func Compute(all []sessions.Session, today time.Time) Summary {
	done := lo.Filter(all, func(s sessions.Session, _ int) bool { return s.Completed() })

	sum := Summary{
		Completed: len(done),
		Scheduled: len(all) - len(done),
	}

	index := make(map[string]int)
	for _, s := range done {
		sum.TotalMinutes += s.Duration
		name := SubjectName(s.Subject)
		i, ok := index[name]
		if !ok {
			i = len(sum.Subjects)
			index[name] = i
			sum.Subjects = append(sum.Subjects, SubjectTotal{Subject: name})
		}
		sum.Subjects[i].Minutes += s.Duration
	}

	dates := lo.Uniq(lo.Map(done, func(s sessions.Session, _ int) time.Time {
		return timeutil.Day(s.Date)
	}))
	sum.StreakDays = streak(dates, timeutil.Day(today))
	return sum
}

// streak walks the distinct study dates in order, keeping the run length
// current as of today or yesterday.
func streak(dates []time.Time, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	result, run := 0, 0
	for i, d := range dates {
		switch {
		case i == 0:
			run = 1
		case timeutil.DaysBetween(dates[i-1], d) == 1:
			run++
		default:
			run = 1
		}
		if age := timeutil.DaysBetween(d, today); age == 0 || age == 1 {
			result = run
		}
	}
	if timeutil.DaysBetween(dates[len(dates)-1], today) > 1 {
		return 0
	}
	return result
}

// SubjectName strips a part suffix such as " (Part 2)" from a label.
func SubjectName(label string) string {
	name, _, _ := strings.Cut(label, "(")
	return strings.TrimSpace(name)
}

// FormatMinutes renders minutes as "Xh Ym".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
