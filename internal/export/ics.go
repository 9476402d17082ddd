// Package export writes persisted sessions to calendar and workbook files.
package export

import (
	"errors"
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/abhisek/studyplan/internal/sessions"
	"github.com/abhisek/studyplan/internal/timeutil"
)

var ErrNoSessions = errors.New("no sessions to export")

const productID = "-//studyplan//Study Planner//EN"

// ICS writes one VEVENT per session. Session clock times are interpreted in
// loc; nil means time.Local.
func ICS(w io.Writer, all []sessions.Session, loc *time.Location) error {
	if len(all) == 0 {
		return ErrNoSessions
	}
	if loc == nil {
		loc = time.Local
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	stamp := time.Now().UTC()
	for _, s := range all {
		start, err := at(s.Date, s.Start, loc)
		if err != nil {
			return fmt.Errorf("session %s: %w", s.ID, err)
		}
		end, err := at(s.Date, s.End, loc)
		if err != nil {
			return fmt.Errorf("session %s: %w", s.ID, err)
		}

		evt := cal.AddEvent(s.ID + "@studyplan")
		evt.SetDtStampTime(stamp)
		evt.SetStartAt(start)
		evt.SetEndAt(end)
		evt.SetSummary(s.Subject)
		evt.SetProperty(ics.ComponentPropertyCategories, string(s.Priority))
		if s.Completed() {
			evt.SetProperty(ics.ComponentPropertyStatus, "COMPLETED")
		} else {
			evt.SetProperty(ics.ComponentPropertyStatus, "CONFIRMED")
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	return nil
}

// at combines a calendar date and an HH:MM clock in loc.
func at(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	m, err := timeutil.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := date.Date()
	return time.Date(y, mo, d, m/60, m%60, 0, 0, loc), nil
}
