package sessions

import (
	"errors"
	"time"

	"github.com/abhisek/studyplan/internal/scheduler"
	"github.com/abhisek/studyplan/internal/timeutil"
)

var (
	ErrEndBeforeStart  = errors.New("end time must be after start time")
	ErrNotFound        = errors.New("session not found")
	ErrEmptySubject    = errors.New("subject is required")
	ErrInvalidPriority = errors.New("invalid priority")
)

// Status is the completion state of a persisted session.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
)

// Session is a persisted study session.
type Session struct {
	ID       string
	Subject  string
	Date     time.Time
	Start    string
	End      string
	Duration int
	Priority scheduler.Priority
	Status   Status
}

// Completed reports whether the session has been marked done.
func (s Session) Completed() bool {
	return s.Status == StatusCompleted
}

// DateKey returns the session date as YYYY-MM-DD.
func (s Session) DateKey() string {
	return timeutil.DateKey(s.Date)
}

// Input carries user-entered session fields. An empty ID creates a new
// session; otherwise the session with that ID is replaced.
type Input struct {
	ID       string
	Subject  string
	Date     string
	Start    string
	End      string
	Priority string
}
