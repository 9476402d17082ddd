package scheduler

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/studyplan/internal/availability"
	"github.com/abhisek/studyplan/internal/timeutil"
	"github.com/abhisek/studyplan/internal/workload"
)

var (
	ErrNoDeadline     = errors.New("a goal deadline is required")
	ErrDeadlinePassed = errors.New("goal deadline is in the past")
)

// Request holds the explicit inputs of a scheduling run.
type Request struct {
	// Today is the first day of the schedule. Defaults to the current date.
	Today    time.Time
	Deadline time.Time
	Topics   []workload.Topic
	Slots    []availability.Slot
}

// Result is what a scheduling run hands back to its caller.
type Result struct {
	Outcome

	Start            time.Time
	HorizonDays      int
	WorkloadMinutes  int
	AvailableMinutes int

	// CapacityWarning is set when the workload exceeds the available time.
	// The schedule is still a best-effort partial plan.
	CapacityWarning bool
}

// Empty reports whether the run placed no sessions at all.
func (r *Result) Empty() bool {
	return r.Schedule.SessionCount() == 0
}

// Planner validates scheduling requests and runs the engine.
type Planner struct {
	logger *zap.Logger
	opts   Options
	now    func() time.Time
}

// NewPlanner creates a Planner. A nil logger disables logging.
func NewPlanner(logger *zap.Logger, opts Options) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{logger: logger, opts: opts, now: time.Now}
}

// Generate validates req and produces a schedule. Validation failures are
// returned before any work is done.
func (p *Planner) Generate(req Request) (*Result, error) {
	if req.Deadline.IsZero() {
		return nil, ErrNoDeadline
	}
	today := req.Today
	if today.IsZero() {
		today = p.now()
	}
	start := timeutil.Day(today)
	deadline := timeutil.Day(req.Deadline)
	if deadline.Before(start) {
		return nil, ErrDeadlinePassed
	}

	wl, err := workload.Expand(req.Topics)
	if err != nil {
		return nil, err
	}

	horizon := availability.HorizonDays(start, deadline)
	cal, err := availability.Resolve(req.Slots, start, horizon)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Start:            start,
		HorizonDays:      horizon,
		WorkloadMinutes:  wl.TotalMinutes,
		AvailableMinutes: cal.TotalMinutes,
		CapacityWarning:  wl.TotalMinutes > cal.TotalMinutes,
	}
	if res.CapacityWarning {
		p.logger.Warn("workload exceeds available time",
			zap.Int("workload_minutes", wl.TotalMinutes),
			zap.Int("available_minutes", cal.TotalMinutes))
	}

	res.Outcome = Run(wl, cal, p.opts)

	p.logger.Debug("schedule generated",
		zap.String("start", timeutil.DateKey(start)),
		zap.Int("horizon_days", horizon),
		zap.Int("units", len(wl.Units)),
		zap.Int("sessions", res.Schedule.SessionCount()),
		zap.Int("review_minutes", res.ReviewMinutes),
		zap.Int("unscheduled_minutes", res.UnscheduledMinutes()))

	return res, nil
}
