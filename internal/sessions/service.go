package sessions

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/abhisek/studyplan/internal/scheduler"
	"github.com/abhisek/studyplan/internal/store"
	"github.com/abhisek/studyplan/internal/timeutil"
)

// Service manages the persisted session list. Every mutation reads the full
// list, changes it, and writes it back.
type Service struct {
	repo   store.SessionRepo
	logger *zap.Logger
	newID  func() string
}

// NewService creates a session Service. A nil logger disables logging.
func NewService(repo store.SessionRepo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger, newID: uuid.NewString}
}

// List returns every session in stored order.
func (s *Service) List(ctx context.Context) ([]Session, error) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	out := make([]Session, 0, len(records))
	for _, r := range records {
		sess, err := fromRecord(r)
		if err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	return out, nil
}

// Get returns the session with the given ID.
func (s *Service) Get(ctx context.Context, id string) (Session, error) {
	all, err := s.List(ctx)
	if err != nil {
		return Session{}, err
	}
	sess, ok := lo.Find(all, func(x Session) bool { return x.ID == id })
	if !ok {
		return Session{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return sess, nil
}

// ForDate returns the sessions on date, ordered by start time.
func (s *Service) ForDate(ctx context.Context, date time.Time) ([]Session, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	key := timeutil.DateKey(timeutil.Day(date))
	day := lo.Filter(all, func(x Session, _ int) bool { return x.DateKey() == key })
	sort.SliceStable(day, func(i, j int) bool {
		a, _ := timeutil.ParseClock(day[i].Start)
		b, _ := timeutil.ParseClock(day[j].Start)
		return a < b
	})
	return day, nil
}

// Save validates in and creates or replaces a session. Editing keeps the
// session's completion status.
func (s *Service) Save(ctx context.Context, in Input) (Session, error) {
	sess, err := validate(in)
	if err != nil {
		return Session{}, err
	}

	all, err := s.List(ctx)
	if err != nil {
		return Session{}, err
	}

	if in.ID == "" {
		sess.ID = s.newID()
		sess.Status = StatusScheduled
		all = append(all, sess)
		if err := s.persist(ctx, all); err != nil {
			return Session{}, err
		}
		s.logger.Info("session created", zap.String("id", sess.ID), zap.String("subject", sess.Subject))
		return sess, nil
	}

	_, idx, ok := lo.FindIndexOf(all, func(x Session) bool { return x.ID == in.ID })
	if !ok {
		return Session{}, fmt.Errorf("%w: %s", ErrNotFound, in.ID)
	}
	sess.ID = in.ID
	sess.Status = all[idx].Status
	all[idx] = sess
	if err := s.persist(ctx, all); err != nil {
		return Session{}, err
	}
	s.logger.Info("session updated", zap.String("id", sess.ID))
	return sess, nil
}

// AddGenerated persists a scheduler-produced session under a fresh ID.
func (s *Service) AddGenerated(ctx context.Context, gs scheduler.Session) (Session, error) {
	all, err := s.List(ctx)
	if err != nil {
		return Session{}, err
	}
	sess := s.fromGenerated(gs)
	if err := s.persist(ctx, append(all, sess)); err != nil {
		return Session{}, err
	}
	s.logger.Info("generated session added", zap.String("id", sess.ID), zap.String("subject", sess.Subject))
	return sess, nil
}

// AddSchedule persists every session of sched and returns how many were added.
func (s *Service) AddSchedule(ctx context.Context, sched scheduler.Schedule) (int, error) {
	generated := sched.Sessions()
	if len(generated) == 0 {
		return 0, nil
	}
	all, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	all = append(all, lo.Map(generated, func(gs scheduler.Session, _ int) Session {
		return s.fromGenerated(gs)
	})...)
	if err := s.persist(ctx, all); err != nil {
		return 0, err
	}
	s.logger.Info("schedule added", zap.Int("sessions", len(generated)))
	return len(generated), nil
}

// Delete removes the session with the given ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	all, err := s.List(ctx)
	if err != nil {
		return err
	}
	kept := lo.Reject(all, func(x Session, _ int) bool { return x.ID == id })
	if len(kept) == len(all) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := s.persist(ctx, kept); err != nil {
		return err
	}
	s.logger.Info("session deleted", zap.String("id", id))
	return nil
}

// ToggleComplete flips a session between Scheduled and Completed.
func (s *Service) ToggleComplete(ctx context.Context, id string) (Session, error) {
	all, err := s.List(ctx)
	if err != nil {
		return Session{}, err
	}
	_, idx, ok := lo.FindIndexOf(all, func(x Session) bool { return x.ID == id })
	if !ok {
		return Session{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if all[idx].Completed() {
		all[idx].Status = StatusScheduled
	} else {
		all[idx].Status = StatusCompleted
	}
	if err := s.persist(ctx, all); err != nil {
		return Session{}, err
	}
	s.logger.Info("session toggled", zap.String("id", id), zap.String("status", string(all[idx].Status)))
	return all[idx], nil
}

// Clear removes every stored session.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.persist(ctx, nil); err != nil {
		return err
	}
	s.logger.Info("sessions cleared")
	return nil
}

func (s *Service) persist(ctx context.Context, all []Session) error {
	if err := s.repo.Save(ctx, lo.Map(all, func(x Session, _ int) store.SessionRecord { return toRecord(x) })); err != nil {
		return fmt.Errorf("save sessions: %w", err)
	}
	return nil
}

func (s *Service) fromGenerated(gs scheduler.Session) Session {
	return Session{
		ID:       s.newID(),
		Subject:  gs.Subject,
		Date:     timeutil.Day(gs.Date),
		Start:    gs.Start,
		End:      gs.End,
		Duration: gs.Duration,
		Priority: gs.Priority,
		Status:   StatusScheduled,
	}
}

func validate(in Input) (Session, error) {
	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		return Session{}, ErrEmptySubject
	}
	date, err := timeutil.ParseDate(in.Date)
	if err != nil {
		return Session{}, err
	}
	start, err := timeutil.ParseClock(in.Start)
	if err != nil {
		return Session{}, fmt.Errorf("start: %w", err)
	}
	end, err := timeutil.ParseClock(in.End)
	if err != nil {
		return Session{}, fmt.Errorf("end: %w", err)
	}
	if end <= start {
		return Session{}, ErrEndBeforeStart
	}

	priority := scheduler.PriorityMedium
	if p := strings.TrimSpace(in.Priority); p != "" {
		priority, err = ParsePriority(p)
		if err != nil {
			return Session{}, err
		}
	}

	return Session{
		Subject:  subject,
		Date:     date,
		Start:    timeutil.FormatClock(start),
		End:      timeutil.FormatClock(end),
		Duration: end - start,
		Priority: priority,
	}, nil
}

// ParsePriority matches a priority name case-insensitively.
func ParsePriority(s string) (scheduler.Priority, error) {
	for _, p := range scheduler.Priorities {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}

func toRecord(s Session) store.SessionRecord {
	return store.SessionRecord{
		ID:       s.ID,
		Subject:  s.Subject,
		Date:     s.DateKey(),
		Start:    s.Start,
		End:      s.End,
		Priority: string(s.Priority),
		Status:   string(s.Status),
	}
}

func fromRecord(r store.SessionRecord) (Session, error) {
	date, err := timeutil.ParseDate(r.Date)
	if err != nil {
		return Session{}, fmt.Errorf("decode session %s: %w", r.ID, err)
	}
	duration, err := timeutil.Duration(r.Start, r.End)
	if err != nil {
		return Session{}, fmt.Errorf("decode session %s: %w", r.ID, err)
	}
	status := Status(r.Status)
	if status != StatusCompleted {
		status = StatusScheduled
	}
	return Session{
		ID:       r.ID,
		Subject:  r.Subject,
		Date:     date,
		Start:    r.Start,
		End:      r.End,
		Duration: duration,
		Priority: scheduler.Priority(r.Priority),
		Status:   status,
	}, nil
}
