package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/sessions"
	"github.com/abhisek/studyplan/internal/store"
)

var monday = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

func newService(t *testing.T) *sessions.Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return sessions.NewService(st.SessionRepo(), zap.NewNop())
}

func addDone(t *testing.T, svc *sessions.Service, subject, date, start, end string) {
	t.Helper()
	ctx := context.Background()
	s, err := svc.Save(ctx, sessions.Input{Subject: subject, Date: date, Start: start, End: end, Priority: "Medium"})
	require.NoError(t, err)
	_, err = svc.ToggleComplete(ctx, s.ID)
	require.NoError(t, err)
}

func TestStatsScreen_Title(t *testing.T) {
	s := New(newService(t), monday)
	assert.Equal(t, "Statistics", s.Title())
}

func TestStatsScreen_Empty(t *testing.T) {
	s := New(newService(t), monday)
	view := s.View(80, 24)
	assert.Contains(t, view, "0h 0m")
	assert.Contains(t, view, "Complete a session")
}

func TestStatsScreen_Totals(t *testing.T) {
	svc := newService(t)
	addDone(t, svc, "Calculus (Part 1)", "2025-03-02", "09:00", "10:30")
	addDone(t, svc, "Calculus (Part 2)", "2025-03-03", "09:00", "10:00")
	addDone(t, svc, "Physics", "2025-03-03", "11:00", "11:45")

	s := New(svc, monday)
	assert.Equal(t, 195, s.summary.TotalMinutes)
	assert.Equal(t, 2, s.summary.StreakDays)

	view := s.View(100, 30)
	assert.Contains(t, view, "3h 15m")
	assert.Contains(t, view, "2 days")
	assert.Contains(t, view, "Calculus")
	assert.Contains(t, view, "Physics")
	assert.Contains(t, view, "2h 30m")
}

func TestStatsScreen_ReloadsOnSessionsChanged(t *testing.T) {
	svc := newService(t)
	s := New(svc, monday)
	assert.Zero(t, s.summary.Completed)

	addDone(t, svc, "Biology", "2025-03-03", "08:00", "09:00")
	_, cmd := s.Update(screen.SessionsChangedMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, s.summary.Completed)
}
