package home

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/studyplan/internal/pomodoro"
	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/screens/planner"
	"github.com/abhisek/studyplan/internal/sessions"
	"github.com/abhisek/studyplan/internal/store"
)

var monday = time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

func newDeps(t *testing.T) Deps {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "home.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return Deps{
		Sessions: sessions.NewService(st.SessionRepo(), zap.NewNop()),
		Timer:    pomodoro.DefaultConfig(),
		Now:      func() time.Time { return monday },
	}
}

func TestHomeScreen_Title(t *testing.T) {
	h := New(newDeps(t))
	assert.Equal(t, "Home", h.Title())
}

func TestHomeScreen_GeneratedPlanDisabledWithoutPlan(t *testing.T) {
	h := New(newDeps(t))
	assert.True(t, h.menu.Items[1].Disabled)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, h.menu.Selected, "disabled item is skipped")
}

func TestHomeScreen_EnterPushesPlanner(t *testing.T) {
	h := New(newDeps(t))

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &planner.PlannerScreen{}, msg.Screen)
}

func TestHomeScreen_TodaySummary(t *testing.T) {
	deps := newDeps(t)
	h := New(deps)
	assert.Contains(t, h.View(80, 30), "Nothing scheduled today.")

	_, err := deps.Sessions.Save(context.Background(), sessions.Input{
		Subject: "Calculus", Date: "2025-03-03", Start: "18:00", End: "19:00", Priority: "High",
	})
	require.NoError(t, err)
	h.Update(screen.SessionsChangedMsg{})

	view := h.View(80, 30)
	assert.Contains(t, view, "0 of 1 sessions done")
	assert.Contains(t, view, "Next: Calculus at 18:00")
}
