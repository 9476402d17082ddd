// Package home implements the main menu.
package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/abhisek/studyplan/internal/pomodoro"
	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/scheduler"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/screens/plan"
	"github.com/abhisek/studyplan/internal/screens/planner"
	statsscreen "github.com/abhisek/studyplan/internal/screens/stats"
	timerscreen "github.com/abhisek/studyplan/internal/screens/timer"
	"github.com/abhisek/studyplan/internal/sessions"
	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/ui/layout"
	"github.com/abhisek/studyplan/internal/ui/theme"
)

// Deps are the services the home screen hands to the screens it opens.
type Deps struct {
	Sessions *sessions.Service
	Timer    pomodoro.Config
	Logger   *zap.Logger

	// Plan is a freshly generated schedule, if any.
	Plan *scheduler.Result

	Now func() time.Time
}

// HomeScreen is the main menu with today's summary.
type HomeScreen struct {
	deps  Deps
	menu  components.Menu
	today []sessions.Session
	err   error
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	h := &HomeScreen{deps: deps}
	items := []components.MenuItem{
		{Label: "TODAY'S PLAN", Hint: "view and complete sessions", Action: func() tea.Cmd {
			return router.Push(planner.New(deps.Sessions, deps.Logger, deps.Now()))
		}},
		{Label: "GENERATED PLAN", Hint: "review and save", Disabled: deps.Plan == nil, Action: func() tea.Cmd {
			return router.Push(plan.New(deps.Sessions, deps.Plan))
		}},
		{Label: "STATISTICS", Hint: "time, streak, subjects", Action: func() tea.Cmd {
			return router.Push(statsscreen.New(deps.Sessions, deps.Now()))
		}},
		{Label: "FOCUS TIMER", Hint: "pomodoro", Action: func() tea.Cmd {
			return router.Push(timerscreen.New(deps.Timer, deps.Logger))
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	h.reload()
	return h
}

func (h *HomeScreen) reload() {
	today, err := h.deps.Sessions.ForDate(context.Background(), h.deps.Now())
	h.today, h.err = today, err
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.SessionsChangedMsg); ok {
		h.reload()
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw),
		h.renderToday(cw),
		lipgloss.NewStyle().Width(cw).Render(h.menu.View()),
	}
	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}

func (h *HomeScreen) renderToday(cw int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 1)

	if h.err != nil {
		return box.Render(theme.ErrorText.Render(h.err.Error()))
	}
	if len(h.today) == 0 {
		return box.Render(theme.Hint.Render("Nothing scheduled today."))
	}

	done := lo.CountBy(h.today, func(s sessions.Session) bool { return s.Completed() })
	lines := []string{theme.Heading.Render(fmt.Sprintf("Today: %d of %d sessions done", done, len(h.today)))}

	next, ok := lo.Find(h.today, func(s sessions.Session) bool { return !s.Completed() })
	if ok {
		lines = append(lines, theme.Body.Render(fmt.Sprintf("Next: %s at %s", next.Subject, next.Start)))
	}
	return box.Render(strings.Join(lines, "\n"))
}

func renderTitle(cw int) string {
	title := theme.Title.Width(cw).Render("S T U D Y   P L A N N E R")
	sub := theme.Subtitle.Width(cw).Render("plan the work, work the plan")
	return title + "\n" + sub
}

// contentWidth caps the menu column so it stays readable on wide terminals.
func contentWidth(width int) int {
	return min(max(width-8, 40), 60)
}
