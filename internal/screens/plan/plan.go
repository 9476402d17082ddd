// Package plan shows a generated schedule and can save it to the planner.
package plan

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/materialize"
	"github.com/abhisek/studyplan/internal/scheduler"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/sessions"
	"github.com/abhisek/studyplan/internal/ui/layout"
	"github.com/abhisek/studyplan/internal/ui/theme"
)

// PlanScreen is a scrollable view of a scheduling result.
type PlanScreen struct {
	svc    *sessions.Service
	result *scheduler.Result
	view   materialize.View

	offset int
	saved  bool
	notice string
	err    error
}

var _ screen.Screen = (*PlanScreen)(nil)

// New creates a plan screen for res.
func New(svc *sessions.Service, res *scheduler.Result) *PlanScreen {
	return &PlanScreen{
		svc:    svc,
		result: res,
		view:   materialize.Materialize(res),
	}
}

func (p *PlanScreen) Init() tea.Cmd {
	return nil
}

func (p *PlanScreen) Title() string {
	return "Generated Plan"
}

func (p *PlanScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch kmsg.String() {
	case "up", "k":
		p.offset = max(p.offset-1, 0)
	case "down", "j":
		p.offset++
	case "a":
		return p.addAll()
	}
	return p, nil
}

func (p *PlanScreen) addAll() (screen.Screen, tea.Cmd) {
	if p.saved || p.view.NoPlacement {
		return p, nil
	}
	n, err := p.svc.AddSchedule(context.Background(), p.result.Schedule)
	if err != nil {
		p.err = err
		return p, nil
	}
	p.saved = true
	p.notice = fmt.Sprintf("Added %d sessions to the planner.", n)
	return p, screen.SessionsChanged
}

func (p *PlanScreen) View(width, height int) string {
	lines := RenderLines(p.view, width-4)
	if p.notice != "" {
		lines = append([]string{theme.Selected.Render(p.notice), ""}, lines...)
	}
	if p.err != nil {
		lines = append([]string{theme.ErrorText.Render(p.err.Error()), ""}, lines...)
	}

	visible := max(height-2, 1)
	p.offset = min(p.offset, max(len(lines)-visible, 0))
	end := min(p.offset+visible, len(lines))

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines[p.offset:end], "\n"))
}

func (p *PlanScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Scroll"}}
	if !p.saved && !p.view.NoPlacement {
		hints = append(hints, layout.KeyHint{Key: "a", Description: "Add to planner"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// RenderLines renders v as styled lines no wider than width.
func RenderLines(v materialize.View, width int) []string {
	clip := lipgloss.NewStyle().MaxWidth(max(width, 20))
	var lines []string

	lines = append(lines, theme.Body.Render(fmt.Sprintf(
		"Workload: %d hours   Available: %d hours", v.WorkloadHours, v.AvailableHours)))
	if v.Warning != "" {
		lines = append(lines, clip.Inherit(theme.Warning).Render(v.Warning))
	}
	lines = append(lines, "")

	if v.NoPlacement {
		return append(lines, clip.Inherit(theme.Hint).Render(v.Message))
	}

	for _, g := range v.Groups {
		lines = append(lines, theme.Heading.Render(g.Header))
		for _, it := range g.Items {
			subject := theme.Body.Render(it.Session.Subject)
			if it.Review {
				subject = theme.Review.Render(it.Session.Subject)
			}
			priority := lipgloss.NewStyle().
				Foreground(theme.PriorityColor(string(it.Session.Priority))).
				Render(string(it.Session.Priority))
			lines = append(lines, clip.Render(fmt.Sprintf("  %s  %s  %s", theme.Hint.Render(it.Display), subject, priority)))
		}
		lines = append(lines, "")
	}
	return lines
}
