// Package planner implements the day view of stored sessions.
package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/studyplan/internal/filter"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/sessions"
	"github.com/abhisek/studyplan/internal/timeutil"
	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/ui/layout"
	"github.com/abhisek/studyplan/internal/ui/theme"
)

// PlannerScreen lists one day's sessions and lets the user complete or
// delete them.
type PlannerScreen struct {
	svc    *sessions.Service
	logger *zap.Logger
	today  time.Time

	day      time.Time
	sessions []sessions.Session
	cursor   int

	filter    *filter.Filter
	input     components.TextInput
	filtering bool

	confirmDelete bool
	err           error
}

var _ screen.Screen = (*PlannerScreen)(nil)

// New creates a planner showing today.
func New(svc *sessions.Service, logger *zap.Logger, today time.Time) *PlannerScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &PlannerScreen{
		svc:    svc,
		logger: logger,
		today:  timeutil.Day(today),
		day:    timeutil.Day(today),
	}
	p.reload()
	return p
}

func (p *PlannerScreen) Init() tea.Cmd {
	return nil
}

func (p *PlannerScreen) Title() string {
	return "Planner"
}

// CapturingInput reports whether the filter field has focus.
func (p *PlannerScreen) CapturingInput() bool {
	return p.filtering || p.confirmDelete
}

func (p *PlannerScreen) reload() {
	day, err := p.svc.ForDate(context.Background(), p.day)
	if err != nil {
		p.err = err
		p.sessions = nil
		return
	}
	if p.filter != nil {
		day, err = p.filter.Apply(day)
		if err != nil {
			p.err = err
			p.sessions = nil
			return
		}
	}
	p.err = nil
	p.sessions = day
	p.cursor = min(p.cursor, max(len(day)-1, 0))
}

func (p *PlannerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.SessionsChangedMsg:
		p.reload()
		return p, nil
	case tea.KeyMsg:
		if p.filtering {
			return p.handleFilterKey(msg)
		}
		if p.confirmDelete {
			return p.handleConfirmKey(msg)
		}
		return p.handleKey(msg)
	}
	if p.filtering {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PlannerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		p.moveDay(-1)
	case "right", "l":
		p.moveDay(1)
	case "t":
		p.day = p.today
		p.cursor = 0
		p.reload()
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.sessions)-1 {
			p.cursor++
		}
	case "space", "x", "enter":
		return p.toggle()
	case "d":
		if len(p.sessions) > 0 {
			p.confirmDelete = true
		}
	case "/":
		p.filtering = true
		p.input = components.NewTextInput("Filter", `e.g. priority == "High" && !completed`, 48)
		if p.filter != nil {
			p.input.SetValue(p.filter.String())
		}
		return p, p.input.Init()
	case "c":
		p.filter = nil
		p.reload()
	}
	return p, nil
}

func (p *PlannerScreen) handleConfirmKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	p.confirmDelete = false
	if msg.String() != "y" || len(p.sessions) == 0 {
		return p, nil
	}
	target := p.sessions[p.cursor]
	if err := p.svc.Delete(context.Background(), target.ID); err != nil {
		p.err = err
		return p, nil
	}
	p.logger.Debug("deleted from planner", zap.String("id", target.ID))
	p.reload()
	return p, screen.SessionsChanged
}

func (p *PlannerScreen) handleFilterKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.filtering = false
		return p, nil
	case "enter":
		f, err := filter.Compile(p.input.Value())
		if err != nil {
			p.input.SetError(err.Error())
			return p, nil
		}
		p.filtering = false
		p.filter = f
		if f.String() == "" {
			p.filter = nil
		}
		p.cursor = 0
		p.reload()
		return p, nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *PlannerScreen) moveDay(delta int) {
	p.day = p.day.AddDate(0, 0, delta)
	p.cursor = 0
	p.reload()
}

func (p *PlannerScreen) toggle() (screen.Screen, tea.Cmd) {
	if len(p.sessions) == 0 {
		return p, nil
	}
	if _, err := p.svc.ToggleComplete(context.Background(), p.sessions[p.cursor].ID); err != nil {
		p.err = err
		return p, nil
	}
	p.reload()
	return p, screen.SessionsChanged
}

func (p *PlannerScreen) View(width, height int) string {
	var b strings.Builder

	heading := p.day.Format("Monday, Jan 2 2006")
	if p.day.Equal(p.today) {
		heading += "  (today)"
	}
	b.WriteString(theme.Heading.Render(heading) + "\n")
	if p.filter != nil {
		b.WriteString(theme.Hint.Render("filter: "+p.filter.String()) + "\n")
	}
	b.WriteString("\n")

	if len(p.sessions) == 0 {
		b.WriteString(theme.Hint.Render("No sessions scheduled for this day.") + "\n")
	}
	for i, s := range p.sessions {
		b.WriteString(p.renderSession(i, s, width) + "\n")
	}

	if p.confirmDelete {
		b.WriteString("\n" + theme.Warning.Render(fmt.Sprintf("Delete %q? (y/n)", p.sessions[p.cursor].Subject)) + "\n")
	}
	if p.filtering {
		b.WriteString("\n" + p.input.View() + "\n")
	}
	if p.err != nil {
		b.WriteString("\n" + theme.ErrorText.Render(p.err.Error()) + "\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Width(width).MaxHeight(height).Render(b.String())
}

func (p *PlannerScreen) renderSession(i int, s sessions.Session, width int) string {
	mark := "[ ]"
	if s.Completed() {
		mark = "[x]"
	}
	cursor := "  "
	if i == p.cursor {
		cursor = theme.Selected.Render("▸ ")
	}

	subject := s.Subject
	if s.Completed() {
		subject = theme.Done.Render(subject)
	} else if i == p.cursor {
		subject = theme.Selected.Render(subject)
	}
	priority := lipgloss.NewStyle().Foreground(theme.PriorityColor(string(s.Priority))).Render(string(s.Priority))

	line := fmt.Sprintf("%s%s %s - %s  %s  %s", cursor, mark, s.Start, s.End, subject, priority)
	return lipgloss.NewStyle().MaxWidth(width - 4).Render(line)
}

func (p *PlannerScreen) KeyHints() []layout.KeyHint {
	if p.filtering {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Day"},
		{Key: "Space", Description: "Done"},
		{Key: "d", Description: "Delete"},
		{Key: "/", Description: "Filter"},
		{Key: "t", Description: "Today"},
		{Key: "Esc", Description: "Back"},
	}
}
