// Package stats renders study progress figures.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/sessions"
	studystats "github.com/abhisek/studyplan/internal/stats"
	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/ui/layout"
	"github.com/abhisek/studyplan/internal/ui/theme"
)

// StatsScreen shows totals, streak, and time per subject.
type StatsScreen struct {
	svc     *sessions.Service
	today   time.Time
	summary studystats.Summary
	err     error
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates a stats screen.
func New(svc *sessions.Service, today time.Time) *StatsScreen {
	s := &StatsScreen{svc: svc, today: today}
	s.reload()
	return s
}

func (s *StatsScreen) reload() {
	all, err := s.svc.List(context.Background())
	if err != nil {
		s.err = err
		return
	}
	s.err = nil
	s.summary = studystats.Compute(all, s.today)
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.SessionsChangedMsg); ok {
		s.reload()
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.err != nil {
		return theme.ErrorText.Render(s.err.Error())
	}

	cw := min(width-4, 64)
	sum := s.summary

	var b strings.Builder
	b.WriteString(theme.Heading.Render("Progress") + "\n\n")

	total := sum.Completed + sum.Scheduled
	rows := []struct{ label, value string }{
		{"Time studied", studystats.FormatMinutes(sum.TotalMinutes)},
		{"Sessions completed", fmt.Sprintf("%d of %d", sum.Completed, total)},
		{"Current streak", fmt.Sprintf("%d days", sum.StreakDays)},
	}
	for _, r := range rows {
		b.WriteString(theme.Body.Render(fmt.Sprintf("%-20s", r.label)) + theme.Selected.Render(r.value) + "\n")
	}
	if total > 0 {
		b.WriteString("\n" + components.NewProgressBar("", float64(sum.Completed)/float64(total), true, cw).View() + "\n")
	}

	b.WriteString("\n" + theme.Heading.Render("By subject") + "\n\n")
	if len(sum.Subjects) == 0 {
		b.WriteString(theme.Hint.Render("Complete a session to see subject totals.") + "\n")
	}

	peak := 0
	for _, st := range sum.Subjects {
		peak = max(peak, st.Minutes)
	}
	labelWidth := 0
	for _, st := range sum.Subjects {
		labelWidth = max(labelWidth, lipgloss.Width(st.Subject))
	}
	for _, st := range sum.Subjects {
		label := fmt.Sprintf("%-*s", labelWidth, st.Subject)
		bar := components.NewProgressBar(label, float64(st.Minutes)/float64(peak), false, cw-10)
		bar.Fill = theme.Accent
		b.WriteString(bar.View() + "  " + theme.Hint.Render(studystats.FormatMinutes(st.Minutes)) + "\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).MaxHeight(height).Render(b.String())
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}
