// Package timer implements the Pomodoro focus timer screen.
package timer

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/studyplan/internal/pomodoro"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/ui/layout"
	"github.com/abhisek/studyplan/internal/ui/theme"
)

// tickMsg carries the generation it was scheduled for. Ticks from an
// earlier generation are dropped so pausing and resuming never doubles
// the countdown rate.
type tickMsg struct {
	gen int
}

// TimerScreen drives a pomodoro.Timer once per second.
type TimerScreen struct {
	timer  *pomodoro.Timer
	logger *zap.Logger
	gen    int
	notice string
}

var _ screen.Screen = (*TimerScreen)(nil)

// New creates a stopped timer screen.
func New(cfg pomodoro.Config, logger *zap.Logger) *TimerScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &TimerScreen{logger: logger}
	s.timer = pomodoro.New(cfg, pomodoro.NotifierFunc(s.phaseEnded))
	return s
}

func (s *TimerScreen) phaseEnded(e pomodoro.Event) {
	s.notice = fmt.Sprintf("%s finished. Up next: %s.", capitalize(e.Ended.Label()), e.Next.Label())
	s.logger.Info("pomodoro phase ended",
		zap.String("ended", string(e.Ended)),
		zap.String("next", string(e.Next)),
		zap.Int("work_count", e.WorkCount),
	)
}

func (s *TimerScreen) tick() tea.Cmd {
	gen := s.gen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (s *TimerScreen) Init() tea.Cmd {
	return nil
}

func (s *TimerScreen) Title() string {
	return "Focus Timer"
}

func (s *TimerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != s.gen || !s.timer.Running() {
			return s, nil
		}
		if s.timer.Tick() {
			// Phase over; the timer is stopped until started again.
			return s, nil
		}
		return s, s.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "space", "s", "enter":
			if s.timer.Running() {
				s.timer.Pause()
				s.gen++
				return s, nil
			}
			s.notice = ""
			s.timer.Start()
			s.gen++
			return s, s.tick()
		case "r":
			s.timer.Reset()
			s.gen++
			s.notice = ""
		}
	}
	return s, nil
}

func (s *TimerScreen) View(width, height int) string {
	cw := min(width-4, 50)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	modeColor := theme.Primary
	if s.timer.Mode() != pomodoro.ModeWork {
		modeColor = theme.Secondary
	}

	var lines []string
	lines = append(lines, center.Foreground(modeColor).Bold(true).Render(strings.ToUpper(s.timer.Mode().Label())))
	lines = append(lines, "")
	lines = append(lines, center.Foreground(theme.Text).Bold(true).Render(s.timer.Display()))
	lines = append(lines, "")

	bar := components.NewProgressBar("", s.timer.Progress(), false, cw)
	bar.Fill = modeColor
	lines = append(lines, bar.View())
	lines = append(lines, "")
	lines = append(lines, center.Foreground(theme.TextDim).Render(s.timer.Status()))
	lines = append(lines, center.Foreground(theme.TextDim).Render(fmt.Sprintf("Completed work sessions: %d", s.timer.WorkCount())))
	if s.notice != "" {
		lines = append(lines, "", center.Foreground(theme.Accent).Bold(true).Render(s.notice))
	}

	box := theme.Card.Width(cw + 6).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (s *TimerScreen) KeyHints() []layout.KeyHint {
	action := "Start"
	if s.timer.Running() {
		action = "Pause"
	}
	return []layout.KeyHint{
		{Key: "Space", Description: action},
		{Key: "r", Description: "Reset"},
		{Key: "Esc", Description: "Back"},
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
