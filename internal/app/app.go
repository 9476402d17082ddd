package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/studyplan/internal/pomodoro"
	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/scheduler"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/screens/home"
	"github.com/abhisek/studyplan/internal/sessions"
	"github.com/abhisek/studyplan/internal/stats"
	"github.com/abhisek/studyplan/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Sessions *sessions.Service
	Timer    pomodoro.Config
	Logger   *zap.Logger

	// Plan, when set, is offered from the home menu.
	Plan *scheduler.Result

	// Initial, when set, is pushed above the home screen at startup.
	Initial screen.Screen

	Now func() time.Time
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	header layout.HeaderStats
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	r := router.New(home.New(home.Deps{
		Sessions: opts.Sessions,
		Timer:    opts.Timer,
		Logger:   opts.Logger,
		Plan:     opts.Plan,
		Now:      opts.Now,
	}))
	if opts.Initial != nil {
		r.Push(opts.Initial)
	}

	m := AppModel{router: r, opts: opts}
	m.refreshHeader()
	return m
}

func (m *AppModel) refreshHeader() {
	all, err := m.opts.Sessions.List(context.Background())
	if err != nil {
		m.opts.Logger.Warn("loading sessions for header", zap.Error(err))
		return
	}
	sum := stats.Compute(all, m.opts.Now())
	m.header = layout.HeaderStats{
		StreakDays:       sum.StreakDays,
		CompletedMinutes: sum.TotalMinutes,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.SessionsChangedMsg:
		m.refreshHeader()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.capturing() {
			switch msg.String() {
			case "esc":
				if m.router.Depth() > 1 {
					return m, router.Pop()
				}
				return m, nil
			case "q":
				if m.router.Depth() == 1 {
					return m, tea.Quit
				}
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// capturing reports whether the active screen owns the keyboard.
func (m AppModel) capturing() bool {
	ic, ok := m.router.Active().(screen.InputCapturer)
	return ok && ic.CapturingInput()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.header, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
