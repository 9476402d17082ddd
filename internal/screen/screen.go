package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplan/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that can own the keyboard, such
// as while a text field is focused. The app does not treat Esc as "back"
// while CapturingInput reports true.
type InputCapturer interface {
	CapturingInput() bool
}

// SessionsChangedMsg is emitted after a screen modifies stored sessions.
type SessionsChangedMsg struct{}

// SessionsChanged is a command emitting SessionsChangedMsg.
func SessionsChanged() tea.Msg {
	return SessionsChangedMsg{}
}
