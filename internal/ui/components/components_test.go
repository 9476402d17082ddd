package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

type pickedMsg string

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B"},
		{Label: "C", Disabled: true},
		{Label: "D", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg("D") } }},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("selection after down = %d, want 3", m.Selected)
	}

	m, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command from enter")
	}
	if got := cmd(); got != pickedMsg("D") {
		t.Errorf("action produced %v", got)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("selection after up = %d, want 1", m.Selected)
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "PLANNER", Hint: "today"}, {Label: "QUIT"}})
	out := m.View()
	if !strings.Contains(out, "▸ PLANNER") || !strings.Contains(out, "today") {
		t.Errorf("menu view = %q", out)
	}
}

func TestProgressBarClamps(t *testing.T) {
	for _, pct := range []float64{-1, 0, 0.5, 2} {
		out := NewProgressBar("x", pct, true, 30).View()
		if out == "" {
			t.Errorf("empty view for %v", pct)
		}
	}
}

func TestTextInputError(t *testing.T) {
	ti := NewTextInput("Filter", "completed", 30)
	ti.SetError("bad expression")
	if !strings.Contains(ti.View(), "bad expression") {
		t.Error("expected error in view")
	}
	ti, _ = ti.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if strings.Contains(ti.View(), "bad expression") {
		t.Error("expected error cleared after typing")
	}
	if ti.Value() != "a" {
		t.Errorf("Value() = %q, want a", ti.Value())
	}
}
