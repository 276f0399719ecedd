package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starship/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"l", runeKey('l'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause},
		{"p", runeKey('p'), core.ActionPause},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{"r", runeKey('r'), core.ActionRestart},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"b", runeKey('b'), core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}

	if !km.IsScreenshot(tea.KeyMsg{Type: tea.KeyCtrlS}) {
		t.Error("ctrl+s should request a screenshot")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestHoldTrackerHoldsForTicks(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(core.ActionRight)

	for i := 0; i < 3; i++ {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.Has(core.ActionRight) {
			t.Fatalf("tick %d: right should still be held", i)
		}
	}

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionRight) || h.Held() != core.ActionNone {
		t.Error("hold should expire after its ticks")
	}
}

func TestHoldTrackerRepeatRefreshes(t *testing.T) {
	h := NewHoldTracker(2)
	h.Press(core.ActionLeft)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	h.Press(core.ActionLeft) // Autorepeat

	for i := 0; i < 2; i++ {
		frame.Clear()
		h.Apply(&frame)
		if !frame.Has(core.ActionLeft) {
			t.Fatalf("tick %d after repeat: left should be held", i)
		}
	}
}

func TestHoldTrackerOppositeReplaces(t *testing.T) {
	h := NewHoldTracker(5)
	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionLeft) || !frame.Has(core.ActionRight) {
		t.Errorf("expected only right held, got %v", frame.Actions)
	}
}

func TestHoldTrackerIgnoresOtherActions(t *testing.T) {
	h := NewHoldTracker(5)
	h.Press(core.ActionPause)
	if h.Held() != core.ActionNone {
		t.Errorf("Held() = %v, expected None", h.Held())
	}

	h.Press(core.ActionRight)
	h.Release()
	if h.Held() != core.ActionNone {
		t.Error("Release() should drop the held direction")
	}

	if NewHoldTracker(0).ticks != 1 {
		t.Error("hold ticks should be at least 1")
	}
}
