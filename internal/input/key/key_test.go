package key

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key      Key
		expected string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyUp, "Up"},
		{KeyRune, "Rune"},
		{Key(200), "Key(200)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.expected {
			t.Errorf("Key(%d).String() = %q, expected %q", tt.key, got, tt.expected)
		}
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected Key
	}{
		{"Escape", KeyEscape},
		{"esc", KeyEscape},
		{"ENTER", KeyEnter},
		{"cr", KeyEnter},
		{" left ", KeyLeft},
		{"rune", KeyNone},
		{"bogus", KeyNone},
	}
	for _, tt := range tests {
		if got := FromName(tt.name); got != tt.expected {
			t.Errorf("FromName(%q) = %s, expected %s", tt.name, got, tt.expected)
		}
	}
}

func TestIsArrowKey(t *testing.T) {
	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight} {
		if !k.IsArrowKey() {
			t.Errorf("%s should be an arrow key", k)
		}
	}
	if KeyEnter.IsArrowKey() {
		t.Error("Enter should not be an arrow key")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event    Event
		expected string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('c', ModCtrl), "Ctrl+c"},
		{NewSpecialEvent(KeyUp, ModAlt|ModShift), "Alt+Shift+Up"},
	}
	for _, tt := range tests {
		if got := tt.event.String(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}

func TestEventPredicates(t *testing.T) {
	e := NewRuneEvent('q', ModNone)
	if !e.Is('q') || e.Is('x') || !e.IsChar() {
		t.Error("plain q should match Is('q') and IsChar")
	}
	c := NewRuneEvent('C', ModCtrl)
	if !c.IsCtrl('c') || c.Is('C') {
		t.Error("Ctrl+C should match IsCtrl('c') only")
	}
	if NewSpecialEvent(KeyEnter, ModNone).IsRune() {
		t.Error("Enter is not a rune event")
	}
}
