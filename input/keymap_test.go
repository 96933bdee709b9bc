package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/tamagotchi/pet"
	"github.com/lixenwraith/tamagotchi/terminal"
)

func TestDefaultKeymapResolve(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		name string
		ev   terminal.Event
		want pet.Action
	}{
		{"down arrow", terminal.KeyEvent(terminal.KeyDown), pet.ActionMoveDown},
		{"j", terminal.RuneEvent('j'), pet.ActionMoveDown},
		{"up arrow", terminal.KeyEvent(terminal.KeyUp), pet.ActionMoveUp},
		{"k", terminal.RuneEvent('k'), pet.ActionMoveUp},
		{"right arrow", terminal.KeyEvent(terminal.KeyRight), pet.ActionMoveRight},
		{"l", terminal.RuneEvent('l'), pet.ActionMoveRight},
		{"left arrow", terminal.KeyEvent(terminal.KeyLeft), pet.ActionMoveLeft},
		{"h", terminal.RuneEvent('h'), pet.ActionMoveLeft},
		{"q", terminal.RuneEvent('q'), pet.ActionQuit},
		{"unbound rune", terminal.RuneEvent('x'), pet.ActionNone},
		{"uppercase Q", terminal.RuneEvent('Q'), pet.ActionNone},
		{"unbound key", terminal.KeyEvent(terminal.KeyF1), pet.ActionNone},
		{"escape", terminal.KeyEvent(terminal.KeyEscape), pet.ActionNone},
		{"resize", terminal.Event{Type: terminal.EventResize, Width: 80, Height: 24}, pet.ActionNone},
		{"alt q", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'q', Modifiers: terminal.ModAlt}, pet.ActionNone},
		{"alt h", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'h', Modifiers: terminal.ModAlt}, pet.ActionNone},
		{"alt left", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyLeft, Modifiers: terminal.ModAlt}, pet.ActionNone},
		{"ctrl left", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyLeft, Modifiers: terminal.ModCtrl}, pet.ActionNone},
		{"ctrl rune", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'j', Modifiers: terminal.ModCtrl}, pet.ActionNone},
		{"shift left", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyLeft, Modifiers: terminal.ModShift}, pet.ActionMoveLeft},
	}

	for _, tt := range tests {
		if got := km.Resolve(tt.ev); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCtrlBindingWithModifier(t *testing.T) {
	km := Merge(DefaultKeymap(), &Keymap{Keys: map[terminal.Key]pet.Action{terminal.KeyCtrlC: pet.ActionQuit}})

	tests := []struct {
		name string
		ev   terminal.Event
		want pet.Action
	}{
		{"ctrl c", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyCtrlC, Modifiers: terminal.ModCtrl}, pet.ActionQuit},
		{"ctrl c bare", terminal.KeyEvent(terminal.KeyCtrlC), pet.ActionQuit},
		{"alt ctrl c", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyCtrlC, Modifiers: terminal.ModCtrl | terminal.ModAlt}, pet.ActionNone},
	}

	for _, tt := range tests {
		if got := km.Resolve(tt.ev); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeymapValidate(t *testing.T) {
	tests := []struct {
		name    string
		km      *Keymap
		wantErr bool
	}{
		{"default", DefaultKeymap(), false},
		{"empty", &Keymap{}, true},
		{"quit on key", &Keymap{Keys: map[terminal.Key]pet.Action{terminal.KeyEscape: pet.ActionQuit}}, false},
		{"q removed", Merge(DefaultKeymap(), &Keymap{Runes: map[rune]pet.Action{'q': pet.ActionNone}}), true},
		{"q moved", Merge(DefaultKeymap(), &Keymap{Runes: map[rune]pet.Action{'q': pet.ActionNone, 'x': pet.ActionQuit}}), false},
	}

	for _, tt := range tests {
		err := tt.km.Validate()
		if tt.wantErr && err != ErrNoQuit {
			t.Errorf("%s: err = %v, want ErrNoQuit", tt.name, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
	}
}

func TestLoadKeymap(t *testing.T) {
	data := []byte(`
[keys]
w = "move_up"
s = "MOVE_DOWN"
space = "quit"
escape = "quit"
q = "none"
`)
	km, err := LoadKeymap(data)
	if err != nil {
		t.Fatalf("LoadKeymap failed: %v", err)
	}

	if km.Runes['w'] != pet.ActionMoveUp || km.Runes['s'] != pet.ActionMoveDown {
		t.Errorf("Rune bindings = %v", km.Runes)
	}
	if km.Runes[' '] != pet.ActionQuit {
		t.Error("space alias not resolved")
	}
	if km.Keys[terminal.KeyEscape] != pet.ActionQuit {
		t.Error("escape not bound")
	}
	if a, ok := km.Runes['q']; !ok || a != pet.ActionNone {
		t.Error("none binding should be kept as removal marker")
	}
}

func TestLoadKeymapErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"bad action", "[keys]\nw = \"fly\"\n", "unknown action"},
		{"bad key", "[keys]\nhyperspace = \"quit\"\n", "unknown key name"},
		{"bad toml", "[keys\n", "keymap parse"},
		{"unknown section", "[mouse]\nleft = \"quit\"\n", "unknown entry"},
	}

	for _, tt := range tests {
		_, err := LoadKeymap([]byte(tt.data))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.wantErr)
		}
	}
}

func TestMergeOverrides(t *testing.T) {
	override, err := ParseBindings(map[string]string{
		"q":      "none",
		"ctrl_c": "quit",
		"w":      "move_up",
		"left":   "none",
	})
	if err != nil {
		t.Fatalf("ParseBindings failed: %v", err)
	}

	base := DefaultKeymap()
	merged := Merge(base, override)

	if got := merged.Resolve(terminal.RuneEvent('q')); got != pet.ActionNone {
		t.Errorf("q should be unbound, got %v", got)
	}
	if got := merged.Resolve(terminal.KeyEvent(terminal.KeyCtrlC)); got != pet.ActionQuit {
		t.Errorf("ctrl_c should quit, got %v", got)
	}
	if got := merged.Resolve(terminal.RuneEvent('w')); got != pet.ActionMoveUp {
		t.Errorf("w should move up, got %v", got)
	}
	if got := merged.Resolve(terminal.KeyEvent(terminal.KeyLeft)); got != pet.ActionNone {
		t.Errorf("left should be unbound, got %v", got)
	}
	if got := merged.Resolve(terminal.RuneEvent('h')); got != pet.ActionMoveLeft {
		t.Errorf("h should keep its default, got %v", got)
	}

	// Base is untouched
	if base.Resolve(terminal.RuneEvent('q')) != pet.ActionQuit {
		t.Error("Merge mutated the base keymap")
	}
}

func TestMergeNilOverride(t *testing.T) {
	merged := Merge(DefaultKeymap(), nil)
	if merged.Resolve(terminal.RuneEvent('q')) != pet.ActionQuit {
		t.Error("Nil override lost default bindings")
	}
}

func TestLoadKeymapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.toml")
	if err := os.WriteFile(path, []byte("[keys]\nx = \"quit\"\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	km, err := LoadKeymapFile(path)
	if err != nil {
		t.Fatalf("LoadKeymapFile failed: %v", err)
	}
	if km.Runes['x'] != pet.ActionQuit {
		t.Error("x not bound to quit")
	}

	if _, err := LoadKeymapFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
