package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/tamagotchi/input"
	"github.com/lixenwraith/tamagotchi/pet"
	"github.com/lixenwraith/tamagotchi/terminal"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TickInterval != DefaultTickInterval {
		t.Errorf("TickInterval = %v, want %v", cfg.TickInterval, DefaultTickInterval)
	}
	if cfg.ShowBoxes || cfg.Sound {
		t.Error("Optional features should default off")
	}

	pal, err := cfg.Palette()
	if err != nil {
		t.Fatalf("Palette failed: %v", err)
	}
	if pal.Pet != terminal.RGBYellow {
		t.Errorf("Pet color = %+v, want yellow", pal.Pet)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
tick_interval = "33ms"
show_boxes = true
volume = 0.25
pet_color = "#00ff00"

[keys]
w = "move_up"
q = "none"
escape = "quit"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TickInterval != 33*time.Millisecond {
		t.Errorf("TickInterval = %v", cfg.TickInterval)
	}
	if !cfg.ShowBoxes {
		t.Error("show_boxes not applied")
	}
	if cfg.Volume != 0.25 {
		t.Errorf("Volume = %v", cfg.Volume)
	}

	pal, _ := cfg.Palette()
	if pal.Pet != (terminal.RGB{G: 255}) {
		t.Errorf("Pet color = %+v", pal.Pet)
	}

	km, err := cfg.BuildKeymap()
	if err != nil {
		t.Fatalf("BuildKeymap failed: %v", err)
	}
	if km.Resolve(terminal.RuneEvent('w')) != pet.ActionMoveUp {
		t.Error("Inline w binding missing")
	}
	if km.Resolve(terminal.RuneEvent('q')) != pet.ActionNone {
		t.Error("Inline none did not unbind q")
	}
	if km.Resolve(terminal.KeyEvent(terminal.KeyDown)) != pet.ActionMoveDown {
		t.Error("Default binding lost")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"malformed", "tick_interval = \n", "config parse"},
		{"unknown key", "speed = 3\n", "unknown key"},
		{"zero tick", "tick_interval = \"0s\"\n", "tick_interval"},
		{"bad color", "pet_color = \"banana\"\n", "pet_color"},
		{"volume range", "volume = 2.0\n", "volume"},
	}

	for _, tt := range tests {
		_, err := Load(writeConfig(t, tt.body))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.wantErr)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TAMAGOTCHI_SOUND", "true")
	t.Setenv("TAMAGOTCHI_VOLUME", "150")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Sound {
		t.Error("TAMAGOTCHI_SOUND not applied")
	}
	if cfg.Volume != 1 {
		t.Errorf("Volume = %v, want clamped 1", cfg.Volume)
	}

	t.Setenv("TAMAGOTCHI_SOUND", "loud")
	if _, err := Load(""); err == nil {
		t.Error("Expected error for invalid TAMAGOTCHI_SOUND")
	}
}

func TestBlackMapsAwayFromDefault(t *testing.T) {
	cfg := Default()
	cfg.StatusColor = "#000000"
	pal, err := cfg.Palette()
	if err != nil {
		t.Fatalf("Palette failed: %v", err)
	}
	if pal.Status.IsDefault() {
		t.Error("Black resolved to the terminal default sentinel")
	}
}

func TestBuildKeymapFromFile(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "keys.toml")
	if err := os.WriteFile(keyPath, []byte("[keys]\nx = \"quit\"\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := Default()
	cfg.Keymap = keyPath
	cfg.Keys = map[string]string{"x": "move_left"}

	km, err := cfg.BuildKeymap()
	if err != nil {
		t.Fatalf("BuildKeymap failed: %v", err)
	}
	// Inline keys win over the keymap file
	if km.Resolve(terminal.RuneEvent('x')) != pet.ActionMoveLeft {
		t.Error("Inline override did not win")
	}

	cfg.Keys = map[string]string{"x": "teleport"}
	if _, err := cfg.BuildKeymap(); err == nil {
		t.Error("Expected error for unknown action")
	}
}

func TestBuildKeymapRequiresQuit(t *testing.T) {
	tests := []struct {
		name    string
		keys    map[string]string
		wantErr bool
	}{
		{"default", nil, false},
		{"q unbound", map[string]string{"q": "none"}, true},
		{"q rebound", map[string]string{"q": "move_up"}, true},
		{"quit moved", map[string]string{"q": "none", "escape": "quit"}, false},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.Keys = tt.keys
		km, err := cfg.BuildKeymap()
		if tt.wantErr {
			if !errors.Is(err, input.ErrNoQuit) {
				t.Errorf("%s: err = %v, want ErrNoQuit", tt.name, err)
			}
			continue
		}
		if err != nil || !km.Bound(pet.ActionQuit) {
			t.Errorf("%s: err = %v, quit bound = %v", tt.name, err, km != nil && km.Bound(pet.ActionQuit))
		}
	}
}

func TestLoadKeymapFileWithoutQuit(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "keys.toml")
	if err := os.WriteFile(keyPath, []byte("[keys]\nq = \"none\"\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := Default()
	cfg.Keymap = keyPath
	_, err := cfg.BuildKeymap()
	if err == nil || !strings.Contains(err.Error(), "no key bound to quit") {
		t.Errorf("err = %v, want no-quit error", err)
	}
}
