package input

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/tamagotchi/pet"
	"github.com/lixenwraith/tamagotchi/terminal"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"equals":    '=',
	"hash":      '#',
}

// keymapFile is the on-disk keymap layout
type keymapFile struct {
	Keys map[string]string `toml:"keys"`
}

// LoadKeymap parses TOML keymap data into a sparse override Keymap
// Returns error on unknown sections, action names, invalid key names, or parse failure
func LoadKeymap(data []byte) (*Keymap, error) {
	var f keymapFile
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown entry %q", undecoded[0].String())
	}
	return ParseBindings(f.Keys)
}

// LoadKeymapFile reads and parses a keymap file
func LoadKeymapFile(path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap read: %w", err)
	}
	return LoadKeymap(data)
}

// ParseBindings converts key name → action name pairs into a sparse Keymap
func ParseBindings(bindings map[string]string) (*Keymap, error) {
	km := &Keymap{
		Keys:  make(map[terminal.Key]pet.Action),
		Runes: make(map[rune]pet.Action),
	}

	for keyStr, actionName := range bindings {
		a, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			km.Runes[r] = a
			continue
		}

		k, ok := terminal.KeyByName(strings.ToLower(keyStr))
		if !ok {
			return nil, fmt.Errorf("[keys] unknown key name: %q", keyStr)
		}
		km.Keys[k] = a
	}

	return km, nil
}

// resolveRune converts a single character or named alias to a rune
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// resolveAction converts an action name string to an Action
func resolveAction(name string) (pet.Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := pet.ActionByName(name)
	if !ok {
		return pet.ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}
