// Package input maps terminal key events to pet actions.
package input

import (
	"errors"
	"maps"

	"github.com/lixenwraith/tamagotchi/pet"
	"github.com/lixenwraith/tamagotchi/terminal"
)

// ErrNoQuit is returned for a keymap that leaves no way to exit
var ErrNoQuit = errors.New("keymap: no key bound to quit")

// Keymap binds special keys and printable runes to actions
type Keymap struct {
	Keys  map[terminal.Key]pet.Action
	Runes map[rune]pet.Action
}

// DefaultKeymap returns arrows plus vi-style hjkl and q to quit
func DefaultKeymap() *Keymap {
	return &Keymap{
		Keys: map[terminal.Key]pet.Action{
			terminal.KeyDown:  pet.ActionMoveDown,
			terminal.KeyUp:    pet.ActionMoveUp,
			terminal.KeyRight: pet.ActionMoveRight,
			terminal.KeyLeft:  pet.ActionMoveLeft,
		},
		Runes: map[rune]pet.Action{
			'j': pet.ActionMoveDown,
			'k': pet.ActionMoveUp,
			'l': pet.ActionMoveRight,
			'h': pet.ActionMoveLeft,
			'q': pet.ActionQuit,
		},
	}
}

// Resolve returns the action bound to a key event, ActionNone if unbound
// Alt and Ctrl chords never match a plain binding
func (k *Keymap) Resolve(ev terminal.Event) pet.Action {
	if ev.Type != terminal.EventKey || ev.Modifiers&terminal.ModAlt != 0 {
		return pet.ActionNone
	}
	if ev.Modifiers&terminal.ModCtrl != 0 && !ev.Key.IsCtrl() {
		return pet.ActionNone
	}
	if ev.Key == terminal.KeyRune {
		return k.Runes[ev.Rune]
	}
	return k.Keys[ev.Key]
}

// Bound reports whether any key or rune triggers a
func (k *Keymap) Bound(a pet.Action) bool {
	for _, b := range k.Keys {
		if b == a {
			return true
		}
	}
	for _, b := range k.Runes {
		if b == a {
			return true
		}
	}
	return false
}

// Validate rejects keymaps the loop cannot exit from
func (k *Keymap) Validate() error {
	if !k.Bound(pet.ActionQuit) {
		return ErrNoQuit
	}
	return nil
}

// Clone returns a deep copy
func (k *Keymap) Clone() *Keymap {
	return &Keymap{
		Keys:  maps.Clone(k.Keys),
		Runes: maps.Clone(k.Runes),
	}
}

// Merge returns a new Keymap with base bindings overridden by override
// Override entries bound to ActionNone delete the key from the result
func Merge(base, override *Keymap) *Keymap {
	result := base.Clone()
	if result.Keys == nil {
		result.Keys = make(map[terminal.Key]pet.Action)
	}
	if result.Runes == nil {
		result.Runes = make(map[rune]pet.Action)
	}
	if override == nil {
		return result
	}

	for key, a := range override.Keys {
		if a == pet.ActionNone {
			delete(result.Keys, key)
		} else {
			result.Keys[key] = a
		}
	}
	for r, a := range override.Runes {
		if a == pet.ActionNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = a
		}
	}
	return result
}
