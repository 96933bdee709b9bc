package terminal

import "github.com/gdamore/tcell/v2"

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter; H, I, M are not mapped
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// IsCtrl reports whether k is a Ctrl+letter key, which carries ModCtrl itself
func (k Key) IsCtrl() bool {
	return k >= KeyCtrlA && k <= KeyCtrlZ
}

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// fromTcell maps tcell key codes to Key
var fromTcell = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,

	tcell.KeyUp:     KeyUp,
	tcell.KeyDown:   KeyDown,
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyHome:   KeyHome,
	tcell.KeyEnd:    KeyEnd,
	tcell.KeyPgUp:   KeyPageUp,
	tcell.KeyPgDn:   KeyPageDown,
	tcell.KeyInsert: KeyInsert,

	tcell.KeyF1:  KeyF1,
	tcell.KeyF2:  KeyF2,
	tcell.KeyF3:  KeyF3,
	tcell.KeyF4:  KeyF4,
	tcell.KeyF5:  KeyF5,
	tcell.KeyF6:  KeyF6,
	tcell.KeyF7:  KeyF7,
	tcell.KeyF8:  KeyF8,
	tcell.KeyF9:  KeyF9,
	tcell.KeyF10: KeyF10,
	tcell.KeyF11: KeyF11,
	tcell.KeyF12: KeyF12,

	tcell.KeyCtrlA: KeyCtrlA,
	tcell.KeyCtrlB: KeyCtrlB,
	tcell.KeyCtrlC: KeyCtrlC,
	tcell.KeyCtrlD: KeyCtrlD,
	tcell.KeyCtrlE: KeyCtrlE,
	tcell.KeyCtrlF: KeyCtrlF,
	tcell.KeyCtrlG: KeyCtrlG,
	tcell.KeyCtrlK: KeyCtrlK,
	tcell.KeyCtrlL: KeyCtrlL,
	tcell.KeyCtrlN: KeyCtrlN,
	tcell.KeyCtrlO: KeyCtrlO,
	tcell.KeyCtrlP: KeyCtrlP,
	tcell.KeyCtrlQ: KeyCtrlQ,
	tcell.KeyCtrlR: KeyCtrlR,
	tcell.KeyCtrlS: KeyCtrlS,
	tcell.KeyCtrlT: KeyCtrlT,
	tcell.KeyCtrlU: KeyCtrlU,
	tcell.KeyCtrlV: KeyCtrlV,
	tcell.KeyCtrlW: KeyCtrlW,
	tcell.KeyCtrlX: KeyCtrlX,
	tcell.KeyCtrlY: KeyCtrlY,
	tcell.KeyCtrlZ: KeyCtrlZ,
}

// keyEvent converts a tcell key event
func keyEvent(e *tcell.EventKey) Event {
	ev := Event{Type: EventKey, Modifiers: modifiers(e.Modifiers())}
	if e.Key() == tcell.KeyRune {
		ev.Key = KeyRune
		ev.Rune = e.Rune()
		return ev
	}
	if k, ok := fromTcell[e.Key()]; ok {
		ev.Key = k
	}
	return ev
}

func modifiers(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}
