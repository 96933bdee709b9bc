// Command keytest shows which pet action each key press resolves to under the active keymap.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/tamagotchi/config"
	"github.com/lixenwraith/tamagotchi/input"
	"github.com/lixenwraith/tamagotchi/terminal"
	"github.com/lixenwraith/tamagotchi/terminal/tui"
)

var (
	configFlag = flag.String("config", "tamagotchi.toml", "Path to TOML config file")
	keymapFlag = flag.String("keymap", "", "Path to TOML keymap file")
)

const maxLog = 12

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}
	if *keymapFlag != "" {
		cfg.Keymap = *keymapFlag
	}
	km, err := cfg.BuildKeymap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "keymap: %v\n", err)
		return 1
	}

	term, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		return 1
	}
	defer term.Fini()

	if err := loop(term, km); err != nil {
		// Restore the screen before the message so it stays visible
		term.Fini()
		fmt.Fprintf(os.Stderr, "keytest: %v\n", err)
		return 1
	}
	return 0
}

// loop echoes key events until Ctrl+C; any terminal error ends it
func loop(term terminal.Terminal, km *input.Keymap) error {
	w, h := term.Size()
	cells := make([]terminal.Cell, w*h)
	eventLog := make([]string, 0, maxLog)

	addLog := func(s string) {
		if len(eventLog) >= maxLog {
			copy(eventLog, eventLog[1:])
			eventLog = eventLog[:maxLog-1]
		}
		eventLog = append(eventLog, s)
	}

	render := func() error {
		clear(cells)
		region := tui.NewRegion(cells, w, 0, 0, w, h)
		inner := region.Card("Key Test - Ctrl+C to quit", tui.LineRounded, terminal.RGBCyan)
		for i, entry := range eventLog {
			inner.Text(1, i, entry, terminal.RGBWhite, terminal.RGBDefault, terminal.AttrNone)
		}
		return term.Flush(cells, w, h)
	}

	if err := render(); err != nil {
		return err
	}
	for {
		ev, ok, err := term.PollEvent(time.Second)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		switch ev.Type {
		case terminal.EventKey:
			if ev.Key == terminal.KeyCtrlC {
				return nil
			}
			addLog(describe(km, ev))
		case terminal.EventResize:
			w, h = ev.Width, ev.Height
			cells = make([]terminal.Cell, w*h)
			addLog(fmt.Sprintf("RESIZE: %dx%d", w, h))
		}
		if err := render(); err != nil {
			return err
		}
	}
}

// describe formats a key event and its resolved action
func describe(km *input.Keymap, ev terminal.Event) string {
	var mods string
	if ev.Modifiers&terminal.ModShift != 0 {
		mods += "Shift+"
	}
	if ev.Modifiers&terminal.ModAlt != 0 {
		mods += "Alt+"
	}
	if ev.Modifiers&terminal.ModCtrl != 0 {
		mods += "Ctrl+"
	}

	name := terminal.KeyName(ev.Key)
	if ev.Key == terminal.KeyRune {
		if ev.Rune >= 0x20 && ev.Rune < 0x7f {
			name = fmt.Sprintf("'%c'", ev.Rune)
		} else {
			name = fmt.Sprintf("U+%04X", ev.Rune)
		}
	}
	if name == "" {
		name = fmt.Sprintf("Key(%d)", ev.Key)
	}

	return fmt.Sprintf("KEY: %-16s -> %s", mods+name, km.Resolve(ev))
}
