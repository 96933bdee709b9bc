package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/tamagotchi/audio"
	"github.com/lixenwraith/tamagotchi/config"
	"github.com/lixenwraith/tamagotchi/engine"
	"github.com/lixenwraith/tamagotchi/pet"
	"github.com/lixenwraith/tamagotchi/render"
	"github.com/lixenwraith/tamagotchi/terminal"
)

var (
	configFlag = flag.String("config", "tamagotchi.toml", "Path to TOML config file (missing file uses defaults)")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/tamagotchi.log")
	soundFlag  = flag.Bool("sound", false, "Enable audio cues")
	boxesFlag  = flag.Bool("boxes", false, "Show the decorative rectangles panel")
	keymapFlag = flag.String("keymap", "", "Path to TOML keymap file")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTAMAGOTCHI CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if code := run(); code != 0 {
		os.Exit(code)
	}
}

// run owns every deferred cleanup so main can exit with a status afterwards
func run() int {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}
	applyFlags(cfg)

	keymap, err := cfg.BuildKeymap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Keymap error: %v\n", err)
		return 1
	}
	palette, err := cfg.Palette()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := terminal.Preflight(); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot start: %v\n", err)
		return 1
	}

	term, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup; Fini is idempotent
	defer term.Fini()

	gameCfg := engine.GameConfig{
		TickInterval: cfg.TickInterval,
		Keymap:       keymap,
		Render: render.Options{
			PetColor:    palette.Pet,
			StatusColor: palette.Status,
			ShowBoxes:   cfg.ShowBoxes,
		},
	}

	if cfg.Sound {
		sm := audio.NewSoundManager(cfg.Volume)
		if err := sm.Initialize(); err != nil {
			log.Printf("audio: initialization failed, continuing without sound: %v", err)
		} else {
			defer sm.Cleanup()
			gameCfg.Listener = sm
		}
	}

	runErr := engine.NewGame(term, pet.NewState(), gameCfg).Run()

	// Restore the terminal before anything is printed
	term.Fini()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return 1
	}
	return 0
}

// applyFlags layers explicitly enabled flags over file settings
func applyFlags(cfg *config.Config) {
	if *soundFlag {
		cfg.Sound = true
	}
	if *boxesFlag {
		cfg.ShowBoxes = true
	}
	if *keymapFlag != "" {
		cfg.Keymap = *keymapFlag
	}
}
