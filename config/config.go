// Package config loads runtime settings from an optional TOML file.
// A missing file yields Default(); every field has a default reproducing the bare demo.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/tamagotchi/input"
	"github.com/lixenwraith/tamagotchi/terminal"
)

// DefaultTickInterval is roughly 60Hz
const DefaultTickInterval = 16 * time.Millisecond

// Config holds all user-tunable settings
type Config struct {
	TickInterval time.Duration     `toml:"tick_interval"`
	ShowBoxes    bool              `toml:"show_boxes"`
	Sound        bool              `toml:"sound"`
	Volume       float64           `toml:"volume"` // 0.0-1.0
	PetColor     string            `toml:"pet_color"`
	StatusColor  string            `toml:"status_color"`
	Keymap       string            `toml:"keymap"` // Optional keymap file path
	Keys         map[string]string `toml:"keys"`   // Inline key overrides
}

// Palette is the resolved set of draw colors
type Palette struct {
	Pet    terminal.RGB
	Status terminal.RGB
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		TickInterval: DefaultTickInterval,
		ShowBoxes:    false,
		Sound:        false,
		Volume:       0.5,
		PetColor:     "#ffff00",
		StatusColor:  "#ffffff",
	}
}

// Load reads path over the defaults; a missing file is not an error
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.applyEnv()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, cfg.applyEnv()
		}
		return nil, fmt.Errorf("config read: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("config parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv overlays environment overrides
func (c *Config) applyEnv() error {
	if v := os.Getenv("TAMAGOTCHI_SOUND"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TAMAGOTCHI_SOUND: %w", err)
		}
		c.Sound = enabled
	}

	// Volume 0-100 converted to 0.0-1.0
	if v := os.Getenv("TAMAGOTCHI_VOLUME"); v != "" {
		pct, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TAMAGOTCHI_VOLUME: %w", err)
		}
		c.Volume = min(max(float64(pct)/100, 0), 1)
	}
	return nil
}

// Validate checks value ranges and color syntax
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %v", c.TickInterval)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume must be within [0, 1], got %v", c.Volume)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette resolves the hex color settings
func (c *Config) Palette() (Palette, error) {
	pet, err := parseColor("pet_color", c.PetColor)
	if err != nil {
		return Palette{}, err
	}
	status, err := parseColor("status_color", c.StatusColor)
	if err != nil {
		return Palette{}, err
	}
	return Palette{Pet: pet, Status: status}, nil
}

func parseColor(field, hex string) (terminal.RGB, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return terminal.RGB{}, fmt.Errorf("%s: %w", field, err)
	}
	r, g, b := col.RGB255()
	rgb := terminal.RGB{R: r, G: g, B: b}
	if rgb.IsDefault() {
		// Pure black collides with the terminal-default sentinel
		rgb = terminal.RGBBlack
	}
	return rgb, nil
}

// BuildKeymap layers the keymap file, then inline [keys], over the defaults
func (c *Config) BuildKeymap() (*input.Keymap, error) {
	km := input.DefaultKeymap()

	if c.Keymap != "" {
		fileKeys, err := input.LoadKeymapFile(c.Keymap)
		if err != nil {
			return nil, err
		}
		km = input.Merge(km, fileKeys)
	}

	if len(c.Keys) > 0 {
		inline, err := input.ParseBindings(c.Keys)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		km = input.Merge(km, inline)
	}

	if err := km.Validate(); err != nil {
		return nil, err
	}
	return km, nil
}
