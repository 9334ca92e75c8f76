// Package config loads the game configuration from an optional TOML file,
// applies VI_SNAKE_* environment overrides and validates the result.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/leaderboard"
)

// DefaultPath is the config file looked up when -config is not given
const DefaultPath = "vi-snake.toml"

// Grid size bounds accepted from configuration
const (
	MinGridSize = 4
	MaxGridSize = 40
)

// Config is the full configuration tree
type Config struct {
	Game        GameConfig        `toml:"game"`
	Display     DisplayConfig     `toml:"display"`
	Audio       AudioConfig       `toml:"audio"`
	Scores      ScoresConfig      `toml:"scores"`
	Keys        map[string]string `toml:"keys"`
	SpecialKeys map[string]string `toml:"special_keys"`
}

type GameConfig struct {
	GridSize     int  `toml:"grid_size"`
	FoodReward   int  `toml:"food_reward"`
	SpeedStepMs  int  `toml:"speed_step_ms"`
	SpeedFloorMs int  `toml:"speed_floor_ms"`
	Hazard       bool `toml:"hazard"`
}

type DisplayConfig struct {
	Backend string `toml:"backend"` // ansi | tcell
	Glyphs  string `toml:"glyphs"`  // emoji | ascii
	Color   string `toml:"color"`   // auto | 256 | truecolor
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
	Volume  int  `toml:"volume"` // 0-100
}

type ScoresConfig struct {
	Path string `toml:"path"`
}

// Default returns the built-in configuration
func Default() *Config {
	r := game.DefaultRules()
	return &Config{
		Game: GameConfig{
			GridSize:     r.GridSize,
			FoodReward:   r.FoodReward,
			SpeedStepMs:  int(r.SpeedStep / time.Millisecond),
			SpeedFloorMs: int(r.SpeedFloor / time.Millisecond),
			Hazard:       r.Hazard,
		},
		Display: DisplayConfig{
			Backend: "ansi",
			Glyphs:  "emoji",
			Color:   "auto",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  50,
		},
		Scores: ScoresConfig{
			Path: leaderboard.DefaultPath,
		},
	}
}

// Load reads path over the defaults; a missing file yields the defaults
// Unknown keys are rejected so typos do not pass silently
func Load(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	var errs []error

	if c.Game.GridSize < MinGridSize || c.Game.GridSize > MaxGridSize {
		errs = append(errs, fmt.Errorf("game.grid_size %d outside [%d, %d]", c.Game.GridSize, MinGridSize, MaxGridSize))
	}
	if c.Game.FoodReward <= 0 {
		errs = append(errs, fmt.Errorf("game.food_reward must be positive, got %d", c.Game.FoodReward))
	}
	if c.Game.SpeedStepMs < 0 {
		errs = append(errs, fmt.Errorf("game.speed_step_ms must not be negative, got %d", c.Game.SpeedStepMs))
	}
	if c.Game.SpeedFloorMs <= 0 {
		errs = append(errs, fmt.Errorf("game.speed_floor_ms must be positive, got %d", c.Game.SpeedFloorMs))
	}
	if !oneOf(c.Display.Backend, "ansi", "tcell") {
		errs = append(errs, fmt.Errorf("display.backend %q (want ansi or tcell)", c.Display.Backend))
	}
	if !oneOf(c.Display.Glyphs, "emoji", "ascii") {
		errs = append(errs, fmt.Errorf("display.glyphs %q (want emoji or ascii)", c.Display.Glyphs))
	}
	if !oneOf(c.Display.Color, "auto", "256", "truecolor") {
		errs = append(errs, fmt.Errorf("display.color %q (want auto, 256 or truecolor)", c.Display.Color))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		errs = append(errs, fmt.Errorf("audio.volume %d outside [0, 100]", c.Audio.Volume))
	}
	if strings.TrimSpace(c.Scores.Path) == "" {
		errs = append(errs, errors.New("scores.path is empty"))
	}

	return errors.Join(errs...)
}

func oneOf(v string, allowed ...string) bool {
	v = strings.ToLower(v)
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// Rules converts the game section
func (c *Config) Rules() game.Rules {
	return game.Rules{
		GridSize:   c.Game.GridSize,
		FoodReward: c.Game.FoodReward,
		SpeedStep:  time.Duration(c.Game.SpeedStepMs) * time.Millisecond,
		SpeedFloor: time.Duration(c.Game.SpeedFloorMs) * time.Millisecond,
		Hazard:     c.Game.Hazard,
	}
}

// AudioSettings converts the audio section
func (c *Config) AudioSettings() audio.Config {
	a := audio.DefaultConfig()
	a.Enabled = c.Audio.Enabled
	a.Volume = float64(c.Audio.Volume) / 100.0
	return a
}

// ApplyClassic switches to the plain variant: +1 per food, no hazard
func (c *Config) ApplyClassic() {
	r := game.ClassicRules()
	c.Game.FoodReward = r.FoodReward
	c.Game.Hazard = r.Hazard
}
