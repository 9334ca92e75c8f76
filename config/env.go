package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvGridSize     = "VI_SNAKE_GRID_SIZE"
	EnvHazard       = "VI_SNAKE_HAZARD"
	EnvBackend      = "VI_SNAKE_BACKEND"
	EnvGlyphs       = "VI_SNAKE_GLYPHS"
	EnvColor        = "VI_SNAKE_COLOR"
	EnvAudioEnabled = "VI_SNAKE_AUDIO_ENABLED"
	EnvVolume       = "VI_SNAKE_MASTER_VOLUME"
	EnvScores       = "VI_SNAKE_SCORES"
)

// ApplyEnv overlays VI_SNAKE_* variables; unparseable values are errors
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvGridSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvGridSize, err)
		}
		c.Game.GridSize = n
	}
	if v, ok := lookup(EnvHazard); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHazard, err)
		}
		c.Game.Hazard = b
	}
	if v, ok := lookup(EnvBackend); ok {
		c.Display.Backend = v
	}
	if v, ok := lookup(EnvGlyphs); ok {
		c.Display.Glyphs = v
	}
	if v, ok := lookup(EnvColor); ok {
		c.Display.Color = v
	}
	if v, ok := lookup(EnvAudioEnabled); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		c.Audio.Enabled = b
	}
	// Range is left to Validate, same as the file value
	if v, ok := lookup(EnvVolume); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVolume, err)
		}
		c.Audio.Volume = n
	}
	if v, ok := lookup(EnvScores); ok {
		c.Scores.Path = v
	}
	return nil
}
