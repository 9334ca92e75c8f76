package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-snake/difficulty"
)

// setFlag points a flag variable at v for the duration of the test
func setFlag[T any](t *testing.T, p *T, v T) {
	t.Helper()
	old := *p
	*p = v
	t.Cleanup(func() { *p = old })
}

func TestLoadConfig_FlagsWinOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vi-snake.toml")
	if err := os.WriteFile(path, []byte("[display]\nbackend = \"ansi\"\nglyphs = \"emoji\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	setFlag(t, configPath, path)
	setFlag(t, backendFlag, "tcell")
	setFlag(t, scoresFlag, filepath.Join(dir, "scores.txt"))
	setFlag(t, muteFlag, true)
	setFlag(t, classicFlag, true)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Display.Backend != "tcell" {
		t.Errorf("backend = %q, want flag value", cfg.Display.Backend)
	}
	if cfg.Display.Glyphs != "emoji" {
		t.Errorf("glyphs = %q, want file value", cfg.Display.Glyphs)
	}
	if cfg.Audio.Enabled {
		t.Error("mute flag ignored")
	}
	if cfg.Game.Hazard || cfg.Game.FoodReward != 1 {
		t.Errorf("classic flag ignored: %+v", cfg.Game)
	}
}

func TestLoadConfig_InvalidFails(t *testing.T) {
	setFlag(t, configPath, filepath.Join(t.TempDir(), "absent.toml"))
	setFlag(t, glyphsFlag, "braille")

	if _, err := loadConfig(); err == nil {
		t.Error("expected validation error")
	}
}

func TestChooseTier_Flag(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	log := logrus.NewEntry(l)

	tests := []struct {
		flag string
		want difficulty.Tier
	}{
		{"2", difficulty.Medium},
		{"hard", difficulty.Hard},
		{"nightmare", difficulty.Easy},
	}
	for _, tt := range tests {
		setFlag(t, difficultyFlag, tt.flag)
		if got := chooseTier(log); got != tt.want {
			t.Errorf("chooseTier(%q) = %v, want %v", tt.flag, got, tt.want)
		}
	}
}

func TestBoardKey_FollowsEffectiveRules(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name    string
		file    string
		classic bool
		want    string
	}{
		{"defaults", "", false, "Easy"},
		{"classic flag", "", true, "Easy-Classic"},
		{"classic from file", "[game]\nfood_reward = 1\nhazard = false\n", false, "Easy-Classic"},
		{"bigger grid", "[game]\ngrid_size = 40\n", false, "Easy-Custom-40x40-10pt-hazard-20ms-80ms"},
		{"classic flag on bigger grid", "[game]\ngrid_size = 12\n", true, "Easy-Custom-12x12-1pt-nohazard-20ms-80ms"},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setFlag(t, configPath, write(fmt.Sprintf("case%d.toml", i), tt.file))
			setFlag(t, scoresFlag, filepath.Join(dir, "scores.txt"))
			setFlag(t, classicFlag, tt.classic)

			cfg, err := loadConfig()
			if err != nil {
				t.Fatalf("loadConfig: %v", err)
			}
			if got := boardKey(difficulty.Easy, cfg.Rules()); got != tt.want {
				t.Errorf("boardKey = %q, want %q", got, tt.want)
			}
		})
	}
}
