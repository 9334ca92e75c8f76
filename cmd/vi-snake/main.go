package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/difficulty"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/leaderboard"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/terminal"
)

var (
	configPath     = flag.String("config", config.DefaultPath, "Config file (optional)")
	difficultyFlag = flag.String("difficulty", "", "Difficulty: 1|2|3|easy|medium|hard (prompt when empty)")
	backendFlag    = flag.String("backend", "", "Terminal backend: ansi, tcell")
	glyphsFlag     = flag.String("glyphs", "", "Glyph set: emoji, ascii")
	colorModeFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256")
	scoresFlag     = flag.String("scores", "", "Leaderboard file")
	debugFlag      = flag.Bool("debug", false, "Write debug logs to logs/vi-snake.log")
	muteFlag       = flag.Bool("mute", false, "Disable sound")
	classicFlag    = flag.Bool("classic", false, "Classic rules: +1 per food, no poison")
)

// dispatcherWait bounds how long shutdown waits for the input goroutine
const dispatcherWait = 250 * time.Millisecond

func main() {
	// Terminal is restored by HandleCrash once registered
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()
	os.Exit(run())
}

// run wires everything and returns the process exit code
func run() int {
	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	log := logger.WithField("session", uuid.NewString())

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		return 1
	}

	override, err := input.LoadKeyConfig(cfg.Keys, cfg.SpecialKeys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		return 1
	}
	keys := input.MergeKeyTable(input.DefaultKeyTable(), override)

	glyphs, err := render.ParseGlyphs(cfg.Display.Glyphs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		return 1
	}
	kind, err := terminal.ParseKind(cfg.Display.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		return 1
	}
	colorMode := terminal.ParseColorMode(cfg.Display.Color)

	store := leaderboard.NewStore(cfg.Scores.Path)
	if err := store.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Leaderboard: %v\n", err)
		return 1
	}

	// Prompt reads cooked stdin, so it runs before raw mode
	tier := chooseTier(log)
	rules := cfg.Rules()
	key := boardKey(tier, rules)

	g, err := game.New(rules, tier.Interval, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Game: %v\n", err)
		return 1
	}

	sound := audio.NewSoundManager(cfg.AudioSettings())
	if err := sound.Initialize(); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
	}
	defer sound.Close()

	log.WithFields(logrus.Fields{
		"difficulty": tier.Name,
		"board":      key,
		"grid":       cfg.Game.GridSize,
		"hazard":     cfg.Game.Hazard,
		"backend":    kind,
		"scores":     store.Path(),
	}).Info("starting")

	res, err := play(g, kind, colorMode, keys, glyphs, sound, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Terminal: %v\n", err)
		return 1
	}

	fmt.Print(render.GameOverText(res))
	if !res.Outcome.Scored() {
		return 0
	}

	rank, err := store.Record(key, res.Score)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leaderboard: %v\n", err)
		return 1
	}
	if txt := render.RankText(rank); txt != "" {
		fmt.Println(txt)
	}
	fmt.Print(render.Leaderboard(key, store.Top(key), rank))
	fmt.Print(render.OtherBoards(key, store.Keys()))
	return 0
}

// play owns raw mode: terminal is restored before it returns on every path
func play(g *game.Game, kind terminal.Kind, colorMode terminal.ColorMode,
	keys *input.KeyTable, glyphs render.GlyphSet, sound *audio.SoundManager, log *logrus.Entry) (game.Result, error) {

	term, err := terminal.New(kind, colorMode)
	if err != nil {
		return game.Result{}, err
	}
	if err := term.Init(); err != nil {
		return game.Result{}, err
	}
	defer term.Fini()

	core.SetCrashTerminal(term, func() { terminal.EmergencyReset(os.Stdout) })
	defer core.SetCrashTerminal(nil, nil)

	// SIGTERM and SIGINT from outside the tty end the game like the quit key
	base, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(base)
	defer cancel()

	slot := input.NewDirectionSlot(game.StartDirection)
	dispatcher := input.NewDispatcher(term, keys, slot, cancel, log)
	dispatcherDone := make(chan struct{})
	core.Go(func() {
		defer close(dispatcherDone)
		dispatcher.Run()
	})

	session := game.NewSession(g, slot, render.NewRenderer(term, glyphs),
		game.WithListener(sound),
		game.WithLogger(log),
	)
	res := session.Run(ctx)

	cancel()
	term.PostEvent(terminal.Event{Type: terminal.EventClosed})
	select {
	case <-dispatcherDone:
	case <-time.After(dispatcherWait):
		log.Warn("input dispatcher did not stop in time")
	}

	return res, nil
}

// loadConfig layers file, environment and flags, then validates
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if *backendFlag != "" {
		cfg.Display.Backend = *backendFlag
	}
	if *glyphsFlag != "" {
		cfg.Display.Glyphs = *glyphsFlag
	}
	if *colorModeFlag != "" {
		cfg.Display.Color = *colorModeFlag
	}
	if *scoresFlag != "" {
		cfg.Scores.Path = *scoresFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *classicFlag {
		cfg.ApplyClassic()
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Join(errors.New("invalid configuration"), err)
	}
	return cfg, nil
}

// boardKey separates leaderboards by tier and by the rules the game ran with
func boardKey(tier difficulty.Tier, rules game.Rules) string {
	if v := rules.Variant(); v != "" {
		return tier.Name + "-" + v
	}
	return tier.Name
}

// chooseTier uses -difficulty when given, otherwise prompts on stdin
func chooseTier(log *logrus.Entry) difficulty.Tier {
	if *difficultyFlag == "" {
		return difficulty.Prompt(os.Stdin, os.Stdout)
	}
	tier, ok := difficulty.ByName(*difficultyFlag)
	if !ok {
		log.WithField("difficulty", *difficultyFlag).Warn("unknown difficulty, using Easy")
		return difficulty.Easy
	}
	return tier
}
