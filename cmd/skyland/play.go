package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyland/internal/audio"
	"github.com/vovakirdan/skyland/internal/config"
	"github.com/vovakirdan/skyland/internal/core"
	"github.com/vovakirdan/skyland/internal/games/skyland"
	"github.com/vovakirdan/skyland/internal/platform/tui"
	"github.com/vovakirdan/skyland/internal/registry"
	"github.com/vovakirdan/skyland/internal/storage"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to skyland.

Controls:
  Space/Z/X/Enter - Toggle the button (mouth in the sky, jump on land)
  Left mouse      - Hold the button
  Tab             - Runs this session
  P/Esc           - Pause
  R               - New session
  Q/Ctrl+C        - Quit

Examples:
  skyland play
  skyland play --seed 7
  skyland play --config ./skyland.yaml --watch --log-file skyland.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config on change; applies from the next run")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := skyland.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'skyland list' to see available games", gameID)
	}

	tuning, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	var watcher *config.Watcher
	if flagWatch {
		if flagConfig == "" {
			return errors.New("--watch needs --config")
		}
		if watcher, err = config.NewWatcher(flagConfig); err != nil {
			return err
		}
		defer watcher.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	audioCfg := audio.LoadConfig()
	if flagMute {
		audioCfg.Enabled = false
	}
	player := audio.NewPlayer(audioCfg, logger)
	if err := player.Init(); err != nil {
		if !errors.Is(err, audio.ErrNoDevice) {
			return err
		}
		logger.Warn("sound disabled", "err", err)
	}
	defer player.Close()

	store, err := storage.OpenMemory()
	if err != nil {
		// The run log is optional; play without it.
		logger.Warn("run log unavailable", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	game, err := registry.Create(gameID, registry.Env{
		Cues:   player,
		Logger: logger,
		Tuning: &tuning,
	})
	if err != nil {
		return err
	}

	if err := tui.Run(game, store, cfg, watcher, tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("run %s: %w", gameID, err)
	}
	return nil
}
