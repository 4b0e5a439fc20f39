package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dash/internal/games/neondash"
	"github.com/vovakirdan/neon-dash/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty and play",
	Long: `Start Neon Dash in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play.
Leaving a run (B/Esc while paused or after a crash) returns here.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - High scores
  Q            - Quit

Examples:
  neondash menu
  neondash menu --fps 30
  neondash menu --difficulty hard --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := applyGameFlags()
	if err != nil {
		return err
	}

	store := openStore()
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			log.Error("menu failed", "error", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, preset)
			if sbErr != nil {
				log.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		preset = menuResult.Preset
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, runErr := tui.Run(neondash.NewWithPreset(preset), store, cfg, tui.WithLogger(gameLogger()))
		if runErr != nil {
			log.Error("game failed", "error", runErr)
			break
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close() //nolint:errcheck // Best-effort close on exit
	}
	return nil
}
