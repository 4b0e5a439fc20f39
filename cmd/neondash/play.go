package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dash/internal/config"
	"github.com/vovakirdan/neon-dash/internal/games/neondash"
	"github.com/vovakirdan/neon-dash/internal/platform/tui"
	"github.com/vovakirdan/neon-dash/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a Neon Dash run.

Controls:
  Space/Up/W  - Jump (also starts the run)
  P/Esc       - Pause
  R/Enter     - Restart (after a crash)
  B/Esc       - Leave (while paused or after a crash)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower start, lower top speed
  normal - Speed ramps from 6 to 14
  hard   - Fast start, ramps twice as quickly
  fixed  - Speed never changes

Examples:
  neondash play
  neondash play --difficulty easy
  neondash play --seed 42 --difficulty fixed
  neondash play --config ./my-neondash.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by commands that start runs.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags validates --config and --difficulty and hands them to the game package.
func applyGameFlags() (config.DifficultyPreset, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return "", fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	if flagConfig != "" {
		if _, err := config.LoadNeonDash(flagConfig); err != nil {
			return "", err
		}
	}

	neondash.SetConfigPath(flagConfig)
	neondash.SetDifficultyPreset(string(preset))
	return preset, nil
}

// openStore opens the score database, or returns nil so the game runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	game := neondash.New()

	_, runErr := tui.Run(game, store, runtimeConfig(), tui.WithLogger(gameLogger()))

	if store != nil {
		store.Close() //nolint:errcheck // Best-effort close before exit
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	if err := game.ConfigErr(); err != nil {
		log.Warn("game ran on default config", "error", err)
	}
	return nil
}
