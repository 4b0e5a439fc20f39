package neondash

import (
	"github.com/vovakirdan/neon-dash/internal/config"
	"github.com/vovakirdan/neon-dash/internal/core"
)

// Game adapts the simulation to the platform's Step/Render loop.
// It maps actions to intents, owns pause and tracks the session high score.
type Game struct {
	sim       *Sim
	cfg       config.NeonDashConfig
	preset    config.DifficultyPreset
	runtime   core.RuntimeConfig
	configErr error

	paused    bool
	highScore int
	newHigh   bool // Last run beat the previous high score
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset = config.DifficultyNormal

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names select normal.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// New creates a new Neon Dash game instance using the package-level
// config path and difficulty preset.
func New() *Game {
	return &Game{preset: difficultyPreset}
}

// NewWithPreset creates a game for an explicit difficulty preset.
func NewWithPreset(preset config.DifficultyPreset) *Game {
	return &Game{preset: preset}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "neondash"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Dash"
}

// Mode returns the difficulty preset, used as the score board key.
func (g *Game) Mode() string {
	return string(g.preset)
}

// ConfigErr returns the error from the last config load, if any.
// The game falls back to defaults when loading fails.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// HighScore returns the best score seen by this game.
func (g *Game) HighScore() int {
	return g.highScore
}

// SetHighScore seeds the high score, typically from storage.
func (g *Game) SetHighScore(score int) {
	g.highScore = max(g.highScore, score)
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Reset loads the config and builds a fresh simulation in the MENU state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadNeonDash(configPath)
	g.configErr = err
	if err != nil {
		cfg = config.DefaultNeonDashConfig()
	}
	config.ApplyNeonDashPreset(&cfg, g.preset)

	sim, err := NewSim(cfg, runtime.Seed)
	if err != nil {
		// A preset can push a loaded config out of range; defaults always validate
		g.configErr = err
		cfg = config.DefaultNeonDashConfig()
		config.ApplyNeonDashPreset(&cfg, g.preset)
		sim, _ = NewSim(cfg, runtime.Seed)
	}

	g.cfg = cfg
	g.sim = sim
	g.paused = false
	g.newHigh = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.sim.State() {
	case StateMenu:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.sim.Start()
		}

	case StatePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			return core.StepResult{State: g.State(), Events: toCoreEvents(g.sim.Flush())}
		}
		if in.Has(core.ActionJump) {
			g.sim.Jump()
		}

	case StateGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.newHigh = false
			g.sim.Start()
		}
	}

	events := g.sim.Tick()
	for _, e := range events {
		if sc, ok := e.(StateChanged); ok && sc.To == StateGameOver {
			g.newHigh = sc.Score > 0 && sc.Score >= g.highScore
			g.highScore = max(g.highScore, sc.Score)
		}
	}

	return core.StepResult{State: g.State(), Events: toCoreEvents(events)}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	state := g.sim.State()
	return core.GameState{
		Score:    g.sim.Score(),
		Frames:   g.sim.run.Frame,
		Playing:  state == StatePlaying,
		GameOver: state == StateGameOver,
		Paused:   g.paused,
	}
}

func toCoreEvents(events []Event) []core.Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]core.Event, len(events))
	for i, e := range events {
		out[i] = e
	}
	return out
}
