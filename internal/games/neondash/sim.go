package neondash

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/neon-dash/internal/config"
	"github.com/vovakirdan/neon-dash/internal/core"
)

// State is the lifecycle state of the simulation.
type State int

const (
	StateMenu     State = iota // Idle before the first run
	StatePlaying               // Ticking
	StateGameOver              // Idle after a crash
)

// String returns the state's name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StatePlaying:
		return "PLAYING"
	case StateGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Sim is the deterministic runner simulation.
// It owns the agent, both entity collections and the run counters.
// Sim is not safe for concurrent use; each session owns its own.
type Sim struct {
	cfg  config.NeonDashConfig
	gen  *Generator
	seed int64
	rng  Rand

	state     State
	run       RunState
	agent     Agent
	obstacles []Obstacle
	particles []Particle
	events    []Event
}

// NewSim validates cfg and creates a simulation in the MENU state.
func NewSim(cfg config.NeonDashConfig, seed int64) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("neondash: %w", err)
	}

	s := &Sim{
		cfg:       cfg,
		gen:       NewGenerator(cfg, DefaultComposition),
		seed:      seed,
		rng:       rand.New(rand.NewSource(seed)),
		obstacles: make([]Obstacle, 0, 16),
		particles: make([]Particle, 0, 64),
	}
	s.resetRun()
	s.events = nil
	return s, nil
}

// Config returns the constant set the simulation was built with.
func (s *Sim) Config() config.NeonDashConfig {
	return s.cfg
}

// State returns the current lifecycle state.
func (s *Sim) State() State {
	return s.state
}

// Score returns the current score.
func (s *Sim) Score() int {
	return s.run.Score
}

// Seed returns the seed of the random source.
func (s *Sim) Seed() int64 {
	return s.seed
}

// Start begins a new run from MENU or GAME_OVER.
// The random source continues its sequence. Start while PLAYING does nothing.
func (s *Sim) Start() {
	if s.state == StatePlaying {
		return
	}
	s.resetRun()
	s.setState(StatePlaying)
}

// Reset reseeds the random source and begins a new run from any state.
func (s *Sim) Reset(seed int64) {
	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed))
	s.resetRun()
	s.setState(StatePlaying)
}

// Jump applies a jump intent. It is accepted only while PLAYING with the
// agent on the ground, and kicks up a dust burst at the agent's feet.
func (s *Sim) Jump() bool {
	if s.state != StatePlaying {
		return false
	}
	if !Jump(&s.agent, s.cfg.Physics) {
		return false
	}

	feet := Point{X: s.agent.X, Y: s.agent.Y + s.agent.Size}
	s.particles = Burst(s.particles, feet, core.Color(s.cfg.Colors.Dust), DustSpec(s.agent.Size), s.rng)
	s.emit(Jumped{X: feet.X, Y: feet.Y})
	return true
}

// Tick advances the simulation by one frame and returns the events emitted
// since the previous drain. Outside PLAYING only pending events are returned.
func (s *Sim) Tick() []Event {
	if s.state != StatePlaying {
		return s.Flush()
	}

	s.run.Frame++
	s.run.Speed = s.cfg.Speed.Next(s.run.Speed)

	Integrate(&s.agent, s.cfg.Physics, s.cfg.GroundLevel())
	s.obstacles = s.gen.Update(&s.run, s.obstacles, s.rng)
	s.updateObstacles()
	s.particles = AgeParticles(s.particles, s.cfg.Effects.Decay, s.cfg.Effects.Shrink)

	return s.Flush()
}

// Flush returns and clears the pending events.
func (s *Sim) Flush() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}

// updateObstacles advances, scores, culls and hit-tests every obstacle.
// The pass stops at the first hit; obstacles after it are kept untouched.
func (s *Sim) updateObstacles() {
	kept := s.obstacles[:0]
	for i := 0; i < len(s.obstacles); i++ {
		o := s.obstacles[i]
		o.X -= s.run.Speed

		if !o.Passed && o.TrailingEdge() < s.agent.X {
			o.Passed = true
			s.run.Score++
			s.emit(ScoreChanged{Score: s.run.Score})
		}

		if o.TrailingEdge() < -s.cfg.Obstacles.CullMargin {
			continue
		}
		kept = append(kept, o)

		if Collides(s.agent, o, s.cfg.Obstacles.HitboxPadding) {
			s.crash()
			kept = append(kept, s.obstacles[i+1:]...)
			break
		}
	}
	s.obstacles = kept
}

// crash ends the run with an explosion at the agent's center.
func (s *Sim) crash() {
	center := s.agent.Center()
	s.particles = Burst(s.particles, center, s.agent.Color, CrashSpec(), s.rng)
	s.emit(Crashed{X: center.X, Y: center.Y, Score: s.run.Score})
	s.setState(StateGameOver)
}

// resetRun puts the agent at its spawn pose and clears all run state.
func (s *Sim) resetRun() {
	s.agent = Agent{
		X:        s.cfg.Player.XOffset,
		Y:        s.cfg.GroundLevel(),
		Size:     s.cfg.Player.Size,
		Grounded: true,
		Color:    core.Color(s.cfg.Colors.Player),
	}
	s.obstacles = s.obstacles[:0]
	s.particles = s.particles[:0]
	s.run = RunState{Speed: s.cfg.Speed.Initial}
	s.run.MinGap, s.run.MaxGap = GapBand(s.run.Speed, s.cfg.Obstacles)
	s.emit(ScoreChanged{Score: 0})
}

func (s *Sim) setState(to State) {
	if s.state == to {
		return
	}
	from := s.state
	s.state = to
	s.emit(StateChanged{From: from, To: to, Score: s.run.Score})
}

func (s *Sim) emit(e Event) {
	s.events = append(s.events, e)
}
