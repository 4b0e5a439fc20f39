package neondash

import (
	"math"
	"slices"
)

// Snapshot is a read-only copy of the simulation after a tick.
type Snapshot struct {
	State     State
	Agent     Agent
	Obstacles []Obstacle
	Particles []Particle
	Score     int
	Frame     int
	Speed     float64
	MinGap    float64 // Pending gap band for the next group
	MaxGap    float64

	FieldW float64 // Field size in world units
	FieldH float64
	FloorY float64 // Y of the floor line
}

// Snapshot copies the current state. The result shares nothing with the Sim.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		State:     s.state,
		Agent:     s.agent,
		Obstacles: slices.Clone(s.obstacles),
		Particles: slices.Clone(s.particles),
		Score:     s.run.Score,
		Frame:     s.run.Frame,
		Speed:     s.run.Speed,
		MinGap:    s.run.MinGap,
		MaxGap:    s.run.MaxGap,
		FieldW:    s.cfg.Field.Width,
		FieldH:    s.cfg.Field.Height,
		FloorY:    s.cfg.FloorY(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frame)       //#nosec G115 -- frame count is never negative
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Speed)
	h = h*31 + math.Float64bits(snap.Agent.Y)
	h = h*31 + math.Float64bits(snap.Agent.DY)
	h = h*31 + math.Float64bits(snap.Agent.Rotation)
	for _, o := range snap.Obstacles {
		h = h*31 + o.ID
		h = h*31 + math.Float64bits(o.X)
		h = h*31 + uint64(o.Kind) //#nosec G115 -- hash computation
	}
	for _, p := range snap.Particles {
		h = h*31 + math.Float64bits(p.X)
		h = h*31 + math.Float64bits(p.Y)
		h = h*31 + math.Float64bits(p.Life)
	}
	return h
}
