// Package neondash implements the Neon Dash endless runner.
// A square agent runs across a procedurally generated field of spikes and
// blocks; jumping over them scores, touching one ends the run.
//
// The simulation is deterministic for a given seed and works in world units
// on a fixed field (1200x600 by default). Rendering to the terminal grid is a
// projection done by Game.Render.
package neondash

import (
	"github.com/vovakirdan/neon-dash/internal/core"
)

// ObstacleKind is the shape of an obstacle.
type ObstacleKind int

const (
	KindHazard   ObstacleKind = iota // Spike sitting on the floor
	KindBlock                        // Solid square block
	KindPlatform                     // Reserved; never generated
)

// String returns the kind's name.
func (k ObstacleKind) String() string {
	switch k {
	case KindHazard:
		return "hazard"
	case KindBlock:
		return "block"
	case KindPlatform:
		return "platform"
	default:
		return "unknown"
	}
}

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Agent is the player-controlled square.
type Agent struct {
	X        float64 // Fixed horizontal position (left edge)
	Y        float64 // Top edge; never greater than ground level
	Size     float64
	DY       float64 // Vertical velocity, negative = up
	Rotation float64 // Degrees, cosmetic only
	Grounded bool
	Color    core.Color
}

// Bounds returns the collision box. Rotation is not part of it.
func (a Agent) Bounds() core.Box {
	return core.NewBox(a.X, a.Y, a.Size, a.Size)
}

// Center returns the agent's center point.
func (a Agent) Center() Point {
	x, y := a.Bounds().Center()
	return Point{X: x, Y: y}
}

// Obstacle is a hazard or block moving towards the agent.
type Obstacle struct {
	ID     uint64
	X, Y   float64
	W, H   float64
	Kind   ObstacleKind
	Passed bool // Set once when the obstacle scores; never cleared
}

// Bounds returns the obstacle's unpadded box.
func (o Obstacle) Bounds() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// TrailingEdge returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) TrailingEdge() float64 {
	return o.X + o.W
}

// Particle is a short-lived visual effect.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // Remaining life; removed at or below zero
	MaxLife float64
	Size    float64
	Color   core.Color
}

// RunState holds the progression counters of one run.
type RunState struct {
	Frame   int
	Speed   float64
	Score   int
	GapRoll float64 // Uniform draw in [0, 1) placing the next gap inside [MinGap, MaxGap]
	MinGap  float64 // Pending gap band at the current speed
	MaxGap  float64
	NextID  uint64
}

// PendingGap returns the gap required before the next group spawns.
func (r RunState) PendingGap() float64 {
	return r.MinGap + r.GapRoll*(r.MaxGap-r.MinGap)
}
