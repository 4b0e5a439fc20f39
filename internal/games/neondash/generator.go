package neondash

import (
	"github.com/vovakirdan/neon-dash/internal/config"
)

// Rand is the random source used by the generator and effects.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Pattern is the left-to-right list of obstacle kinds in one group.
type Pattern []ObstacleKind

// CompositionEntry selects Pattern for rolls below Threshold.
type CompositionEntry struct {
	Threshold float64
	Pattern   Pattern
}

// DefaultComposition is the group table, ordered by cumulative threshold.
var DefaultComposition = []CompositionEntry{
	{Threshold: 0.40, Pattern: Pattern{KindHazard}},
	{Threshold: 0.70, Pattern: Pattern{KindHazard, KindHazard}},
	{Threshold: 0.85, Pattern: Pattern{KindBlock}},
	{Threshold: 1.00, Pattern: Pattern{KindHazard, KindHazard, KindHazard}},
}

// PickPattern returns the first entry whose threshold exceeds roll.
// Rolls past the last threshold get the last pattern.
func PickPattern(table []CompositionEntry, roll float64) Pattern {
	for _, e := range table {
		if roll < e.Threshold {
			return e.Pattern
		}
	}
	if len(table) == 0 {
		return nil
	}
	return table[len(table)-1].Pattern
}

// GapBand returns the allowed gap between groups at the given speed.
func GapBand(speed float64, cfg config.ObstacleConfig) (minGap, maxGap float64) {
	traversal := speed * cfg.AirtimeFrames
	return traversal * cfg.MinGapFactor, traversal * cfg.MaxGapFactor
}

// Generator appends obstacle groups ahead of the agent.
type Generator struct {
	cfg       config.ObstacleConfig
	floorY    float64
	spawnEdge float64
	table     []CompositionEntry
}

// NewGenerator creates a generator for the given field.
func NewGenerator(cfg config.NeonDashConfig, table []CompositionEntry) *Generator {
	if len(table) == 0 {
		table = DefaultComposition
	}
	return &Generator{
		cfg:       cfg.Obstacles,
		floorY:    cfg.FloorY(),
		spawnEdge: cfg.Field.Width + cfg.Obstacles.SpawnMargin,
		table:     table,
	}
}

// SpawnEdge returns the x-coordinate where groups enter the field.
func (g *Generator) SpawnEdge() float64 {
	return g.spawnEdge
}

// Update refreshes the pending gap band and spawns a group when due.
// An empty field spawns at the spawn edge at once. Otherwise a group spawns
// when the spawn edge is at least the pending gap past the trailing edge of
// the newest obstacle, and is placed exactly that gap behind it rather than
// at the spawn edge, so every gap lies in the band for the speed at spawn time.
func (g *Generator) Update(run *RunState, obstacles []Obstacle, rng Rand) []Obstacle {
	run.MinGap, run.MaxGap = GapBand(run.Speed, g.cfg)

	if len(obstacles) == 0 {
		obstacles = g.spawnGroup(run, obstacles, g.spawnEdge, rng)
		run.GapRoll = rng.Float64()
		return obstacles
	}

	trailing := obstacles[len(obstacles)-1].TrailingEdge()
	gap := run.PendingGap()
	if g.spawnEdge-trailing < gap {
		return obstacles
	}

	obstacles = g.spawnGroup(run, obstacles, trailing+gap, rng)
	run.GapRoll = rng.Float64()
	return obstacles
}

// spawnGroup appends one randomly composed group starting at x.
func (g *Generator) spawnGroup(run *RunState, dst []Obstacle, x float64, rng Rand) []Obstacle {
	pattern := PickPattern(g.table, rng.Float64())
	for _, kind := range pattern {
		size := g.cfg.HazardSize
		if kind != KindHazard {
			size = g.cfg.BlockSize
		}
		run.NextID++
		dst = append(dst, Obstacle{
			ID:   run.NextID,
			X:    x,
			Y:    g.floorY - size,
			W:    size,
			H:    size,
			Kind: kind,
		})
		x += size
	}
	return dst
}
