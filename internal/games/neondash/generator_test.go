package neondash

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/neon-dash/internal/config"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// scriptedRand returns a fixed sequence of values, cycling when exhausted.
type scriptedRand struct {
	vals []float64
	n    int
}

func (r *scriptedRand) Float64() float64 {
	v := r.vals[r.n%len(r.vals)]
	r.n++
	return v
}

func TestPickPattern(t *testing.T) {
	tests := []struct {
		roll float64
		want Pattern
	}{
		{0, Pattern{KindHazard}},
		{0.39, Pattern{KindHazard}},
		{0.40, Pattern{KindHazard, KindHazard}},
		{0.69, Pattern{KindHazard, KindHazard}},
		{0.70, Pattern{KindBlock}},
		{0.84, Pattern{KindBlock}},
		{0.85, Pattern{KindHazard, KindHazard, KindHazard}},
		{0.999, Pattern{KindHazard, KindHazard, KindHazard}},
		{1.5, Pattern{KindHazard, KindHazard, KindHazard}},
	}

	for _, tt := range tests {
		got := PickPattern(DefaultComposition, tt.roll)
		if len(got) != len(tt.want) {
			t.Errorf("PickPattern(%v) = %v, want %v", tt.roll, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("PickPattern(%v) = %v, want %v", tt.roll, got, tt.want)
				break
			}
		}
	}

	if PickPattern(nil, 0.5) != nil {
		t.Error("empty table should yield no pattern")
	}
}

func TestGapBand(t *testing.T) {
	cfg := config.DefaultNeonDashConfig()
	minGap, maxGap := GapBand(10, cfg.Obstacles)
	if !approx(minGap, 320) || !approx(maxGap, 600) {
		t.Errorf("GapBand(10) = [%v, %v], want [320, 600]", minGap, maxGap)
	}
}

func TestGeneratorFirstSpawn(t *testing.T) {
	cfg := config.DefaultNeonDashConfig()
	gen := NewGenerator(cfg, nil)
	run := RunState{Speed: 6}
	rng := &scriptedRand{vals: []float64{0.5, 0.25}}

	obstacles := gen.Update(&run, nil, rng)

	if len(obstacles) != 2 {
		t.Fatalf("expected a double hazard, got %d obstacles", len(obstacles))
	}
	for i, o := range obstacles {
		wantX := 1300 + float64(i)*40
		if o.X != wantX || o.Y != 460 || o.W != 40 || o.H != 40 || o.Kind != KindHazard {
			t.Errorf("obstacle %d = %+v, want hazard at x=%v y=460", i, o, wantX)
		}
		if o.ID != uint64(i+1) {
			t.Errorf("obstacle %d has ID %d, want %d", i, o.ID, i+1)
		}
	}
	if run.GapRoll != 0.25 {
		t.Errorf("GapRoll = %v, want 0.25", run.GapRoll)
	}
	if !approx(run.MinGap, 192) || !approx(run.MaxGap, 360) {
		t.Errorf("gap band = [%v, %v], want [192, 360]", run.MinGap, run.MaxGap)
	}
}

func TestGeneratorBlockGeometry(t *testing.T) {
	cfg := config.DefaultNeonDashConfig()
	gen := NewGenerator(cfg, nil)
	run := RunState{Speed: 6}

	obstacles := gen.Update(&run, nil, &scriptedRand{vals: []float64{0.75, 0}})
	if len(obstacles) != 1 {
		t.Fatalf("expected one block, got %d", len(obstacles))
	}
	b := obstacles[0]
	if b.Kind != KindBlock || b.X != 1300 || b.Y != 450 || b.W != 50 || b.H != 50 {
		t.Errorf("block = %+v, want 50x50 at (1300, 450)", b)
	}
}

func TestGeneratorWaitsForGap(t *testing.T) {
	cfg := config.DefaultNeonDashConfig()
	gen := NewGenerator(cfg, nil)
	run := RunState{Speed: 10, GapRoll: 0.5, NextID: 1} // pending gap 460
	rng := &scriptedRand{vals: []float64{0.1, 0.9}}

	// Trailing edge 900: spawn edge is only 400 past it
	obstacles := []Obstacle{{ID: 1, X: 860, Y: 460, W: 40, H: 40, Kind: KindHazard}}
	obstacles = gen.Update(&run, obstacles, rng)
	if len(obstacles) != 1 {
		t.Fatalf("spawned before the gap was reached: %d obstacles", len(obstacles))
	}
	if !approx(run.PendingGap(), 460) {
		t.Errorf("PendingGap() = %v, want 460", run.PendingGap())
	}

	// Trailing edge 830: 470 available, group lands exactly 460 behind it
	obstacles[0].X = 790
	obstacles = gen.Update(&run, obstacles, rng)
	if len(obstacles) != 2 {
		t.Fatalf("expected a new group, got %d obstacles", len(obstacles))
	}
	if got := obstacles[1].X - obstacles[0].TrailingEdge(); !approx(got, 460) {
		t.Errorf("gap = %v, want 460", got)
	}
	if obstacles[1].ID != 2 {
		t.Errorf("new obstacle ID = %d, want 2", obstacles[1].ID)
	}
	if run.GapRoll != 0.9 {
		t.Errorf("GapRoll = %v, want redraw 0.9", run.GapRoll)
	}
}

// TestGeneratorGapBand drives the generator the way the clock does and
// checks every gap between consecutive groups against the band at spawn time.
func TestGeneratorGapBand(t *testing.T) {
	tests := []struct {
		name      string
		speed     float64
		increment float64
	}{
		{"fixed speed 10", 10, 0},
		{"fixed speed 6", 6, 0},
		{"ramping", 6, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultNeonDashConfig()
			cfg.Speed = config.SpeedProfile{Initial: tt.speed, Increment: tt.increment, Max: 14}
			gen := NewGenerator(cfg, nil)
			run := RunState{Speed: cfg.Speed.Initial}
			rng := rand.New(rand.NewSource(7))

			var obstacles []Obstacle
			groups := 0
			for tick := 0; tick < 5000; tick++ {
				run.Speed = cfg.Speed.Next(run.Speed)
				before := len(obstacles)
				obstacles = gen.Update(&run, obstacles, rng)

				if len(obstacles) > before && before > 0 {
					groups++
					gap := obstacles[before].X - obstacles[before-1].TrailingEdge()
					minGap, maxGap := GapBand(run.Speed, cfg.Obstacles)
					if gap < minGap-1e-9 || gap > maxGap+1e-9 {
						t.Fatalf("tick %d: gap %v outside [%v, %v] at speed %v", tick, gap, minGap, maxGap, run.Speed)
					}
				}

				kept := obstacles[:0]
				for _, o := range obstacles {
					o.X -= run.Speed
					if o.TrailingEdge() >= -cfg.Obstacles.CullMargin {
						kept = append(kept, o)
					}
				}
				obstacles = kept
			}
			if groups < 20 {
				t.Errorf("only %d groups spawned", groups)
			}
		})
	}
}

func TestGeneratorCustomTable(t *testing.T) {
	cfg := config.DefaultNeonDashConfig()
	table := []CompositionEntry{{Threshold: 1, Pattern: Pattern{KindBlock, KindBlock}}}
	gen := NewGenerator(cfg, table)
	run := RunState{Speed: 6}

	obstacles := gen.Update(&run, nil, &scriptedRand{vals: []float64{0.3}})
	if len(obstacles) != 2 || obstacles[1].X != 1350 {
		t.Fatalf("custom table not used: %+v", obstacles)
	}
}
