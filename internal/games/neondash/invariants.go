package neondash

import (
	"errors"
	"fmt"
	"math"
)

// CheckInvariants reports every violated simulation invariant.
// A non-nil result is a programming error; tests call it after each tick.
func (s *Sim) CheckInvariants() error {
	var errs []error
	ground := s.cfg.GroundLevel()

	a := s.agent
	for name, v := range map[string]float64{"y": a.Y, "dy": a.DY, "rotation": a.Rotation} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("agent %s is not finite: %v", name, v))
		}
	}
	if a.Y > ground {
		errs = append(errs, fmt.Errorf("agent y %v is below ground %v", a.Y, ground))
	}
	if a.Grounded && a.Y != ground {
		errs = append(errs, fmt.Errorf("agent grounded at y=%v (ground %v)", a.Y, ground))
	}
	if !a.Grounded && a.Y == ground && a.DY != s.cfg.Physics.JumpForce {
		errs = append(errs, fmt.Errorf("agent airborne at ground level with dy %v", a.DY))
	}
	if a.Grounded && a.DY != 0 {
		errs = append(errs, fmt.Errorf("grounded agent has dy %v", a.DY))
	}

	passed := 0
	var lastID uint64
	for i, o := range s.obstacles {
		if math.IsNaN(o.X) || math.IsInf(o.X, 0) {
			errs = append(errs, fmt.Errorf("obstacle %d x is not finite", o.ID))
		}
		if o.ID <= lastID && i > 0 {
			errs = append(errs, fmt.Errorf("obstacle ids out of order: %d after %d", o.ID, lastID))
		}
		lastID = o.ID
		if o.Passed {
			passed++
		}
	}
	if passed > s.run.Score {
		errs = append(errs, fmt.Errorf("%d passed obstacles in flight but score is %d", passed, s.run.Score))
	}
	if limit := s.maxObstacles(); len(s.obstacles) > limit {
		errs = append(errs, fmt.Errorf("%d obstacles in flight, limit %d", len(s.obstacles), limit))
	}

	for _, p := range s.particles {
		if !(p.Life > 0) || p.Life > p.MaxLife {
			errs = append(errs, fmt.Errorf("particle life %v outside (0, %v]", p.Life, p.MaxLife))
		}
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Size) {
			errs = append(errs, errors.New("particle position is not finite"))
		}
	}

	return errors.Join(errs...)
}

// maxObstacles bounds the obstacles in flight: every group of at most three
// sits at least the minimum gap from the previous one across the span from
// the cull line to the spawn edge.
func (s *Sim) maxObstacles() int {
	minGap, _ := GapBand(s.cfg.Speed.Initial, s.cfg.Obstacles)
	span := s.gen.SpawnEdge() + s.cfg.Obstacles.CullMargin
	largest := 3 * max(s.cfg.Obstacles.HazardSize, s.cfg.Obstacles.BlockSize)
	return 3 * (int(math.Ceil(span/minGap)) + 1 + int(math.Ceil(largest/minGap)))
}
