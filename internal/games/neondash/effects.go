package neondash

import (
	"github.com/vovakirdan/neon-dash/internal/core"
)

// Range is a closed interval sampled uniformly.
type Range struct {
	Min, Max float64
}

// Fixed returns a range holding a single value.
func Fixed(v float64) Range {
	return Range{Min: v, Max: v}
}

// sample draws from the range. Fixed ranges do not consume a draw.
func (r Range) sample(rng Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// BurstSpec describes a particle burst.
type BurstSpec struct {
	Count  int
	Spread float64 // Horizontal extent of the origin, 0 for a point
	VX, VY Range
	Life   Range
	Size   Range
}

// DustSpec is the small upward puff left by a jump across an agent of the given width.
func DustSpec(width float64) BurstSpec {
	return BurstSpec{
		Count:  5,
		Spread: width,
		VX:     Range{Min: -2.5, Max: 2.5},
		VY:     Range{Min: -2, Max: 0},
		Life:   Fixed(0.5),
		Size:   Fixed(3),
	}
}

// CrashSpec is the omnidirectional explosion on collision.
func CrashSpec() BurstSpec {
	return BurstSpec{
		Count: 20,
		VX:    Range{Min: -5, Max: 5},
		VY:    Range{Min: -5, Max: 5},
		Life:  Fixed(1),
		Size:  Range{Min: 2, Max: 7},
	}
}

// Burst appends spec.Count particles at origin to dst.
func Burst(dst []Particle, origin Point, color core.Color, spec BurstSpec, rng Rand) []Particle {
	for range spec.Count {
		x := origin.X
		if spec.Spread > 0 {
			x += rng.Float64() * spec.Spread
		}
		life := spec.Life.sample(rng)
		dst = append(dst, Particle{
			X:       x,
			Y:       origin.Y,
			VX:      spec.VX.sample(rng),
			VY:      spec.VY.sample(rng),
			Life:    life,
			MaxLife: life,
			Size:    spec.Size.sample(rng),
			Color:   color,
		})
	}
	return dst
}

// AgeParticles moves every particle, drains its life and shrinks it.
// Dead particles are removed in place; the returned slice shares storage.
func AgeParticles(particles []Particle, decay, shrink float64) []Particle {
	alive := particles[:0]
	for _, p := range particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= decay
		p.Size *= shrink
		if p.Life <= 0 {
			continue
		}
		alive = append(alive, p)
	}
	return alive
}
