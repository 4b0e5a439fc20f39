package neondash

import (
	"math"

	"github.com/vovakirdan/neon-dash/internal/config"
)

// Integrate advances the agent's vertical motion by one tick.
// Landing clamps the agent to groundY and eases its rotation toward the
// nearest multiple of 90 degrees; while airborne it spins.
func Integrate(a *Agent, p config.PhysicsConfig, groundY float64) {
	a.DY += p.Gravity
	a.Y += a.DY

	if a.Y >= groundY {
		a.Y = groundY
		a.DY = 0
		a.Grounded = true
		a.Rotation = settleRotation(a.Rotation, p.RotationSettle)
		return
	}

	a.Grounded = false
	a.Rotation = math.Mod(a.Rotation+p.RotationSpeed, 360)
}

// Jump applies the jump impulse. Returns false if the agent is airborne.
func Jump(a *Agent, p config.PhysicsConfig) bool {
	if !a.Grounded {
		return false
	}
	a.DY = p.JumpForce
	a.Grounded = false
	return true
}

// settleRotation removes a fraction of the offset to the nearest right angle.
func settleRotation(rot, fraction float64) float64 {
	rem := math.Mod(rot, 90)
	if rem < 0 {
		rem += 90
	}
	if rem == 0 {
		return rot
	}
	if rem > 45 {
		return rot + (90-rem)*fraction
	}
	return rot - rem*fraction
}
