package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Validate reports every malformed constant in the config.
// A config that passes keeps all simulation values finite.
func (c NeonDashConfig) Validate() error {
	var errs []error

	finite := map[string]float64{
		"physics.gravity":          c.Physics.Gravity,
		"physics.jump_force":       c.Physics.JumpForce,
		"physics.rotation_speed":   c.Physics.RotationSpeed,
		"physics.rotation_settle":  c.Physics.RotationSettle,
		"speed.initial":            c.Speed.Initial,
		"speed.increment":          c.Speed.Increment,
		"speed.max":                c.Speed.Max,
		"field.ground_height":      c.Field.GroundHeight,
		"player.x_offset":          c.Player.XOffset,
		"obstacles.spawn_margin":   c.Obstacles.SpawnMargin,
		"obstacles.cull_margin":    c.Obstacles.CullMargin,
		"obstacles.max_gap_factor": c.Obstacles.MaxGapFactor,
		"obstacles.hitbox_padding": c.Obstacles.HitboxPadding,
		"effects.shrink":           c.Effects.Shrink,
	}
	for name, v := range finite {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be finite, got %v", name, v))
		}
	}

	positive := map[string]float64{
		"physics.gravity":          c.Physics.Gravity,
		"speed.initial":            c.Speed.Initial,
		"speed.max":                c.Speed.Max,
		"field.width":              c.Field.Width,
		"field.height":             c.Field.Height,
		"player.size":              c.Player.Size,
		"obstacles.airtime_frames": c.Obstacles.AirtimeFrames,
		"obstacles.min_gap_factor": c.Obstacles.MinGapFactor,
		"obstacles.hazard_size":    c.Obstacles.HazardSize,
		"obstacles.block_size":     c.Obstacles.BlockSize,
		"effects.decay":            c.Effects.Decay,
	}
	for name, v := range positive {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	if !(c.Physics.JumpForce < 0) {
		errs = append(errs, fmt.Errorf("physics.jump_force must be negative (upward), got %v", c.Physics.JumpForce))
	}
	if !(c.Physics.RotationSettle >= 0 && c.Physics.RotationSettle <= 1) {
		errs = append(errs, fmt.Errorf("physics.rotation_settle must be within [0, 1], got %v", c.Physics.RotationSettle))
	}
	if !(c.Speed.Increment >= 0) {
		errs = append(errs, fmt.Errorf("speed.increment must not be negative, got %v", c.Speed.Increment))
	}
	if !(c.Speed.Max >= c.Speed.Initial) {
		errs = append(errs, fmt.Errorf("speed.max (%v) must not be below speed.initial (%v)", c.Speed.Max, c.Speed.Initial))
	}
	nonNegative := map[string]float64{
		"player.x_offset":          c.Player.XOffset,
		"obstacles.hitbox_padding": c.Obstacles.HitboxPadding,
	}
	for name, v := range nonNegative {
		if !(v >= 0) {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}
	if !(c.Obstacles.MaxGapFactor >= c.Obstacles.MinGapFactor) {
		errs = append(errs, fmt.Errorf("obstacles.max_gap_factor (%v) must not be below min_gap_factor (%v)",
			c.Obstacles.MaxGapFactor, c.Obstacles.MinGapFactor))
	}
	if !(c.Field.GroundHeight >= 0) || !(c.GroundLevel() >= 0) {
		errs = append(errs, fmt.Errorf("field.ground_height %v leaves no room for the player", c.Field.GroundHeight))
	}
	if !(c.Effects.Shrink > 0 && c.Effects.Shrink <= 1) {
		errs = append(errs, fmt.Errorf("effects.shrink must be within (0, 1], got %v", c.Effects.Shrink))
	}

	colors := map[string]string{
		"colors.player": c.Colors.Player,
		"colors.hazard": c.Colors.Hazard,
		"colors.block":  c.Colors.Block,
		"colors.ground": c.Colors.Ground,
		"colors.dust":   c.Colors.Dust,
	}
	for name, hex := range colors {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid color %q", name, hex))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid neondash config: %w", errors.Join(errs...))
	}
	return nil
}
