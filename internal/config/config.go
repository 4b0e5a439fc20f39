// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

// NeonDashConfig contains the full constant set for one run of Neon Dash.
// All distances are in world units, all rates are per tick.
type NeonDashConfig struct {
	Physics   PhysicsConfig  `yaml:"physics"`
	Speed     SpeedProfile   `yaml:"speed"`
	Field     FieldConfig    `yaml:"field"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Effects   EffectsConfig  `yaml:"effects"`
	Colors    ColorConfig    `yaml:"colors"`
}

// PhysicsConfig defines vertical motion of the agent.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`         // Added to vertical velocity each tick
	JumpForce      float64 `yaml:"jump_force"`      // Vertical velocity set on jump (negative = up)
	RotationSpeed  float64 `yaml:"rotation_speed"`  // Degrees per tick while airborne
	RotationSettle float64 `yaml:"rotation_settle"` // Fraction of the offset to 90° removed per grounded tick
}

// FieldConfig defines the visible play field.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// PlayerConfig defines the agent's size and fixed horizontal position.
type PlayerConfig struct {
	Size    float64 `yaml:"size"`
	XOffset float64 `yaml:"x_offset"`
}

// ObstacleConfig defines obstacle geometry and the spawn fairness band.
type ObstacleConfig struct {
	SpawnMargin   float64 `yaml:"spawn_margin"`   // Distance past the right edge where groups appear
	CullMargin    float64 `yaml:"cull_margin"`    // Distance past the left edge where obstacles are removed
	AirtimeFrames float64 `yaml:"airtime_frames"` // Ticks of a jump, used to size gaps
	MinGapFactor  float64 `yaml:"min_gap_factor"`
	MaxGapFactor  float64 `yaml:"max_gap_factor"`
	HazardSize    float64 `yaml:"hazard_size"`
	BlockSize     float64 `yaml:"block_size"`
	HitboxPadding float64 `yaml:"hitbox_padding"`
}

// EffectsConfig defines particle aging.
type EffectsConfig struct {
	Decay  float64 `yaml:"decay"`  // Life removed per tick
	Shrink float64 `yaml:"shrink"` // Size multiplier per tick
}

// ColorConfig holds "#rrggbb" colors for entities.
type ColorConfig struct {
	Player string `yaml:"player"`
	Hazard string `yaml:"hazard"`
	Block  string `yaml:"block"`
	Ground string `yaml:"ground"`
	Dust   string `yaml:"dust"`
}

// GroundLevel returns the agent's resting Y (top edge) in world units.
func (c NeonDashConfig) GroundLevel() float64 {
	return c.Field.Height - c.Field.GroundHeight - c.Player.Size
}

// FloorY returns the Y of the floor line in world units.
func (c NeonDashConfig) FloorY() float64 {
	return c.Field.Height - c.Field.GroundHeight
}
