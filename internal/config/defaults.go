package config

import (
	_ "embed"
)

//go:embed defaults/neondash.yaml
var defaultNeonDashYAML []byte

// DefaultNeonDashConfig returns the default Neon Dash configuration.
func DefaultNeonDashConfig() NeonDashConfig {
	return NeonDashConfig{
		Physics: PhysicsConfig{
			Gravity:        0.6,
			JumpForce:      -11,
			RotationSpeed:  5,
			RotationSettle: 0.2,
		},
		Speed: SpeedProfile{
			Initial:   6,
			Increment: 0.001,
			Max:       14,
		},
		Field: FieldConfig{
			Width:        1200,
			Height:       600,
			GroundHeight: 100,
		},
		Player: PlayerConfig{
			Size:    40,
			XOffset: 200,
		},
		Obstacles: ObstacleConfig{
			SpawnMargin:   100,
			CullMargin:    100,
			AirtimeFrames: 40,
			MinGapFactor:  0.8,
			MaxGapFactor:  1.5,
			HazardSize:    40,
			BlockSize:     50,
			HitboxPadding: 10,
		},
		Effects: EffectsConfig{
			Decay:  0.02,
			Shrink: 0.95,
		},
		Colors: ColorConfig{
			Player: "#00f2ff",
			Hazard: "#ff0055",
			Block:  "#7000ff",
			Ground: "#1e293b",
			Dust:   "#ffffff",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultNeonDashYAML
}
