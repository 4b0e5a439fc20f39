package config

// SpeedProfile is the horizontal speed ramp of a run.
type SpeedProfile struct {
	Initial   float64 `yaml:"initial"`
	Increment float64 `yaml:"increment"` // Added per tick until Max is reached
	Max       float64 `yaml:"max"`
}

// Next returns the speed for the following tick.
func (p SpeedProfile) Next(speed float64) float64 {
	if speed >= p.Max {
		return speed
	}
	return min(speed+p.Increment, p.Max)
}

// IsFixed reports whether the speed never changes during a run.
func (p SpeedProfile) IsFixed() bool {
	return p.Increment == 0 || p.Initial >= p.Max
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets returns all presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a CLI value into a preset.
// An empty string yields DifficultyNormal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// Description returns a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "Slower start, lower top speed"
	case DifficultyNormal:
		return "Speed ramps from 6 to 14"
	case DifficultyHard:
		return "Fast start, ramps twice as quickly"
	case DifficultyFixed:
		return "Speed never changes"
	default:
		return ""
	}
}

// ApplyNeonDashPreset modifies the speed ramp based on a difficulty preset.
func ApplyNeonDashPreset(cfg *NeonDashConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Initial = 5
		cfg.Speed.Max = 11
		cfg.Speed.Increment = 0.0008
	case DifficultyHard:
		cfg.Speed.Initial = 8
		cfg.Speed.Max = 16
		cfg.Speed.Increment = 0.002
	case DifficultyFixed:
		cfg.Speed.Increment = 0
	}
}
