package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != DefaultNeonDashConfig() {
		t.Errorf("embedded defaults differ from DefaultNeonDashConfig:\n got %+v\nwant %+v", cfg, DefaultNeonDashConfig())
	}
}

func TestDefaultGeometry(t *testing.T) {
	cfg := DefaultNeonDashConfig()
	if got := cfg.GroundLevel(); got != 460 {
		t.Errorf("GroundLevel() = %v, want 460", got)
	}
	if got := cfg.FloorY(); got != 500 {
		t.Errorf("FloorY() = %v, want 500", got)
	}
}

func TestLoadNeonDashCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "physics:\n  gravity: 0.8\nspeed:\n  initial: 7\n  max: 12\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadNeonDash(path)
	if err != nil {
		t.Fatalf("LoadNeonDash(%q) error: %v", path, err)
	}
	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("Gravity = %v, want 0.8", cfg.Physics.Gravity)
	}
	if cfg.Speed.Initial != 7 || cfg.Speed.Max != 12 {
		t.Errorf("Speed = %+v, want initial 7 max 12", cfg.Speed)
	}
	// Unset fields keep defaults
	if cfg.Physics.JumpForce != -11 {
		t.Errorf("JumpForce = %v, want default -11", cfg.Physics.JumpForce)
	}
	if cfg.Speed.Increment != 0.001 {
		t.Errorf("Increment = %v, want default 0.001", cfg.Speed.Increment)
	}
}

func TestLoadNeonDashErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadNeonDash(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadNeonDash(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("speed:\n  initial: 10\n  max: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadNeonDash(invalid)
	if err == nil {
		t.Fatal("expected validation error for max below initial")
	}
	if !strings.Contains(err.Error(), "speed.max") {
		t.Errorf("error %q should name speed.max", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NeonDashConfig)
		field  string
	}{
		{"nan gravity", func(c *NeonDashConfig) { c.Physics.Gravity = math.NaN() }, "physics.gravity"},
		{"zero gravity", func(c *NeonDashConfig) { c.Physics.Gravity = 0 }, "physics.gravity"},
		{"upward jump required", func(c *NeonDashConfig) { c.Physics.JumpForce = 3 }, "physics.jump_force"},
		{"negative increment", func(c *NeonDashConfig) { c.Speed.Increment = -1 }, "speed.increment"},
		{"inverted gap band", func(c *NeonDashConfig) { c.Obstacles.MaxGapFactor = 0.5 }, "max_gap_factor"},
		{"infinite speed", func(c *NeonDashConfig) { c.Speed.Max = math.Inf(1) }, "speed.max"},
		{"bad color", func(c *NeonDashConfig) { c.Colors.Hazard = "pink" }, "colors.hazard"},
		{"shrink above one", func(c *NeonDashConfig) { c.Effects.Shrink = 1.5 }, "effects.shrink"},
		{"nan max gap factor", func(c *NeonDashConfig) { c.Obstacles.MaxGapFactor = math.NaN() }, "obstacles.max_gap_factor"},
		{"nan hitbox padding", func(c *NeonDashConfig) { c.Obstacles.HitboxPadding = math.NaN() }, "obstacles.hitbox_padding"},
		{"negative hitbox padding", func(c *NeonDashConfig) { c.Obstacles.HitboxPadding = -1 }, "obstacles.hitbox_padding"},
		{"nan x offset", func(c *NeonDashConfig) { c.Player.XOffset = math.NaN() }, "player.x_offset"},
		{"negative x offset", func(c *NeonDashConfig) { c.Player.XOffset = -5 }, "player.x_offset"},
		{"nan ground height", func(c *NeonDashConfig) { c.Field.GroundHeight = math.NaN() }, "field.ground_height"},
		{"infinite ground height", func(c *NeonDashConfig) { c.Field.GroundHeight = math.Inf(1) }, "field.ground_height"},
	}

	if err := DefaultNeonDashConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultNeonDashConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should mention %s", err, tt.field)
			}
		})
	}
}

func TestSpeedProfileNext(t *testing.T) {
	p := SpeedProfile{Initial: 6, Increment: 0.5, Max: 7}
	speed := p.Initial
	want := []float64{6.5, 7, 7, 7}
	for i, w := range want {
		speed = p.Next(speed)
		if speed != w {
			t.Errorf("step %d: speed = %v, want %v", i, speed, w)
		}
	}

	fixed := SpeedProfile{Initial: 10, Increment: 0, Max: 14}
	if !fixed.IsFixed() {
		t.Error("zero increment should be fixed")
	}
	if got := fixed.Next(10); got != 10 {
		t.Errorf("fixed Next(10) = %v, want 10", got)
	}
}

func TestPresets(t *testing.T) {
	for _, p := range Presets() {
		got, ok := ParsePreset(string(p))
		if !ok || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, ok)
		}
		cfg := DefaultNeonDashConfig()
		ApplyNeonDashPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s produces invalid config: %v", p, err)
		}
		if p.Description() == "" {
			t.Errorf("preset %s has no description", p)
		}
	}

	if got, ok := ParsePreset(""); !ok || got != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v, want normal", got, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should not parse")
	}

	cfg := DefaultNeonDashConfig()
	ApplyNeonDashPreset(&cfg, DifficultyFixed)
	if !cfg.Speed.IsFixed() {
		t.Error("fixed preset should not ramp speed")
	}
}
