package neondash

import (
	"math"
	"testing"

	"github.com/vovakirdan/neon-dash/internal/config"
)

func testAgent(cfg config.NeonDashConfig) Agent {
	return Agent{
		X:        cfg.Player.XOffset,
		Y:        cfg.GroundLevel(),
		Size:     cfg.Player.Size,
		Grounded: true,
	}
}

func TestIntegrateGroundedRest(t *testing.T) {
	cfg := config.DefaultNeonDashConfig()
	a := testAgent(cfg)
	ground := cfg.GroundLevel()

	for i := 0; i < 500; i++ {
		Integrate(&a, cfg.Physics, ground)
		if a.Y != ground || a.DY != 0 || !a.Grounded {
			t.Fatalf("tick %d: agent left rest: y=%v dy=%v grounded=%v", i, a.Y, a.DY, a.Grounded)
		}
	}
}

func TestJumpImpulse(t *testing.T) {
	cfg := config.DefaultNeonDashConfig()
	a := testAgent(cfg)

	if !Jump(&a, cfg.Physics) {
		t.Fatal("jump from the ground should be accepted")
	}
	if a.DY != cfg.Physics.JumpForce {
		t.Errorf("DY = %v, want %v", a.DY, cfg.Physics.JumpForce)
	}
	if a.Grounded {
		t.Error("agent should not be grounded right after a jump")
	}
	if Jump(&a, cfg.Physics) {
		t.Error("jump while airborne should be rejected")
	}
	if a.DY != cfg.Physics.JumpForce {
		t.Errorf("rejected jump changed DY to %v", a.DY)
	}
}

func TestIntegrateFloorClamp(t *testing.T) {
	cfg := config.DefaultNeonDashConfig()
	a := testAgent(cfg)
	ground := cfg.GroundLevel()

	Jump(&a, cfg.Physics)
	landed := -1
	peak := ground
	for i := 1; i <= 200; i++ {
		Integrate(&a, cfg.Physics, ground)
		if a.Y > ground {
			t.Fatalf("tick %d: agent sank below ground: y=%v", i, a.Y)
		}
		peak = math.Min(peak, a.Y)
		if a.Grounded && landed < 0 {
			landed = i
			if a.Y != ground || a.DY != 0 {
				t.Errorf("landing should clamp: y=%v dy=%v", a.Y, a.DY)
			}
		}
	}

	if landed < 30 || landed > 45 {
		t.Errorf("jump lasted %d ticks, expected roughly 36", landed)
	}
	if height := ground - peak; height < 95 || height > 105 {
		t.Errorf("jump height = %v, expected about 95", height)
	}
}

func TestIntegrateRotation(t *testing.T) {
	cfg := config.DefaultNeonDashConfig()
	ground := cfg.GroundLevel()

	air := Agent{Y: ground - 200, Size: 40}
	Integrate(&air, cfg.Physics, ground)
	if air.Rotation != cfg.Physics.RotationSpeed {
		t.Errorf("airborne rotation = %v, want %v", air.Rotation, cfg.Physics.RotationSpeed)
	}

	tests := []struct {
		name string
		rot  float64
		want float64
	}{
		{"settled", 90, 90},
		{"below half turns back", 30, 24},
		{"above half turns forward", 80, 82},
		{"exactly half turns back", 45, 36},
		{"second quadrant", 200, 196},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Agent{Y: ground, Size: 40, Grounded: true, Rotation: tt.rot}
			Integrate(&a, cfg.Physics, ground)
			if math.Abs(a.Rotation-tt.want) > 1e-9 {
				t.Errorf("rotation = %v, want %v", a.Rotation, tt.want)
			}
		})
	}
}

func TestRotationNeverAffectsBounds(t *testing.T) {
	a := Agent{X: 200, Y: 460, Size: 40}
	b := a
	b.Rotation = 45
	if a.Bounds() != b.Bounds() {
		t.Errorf("bounds changed with rotation: %+v vs %+v", a.Bounds(), b.Bounds())
	}
}
