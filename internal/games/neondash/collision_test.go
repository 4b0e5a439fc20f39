package neondash

import "testing"

func TestCollides(t *testing.T) {
	const padding = 10
	hazard := func(x, y float64) Obstacle {
		return Obstacle{X: x, Y: y, W: 40, H: 40, Kind: KindHazard}
	}
	block := func(x, y float64) Obstacle {
		return Obstacle{X: x, Y: y, W: 50, H: 50, Kind: KindBlock}
	}
	agentAt := func(y float64) Agent {
		return Agent{X: 200, Y: y, Size: 40}
	}

	tests := []struct {
		name string
		a    Agent
		o    Obstacle
		want bool
	}{
		{"hazard overlap", agentAt(460), hazard(210, 460), true},
		{"hazard touching right edge", agentAt(460), hazard(220, 460), false},
		{"hazard just inside right edge", agentAt(460), hazard(219, 460), true},
		{"hazard touching left edge", agentAt(460), hazard(180, 460), false},
		{"clear above hazard", agentAt(440), hazard(200, 460), false},
		{"grazing hazard top", agentAt(441), hazard(200, 460), true},
		{"hazard bottom unpadded", agentAt(29), hazard(200, 0), true},
		{"below hazard", agentAt(30), hazard(200, 0), false},
		{"block overlap", agentAt(460), block(200, 450), true},
		{"clear above block", agentAt(430), block(200, 450), false},
		{"grazing block top", agentAt(431), block(200, 450), true},
		{"block bottom padded", agentAt(29), block(200, -10), false},
		{"far away", agentAt(460), block(1300, 450), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.a, tt.o, padding); got != tt.want {
				t.Errorf("Collides() = %v, want %v", got, tt.want)
			}
			spun := tt.a
			spun.Rotation = 45
			if got := Collides(spun, tt.o, padding); got != tt.want {
				t.Errorf("Collides() with rotation = %v, want %v", got, tt.want)
			}
		})
	}
}
