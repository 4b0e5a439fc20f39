package neondash

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/neon-dash/internal/core"
)

// Visual characters for rendering
const (
	AgentChar       = '█'
	AgentTiltChar   = '▓'
	HazardChar      = '▲'
	BlockChar       = '█'
	FloorChar       = '═'
	GroundChar      = '░'
	GridChar        = '·'
	ParticleLarge   = '●'
	ParticleMedium  = '•'
	ParticleSmall   = '·'
	backgroundColor = "#0f172a"
)

// hudRows is the number of screen rows above the field.
const hudRows = 1

// projection maps world units onto screen cells.
type projection struct {
	scaleX, scaleY float64
	top            int
}

func newProjection(snap Snapshot, w, h int) projection {
	rows := max(h-hudRows, 1)
	return projection{
		scaleX: float64(w) / snap.FieldW,
		scaleY: float64(rows) / snap.FieldH,
		top:    hudRows,
	}
}

func (p projection) col(x float64) int { return int(math.Floor(x * p.scaleX)) }
func (p projection) row(y float64) int { return p.top + int(math.Floor(y*p.scaleY)) }

// rect returns the cells covered by a world box, at least one cell in size.
func (p projection) rect(b core.Box) core.Rect {
	x0, y0 := p.col(b.Left), p.row(b.Top)
	x1 := int(math.Ceil(b.Right * p.scaleX))
	y1 := p.top + int(math.Ceil(b.Bottom*p.scaleY))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	snap := g.sim.Snapshot()
	proj := newProjection(snap, dst.Width(), dst.Height())

	g.drawGrid(dst, proj, snap)
	g.drawGround(dst, proj, snap)
	for _, o := range snap.Obstacles {
		g.drawObstacle(dst, proj, o)
	}
	for _, p := range snap.Particles {
		drawParticle(dst, proj, p)
	}
	if snap.State != StateGameOver {
		drawAgent(dst, proj, snap.Agent)
	}

	g.drawHUD(dst, snap)

	switch {
	case snap.State == StateMenu:
		drawMessage(dst, []messageLine{
			{"NEON DASH", core.ColorCyan},
			{"", core.ColorDefault},
			{"SPACE to jump", core.ColorGray},
			{"Press SPACE or ENTER to start", core.ColorWhite},
		})
	case snap.State == StateGameOver:
		lines := []messageLine{
			{"CRASHED!", core.Color(g.cfg.Colors.Hazard)},
			{"", core.ColorDefault},
			{fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite},
		}
		if g.newHigh {
			lines = append(lines, messageLine{"NEW HIGH SCORE!", core.ColorYellow})
		}
		lines = append(lines, messageLine{"R to retry  |  B for menu", core.ColorGray})
		drawMessage(dst, lines)
	case g.paused:
		drawMessage(dst, []messageLine{
			{"PAUSED", core.ColorWhite},
			{"Press P to resume", core.ColorGray},
		})
	}
}

// drawGrid draws the scrolling background grid tinted by a slowly cycling hue.
func (g *Game) drawGrid(dst *core.Screen, proj projection, snap Snapshot) {
	hue := math.Mod(float64(snap.Frame)/5, 360)
	tint := core.Color(colorful.Hsl(hue, 0.4, 0.3).Hex())

	offset := math.Mod(float64(snap.Frame)*snap.Speed*0.5, 100)
	floor := proj.row(snap.FloorY)
	for x := -offset; x < snap.FieldW; x += 100 {
		col := proj.col(x)
		if col < 0 {
			continue
		}
		for y := proj.top; y < floor; y += 2 {
			dst.SetColored(col, y, GridChar, tint)
		}
	}
}

// drawGround draws the floor line and fills the ground below it.
func (g *Game) drawGround(dst *core.Screen, proj projection, snap Snapshot) {
	floor := proj.row(snap.FloorY)
	dst.DrawHLine(0, floor, dst.Width(), FloorChar, core.ColorGray)
	ground := core.Color(g.cfg.Colors.Ground)
	for y := floor + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, ground)
	}
}

// drawObstacle renders a spike or a block.
func (g *Game) drawObstacle(dst *core.Screen, proj projection, o Obstacle) {
	r := proj.rect(o.Bounds())
	ch, color := BlockChar, core.Color(g.cfg.Colors.Block)
	if o.Kind == KindHazard {
		ch, color = HazardChar, core.Color(g.cfg.Colors.Hazard)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, ch, color)
		}
	}
}

// drawAgent renders the agent, shaded while it is tilted mid-spin.
func drawAgent(dst *core.Screen, proj projection, a Agent) {
	r := proj.rect(a.Bounds())
	ch := rune(AgentChar)
	off := math.Mod(a.Rotation, 90)
	if off > 10 && off < 80 {
		ch = AgentTiltChar
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, ch, a.Color)
		}
	}
}

// drawParticle renders a particle faded toward the background as it ages.
func drawParticle(dst *core.Screen, proj projection, p Particle) {
	ch := rune(ParticleSmall)
	switch {
	case p.Size >= 4:
		ch = ParticleLarge
	case p.Size >= 2:
		ch = ParticleMedium
	}
	dst.SetColored(proj.col(p.X), proj.row(p.Y), ch, fade(p.Color, 1-p.Life/p.MaxLife))
}

// drawHUD draws the title, score, high score and speed on the top row.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, "NEON DASH", core.ColorCyan)

	right := fmt.Sprintf("Score: %d  Spd: %.1f ", snap.Score, snap.Speed)
	if g.highScore > 0 {
		right = fmt.Sprintf("HI: %d  %s", g.highScore, right)
	}
	dst.DrawTextColored(dst.Width()-len(right), 0, right, core.ColorWhite)
}

type messageLine struct {
	text  string
	color core.Color
}

// drawMessage draws a bordered box with centered lines in the middle of the screen.
func drawMessage(dst *core.Screen, lines []messageLine) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l.text)))
	}
	boxW := width + 6
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorGray)

	for i, l := range lines {
		dst.DrawTextCentered(boxY+2+i, l.text, l.color)
	}
}

// fade blends a color toward the background by amount in [0, 1].
func fade(c core.Color, amount float64) core.Color {
	from, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	bg, _ := colorful.Hex(backgroundColor)
	return core.Color(from.BlendRgb(bg, core.ClampF(amount, 0, 1)).Clamped().Hex())
}
