package skyland

import (
	"math"

	"github.com/vovakirdan/skyland/internal/core"
)

// Visual characters for rendering
const (
	SkyChar    = '·'
	GroundChar = '▒'
	ShadowChar = '░'
	BodyChar   = '█'
	MouthChar  = '▓'
	FoodChar   = '●'
	EnemyChar  = '✖'
)

// viewport maps world coordinates onto a screen.
type viewport struct {
	sx, sy float64
}

func newViewport(area core.Rect, dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / float64(area.W),
		sy: float64(dst.Height()) / float64(area.H),
	}
}

// rect scales r, keeping at least one cell in each dimension.
func (v viewport) rect(r core.Rect) core.Rect {
	x0 := int(math.Floor(float64(r.X) * v.sx))
	y0 := int(math.Floor(float64(r.Y) * v.sy))
	x1 := int(math.Ceil(float64(r.Right()) * v.sx))
	y1 := int(math.Ceil(float64(r.Bottom()) * v.sy))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the active world, its entities, the creature and the score.
// It only reads game state.
func (g *Game) Render(dst *core.Screen) {
	area := core.NewRect(0, 0, g.cfg.Area.Width, g.cfg.Area.Height)
	v := newViewport(area, dst)

	world := g.sky
	if g.flip.OnLand() {
		world = g.land
		g.renderLand(dst, v)
	} else {
		g.renderSky(dst)
	}

	for _, e := range world.Entities() {
		if !e.Alive {
			continue
		}
		r, c := FoodChar, core.ColorBrightGreen
		if e.Kind == Enemy {
			r, c = EnemyChar, core.ColorBrightRed
		}
		dst.DrawRectColored(v.rect(e.Hitbox()), r, c)
	}

	if g.creatureVisible() {
		if g.flip.OnLand() {
			g.renderLandCreature(dst, v)
		} else {
			g.renderSkyCreature(dst, v)
		}
	}

	box := *g.scoreBox
	box.Frame = v.rect(g.scoreBox.Frame)
	box.Frame.H = 1
	box.Frame.W = dst.Width() - box.Frame.X
	box.Render(dst)

	if g.paused {
		renderPaused(dst)
	}
}

// pausedLabel is drawn in a box at the screen center while paused.
const pausedLabel = " PAUSED "

func renderPaused(dst *core.Screen) {
	cx, cy := dst.Bounds().Center()
	frame := core.NewRect(cx-len(pausedLabel)/2-1, cy-1, len(pausedLabel)+2, 3)
	dst.DrawRectColored(frame, ' ', core.ColorDefault)
	dst.DrawBox(frame)
	dst.DrawText(frame.X+1, cy, pausedLabel)
}

// creatureVisible makes the creature flash while dying.
func (g *Game) creatureVisible() bool {
	d := g.hero.Dying()
	return d == 0 || (d/4)%2 == 0
}

func (g *Game) renderSky(dst *core.Screen) {
	for y := 0; y < dst.Height(); y += 2 {
		for x := (y / 2) % 4; x < dst.Width(); x += 4 {
			dst.SetColored(x, y, SkyChar, core.ColorBlue)
		}
	}
}

func (g *Game) renderLand(dst *core.Screen, v viewport) {
	t := g.land.Terrain()
	ground := core.NewRect(0, t, g.cfg.Area.Width, g.cfg.Area.Height-t)
	if ground.H > 0 {
		dst.DrawRectColored(v.rect(ground), GroundChar, core.ColorYellow)
	}
}

func (g *Game) renderSkyCreature(dst *core.Screen, v viewport) {
	cx, jy := g.hero.X(), g.hero.JumpOffset()
	y := g.sky.Terrain() + jy
	dst.DrawRectColored(v.rect(core.NewRect(cx-15, y-20, 30, 20)), BodyChar, core.ColorWhite)
	if g.sky.Armed() {
		dst.DrawRectColored(v.rect(g.sky.CaptureRect(cx, jy)), MouthChar, core.ColorMagenta)
	}
}

func (g *Game) renderLandCreature(dst *core.Screen, v viewport) {
	cx, jy := g.hero.X(), g.hero.JumpOffset()
	t := g.land.Terrain()
	shadow := core.NewRect(cx-48, t-jy/2-98, 100, 100)
	dst.DrawRectColored(v.rect(shadow.Inflate(-30, -30)), ShadowChar, core.ColorGray)
	dst.DrawRectColored(v.rect(core.NewRect(cx-10, t+3*jy-20, 20, 20)), BodyChar, core.ColorWhite)
}
