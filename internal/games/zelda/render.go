package zelda

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-zelda/internal/core"
)

// Visual characters for rendering
const (
	HeartChar      = '♥'
	EmptyHeartChar = '♡'
	RockChar       = '●'
	CloudChar      = '*'
)

var playerGlyphs = map[Direction]rune{
	DirUp:    '▲',
	DirDown:  '▼',
	DirLeft:  '◀',
	DirRight: '▶',
}

var enemyGlyphs = map[EnemyVariant]struct {
	glyph rune
	color core.Color
}{
	Leever:    {'ʘ', core.ColorYellow},
	RedLeever: {'ʘ', core.ColorBrightRed},
	Octopus:   {'Ö', core.ColorMagenta},
}

var pickupGlyphs = map[PickupType]struct {
	glyph rune
	color core.Color
}{
	PickupHeart:    {HeartChar, core.ColorRed},
	PickupBlueRing: {'o', core.ColorBrightBlue},
	PickupTriforce: {'▲', core.ColorBrightYellow},
}

const (
	minScreenW = 40
	minScreenH = 12
	hudRows    = 1
)

// viewport maps world pixels into the framed play area.
type viewport struct {
	frame  core.Rect
	x0, y0 int
	sx, sy float64
}

func (g *Game) viewport(dst *core.Screen) viewport {
	frame := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
	innerW, innerH := frame.W-2, frame.H-2
	return viewport{
		frame: frame,
		x0:    frame.X + 1,
		y0:    frame.Y + 1,
		sx:    float64(innerW) / g.cfg.Scene.Width,
		sy:    float64(innerH) / g.cfg.Scene.Height,
	}
}

// cells converts a world box to the covered screen cells, at least one.
func (v viewport) cells(b core.RectF) core.Rect {
	x := v.x0 + int(math.Floor(b.X*v.sx))
	y := v.y0 + int(math.Floor(b.Y*v.sy))
	w := max(1, int(math.Round(b.W*v.sx)))
	h := max(1, int(math.Round(b.H*v.sy)))
	return core.NewRect(x, y, w, h)
}

// cell returns the screen cell under a world point.
func (v viewport) cell(p core.Vec2) (int, int) {
	return v.x0 + int(math.Floor(p.X*v.sx)), v.y0 + int(math.Floor(p.Y*v.sy))
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}
	if g.mode == ModeStart {
		g.renderTitle(dst)
		return
	}

	v := g.viewport(dst)
	frameColor := core.ColorWhite
	if g.level != nil && g.level.Background != core.ColorDefault {
		frameColor = g.level.Background
	}
	dst.DrawBox(v.frame, frameColor)

	for _, id := range g.world.Snapshot() {
		if id != g.playerID {
			g.drawEntity(dst, v, g.world.Get(id))
		}
	}
	// Player on top
	if pl := g.player(); pl != nil {
		g.drawPlayer(dst, v, pl)
	}

	g.renderHUD(dst)

	switch g.mode {
	case ModePause:
		drawCenteredMessage(dst, g.overlay, "esc: back to title")
	case ModeEndedLose:
		drawCenteredMessage(dst, g.overlay, fmt.Sprintf("Reached wave %d  |  Press enter", max(0, g.wave-1)))
	}
}

func (g *Game) drawEntity(dst *core.Screen, v viewport, e *Entity) {
	switch e.Kind {
	case KindDecor, KindWater, KindFire:
		dst.DrawRect(v.cells(e.Bounds()), e.Obstacle.Glyph, e.Obstacle.Color)
	case KindEnemy:
		eg := enemyGlyphs[e.Enemy.Variant]
		x, y := v.cell(e.Center())
		dst.SetColored(x, y, eg.glyph, eg.color)
	case KindProjectile:
		x, y := v.cell(e.Center())
		if e.Projectile.OwnerKind == KindEnemy {
			dst.SetColored(x, y, RockChar, core.ColorGray)
			return
		}
		glyph := '-'
		if e.Projectile.Dir.X == 0 {
			glyph = '|'
		}
		color := core.ColorWhite
		if e.Projectile.Speed > g.cfg.Player.SwordSpeed {
			color = core.ColorBrightCyan
		}
		dst.SetColored(x, y, glyph, color)
	case KindPickup:
		// Blinking pickups show every other quarter second.
		if e.Pickup.Blinking && (g.tick/12)%2 == 1 {
			return
		}
		pg := pickupGlyphs[e.Pickup.Type]
		x, y := v.cell(e.Center())
		dst.SetColored(x, y, pg.glyph, pg.color)
	case KindCloud:
		x, y := v.cell(e.Center())
		dst.SetColored(x, y, CloudChar, core.ColorWhite)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport, e *Entity) {
	p := e.Player
	color := core.ColorBrightGreen
	switch {
	case p.Hearts == 1 && (g.tick/10)%2 == 0:
		color = core.ColorBrightRed
	case p.Opacity < 1:
		color = core.ColorGray
	}
	x, y := v.cell(e.Center())
	dst.SetColored(x, y, playerGlyphs[p.Facing], color)
}

// renderHUD draws hearts, best score and the wave banner on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	if pl := g.player(); pl != nil {
		var hearts strings.Builder
		for i := 0; i < MaxHearts; i++ {
			if i < pl.Player.Hearts {
				hearts.WriteRune(HeartChar)
			} else {
				hearts.WriteRune(EmptyHeartChar)
			}
		}
		dst.DrawTextColored(1, 0, hearts.String(), core.ColorRed)
	}

	mid := fmt.Sprintf("Best: %d", g.best)
	if g.level != nil {
		mid = fmt.Sprintf("%s  |  %s", g.level.Name, mid)
	}
	dst.DrawTextCentered(0, mid, core.ColorDefault)

	if g.message != "" {
		x := dst.Width() - utf8.RuneCountInString(g.message) - 1
		dst.DrawTextColored(x, 0, g.message, core.ColorRed)
	}
}

// renderTitle draws the level selection screen.
func (g *Game) renderTitle(dst *core.Screen) {
	y := dst.Height()/2 - 3 - len(g.available)/2
	dst.DrawTextCentered(y, "T U I   Z E L D A", core.ColorBrightGreen)
	y += 2
	dst.DrawTextCentered(y, "Choose a level", core.ColorDefault)
	y += 2

	if len(g.available) == 0 {
		dst.DrawTextCentered(y, "No levels found", core.ColorRed)
		y++
	}
	for _, lvl := range g.available {
		dst.DrawTextCentered(y, fmt.Sprintf("%d  %-10s", lvl.Number, lvl.Name), core.ColorYellow)
		y++
	}
	y++
	dst.DrawTextCentered(y, fmt.Sprintf("Best: %d", g.best), core.ColorDefault)
}

// drawCenteredMessage draws a boxed message in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()
	titleLen := utf8.RuneCountInString(title)
	subtitleLen := utf8.RuneCountInString(subtitle)

	boxW := core.Min(core.Max(titleLen, subtitleLen)+4, w)
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextColored(box.X+(boxW-titleLen)/2, box.Y+1, title, core.ColorRed)
	dst.DrawTextColored(box.X+(boxW-subtitleLen)/2, box.Y+3, subtitle, core.ColorDefault)
}
