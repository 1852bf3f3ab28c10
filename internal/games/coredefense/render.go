package coredefense

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/core-defense/internal/core"
	"github.com/vovakirdan/core-defense/internal/games/coredefense/sim"
)

// Visual characters for rendering
const (
	CoreChar      = '◉'
	AimChar       = '·'
	OrbitalChar   = '◆'
	ShotChar      = '•'
	MissileChar   = '♦'
	EnemyShotChar = '*'
	OrbChar       = '∘'
	ChestChar     = '▣'
	ParticleChar  = '.'
	BeamChar      = '≈'
	BarFull       = '█'
	BarEmpty      = '░'
)

// enemyGlyphs by kind
var enemyGlyphs = map[sim.EnemyKind]rune{
	sim.EnemyNormal:       'o',
	sim.EnemyTank:         'O',
	sim.EnemyFast:         '>',
	sim.EnemySplitter:     '%',
	sim.EnemySplitterMini: '⁘',
	sim.EnemySummoner:     'S',
	sim.EnemyHealer:       '+',
	sim.EnemySwarm:        '`',
	sim.EnemyBoss:         '@',
}

var rarityColors = [...]core.Color{
	1: core.ColorWhite,
	2: core.ColorBrightBlue,
	3: core.ColorBrightMagenta,
	4: core.ColorBrightYellow,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	dx := g.shakeOffset()
	g.renderParticles(dst, dx)
	g.renderBeams(dst, dx)
	g.renderPickups(dst, dx)
	g.renderEnemies(dst, dx)
	g.renderProjectiles(dst, dx)
	g.renderCore(dst, dx)
	g.renderTexts(dst, dx)

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// shakeOffset jitters the field horizontally while the screen shakes.
func (g *Game) shakeOffset() int {
	if g.sim.Shake() < 4 {
		return 0
	}
	if g.ticks%2 == 0 {
		return 1
	}
	return -1
}

// plot draws r at a field position if it lands inside the field rows.
func (g *Game) plot(dst *core.Screen, p core.Vec2, dx int, r rune, c core.Color) {
	x, y := g.toCell(p)
	if y < hudRows {
		return
	}
	dst.SetColor(x+dx, y, r, c)
}

func (g *Game) renderParticles(dst *core.Screen, dx int) {
	g.sim.Entities().Particles.Each(func(_ sim.Handle, p *sim.Particle) bool {
		g.plot(dst, p.Pos, dx, ParticleChar, p.Color)
		return true
	})
}

func (g *Game) renderBeams(dst *core.Screen, dx int) {
	g.sim.Entities().Beams.Each(func(_ sim.Handle, b *sim.Beam) bool {
		prev := b.From
		for _, pt := range append(append([]core.Vec2(nil), b.Points...), b.To) {
			g.line(dst, prev, pt, dx, BeamChar, b.Color)
			prev = pt
		}
		return true
	})
}

// line samples a segment once per half cell.
func (g *Game) line(dst *core.Screen, a, b core.Vec2, dx int, r rune, c core.Color) {
	step := math.Min(g.cellW, g.cellH) / 2
	n := int(a.Dist(b)/step) + 1
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		g.plot(dst, a.Add(b.Sub(a).Scale(t)), dx, r, c)
	}
}

func (g *Game) renderPickups(dst *core.Screen, dx int) {
	store := g.sim.Entities()
	store.Orbs.Each(func(_ sim.Handle, o *sim.XPOrb) bool {
		c := core.ColorBrightGreen
		if o.Value >= 100 {
			c = core.ColorBrightCyan
		}
		g.plot(dst, o.Pos, dx, OrbChar, c)
		return true
	})
	store.Chests.Each(func(_ sim.Handle, ch *sim.Chest) bool {
		g.plot(dst, ch.Pos, dx, ChestChar, core.ColorYellow)
		return true
	})
}

func (g *Game) renderEnemies(dst *core.Screen, dx int) {
	g.sim.Entities().Enemies.Each(func(_ sim.Handle, e *sim.Enemy) bool {
		c := sim.EnemyColor(e.Kind)
		switch {
		case e.HitFlash > 0:
			c = core.ColorBrightWhite
		case e.Freeze > 0:
			c = core.ColorCyan
		}
		glyph := enemyGlyphs[e.Kind]

		if e.Kind == sim.EnemyBoss {
			g.renderBoss(dst, e, dx, c)
			return true
		}
		g.plot(dst, e.Pos, dx, glyph, c)
		return true
	})
}

// renderBoss fills the cells covered by the boss radius.
func (g *Game) renderBoss(dst *core.Screen, e *sim.Enemy, dx int, c core.Color) {
	rx := int(e.Radius / g.cellW)
	ry := int(e.Radius / g.cellH)
	cx, cy := g.toCell(e.Pos)
	for y := -ry; y <= ry; y++ {
		for x := -rx; x <= rx; x++ {
			fx := float64(x) * g.cellW
			fy := float64(y) * g.cellH
			if fx*fx+fy*fy > e.Radius*e.Radius || cy+y < hudRows {
				continue
			}
			r := '▓'
			if e.Shield > 0 && (x == -rx || x == rx || y == -ry || y == ry) {
				r = '░'
			}
			dst.SetColor(cx+x+dx, cy+y, r, c)
		}
	}
	if cy >= hudRows {
		dst.SetColor(cx+dx, cy, enemyGlyphs[sim.EnemyBoss], core.ColorBrightWhite)
	}
}

func (g *Game) renderProjectiles(dst *core.Screen, dx int) {
	ult := g.sim.Ultimate().Active
	g.sim.Entities().Projectiles.Each(func(_ sim.Handle, p *sim.Projectile) bool {
		switch {
		case p.Owner == sim.OwnerEnemy:
			g.plot(dst, p.Pos, dx, EnemyShotChar, core.ColorBrightRed)
		case p.Homing:
			g.plot(dst, p.Pos, dx, MissileChar, core.ColorOrange)
		case ult:
			g.plot(dst, p.Pos, dx, ShotChar, core.ColorBrightMagenta)
		default:
			g.plot(dst, p.Pos, dx, ShotChar, projectileColor(p.Tags))
		}
		return true
	})
}

func projectileColor(tags sim.TagSet) core.Color {
	switch {
	case tags.Has(sim.TagFreeze):
		return core.ColorBrightCyan
	case tags.Has(sim.TagBlast):
		return core.ColorOrange
	case tags.Has(sim.TagChain):
		return core.ColorBrightYellow
	default:
		return core.ColorBrightWhite
	}
}

func (g *Game) renderCore(dst *core.Screen, dx int) {
	c := g.sim.Core()

	// Aim indicator
	for i := 2; i <= 4; i++ {
		p := c.Pos.Add(core.Polar(c.Angle, float64(i)*g.cellW*1.5))
		g.plot(dst, p, dx, AimChar, core.ColorGray)
	}

	coreColor := core.ColorBrightCyan
	if g.sim.Ultimate().Active {
		coreColor = core.ColorBrightMagenta
	}
	g.plot(dst, c.Pos, dx, CoreChar, coreColor)

	for _, o := range g.sim.Orbitals() {
		g.plot(dst, c.Pos.Add(core.Polar(o.Angle, o.Radius)), dx, OrbitalChar, core.ColorBrightGreen)
	}
}

func (g *Game) renderTexts(dst *core.Screen, dx int) {
	g.sim.Entities().Texts.Each(func(_ sim.Handle, t *sim.FloatingText) bool {
		x, y := g.toCell(t.Pos)
		if y < hudRows {
			return true
		}
		text := t.Text
		if t.Crit {
			text += "!"
		}
		dst.DrawTextColor(x+dx-len([]rune(text))/2, y, text, t.Color)
		return true
	})
}

// renderHUD draws hp, xp, score and ultimate on row 0 and tags or a
// banner on row 1.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.snap
	w := dst.Width()

	hpColor := core.ColorBrightGreen
	if s.MaxHP > 0 && s.HP/s.MaxHP < 0.3 {
		hpColor = core.ColorBrightRed
	}
	x := 1
	x = drawLabel(dst, x, 0, "HP ", core.ColorWhite)
	x = drawBar(dst, x, 0, 10, ratio(s.HP, s.MaxHP), hpColor)
	x = drawLabel(dst, x, 0, fmt.Sprintf(" %d/%d  ", int(math.Ceil(s.HP)), int(s.MaxHP)), hpColor)
	x = drawLabel(dst, x, 0, fmt.Sprintf("LV %d ", s.Level), core.ColorBrightYellow)
	x = drawBar(dst, x, 0, 8, ratio(s.XP, s.NextXP), core.ColorYellow)
	x = drawLabel(dst, x, 0, "  ULT ", core.ColorWhite)
	ultColor := core.ColorMagenta
	if s.UltActive || s.UltCharge >= s.UltMax {
		ultColor = core.ColorBrightMagenta
	}
	drawBar(dst, x, 0, 8, ratio(float64(s.UltCharge), float64(s.UltMax)), ultColor)

	right := fmt.Sprintf("SCORE %d  %02d:%02d  %dfps", int(s.Score), s.Time/60, s.Time%60, s.FPS)
	dst.DrawTextColor(w-len(right)-1, 0, right, core.ColorBrightWhite)

	switch {
	case g.bannerT > 0 && g.banner != "":
		dst.DrawTextCentered(1, g.banner, core.ColorBrightRed)
	case g.bossBar(dst):
	default:
		g.renderLoadout(dst)
	}
}

// bossBar draws the first live boss's health on row 1.
func (g *Game) bossBar(dst *core.Screen) bool {
	var boss *sim.Enemy
	g.sim.Entities().Enemies.Each(func(_ sim.Handle, e *sim.Enemy) bool {
		if e.Kind == sim.EnemyBoss {
			boss = e
			return false
		}
		return true
	})
	if boss == nil {
		return false
	}
	label := fmt.Sprintf("BOSS %s ", boss.Tier)
	x := drawLabel(dst, 1, 1, label, core.ColorBrightRed)
	x = drawBar(dst, x, 1, max(dst.Width()-x-12, 10), ratio(boss.HP, boss.MaxHP), core.ColorRed)
	if boss.Shield > 0 {
		drawLabel(dst, x+1, 1, fmt.Sprintf("SH %d", int(boss.Shield)), core.ColorBrightCyan)
	}
	return true
}

func (g *Game) renderLoadout(dst *core.Screen) {
	s := g.snap
	parts := make([]string, 0, 2)
	if len(s.Tags) > 0 {
		parts = append(parts, "TAGS "+strings.Join(s.Tags, " "))
	}
	if len(s.Relics) > 0 {
		names := make([]string, 0, len(s.Relics))
		for _, id := range s.Relics {
			if r, ok := sim.LookupRelic(id); ok {
				names = append(names, r.Name)
			}
		}
		parts = append(parts, "RELICS "+strings.Join(names, ", "))
	}
	if len(parts) == 0 {
		for x := range dst.Width() {
			dst.SetColor(x, 1, '─', core.ColorGray)
		}
		return
	}
	dst.DrawTextColor(1, 1, strings.Join(parts, "  |  "), core.ColorCyan)
}

// renderOverlay draws the prompt for the current phase.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, core.ColorBrightWhite, "PAUSED", "", "Press P to resume")

	case StateUpgrade:
		lines := []string{"LEVEL UP! Choose an upgrade", ""}
		for i, up := range g.offers {
			lines = append(lines, fmt.Sprintf("%d) %s %s - %s", i+1, stars(up.Rarity), up.Name, up.Desc))
		}
		c := core.ColorBrightYellow
		if len(g.offers) > 0 {
			c = rarityColor(g.offers[0].Rarity)
		}
		g.drawCenteredBox(dst, c, lines...)

	case StateRelic:
		id, _ := g.PendingRelic()
		r, _ := sim.LookupRelic(id)
		g.drawCenteredBox(dst, core.ColorBrightYellow,
			"RELIC FOUND", "", r.Name, r.Desc, "", "Press Enter to take it")

	case StateGameOver:
		s := g.snap
		g.drawCenteredBox(dst, core.ColorBrightRed,
			"CORE DESTROYED", "",
			fmt.Sprintf("Score: %d  |  Level %d  |  %02d:%02d", int(s.Score), s.Level, s.Time/60, s.Time%60),
			"Press R to restart")
	}
}

// drawCenteredBox draws a centered message box with one line per row.
func (g *Game) drawCenteredBox(dst *core.Screen, c core.Color, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := core.Min(width+4, w)
	boxH := len(lines) + 2
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	rect := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(rect, ' ')
	dst.DrawBox(rect, c)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColor(x, boxY+1+i, l, c)
	}
}

func drawLabel(dst *core.Screen, x, y int, text string, c core.Color) int {
	dst.DrawTextColor(x, y, text, c)
	return x + len([]rune(text))
}

// drawBar draws a width-cell gauge filled to frac.
func drawBar(dst *core.Screen, x, y, width int, frac float64, c core.Color) int {
	filled := int(math.Round(frac * float64(width)))
	for i := range width {
		r := BarEmpty
		if i < filled {
			r = BarFull
		}
		dst.SetColor(x+i, y, r, c)
	}
	return x + width
}

func ratio(v, maxV float64) float64 {
	if maxV <= 0 {
		return 0
	}
	return core.ClampF(v/maxV, 0, 1)
}

func stars(rarity int) string {
	return "[" + strings.Repeat("*", core.Clamp(rarity, 1, 4)) + "]"
}

func rarityColor(rarity int) core.Color {
	return rarityColors[core.Clamp(rarity, 1, len(rarityColors)-1)]
}
