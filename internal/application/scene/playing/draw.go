package playing

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/skyquest/internal/application/state"
	"github.com/younwookim/skyquest/internal/application/system"
	"github.com/younwookim/skyquest/internal/domain/entity"
)

// Colors
var (
	colorBG         = color.RGBA{135, 206, 235, 255}
	colorPlatform   = color.RGBA{139, 69, 19, 255}
	colorMoving     = color.RGBA{160, 110, 60, 255}
	colorGround     = color.RGBA{255, 100, 100, 255}
	colorFlying     = color.RGBA{180, 100, 255, 255}
	colorBoss       = color.RGBA{120, 20, 20, 255}
	colorProjectile = color.RGBA{255, 60, 0, 255}
	colorCoin       = color.RGBA{255, 215, 0, 255}
	colorKey        = color.RGBA{218, 165, 32, 255}
	colorHigh       = color.RGBA{100, 200, 100, 255}
	colorMid        = color.RGBA{230, 200, 60, 255}
	colorLow        = color.RGBA{220, 60, 60, 255}
	colorShield     = color.RGBA{80, 140, 255, 160}
	colorBlink      = color.RGBA{255, 255, 255, 200}
	colorSweep      = color.RGBA{255, 255, 255, 120}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
)

// Draw renders the game (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawPlatforms(screen)
	p.drawPickups(screen)
	p.drawEnemies(screen)
	p.drawPlayer(screen)
	p.drawParticles(screen)
	p.drawUI(screen)

	switch p.State() {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED", "Press ESC to resume")
	case state.StateLevelComplete:
		p.drawLevelComplete(screen)
	case state.StateGameOver:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180}, "GAME OVER",
			fmt.Sprintf("Final Score: %d\nPress SPACE to restart", p.world.Score()))
	case state.StateWon:
		p.drawOverlay(screen, color.RGBA{0, 60, 0, 180}, "CONGRATULATIONS!",
			fmt.Sprintf("Final Score: %d\nAchievements: %d\nPress SPACE to play again",
				p.world.Score(), len(p.world.Achievements())))
	}
}

func (p *Playing) drawPlatforms(screen *ebiten.Image) {
	for _, pl := range p.world.Platforms() {
		c := colorPlatform
		if pl.Moving {
			c = colorMoving
		}
		ebitenutil.DrawRect(screen, pl.X, pl.Y, pl.W, pl.H, c)
	}
}

func (p *Playing) drawPickups(screen *ebiten.Image) {
	elapsed := p.world.ElapsedMs()

	for _, c := range p.world.Coins() {
		if c.Collected {
			continue
		}
		ebitenutil.DrawRect(screen, c.X, c.Y, c.W, c.H, colorCoin)
	}
	for _, k := range p.world.Keys() {
		if k.Collected {
			continue
		}
		ebitenutil.DrawRect(screen, k.X, k.Y+k.FloatOffset(elapsed), k.W, k.H, colorKey)
	}
	for _, pu := range p.world.PowerUps() {
		if pu.Collected {
			continue
		}
		ebitenutil.DrawRect(screen, pu.X, pu.Y+pu.FloatOffset(elapsed), pu.W, pu.H, system.PowerUpColor(pu.PowerUp))
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image) {
	for _, e := range p.world.Enemies() {
		if !e.IsAlive() {
			continue
		}

		var c color.RGBA
		switch e.Kind {
		case entity.EnemyFlying:
			c = colorFlying
		case entity.EnemyBoss:
			c = colorBoss
		default:
			c = colorGround
		}
		ebitenutil.DrawRect(screen, e.X, e.Y, e.W, e.H, c)

		for _, proj := range e.Projectiles {
			if proj.Spent {
				continue
			}
			b := proj.Bounds()
			ebitenutil.DrawRect(screen, b.X, b.Y, b.W, b.H, colorProjectile)
		}
	}

	if p.world.Boss() != nil {
		p.drawBossHealth(screen)
	}
}

func (p *Playing) drawBossHealth(screen *ebiten.Image) {
	full := float64(p.world.Config().Boss.Health)
	if full <= 0 {
		return
	}
	ratio := math.Max(0, float64(p.world.BossHealth())/full)

	barW := float64(p.screenW) / 2
	barX := float64(p.screenW)/2 - barW/2
	ebitenutil.DrawRect(screen, barX, 10, barW, 10, colorHealthBG)
	ebitenutil.DrawRect(screen, barX, 10, barW*ratio, 10, colorBoss)
	ebitenutil.DebugPrintAt(screen, "BOSS", int(barX)-36, 7)
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	pl := p.world.Player()

	var c color.RGBA
	switch pl.HealthTier() {
	case entity.TierHigh:
		c = colorHigh
	case entity.TierMid:
		c = colorMid
	default:
		c = colorLow
	}

	// Blink during post-hit invulnerability
	if pl.InvulnTicks > 0 && (pl.InvulnTicks/5)%2 == 0 {
		c = colorBlink
	}

	if pl.HasShield {
		ebitenutil.DrawRect(screen, pl.X-4, pl.Y-4, pl.W+8, pl.H+8, colorShield)
	}
	ebitenutil.DrawRect(screen, pl.X, pl.Y, pl.W, pl.H, c)

	cooldown := p.world.Config().Attack.Cooldown
	if pl.AttackCooldown > cooldown/2 && pl.LastAttack != entity.DirNone {
		reach := p.world.Config().Attack.Reach
		x := pl.X + pl.W
		if pl.LastAttack == entity.DirLeft {
			x = pl.X - reach
		}
		ebitenutil.DrawRect(screen, x, pl.Y, reach, pl.H, colorSweep)
	}
}

func (p *Playing) drawParticles(screen *ebiten.Image) {
	for _, pt := range p.world.Particles() {
		a := math.Max(0, math.Min(1, pt.Alpha))
		c := color.RGBA{
			R: uint8(float64(pt.Color.R) * a),
			G: uint8(float64(pt.Color.G) * a),
			B: uint8(float64(pt.Color.B) * a),
			A: uint8(255 * a),
		}
		ebitenutil.DrawRect(screen, pt.X, pt.Y, pt.Size, pt.Size, c)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	pl := p.world.Player()

	// Health bar
	barX, barY := 10.0, float64(p.screenH-24)
	barW, barH := 150.0, 12.0
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	ratio := 0.0
	if pl.MaxHealth > 0 {
		ratio = float64(pl.Health) / float64(pl.MaxHealth)
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*ratio, barH, colorHigh)

	hud := fmt.Sprintf("Score: %d\nLevel %d/%d: %s\nHealth: %d",
		p.world.Score(), p.world.Level(), p.world.TotalLevels(), p.world.LevelName(), pl.Health)
	if req := p.world.RequiredKeys(); req > 0 {
		hud += fmt.Sprintf("\nKeys: %d/%d", p.world.KeysCollected(), req)
	}
	if target := p.world.Target(); target > 0 {
		hud += fmt.Sprintf("\nTarget: %d/%d", p.world.LevelScore(), target)
	}
	ebitenutil.DebugPrintAt(screen, hud, 10, 10)

	abilities := ""
	if pl.HasDoubleJump {
		abilities += "Double Jump  "
	}
	if pl.HasShield {
		abilities += "Shield  "
	}
	if pl.SpeedTicks > 0 {
		abilities += fmt.Sprintf("Speed %ds  ", p.seconds(pl.SpeedTicks))
	}
	if pl.StrengthTicks > 0 {
		abilities += fmt.Sprintf("Strength %ds", p.seconds(pl.StrengthTicks))
	}
	if abilities != "" {
		ebitenutil.DebugPrintAt(screen, abilities, 170, p.screenH-24)
	}

	for i, m := range p.messages {
		ebitenutil.DebugPrintAt(screen, m.text, p.screenW/2-len(m.text)*3, 80+i*16)
	}
}

func (p *Playing) seconds(ticks int) int {
	tps := p.world.Config().World.TicksPerSecond
	if tps <= 0 {
		return 0
	}
	return (ticks + tps - 1) / tps
}

func (p *Playing) drawLevelComplete(screen *ebiten.Image) {
	if p.complete == nil {
		return
	}
	stars := strings.Repeat("*", p.complete.Stars)
	p.drawOverlay(screen, color.RGBA{0, 0, 0, 100}, "LEVEL COMPLETE!",
		fmt.Sprintf("Score: %d\n%s", p.complete.LevelScore, stars))
}

func (p *Playing) drawOverlay(screen *ebiten.Image, bg color.RGBA, title, body string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), bg)
	ebitenutil.DebugPrintAt(screen, title, p.screenW/2-len(title)*3, p.screenH/2-30)
	ebitenutil.DebugPrintAt(screen, body, p.screenW/2-70, p.screenH/2-5)
}
