package system

import (
	"github.com/younwookim/skyquest/internal/domain/entity"
	"github.com/younwookim/skyquest/internal/infrastructure/config"
)

// PhysicsSystem handles platform motion and player physics
type PhysicsSystem struct {
	config *config.Tuning
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.Tuning) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// MovePlatforms advances every moving platform and carries the player
// along when standing on one.
func (s *PhysicsSystem) MovePlatforms(platforms []*entity.Platform, player *entity.Player) {
	for _, p := range platforms {
		if !p.Moving {
			continue
		}
		dx := p.Advance()
		if s.carries(p, player, dx) {
			player.X += dx
		}
	}
}

// carries reports whether the platform drags the player this tick:
// in contact, not rising through it, and not walking against it.
func (s *PhysicsSystem) carries(p *entity.Platform, player *entity.Player, dx float64) bool {
	if !inContact(player, p) || player.VY < 0 {
		return false
	}
	switch {
	case dx > 0:
		return player.VX >= 0
	case dx < 0:
		return player.VX <= 0
	default:
		return false
	}
}

// inContact is an overlap test with the player's feet extended by one unit,
// so a player resting exactly on top still counts as touching.
func inContact(player *entity.Player, p *entity.Platform) bool {
	feet := player.Bounds()
	feet.H++
	return entity.Overlaps(feet, p.Bounds())
}

// UpdatePlayer applies gravity, integrates, lands on platforms and clamps
// to the world. Returns true if the player is resting on a surface.
func (s *PhysicsSystem) UpdatePlayer(player *entity.Player, platforms []*entity.Platform) bool {
	player.VY += s.config.World.Gravity
	player.Integrate()

	grounded := false
	for _, p := range platforms {
		if player.VY > 0 && entity.Overlaps(player.Bounds(), p.Bounds()) {
			player.Y = p.Y - player.H
			player.VY = 0
			player.Jumping = false
			grounded = true
		}
	}

	s.clampToWorld(player)
	if player.Y+player.H >= s.config.World.Height && player.VY == 0 {
		grounded = true
	}
	return grounded
}

func (s *PhysicsSystem) clampToWorld(player *entity.Player) {
	w, h := s.config.World.Width, s.config.World.Height

	if player.X < 0 {
		player.X = 0
	}
	if player.X+player.W > w {
		player.X = w - player.W
	}
	if player.Y+player.H > h {
		player.Y = h - player.H
		player.VY = 0
		player.Jumping = false
	}
}
