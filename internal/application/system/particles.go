package system

import (
	"image/color"
	"math/rand"

	"github.com/younwookim/skyquest/internal/domain/entity"
	"github.com/younwookim/skyquest/internal/infrastructure/config"
)

// Particle colors
var (
	ColorGold   = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
	ColorRed    = color.RGBA{R: 0xFF, A: 0xFF}
	ColorGreen  = color.RGBA{G: 0xFF, A: 0xFF}
	ColorBlue   = color.RGBA{B: 0xFF, A: 0xFF}
	ColorYellow = color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}
	ColorWhite  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// PowerUpColor returns the particle color for a power-up type
func PowerUpColor(t entity.PowerUpType) color.RGBA {
	switch t {
	case entity.PowerUpSpeed:
		return ColorGreen
	case entity.PowerUpStrength:
		return ColorRed
	case entity.PowerUpDoubleJump:
		return ColorYellow
	default:
		return ColorBlue
	}
}

// ParticleSystem spawns and ages cosmetic particles
type ParticleSystem struct {
	config    *config.ParticleConfig
	rng       *rand.Rand
	particles []*entity.Particle
}

// NewParticleSystem creates a new particle system
func NewParticleSystem(cfg *config.ParticleConfig, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		config:    cfg,
		rng:       rng,
		particles: make([]*entity.Particle, 0, 128),
	}
}

// Burst spawns n particles at (x, y)
func (s *ParticleSystem) Burst(x, y float64, n int, c color.RGBA) {
	for i := 0; i < n; i++ {
		s.particles = append(s.particles, &entity.Particle{
			X:     x,
			Y:     y,
			VX:    (s.rng.Float64() - 0.5) * s.config.Spread,
			VY:    (s.rng.Float64() - 0.5) * s.config.Spread,
			Size:  s.config.MinSize + s.rng.Float64()*(s.config.MaxSize-s.config.MinSize),
			Color: c,
			Alpha: 1,
		})
	}
}

// Confetti spawns batches of randomly placed, randomly colored particles
// across the given area
func (s *ParticleSystem) Confetti(w, h float64, batches, perBatch int) {
	for i := 0; i < batches; i++ {
		c := color.RGBA{
			R: uint8(s.rng.Intn(256)),
			G: uint8(s.rng.Intn(256)),
			B: uint8(s.rng.Intn(256)),
			A: 0xFF,
		}
		s.Burst(s.rng.Float64()*w, s.rng.Float64()*h, perBatch, c)
	}
}

// Age advances every particle and drops the ones that faded out
func (s *ParticleSystem) Age() {
	kept := s.particles[:0]
	for _, p := range s.particles {
		if p.Age(s.config.Gravity, s.config.Fade) {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(s.particles); i++ {
		s.particles[i] = nil
	}
	s.particles = kept
}

// Clear removes all particles
func (s *ParticleSystem) Clear() {
	s.particles = s.particles[:0]
}

// Particles returns the live particles
func (s *ParticleSystem) Particles() []*entity.Particle {
	return s.particles
}

// Len returns the number of live particles
func (s *ParticleSystem) Len() int {
	return len(s.particles)
}
