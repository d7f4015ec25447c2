package entity

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParticle_Age(t *testing.T) {
	p := &Particle{X: 0, Y: 0, VX: 1, VY: 0, Size: 3, Color: color.RGBA{R: 255, A: 255}, Alpha: 1}

	assert.True(t, p.Age(0.2, 0.02))
	assert.Equal(t, 1.0, p.X)
	assert.InDelta(t, 0.2, p.Y, 1e-9)
	assert.InDelta(t, 0.98, p.Alpha, 1e-9)

	ticks := 1
	for p.Age(0.2, 0.02) {
		ticks++
	}
	ticks++
	assert.InDelta(t, 50, ticks, 1, "fades out after about 50 ticks")
	assert.LessOrEqual(t, p.Alpha, 0.0)
}
