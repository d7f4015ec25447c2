package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "identical",
			a:    Rect{X: 10, Y: 10, W: 20, H: 20},
			b:    Rect{X: 10, Y: 10, W: 20, H: 20},
			want: true,
		},
		{
			name: "partial overlap",
			a:    Rect{X: 0, Y: 0, W: 40, H: 40},
			b:    Rect{X: 30, Y: 30, W: 40, H: 40},
			want: true,
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, W: 100, H: 100},
			b:    Rect{X: 40, Y: 40, W: 5, H: 5},
			want: true,
		},
		{
			name: "touching edges do not overlap",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 10, Y: 0, W: 10, H: 10},
			want: false,
		},
		{
			name: "touching top and bottom",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 0, Y: 10, W: 10, H: 10},
			want: false,
		},
		{
			name: "disjoint horizontally",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 50, Y: 0, W: 10, H: 10},
			want: false,
		},
		{
			name: "disjoint vertically",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 0, Y: 50, W: 10, H: 10},
			want: false,
		},
		{
			name: "sub-unit overlap",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 9.5, Y: 9.5, W: 10, H: 10},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, Overlaps(tt.a, tt.b), Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestCollides(t *testing.T) {
	player := NewPlayer(100, 100, 40, 40, 100)
	coin := NewCoin(1, 120, 120, 20)
	far := NewCoin(2, 500, 500, 20)

	assert.True(t, Collides(player, coin))
	assert.False(t, Collides(player, far))
}

func TestBody_Integrate(t *testing.T) {
	b := Body{X: 10, Y: 20, W: 5, H: 5, VX: 3, VY: -2}
	b.Integrate()

	assert.Equal(t, 13.0, b.X)
	assert.Equal(t, 18.0, b.Y)
	assert.Equal(t, 23.0, b.Bottom())

	cx, cy := b.Center()
	assert.Equal(t, 15.5, cx)
	assert.Equal(t, 20.5, cy)
}

func TestBody_SetPos(t *testing.T) {
	b := Body{X: 10, Y: 20, W: 5, H: 5, VX: 3, VY: -2}
	b.SetPos(1, 2)

	assert.Equal(t, Rect{X: 1, Y: 2, W: 5, H: 5}, b.Bounds())
	assert.Zero(t, b.VX)
	assert.Zero(t, b.VY)
}

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 60.0, r.Bottom())

	cx, cy := r.Center()
	assert.Equal(t, 25.0, cx)
	assert.Equal(t, 40.0, cy)
}
