package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnemy(t *testing.T) {
	enemy := NewEnemy(1, EnemyFlying, 100, 200, 30, 3, -2)

	require.NotNil(t, enemy)
	assert.Equal(t, EntityID(1), enemy.ID)
	assert.Equal(t, EnemyFlying, enemy.Kind)
	assert.Equal(t, 100.0, enemy.X)
	assert.Equal(t, 200.0, enemy.Y)
	assert.Equal(t, 200.0, enemy.BaseY)
	assert.Equal(t, -2.0, enemy.VX)
	assert.Equal(t, 3, enemy.Health)
	assert.True(t, enemy.IsAlive())
	assert.False(t, enemy.IsBoss())
}

func TestEnemy_TakeDamage(t *testing.T) {
	enemy := NewEnemy(1, EnemyFlying, 0, 0, 30, 3, 2)

	assert.False(t, enemy.TakeDamage(1))
	assert.False(t, enemy.TakeDamage(1))
	assert.True(t, enemy.TakeDamage(1))
	assert.Equal(t, 0, enemy.Health)
	assert.False(t, enemy.IsAlive())
}

func TestEnemy_IsAlive_Removed(t *testing.T) {
	enemy := NewEnemy(1, EnemyGround, 0, 0, 30, 1, 2)
	enemy.Removed = true
	assert.False(t, enemy.IsAlive())
}

func TestEnemy_StompedBy(t *testing.T) {
	enemy := NewEnemy(1, EnemyGround, 100, 500, 30, 1, 2)

	tests := []struct {
		name string
		body Body
		want bool
	}{
		{
			name: "falling onto upper half",
			body: Body{X: 100, Y: 470, W: 40, H: 40, VY: 3}, // bottom 510 <= 515
			want: true,
		},
		{
			name: "bottom exactly at midline",
			body: Body{X: 100, Y: 475, W: 40, H: 40, VY: 3},
			want: true,
		},
		{
			name: "too deep",
			body: Body{X: 100, Y: 480, W: 40, H: 40, VY: 3},
			want: false,
		},
		{
			name: "moving upward",
			body: Body{X: 100, Y: 470, W: 40, H: 40, VY: -3},
			want: false,
		},
		{
			name: "standing still",
			body: Body{X: 100, Y: 470, W: 40, H: 40},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, enemy.StompedBy(&tt.body))
		})
	}
}
