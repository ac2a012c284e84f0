package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPools_AddAndTotal(t *testing.T) {
	p := Pools{Might: 11, Speed: 10, Intellect: 7}
	p.Add(Pools{Might: 2, Intellect: 1})

	assert.Equal(t, Pools{Might: 13, Speed: 10, Intellect: 8}, p)
	assert.Equal(t, 31, p.Total())
}

func TestPools_AllPositive(t *testing.T) {
	assert.True(t, Pools{Might: 1, Speed: 1, Intellect: 1}.AllPositive())
	assert.False(t, Pools{Might: 1, Speed: 0, Intellect: 1}.AllPositive())
	assert.False(t, Pools{Might: 1, Speed: -2, Intellect: 1}.AllPositive())
}

func TestNewPoolPair(t *testing.T) {
	pair := NewPoolPair(Pools{Might: 13, Speed: 10, Intellect: 8})
	assert.Equal(t, pair.Maximum, pair.Current)
}

func TestDetermineDamageTrack(t *testing.T) {
	tests := []struct {
		name    string
		current Pools
		want    DamageTrack
	}{
		{"all pools up", Pools{Might: 5, Speed: 5, Intellect: 5}, DamageTrackHale},
		{"one pool empty", Pools{Might: 0, Speed: 5, Intellect: 5}, DamageTrackImpaired},
		{"two pools empty", Pools{Might: 0, Speed: 0, Intellect: 5}, DamageTrackDebilitated},
		{"all pools empty", Pools{}, DamageTrackDead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineDamageTrack(tt.current))
		})
	}
}
