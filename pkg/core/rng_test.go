package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGIsDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestRNGBounds(t *testing.T) {
	r := NewRNG(1)
	assert.Zero(t, r.IntN(0))
	assert.Equal(t, 5, r.Between(5, 5))
	for i := 0; i < 100; i++ {
		v := r.Between(-2, 3)
		assert.GreaterOrEqual(t, v, -2)
		assert.LessOrEqual(t, v, 3)
	}
	assert.True(t, r.Chance(1))
}
