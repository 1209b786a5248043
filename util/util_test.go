package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(4711)
	b := NewRNG(4711)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}

	assert.Equal(t, int64(4711), a.Seed())
}

func TestRNGFloat64Range(t *testing.T) {
	rng := NewRNG(1)

	for i := 0; i < 1000; i++ {
		v := rng.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestRNGIntn(t *testing.T) {
	rng := NewRNG(42)

	for i := 0; i < 1000; i++ {
		v := rng.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
}
