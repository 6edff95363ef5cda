package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// Two points in central Jakarta, a bit over 4km apart.
	d := HaversineDistance(-6.2088, 106.8456, -6.1754, 106.8272)
	assert.InDelta(t, 4240, d, 100)

	assert.Zero(t, HaversineDistance(-6.2088, 106.8456, -6.2088, 106.8456))

	// One degree of latitude is about 111km.
	d = HaversineDistance(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 200)
}

func TestIsInsideCircle(t *testing.T) {
	// ~111m north of the center.
	assert.True(t, IsInsideCircle(0, 0, 0.001, 0, 150))
	assert.False(t, IsInsideCircle(0, 0, 0.001, 0, 100))
	assert.True(t, IsInsideCircle(0, 0, 0, 0, 1))
}
