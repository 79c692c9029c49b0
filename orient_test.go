package orient

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// Smoke test. The internals are already tested.
func TestIsCCW(t *testing.T) {
	points := []Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
		{X: 1, Y: -1},
	}

	ccw, err := IsCCW(points)
	assert.NoError(t, err)
	assert.True(t, ccw)

	ccw, err = IsCCW(Ring(points).Reverse())
	assert.NoError(t, err)
	assert.False(t, ccw)

	_, err = IsCCW(points[:3])
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestIndex(t *testing.T) {
	assert.Equal(t, CounterClockwise, Index(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 0, Y: 1}))
	assert.Equal(t, Clockwise, Index(Point{X: 0, Y: 1}, Point{X: 1, Y: 0}, Point{X: 0, Y: 0}))
	assert.Equal(t, Collinear, Index(Point{X: 0, Y: 0}, Point{X: 1, Y: 1}, Point{X: 2, Y: 2}))
}
