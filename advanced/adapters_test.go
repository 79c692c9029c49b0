package advanced

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"
)

func TestLinearRing(t *testing.T) {
	t.Run("XY", func(t *testing.T) {
		lr := geom.NewLinearRingFlat(geom.XY, []float64{0, 0, 1, 0, 1, 1, 0, 1, 0, 0})
		ring := LinearRing{lr}
		assert.Equal(t, 5, ring.Len())
		assert.Equal(t, Point{1, 1}, ring.At(2))
		assert.Equal(t, 1.0, ring.Y(3))
		assertCCW(t, true, ring)
	})

	t.Run("XYZM", func(t *testing.T) {
		// Extra ordinates are ignored
		lr := geom.NewLinearRingFlat(geom.XYZM, []float64{
			0, 0, 9, 9,
			0, 1, 9, 9,
			1, 1, 9, 9,
			1, 0, 9, 9,
			0, 0, 9, 9,
		})
		ring := LinearRing{lr}
		assert.Equal(t, Point{1, 1}, ring.At(2))
		assert.Equal(t, 0.0, ring.Y(3))
		assertCCW(t, false, ring)
	})

	t.Run("too short", func(t *testing.T) {
		lr := geom.NewLinearRingFlat(geom.XY, []float64{0, 0, 1, 1, 0, 0})
		_, err := IsCCW(LinearRing{lr})
		require.Error(t, err)
	})
}

func TestR2Ring(t *testing.T) {
	for _, fixtureName := range fixtureNames {
		ring := LoadFixture(fixtureName)
		r2Ring := make(R2Ring, len(ring))
		for i, p := range ring {
			r2Ring[i] = r2.Point{X: p.X, Y: p.Y}
		}

		expected, err := IsCCW(ring)
		require.NoError(t, err)
		assertCCW(t, expected, r2Ring, fixtureName)
	}
}
