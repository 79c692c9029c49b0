package advanced

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/orientation"
)

func TestIndex(t *testing.T) {
	assert.Equal(t, CounterClockwise, Index(Point{0, 0}, Point{1, 0}, Point{1, 1}))
	assert.Equal(t, Clockwise, Index(Point{0, 0}, Point{1, 0}, Point{1, -1}))
	assert.Equal(t, Collinear, Index(Point{0, 0}, Point{1, 0}, Point{5, 0}))
	assert.Equal(t, Collinear, Index(Point{0, 0}, Point{0, 0}, Point{5, 3}))
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "clockwise", Clockwise.String())
	assert.Equal(t, "collinear", Collinear.String())
	assert.Equal(t, "counterclockwise", CounterClockwise.String())
	assert.Equal(t, "invalid", Orientation(2).String())
}

// Cross check against go-geom on inputs where both the filter and any
// fallback arithmetic are exact, so the two must agree.
func TestIndex_AgreesWithGoGeom(t *testing.T) {
	fromGeom := func(o orientation.Type) Orientation {
		switch o {
		case orientation.Clockwise:
			return Clockwise
		case orientation.CounterClockwise:
			return CounterClockwise
		}
		return Collinear
	}
	toCoord := func(p Point) geom.Coord {
		return geom.Coord{p.X, p.Y}
	}

	r := rand.New(rand.NewSource(7))
	randomPoint := func() Point {
		return Point{(r.Float64() - 0.5) * 1000, (r.Float64() - 0.5) * 1000}
	}

	for i := 0; i < 2000; i++ {
		p1 := randomPoint()
		p2 := randomPoint()
		var q Point
		switch i % 3 {
		case 0:
			q = randomPoint()
		case 1:
			// Small integer grid, where collinear triples happen by chance
			p1 = Point{float64(r.Intn(5)), float64(r.Intn(5))}
			p2 = Point{float64(r.Intn(5)), float64(r.Intn(5))}
			q = Point{float64(r.Intn(5)), float64(r.Intn(5))}
		case 2:
			// Exactly on the line, through integer coordinates
			p1 = Point{float64(r.Intn(100)), float64(r.Intn(100))}
			p2 = Point{p1.X + float64(r.Intn(10)+1), p1.Y + float64(r.Intn(10))}
			k := float64(r.Intn(9) - 4)
			q = Point{p1.X + k*(p2.X-p1.X), p1.Y + k*(p2.Y-p1.Y)}
		}

		expected := fromGeom(xy.OrientationIndex(toCoord(p1), toCoord(p2), toCoord(q)))
		assert.Equal(t, expected, Index(p1, p2, q), "index(%v, %v, %v)", p1, p2, q)
		assert.Equal(t, -expected, Index(p2, p1, q), "index(%v, %v, %v)", p2, p1, q)
	}
}
