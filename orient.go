// Robust orientation predicates for planar geometry in Go.
//
// This package answers two questions exactly, even for degenerate and nearly
// collinear input: which way does a triple of points turn, and which way does
// a closed ring wind. The ring test looks only at the topmost part of the ring
// and performs at most one orientation test, rather than summing a signed area.
//
// For rings stored in other formats (go-geom, golang/geo), or to inspect how
// an answer was reached, see the advanced package.
package orient

import "github.com/osuushi/orient/advanced"

type Point = advanced.Point
type Ring = advanced.Ring
type Orientation = advanced.Orientation

const (
	Clockwise        = advanced.Clockwise
	Collinear        = advanced.Collinear
	CounterClockwise = advanced.CounterClockwise
)

// Returned (wrapped) when a ring is too short to have an orientation. Test
// with errors.Is.
var ErrInvalidArgument = advanced.ErrInvalidArgument

// Orientation of q relative to the directed segment p1->p2.
func Index(p1, p2, q Point) Orientation {
	return advanced.Index(p1, p2, q)
}

// Report whether the points wind counterclockwise.
//
// The points must describe a closed ring: the last point equal to the first,
// with at least three other points. Use Ring.Closed() if your rings don't
// repeat the first point.
//
// Rings that have no real orientation (every point at the same height, or
// coincident edges at the top of the ring) report false rather than an error.
func IsCCW(points []Point) (result bool, err error) {
	defer func() {
		recoveredErr := advanced.HandleOrientationPanicRecover(recover())
		if recoveredErr != nil {
			result = false
			err = recoveredErr
		}
	}()
	return advanced.IsCCW(Ring(points))
}
