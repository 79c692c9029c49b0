package advanced

import "github.com/osuushi/orient/robust"

// Orientation is the turn direction of an ordered triple of points.
type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case Collinear:
		return "collinear"
	case CounterClockwise:
		return "counterclockwise"
	}
	return "invalid"
}

// Index gives the orientation of q relative to the directed segment p1->p2,
// i.e. the sign of the cross product (p2-p1) x (q-p1). The result is exact:
// collinear points always give Collinear, no matter how badly the naive
// floating point cross product cancels.
func Index(p1, p2, q Point) Orientation {
	return Orientation(robust.OrientationIndex(p1.X, p1.Y, p2.X, p2.Y, q.X, q.Y))
}
