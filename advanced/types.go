package advanced

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

// A null point is used as a "not found yet" marker while scanning. Both
// coordinates are NaN, so a null point is never Equals2D to anything, not even
// another null point.
func NullPoint() Point {
	return Point{math.NaN(), math.NaN()}
}

func (p Point) IsNull() bool {
	return math.IsNaN(p.X) && math.IsNaN(p.Y)
}

// Exact coordinate equality. There is deliberately no tolerance here;
// orientation decisions depend on knowing whether two vertices are literally
// the same.
func (p Point) Equals2D(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) String() string {
	if p.IsNull() {
		return "(null)"
	}
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// A Sequence is read-only indexed access to the vertices of a ring. Rings are
// assumed to be closed: At(0) equals At(Len()-1).
//
// Y is separate from At so that implementations backed by flat coordinate
// arrays can answer the scan in IsCCW without building points.
type Sequence interface {
	Len() int
	At(i int) Point
	Y(i int) float64
}

// A Ring is the plain slice implementation of Sequence.
type Ring []Point

func (r Ring) Len() int        { return len(r) }
func (r Ring) At(i int) Point  { return r[i] }
func (r Ring) Y(i int) float64 { return r[i].Y }
func (r Ring) IsClosed() bool  { return len(r) > 0 && r[0].Equals2D(r[len(r)-1]) }
func (r Ring) Distinct() int   { return distinctCount(r) }
func (r Ring) String() string  { return fmt.Sprint([]Point(r)) }

// Closed returns the ring with its first point repeated at the end. If the ring
// is already closed (or empty), it is returned as is.
func (r Ring) Closed() Ring {
	if len(r) == 0 || r.IsClosed() {
		return r
	}
	closed := make(Ring, len(r), len(r)+1)
	copy(closed, r)
	return append(closed, r[0])
}

func (r Ring) Reverse() Ring {
	reversed := make(Ring, 0, len(r))
	for i := len(r) - 1; i >= 0; i-- {
		reversed = append(reversed, r[i])
	}
	return reversed
}

// Number of distinct points in the ring. The closing point repeats the first,
// so it is never counted twice. Points with NaN coordinates never compare
// equal, so each of them counts.
func distinctCount(r Ring) int {
	seen := make(map[Point]struct{}, len(r))
	count := 0
	for _, p := range r {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			count++
		}
	}
	return count
}
