package advanced

import (
	"github.com/golang/geo/r2"
	geom "github.com/twpayne/go-geom"
)

// Sequences over other libraries' ring types, so they can be checked without
// copying their coordinates into a Ring.

// LinearRing reads the first two ordinates of each coordinate, so any layout
// (XY, XYZ, XYM, XYZM) works.
type LinearRing struct {
	*geom.LinearRing
}

func (r LinearRing) Len() int {
	return r.NumCoords()
}

func (r LinearRing) At(i int) Point {
	c := r.Coord(i)
	return Point{c.X(), c.Y()}
}

func (r LinearRing) Y(i int) float64 {
	return r.FlatCoords()[i*r.Stride()+1]
}

type R2Ring []r2.Point

func (r R2Ring) Len() int        { return len(r) }
func (r R2Ring) At(i int) Point  { return Point{r[i].X, r[i].Y} }
func (r R2Ring) Y(i int) float64 { return r[i].Y }
