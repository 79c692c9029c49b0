package advanced

// The ring orientation algorithm does not look at the whole ring. It finds the
// topmost "cap" of the ring, which is where the ring rises to its highest
// point and then starts to fall again, and decides the orientation from the
// shape of that cap alone:
//
//	    UpHi         UpHi----DownHi
//	    /  \           /        \
//	   /    \         /          \
//	UpLow  DownLow  UpLow      DownLow
//
//	   pointed             flat
//
// This avoids summing cross products over the whole ring (which is slower and
// accumulates rounding error), and resolves to at most one orientation test.

type CapShape int

const (
	// The ring never rises, so every vertex has the same Y. There is no cap.
	CapFlat CapShape = iota
	// The cap is a single apex vertex.
	CapPointed
	// The cap is a horizontal segment.
	CapFlatTop
	// A pointed cap whose three vertices are not distinct (e.g. A-B-A), because
	// the ring has coincident segments or too few distinct points.
	CapDegenerate
)

func (s CapShape) String() string {
	switch s {
	case CapFlat:
		return "flat"
	case CapPointed:
		return "pointed"
	case CapFlatTop:
		return "flat top"
	case CapDegenerate:
		return "degenerate"
	}
	return "invalid"
}

// The landmarks found by LocateCap. Indexes refer to the ring passed in.
// UpLow is the vertex right before the last rising segment that reached the
// maximum Y, and UpHi is that segment's top. DownHi and DownLow are the
// endpoints of the first segment that falls away from the maximum after UpHi.
// For a flat ring, only UpHi is meaningful and UpLow is null.
type Cap struct {
	Shape CapShape

	UpLow, UpHi, DownHi, DownLow         Point
	UpHiIndex, DownHiIndex, DownLowIndex int

	// The orientation of UpLow, UpHi, DownLow. Only computed for pointed caps;
	// Collinear otherwise.
	Orientation Orientation
}

// IsCCW decides the ring orientation from the cap.
//
// Flat rings and degenerate caps report false. This isn't really an answer,
// since such rings have no orientation, but they are indistinguishable from
// clockwise rings to a caller using only this method. Check Shape if that
// matters.
func (c Cap) IsCCW() bool {
	switch c.Shape {
	case CapPointed:
		return c.Orientation == CounterClockwise
	case CapFlatTop:
		// A flat top that runs right to left can only be the top of a CCW ring
		return c.DownHi.X-c.UpHi.X < 0
	}
	return false
}

// LocateCap scans the ring once to find its cap. The ring must be closed and
// have at least three vertices besides the closing point.
func LocateCap(ring Sequence) (result Cap, err error) {
	defer func() {
		recoveredErr := HandleOrientationPanicRecover(recover())
		if recoveredErr != nil {
			result = Cap{}
			err = recoveredErr
		}
	}()

	// Vertex count not counting the closing point
	nPts := ring.Len() - 1
	if nPts < 3 {
		return Cap{}, invalidArgumentf("ring has fewer than 4 points, so orientation cannot be determined")
	}

	// Find the last rising segment that reaches the highest Y seen so far. If
	// there is no rising segment at all, iUpHi stays at 0 and the ring is flat.
	// This relies on the ring being closed, so that the segment into the first
	// point is considered as the one ending at the last point.
	upHiPt := ring.At(0)
	upLowPt := NullPoint()
	iUpHi := 0
	prevY := upHiPt.Y
	for i := 1; i <= nPts; i++ {
		py := ring.Y(i)
		if py > prevY && py >= upHiPt.Y {
			upHiPt = ring.At(i)
			upLowPt = ring.At(i - 1)
			iUpHi = i
		}
		prevY = py
	}

	if iUpHi == 0 {
		return Cap{Shape: CapFlat, UpLow: upLowPt, UpHi: upHiPt, DownHi: upHiPt, DownLow: upHiPt}, nil
	}

	// Walk forward to the first point that is off the top. The vertex before
	// iUpHi is lower than it (or, when iUpHi is the closing point, the vertex
	// before that is), so this always stops before coming back around.
	iDownLow := iUpHi
	for {
		iDownLow = CircularIndex(iDownLow+1, nPts)
		if iDownLow == iUpHi {
			fatalf("no falling segment after vertex %d %v", iUpHi, upHiPt)
		}
		if ring.Y(iDownLow) != upHiPt.Y {
			break
		}
	}
	iDownHi := CircularIndex(iDownLow-1, nPts)

	c := Cap{
		UpLow:        upLowPt,
		UpHi:         upHiPt,
		DownHi:       ring.At(iDownHi),
		DownLow:      ring.At(iDownLow),
		UpHiIndex:    iUpHi,
		DownHiIndex:  iDownHi,
		DownLowIndex: iDownLow,
	}

	if !c.UpHi.Equals2D(c.DownHi) {
		c.Shape = CapFlatTop
		return c, nil
	}

	// Pointed cap. A-B-A configurations have no meaningful orientation.
	if c.UpLow.Equals2D(c.UpHi) || c.DownLow.Equals2D(c.UpHi) || c.UpLow.Equals2D(c.DownLow) {
		c.Shape = CapDegenerate
		return c, nil
	}

	c.Shape = CapPointed
	// If the top segments are coincident, the ring is invalid, and this comes
	// out Collinear, so the ring is reported as not CCW.
	c.Orientation = Index(c.UpLow, c.UpHi, c.DownLow)
	return c, nil
}
