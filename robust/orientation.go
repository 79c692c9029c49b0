// Package robust contains the exact arithmetic needed by the orientation
// predicates. Nothing in here knows about rings; it only works on raw float64
// coordinates so that it can be tested on its own.
package robust

// Relative error bound for the float64 determinant filter. When the computed
// determinant is at least this fraction of the magnitude of its terms, its
// sign is known to be correct.
const safeEpsilon = 1e-15

// Sentinel from the filter meaning "could not decide, use DD".
const filterFailed = 2

// Orientation index of the point (qx, qy) relative to the directed segment
// (p1x, p1y) -> (p2x, p2y). Returns 1 if q is to the left (counterclockwise
// turn), -1 if it is to the right (clockwise), and 0 if the three points are
// collinear.
//
// The common case is settled in plain float64 by a filter. Only near-collinear
// inputs pay for double-double evaluation.
func OrientationIndex(p1x, p1y, p2x, p2y, qx, qy float64) int {
	if index := orientationIndexFilter(p1x, p1y, p2x, p2y, qx, qy); index != filterFailed {
		return index
	}

	dx1 := NewDD(p2x).AddFloat(-p1x)
	dy1 := NewDD(p2y).AddFloat(-p1y)
	dx2 := NewDD(qx).AddFloat(-p2x)
	dy2 := NewDD(qy).AddFloat(-p2y)

	det := dx1.Mul(dy2).Sub(dy1.Mul(dx2))
	return det.Signum()
}

// Float64 evaluation of the determinant, with an error bound check. The
// determinant is computed with q as the origin:
//
//	| p1x-qx  p1y-qy |
//	| p2x-qx  p2y-qy |
func orientationIndexFilter(p1x, p1y, p2x, p2y, qx, qy float64) int {
	var detsum float64

	detleft := (p1x - qx) * (p2y - qy)
	detright := (p1y - qy) * (p2x - qx)
	det := detleft - detright

	if detleft > 0 {
		if detright <= 0 {
			return signum(det)
		}
		detsum = detleft + detright
	} else if detleft < 0 {
		if detright >= 0 {
			return signum(det)
		}
		detsum = -detleft - detright
	} else {
		return signum(det)
	}

	errbound := safeEpsilon * detsum
	if det >= errbound || -det >= errbound {
		return signum(det)
	}
	return filterFailed
}

func signum(x float64) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
