package advanced

// IsCCW reports whether the ring winds counterclockwise. The ring must be
// closed, with at least 3 vertices besides the closing point; otherwise the
// error wraps ErrInvalidArgument.
//
// A ring whose vertices all share one Y value, or whose cap is degenerate
// (coincident segments at the top, or fewer than three distinct points),
// reports false with no error. See Cap.IsCCW.
//
// This is O(n) in the ring length, performs at most one robust orientation
// test, and does not allocate for Ring input.
func IsCCW(ring Sequence) (bool, error) {
	c, err := LocateCap(ring)
	if err != nil {
		return false, err
	}
	return c.IsCCW(), nil
}

// IsCW is the complement of IsCCW. Note that this means flat and degenerate
// rings report true here.
func IsCW(ring Sequence) (bool, error) {
	ccw, err := IsCCW(ring)
	if err != nil {
		return false, err
	}
	return !ccw, nil
}
