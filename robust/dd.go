package robust

import "math"

// A DD is a double-double: an unevaluated sum Hi + Lo of two float64 values
// with |Lo| no larger than half an ulp of Hi. It carries roughly 106 bits of
// mantissa, which is enough to evaluate small determinants of float64 inputs
// with the correct sign.
type DD struct {
	Hi, Lo float64
}

func NewDD(x float64) DD {
	return DD{Hi: x}
}

// Error free sum. s is the rounded sum and e the rounding error, so that
// a + b == s + e exactly.
func TwoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return
}

// Same as TwoSum, but requires |a| >= |b|.
func fastTwoSum(a, b float64) (s, e float64) {
	s = a + b
	e = b - (s - a)
	return
}

// Error free product, so that a * b == p + e exactly.
func TwoProd(a, b float64) (p, e float64) {
	p = a * b
	e = math.FMA(a, b, -p)
	return
}

func (x DD) Add(y DD) DD {
	s, e := TwoSum(x.Hi, y.Hi)
	t, f := TwoSum(x.Lo, y.Lo)
	e += t
	s, e = fastTwoSum(s, e)
	e += f
	s, e = fastTwoSum(s, e)
	return DD{s, e}
}

// Add a plain float64. This is exact for the first step, which is what keeps
// coordinate differences exact.
func (x DD) AddFloat(y float64) DD {
	s, e := TwoSum(x.Hi, y)
	e += x.Lo
	s, e = fastTwoSum(s, e)
	return DD{s, e}
}

func (x DD) Neg() DD {
	return DD{-x.Hi, -x.Lo}
}

func (x DD) Sub(y DD) DD {
	return x.Add(y.Neg())
}

func (x DD) Mul(y DD) DD {
	p, e := TwoProd(x.Hi, y.Hi)
	e += x.Hi*y.Lo + x.Lo*y.Hi
	p, e = fastTwoSum(p, e)
	return DD{p, e}
}

// Signum is -1, 0 or 1. Since Lo is always smaller than Hi, Hi decides unless
// it is zero.
func (x DD) Signum() int {
	switch {
	case x.Hi > 0:
		return 1
	case x.Hi < 0:
		return -1
	case x.Lo > 0:
		return 1
	case x.Lo < 0:
		return -1
	}
	return 0
}

func (x DD) Float64() float64 {
	return x.Hi + x.Lo
}
