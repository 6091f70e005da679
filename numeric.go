package rational

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of x.
// For unsigned types x is always returned unchanged. For signed integer types
// the absolute value of the most negative value is not representable and
// wraps back to itself.
func Abs[T Number](x T) T {
	if isSigned[T]() && x < 0 {
		return -x
	}
	return x
}

// GCD returns the greatest common divisor (GCD) of m and n.
// The GCD is the largest integer that divides both m and n. The signs of m
// and n do not matter and the result is never negative, with one exception:
// when the GCD is the absolute value of the most negative signed integer,
// which T cannot hold, GCD returns that most negative value instead. This
// only happens for GCD(MinInt, 0), GCD(0, MinInt), and GCD(MinInt, MinInt).
// GCD(0, 0) is 0.
func GCD[T constraints.Integer](m, n T) T {
	if m == 0 && n == 0 {
		return 0
	}
	// the remainder never grows in magnitude, whatever the signs, so the loop
	// runs on the signed values and takes the absolute value once at the end
	for n != 0 {
		m, n = n, m%n
	}
	return Abs(m)
}

// LCM returns the least common multiple (LCM) of m and n, computed as
// (m/GCD(m, n))*n. The sign of the result follows the signs of m and n.
// LCM panics with a division by zero if both m and n are zero, and the
// product may overflow T.
func LCM[T constraints.Integer](m, n T) T {
	return (m / GCD(m, n)) * n
}

// ExtGCD returns the GCD of m and n along with the Bézout coefficients.
// That is, it returns a, b, d such that:
//
//	a*m + b*n == d == GCD(m, n)
//
// ExtGCD is a standalone helper; nothing else in this package calls it, and
// callers that only need d should use GCD.
func ExtGCD[T constraints.Signed](m, n T) (a, b, d T) {
	if n == 0 {
		switch {
		case m < 0:
			return -1, 0, -m
		case m > 0:
			return 1, 0, m
		}
		return 0, 0, 0
	}
	// per Donald Knuth, TAOCP Vol 1 (3e), pp 13-14, Algorithm E
	var a0, b0 T
	a0, a = 1, 0
	b0, b = 0, 1
	c := m
	d = n
	for {
		q, r := c/d, c%d
		if r == 0 {
			break
		}
		c = d
		d = r
		t := a0
		a0 = a
		a = t - q*a
		t = b0
		b0 = b
		b = t - q*b
	}
	// truncated division leaves the sign of d up to the inputs
	if d < 0 {
		a, b, d = -a, -b, -d
	}
	return a, b, d
}
