package rational

import "golang.org/x/exp/constraints"

// addChecked returns x+y and whether the sum fits in T.
func addChecked[T constraints.Integer](x, y T) (T, bool) {
	z := x + y
	if isSigned[T]() {
		// overflow is only possible when the operands share a sign, and then
		// shows up as a flipped sign in the result
		if (x < 0) == (y < 0) && (z < 0) != (x < 0) {
			return z, false
		}
		return z, true
	}
	return z, z >= x
}

// mulChecked returns x*y and whether the product fits in T.
func mulChecked[T constraints.Integer](x, y T) (T, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	z := x * y
	if z/y != x {
		return z, false
	}
	// MinInt * -1 slips past the division check, since MinInt / -1 wraps
	// back to MinInt
	if isSigned[T]() && (z < 0) != ((x < 0) != (y < 0)) {
		return z, false
	}
	return z, true
}
