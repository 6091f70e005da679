package rational

import "golang.org/x/exp/constraints"

// Number is satisfied by every type that can be negated with unary minus,
// giving back the same type, and ordered with <.
type Number interface {
	constraints.Integer | constraints.Float
}

// isSigned reports whether T can hold negative values. The answer depends
// only on T, never on any particular value.
func isSigned[T Number]() bool {
	var zero T
	return zero-1 < zero
}
