// Package rational provides rational numbers over any fixed-width integer
// type, along with the Abs, GCD, and LCM primitives they are built on.
// See the N type and New function for details.
package rational

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Common errors returned by functions in this package.
var (
	ErrDenZero     = errors.New("denominator must not be 0")
	ErrFactorZero  = errors.New("expansion by 0 would result in an undefined value")
	ErrDenOverflow = errors.New("denominator overflow")
	ErrNumOverflow = errors.New("numerator overflow")
	ErrNotFinite   = errors.New("value is not finite")
)

// N is a rational number whose numerator and denominator are both of the
// integer type T.
//
// N is not kept in lowest terms and its denominator may be negative: a value
// holds exactly the numerator and denominator it was built with, until one
// of Reduce, Common, or Expand changes them. Nothing in this package reduces
// or normalizes a value implicitly.
// Internally, the denominator is biased by 1, which means the zero value is
// equivalent to 0/1 and thus valid and equal to 0.
//
// Valid values are obtained in the following ways:
//   - the zero value of the type N
//   - returned by the New, Try, or Int functions
//   - returned by arithmetic on any valid values, barring overflow
//   - copied from a valid value
//
// Arithmetic is carried out in T without overflow checks, so results that do
// not fit in T wrap around. TryAdd is the exception and reports overflow.
//
// N has proper value semantics and its values can be freely copied.
// The methods with an InPlace suffix modify their receiver, and must not be
// called concurrently with any other use of the same variable.
type N[T constraints.Integer] struct {
	m T
	n T
}

// Try creates a new rational number with the given numerator and denominator.
// Try returns ErrDenZero if the denominator is 0. Neither argument is altered
// in any way; in particular, Try(9, -5) has numerator 9 and denominator -5.
func Try[T constraints.Integer](num, den T) (N[T], error) {
	if den == 0 {
		return N[T]{}, ErrDenZero
	}
	return N[T]{num, den - 1}, nil
}

// New is like Try but panics if the denominator is 0.
func New[T constraints.Integer](num, den T) N[T] {
	x, err := Try(num, den)
	if err != nil {
		panic(err)
	}
	return x
}

// Int returns the integer num as a rational number with denominator 1.
func Int[T constraints.Integer](num T) N[T] {
	return N[T]{m: num}
}

// Convert converts x to a rational number with a different representation.
// Numerator and denominator are converted separately, with the usual Go
// conversion rules. If To cannot represent them, the result is wrong and may
// even be invalid.
func Convert[To, From constraints.Integer](x N[From]) N[To] {
	return N[To]{To(x.Num()), To(x.Den()) - 1}
}

// Num returns the numerator of x.
func (x N[T]) Num() T {
	return x.m
}

// Den returns the denominator of x.
func (x N[T]) Den() T {
	return x.n + 1
}

// IsValid returns true if x has a non-zero denominator.
// Invalid numbers only arise from overflow or from Convert to a type too
// narrow for the denominator.
func (x N[T]) IsValid() bool {
	return x.Den() != 0
}

// Bool returns true if x is not equal to 0.
// Only the numerator is considered.
func (x N[T]) Bool() bool {
	return x.m != 0
}

// IsZero returns true if x is equal to 0.
func (x N[T]) IsZero() bool {
	return x.m == 0
}

// Reduce returns x divided through by the GCD of its numerator and
// denominator. The signs of the numerator and denominator are preserved, so
// New(12, -8).Reduce() is 3/-2.
func (x N[T]) Reduce() N[T] {
	x.ReduceInPlace()
	return x
}

// ReduceInPlace is like Reduce but stores the result in x and returns x.
func (x *N[T]) ReduceInPlace() *N[T] {
	m, n := x.Num(), x.Den()
	d := GCD(m, n)
	m, n = m/d, n/d
	// d is negative only when it is the most negative value of T; dividing
	// by it flips both signs, so flip them back
	if d < 0 {
		m, n = -m, -n
	}
	x.m, x.n = m, n-1
	return x
}

// Common returns x expanded so that its denominator is the LCM of the
// denominators of x and y. Only x is expanded; to bring both numbers to the
// same denominator, call x.Common(y) and y.Common(x).
func (x N[T]) Common(y N[T]) N[T] {
	x.CommonInPlace(y)
	return x
}

// CommonInPlace is like Common but stores the result in x and returns x.
func (x *N[T]) CommonInPlace(y N[T]) *N[T] {
	n := x.Den()
	x.expand(LCM(n, y.Den()) / n)
	return x
}

// TryExpand returns x with numerator and denominator both multiplied by k.
// TryExpand returns ErrFactorZero if k is 0. Other factors are accepted even
// if the result overflows T.
func (x N[T]) TryExpand(k T) (N[T], error) {
	if _, err := x.ExpandInPlace(k); err != nil {
		return N[T]{}, err
	}
	return x, nil
}

// Expand is like TryExpand but panics if k is 0.
func (x N[T]) Expand(k T) N[T] {
	z, err := x.TryExpand(k)
	if err != nil {
		panic(err)
	}
	return z
}

// ExpandInPlace is like TryExpand but stores the result in x and returns x.
// If k is 0, x is left unchanged.
func (x *N[T]) ExpandInPlace(k T) (*N[T], error) {
	if k == 0 {
		return x, ErrFactorZero
	}
	x.expand(k)
	return x, nil
}

func (x *N[T]) expand(k T) {
	x.m, x.n = x.m*k, x.Den()*k-1
}

// GCD returns the rational GCD of x and y: its numerator is the GCD of the
// numerators and its denominator is the LCM of the denominators.
// The result is not reduced.
func (x N[T]) GCD(y N[T]) N[T] {
	return New(GCD(x.Num(), y.Num()), LCM(x.Den(), y.Den()))
}

// Add adds x and y and returns the result.
// Both operands are first brought to a common denominator with Common, and
// the result keeps that denominator without being reduced, so
// New(1, 4).Add(New(1, 4)) is 2/4. Overflow is not detected.
func (x N[T]) Add(y N[T]) N[T] {
	cx, cy := x.Common(y), y.Common(x)
	return N[T]{cx.m + cy.m, cx.n}
}

// TryAdd is like Add but returns ErrNumOverflow or ErrDenOverflow instead of
// a wrapped result if any intermediate value would overflow T.
func (x N[T]) TryAdd(y N[T]) (N[T], error) {
	cx, err := x.tryCommon(y)
	if err != nil {
		return N[T]{}, err
	}
	cy, err := y.tryCommon(x)
	if err != nil {
		return N[T]{}, err
	}
	m, ok := addChecked(cx.m, cy.m)
	if !ok {
		return N[T]{}, ErrNumOverflow
	}
	return N[T]{m, cx.n}, nil
}

// tryCommon is Common with overflow checks.
func (x N[T]) tryCommon(y N[T]) (N[T], error) {
	nx, ny := x.Den(), y.Den()
	n, ok := mulChecked(nx/GCD(nx, ny), ny)
	if !ok {
		return N[T]{}, ErrDenOverflow
	}
	m, ok := mulChecked(x.m, n/nx)
	if !ok {
		return N[T]{}, ErrNumOverflow
	}
	return N[T]{m, n - 1}, nil
}
