package rational

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
	"golang.org/x/exp/constraints"
)

// Float64 returns the floating-point equivalent of x. If exact is true, then
// v is exactly equal to x; otherwise, it is the closest approximation.
// The quotient is formed with arbitrary precision before rounding, so v is
// correctly rounded even when the numerator or denominator has more than 53
// significant bits.
func (x N[T]) Float64() (v float64, exact bool) {
	// check for zero, trivial case
	if x.Num() == 0 {
		return 0, true
	}
	return x.BigRat().Float64()
}

// BigRat converts x to a new big.Rat.
// The big.Rat is in lowest terms with a positive denominator, as big.Rat
// always is. BigRat panics with ErrDenZero if x is not valid.
func (x N[T]) BigRat() *big.Rat {
	if !x.IsValid() {
		panic(ErrDenZero)
	}
	return new(big.Rat).SetFrac(bigInt(x.Num()), bigInt(x.Den()))
}

// TryFromBigRat converts a big.Rat to N, if it is possible to do so.
// The result is in lowest terms with a positive denominator.
func TryFromBigRat[T constraints.Integer](r *big.Rat) (N[T], error) {
	num, ok := fromBigInt[T](r.Num())
	if !ok {
		return N[T]{}, ErrNumOverflow
	}
	den, ok := fromBigInt[T](r.Denom())
	if !ok {
		return N[T]{}, ErrDenOverflow
	}
	return Try(num, den)
}

// TryFromFloat64 extracts a rational number from a float64. The result will
// be exactly equal to v, in lowest terms with a positive denominator, or else
// an error will be returned.
func TryFromFloat64[T constraints.Integer](v float64) (N[T], error) {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		return N[T]{}, ErrNotFinite
	}
	return TryFromBigRat[T](r)
}

// Decimal returns x as a decimal, rounded to the precision of the decimal
// package if x has no exact decimal representation that fits.
// Decimal returns an error if the numerator or denominator of x does not fit
// in an int64, or if the integer part of x is too large for a decimal.
func (x N[T]) Decimal() (decimal.Decimal, error) {
	m, n := bigInt(x.Num()), bigInt(x.Den())
	if !m.IsInt64() {
		return decimal.Decimal{}, ErrNumOverflow
	}
	if !n.IsInt64() {
		return decimal.Decimal{}, ErrDenOverflow
	}
	num, err := decimal.New(m.Int64(), 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting numerator: %w", err)
	}
	den, err := decimal.New(n.Int64(), 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting denominator: %w", err)
	}
	d, err := num.Quo(den)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing %v/%v: %w", num, den, err)
	}
	return d, nil
}

// TryFromDecimal converts a decimal to N, if it is possible to do so.
// The result is exactly equal to d, in lowest terms with a positive
// denominator.
func TryFromDecimal[T constraints.Integer](d decimal.Decimal) (N[T], error) {
	num := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		num.Neg(num)
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Scale())), nil)
	x, err := TryFromBigRat[T](new(big.Rat).SetFrac(num, den))
	if err != nil {
		return N[T]{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return x, nil
}

// bigInt converts v to a new big.Int.
func bigInt[T constraints.Integer](v T) *big.Int {
	if isSigned[T]() {
		return new(big.Int).SetInt64(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

// fromBigInt converts b to T, reporting whether T can hold it.
func fromBigInt[T constraints.Integer](b *big.Int) (T, bool) {
	if isSigned[T]() {
		if !b.IsInt64() {
			return 0, false
		}
		v := T(b.Int64())
		return v, int64(v) == b.Int64()
	}
	if !b.IsUint64() {
		return 0, false
	}
	v := T(b.Uint64())
	return v, uint64(v) == b.Uint64()
}
