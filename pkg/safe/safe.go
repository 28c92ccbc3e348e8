// Package safe provides integer conversions and arithmetic that fail instead of wrapping.
package safe

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrOutOfRange reports a conversion or operation whose result does not fit its type.
var ErrOutOfRange = errors.New("value out of range")

// Integer lists the integer kinds accepted by the conversions.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint32 converts v to uint32, rejecting negatives and values above math.MaxUint32.
func Uint32[T Integer](v T) (uint32, error) {
	wide, err := Uint64(v)
	if err != nil || wide > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d does not fit uint32", ErrOutOfRange, v)
	}
	return uint32(wide), nil
}

// Uint64 converts v to uint64, rejecting negatives.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d does not fit uint64", ErrOutOfRange, v)
	}
	return uint64(v), nil
}

// Add returns a+b.
func Add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d + %d", ErrOutOfRange, a, b)
	}
	return sum, nil
}

// Sub returns a-b.
func Sub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, fmt.Errorf("%w: %d - %d", ErrOutOfRange, a, b)
	}
	return diff, nil
}

// MulDiv returns floor(v*num/den) using a 128-bit intermediate product.
func MulDiv(v, num, den uint64) (uint64, error) {
	if den == 0 {
		return 0, fmt.Errorf("%w: division by zero", ErrOutOfRange)
	}
	hi, lo := bits.Mul64(v, num)
	if hi >= den {
		return 0, fmt.Errorf("%w: %d * %d / %d", ErrOutOfRange, v, num, den)
	}
	quo, _ := bits.Div64(hi, lo, den)
	return quo, nil
}
