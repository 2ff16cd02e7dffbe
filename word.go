package num

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// WordBits returns the width of T in bits.
func WordBits[T constraints.Integer]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) * 8
}

// MinWord returns the smallest value representable by T.
func MinWord[T constraints.Integer]() T {
	if !isSigned[T]() {
		return 0
	}
	var one T = 1
	return one << (WordBits[T]() - 1)
}

// MaxWord returns the largest value representable by T.
func MaxWord[T constraints.Integer]() T {
	return ^MinWord[T]()
}

func isSigned[T constraints.Integer]() bool {
	var z T
	return ^z < 0
}

// AddOverflow returns the wrapped sum of a and b, and whether the true sum
// was outside the range of T.
func AddOverflow[T constraints.Integer](a, b T) (sum T, overflow bool) {
	sum = a + b
	if isSigned[T]() {
		// Only operands of the same sign can leave the range, and only on
		// their own side of it.
		if b > 0 {
			return sum, a > MaxWord[T]()-b
		}
		return sum, a < MinWord[T]()-b
	}
	return sum, a > MaxWord[T]()-b
}

// SubOverflow returns the wrapped difference a - b, and whether the true
// difference was outside the range of T.
func SubOverflow[T constraints.Integer](a, b T) (diff T, overflow bool) {
	diff = a - b
	if isSigned[T]() {
		if b > 0 {
			return diff, a < MinWord[T]()+b
		}
		return diff, a > MaxWord[T]()+b
	}
	return diff, b > a
}

// MulOverflow returns the wrapped product of a and b, and whether the true
// product was outside the range of T.
func MulOverflow[T constraints.Integer](a, b T) (prod T, overflow bool) {
	prod = a * b
	if a == 0 || b == 0 {
		return prod, false
	}
	lo, hi := MinWord[T](), MaxWord[T]()
	if isSigned[T]() {
		switch {
		case a > 0 && b > 0:
			return prod, a > hi/b
		case a > 0 && b < 0:
			return prod, b < lo/a
		case a < 0 && b > 0:
			return prod, a < lo/b
		default:
			return prod, a < hi/b
		}
	}
	return prod, a > hi/b
}

// NegOverflow returns the wrapped negation of a, and whether -a is outside
// the range of T. For unsigned words every value except zero overflows.
func NegOverflow[T constraints.Integer](a T) (neg T, overflow bool) {
	neg = -a
	if isSigned[T]() {
		return neg, a == MinWord[T]()
	}
	return neg, a != 0
}

// AddCarry returns a + b + carry and the carry out of the word.
func AddCarry[T constraints.Unsigned](a, b T, carry bool) (sum T, carryOut bool) {
	sum, carryOut = AddOverflow(a, b)
	if carry {
		var c bool
		sum, c = AddOverflow(sum, 1)
		carryOut = carryOut || c
	}
	return sum, carryOut
}

// SubBorrow returns a - b - borrow and the borrow out of the word.
func SubBorrow[T constraints.Unsigned](a, b T, borrow bool) (diff T, borrowOut bool) {
	diff, borrowOut = SubOverflow(a, b)
	if borrow {
		var c bool
		diff, c = SubOverflow(diff, 1)
		borrowOut = borrowOut || c
	}
	return diff, borrowOut
}

// CheckedAdd returns a + b, or an error wrapping ErrOverflow if the sum does
// not fit in T.
func CheckedAdd[T constraints.Integer](a, b T) (T, error) {
	v, over := AddOverflow(a, b)
	if over {
		return 0, overflowError("+", a, b)
	}
	return v, nil
}

// CheckedSub returns a - b, or an error wrapping ErrOverflow if the
// difference does not fit in T.
func CheckedSub[T constraints.Integer](a, b T) (T, error) {
	v, over := SubOverflow(a, b)
	if over {
		return 0, overflowError("-", a, b)
	}
	return v, nil
}

// CheckedMul returns a * b, or an error wrapping ErrOverflow if the product
// does not fit in T.
func CheckedMul[T constraints.Integer](a, b T) (T, error) {
	v, over := MulOverflow(a, b)
	if over {
		return 0, overflowError("*", a, b)
	}
	return v, nil
}

// CheckedQuo returns a / b truncated towards zero. A zero divisor returns
// ErrDivisionByZero; the only overflowing case is MinWord / -1 for signed
// words.
func CheckedQuo[T constraints.Integer](a, b T) (T, error) {
	if err := checkDivisor(a, b, "/"); err != nil {
		return 0, err
	}
	return a / b, nil
}

// CheckedRem returns a % b with the sign of a. Errors as for CheckedQuo.
func CheckedRem[T constraints.Integer](a, b T) (T, error) {
	if err := checkDivisor(a, b, "%"); err != nil {
		return 0, err
	}
	return a % b, nil
}

// CheckedNeg returns -a, or an error wrapping ErrOverflow.
func CheckedNeg[T constraints.Integer](a T) (T, error) {
	v, over := NegOverflow(a)
	if over {
		return 0, fmt.Errorf("num: -(%d): %w", a, ErrOverflow)
	}
	return v, nil
}

func checkDivisor[T constraints.Integer](a, b T, op string) error {
	if b == 0 {
		return fmt.Errorf("num: %d %s 0: %w", a, op, ErrDivisionByZero)
	}
	var z T
	if isSigned[T]() && a == MinWord[T]() && b == ^z {
		return overflowError(op, a, b)
	}
	return nil
}

func overflowError[T constraints.Integer](op string, a, b T) error {
	return fmt.Errorf("num: %d %s %d: %w", a, op, b, ErrOverflow)
}
