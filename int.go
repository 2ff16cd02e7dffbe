package num

import (
	"fmt"
	"unsafe"

	"fortio.org/safecast"
	"golang.org/x/exp/constraints"
)

// Int is an arbitrary-magnitude signed integer. It is stored as a signed
// root word plus a sequence of unsigned extension words, least significant
// first. The root sits above the last extension word and is sign-extended
// forever, so the value is:
//
//	ext[0] + ext[1]*B + ... + ext[k-1]*B^(k-1) + root*B^k
//
// where B is 2^WordBits and root is read as a signed word.
//
// S and U must have the same width; use the Int8 ... Int64 aliases unless
// you have a reason not to. Constructors and arithmetic panic on a width
// mismatch, including when given a zero value of a mismatched Int.
//
// Int is always canonical: the extension never ends with a word that the
// root could absorb, i.e. a word with a clear sign bit under a zero root, or
// a word with the sign bit set under a -1 root. The zero value is zero.
type Int[S constraints.Signed, U constraints.Unsigned] struct {
	root S
	ext  []U
}

type (
	Int8  = Int[int8, uint8]
	Int16 = Int[int16, uint16]
	Int32 = Int[int32, uint32]
	Int64 = Int[int64, uint64]
)

// IntFromRaw creates an Int from a root word and its extension words, least
// significant first. The pair must be canonical; see Int. Violations return
// an error wrapping ErrInvariant.
func IntFromRaw[S constraints.Signed, U constraints.Unsigned](root S, ext ...U) (Int[S, U], error) {
	checkWidth[S, U]()
	if !rootCanonical(root, ext) {
		return Int[S, U]{}, fmt.Errorf("%w: root %d over extension word %#x", ErrInvariant, root, ext[len(ext)-1])
	}
	return Int[S, U]{root: root, ext: append([]U(nil), ext...)}, nil
}

// IntFrom64 creates an Int from v. Whole words are peeled off the bottom of
// v until what remains fits in the root.
func IntFrom64[S constraints.Signed, U constraints.Unsigned](v int64) Int[S, U] {
	checkWidth[S, U]()
	lo, hi := int64(MinWord[S]()), int64(MaxWord[S]())
	n := WordBits[U]()
	var ext []U
	for v < lo || v > hi {
		ext = append(ext, U(v))
		v >>= n
	}
	return Int[S, U]{root: S(v), ext: ext}
}

// IntFromU64 creates an Int from v; see IntFrom64.
func IntFromU64[S constraints.Signed, U constraints.Unsigned](v uint64) Int[S, U] {
	checkWidth[S, U]()
	hi := uint64(MaxWord[S]())
	n := WordBits[U]()
	var ext []U
	for v > hi {
		ext = append(ext, U(v))
		v >>= n
	}
	return Int[S, U]{root: S(v), ext: ext}
}

// IntFrom32 creates an Int from v; see IntFrom64.
func IntFrom32[S constraints.Signed, U constraints.Unsigned](v int32) Int[S, U] {
	return IntFrom64[S, U](int64(v))
}

// IntFromU32 creates an Int from v; see IntFromU64.
func IntFromU32[S constraints.Signed, U constraints.Unsigned](v uint32) Int[S, U] {
	return IntFromU64[S, U](uint64(v))
}

// IntFromMagnitude creates an Int with the magnitude m, negated if neg is
// set. It is the inverse of Magnitude.
func IntFromMagnitude[S constraints.Signed, U constraints.Unsigned](m Uint[U], neg bool) Int[S, U] {
	checkWidth[S, U]()
	root, ext := trimRoot(S(0), m.Words())
	x := Int[S, U]{root: root, ext: ext}
	if neg {
		return x.Neg()
	}
	return x
}

// IntFromUint widens u to an Int. It cannot fail.
func IntFromUint[S constraints.Signed, U constraints.Unsigned](u Uint[U]) Int[S, U] {
	return IntFromMagnitude[S](u, false)
}

// Root returns the root word.
func (x Int[S, U]) Root() S { return x.root }

// Ext returns a copy of the extension words, least significant first.
func (x Int[S, U]) Ext() []U { return append([]U(nil), x.ext...) }

// IsZero reports whether x == 0.
func (x Int[S, U]) IsZero() bool { return x.root == 0 && len(x.ext) == 0 }

// Sign returns -1 if x < 0, 0 if x == 0 and +1 if x > 0.
func (x Int[S, U]) Sign() int {
	if x.root < 0 {
		return -1
	} else if x.IsZero() {
		return 0
	}
	return 1
}

// NbBytes returns the storage size of x's root and extension in bytes.
func (x Int[S, U]) NbBytes() int {
	var z U
	return (len(x.ext) + 1) * int(unsafe.Sizeof(z))
}

// wordAt returns the i'th word of x's infinite two's complement expansion.
func (x Int[S, U]) wordAt(i int) U {
	switch {
	case i < len(x.ext):
		return x.ext[i]
	case i == len(x.ext):
		return U(x.root)
	case x.root < 0:
		return ^U(0)
	default:
		return 0
	}
}

// rootAt returns the signed word at position i, which must be at or beyond
// the root.
func (x Int[S, U]) rootAt(i int) S {
	if i == len(x.ext) {
		return x.root
	} else if x.root < 0 {
		return -1
	}
	return 0
}

// Add returns x + y. The shorter operand is sign-extended word by word to the
// length of the longer one; the roots are then added as signed words.
func (x Int[S, U]) Add(y Int[S, U]) Int[S, U] {
	n := max(len(x.ext), len(y.ext))
	ext := make([]U, n, n+1)
	var carry bool
	for i := range ext {
		ext[i], carry = AddCarry(x.wordAt(i), y.wordAt(i), carry)
	}
	var c S
	if carry {
		c = 1
	}
	root, o1 := AddOverflow(x.rootAt(n), y.rootAt(n))
	root, o2 := AddOverflow(root, c)
	return promoteRoot(root, ext, o1 != o2)
}

// Sub returns x - y; see Add.
func (x Int[S, U]) Sub(y Int[S, U]) Int[S, U] {
	n := max(len(x.ext), len(y.ext))
	ext := make([]U, n, n+1)
	var borrow bool
	for i := range ext {
		ext[i], borrow = SubBorrow(x.wordAt(i), y.wordAt(i), borrow)
	}
	var b S
	if borrow {
		b = 1
	}
	root, o1 := SubOverflow(x.rootAt(n), y.rootAt(n))
	root, o2 := SubOverflow(root, b)
	return promoteRoot(root, ext, o1 != o2)
}

// promoteRoot finishes an operation whose root word was computed with
// overflow detection. The true root is within one B of the wrapped one, so
// on overflow the wrapped root becomes a new extension word under a 0 or -1
// root whose sign is the opposite of the wrapped value's.
func promoteRoot[S constraints.Signed, U constraints.Unsigned](root S, ext []U, overflow bool) Int[S, U] {
	checkWidth[S, U]()
	if overflow {
		ext = append(ext, U(root))
		if root < 0 {
			root = 0
		} else {
			root = -1
		}
	}
	root, ext = trimRoot(root, ext)
	return Int[S, U]{root: root, ext: ext}
}

// Neg returns -x: every word complemented, plus one.
func (x Int[S, U]) Neg() Int[S, U] {
	ext := make([]U, len(x.ext), len(x.ext)+1)
	carry := true
	for i, w := range x.ext {
		ext[i], carry = AddCarry(^w, 0, carry)
	}
	var c S
	if carry {
		c = 1
	}
	root, over := AddOverflow(^x.root, c)
	return promoteRoot(root, ext, over)
}

// Abs returns |x|. Unlike a fixed-width integer, the absolute value of the
// most negative root always fits.
func (x Int[S, U]) Abs() Int[S, U] {
	if x.root < 0 {
		return x.Neg()
	}
	return x.clone()
}

// Inc returns x + 1.
func (x Int[S, U]) Inc() Int[S, U] { return x.Add(Int[S, U]{root: 1}) }

// Dec returns x - 1.
func (x Int[S, U]) Dec() Int[S, U] { return x.Sub(Int[S, U]{root: 1}) }

// Magnitude returns |x| as a Uint.
func (x Int[S, U]) Magnitude() Uint[U] {
	return x.Abs().asMagnitude()
}

// asMagnitude reinterprets a non-negative x as a Uint.
func (x Int[S, U]) asMagnitude() Uint[U] {
	words := make([]U, len(x.ext)+1)
	copy(words, x.ext)
	words[len(x.ext)] = U(x.root)
	return Uint[U]{words: trimWords(words)}
}

// AsUint converts x to a Uint. Negative values return an error wrapping
// ErrUnderflow.
func (x Int[S, U]) AsUint() (Uint[U], error) {
	if x.root < 0 {
		return Uint[U]{}, fmt.Errorf("num: %s as unsigned: %w", x, ErrUnderflow)
	}
	return x.asMagnitude(), nil
}

// Cmp compares x to y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x Int[S, U]) Cmp(y Int[S, U]) int {
	xneg, yneg := x.root < 0, y.root < 0
	if xneg != yneg {
		if xneg {
			return -1
		}
		return 1
	}

	if len(x.ext) != len(y.ext) {
		// More words means further from zero, which is smaller for
		// negative numbers.
		longer := 1
		if len(x.ext) < len(y.ext) {
			longer = -1
		}
		if xneg {
			return -longer
		}
		return longer
	}

	if x.root != y.root {
		if x.root > y.root {
			return 1
		}
		return -1
	}
	for i := len(x.ext) - 1; i >= 0; i-- {
		if x.ext[i] != y.ext[i] {
			if x.ext[i] > y.ext[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

func (x Int[S, U]) Equal(y Int[S, U]) bool            { return x.Cmp(y) == 0 }
func (x Int[S, U]) GreaterThan(y Int[S, U]) bool      { return x.Cmp(y) > 0 }
func (x Int[S, U]) GreaterOrEqualTo(y Int[S, U]) bool { return x.Cmp(y) >= 0 }
func (x Int[S, U]) LessThan(y Int[S, U]) bool         { return x.Cmp(y) < 0 }
func (x Int[S, U]) LessOrEqualTo(y Int[S, U]) bool    { return x.Cmp(y) <= 0 }

// Case codes for the signs of a pair of operands. Bit 1 is set when the
// left operand is non-negative, bit 0 when the right one is.
const (
	quadNegNeg = iota
	quadNegPos
	quadPosNeg
	quadPosPos
)

func quadrant[S constraints.Signed, U constraints.Unsigned](x, y Int[S, U]) int {
	var code int
	if x.root >= 0 {
		code |= 2
	}
	if y.root >= 0 {
		code |= 1
	}
	return code
}

// Mul returns x * y. The magnitudes are multiplied as Uints and the result
// is negative iff exactly one operand is.
func (x Int[S, U]) Mul(y Int[S, U]) Int[S, U] {
	if x.IsZero() || y.IsZero() {
		return Int[S, U]{}
	}
	switch quadrant(x, y) {
	case quadPosPos:
		return IntFromMagnitude[S](x.asMagnitude().Mul(y.asMagnitude()), false)
	case quadPosNeg:
		return IntFromMagnitude[S](x.asMagnitude().Mul(y.Neg().asMagnitude()), true)
	case quadNegPos:
		return IntFromMagnitude[S](x.Neg().asMagnitude().Mul(y.asMagnitude()), true)
	default:
		return IntFromMagnitude[S](x.Neg().asMagnitude().Mul(y.Neg().asMagnitude()), false)
	}
}

// QuoRem returns the quotient x/by and the remainder x%by for by != 0.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// so the remainder takes the sign of the dividend. If by is zero, an error
// wrapping ErrDivisionByZero is returned.
func (x Int[S, U]) QuoRem(by Int[S, U]) (q, r Int[S, U], err error) {
	if by.IsZero() {
		return q, r, fmt.Errorf("num: %s / 0: %w", x, ErrDivisionByZero)
	}
	if len(by.ext) == 0 {
		switch by.root {
		case 1:
			return x.clone(), r, nil
		case -1:
			return x.Neg(), r, nil
		}
	}

	var qm, rm Uint[U]
	var qneg, rneg bool
	switch quadrant(x, by) {
	case quadPosPos:
		qm, rm, err = x.asMagnitude().QuoRem(by.asMagnitude())
	case quadPosNeg:
		qm, rm, err = x.asMagnitude().QuoRem(by.Neg().asMagnitude())
		qneg = true
	case quadNegPos:
		qm, rm, err = x.Neg().asMagnitude().QuoRem(by.asMagnitude())
		qneg, rneg = true, true
	default:
		qm, rm, err = x.Neg().asMagnitude().QuoRem(by.Neg().asMagnitude())
		rneg = true
	}
	if err != nil {
		return q, r, err
	}
	return IntFromMagnitude[S](qm, qneg), IntFromMagnitude[S](rm, rneg), nil
}

// Quo returns the quotient x/by, truncated towards zero; see QuoRem.
func (x Int[S, U]) Quo(by Int[S, U]) (Int[S, U], error) {
	q, _, err := x.QuoRem(by)
	return q, err
}

// Rem returns the remainder x%by, which has the sign of x; see QuoRem.
func (x Int[S, U]) Rem(by Int[S, U]) (Int[S, U], error) {
	_, r, err := x.QuoRem(by)
	return r, err
}

func (x Int[S, U]) clone() Int[S, U] {
	return Int[S, U]{root: x.root, ext: x.Ext()}
}

// Int64 returns x as an int64. If x occupies more than 8 bytes, an error
// wrapping ErrSizeMismatch is returned.
func (x Int[S, U]) Int64() (int64, error) { return IntAs[int64](x) }

// Int32 returns x as an int32. If x occupies more than 4 bytes, an error
// wrapping ErrSizeMismatch is returned.
func (x Int[S, U]) Int32() (int32, error) { return IntAs[int32](x) }

type nativeSigned interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// IntAs converts x to the native signed integer N. The conversion is only
// valid if x.NbBytes() is no larger than N, otherwise an error wrapping
// ErrSizeMismatch is returned.
func IntAs[N nativeSigned, S constraints.Signed, U constraints.Unsigned](x Int[S, U]) (N, error) {
	var z N
	if size := int(unsafe.Sizeof(z)); x.NbBytes() > size {
		return 0, fmt.Errorf("num: %s needs %d bytes, have %d: %w", x, x.NbBytes(), size, ErrSizeMismatch)
	}
	v := int64(x.root)
	wbits := WordBits[U]()
	for i := len(x.ext) - 1; i >= 0; i-- {
		v = v<<wbits | int64(uint64(x.ext[i]))
	}
	out, err := safecast.Conv[N](v)
	if err != nil {
		return 0, fmt.Errorf("num: %s: %w: %w", x, ErrSizeMismatch, err)
	}
	return out, nil
}
