package num

import (
	"fmt"
	"unsafe"

	"fortio.org/safecast"
	"golang.org/x/exp/constraints"
)

// Uint is an arbitrary-magnitude unsigned integer stored as a sequence of W
// words, least significant first.
//
// The most significant word is never zero unless the value itself is zero,
// in which case there is exactly one word. Every operation returns a new
// value; a Uint never shares its words with the caller or with another Uint.
// The zero value is zero.
type Uint[W constraints.Unsigned] struct {
	words []W
}

// UintFromWords creates a Uint from a literal word sequence, least
// significant word first. The sequence must already be canonical: it must
// not be empty, and its last word must not be zero unless it is the only
// word. Violations return an error wrapping ErrInvariant.
func UintFromWords[W constraints.Unsigned](words ...W) (Uint[W], error) {
	if len(words) == 0 {
		return Uint[W]{}, fmt.Errorf("%w: empty word sequence", ErrInvariant)
	}
	if !wordsCanonical(words) {
		return Uint[W]{}, fmt.Errorf("%w: most significant word of %d is zero", ErrInvariant, len(words))
	}
	return Uint[W]{words: append([]W(nil), words...)}, nil
}

// UintFrom64 splits v into W words.
func UintFrom64[W constraints.Unsigned](v uint64) Uint[W] {
	n := WordBits[W]()
	words := make([]W, 0, 64/n)
	for {
		words = append(words, W(v))
		v >>= n
		if v == 0 {
			break
		}
	}
	return Uint[W]{words: words}
}

// UintFrom32 splits v into W words.
func UintFrom32[W constraints.Unsigned](v uint32) Uint[W] { return UintFrom64[W](uint64(v)) }

func uintZero[W constraints.Unsigned]() Uint[W] { return Uint[W]{words: []W{0}} }
func uintOne[W constraints.Unsigned]() Uint[W]  { return Uint[W]{words: []W{1}} }

// digits returns the canonical word slice. It must not be modified.
func (u Uint[W]) digits() []W {
	if len(u.words) == 0 {
		return []W{0}
	}
	return u.words
}

// Words returns a copy of the words of u, least significant first.
func (u Uint[W]) Words() []W {
	return append([]W(nil), u.digits()...)
}

// IsZero reports whether u == 0.
func (u Uint[W]) IsZero() bool {
	d := u.digits()
	return len(d) == 1 && d[0] == 0
}

// NbBytes returns the storage size of u's words in bytes.
func (u Uint[W]) NbBytes() int {
	var z W
	return len(u.digits()) * int(unsafe.Sizeof(z))
}

// BitLen returns the number of bits needed to represent u. BitLen of zero
// is 0.
func (u Uint[W]) BitLen() int {
	d := u.digits()
	top := d[len(d)-1]
	if top == 0 {
		return 0
	}
	n := WordBits[W]()
	return (len(d)-1)*int(n) + int(n-leadingZeros(top))
}

// Cmp compares u to n and returns:
//
//	-1 if u <  n
//	 0 if u == n
//	+1 if u >  n
func (u Uint[W]) Cmp(n Uint[W]) int {
	a, b := u.digits(), n.digits()
	if len(a) != len(b) {
		if len(a) > len(b) {
			return 1
		}
		return -1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

func (u Uint[W]) Equal(n Uint[W]) bool            { return u.Cmp(n) == 0 }
func (u Uint[W]) GreaterThan(n Uint[W]) bool      { return u.Cmp(n) > 0 }
func (u Uint[W]) GreaterOrEqualTo(n Uint[W]) bool { return u.Cmp(n) >= 0 }
func (u Uint[W]) LessThan(n Uint[W]) bool         { return u.Cmp(n) < 0 }
func (u Uint[W]) LessOrEqualTo(n Uint[W]) bool    { return u.Cmp(n) <= 0 }

// Add returns u + n. The result is at most one word longer than the longer
// operand.
func (u Uint[W]) Add(n Uint[W]) Uint[W] {
	a, b := u.digits(), n.digits()
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]W, len(a)+1)
	var carry bool
	for i, w := range a {
		var v W
		if i < len(b) {
			v = b[i]
		}
		out[i], carry = AddCarry(w, v, carry)
	}
	if carry {
		out[len(a)] = 1
	}
	return Uint[W]{words: trimWords(out)}
}

// Sub returns u - n. If n is greater than u, the result would be negative
// and an error wrapping ErrUnderflow is returned instead.
func (u Uint[W]) Sub(n Uint[W]) (Uint[W], error) {
	if u.Cmp(n) < 0 {
		return Uint[W]{}, fmt.Errorf("num: %s - %s: %w", u, n, ErrUnderflow)
	}
	a, b := u.digits(), n.digits()
	out := make([]W, len(a))
	var borrow bool
	for i, w := range a {
		var v W
		if i < len(b) {
			v = b[i]
		}
		out[i], borrow = SubBorrow(w, v, borrow)
	}
	return Uint[W]{words: trimWords(out)}, nil
}

// Inc returns u + 1.
func (u Uint[W]) Inc() Uint[W] { return u.Add(uintOne[W]()) }

// Dec returns u - 1, or an error wrapping ErrUnderflow if u is zero.
func (u Uint[W]) Dec() (Uint[W], error) { return u.Sub(uintOne[W]()) }

// Mul returns u * n using schoolbook multiplication.
func (u Uint[W]) Mul(n Uint[W]) Uint[W] {
	if u.IsZero() || n.IsZero() {
		return uintZero[W]()
	}
	a, b := u.digits(), n.digits()
	out := make([]W, len(a)+len(b))
	for i, x := range a {
		if x == 0 {
			continue
		}
		// The running double-width total x*y + out[i+j] + carry never
		// exceeds two words, so hi cannot wrap.
		var carry W
		for j, y := range b {
			hi, lo := mulWW(x, y)
			var c bool
			if lo, c = AddOverflow(lo, carry); c {
				hi++
			}
			if out[i+j], c = AddOverflow(out[i+j], lo); c {
				hi++
			}
			carry = hi
		}
		out[i+len(b)] = carry
	}
	return Uint[W]{words: trimWords(out)}
}

// QuoRem returns the quotient u/by and the remainder u%by. If by is zero,
// an error wrapping ErrDivisionByZero is returned.
func (u Uint[W]) QuoRem(by Uint[W]) (q, r Uint[W], err error) {
	if by.IsZero() {
		return q, r, fmt.Errorf("num: %s / 0: %w", u, ErrDivisionByZero)
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return uintZero[W](), u.clone(), nil // it's 100% remainder
	} else if cmp == 0 {
		return uintOne[W](), uintZero[W](), nil
	}

	a, b := u.digits(), by.digits()
	if len(b) == 1 {
		qw, rw := divWVW(a, b[0])
		return Uint[W]{words: trimWords(qw)}, Uint[W]{words: []W{rw}}, nil
	}
	qw, rw := divLong(a, b)
	return Uint[W]{words: trimWords(qw)}, Uint[W]{words: trimWords(rw)}, nil
}

// Quo returns the quotient u/by; see QuoRem.
func (u Uint[W]) Quo(by Uint[W]) (Uint[W], error) {
	q, _, err := u.QuoRem(by)
	return q, err
}

// Rem returns the remainder u%by; see QuoRem.
func (u Uint[W]) Rem(by Uint[W]) (Uint[W], error) {
	_, r, err := u.QuoRem(by)
	return r, err
}

// Lsh returns u << n.
func (u Uint[W]) Lsh(n uint) Uint[W] {
	if n == 0 || u.IsZero() {
		return u.clone()
	}
	a := u.digits()
	wbits := WordBits[W]()
	shift := mustInt(n / wbits)

	out := make([]W, len(a)+shift+1)
	out[len(a)+shift] = shlVU(out[shift:len(a)+shift], a, n%wbits)
	return Uint[W]{words: trimWords(out)}
}

// Rsh returns u >> n.
func (u Uint[W]) Rsh(n uint) Uint[W] {
	if n == 0 {
		return u.clone()
	}
	a := u.digits()
	wbits := WordBits[W]()
	if n/wbits >= uint(len(a)) {
		return uintZero[W]()
	}
	shift := mustInt(n / wbits)

	out := make([]W, len(a)-shift)
	shrVU(out, a[shift:], n%wbits)
	return Uint[W]{words: trimWords(out)}
}

// And returns u & n.
func (u Uint[W]) And(n Uint[W]) Uint[W] {
	a, b := u.digits(), n.digits()
	if len(a) > len(b) {
		a, b = b, a
	}
	out := make([]W, len(a))
	for i := range a {
		out[i] = a[i] & b[i]
	}
	return Uint[W]{words: trimWords(out)}
}

// Or returns u | n.
func (u Uint[W]) Or(n Uint[W]) Uint[W] {
	a, b := u.digits(), n.digits()
	if len(a) < len(b) {
		a, b = b, a
	}
	out := append([]W(nil), a...)
	for i := range b {
		out[i] |= b[i]
	}
	return Uint[W]{words: trimWords(out)}
}

// Xor returns u ^ n.
func (u Uint[W]) Xor(n Uint[W]) Uint[W] {
	a, b := u.digits(), n.digits()
	if len(a) < len(b) {
		a, b = b, a
	}
	out := append([]W(nil), a...)
	for i := range b {
		out[i] ^= b[i]
	}
	return Uint[W]{words: trimWords(out)}
}

func (u Uint[W]) clone() Uint[W] {
	return Uint[W]{words: u.Words()}
}

// Uint64 returns u as a uint64. If u occupies more than 8 bytes, an error
// wrapping ErrSizeMismatch is returned.
func (u Uint[W]) Uint64() (uint64, error) { return UintAs[uint64](u) }

// Uint32 returns u as a uint32. If u occupies more than 4 bytes, an error
// wrapping ErrSizeMismatch is returned.
func (u Uint[W]) Uint32() (uint32, error) { return UintAs[uint32](u) }

type nativeUnsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// UintAs converts u to the native unsigned integer N. The conversion is only
// valid if u.NbBytes() is no larger than N, otherwise an error wrapping
// ErrSizeMismatch is returned.
func UintAs[N nativeUnsigned, W constraints.Unsigned](u Uint[W]) (N, error) {
	var z N
	if size := int(unsafe.Sizeof(z)); u.NbBytes() > size {
		return 0, fmt.Errorf("num: %s needs %d bytes, have %d: %w", u, u.NbBytes(), size, ErrSizeMismatch)
	}
	var v uint64
	d := u.digits()
	wbits := WordBits[W]()
	for i := len(d) - 1; i >= 0; i-- {
		v = v<<wbits | uint64(d[i])
	}
	out, err := safecast.Conv[N](v)
	if err != nil {
		return 0, fmt.Errorf("num: %s: %w: %w", u, ErrSizeMismatch, err)
	}
	return out, nil
}

// mustInt converts a word or bit count to an int. Counts beyond the int
// range could not be allocated anyway.
func mustInt(n uint) int {
	v, err := safecast.Conv[int](n)
	if err != nil {
		panic(fmt.Errorf("num: count %d out of range: %w", n, err))
	}
	return v
}
