package num

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

// IntoBigInt copies u into b, allowing you to retain and recycle memory.
func (u Uint[W]) IntoBigInt(b *big.Int) {
	var w big.Int
	wbits := WordBits[W]()
	d := u.digits()
	b.SetUint64(0)
	for i := len(d) - 1; i >= 0; i-- {
		b.Lsh(b, wbits)
		b.Or(b, w.SetUint64(uint64(d[i])))
	}
}

// AsBigInt allocates a new big.Int and copies u into it.
func (u Uint[W]) AsBigInt() *big.Int {
	var b big.Int
	u.IntoBigInt(&b)
	return &b
}

// IntoBigInt copies x into b, allowing you to retain and recycle memory.
func (x Int[S, U]) IntoBigInt(b *big.Int) {
	x.Magnitude().IntoBigInt(b)
	if x.root < 0 {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies x into it.
func (x Int[S, U]) AsBigInt() *big.Int {
	var b big.Int
	x.IntoBigInt(&b)
	return &b
}

// UintFromBigInt creates a Uint from a big.Int. Negative values return an
// error wrapping ErrUnderflow.
func UintFromBigInt[W constraints.Unsigned](v *big.Int) (Uint[W], error) {
	if v.Sign() < 0 {
		return Uint[W]{}, fmt.Errorf("num: %s as unsigned: %w", v, ErrUnderflow)
	}
	wbits := WordBits[W]()
	mask := new(big.Int).Lsh(big1, wbits)
	mask.Sub(mask, big1)

	rest := new(big.Int).Set(v)
	var w big.Int
	words := make([]W, 0, v.BitLen()/int(wbits)+1)
	for rest.Sign() > 0 {
		words = append(words, W(w.And(rest, mask).Uint64()))
		rest.Rsh(rest, wbits)
	}
	return Uint[W]{words: trimWords(words)}, nil
}

// IntFromBigInt creates an Int from a big.Int. It cannot fail.
func IntFromBigInt[S constraints.Signed, U constraints.Unsigned](v *big.Int) Int[S, U] {
	m, _ := UintFromBigInt[U](new(big.Int).Abs(v))
	return IntFromMagnitude[S](m, v.Sign() < 0)
}
