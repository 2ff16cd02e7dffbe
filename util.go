package num

import "golang.org/x/exp/constraints"

type RandSource interface {
	Uint64() uint64
}

// RandUint generates an unsigned integer of up to n random words from an
// external source.
func RandUint[W constraints.Unsigned](source RandSource, n int) Uint[W] {
	words := make([]W, max(n, 1))
	for i := range words {
		words[i] = W(source.Uint64())
	}
	return Uint[W]{words: trimWords(words)}
}

// RandInt generates a signed integer of up to n random extension words plus
// a random root from an external source.
func RandInt[S constraints.Signed, U constraints.Unsigned](source RandSource, n int) Int[S, U] {
	checkWidth[S, U]()
	ext := make([]U, max(n, 0))
	for i := range ext {
		ext[i] = U(source.Uint64())
	}
	root, ext := trimRoot(S(source.Uint64()), ext)
	return Int[S, U]{root: root, ext: ext}
}

// DifferenceUint subtracts the smaller of a and b from the larger.
func DifferenceUint[W constraints.Unsigned](a, b Uint[W]) Uint[W] {
	if a.LessThan(b) {
		a, b = b, a
	}
	d, _ := a.Sub(b) // a >= b
	return d
}

func LargerUint[W constraints.Unsigned](a, b Uint[W]) Uint[W] {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerUint[W constraints.Unsigned](a, b Uint[W]) Uint[W] {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceInt subtracts the smaller of a and b from the larger.
func DifferenceInt[S constraints.Signed, U constraints.Unsigned](a, b Int[S, U]) Int[S, U] {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}
