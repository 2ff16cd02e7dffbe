/*
Package num provides arbitrary-magnitude unsigned (Uint) and signed (Int)
integers built on fixed-width words whose arithmetic is overflow-checked.

Uint and Int are value types; all operations return new values and never
modify their operands, so a value may be shared between goroutines freely.

Both types are generic over their word type. Uint takes any unsigned
integer type; Int takes a signed root word and an unsigned extension word of
the same width, fixed by the Int8, Int16, Int32 and Int64 aliases:

	a := num.UintFrom64[uint8](0xFF)
	b := num.UintFrom64[uint8](0x01)
	fmt.Println(a.Add(b))
	// Output: 0x0100

	x := num.IntFrom64[int8, uint8](-1)
	fmt.Println(x)
	// Output: -0x01

The word layer is exposed directly. The Checked* functions (CheckedAdd,
CheckedSub, CheckedMul, CheckedQuo, CheckedRem, CheckedNeg) return
ErrOverflow instead of a wrapped result; AddOverflow, SubOverflow,
MulOverflow, AddCarry and SubBorrow return the wrapped result alongside the
overflow or carry flag.

Values are kept in a canonical, trimmed form, so two values are equal if and
only if their words are. Literal word sequences passed to UintFromWords or
IntFromRaw must already be canonical.

Uint and Int can be created from:

	UintFromWords(words ...W) (Uint[W], error)
	UintFrom64(v uint64) Uint[W]
	UintFrom32(v uint32) Uint[W]
	UintFromString(s string) (Uint[W], error)
	UintFromBigInt(v *big.Int) (Uint[W], error)
	IntFromRaw(root S, ext ...U) (Int[S, U], error)
	IntFrom64(v int64) Int[S, U]
	IntFrom32(v int32) Int[S, U]
	IntFromU64(v uint64) Int[S, U]
	IntFromU32(v uint32) Int[S, U]
	IntFromMagnitude(m Uint[U], neg bool) Int[S, U]
	IntFromString(s string) (Int[S, U], error)
	IntFromBigInt(v *big.Int) Int[S, U]

The only text form is hexadecimal, most significant word first, each word
padded to its full width: "0x0100", "-0x01". Uint and Int support the
following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Errors wrap one of ErrOverflow, ErrDivisionByZero, ErrInvariant,
ErrSizeMismatch, ErrUnderflow or ErrSyntax.
*/
package num
