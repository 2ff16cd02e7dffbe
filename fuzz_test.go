package num

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"golang.org/x/exp/constraints"
)

type fuzzOp string
type fuzzType string

// This is the equivalent of passing -num.fuzziter=5000 to 'go test':
const fuzzDefaultIterations = 5000

// fuzzMaxBits bounds the magnitude of generated operands. It spans several
// 64-bit words so the long division paths are reached for every word size.
const fuzzMaxBits = 320

// These ops are all enabled by default. You can instead pass them explicitly
// on the command line like so: '-num.fuzzop=add -num.fuzzop=sub', or you can
// use the short form '-num.fuzzop=add,sub,mul'.
//
// If you add a new op, search for the string 'NEWOP' in this file for all the
// places you need to update.
const (
	fuzzAbs              fuzzOp = "abs"
	fuzzAdd              fuzzOp = "add"
	fuzzAnd              fuzzOp = "and"
	fuzzBitLen           fuzzOp = "bitlen"
	fuzzCmp              fuzzOp = "cmp"
	fuzzDec              fuzzOp = "dec"
	fuzzEqual            fuzzOp = "equal"
	fuzzGreaterOrEqualTo fuzzOp = "gte"
	fuzzGreaterThan      fuzzOp = "gt"
	fuzzInc              fuzzOp = "inc"
	fuzzLessOrEqualTo    fuzzOp = "lte"
	fuzzLessThan         fuzzOp = "lt"
	fuzzLsh              fuzzOp = "lsh"
	fuzzMul              fuzzOp = "mul"
	fuzzNeg              fuzzOp = "neg"
	fuzzOr               fuzzOp = "or"
	fuzzQuo              fuzzOp = "quo"
	fuzzQuoRem           fuzzOp = "quorem"
	fuzzRem              fuzzOp = "rem"
	fuzzRsh              fuzzOp = "rsh"
	fuzzString           fuzzOp = "string"
	fuzzSub              fuzzOp = "sub"
	fuzzXor              fuzzOp = "xor"
)

// These types are all enabled by default. You can instead pass them explicitly
// on the command line like so: '-num.fuzztype=uint8 -num.fuzztype=int64'
const (
	fuzzTypeUint8  fuzzType = "uint8"
	fuzzTypeUint64 fuzzType = "uint64"
	fuzzTypeInt8   fuzzType = "int8"
	fuzzTypeInt64  fuzzType = "int64"
)

var allFuzzTypes = []fuzzType{fuzzTypeUint8, fuzzTypeUint64, fuzzTypeInt8, fuzzTypeInt64}

// allFuzzOps are active by default.
//
// NEWOP: Update this list if a NEW op is added otherwise it won't be
// enabled by default.
//
// Please keep this list alphabetised.
var allFuzzOps = []fuzzOp{
	fuzzAbs,
	fuzzAdd,
	fuzzAnd,
	fuzzBitLen,
	fuzzCmp,
	fuzzDec,
	fuzzEqual,
	fuzzGreaterOrEqualTo,
	fuzzGreaterThan,
	fuzzInc,
	fuzzLessOrEqualTo,
	fuzzLessThan,
	fuzzLsh,
	fuzzMul,
	fuzzNeg,
	fuzzOr,
	fuzzQuo,
	fuzzQuoRem,
	fuzzRem,
	fuzzRsh,
	fuzzString,
	fuzzSub,
	fuzzXor,
}

// NEWOP: update this interface if a new op is added.
type fuzzOps interface {
	Name() string // Not an op

	Abs() error
	Add() error
	And() error
	BitLen() error
	Cmp() error
	Dec() error
	Equal() error
	GreaterOrEqualTo() error
	GreaterThan() error
	Inc() error
	LessOrEqualTo() error
	LessThan() error
	Lsh() error
	Mul() error
	Neg() error
	Or() error
	Quo() error
	QuoRem() error
	Rem() error
	Rsh() error
	String() error
	Sub() error
	Xor() error
}

// classic rando!
type rando struct {
	operands []*big.Int
	rng      *rand.Rand
}

func (r *rando) Operands() []*big.Int { return r.operands }

func (r *rando) Clear() {
	for i := range r.operands {
		r.operands[i] = nil
	}
	r.operands = r.operands[:0]
}

func (r *rando) Uintn(n int) uint {
	v := uint(r.rng.Intn(n))
	r.operands = append(r.operands, new(big.Int).SetUint64(uint64(v)))
	return v
}

// samesies returns the number of arguments up to n - 1 that should be the same
// for this request. Only used for randos that are 'x2', 'x3', etc.
//
// We need this because the chance of even two random multi-word operands
// being the same is unfathomable.
func (r *rando) samesies(n int) int {
	const samesiesChance = 0.03
	if r.rng.Float64() < samesiesChance {
		return r.rng.Intn(n)
	}
	return 0
}

func (r *rando) BigUx2() (b1, b2 *big.Int) {
	b1 = r.BigU()
	if r.samesies(2) > 0 {
		b2 = new(big.Int).Set(b1)
		r.operands = append(r.operands, b2)
	} else {
		b2 = r.BigU()
	}
	return b1, b2
}

func (r *rando) BigIx2() (b1, b2 *big.Int) {
	b1 = r.BigI()
	if r.samesies(2) > 0 {
		b2 = new(big.Int).Set(b1)
		r.operands = append(r.operands, b2)
	} else {
		b2 = r.BigI()
	}
	return b1, b2
}

func (r *rando) bits() *big.Int {
	var v = new(big.Int)
	bits := r.rng.Intn(fuzzMaxBits+1) - 1 // +1 for "0 bits"
	if bits < 0 {
		return v // "-1 bits" == "0"
	}
	v = v.Rand(r.rng, fuzzLimit)
	v.And(v, masks[bits])
	v.SetBit(v, bits, 1)
	return v
}

func (r *rando) BigU() *big.Int {
	v := r.bits()
	r.operands = append(r.operands, v)
	return v
}

func (r *rando) BigI() *big.Int {
	v := r.bits()
	if r.rng.Intn(2) == 1 {
		v.Neg(v)
	}
	r.operands = append(r.operands, v)
	return v
}

// masks contains a pre-calculated set of masks for use when generating
// random operands. It's used to ensure we generate an even distribution of
// bit sizes.
var (
	masks     [fuzzMaxBits]*big.Int
	fuzzLimit = new(big.Int).Lsh(big1, fuzzMaxBits)
)

func init() {
	for i := 0; i < fuzzMaxBits; i++ {
		bi := new(big.Int)
		for b := 0; b <= i; b++ {
			bi.SetBit(bi, b, 1)
		}
		masks[i] = bi
	}
}

func checkEqualCmp(u int, b int) error {
	if u != b {
		return fmt.Errorf("num(%v) != big(%v)", u, b)
	}
	return nil
}

func checkEqualBool(u bool, b bool) error {
	if u != b {
		return fmt.Errorf("num(%v) != big(%v)", u, b)
	}
	return nil
}

func checkEqualUint[W constraints.Unsigned](u Uint[W], b *big.Int) error {
	if !wordsCanonical(u.digits()) {
		return fmt.Errorf("uint(%#x) is not canonical", u.words)
	}
	if u.AsBigInt().Cmp(b) != 0 {
		return fmt.Errorf("uint(%d) != big(%s)", u, b)
	}
	return nil
}

func checkEqualSigned[S constraints.Signed, U constraints.Unsigned](x Int[S, U], b *big.Int) error {
	if !rootCanonical(x.root, x.ext) {
		return fmt.Errorf("int(%d, %#x) is not canonical", x.root, x.ext)
	}
	if x.AsBigInt().Cmp(b) != 0 {
		return fmt.Errorf("int(%d) != big(%s)", x, b)
	}
	return nil
}

// checkHex compares the hex form s against big's, ignoring word padding.
func checkHex(s string, b *big.Int) error {
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimLeft(strings.TrimPrefix(strings.TrimPrefix(s, "-"), "0x"), "0")
	if digits == "" {
		digits = "0"
	}
	if neg {
		digits = "-" + digits
	}
	if digits != b.Text(16) {
		return fmt.Errorf("string %q != big(%s)", s, b.Text(16))
	}
	return nil
}

func TestFuzz(t *testing.T) {
	// fuzzOpsActive comes from the -num.fuzzop flag, in TestMain:
	var runFuzzOps = fuzzOpsActive

	// fuzzTypesActive comes from the -num.fuzztype flag, in TestMain:
	var runFuzzTypes = fuzzTypesActive

	var source = &rando{rng: globalRNG} // Classic rando!
	var totalFailures int

	var fuzzTypes []fuzzOps

	for _, fuzzType := range runFuzzTypes {
		switch fuzzType {
		case fuzzTypeUint8:
			fuzzTypes = append(fuzzTypes, &fuzzUint[uint8]{source: source})
		case fuzzTypeUint64:
			fuzzTypes = append(fuzzTypes, &fuzzUint[uint64]{source: source})
		case fuzzTypeInt8:
			fuzzTypes = append(fuzzTypes, &fuzzInt[int8, uint8]{source: source})
		case fuzzTypeInt64:
			fuzzTypes = append(fuzzTypes, &fuzzInt[int64, uint64]{source: source})
		default:
			panic("unknown fuzz type")
		}
	}

	for _, fuzzImpl := range fuzzTypes {
		var failures = make([]int, len(runFuzzOps))

		for opIdx, op := range runFuzzOps {
			for i := 0; i < fuzzIterations; i++ {
				source.Clear()

				var err error

				// NEWOP: add a new branch here in alphabetical order if a new
				// op is added.
				switch op {
				case fuzzAbs:
					err = fuzzImpl.Abs()
				case fuzzAdd:
					err = fuzzImpl.Add()
				case fuzzAnd:
					err = fuzzImpl.And()
				case fuzzBitLen:
					err = fuzzImpl.BitLen()
				case fuzzCmp:
					err = fuzzImpl.Cmp()
				case fuzzDec:
					err = fuzzImpl.Dec()
				case fuzzEqual:
					err = fuzzImpl.Equal()
				case fuzzGreaterOrEqualTo:
					err = fuzzImpl.GreaterOrEqualTo()
				case fuzzGreaterThan:
					err = fuzzImpl.GreaterThan()
				case fuzzInc:
					err = fuzzImpl.Inc()
				case fuzzLessOrEqualTo:
					err = fuzzImpl.LessOrEqualTo()
				case fuzzLessThan:
					err = fuzzImpl.LessThan()
				case fuzzLsh:
					err = fuzzImpl.Lsh()
				case fuzzMul:
					err = fuzzImpl.Mul()
				case fuzzNeg:
					err = fuzzImpl.Neg()
				case fuzzOr:
					err = fuzzImpl.Or()
				case fuzzQuo:
					err = fuzzImpl.Quo()
				case fuzzQuoRem:
					err = fuzzImpl.QuoRem()
				case fuzzRem:
					err = fuzzImpl.Rem()
				case fuzzRsh:
					err = fuzzImpl.Rsh()
				case fuzzString:
					err = fuzzImpl.String()
				case fuzzSub:
					err = fuzzImpl.Sub()
				case fuzzXor:
					err = fuzzImpl.Xor()
				default:
					panic(fmt.Errorf("unsupported op %q", op))
				}

				if err != nil {
					failures[opIdx]++
					t.Logf("%s: %s\n", op.Print(source.Operands()...), err)
				}
			}
		}

		for opIdx, cnt := range failures {
			if cnt > 0 {
				totalFailures += cnt
				t.Logf("impl %s, op %s: %d/%d failed", fuzzImpl.Name(), string(runFuzzOps[opIdx]), cnt, fuzzIterations)
			}
		}
	}

	if totalFailures > 0 {
		t.Fail()
	}
}

func (op fuzzOp) Print(operands ...*big.Int) string {
	// NEWOP: please add a human-readale format for your op here; this is used
	// for reporting errors and should show the operation, i.e. "2 + 2".
	//
	// It should be safe to assume the appropriate number of operands are set
	// in 'operands'; if not, it's a bug to be fixed elsewhere.
	switch op {
	case fuzzBitLen, fuzzString:
		s := strings.TrimRight(op.String(), "()")
		return fmt.Sprintf("%s(%d)", s, operands[0])

	case fuzzInc, fuzzDec:
		return fmt.Sprintf("%d%s", operands[0], op.String())

	case fuzzNeg:
		return fmt.Sprintf("%s%d", op.String(), operands[0])

	case fuzzAbs:
		return fmt.Sprintf("|%d|", operands[0])

	case fuzzAdd,
		fuzzAnd,
		fuzzLessOrEqualTo,
		fuzzLessThan,
		fuzzLsh,
		fuzzMul,
		fuzzOr,
		fuzzQuo,
		fuzzQuoRem,
		fuzzRem,
		fuzzRsh,
		fuzzXor,
		fuzzCmp,
		fuzzEqual,
		fuzzGreaterOrEqualTo,
		fuzzGreaterThan,
		fuzzSub:

		// simple binary case:
		return fmt.Sprintf("%d %s %d", operands[0], op.String(), operands[1])

	default:
		return string(op)
	}
}

func (op fuzzOp) String() string {
	// NEWOP: please add a short string representation of this op, as if
	// the operands were in a sum (if that's possible)
	switch op {
	case fuzzAbs:
		return "|x|"
	case fuzzAdd:
		return "+"
	case fuzzAnd:
		return "&"
	case fuzzBitLen:
		return "bitlen()"
	case fuzzCmp:
		return "<=>"
	case fuzzDec:
		return "--"
	case fuzzEqual:
		return "=="
	case fuzzGreaterThan:
		return ">"
	case fuzzGreaterOrEqualTo:
		return ">="
	case fuzzInc:
		return "++"
	case fuzzLessThan:
		return "<"
	case fuzzLessOrEqualTo:
		return "<="
	case fuzzLsh:
		return "<<"
	case fuzzMul:
		return "*"
	case fuzzNeg:
		return "-"
	case fuzzOr:
		return "|"
	case fuzzQuo:
		return "/"
	case fuzzQuoRem:
		return "/%"
	case fuzzRem:
		return "%"
	case fuzzRsh:
		return ">>"
	case fuzzString:
		return "string()"
	case fuzzSub:
		return "-"
	case fuzzXor:
		return "^"
	default:
		return string(op)
	}
}

type fuzzUint[W constraints.Unsigned] struct {
	source *rando
}

func (f fuzzUint[W]) Name() string { return fmt.Sprintf("uint/%d", WordBits[W]()) }

func (f fuzzUint[W]) operands() (b1, b2 *big.Int, u1, u2 Uint[W]) {
	b1, b2 = f.source.BigUx2()
	return b1, b2, accUintFromBigInt[W](b1), accUintFromBigInt[W](b2)
}

func (f fuzzUint[W]) Abs() error { return nil } // Always succeeds!
func (f fuzzUint[W]) Neg() error { return nil } // Not defined for unsigned

func (f fuzzUint[W]) Inc() error {
	b1 := f.source.BigU()
	u1 := accUintFromBigInt[W](b1)
	rb := new(big.Int).Add(b1, big1)
	return checkEqualUint(u1.Inc(), rb)
}

func (f fuzzUint[W]) Dec() error {
	b1 := f.source.BigU()
	u1 := accUintFromBigInt[W](b1)
	ru, err := u1.Dec()
	if b1.Cmp(big0) == 0 {
		if !errors.Is(err, ErrUnderflow) {
			return fmt.Errorf("expected underflow, found %v", err)
		}
		return nil
	}
	if err != nil {
		return err
	}
	return checkEqualUint(ru, new(big.Int).Sub(b1, big1))
}

func (f fuzzUint[W]) Add() error {
	b1, b2, u1, u2 := f.operands()
	return checkEqualUint(u1.Add(u2), new(big.Int).Add(b1, b2))
}

func (f fuzzUint[W]) Sub() error {
	b1, b2, u1, u2 := f.operands()
	ru, err := u1.Sub(u2)
	if b1.Cmp(b2) < 0 {
		if !errors.Is(err, ErrUnderflow) {
			return fmt.Errorf("expected underflow, found %v", err)
		}
		return nil
	}
	if err != nil {
		return err
	}
	return checkEqualUint(ru, new(big.Int).Sub(b1, b2))
}

func (f fuzzUint[W]) Mul() error {
	b1, b2, u1, u2 := f.operands()
	return checkEqualUint(u1.Mul(u2), new(big.Int).Mul(b1, b2))
}

func (f fuzzUint[W]) Quo() error {
	b1, b2, u1, u2 := f.operands()
	if b2.Cmp(big0) == 0 {
		return nil // Just skip this iteration, we know what happens!
	}
	ru, err := u1.Quo(u2)
	if err != nil {
		return err
	}
	return checkEqualUint(ru, new(big.Int).Quo(b1, b2))
}

func (f fuzzUint[W]) Rem() error {
	b1, b2, u1, u2 := f.operands()
	if b2.Cmp(big0) == 0 {
		return nil // Just skip this iteration, we know what happens!
	}
	ru, err := u1.Rem(u2)
	if err != nil {
		return err
	}
	return checkEqualUint(ru, new(big.Int).Rem(b1, b2))
}

func (f fuzzUint[W]) QuoRem() error {
	b1, b2, u1, u2 := f.operands()
	if b2.Cmp(big0) == 0 {
		return nil // Just skip this iteration, we know what happens!
	}

	rbq, rbr := new(big.Int).QuoRem(b1, b2, new(big.Int))
	ruq, rur, err := u1.QuoRem(u2)
	if err != nil {
		return err
	}
	if err := checkEqualUint(ruq, rbq); err != nil {
		return err
	}
	if err := checkEqualUint(rur, rbr); err != nil {
		return err
	}
	return nil
}

func (f fuzzUint[W]) Cmp() error {
	b1, b2, u1, u2 := f.operands()
	return checkEqualCmp(u1.Cmp(u2), b1.Cmp(b2))
}

func (f fuzzUint[W]) Equal() error {
	b1, b2, u1, u2 := f.operands()
	return checkEqualBool(u1.Equal(u2), b1.Cmp(b2) == 0)
}

func (f fuzzUint[W]) GreaterThan() error {
	b1, b2, u1, u2 := f.operands()
	return checkEqualBool(u1.GreaterThan(u2), b1.Cmp(b2) > 0)
}

func (f fuzzUint[W]) GreaterOrEqualTo() error {
	b1, b2, u1, u2 := f.operands()
	return checkEqualBool(u1.GreaterOrEqualTo(u2), b1.Cmp(b2) >= 0)
}

func (f fuzzUint[W]) LessThan() error {
	b1, b2, u1, u2 := f.operands()
	return checkEqualBool(u1.LessThan(u2), b1.Cmp(b2) < 0)
}

func (f fuzzUint[W]) LessOrEqualTo() error {
	b1, b2, u1, u2 := f.operands()
	return checkEqualBool(u1.LessOrEqualTo(u2), b1.Cmp(b2) <= 0)
}

func (f fuzzUint[W]) And() error {
	b1, b2, u1, u2 := f.operands()
	return checkEqualUint(u1.And(u2), new(big.Int).And(b1, b2))
}

func (f fuzzUint[W]) Or() error {
	b1, b2, u1, u2 := f.operands()
	return checkEqualUint(u1.Or(u2), new(big.Int).Or(b1, b2))
}

func (f fuzzUint[W]) Xor() error {
	b1, b2, u1, u2 := f.operands()
	return checkEqualUint(u1.Xor(u2), new(big.Int).Xor(b1, b2))
}

func (f fuzzUint[W]) Lsh() error {
	b1 := f.source.BigU()
	by := f.source.Uintn(fuzzMaxBits)
	u1 := accUintFromBigInt[W](b1)
	return checkEqualUint(u1.Lsh(by), new(big.Int).Lsh(b1, by))
}

func (f fuzzUint[W]) Rsh() error {
	b1 := f.source.BigU()
	by := f.source.Uintn(fuzzMaxBits + 16)
	u1 := accUintFromBigInt[W](b1)
	return checkEqualUint(u1.Rsh(by), new(big.Int).Rsh(b1, by))
}

func (f fuzzUint[W]) BitLen() error {
	b1 := f.source.BigU()
	u1 := accUintFromBigInt[W](b1)
	return checkEqualCmp(u1.BitLen(), b1.BitLen())
}

func (f fuzzUint[W]) String() error {
	b1 := f.source.BigU()
	u1 := accUintFromBigInt[W](b1)
	s := u1.String()
	if err := checkHex(s, b1); err != nil {
		return err
	}
	back, err := UintFromString[W](s)
	if err != nil {
		return err
	}
	return checkEqualUint(back, b1)
}

type fuzzInt[S constraints.Signed, U constraints.Unsigned] struct {
	source *rando
}

func (f fuzzInt[S, U]) Name() string { return fmt.Sprintf("int/%d", WordBits[S]()) }

func (f fuzzInt[S, U]) operands() (b1, b2 *big.Int, i1, i2 Int[S, U]) {
	b1, b2 = f.source.BigIx2()
	return b1, b2, IntFromBigInt[S, U](b1), IntFromBigInt[S, U](b2)
}

func (f fuzzInt[S, U]) Abs() error {
	b1 := f.source.BigI()
	i1 := IntFromBigInt[S, U](b1)
	return checkEqualSigned(i1.Abs(), new(big.Int).Abs(b1))
}

func (f fuzzInt[S, U]) Neg() error {
	b1 := f.source.BigI()
	i1 := IntFromBigInt[S, U](b1)
	return checkEqualSigned(i1.Neg(), new(big.Int).Neg(b1))
}

func (f fuzzInt[S, U]) Inc() error {
	b1 := f.source.BigI()
	i1 := IntFromBigInt[S, U](b1)
	return checkEqualSigned(i1.Inc(), new(big.Int).Add(b1, big1))
}

func (f fuzzInt[S, U]) Dec() error {
	b1 := f.source.BigI()
	i1 := IntFromBigInt[S, U](b1)
	return checkEqualSigned(i1.Dec(), new(big.Int).Sub(b1, big1))
}

func (f fuzzInt[S, U]) Add() error {
	b1, b2, i1, i2 := f.operands()
	return checkEqualSigned(i1.Add(i2), new(big.Int).Add(b1, b2))
}

func (f fuzzInt[S, U]) Sub() error {
	b1, b2, i1, i2 := f.operands()
	return checkEqualSigned(i1.Sub(i2), new(big.Int).Sub(b1, b2))
}

func (f fuzzInt[S, U]) Mul() error {
	b1, b2, i1, i2 := f.operands()
	return checkEqualSigned(i1.Mul(i2), new(big.Int).Mul(b1, b2))
}

func (f fuzzInt[S, U]) Quo() error {
	b1, b2, i1, i2 := f.operands()
	if b2.Cmp(big0) == 0 {
		return nil // Just skip this iteration, we know what happens!
	}
	ri, err := i1.Quo(i2)
	if err != nil {
		return err
	}
	return checkEqualSigned(ri, new(big.Int).Quo(b1, b2))
}

func (f fuzzInt[S, U]) Rem() error {
	b1, b2, i1, i2 := f.operands()
	if b2.Cmp(big0) == 0 {
		return nil // Just skip this iteration, we know what happens!
	}
	ri, err := i1.Rem(i2)
	if err != nil {
		return err
	}
	return checkEqualSigned(ri, new(big.Int).Rem(b1, b2))
}

func (f fuzzInt[S, U]) QuoRem() error {
	b1, b2, i1, i2 := f.operands()
	if b2.Cmp(big0) == 0 {
		return nil // Just skip this iteration, we know what happens!
	}

	rbq, rbr := new(big.Int).QuoRem(b1, b2, new(big.Int))
	riq, rir, err := i1.QuoRem(i2)
	if err != nil {
		return err
	}
	if err := checkEqualSigned(riq, rbq); err != nil {
		return err
	}
	if err := checkEqualSigned(rir, rbr); err != nil {
		return err
	}
	return nil
}

func (f fuzzInt[S, U]) Cmp() error {
	b1, b2, i1, i2 := f.operands()
	return checkEqualCmp(i1.Cmp(i2), b1.Cmp(b2))
}

func (f fuzzInt[S, U]) Equal() error {
	b1, b2, i1, i2 := f.operands()
	return checkEqualBool(i1.Equal(i2), b1.Cmp(b2) == 0)
}

func (f fuzzInt[S, U]) GreaterThan() error {
	b1, b2, i1, i2 := f.operands()
	return checkEqualBool(i1.GreaterThan(i2), b1.Cmp(b2) > 0)
}

func (f fuzzInt[S, U]) GreaterOrEqualTo() error {
	b1, b2, i1, i2 := f.operands()
	return checkEqualBool(i1.GreaterOrEqualTo(i2), b1.Cmp(b2) >= 0)
}

func (f fuzzInt[S, U]) LessThan() error {
	b1, b2, i1, i2 := f.operands()
	return checkEqualBool(i1.LessThan(i2), b1.Cmp(b2) < 0)
}

func (f fuzzInt[S, U]) LessOrEqualTo() error {
	b1, b2, i1, i2 := f.operands()
	return checkEqualBool(i1.LessOrEqualTo(i2), b1.Cmp(b2) <= 0)
}

// Bitwise ops and shifts are only defined for Uint.
func (f fuzzInt[S, U]) And() error    { return nil }
func (f fuzzInt[S, U]) Or() error     { return nil }
func (f fuzzInt[S, U]) Xor() error    { return nil }
func (f fuzzInt[S, U]) Lsh() error    { return nil }
func (f fuzzInt[S, U]) Rsh() error    { return nil }
func (f fuzzInt[S, U]) BitLen() error { return nil }

func (f fuzzInt[S, U]) String() error {
	b1 := f.source.BigI()
	i1 := IntFromBigInt[S, U](b1)
	s := i1.String()
	if err := checkHex(s, b1); err != nil {
		return err
	}
	back, err := IntFromString[S, U](s)
	if err != nil {
		return err
	}
	return checkEqualSigned(back, b1)
}
