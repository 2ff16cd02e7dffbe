package num

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// String returns u in hex, most significant word first, each word padded to
// its full width, e.g. "0x0100" for 256 with 8-bit words.
func (u Uint[W]) String() string {
	return "0x" + hexWords(u.digits())
}

// String returns x in the same form as Uint.String. Negative values are
// written as "-" followed by their negation, e.g. "-0x01".
func (x Int[S, U]) String() string {
	if x.root < 0 {
		return "-" + x.Neg().String()
	}
	if x.root == 0 && len(x.ext) > 0 {
		return "0x" + hexWords(x.ext)
	}
	words := make([]U, len(x.ext)+1)
	copy(words, x.ext)
	words[len(x.ext)] = U(x.root)
	return "0x" + hexWords(words)
}

func hexWords[W constraints.Unsigned](words []W) string {
	width := int(WordBits[W]() / 4)
	var sb strings.Builder
	sb.Grow(len(words) * width)
	for i := len(words) - 1; i >= 0; i-- {
		s := strconv.FormatUint(uint64(words[i]), 16)
		for pad := width - len(s); pad > 0; pad-- {
			sb.WriteByte('0')
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// Format implements fmt.Formatter. %v and %s produce String(); the integer
// verbs are handed to math/big.
func (u Uint[W]) Format(s fmt.State, c rune) {
	switch c {
	case 'v', 's':
		_, _ = io.WriteString(s, u.String())
	default:
		u.AsBigInt().Format(s, c)
	}
}

// Format implements fmt.Formatter; see Uint.Format.
func (x Int[S, U]) Format(s fmt.State, c rune) {
	switch c {
	case 'v', 's':
		_, _ = io.WriteString(s, x.String())
	default:
		x.AsBigInt().Format(s, c)
	}
}

// UintFromString parses the hex form produced by Uint.String. The "0x"
// prefix is required; the number of digits need not be a multiple of the
// word width, and leading zeros are trimmed.
func UintFromString[W constraints.Unsigned](s string) (out Uint[W], err error) {
	digits, ok := strings.CutPrefix(s, "0x")
	if !ok {
		digits, ok = strings.CutPrefix(s, "0X")
	}
	if !ok || digits == "" {
		return out, fmt.Errorf("num: uint string %q: %w", s, ErrSyntax)
	}

	wbits := WordBits[W]()
	width := int(wbits / 4)
	words := make([]W, 0, len(digits)/width+1)
	for end := len(digits); end > 0; end -= width {
		chunk := digits[max(end-width, 0):end]
		v, err := strconv.ParseUint(chunk, 16, int(wbits))
		if err != nil {
			return out, fmt.Errorf("num: uint string %q: %w", s, ErrSyntax)
		}
		words = append(words, W(v))
	}
	return Uint[W]{words: trimWords(words)}, nil
}

// IntFromString parses the form produced by Int.String: an optional "-"
// followed by the hex magnitude.
func IntFromString[S constraints.Signed, U constraints.Unsigned](s string) (out Int[S, U], err error) {
	digits, neg := strings.CutPrefix(s, "-")
	m, err := UintFromString[U](digits)
	if err != nil {
		return out, fmt.Errorf("num: int string %q: %w", s, err)
	}
	return IntFromMagnitude[S](m, neg), nil
}

func (u Uint[W]) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint[W]) UnmarshalText(bts []byte) (err error) {
	v, err := UintFromString[W](string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Uint[W]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *Uint[W]) UnmarshalJSON(bts []byte) (err error) {
	s, err := unquoteJSON(bts)
	if err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}

func (x Int[S, U]) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Int[S, U]) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString[S, U](string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Int[S, U]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

func (x *Int[S, U]) UnmarshalJSON(bts []byte) (err error) {
	s, err := unquoteJSON(bts)
	if err != nil {
		return err
	}
	return x.UnmarshalText([]byte(s))
}

func unquoteJSON(bts []byte) (string, error) {
	ln := len(bts)
	if ln < 2 || bts[0] != '"' || bts[ln-1] != '"' {
		return "", fmt.Errorf("num: invalid JSON %q: %w", string(bts), ErrSyntax)
	}
	return string(bts[1 : ln-1]), nil
}
