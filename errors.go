package num

import "errors"

// Errors returned by this package wrap one of these sentinels; test for them
// with errors.Is.
var (
	// ErrOverflow is returned by the Checked* word functions when the true
	// result is not representable in the word's width. The extended types
	// never return it; they grow instead.
	ErrOverflow = errors.New("num: overflow")

	// ErrDivisionByZero is returned by any division or modulus by zero.
	ErrDivisionByZero = errors.New("num: division by zero")

	// ErrInvariant is returned when a literal word sequence is not in
	// canonical (trimmed) form.
	ErrInvariant = errors.New("num: non-canonical representation")

	// ErrSizeMismatch is returned when a value is too wide for the requested
	// native integer.
	ErrSizeMismatch = errors.New("num: size mismatch")

	// ErrUnderflow is returned when an unsigned result would be negative.
	ErrUnderflow = errors.New("num: unsigned underflow")

	// ErrSyntax is returned when parsing malformed text.
	ErrSyntax = errors.New("num: invalid syntax")
)
