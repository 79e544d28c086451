package parser

import "errors"

var (
	// ErrMalformedLiteral reports text that starts like a literal but is not
	// a valid one.
	ErrMalformedLiteral = errors.New("malformed literal")

	// ErrOverflow reports an integer literal outside the 64-bit range.
	ErrOverflow = errors.New("integer literal overflows 64 bits")

	// ErrEmptyStack is the panic value when a span is taken or dropped with
	// no bookmark on the stack.
	ErrEmptyStack = errors.New("parser: bookmark stack is empty")

	// ErrBadRange is the panic value of TakeRange for a range that does not
	// start at the cursor or does not fit the buffer.
	ErrBadRange = errors.New("parser: range does not start at the cursor")
)
