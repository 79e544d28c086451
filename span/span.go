// Package span provides half-open byte ranges over an immutable source
// buffer and the conversion of byte offsets to line/column positions.
package span

import (
	"errors"
	"fmt"
)

// ErrNotAdjacent is the panic value of Cat when the two spans do not touch.
var ErrNotAdjacent = errors.New("span: concatenation of non-adjacent spans")

// Span is the half-open range [Begin, End) of a buffer.
type Span struct {
	Begin int
	End   int
}

// New returns the span [begin, end). It panics if end < begin.
func New(begin, end int) Span {
	if end < begin {
		panic(fmt.Sprintf("span: end %d before begin %d", end, begin))
	}
	return Span{Begin: begin, End: end}
}

func (s Span) Len() int {
	return s.End - s.Begin
}

func (s Span) Empty() bool {
	return s.End == s.Begin
}

// Valid reports whether s is well formed and lies within a buffer of n bytes.
func (s Span) Valid(n int) bool {
	return s.Begin >= 0 && s.Begin <= s.End && s.End <= n
}

// Bytes returns the bytes of src covered by s. The result aliases src.
func (s Span) Bytes(src []byte) []byte {
	return src[s.Begin:s.End]
}

// Text returns the covered bytes of src as a string.
func (s Span) Text(src []byte) string {
	return string(src[s.Begin:s.End])
}

// Equal reports whether the text of s in src is exactly text.
func (s Span) Equal(src []byte, text string) bool {
	return s.Len() == len(text) && string(src[s.Begin:s.End]) == text
}

// Contains reports whether offset lies inside s.
func (s Span) Contains(offset int) bool {
	return offset >= s.Begin && offset < s.End
}

// Cat joins two adjacent spans. Joining spans that do not touch is a
// programming error and panics with ErrNotAdjacent.
func Cat(a, b Span) Span {
	if a.End != b.Begin {
		panic(fmt.Errorf("%w: [%d,%d) + [%d,%d)", ErrNotAdjacent, a.Begin, a.End, b.Begin, b.End))
	}
	return Span{Begin: a.Begin, End: b.End}
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Begin, s.End)
}
