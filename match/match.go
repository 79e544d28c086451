// Package match implements a small algebra of composable byte matchers.
//
// A Matcher looks at a buffer at a given offset and either succeeds, returning
// the offset just past what it consumed, or fails. Failure is an ordinary
// outcome and carries no payload. Matchers hold no state and never modify the
// buffer, so any Matcher value is safe for concurrent use.
//
// End of input is the end of the slice or the first NUL byte, whichever comes
// first. Offsets outside [0, len(src)] are invalid and every matcher fails on
// them.
//
// Matchers are composed structurally:
//
//	digit := match.Range('0', '9')
//	number := match.Seq{match.Opt(match.Char("-")), match.Some(digit)}
//	number.Match([]byte("-42;"), 0) // 3, true
//
// Recursive grammars cannot be built as a finite value. They are written with
// Ref, which resolves a Matcher variable when the match runs, or with
// Grammar.Ref, which resolves a rule by name.
package match

// Matcher is implemented by every primitive and combinator.
type Matcher interface {
	// Match reports whether the matcher accepts src at pos. On success end is
	// the offset just past the consumed bytes, possibly equal to pos.
	Match(src []byte, pos int) (end int, ok bool)
}

// Func adapts an ordinary function to the Matcher interface.
type Func func(src []byte, pos int) (int, bool)

func (f Func) Match(src []byte, pos int) (int, bool) {
	return f(src, pos)
}

// Run matches m at the start of src and returns the end offset, or -1.
func Run(m Matcher, src []byte) int {
	end, ok := m.Match(src, 0)
	if !ok {
		return -1
	}
	return end
}

// String matches m at the start of s and returns the matched prefix.
func String(m Matcher, s string) (string, bool) {
	end, ok := m.Match([]byte(s), 0)
	if !ok {
		return "", false
	}
	return s[:end], true
}

// Full reports whether m consumes all of s.
func Full(m Matcher, s string) bool {
	end, ok := m.Match([]byte(s), 0)
	return ok && end == len(s)
}

func valid(src []byte, pos int) bool {
	return pos >= 0 && pos <= len(src)
}

// at returns the byte at pos, or false at end of input or on an invalid
// offset.
func at(src []byte, pos int) (byte, bool) {
	if pos < 0 || pos >= len(src) || src[pos] == 0 {
		return 0, false
	}
	return src[pos], true
}
