package match

import (
	"fmt"
	"strings"
)

// Char matches one byte contained in the string. The empty Char matches any
// single byte and fails only at end of input.
type Char string

// AnyChar matches any single byte before end of input.
const AnyChar = Char("")

func (c Char) Match(src []byte, pos int) (int, bool) {
	b, ok := at(src, pos)
	if !ok {
		return pos, false
	}
	if len(c) == 0 || strings.IndexByte(string(c), b) >= 0 {
		return pos + 1, true
	}
	return pos, false
}

// NotChar matches one byte that is not contained in the string. It is
// equivalent to Seq{Not(Char(s)), AnyChar} but cheaper.
type NotChar string

func (c NotChar) Match(src []byte, pos int) (int, bool) {
	b, ok := at(src, pos)
	if !ok || strings.IndexByte(string(c), b) >= 0 {
		return pos, false
	}
	return pos + 1, true
}

type byteRange struct {
	lo, hi byte
}

// Range matches one byte in [lo, hi].
func Range(lo, hi byte) Matcher {
	return byteRange{lo, hi}
}

func (r byteRange) Match(src []byte, pos int) (int, bool) {
	b, ok := at(src, pos)
	if !ok || b < r.lo || b > r.hi {
		return pos, false
	}
	return pos + 1, true
}

// Lit matches its text exactly. It never consumes a partial prefix and the
// empty Lit never matches.
type Lit string

func (l Lit) Match(src []byte, pos int) (int, bool) {
	if len(l) == 0 || !valid(src, pos) || len(src)-pos < len(l) {
		return pos, false
	}
	for i := 0; i < len(l); i++ {
		if src[pos+i] == 0 || src[pos+i] != l[i] {
			return pos, false
		}
	}
	return pos + len(l), true
}

// Table matches a fixed-width chunk against entries packed back to back in
// Entries, returning the first entry that matches in table order. Put longer
// or more specific entries first.
type Table struct {
	Width   int
	Entries string
}

// Digraphs packs two-byte entries, e.g. Digraphs("++--<=").
func Digraphs(entries string) Table {
	return newTable(2, entries)
}

// Trigraphs packs three-byte entries, e.g. Trigraphs("<<=>>=...").
func Trigraphs(entries string) Table {
	return newTable(3, entries)
}

func newTable(width int, entries string) Table {
	if len(entries)%width != 0 {
		panic(fmt.Sprintf("match: table of width %d has %d bytes", width, len(entries)))
	}
	return Table{Width: width, Entries: entries}
}

func (t Table) Match(src []byte, pos int) (int, bool) {
	if t.Width <= 0 || !valid(src, pos) || len(src)-pos < t.Width {
		return pos, false
	}
	chunk := src[pos : pos+t.Width]
	for i := 0; i+t.Width <= len(t.Entries); i += t.Width {
		if string(chunk) == t.Entries[i:i+t.Width] {
			return pos + t.Width, true
		}
	}
	return pos, false
}

type eof struct{}

// EOF succeeds without consuming input exactly at end of input.
var EOF Matcher = eof{}

func (eof) Match(src []byte, pos int) (int, bool) {
	if !valid(src, pos) {
		return pos, false
	}
	if pos == len(src) || src[pos] == 0 {
		return pos, true
	}
	return pos, false
}
