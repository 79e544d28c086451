// Package parser drives the match and lexer rules over one loaded buffer.
//
// A Parser owns a cursor and a stack of bookmarks. Productions push a
// bookmark with StartSpan, consume input, and then either commit the consumed
// range with TakeTopSpan or roll the cursor back with DropSpan:
//
//	p.StartSpan()
//	if _, ok := p.TakeLit("#include"); !ok {
//		return nil, p.DropSpan()
//	}
//	...
//	n.Span = p.TakeTopSpan()
//
// Failing to match is an ordinary outcome reported with a false result.
// Misusing the bookmark stack is a programming error and panics.
package parser

import (
	"fmt"

	"github.com/dhamidi/clex/lexer"
	"github.com/dhamidi/clex/match"
	"github.com/dhamidi/clex/span"
)

type Option func(*Parser)

// WithFile names the buffer in positions reported by Position.
func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithFlatComments makes block comments end at the first */.
func WithFlatComments() Option {
	return func(p *Parser) {
		p.flatComments = true
	}
}

// Parser is not safe for concurrent use. The zero value is an empty parser;
// New applies options.
type Parser struct {
	file         string
	flatComments bool
	lex          *lexer.Lexer

	buf    []byte // loaded text followed by one NUL
	cursor int
	marks  []int

	lines *span.LineIndex
}

func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	if p.flatComments {
		p.lex = lexer.New(lexer.WithFlatComments())
	} else {
		p.lex = lexer.New()
	}
	p.Load(nil)
	return p
}

// Load copies text into the parser, replacing any trailing NUL bytes with a
// single terminator, and resets the cursor and the bookmark stack.
func (p *Parser) Load(text []byte) {
	n := len(text)
	for n > 0 && text[n-1] == 0 {
		n--
	}
	buf := make([]byte, n+1)
	copy(buf, text[:n])
	p.buf = buf
	p.lines = nil
	p.Reset()
}

// LoadString is Load for string input.
func (p *Parser) LoadString(text string) {
	p.Load([]byte(text))
}

// Reset moves the cursor to the start and clears the bookmark stack.
func (p *Parser) Reset() {
	p.cursor = 0
	p.marks = p.marks[:0]
}

func (p *Parser) File() string {
	return p.file
}

// Pos returns the cursor offset.
func (p *Parser) Pos() int {
	return p.cursor
}

// Len returns the length of the loaded text without the terminator.
func (p *Parser) Len() int {
	if len(p.buf) == 0 {
		return 0
	}
	return len(p.buf) - 1
}

// Source returns the loaded text without the terminator. The result aliases
// the parser's buffer.
func (p *Parser) Source() []byte {
	return p.buf[:p.Len()]
}

// AtEnd reports whether the cursor is at the terminator or at an embedded
// NUL byte.
func (p *Parser) AtEnd() bool {
	_, ok := match.EOF.Match(p.buf, p.cursor)
	return ok
}

// Text returns the loaded text covered by s.
func (p *Parser) Text(s span.Span) string {
	return s.Text(p.buf)
}

// Position converts an offset of the loaded text to a line and column.
func (p *Parser) Position(offset int) span.Position {
	if p.lines == nil {
		p.lines = span.NewLineIndex(p.file, p.Source())
	}
	return p.lines.Position(offset)
}

// Depth returns the number of bookmarks on the stack.
func (p *Parser) Depth() int {
	return len(p.marks)
}

// StartSpan pushes the cursor onto the bookmark stack.
func (p *Parser) StartSpan() {
	p.marks = append(p.marks, p.cursor)
}

func (p *Parser) top() int {
	if len(p.marks) == 0 {
		panic(ErrEmptyStack)
	}
	return p.marks[len(p.marks)-1]
}

func (p *Parser) pop() int {
	mark := p.top()
	p.marks = p.marks[:len(p.marks)-1]
	return mark
}

// TakeTopSpan pops the newest bookmark and returns the span from it to the
// cursor.
func (p *Parser) TakeTopSpan() span.Span {
	return span.New(p.pop(), p.cursor)
}

// TopSpan returns the span from the newest bookmark to the cursor without
// popping it.
func (p *Parser) TopSpan() span.Span {
	return span.New(p.top(), p.cursor)
}

// DropSpan pops the newest bookmark and moves the cursor back to it. It
// always returns false so productions can write
//
//	return span.Span{}, p.DropSpan()
func (p *Parser) DropSpan() bool {
	p.cursor = p.pop()
	return false
}

// KeepCursor pops the newest bookmark and leaves the cursor where it is.
func (p *Parser) KeepCursor() {
	p.pop()
}

// Take runs m at the cursor. On success the cursor moves past the match and
// the consumed span is returned. On failure the cursor does not move.
func (p *Parser) Take(m match.Matcher) (span.Span, bool) {
	end, ok := m.Match(p.buf, p.cursor)
	if !ok || end < p.cursor {
		return span.Span{}, false
	}
	return p.TakeRange(p.cursor, end), true
}

// TakeRange commits a match computed outside the parser. begin must equal
// the cursor and end must lie within the loaded text.
func (p *Parser) TakeRange(begin, end int) span.Span {
	if begin != p.cursor || end < begin || end > p.Len() {
		panic(fmt.Errorf("%w: [%d,%d) with cursor %d and length %d", ErrBadRange, begin, end, p.cursor, p.Len()))
	}
	p.cursor = end
	return span.New(begin, end)
}

// lookingAt reports whether the text at the cursor starts with s.
func (p *Parser) lookingAt(s string) bool {
	_, ok := match.Lit(s).Match(p.buf, p.cursor)
	return ok
}

func (p *Parser) classifier() *lexer.Lexer {
	if p.lex == nil {
		p.lex = lexer.New()
	}
	return p.lex
}
