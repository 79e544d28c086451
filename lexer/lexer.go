// Package lexer defines the lexical rules of C-like source text as
// compositions of match primitives and a classifier that splits a buffer
// into tokens.
//
// Every rule is an exported match.Matcher and can be used on its own:
//
//	end, ok := lexer.Int.Match([]byte("0x1Fu;"), 0) // 5, true
//
// Next tries the rules at one offset in a fixed priority order. Tokenize
// repeats Next until end of input.
package lexer

import (
	"errors"
	"fmt"

	"github.com/dhamidi/clex/match"
	"github.com/dhamidi/clex/span"
)

// ErrNoMatch is wrapped by *Error when no rule applies at some offset.
var ErrNoMatch = errors.New("no lexical rule matches")

// Error reports the offset at which tokenizing stopped.
type Error struct {
	Offset int
	Near   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %v near %q", e.Offset, ErrNoMatch, e.Near)
}

func (e *Error) Unwrap() error {
	return ErrNoMatch
}

type rule struct {
	kind Kind
	m    match.Matcher
}

// Lexer holds the rule table used by Next and Tokenize.
type Lexer struct {
	rules      []rule
	keepTrivia bool
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithFlatComments makes /* */ comments non-nesting, as in standard C.
func WithFlatComments() Option {
	return func(l *Lexer) {
		for i := range l.rules {
			if l.rules[i].kind == KindBlockComment {
				l.rules[i].m = FlatBlockComment
			}
		}
	}
}

// WithoutTrivia drops whitespace, splices and comments from Tokenize output.
func WithoutTrivia() Option {
	return func(l *Lexer) {
		l.keepTrivia = false
	}
}

// New returns a Lexer with the default rule order.
func New(opts ...Option) *Lexer {
	l := &Lexer{
		rules: []rule{
			{KindSplice, Splice},
			{KindPreproc, Preproc},
			{KindRawString, RawString},
			{KindFloat, Float},
			{KindSpace, Space},
			{KindNewline, Newline},
			{KindString, String},
			{KindLineComment, LineComment},
			// BlockComment is assigned by init, after package variables.
			{KindBlockComment, match.Ref(&BlockComment)},
			{KindIdentifier, Identifier},
			{KindInt, Int},
			{KindChar, CharLit},
			{KindPunct, Punct},
		},
		keepTrivia: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var std = New()

// Next classifies the token at pos using the default rules. At end of input
// it returns a zero-width KindEOF token.
func Next(src []byte, pos int) (Token, bool) {
	return std.Next(src, pos)
}

// Tokenize splits src with the default rules.
func Tokenize(src []byte, opts ...Option) ([]Token, error) {
	if len(opts) == 0 {
		return std.Tokenize(src)
	}
	return New(opts...).Tokenize(src)
}

// Next returns the token starting at pos. The first rule in priority order
// that matches a non-empty prefix wins.
func (l *Lexer) Next(src []byte, pos int) (Token, bool) {
	if _, ok := match.EOF.Match(src, pos); ok {
		return Token{Kind: KindEOF, Span: span.New(pos, pos)}, true
	}
	for _, r := range l.rules {
		if end, ok := r.m.Match(src, pos); ok && end > pos {
			return Token{Kind: r.kind, Span: span.New(pos, end)}, true
		}
	}
	return Token{}, false
}

// Tokenize returns the tokens of src up to, and not including, end of input.
// It stops at the first offset no rule matches and returns the tokens read so
// far together with an *Error.
func (l *Lexer) Tokenize(src []byte) ([]Token, error) {
	var tokens []Token
	pos := 0
	for {
		tok, ok := l.Next(src, pos)
		if !ok {
			return tokens, &Error{Offset: pos, Near: near(src, pos)}
		}
		if tok.Kind == KindEOF {
			return tokens, nil
		}
		if l.keepTrivia || !tok.Kind.IsTrivia() {
			tokens = append(tokens, tok)
		}
		pos = tok.Span.End
	}
}

func near(src []byte, pos int) string {
	end := pos + 16
	if end > len(src) {
		end = len(src)
	}
	if pos < 0 || pos > end {
		return ""
	}
	return string(src[pos:end])
}
