package grammar

import (
	"errors"
	"fmt"

	"github.com/dhamidi/clex/span"
)

// ErrNoToken is wrapped by *TokenError when no token production matches.
var ErrNoToken = errors.New("no token production matches")

// Token is a span matched by the named token production.
type Token struct {
	Rule string
	Span span.Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s%s", t.Rule, t.Span)
}

// TokenError reports the offset at which Tokenize stopped.
type TokenError struct {
	Offset int
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Offset, ErrNoToken)
}

func (e *TokenError) Unwrap() error {
	return ErrNoToken
}

// TokenRules returns the token productions in sorted order: every
// production whose name starts with an upper case letter, except the start
// production.
func (g *Grammar) TokenRules() []string {
	var names []string
	for _, name := range g.Names() {
		if name != g.start && !IsLexical(name) {
			names = append(names, name)
		}
	}
	return names
}

// Next returns the longest token at pos. When two token productions match
// the same length, the one that sorts first wins. A production that
// matches the empty string never produces a token.
func (g *Grammar) Next(src []byte, pos int) (Token, bool) {
	if pos < 0 || pos > len(src) {
		return Token{}, false
	}
	return g.next(g.TokenRules(), src, pos)
}

// Tokenize splits src into tokens with Next. It stops at the first offset
// where no token matches and returns the tokens read so far together with a
// *TokenError.
func (g *Grammar) Tokenize(src []byte) ([]Token, error) {
	rules := g.TokenRules()
	var tokens []Token
	pos := 0
	for pos < len(src) && src[pos] != 0 {
		tok, ok := g.next(rules, src, pos)
		if !ok {
			return tokens, &TokenError{Offset: pos}
		}
		tokens = append(tokens, tok)
		pos = tok.Span.End
	}
	return tokens, nil
}

func (g *Grammar) next(rules []string, src []byte, pos int) (Token, bool) {
	best := Token{Span: span.New(pos, pos)}
	for _, name := range rules {
		end, ok := g.rules.Match(name, src, pos)
		if ok && end > best.Span.End {
			best = Token{Rule: name, Span: span.New(pos, end)}
		}
	}
	return best, best.Span.End > pos
}
