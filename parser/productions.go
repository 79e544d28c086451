package parser

import (
	"github.com/dhamidi/clex/lexer"
	"github.com/dhamidi/clex/match"
	"github.com/dhamidi/clex/span"
)

// TakeLit takes text exactly. The empty literal never matches.
func (p *Parser) TakeLit(text string) (span.Span, bool) {
	return p.Take(match.Lit(text))
}

// TakeChar takes the single byte c.
func (p *Parser) TakeChar(c byte) (span.Span, bool) {
	return p.Take(match.Char(string([]byte{c})))
}

// TakeUntil takes bytes up to, and not including, the next c. It fails if
// end of input comes first or if fewer than min bytes would be taken.
func (p *Parser) TakeUntil(c byte, min int) (span.Span, bool) {
	p.StartSpan()
	for !p.AtEnd() && p.buf[p.cursor] != c {
		p.cursor++
	}
	if p.AtEnd() || p.TopSpan().Len() < min {
		return span.Span{}, p.DropSpan()
	}
	return p.TakeTopSpan(), true
}

// TakeDelimited takes prefix, then everything up to and including the first
// suffix. If escape is not empty, each occurrence of escape must start a
// valid escape sequence, and an escaped suffix does not end the span.
func (p *Parser) TakeDelimited(prefix, suffix, escape string) (span.Span, bool) {
	p.StartSpan()
	if _, ok := p.TakeLit(prefix); !ok {
		return span.Span{}, p.DropSpan()
	}
	for !p.AtEnd() {
		if escape != "" {
			if _, ok := p.TakeLit(escape); ok {
				if _, ok := p.Take(lexer.EscapeBody); !ok {
					return span.Span{}, p.DropSpan()
				}
				continue
			}
		}
		if _, ok := p.TakeLit(suffix); ok {
			return p.TakeTopSpan(), true
		}
		p.cursor++
	}
	return span.Span{}, p.DropSpan()
}

// TakeDigits takes one or more digits of base, which is 2, 8, 10 or 16.
func (p *Parser) TakeDigits(base int) (span.Span, bool) {
	s, n := p.scanDigits(base)
	if n == 0 {
		return span.Span{}, false
	}
	return p.TakeRange(s.Begin, s.End), true
}

// TakeDigitsN takes exactly n digits of base. A run of more than n digits
// does not match.
func (p *Parser) TakeDigitsN(base, n int) (span.Span, bool) {
	s, count := p.scanDigits(base)
	if count == 0 || count != n {
		return span.Span{}, false
	}
	return p.TakeRange(s.Begin, s.End), true
}

func (p *Parser) scanDigits(base int) (span.Span, int) {
	switch base {
	case 2, 8, 10, 16:
	default:
		return span.Span{}, 0
	}
	end := p.cursor
	for end < p.Len() && p.buf[end] != 0 {
		if _, ok := digitValue(p.buf[end], base); !ok {
			break
		}
		end++
	}
	return span.New(p.cursor, end), end - p.cursor
}

// TakeWS takes a run of whitespace, including line terminators.
func (p *Parser) TakeWS() (span.Span, bool) {
	return p.Take(lexer.WhiteSpace)
}

// TakeString takes a double-quoted string whose escapes are all valid.
func (p *Parser) TakeString() (span.Span, bool) {
	return p.TakeDelimited(`"`, `"`, `\`)
}

// TakeEscape takes one escape sequence including its backslash.
func (p *Parser) TakeEscape() (span.Span, bool) {
	return p.Take(lexer.Escape)
}

// TakeInt takes an integer literal. A leading '-' must be directly followed
// by the digits.
func (p *Parser) TakeInt() (span.Span, bool) {
	return p.Take(lexer.Int)
}

var identTail = match.Oneof{match.Range('a', 'z'), match.Range('A', 'Z'), match.Range('0', '9'), match.Char("_")}

// TakeIntValue takes an integer literal and decodes it. Literals that run
// into a letter, digit or underscore, and literals out of the 64-bit range,
// do not match and leave the cursor unchanged. Use ParseInt to learn why a
// literal was rejected.
func (p *Parser) TakeIntValue() (PInt, bool) {
	p.StartSpan()
	s, ok := p.TakeInt()
	if !ok {
		return PInt{}, p.DropSpan()
	}
	if _, ok := identTail.Match(p.buf, p.cursor); ok {
		return PInt{}, p.DropSpan()
	}
	v, err := p.ParseInt(s)
	if err != nil {
		return PInt{}, p.DropSpan()
	}
	p.KeepCursor()
	return v, true
}

// TakeIncludePath takes "path" or <path>.
func (p *Parser) TakeIncludePath() (span.Span, bool) {
	return p.Take(lexer.IncludePath)
}

// TakeBlockComment takes a /* */ comment. Comments nest unless the parser
// was created WithFlatComments. An unclosed comment does not match and
// leaves the cursor before the opening delimiter.
func (p *Parser) TakeBlockComment() (span.Span, bool) {
	p.StartSpan()
	if _, ok := p.TakeLit("/*"); !ok {
		return span.Span{}, p.DropSpan()
	}
	depth := 1
	for depth > 0 {
		switch {
		case p.AtEnd():
			return span.Span{}, p.DropSpan()
		case p.lookingAt("*/"):
			p.cursor += 2
			depth--
		case p.lookingAt("/*") && !p.flatComments:
			p.cursor += 2
			depth++
		default:
			p.cursor++
		}
	}
	return p.TakeTopSpan(), true
}

// TakePreproc takes an include directive such as
//
//	#include <stdio.h>
//
// and returns a KindPreprocInclude node with Keyword, Space and IncludePath
// children.
func (p *Parser) TakePreproc() (*Node, bool) {
	if !p.lookingAt("#") {
		return nil, false
	}
	p.StartSpan()
	kw, ok := p.TakeLit("#include")
	if !ok {
		return nil, p.DropSpan()
	}
	ws, ok := p.Take(lexer.Space)
	if !ok {
		return nil, p.DropSpan()
	}
	path, ok := p.TakeIncludePath()
	if !ok {
		return nil, p.DropSpan()
	}
	n := &Node{Kind: KindPreprocInclude}
	n.AddChild(&Node{Kind: KindKeyword, Span: kw})
	n.AddChild(&Node{Kind: KindSpace, Span: ws})
	n.AddChild(&Node{Kind: KindIncludePath, Span: path})
	n.Span = p.TakeTopSpan()
	return n, true
}

// TakeToken takes one token using the lexer's classification order and
// returns it as a node of the matching token kind. Block comments go through
// TakeBlockComment.
func (p *Parser) TakeToken() (*Node, bool) {
	tok, ok := p.classifier().Next(p.buf, p.cursor)
	if !ok || tok.Kind == lexer.KindEOF {
		return nil, false
	}
	if tok.Kind == lexer.KindBlockComment {
		s, ok := p.TakeBlockComment()
		if !ok {
			return nil, false
		}
		return &Node{Kind: KindBlockComment, Span: s}, true
	}
	s := p.TakeRange(tok.Span.Begin, tok.Span.End)
	return &Node{Kind: KindOf(tok.Kind), Span: s}, true
}

// TakeTranslationUnit takes the whole remaining input as include directives
// and tokens. If some part of the input cannot be tokenized nothing is taken.
func (p *Parser) TakeTranslationUnit() (*Node, bool) {
	p.StartSpan()
	unit := &Node{Kind: KindTranslationUnit}
	for !p.AtEnd() {
		if n, ok := p.TakePreproc(); ok {
			unit.AddChild(n)
			continue
		}
		n, ok := p.TakeToken()
		if !ok {
			return nil, p.DropSpan()
		}
		unit.AddChild(n)
	}
	unit.Span = p.TakeTopSpan()
	return unit, true
}
