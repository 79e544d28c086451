// Package render prints tokens, parse trees and match results with ANSI
// colors.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/dhamidi/clex/lexer"
	"github.com/dhamidi/clex/parser"
	"github.com/dhamidi/clex/span"
)

type sprinter interface {
	Sprint(a ...interface{}) string
}

type plain struct{}

func (plain) Sprint(a ...interface{}) string {
	return fmt.Sprint(a...)
}

// Printer writes colored output to w. Colors are chosen per token kind.
type Printer struct {
	w      io.Writer
	colors []*color.Color

	keyword sprinter
	comment sprinter
	literal sprinter
	number  sprinter
	punct   sprinter
	text    sprinter
	failed  sprinter
	faint   sprinter
	matched sprinter
}

// New returns a Printer writing to w. when is "always", "never" or "auto";
// auto follows color.NoColor, which is set when stdout is not a terminal.
func New(w io.Writer, when string) *Printer {
	cyan := color.New(color.FgCyan)
	gray := color.New(color.FgHiBlack)
	yellow := color.New(color.FgYellow)
	blue := color.New(color.FgBlue)
	magenta := color.New(color.FgMagenta)
	red := color.New(color.FgRed, color.Bold)
	faint := color.New(color.Faint)
	green := color.New(color.FgGreen)

	p := &Printer{
		w:       w,
		keyword: cyan,
		comment: gray,
		literal: yellow,
		number:  blue,
		punct:   magenta,
		text:    plain{},
		failed:  red,
		faint:   faint,
		matched: green,
	}
	p.colors = []*color.Color{cyan, gray, yellow, blue, magenta, red, faint, green}

	switch strings.ToLower(when) {
	case "always":
		p.enable()
	case "never":
		p.disable()
	default:
		p.auto()
	}
	return p
}

func (p *Printer) auto() {
	for _, c := range p.colors {
		if color.NoColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
}

func (p *Printer) enable() {
	for _, c := range p.colors {
		c.EnableColor()
	}
}

func (p *Printer) disable() {
	for _, c := range p.colors {
		c.DisableColor()
	}
}

func (p *Printer) forToken(k lexer.Kind) sprinter {
	return p.forNode(parser.KindOf(k))
}

func (p *Printer) forNode(k parser.Kind) sprinter {
	switch k {
	case parser.KindPreproc, parser.KindKeyword, parser.KindPreprocInclude:
		return p.keyword
	case parser.KindLineComment, parser.KindBlockComment:
		return p.comment
	case parser.KindString, parser.KindRawString, parser.KindChar, parser.KindIncludePath:
		return p.literal
	case parser.KindInt, parser.KindFloat:
		return p.number
	case parser.KindPunct:
		return p.punct
	case parser.KindError:
		return p.failed
	}
	return p.text
}

// Span returns the text of s colored for a token of kind k.
func (p *Printer) Span(src []byte, s span.Span, k lexer.Kind) string {
	return p.forToken(k).Sprint(s.Text(src))
}

// Token writes one line: the span, the kind and the quoted token text.
func (p *Printer) Token(src []byte, tok lexer.Token) error {
	_, err := fmt.Fprintf(p.w, "%-12s %-12s %s\n", tok.Span, tok.Kind, p.forToken(tok.Kind).Sprint(strconv.Quote(tok.Text(src))))
	return err
}

// Tokens writes every token with Token.
func (p *Printer) Tokens(src []byte, tokens []lexer.Token) error {
	for _, tok := range tokens {
		if err := p.Token(src, tok); err != nil {
			return err
		}
	}
	return nil
}

// Source writes src with every token colored in place. Bytes not covered by
// a token are written as they are.
func (p *Printer) Source(src []byte, tokens []lexer.Token) error {
	var b strings.Builder
	pos := 0
	for _, tok := range tokens {
		if tok.Span.Begin > pos {
			b.Write(src[pos:tok.Span.Begin])
		}
		b.WriteString(p.Span(src, tok.Span, tok.Kind))
		pos = tok.Span.End
	}
	if pos < len(src) {
		b.Write(src[pos:])
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

// Node writes the tree under n, one node per line, children indented below
// their parent.
func (p *Printer) Node(src []byte, n *parser.Node) error {
	var b strings.Builder
	p.node(&b, src, n, 0)
	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *Printer) node(b *strings.Builder, src []byte, n *parser.Node, depth int) {
	fmt.Fprintf(b, "%s%s %s %s\n",
		strings.Repeat("  ", depth),
		n.Kind,
		n.Span,
		p.forNode(n.Kind).Sprint(strconv.Quote(n.Text(src))))
	for _, child := range n.Children {
		p.node(b, src, child, depth+1)
	}
}

// Match writes the outcome of running a matcher over src: the consumed
// prefix in green followed by the rest faint, or all of src in red when
// nothing matched.
func (p *Printer) Match(src []byte, end int, ok bool) error {
	if !ok || end < 0 || end > len(src) {
		_, err := fmt.Fprintf(p.w, "%s (no match)\n", p.failed.Sprint(string(src)))
		return err
	}
	_, err := fmt.Fprintf(p.w, "%s%s\n", p.matched.Sprint(string(src[:end])), p.faint.Sprint(string(src[end:])))
	return err
}

// Status writes [OK] in green or [FAIL] in red, followed by msg.
func (p *Printer) Status(ok bool, msg string) error {
	tag := p.matched.Sprint("[OK]  ")
	if !ok {
		tag = p.failed.Sprint("[FAIL]")
	}
	_, err := fmt.Fprintf(p.w, "%s %s\n", tag, msg)
	return err
}
