package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/clex/lexer"
	"github.com/dhamidi/clex/span"
)

// Token types in legend order.
const (
	tokenComment = iota
	tokenString
	tokenNumber
	tokenMacro
	tokenOperator
	tokenVariable
)

var tokenTypes = []string{"comment", "string", "number", "macro", "operator", "variable"}

func semanticType(k lexer.Kind) (int, bool) {
	switch k {
	case lexer.KindLineComment, lexer.KindBlockComment:
		return tokenComment, true
	case lexer.KindString, lexer.KindRawString, lexer.KindChar:
		return tokenString, true
	case lexer.KindInt, lexer.KindFloat:
		return tokenNumber, true
	case lexer.KindPreproc:
		return tokenMacro, true
	case lexer.KindPunct:
		return tokenOperator, true
	case lexer.KindIdentifier:
		return tokenVariable, true
	}
	return 0, false
}

// SemanticTokens encodes the document's tokens in the relative form of
// textDocument/semanticTokens: five integers per token holding the line
// delta, the start delta, the length, the type and the modifiers. Tokens
// that span several lines are split at line ends.
func (d *Document) SemanticTokens() []protocol.UInteger {
	data := []protocol.UInteger{}
	prevLine, prevStart := 0, 0
	emit := func(s span.Span, typ int) {
		if s.Empty() {
			return
		}
		pos := d.Position(s.Begin)
		line, start := int(pos.Line), int(pos.Character)
		deltaStart := start
		if line == prevLine {
			deltaStart = start - prevStart
		}
		data = append(data,
			protocol.UInteger(line-prevLine),
			protocol.UInteger(deltaStart),
			protocol.UInteger(s.Len()),
			protocol.UInteger(typ),
			0,
		)
		prevLine, prevStart = line, start
	}
	for _, tok := range d.Tokens {
		typ, ok := semanticType(tok.Kind)
		if !ok {
			continue
		}
		begin := tok.Span.Begin
		for i := tok.Span.Begin; i < tok.Span.End; i++ {
			if d.Text[i] == '\n' {
				emit(span.New(begin, i), typ)
				begin = i + 1
			}
		}
		emit(span.New(begin, tok.Span.End), typ)
	}
	return data
}
