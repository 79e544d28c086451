package lexer

import (
	"fmt"

	"github.com/dhamidi/clex/span"
)

type Kind int

const (
	KindError Kind = iota
	KindEOF
	KindSplice
	KindPreproc
	KindRawString
	KindFloat
	KindSpace
	KindNewline
	KindString
	KindLineComment
	KindBlockComment
	KindIdentifier
	KindInt
	KindChar
	KindPunct
)

var kindNames = map[Kind]string{
	KindError:        "Error",
	KindEOF:          "EOF",
	KindSplice:       "Splice",
	KindPreproc:      "Preproc",
	KindRawString:    "RawString",
	KindFloat:        "Float",
	KindSpace:        "Space",
	KindNewline:      "Newline",
	KindString:       "String",
	KindLineComment:  "LineComment",
	KindBlockComment: "BlockComment",
	KindIdentifier:   "Identifier",
	KindInt:          "Int",
	KindChar:         "Char",
	KindPunct:        "Punct",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsTrivia reports whether tokens of kind k carry no meaning for a parser.
func (k Kind) IsTrivia() bool {
	switch k {
	case KindSpace, KindNewline, KindSplice, KindLineComment, KindBlockComment:
		return true
	}
	return false
}

// Kinds returns every token kind except KindError and KindEOF, in
// classification order.
func Kinds() []Kind {
	return []Kind{
		KindSplice, KindPreproc, KindRawString, KindFloat, KindSpace,
		KindNewline, KindString, KindLineComment, KindBlockComment,
		KindIdentifier, KindInt, KindChar, KindPunct,
	}
}

type Token struct {
	Kind Kind
	Span span.Span
}

// Text returns the token text within src.
func (t Token) Text(src []byte) string {
	return t.Span.Text(src)
}

func (t Token) String() string {
	return fmt.Sprintf("%s%s", t.Kind, t.Span)
}
