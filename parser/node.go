package parser

import (
	"strconv"
	"strings"

	"github.com/dhamidi/clex/lexer"
	"github.com/dhamidi/clex/span"
)

type Kind int

const (
	KindError Kind = iota

	// Structure
	KindTranslationUnit
	KindPreprocInclude
	KindKeyword
	KindIncludePath

	// Tokens
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
	KindError:           "Error",
	KindTranslationUnit: "TranslationUnit",
	KindPreprocInclude:  "PreprocInclude",
	KindKeyword:         "Keyword",
	KindIncludePath:     "IncludePath",
	KindSplice:          "Splice",
	KindPreproc:         "Preproc",
	KindRawString:       "RawString",
	KindFloat:           "Float",
	KindSpace:           "Space",
	KindNewline:         "Newline",
	KindString:          "String",
	KindLineComment:     "LineComment",
	KindBlockComment:    "BlockComment",
	KindIdentifier:      "Identifier",
	KindInt:             "Int",
	KindChar:            "Char",
	KindPunct:           "Punct",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

var tokenKinds = map[lexer.Kind]Kind{
	lexer.KindSplice:       KindSplice,
	lexer.KindPreproc:      KindPreproc,
	lexer.KindRawString:    KindRawString,
	lexer.KindFloat:        KindFloat,
	lexer.KindSpace:        KindSpace,
	lexer.KindNewline:      KindNewline,
	lexer.KindString:       KindString,
	lexer.KindLineComment:  KindLineComment,
	lexer.KindBlockComment: KindBlockComment,
	lexer.KindIdentifier:   KindIdentifier,
	lexer.KindInt:          KindInt,
	lexer.KindChar:         KindChar,
	lexer.KindPunct:        KindPunct,
}

// KindOf returns the node kind for a lexer token kind, or KindError.
func KindOf(k lexer.Kind) Kind {
	if kind, ok := tokenKinds[k]; ok {
		return kind
	}
	return KindError
}

// Node is a parse tree node. A node owns its Children; Parent, Prev and Next
// are set by AddChild.
type Node struct {
	Kind     Kind
	Span     span.Span
	Children []*Node

	Parent *Node
	Prev   *Node
	Next   *Node
}

func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	child.Parent = n
	child.Next = nil
	child.Prev = nil
	if len(n.Children) > 0 {
		last := n.Children[len(n.Children)-1]
		last.Next = child
		child.Prev = last
	}
	n.Children = append(n.Children, child)
}

func (n *Node) FirstChildOfKind(kind Kind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind Kind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// Walk calls fn for n and its descendants in source order. Returning false
// from fn skips the children of that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Text returns the source text covered by the node.
func (n *Node) Text(src []byte) string {
	return n.Span.Text(src)
}

func (n *Node) String() string {
	var b strings.Builder
	n.dump(&b, nil, 0)
	return b.String()
}

// Dump is String with the quoted source text of every node.
func (n *Node) Dump(src []byte) string {
	var b strings.Builder
	n.dump(&b, src, 0)
	return b.String()
}

func (n *Node) dump(b *strings.Builder, src []byte, indent int) {
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString(n.Kind.String())
	b.WriteString(" ")
	b.WriteString(n.Span.String())
	if src != nil && n.Span.Valid(len(src)) {
		b.WriteString(" ")
		b.WriteString(strconv.Quote(n.Text(src)))
	}
	b.WriteString("\n")
	for _, child := range n.Children {
		child.dump(b, src, indent+1)
	}
}
