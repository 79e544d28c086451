package lsp

import (
	"errors"
	"sort"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/clex/lexer"
	"github.com/dhamidi/clex/parser"
	"github.com/dhamidi/clex/span"
)

// Document is the analysis of one open text document.
type Document struct {
	URI     string
	Version int32
	Text    []byte
	Tokens  []lexer.Token
	Unit    *parser.Node // nil when the text cannot be tokenized
	Err     error

	lines *span.LineIndex
}

func analyze(uri string, version int32, text []byte, flat bool) *Document {
	doc := &Document{
		URI:     uri,
		Version: version,
		Text:    text,
		lines:   span.NewLineIndex(uri, text),
	}

	var lexOpts []lexer.Option
	parserOpts := []parser.Option{parser.WithFile(uri)}
	if flat {
		lexOpts = append(lexOpts, lexer.WithFlatComments())
		parserOpts = append(parserOpts, parser.WithFlatComments())
	}

	doc.Tokens, doc.Err = lexer.Tokenize(text, lexOpts...)

	p := parser.New(parserOpts...)
	p.Load(text)
	if unit, ok := p.TakeTranslationUnit(); ok {
		doc.Unit = unit
	}
	return doc
}

// Position converts a byte offset to an LSP position. Columns count bytes.
func (d *Document) Position(offset int) protocol.Position {
	pos := d.lines.Position(offset)
	return protocol.Position{
		Line:      protocol.UInteger(pos.Line - 1),
		Character: protocol.UInteger(pos.Column - 1),
	}
}

func (d *Document) Range(s span.Span) protocol.Range {
	return protocol.Range{Start: d.Position(s.Begin), End: d.Position(s.End)}
}

// Includes returns the include directives of the document.
func (d *Document) Includes() []*parser.Node {
	if d.Unit == nil {
		return nil
	}
	return d.Unit.ChildrenOfKind(parser.KindPreprocInclude)
}

// Symbols returns one symbol per include directive, named after the
// included path.
func (d *Document) Symbols() []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}
	for _, inc := range d.Includes() {
		path := inc.FirstChildOfKind(parser.KindIncludePath)
		if path == nil {
			continue
		}
		detail := "#include"
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           path.Text(d.Text),
			Detail:         &detail,
			Kind:           protocol.SymbolKindFile,
			Range:          d.Range(inc.Span),
			SelectionRange: d.Range(path.Span),
		})
	}
	return symbols
}

// Diagnostics reports the offset at which tokenizing stopped, if any.
func (d *Document) Diagnostics() []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if d.Err == nil {
		return diagnostics
	}
	offset := 0
	var lexErr *lexer.Error
	if errors.As(d.Err, &lexErr) {
		offset = lexErr.Offset
	}
	end := offset
	if end < len(d.Text) {
		end++
	}
	severity := protocol.DiagnosticSeverityError
	source := lsName
	diagnostics = append(diagnostics, protocol.Diagnostic{
		Range:    d.Range(span.New(offset, end)),
		Severity: &severity,
		Source:   &source,
		Message:  d.Err.Error(),
	})
	return diagnostics
}

// Store holds the open documents. It is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Document
	flat bool
}

func NewStore(flatComments bool) *Store {
	return &Store{
		docs: make(map[string]*Document),
		flat: flatComments,
	}
}

// Update analyzes text and stores it under uri.
func (s *Store) Update(uri string, version int32, text []byte) *Document {
	doc := analyze(uri, version, text, s.flat)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = doc
	return doc
}

func (s *Store) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

func (s *Store) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// URIs returns the URIs of the open documents in sorted order.
func (s *Store) URIs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	uris := make([]string, 0, len(s.docs))
	for uri := range s.docs {
		uris = append(uris, uri)
	}
	sort.Strings(uris)
	return uris
}
