// Package lsp serves tokens, include directives and lexing errors of C-like
// source over the Language Server Protocol.
package lsp

import (
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "clex"

var log = commonlog.GetLogger("clex.lsp")

type Server struct {
	store   *Store
	handler protocol.Handler
	server  *server.Server
	version string
}

// NewServer returns a language server. flatComments makes /* */ comments
// non-nesting.
func NewServer(version string, flatComments bool) *Server {
	ls := &Server{
		store:   NewStore(flatComments),
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:                     ls.initialize,
		Initialized:                    ls.initialized,
		Shutdown:                       ls.shutdown,
		SetTrace:                       ls.setTrace,
		TextDocumentDidOpen:            ls.textDocumentDidOpen,
		TextDocumentDidChange:          ls.textDocumentDidChange,
		TextDocumentDidClose:           ls.textDocumentDidClose,
		TextDocumentDocumentSymbol:     ls.textDocumentDocumentSymbol,
		TextDocumentSemanticTokensFull: ls.textDocumentSemanticTokensFull,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

// Store returns the open documents.
func (ls *Server) Store() *Store {
	return ls.store
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}
	capabilities.DocumentSymbolProvider = true
	capabilities.SemanticTokensProvider = &protocol.SemanticTokensOptions{
		Legend: protocol.SemanticTokensLegend{
			TokenTypes:     tokenTypes,
			TokenModifiers: []string{},
		},
		Full: true,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("client initialized")
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := ls.store.Update(params.TextDocument.URI, params.TextDocument.Version, []byte(params.TextDocument.Text))
	log.Debugf("opened %s: %d tokens", doc.URI, len(doc.Tokens))
	ls.publish(ctx, doc)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	whole, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		log.Warningf("ignoring incremental change to %s", params.TextDocument.URI)
		return nil
	}
	doc := ls.store.Update(params.TextDocument.URI, params.TextDocument.Version, []byte(whole.Text))
	ls.publish(ctx, doc)
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.store.Close(params.TextDocument.URI)
	return nil
}

func (ls *Server) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc := ls.store.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	return doc.Symbols(), nil
}

func (ls *Server) textDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := ls.store.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	return &protocol.SemanticTokens{Data: doc.SemanticTokens()}, nil
}

func (ls *Server) publish(ctx *glsp.Context, doc *Document) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	diagnostics := doc.Diagnostics()
	if len(diagnostics) > 0 {
		log.Infof("%s: %s", doc.URI, doc.Err)
	}
	ctx.Notify(string(protocol.ServerTextDocumentPublishDiagnostics), protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Diagnostics: diagnostics,
	})
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
