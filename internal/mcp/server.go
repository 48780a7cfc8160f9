package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/livebook/internal/book"
	"github.com/ziadkadry99/livebook/internal/site"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the book to AI agents.
type Server struct {
	store *book.Store
	index []site.SearchEntry
	mcp   *server.MCPServer
}

// NewServer creates a new MCP server over the given book.
func NewServer(store *book.Store) *Server {
	s := &Server{
		store: store,
		index: site.BuildSearchIndex(store),
	}

	s.mcp = server.NewMCPServer(
		"livebook",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(listChaptersTool, s.handleListChapters)
	s.mcp.AddTool(readChapterTool, s.handleReadChapter)
	s.mcp.AddTool(searchBookTool, s.handleSearchBook)
	s.mcp.AddTool(getNavigationTool, s.handleGetNavigation)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
