package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/livebook/internal/book"
	"github.com/ziadkadry99/livebook/internal/markup"
	"github.com/ziadkadry99/livebook/internal/site"
)

const defaultSearchLimit = 5

func (s *Server) handleListChapters(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chapters := s.store.Chapters()

	title := s.store.Title()
	if title == "" {
		title = "The book"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s has %d chapter(s):\n\n", title, len(chapters))
	for i, c := range chapters {
		fmt.Fprintf(&sb, "%d. %s (%s)\n", i+1, c.Title, c.Path)
		if c.Description != "" {
			fmt.Fprintf(&sb, "   %s\n", c.Description)
		}
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleReadChapter(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	c, err := s.store.Resolve(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf(
			"No chapter at %q. Use list_chapters to see the available paths.", path,
		)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", c.Title)
	if c.Description != "" {
		fmt.Fprintf(&sb, "\n%s\n", c.Description)
	}
	if len(c.Outline) > 0 {
		sb.WriteString("\nOn this page:\n")
		for _, e := range c.Outline {
			indent := ""
			if e.Level > 2 {
				indent = strings.Repeat("  ", e.Level-2)
			}
			fmt.Fprintf(&sb, "%s- %s (#%s)\n", indent, e.Text, e.ID)
		}
	}
	sb.WriteString("\n")
	sb.WriteString(markup.PlainText(c.Content))
	sb.WriteString("\n")
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleSearchBook(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", defaultSearchLimit)
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	results := site.Search(s.index, query, limit)
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No chapters match %q.", query)), nil
	}
	return mcp.NewToolResultText(formatSearchResults(results)), nil
}

func (s *Server) handleGetNavigation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	writeNav(&sb, s.store.Navigation(), 0)
	if sb.Len() == 0 {
		return mcp.NewToolResultText("The book has no navigation entries."), nil
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func writeNav(sb *strings.Builder, nodes []book.NavNode, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, node := range nodes {
		switch n := node.(type) {
		case book.Branch:
			fmt.Fprintf(sb, "%s- %s\n", indent, n.Title)
			writeNav(sb, n.Children, depth+1)
		case book.Leaf:
			fmt.Fprintf(sb, "%s- %s (%s)\n", indent, n.Title, n.Path)
		case book.Inert:
			fmt.Fprintf(sb, "%s- %s\n", indent, n.Title)
		}
	}
}

// formatSearchResults renders matches as plain text for agent consumption.
func formatSearchResults(results []site.SearchEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d result(s):\n", len(results))

	for i, r := range results {
		fmt.Fprintf(&sb, "\n--- Result %d ---\n", i+1)
		fmt.Fprintf(&sb, "Chapter: %s\n", r.Title)
		fmt.Fprintf(&sb, "Path: %s\n", r.Path)
		if r.Summary != "" {
			fmt.Fprintf(&sb, "Summary: %s\n", r.Summary)
		}
		if r.Content != "" {
			sb.WriteString("\n")
			sb.WriteString(excerpt(r.Content, 300))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// excerpt shortens text to about n bytes, cutting at a word boundary.
func excerpt(text string, n int) string {
	if len(text) <= n {
		return text
	}
	cut := strings.LastIndex(text[:n], " ")
	if cut <= 0 {
		cut = n
		for cut > 0 && text[cut]&0xC0 == 0x80 {
			cut--
		}
	}
	return text[:cut] + "..."
}
