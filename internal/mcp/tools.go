package mcp

import "github.com/mark3labs/mcp-go/mcp"

var listChaptersTool = mcp.NewTool("list_chapters",
	mcp.WithDescription("List every chapter of the book in reading order with its path and description."),
)

var readChapterTool = mcp.NewTool("read_chapter",
	mcp.WithDescription("Read the full text of one chapter, including its outline."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Chapter path, for example /docs/preface"),
	),
)

var searchBookTool = mcp.NewTool("search_book",
	mcp.WithDescription("Search chapter titles, descriptions and text. Returns the best matching chapters."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Words to look for"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 5)"),
	),
)

var getNavigationTool = mcp.NewTool("get_navigation",
	mcp.WithDescription("Get the sidebar navigation tree of the book as an indented list."),
)
