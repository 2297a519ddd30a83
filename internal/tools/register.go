package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tender-barbarian/cscope-lens/internal/finder"
)

// Register wires all database-query MCP tools to s. Each tool delegates to f
// for querying the indexed cscope database.
func Register(s *server.MCPServer, f *finder.Finder) {
	s.AddTool(mcp.NewTool("database_info",
		mcp.WithDescription("Returns the cscope database header fields and index statistics."),
	), withLengthCheck(databaseInfoHandler(f)))

	s.AddTool(mcp.NewTool("list_files",
		mcp.WithDescription("Lists the source files the database covers, in database order."),
		mcp.WithString("filter", mcp.Description("Optional glob filter on file path")),
	), withLengthCheck(listFilesHandler(f)))

	s.AddTool(mcp.NewTool("list_functions",
		mcp.WithDescription("Lists function definitions (name, file, line, signature) in database order."),
		mcp.WithString("file", mcp.Description("Optional glob filter on the defining file path")),
	), withLengthCheck(listFunctionsHandler(f)))

	s.AddTool(mcp.NewTool("find_symbol",
		mcp.WithDescription("Searches symbol occurrences by name across the whole database."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Symbol name")),
		mcp.WithString("kind", mcp.Description("Filter by kind: func, call, macro, include, global, local, member, param, struct, enum, union, typedef, class, assign, other (empty = all)")),
		mcp.WithString("match", mcp.Description(`Match mode: "exact" (default), "prefix", or "contains"`)),
	), withLengthCheck(findSymbolHandler(f)))

	s.AddTool(mcp.NewTool("get_file_symbols",
		mcp.WithDescription("Returns every symbol occurrence recorded for one source file."),
		mcp.WithString("file", mcp.Required(), mcp.Description("File path as listed by list_files")),
	), withLengthCheck(getFileSymbolsHandler(f)))
}
