package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tender-barbarian/cscope-lens/internal/finder"
)

// databaseInfoHandler returns a handler for the database_info tool.
func databaseInfoHandler(f *finder.Finder) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(f.Info())
	}
}

// listFilesHandler returns a handler for the list_files tool. The file list
// comes from the database trailer, which is authoritative; the optional
// filter argument is a glob matched against each path.
func listFilesHandler(f *finder.Finder) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filter := req.GetString("filter", "")
		files, err := f.Files(filter)
		if err != nil {
			return nil, err
		}
		if files == nil {
			files = []string{}
		}
		return jsonResult(files)
	}
}

// getFileSymbolsHandler returns a handler for the get_file_symbols tool.
func getFileSymbolsHandler(f *finder.Finder) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := req.RequireString("file")
		if err != nil {
			return nil, err
		}
		refs, err := f.FileSymbols(path)
		if err != nil {
			return nil, fmt.Errorf("reading symbols: %w", err)
		}
		return jsonResult(refs)
	}
}
