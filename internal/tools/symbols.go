package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tender-barbarian/cscope-lens/internal/finder"
	"github.com/tender-barbarian/cscope-lens/internal/symtab"
)

// findSymbolHandler returns a handler for the find_symbol tool. It searches
// every name-bearing occurrence in the database body, with an optional kind
// filter and exact/prefix/contains match modes.
func findSymbolHandler(f *finder.Finder) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return nil, err
		}
		kind := symtab.SymbolKind(req.GetString("kind", ""))
		match := finder.MatchMode(req.GetString("match", string(finder.MatchExact)))

		refs := f.FindSymbol(name, match, kind)
		if refs == nil {
			refs = []symtab.SymbolRef{}
		}
		return jsonResult(refs)
	}
}
