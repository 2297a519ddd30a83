package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tender-barbarian/cscope-lens/internal/finder"
	"github.com/tender-barbarian/cscope-lens/internal/symtab"
)

// listFunctionsHandler returns a handler for the list_functions tool. Records
// keep database order: grouped by defining file, line-ascending within one.
func listFunctionsHandler(f *finder.Finder) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		pattern := req.GetString("file", "")
		funcs, err := f.Functions(pattern)
		if err != nil {
			return nil, err
		}
		if funcs == nil {
			funcs = []symtab.FunctionRecord{}
		}
		return jsonResult(funcs)
	}
}
