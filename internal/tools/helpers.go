package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// maxArgLength bounds every string argument a tool accepts. Symbol names and
// glob patterns are short; anything longer is a confused caller.
const maxArgLength = 1024

// jsonResult serialises v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}
	return mcp.NewToolResultText(string(out)), nil
}

// withLengthCheck rejects requests carrying any string argument longer than
// maxArgLength before the wrapped handler runs.
func withLengthCheck(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		for key, value := range req.GetArguments() {
			s, ok := value.(string)
			if ok && len(s) > maxArgLength {
				return nil, fmt.Errorf("argument %q exceeds %d bytes", key, maxArgLength)
			}
		}
		return next(ctx, req)
	}
}
