package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLengthCheck(t *testing.T) {
	handler := withLengthCheck(func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("ok"), nil
	})

	tests := []struct {
		name        string
		args        map[string]any
		expectedErr bool
	}{
		{
			name: "short string passes through",
			args: map[string]any{"q": "helper"},
		},
		{
			name: "string at exact limit passes through",
			args: map[string]any{"q": strings.Repeat("a", maxArgLength)},
		},
		{
			name:        "oversized string rejected",
			args:        map[string]any{"q": strings.Repeat("a", maxArgLength+1)},
			expectedErr: true,
		},
		{
			name: "non-string arguments ignored",
			args: map[string]any{"n": 12345, "b": true},
		},
		{
			name: "no arguments",
			args: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: tt.args}}
			resp, err := handler(context.Background(), req)
			if tt.expectedErr {
				assert.ErrorContains(t, err, "exceeds")
				return
			}
			require.NoError(t, err)
			require.NotNil(t, resp)
		})
	}
}
