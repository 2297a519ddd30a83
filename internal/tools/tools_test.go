package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tender-barbarian/cscope-lens/internal/dbtest"
	"github.com/tender-barbarian/cscope-lens/internal/finder"
	"github.com/tender-barbarian/cscope-lens/internal/indexer"
	"github.com/tender-barbarian/cscope-lens/internal/symtab"
)

const sampleFixture = "../dbtest/testdata/sample.txtar"

func sampleFinder(t *testing.T) *finder.Finder {
	t.Helper()
	idx, err := indexer.New(dbtest.WriteFixture(t, sampleFixture))
	require.NoError(t, err)
	require.NoError(t, idx.Index())
	return finder.New(idx)
}

// callJSON invokes handler and decodes its text content into out.
func callJSON(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any, out any) {
	t.Helper()
	req := mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}}
	resp, err := handler(context.Background(), req)
	require.NoError(t, err)

	content, ok := resp.Content[0].(mcp.TextContent)
	require.True(t, ok)
	require.NoError(t, json.Unmarshal([]byte(content.Text), out))
}

func TestListFilesHandler(t *testing.T) {
	handler := listFilesHandler(sampleFinder(t))

	tests := []struct {
		name string
		args map[string]any
		want []string
	}{
		{name: "all files", want: []string{"src/main.c", "src/util.c"}},
		{name: "glob filter", args: map[string]any{"filter": "*/main.c"}, want: []string{"src/main.c"}},
		{name: "filter without match", args: map[string]any{"filter": "*.go"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var files []string
			callJSON(t, handler, tt.args, &files)
			assert.Equal(t, tt.want, files)
		})
	}
}

func TestListFunctionsHandler(t *testing.T) {
	handler := listFunctionsHandler(sampleFinder(t))

	var funcs []symtab.FunctionRecord
	callJSON(t, handler, nil, &funcs)
	require.Len(t, funcs, 2)
	assert.Equal(t, "main", funcs[0].Name)
	assert.Equal(t, "int main(int argc, char **argv)", funcs[0].Signature)
	assert.Equal(t, symtab.Location{File: "src/util.c", Line: 2}, funcs[1].Location)

	var narrowed []symtab.FunctionRecord
	callJSON(t, handler, map[string]any{"file": "*/util.c"}, &narrowed)
	require.Len(t, narrowed, 1)
	assert.Equal(t, "helper", narrowed[0].Name)

	req := mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: map[string]any{"file": "["}}}
	_, err := handler(context.Background(), req)
	assert.ErrorContains(t, err, "invalid file pattern")
}

func TestFindSymbolHandler(t *testing.T) {
	handler := findSymbolHandler(sampleFinder(t))

	tests := []struct {
		name      string
		args      map[string]any
		wantKinds []symtab.SymbolKind
	}{
		{
			name:      "exact across kinds",
			args:      map[string]any{"name": "helper"},
			wantKinds: []symtab.SymbolKind{symtab.KindCall, symtab.KindFunc},
		},
		{
			name:      "kind filter",
			args:      map[string]any{"name": "helper", "kind": "func"},
			wantKinds: []symtab.SymbolKind{symtab.KindFunc},
		},
		{
			name:      "prefix mode",
			args:      map[string]any{"name": "arg", "match": "prefix"},
			wantKinds: []symtab.SymbolKind{symtab.KindParam, symtab.KindParam},
		},
		{
			name: "nonexistent symbol",
			args: map[string]any{"name": "nothing_here"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var refs []symtab.SymbolRef
			callJSON(t, handler, tt.args, &refs)
			require.Len(t, refs, len(tt.wantKinds))
			for i, ref := range refs {
				assert.Equal(t, tt.wantKinds[i], ref.Kind)
			}
		})
	}

	t.Run("missing name argument", func(t *testing.T) {
		req := mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: map[string]any{}}}
		_, err := handler(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestGetFileSymbolsHandler(t *testing.T) {
	handler := getFileSymbolsHandler(sampleFinder(t))

	var refs []symtab.SymbolRef
	callJSON(t, handler, map[string]any{"file": "src/main.c"}, &refs)
	require.Len(t, refs, 5)
	assert.Equal(t, "<stdio.h>", refs[0].Name)
	assert.Equal(t, symtab.KindInclude, refs[0].Kind)

	req := mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: map[string]any{"file": "src/missing.c"}}}
	_, err := handler(context.Background(), req)
	assert.ErrorContains(t, err, "not in database")
}

func TestDatabaseInfoHandler(t *testing.T) {
	handler := databaseInfoHandler(sampleFinder(t))

	var info symtab.DatabaseInfo
	callJSON(t, handler, nil, &info)
	assert.Equal(t, 15, info.Version)
	assert.Equal(t, "/proj", info.Dir)
	assert.Equal(t, 2, info.FileCount)
	assert.Equal(t, 2, info.FunctionCount)
	assert.Equal(t, 7, info.SymbolCount)
}
