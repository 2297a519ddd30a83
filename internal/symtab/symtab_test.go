package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tender-barbarian/cscope-lens/internal/cscopedb"
)

func TestKindForMark(t *testing.T) {
	tests := []struct {
		name     string
		mark     cscopedb.Mark
		wantKind SymbolKind
		wantOK   bool
	}{
		{name: "function definition", mark: cscopedb.MarkFuncDef, wantKind: KindFunc, wantOK: true},
		{name: "function call", mark: cscopedb.MarkFuncCall, wantKind: KindCall, wantOK: true},
		{name: "macro definition", mark: cscopedb.MarkMacroDef, wantKind: KindMacro, wantOK: true},
		{name: "include", mark: cscopedb.MarkInclude, wantKind: KindInclude, wantOK: true},
		{name: "assignment", mark: cscopedb.MarkAssign, wantKind: KindAssign, wantOK: true},
		{name: "typedef", mark: cscopedb.MarkTypedefDef, wantKind: KindTypedef, wantOK: true},
		{name: "unrecognized mark", mark: cscopedb.MarkOther, wantKind: KindOther, wantOK: true},
		{name: "file mark carries no symbol", mark: cscopedb.MarkFile},
		{name: "function end carries no symbol", mark: cscopedb.MarkFuncEnd},
		{name: "macro end carries no symbol", mark: cscopedb.MarkMacroEnd},
		{name: "struct end carries no symbol", mark: cscopedb.MarkSUEEnd},
		{name: "plain text carries no symbol", mark: cscopedb.MarkNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := KindForMark(tt.mark)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}
