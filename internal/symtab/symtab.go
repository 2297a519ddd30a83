// Package symtab defines the data structures extracted from a cscope
// database and returned to callers.
package symtab

import "github.com/tender-barbarian/cscope-lens/internal/cscopedb"

// Location identifies a source position recorded in the database.
type Location struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// FunctionRecord describes one function-definition entry. A function defined
// more than once yields one record per definition entry; nothing is
// deduplicated by name.
type FunctionRecord struct {
	Name string `json:"name"`
	// Signature is the defining source line reassembled from the
	// database's text fragments. Empty when the body carries none.
	Signature string   `json:"signature,omitempty"`
	Location  Location `json:"location"`
}

// SymbolKind classifies a symbol occurrence by its mark character.
type SymbolKind string

const (
	KindFunc    SymbolKind = "func"
	KindCall    SymbolKind = "call"
	KindMacro   SymbolKind = "macro"
	KindInclude SymbolKind = "include"
	KindAssign  SymbolKind = "assign"
	KindClass   SymbolKind = "class"
	KindEnum    SymbolKind = "enum"
	KindGlobal  SymbolKind = "global"
	KindLocal   SymbolKind = "local"
	KindMember  SymbolKind = "member"
	KindParam   SymbolKind = "param"
	KindStruct  SymbolKind = "struct"
	KindTypedef SymbolKind = "typedef"
	KindUnion   SymbolKind = "union"
	KindOther   SymbolKind = "other"
)

// KindForMark maps a name-bearing mark to its SymbolKind. The second result
// is false for marks that carry no symbol name (file marks, block
// terminators, plain text).
func KindForMark(m cscopedb.Mark) (SymbolKind, bool) {
	switch m {
	case cscopedb.MarkFuncDef:
		return KindFunc, true
	case cscopedb.MarkFuncCall:
		return KindCall, true
	case cscopedb.MarkMacroDef:
		return KindMacro, true
	case cscopedb.MarkInclude:
		return KindInclude, true
	case cscopedb.MarkAssign:
		return KindAssign, true
	case cscopedb.MarkClassDef:
		return KindClass, true
	case cscopedb.MarkEnumDef:
		return KindEnum, true
	case cscopedb.MarkGlobalDef:
		return KindGlobal, true
	case cscopedb.MarkLocalDef:
		return KindLocal, true
	case cscopedb.MarkMemberDef:
		return KindMember, true
	case cscopedb.MarkParamDef:
		return KindParam, true
	case cscopedb.MarkStructDef:
		return KindStruct, true
	case cscopedb.MarkTypedefDef:
		return KindTypedef, true
	case cscopedb.MarkUnionDef:
		return KindUnion, true
	case cscopedb.MarkOther:
		return KindOther, true
	default:
		return "", false
	}
}

// SymbolRef is one name occurrence in the database body.
type SymbolRef struct {
	Name     string     `json:"name"`
	Kind     SymbolKind `json:"kind"`
	Location Location   `json:"location"`
}

// DatabaseInfo summarizes an indexed database.
type DatabaseInfo struct {
	Path          string   `json:"path"`
	Version       int      `json:"version"`
	Dir           string   `json:"dir"`
	Flags         []string `json:"flags,omitempty"`
	FileCount     int      `json:"file_count"`
	FunctionCount int      `json:"function_count"`
	SymbolCount   int      `json:"symbol_count"`
	IncludeDirs   []string `json:"include_dirs,omitempty"`
}
