package cscopedb

// Mark is the single-character tag cscope writes in front of a body line to
// classify the entry that follows. The set below is taken from the cscope
// sources; characters outside it map to MarkOther so that a database written
// by a newer cscope still scans.
type Mark byte

const (
	// MarkNone tags an unmarked source-text line. These lines carry the
	// literal program text between symbols and let the full source line be
	// reconstructed by concatenation.
	MarkNone Mark = 0

	MarkFile     Mark = '@'
	MarkFuncDef  Mark = '$'
	MarkFuncCall Mark = '`'
	MarkFuncEnd  Mark = '}'
	MarkMacroDef Mark = '#'
	MarkMacroEnd Mark = ')'
	MarkInclude  Mark = '~'
	MarkAssign   Mark = '='

	// MarkSUEEnd closes an enum, struct, or union definition block.
	MarkSUEEnd Mark = ';'

	MarkClassDef   Mark = 'c'
	MarkEnumDef    Mark = 'e'
	MarkGlobalDef  Mark = 'g'
	MarkLocalDef   Mark = 'l'
	MarkMemberDef  Mark = 'm'
	MarkParamDef   Mark = 'p'
	MarkStructDef  Mark = 's'
	MarkTypedefDef Mark = 't'
	MarkUnionDef   Mark = 'u'

	// MarkOther stands in for any mark character this reader does not
	// recognize. The entry is retained with its text intact.
	MarkOther Mark = '?'
)

// classifyMark maps a raw mark byte to a Mark, folding unknown characters
// into MarkOther.
func classifyMark(c byte) Mark {
	switch Mark(c) {
	case MarkFile, MarkFuncDef, MarkFuncCall, MarkFuncEnd,
		MarkMacroDef, MarkMacroEnd, MarkInclude, MarkAssign, MarkSUEEnd,
		MarkClassDef, MarkEnumDef, MarkGlobalDef, MarkLocalDef,
		MarkMemberDef, MarkParamDef, MarkStructDef, MarkTypedefDef,
		MarkUnionDef:
		return Mark(c)
	default:
		return MarkOther
	}
}

// String returns a short name for the mark, for logs and test failures.
func (m Mark) String() string {
	switch m {
	case MarkNone:
		return "text"
	case MarkFile:
		return "file"
	case MarkFuncDef:
		return "funcdef"
	case MarkFuncCall:
		return "funccall"
	case MarkFuncEnd:
		return "funcend"
	case MarkMacroDef:
		return "macrodef"
	case MarkMacroEnd:
		return "macroend"
	case MarkInclude:
		return "include"
	case MarkAssign:
		return "assign"
	case MarkSUEEnd:
		return "sueend"
	case MarkClassDef:
		return "classdef"
	case MarkEnumDef:
		return "enumdef"
	case MarkGlobalDef:
		return "globaldef"
	case MarkLocalDef:
		return "localdef"
	case MarkMemberDef:
		return "memberdef"
	case MarkParamDef:
		return "paramdef"
	case MarkStructDef:
		return "structdef"
	case MarkTypedefDef:
		return "typedefdef"
	case MarkUnionDef:
		return "uniondef"
	default:
		return "other"
	}
}
