// Package finder answers queries against an indexed cscope database.
package finder

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/tender-barbarian/cscope-lens/internal/indexer"
	"github.com/tender-barbarian/cscope-lens/internal/symtab"
)

// MatchMode controls how symbol names are compared in FindSymbol.
type MatchMode string

const (
	MatchExact    MatchMode = "exact"
	MatchPrefix   MatchMode = "prefix"
	MatchContains MatchMode = "contains"
)

func matchesQuery(symbolName, query string, mode MatchMode) bool {
	switch mode {
	case MatchPrefix:
		return strings.HasPrefix(symbolName, query)
	case MatchContains:
		return strings.Contains(symbolName, query)
	default:
		return symbolName == query
	}
}

// Finder queries an Indexer for files, function definitions, and symbol
// occurrences. It never reorders results: files come back in trailer order
// and everything else in database scan order.
type Finder struct {
	idx *indexer.Indexer
}

// New creates a Finder backed by the given Indexer.
func New(idx *indexer.Indexer) *Finder {
	return &Finder{idx: idx}
}

// Files returns the authoritative source file list from the trailer.
func (f *Finder) Files(pattern string) ([]string, error) {
	files := f.idx.Files()
	if pattern == "" {
		return files, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
	}
	matched := make([]string, 0, len(files))
	for _, path := range files {
		if g.Match(path) {
			matched = append(matched, path)
		}
	}
	return matched, nil
}

// IncludeDirs returns the trailer's include directory list.
func (f *Finder) IncludeDirs() []string {
	return f.idx.IncludeDirs()
}

// Functions returns function-definition records, optionally restricted to
// defining files matching a glob pattern. Records keep scan order and a
// function defined more than once appears once per definition entry.
func (f *Finder) Functions(pattern string) ([]symtab.FunctionRecord, error) {
	funcs := f.idx.Functions()
	if pattern == "" {
		return funcs, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
	}
	matched := make([]symtab.FunctionRecord, 0, len(funcs))
	for _, fn := range funcs {
		if g.Match(fn.Location.File) {
			matched = append(matched, fn)
		}
	}
	return matched, nil
}

// FindSymbol searches all symbol occurrences by name. mode selects exact
// (default), prefix, or contains comparison; a non-empty kind keeps only
// occurrences of that kind.
func (f *Finder) FindSymbol(name string, mode MatchMode, kind symtab.SymbolKind) []symtab.SymbolRef {
	var refs []symtab.SymbolRef
	for _, ref := range f.idx.Symbols() {
		if !matchesQuery(ref.Name, name, mode) {
			continue
		}
		if kind != "" && ref.Kind != kind {
			continue
		}
		refs = append(refs, ref)
	}
	return refs
}

// FileSymbols returns every symbol occurrence recorded for one source file,
// which must be present in the trailer file list.
func (f *Finder) FileSymbols(path string) ([]symtab.SymbolRef, error) {
	if !f.idx.HasFile(path) {
		return nil, fmt.Errorf("file %q not in database", path)
	}
	var refs []symtab.SymbolRef
	for _, ref := range f.idx.Symbols() {
		if ref.Location.File == path {
			refs = append(refs, ref)
		}
	}
	return refs, nil
}

// Info returns the database summary.
func (f *Finder) Info() symtab.DatabaseInfo {
	return f.idx.Info()
}
