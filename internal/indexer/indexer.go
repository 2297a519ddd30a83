// Package indexer loads a cscope database into memory for querying.
package indexer

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tender-barbarian/cscope-lens/internal/cscopedb"
	"github.com/tender-barbarian/cscope-lens/internal/symtab"
)

// Indexer reads a cscope database file and holds the extracted file list,
// function definitions, and symbol occurrences in memory. Index may be called
// again after the database is regenerated; queries always see a complete
// snapshot, never a half-built one.
type Indexer struct {
	path string

	mu   sync.RWMutex
	snap *snapshot
}

// snapshot is one fully built index. It is immutable once published.
type snapshot struct {
	info        symtab.DatabaseInfo
	files       []string
	includeDirs []string
	functions   []symtab.FunctionRecord
	symbols     []symtab.SymbolRef
	fileSet     map[string]bool
}

// New creates an Indexer for the database at path. Call Index to load it.
func New(path string) (*Indexer, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving database path: %w", err)
	}
	return &Indexer{path: abs}, nil
}

// Path returns the absolute database path.
func (idx *Indexer) Path() string {
	return idx.path
}

// Index opens the database, parses the trailer, and makes one pass over the
// body. On success the previous snapshot is replaced atomically; on failure
// it is kept, so a regenerated-but-broken database does not blank out a
// serving index.
func (idx *Indexer) Index() error {
	db, err := cscopedb.Open(idx.path)
	if err != nil {
		return err
	}
	defer db.Close()

	trailer, err := db.Trailer()
	if err != nil {
		return err
	}

	snap := &snapshot{
		files:       trailer.Files,
		includeDirs: trailer.IncludeDirs,
		fileSet:     make(map[string]bool, len(trailer.Files)),
	}
	for _, f := range trailer.Files {
		snap.fileSet[f] = true
	}

	if err := snap.scanBody(db); err != nil {
		return err
	}

	h := db.Header()
	snap.info = symtab.DatabaseInfo{
		Path:          idx.path,
		Version:       h.Version,
		Dir:           h.Dir,
		Flags:         h.Flags,
		FileCount:     len(snap.files),
		FunctionCount: len(snap.functions),
		SymbolCount:   len(snap.symbols),
		IncludeDirs:   snap.includeDirs,
	}

	idx.mu.Lock()
	idx.snap = snap
	idx.mu.Unlock()
	return nil
}

// scanBody walks the symbol body once, collecting function records and
// symbol references and reassembling each defining source line for the
// signature field. The database stores a source line as text fragments
// interleaved with symbol names, one per record; concatenating them in scan
// order restores the line.
func (s *snapshot) scanBody(db *cscopedb.Database) error {
	var (
		curFile   string
		curLine   int
		lineBuf   strings.Builder
		lineFuncs []int // indexes into s.functions defined on the current line
	)

	flushLine := func() {
		if len(lineFuncs) > 0 {
			sig := strings.TrimSpace(lineBuf.String())
			for _, i := range lineFuncs {
				s.functions[i].Signature = sig
			}
			lineFuncs = lineFuncs[:0]
		}
		lineBuf.Reset()
	}

	sc := db.Scan()
	for sc.Scan() {
		e := sc.Entry()

		if e.Mark == cscopedb.MarkFile {
			flushLine()
			curFile = e.File
			curLine = 0
			if !s.fileSet[e.File] {
				// The trailer list stays authoritative; the body
				// observation is only reported.
				log.Printf("cscope-lens: body references %s, absent from the trailer file list", e.File)
			}
			continue
		}

		if e.File != curFile || e.Line != curLine {
			flushLine()
			curFile = e.File
			curLine = e.Line
		}
		lineBuf.WriteString(e.Text)

		if e.Mark == cscopedb.MarkNone {
			continue
		}
		if e.Mark == cscopedb.MarkFuncDef {
			s.functions = append(s.functions, symtab.FunctionRecord{
				Name:     e.Text,
				Location: symtab.Location{File: e.File, Line: e.Line},
			})
			lineFuncs = append(lineFuncs, len(s.functions)-1)
		}
		if kind, ok := symtab.KindForMark(e.Mark); ok && e.Text != "" {
			s.symbols = append(s.symbols, symtab.SymbolRef{
				Name:     e.Text,
				Kind:     kind,
				Location: symtab.Location{File: e.File, Line: e.Line},
			})
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	flushLine()
	return nil
}

// current returns the published snapshot, or an empty one before the first
// successful Index.
func (idx *Indexer) current() *snapshot {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if idx.snap == nil {
		return &snapshot{fileSet: map[string]bool{}}
	}
	return idx.snap
}

// Files returns the trailer's source file list, in trailer order.
func (idx *Indexer) Files() []string {
	return idx.current().files
}

// IncludeDirs returns the trailer's include directory list.
func (idx *Indexer) IncludeDirs() []string {
	return idx.current().includeDirs
}

// Functions returns all function-definition records in scan order: grouped
// by file as laid out in the database, ascending line within a file.
func (idx *Indexer) Functions() []symtab.FunctionRecord {
	return idx.current().functions
}

// Symbols returns every name-bearing entry in scan order.
func (idx *Indexer) Symbols() []symtab.SymbolRef {
	return idx.current().symbols
}

// HasFile reports whether path is in the trailer file list.
func (idx *Indexer) HasFile(path string) bool {
	return idx.current().fileSet[path]
}

// Info returns the database summary.
func (idx *Indexer) Info() symtab.DatabaseInfo {
	return idx.current().info
}
