// Package cscopedb reads the symbol cross-reference databases written by the
// cscope indexing tool (the cscope.out file).
//
// The format is internal to cscope and unpublished; the layout handled here
// is the one its sources write for uncompressed databases: a single header
// line, a body of mark-tagged records grouped by file and threaded with line
// number records, and a trailer holding the authoritative file and
// include-directory lists at the byte offset the header declares.
//
// The package never writes to the database and keeps no state across scans,
// so independently opened databases can be read concurrently.
package cscopedb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Database is an open cscope database with a parsed header. The body and
// trailer are read on demand.
type Database struct {
	r      io.ReaderAt
	size   int64
	path   string
	closer io.Closer
	header Header
}

// Open opens the database file at path and parses its header. The returned
// Database holds the file open for reading until Close.
func Open(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db, err := New(f, fi.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	db.path = path
	db.closer = f
	return db, nil
}

// New reads a database from r, which must cover size bytes starting at
// offset zero. Close is a no-op for databases opened this way.
func New(r io.ReaderAt, size int64) (*Database, error) {
	br := bufio.NewReader(io.NewSectionReader(r, 0, size))
	line, err := br.ReadString('\n')
	if err == io.EOF && line != "" {
		return nil, fmt.Errorf("%w: header line not terminated", ErrMalformedHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrMalformedHeader, err)
	}

	h, err := parseHeader(strings.TrimSuffix(line, "\n"))
	if err != nil {
		return nil, err
	}
	h.Len = int64(len(line))
	if h.TrailerOffset < h.Len {
		return nil, fmt.Errorf("%w: trailer offset %d points inside the header (length %d)", ErrMalformedHeader, h.TrailerOffset, h.Len)
	}

	return &Database{r: r, size: size, header: h}, nil
}

// Header returns the parsed header. The returned value is a copy.
func (db *Database) Header() Header {
	return db.header
}

// Path returns the file path the database was opened from, or "" when it was
// constructed from a reader.
func (db *Database) Path() string {
	return db.path
}

// Size returns the database size in bytes.
func (db *Database) Size() int64 {
	return db.size
}

// BodySpan returns the byte offsets bounding the symbol body: everything
// after the header line and before the trailer. start == end means an empty
// body, which is valid.
func (db *Database) BodySpan() (start, end int64) {
	return db.header.Len, db.header.TrailerOffset
}

// Scan returns a new Scanner over the body span. Each call starts an
// independent pass; scanners share no state.
func (db *Database) Scan() *Scanner {
	start, end := db.BodySpan()
	return NewScanner(db.r, start, end)
}

// Close releases the underlying file, if any.
func (db *Database) Close() error {
	if db.closer == nil {
		return nil
	}
	return db.closer.Close()
}
