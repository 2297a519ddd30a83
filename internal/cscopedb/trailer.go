package cscopedb

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Trailer is the fixed-layout section at the end of the database: a count of
// source files followed by that many paths, then a count of include
// directories followed by that many paths. It is the authoritative record of
// what the database covers; the body's file marks are only a byproduct of
// which files contained symbols.
type Trailer struct {
	Files       []string
	IncludeDirs []string
}

// Trailer seeks to the header's trailer offset and parses the file and
// include-directory lists. Zero counts are valid and yield empty lists.
func (db *Database) Trailer() (*Trailer, error) {
	off := db.header.TrailerOffset
	if off > db.size {
		return nil, fmt.Errorf("%w: trailer offset %d beyond database size %d", ErrMalformedTrailer, off, db.size)
	}

	br := bufio.NewReader(io.NewSectionReader(db.r, off, db.size-off))

	files, err := readList(br, "source file")
	if err != nil {
		return nil, err
	}
	dirs, err := readList(br, "include directory")
	if err != nil {
		return nil, err
	}

	return &Trailer{Files: files, IncludeDirs: dirs}, nil
}

// readList reads a decimal count line followed by exactly that many path
// lines. what names the list in error messages.
func readList(br *bufio.Reader, what string) ([]string, error) {
	countLine, err := readLine(br)
	if err != nil {
		return nil, fmt.Errorf("%w: missing %s count: %v", ErrMalformedTrailer, what, err)
	}
	count, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: invalid %s count %q", ErrMalformedTrailer, what, countLine)
	}

	list := make([]string, 0, count)
	for i := 0; i < count; i++ {
		line, err := readLine(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %s list declares %d entries but ends after %d", ErrMalformedTrailer, what, count, i)
		}
		list = append(list, line)
	}
	return list, nil
}

// readLine returns the next line without its newline. A final line without a
// terminating newline is returned as-is; a read at end of input fails.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}
