package cscopedb

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Entry is one classified record from the database body. File and Line are
// inherited from the most recent file mark and line number records; for a
// MarkFile entry, File is the newly announced path and Line is zero.
type Entry struct {
	Mark Mark
	Text string
	File string
	Line int
}

// Scanner walks the database body one line at a time, reconstructing the
// current file and line number from preceding context records and yielding
// classified entries. It follows the bufio.Scanner shape:
//
//	sc := db.Scan()
//	for sc.Scan() {
//		e := sc.Entry()
//		...
//	}
//	if err := sc.Err(); err != nil { ... }
//
// A Scanner makes a single forward pass and cannot be restarted; re-scanning
// means asking the Database for a new Scanner. Stopping early is always safe.
type Scanner struct {
	br        *bufio.Reader
	start     int64
	span      int64
	consumed  int64
	lineStart int64

	file string
	line int

	ent  Entry
	err  error
	done bool
}

// NewScanner scans the byte range [start, end) of r as a database body.
// Database.Scan is the usual way to obtain one.
func NewScanner(r io.ReaderAt, start, end int64) *Scanner {
	if end < start {
		end = start
	}
	return &Scanner{
		br:    bufio.NewReader(io.NewSectionReader(r, start, end-start)),
		start: start,
		span:  end - start,
	}
}

// Scan advances to the next entry. It returns false at the end of the body
// span or on error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.done || s.err != nil {
		return false
	}
	for {
		line, rerr := s.br.ReadString('\n')
		s.lineStart = s.start + s.consumed
		s.consumed += int64(len(line))

		var emitted bool
		if raw := strings.TrimSuffix(line, "\n"); raw != "" {
			emitted = s.process(raw)
		}
		if s.err != nil {
			s.done = true
			return false
		}

		switch {
		case rerr == io.EOF:
			s.done = true
			if s.consumed < s.span {
				s.err = fmt.Errorf("%w: input ends at offset %d, trailer declared at offset %d", ErrTruncatedBody, s.start+s.consumed, s.start+s.span)
				return false
			}
			return emitted
		case rerr != nil:
			s.done = true
			s.err = rerr
			return false
		case emitted:
			return true
		}
	}
}

// Entry returns the entry produced by the last successful Scan.
func (s *Scanner) Entry() Entry {
	return s.ent
}

// Err returns the first error encountered, or nil if the scan ended at the
// span boundary.
func (s *Scanner) Err() error {
	return s.err
}

// process classifies one non-blank body line. It returns true when an entry
// was produced, and may set s.err for the hard invariant violations (a record
// with no file or line context). Recoverable oddities are skipped.
func (s *Scanner) process(line string) bool {
	if line[0] == '\t' {
		if len(line) < 2 {
			// Stray lone tab; not part of the format, skip it.
			return false
		}
		mark := classifyMark(line[1])
		text := line[2:]
		if mark == MarkFile {
			s.file = text
			s.line = 0
			s.ent = Entry{Mark: MarkFile, Text: text, File: text}
			return true
		}
		if !s.located() {
			return false
		}
		s.ent = Entry{Mark: mark, Text: text, File: s.file, Line: s.line}
		return true
	}

	if line[0] >= '0' && line[0] <= '9' {
		if num, rest, ok := splitLineNumber(line); ok {
			if s.file == "" {
				s.err = fmt.Errorf("%w: line number record before any file mark at offset %d", ErrMalformedBody, s.lineStart)
				return false
			}
			s.line = num
			if rest == "" {
				return false
			}
			s.ent = Entry{Mark: MarkNone, Text: rest, File: s.file, Line: s.line}
			return true
		}
	}

	// Unmarked source text, meaningful only inside a numbered record.
	if s.file == "" {
		s.err = fmt.Errorf("%w: source text before any file mark at offset %d", ErrMalformedBody, s.lineStart)
		return false
	}
	if s.line == 0 {
		return false
	}
	s.ent = Entry{Mark: MarkNone, Text: line, File: s.file, Line: s.line}
	return true
}

// located checks that a symbol entry has both file and line context, setting
// the hard error when either is missing.
func (s *Scanner) located() bool {
	if s.file == "" {
		s.err = fmt.Errorf("%w: symbol entry before any file mark at offset %d", ErrMalformedBody, s.lineStart)
		return false
	}
	if s.line == 0 {
		s.err = fmt.Errorf("%w: symbol entry before any line number in %s at offset %d", ErrMalformedBody, s.file, s.lineStart)
		return false
	}
	return true
}

// splitLineNumber splits a "<number> <source text>" record, also accepting a
// bare number. ok is false when the leading digits run into anything other
// than a blank, which makes the line plain source text.
func splitLineNumber(line string) (num int, rest string, ok bool) {
	const maxLineNumber = 1 << 31
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		num = num*10 + int(line[i]-'0')
		if num > maxLineNumber {
			// Not a plausible line number; treat the line as text.
			return 0, "", false
		}
		i++
	}
	switch {
	case i == len(line):
		return num, "", true
	case line[i] == ' ':
		return num, line[i+1:], true
	default:
		return 0, "", false
	}
}
