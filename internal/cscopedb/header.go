package cscopedb

import (
	"fmt"
	"strconv"
	"strings"
)

// Header holds the parsed first line of a cscope database:
//
//	cscope <version> <dir> [-c] [-q <syms>] [-T] <trailer offset>
//
// The trailer offset is written as a fixed-width decimal field so its
// position relative to the end of the line never shifts, even though the
// directory path makes the header's total length variable.
type Header struct {
	// Version is the cross-reference format version the database was
	// written with.
	Version int

	// Dir is the directory cscope indexed from; relative file names in
	// the database are rooted here.
	Dir string

	// Flags are the option flags present in the header line, in order,
	// e.g. ["-c", "-q"].
	Flags []string

	// TrailerOffset is the absolute byte offset of the trailer section.
	TrailerOffset int64

	// Len is the byte length of the header line including its newline.
	// The symbol body starts here.
	Len int64
}

// parseHeader parses the header line, without its trailing newline.
//
// The -c flag means the database was written uncompressed; in its absence the
// body is keyword-compressed and unreadable here, so -c is required. The -q
// flag announces inverted-index companion files and carries one fixed-width
// numeric argument, which is skipped. -T only affects how cscope matches and
// is ignored. Any other flag makes the body's meaning unknown.
func parseHeader(line string) (Header, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 || fields[0] != "cscope" {
		return Header{}, fmt.Errorf("%w: expected \"cscope <version> <dir> [flags] <offset>\", got %q", ErrMalformedHeader, line)
	}

	version, err := strconv.Atoi(fields[1])
	if err != nil {
		return Header{}, fmt.Errorf("%w: invalid version %q", ErrMalformedHeader, fields[1])
	}

	h := Header{
		Version: version,
		Dir:     fields[2],
	}

	offsetField := fields[len(fields)-1]
	h.TrailerOffset, err = parseOffset(offsetField)
	if err != nil {
		return Header{}, fmt.Errorf("%w: invalid trailer offset %q", ErrMalformedHeader, offsetField)
	}

	uncompressed := false
	opts := fields[3 : len(fields)-1]
	for i := 0; i < len(opts); i++ {
		opt := opts[i]
		if !strings.HasPrefix(opt, "-") || len(opt) < 2 {
			return Header{}, fmt.Errorf("%w: unexpected header field %q", ErrMalformedHeader, opt)
		}
		h.Flags = append(h.Flags, opt)
		for _, c := range opt[1:] {
			switch c {
			case 'c':
				uncompressed = true
			case 'q':
				// Skip the inverted-index symbol count that
				// follows -q.
				if i+1 >= len(opts) || !allDigits(opts[i+1]) {
					return Header{}, fmt.Errorf("%w: -q flag without its numeric argument", ErrMalformedHeader)
				}
				i++
			case 'T':
				// Prefix-match build option, irrelevant to reading.
			default:
				return Header{}, fmt.Errorf("%w: unhandled header flag -%c", ErrUnsupportedFormat, c)
			}
		}
	}

	if !uncompressed {
		return Header{}, fmt.Errorf("%w: database is compressed (built without -c)", ErrUnsupportedFormat)
	}

	return h, nil
}

// parseOffset parses the fixed-width decimal trailer-offset field. Leading
// zeros pad the field; an empty or non-numeric field is rejected.
func parseOffset(s string) (int64, error) {
	if !allDigits(s) {
		return 0, fmt.Errorf("not a non-negative decimal")
	}
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return 0, nil
	}
	return strconv.ParseInt(trimmed, 10, 64)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
