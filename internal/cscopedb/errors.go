package cscopedb

import "errors"

// Sentinel errors for the fatal failure modes of database parsing. Callers
// match them with errors.Is; wrapped messages carry the offending offset or
// line where one is known.
var (
	// ErrUnsupportedFormat reports a header option this reader does not
	// understand, including the absence of -c (the database body is
	// compressed and unreadable without decompression tables).
	ErrUnsupportedFormat = errors.New("unsupported database format")

	// ErrMalformedHeader reports a header line with a missing version
	// token, an invalid trailer offset field, or a truncated line.
	ErrMalformedHeader = errors.New("malformed database header")

	// ErrMalformedTrailer reports a trailer whose declared counts do not
	// match the lines present, or a trailer offset outside the file.
	ErrMalformedTrailer = errors.New("malformed database trailer")

	// ErrTruncatedBody reports end of input before the trailer offset
	// declared by the header.
	ErrTruncatedBody = errors.New("truncated database body")

	// ErrMalformedBody reports a symbol entry with no preceding file mark
	// or line number record, which would leave the entry without a source
	// location.
	ErrMalformedBody = errors.New("malformed database body")
)
