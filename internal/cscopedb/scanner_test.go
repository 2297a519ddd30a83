package cscopedb_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tender-barbarian/cscope-lens/internal/cscopedb"
	"github.com/tender-barbarian/cscope-lens/internal/dbtest"
)

func collect(t *testing.T, sc *cscopedb.Scanner) []cscopedb.Entry {
	t.Helper()
	var entries []cscopedb.Entry
	for sc.Scan() {
		entries = append(entries, sc.Entry())
	}
	return entries
}

func TestScanSingleFunction(t *testing.T) {
	db := openRaw(t, dbtest.Build(dbtest.Config{
		Dir:   "/proj",
		Body:  "\t@/proj/a.c\n3\n\t$foo\n",
		Files: []string{"/proj/a.c"},
	}))

	sc := db.Scan()
	entries := collect(t, sc)
	require.NoError(t, sc.Err())

	assert.Equal(t, []cscopedb.Entry{
		{Mark: cscopedb.MarkFile, Text: "/proj/a.c", File: "/proj/a.c"},
		{Mark: cscopedb.MarkFuncDef, Text: "foo", File: "/proj/a.c", Line: 3},
	}, entries)
}

func TestScanContextThreading(t *testing.T) {
	body := "\t@a.c\n" +
		"\n" +
		"1 int \n" +
		"\tgx\n" +
		" = 1;\n" +
		"\n" +
		"4 \n" +
		"\t#MAX\n" +
		"\n" +
		"\t@b.c\n" +
		"\n" +
		"2\n" +
		"\t`foo\n"
	db := openRaw(t, dbtest.Build(dbtest.Config{Body: body, Files: []string{"a.c", "b.c"}}))

	sc := db.Scan()
	entries := collect(t, sc)
	require.NoError(t, sc.Err())

	assert.Equal(t, []cscopedb.Entry{
		{Mark: cscopedb.MarkFile, Text: "a.c", File: "a.c"},
		{Mark: cscopedb.MarkNone, Text: "int ", File: "a.c", Line: 1},
		{Mark: cscopedb.MarkGlobalDef, Text: "x", File: "a.c", Line: 1},
		{Mark: cscopedb.MarkNone, Text: " = 1;", File: "a.c", Line: 1},
		{Mark: cscopedb.MarkMacroDef, Text: "MAX", File: "a.c", Line: 4},
		{Mark: cscopedb.MarkFile, Text: "b.c", File: "b.c"},
		{Mark: cscopedb.MarkFuncCall, Text: "foo", File: "b.c", Line: 2},
	}, entries)
}

func TestScanUnrecognizedMarkRetained(t *testing.T) {
	db := openRaw(t, dbtest.Build(dbtest.Config{
		Body:  "\t@a.c\n3\n\tZweird\n\t$foo\n",
		Files: []string{"a.c"},
	}))

	sc := db.Scan()
	entries := collect(t, sc)
	require.NoError(t, sc.Err())

	require.Len(t, entries, 3)
	assert.Equal(t, cscopedb.Entry{Mark: cscopedb.MarkOther, Text: "weird", File: "a.c", Line: 3}, entries[1])
	assert.Equal(t, cscopedb.MarkFuncDef, entries[2].Mark)
}

func TestScanSkipsTextOutsideLineRecords(t *testing.T) {
	db := openRaw(t, dbtest.Build(dbtest.Config{
		Body:  "\t@a.c\njunk before any line number\n3 x\n",
		Files: []string{"a.c"},
	}))

	sc := db.Scan()
	entries := collect(t, sc)
	require.NoError(t, sc.Err())

	assert.Equal(t, []cscopedb.Entry{
		{Mark: cscopedb.MarkFile, Text: "a.c", File: "a.c"},
		{Mark: cscopedb.MarkNone, Text: "x", File: "a.c", Line: 3},
	}, entries)
}

func TestScanMalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "symbol entry before any file mark", body: "\t$foo\n"},
		{name: "line number before any file mark", body: "3 int x;\n"},
		{name: "source text before any file mark", body: "int x;\n"},
		{name: "symbol entry before any line number", body: "\t@a.c\n\t$foo\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := openRaw(t, dbtest.Build(dbtest.Config{Body: tt.body, Files: []string{"a.c"}}))
			sc := db.Scan()
			for sc.Scan() {
			}
			assert.ErrorIs(t, sc.Err(), cscopedb.ErrMalformedBody)
		})
	}
}

func TestScanTruncatedBody(t *testing.T) {
	raw := dbtest.Build(dbtest.Config{
		Body:  "\t@a.c\n3\n\t$foo\n\t@b.c\n5\n\t$bar\n",
		Files: []string{"a.c", "b.c"},
	})
	full, err := cscopedb.New(bytes.NewReader(raw), int64(len(raw)))
	require.NoError(t, err)
	_, end := full.BodySpan()

	// Chop the input mid-body; the header still declares the full span.
	cut := raw[:end-10]
	db, err := cscopedb.New(bytes.NewReader(cut), int64(len(cut)))
	require.NoError(t, err)

	sc := db.Scan()
	for sc.Scan() {
	}
	assert.ErrorIs(t, sc.Err(), cscopedb.ErrTruncatedBody)
}

func TestScanEndsAtSpanMidBlock(t *testing.T) {
	// The trailer offset lands right after the file mark; the scan must
	// stop there normally even though the record block is unfinished.
	body := "\t@a.c\n"
	raw := dbtest.Build(dbtest.Config{Body: body, Files: []string{"a.c"}})
	db := openRaw(t, raw)

	sc := db.Scan()
	entries := collect(t, sc)
	require.NoError(t, sc.Err())
	require.Len(t, entries, 1)
	assert.Equal(t, cscopedb.MarkFile, entries[0].Mark)
}

func TestScanRescanIsIdentical(t *testing.T) {
	db := openRaw(t, dbtest.Build(dbtest.Config{
		Body:  "\t@a.c\n1 int \n\tgx\n\n2\n\t$f\n",
		Files: []string{"a.c"},
	}))

	first := collect(t, db.Scan())
	second := collect(t, db.Scan())
	assert.Equal(t, first, second)
}

func TestScanEarlyStopIsSafe(t *testing.T) {
	db := openRaw(t, dbtest.Build(dbtest.Config{
		Body:  "\t@a.c\n1\n\t$f\n2\n\t$g\n",
		Files: []string{"a.c"},
	}))

	sc := db.Scan()
	require.True(t, sc.Scan())
	// Abandon sc here; a fresh scan still sees everything.

	entries := collect(t, db.Scan())
	require.NoError(t, sc.Err())
	assert.Len(t, entries, 3)
}
