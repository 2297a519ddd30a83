package dbtest

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteDB builds cfg and writes it to a file under tb's temp directory,
// returning the path.
func WriteDB(tb testing.TB, cfg Config) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), "cscope.out")
	if err := os.WriteFile(path, Build(cfg), 0o600); err != nil {
		tb.Fatalf("writing database: %v", err)
	}
	return path
}

// WriteFixture loads a txtar fixture, builds it, and writes it under tb's
// temp directory, returning the path.
func WriteFixture(tb testing.TB, fixture string) string {
	tb.Helper()
	cfg, err := Load(fixture)
	if err != nil {
		tb.Fatalf("loading fixture: %v", err)
	}
	return WriteDB(tb, cfg)
}
