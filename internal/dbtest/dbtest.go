// Package dbtest assembles syntactically valid cscope databases for tests.
// The trailer offset in the header is computed from the assembled parts, so
// fixtures never need hand-counted byte offsets.
package dbtest

import (
	"fmt"
	"strings"

	"golang.org/x/tools/txtar"
)

// Config describes a database to assemble.
type Config struct {
	// Version defaults to 15, the format version modern cscope writes.
	Version int

	// Dir defaults to "/src".
	Dir string

	// Flags are the header option flags; nil defaults to ["-c"]. Pass an
	// empty non-nil slice to build a header with no flags (a compressed
	// database, from the reader's point of view).
	Flags []string

	// Body is the symbol body, verbatim. Mark lines start with a tab.
	Body string

	// Files and IncludeDirs populate the trailer lists.
	Files       []string
	IncludeDirs []string

	// TrailerOffset overrides the computed offset when non-zero, for
	// truncation and out-of-bounds fixtures.
	TrailerOffset int64
}

// Build assembles the database bytes for cfg.
func Build(cfg Config) []byte {
	if cfg.Version == 0 {
		cfg.Version = 15
	}
	if cfg.Dir == "" {
		cfg.Dir = "/src"
	}
	flags := cfg.Flags
	if flags == nil {
		flags = []string{"-c"}
	}

	var trailer strings.Builder
	fmt.Fprintf(&trailer, "%d\n", len(cfg.Files))
	for _, f := range cfg.Files {
		fmt.Fprintf(&trailer, "%s\n", f)
	}
	fmt.Fprintf(&trailer, "%d\n", len(cfg.IncludeDirs))
	for _, d := range cfg.IncludeDirs {
		fmt.Fprintf(&trailer, "%s\n", d)
	}

	// The offset field is fixed-width, so the header length does not
	// depend on the offset value and a single measuring pass suffices.
	header := func(offset int64) string {
		parts := []string{"cscope", fmt.Sprint(cfg.Version), cfg.Dir}
		parts = append(parts, flags...)
		parts = append(parts, fmt.Sprintf("%010d", offset))
		return strings.Join(parts, " ") + "\n"
	}

	offset := cfg.TrailerOffset
	if offset == 0 {
		offset = int64(len(header(0)) + len(cfg.Body))
	}
	return []byte(header(offset) + cfg.Body + trailer.String())
}

// Load reads a Config from a txtar archive. Recognized sections: "body"
// (verbatim), "files" and "include_dirs" (one path per line), and "dir" (the
// index directory, first line only). Unknown sections are an error so that
// fixture typos fail loudly.
func Load(path string) (Config, error) {
	ar, err := txtar.ParseFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("parsing fixture %s: %w", path, err)
	}

	var cfg Config
	for _, f := range ar.Files {
		switch f.Name {
		case "body":
			cfg.Body = string(f.Data)
		case "files":
			cfg.Files = splitLines(string(f.Data))
		case "include_dirs":
			cfg.IncludeDirs = splitLines(string(f.Data))
		case "dir":
			lines := splitLines(string(f.Data))
			if len(lines) > 0 {
				cfg.Dir = lines[0]
			}
		default:
			return Config{}, fmt.Errorf("fixture %s: unknown section %q", path, f.Name)
		}
	}
	return cfg, nil
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
