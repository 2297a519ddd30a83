// Package cli implements the cscope-lens command line interface.
package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/tender-barbarian/cscope-lens/internal/finder"
	"github.com/tender-barbarian/cscope-lens/internal/indexer"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "cscope-lens",
	Short: "Query a cscope cross-reference database",
	Long: `cscope-lens reads an uncompressed cscope database (cscope.out) and reports
the source files it covers, the function definitions it records, and symbol
occurrences, without re-indexing or modifying anything.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "cscope.out", "cscope database file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadFinder indexes the database once for a one-shot command.
func loadFinder() (*finder.Finder, error) {
	idx, err := indexer.New(dbPath)
	if err != nil {
		return nil, err
	}
	if err := idx.Index(); err != nil {
		return nil, err
	}
	return finder.New(idx), nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
