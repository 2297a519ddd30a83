package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tender-barbarian/cscope-lens/internal/finder"
	"github.com/tender-barbarian/cscope-lens/internal/symtab"
)

var (
	symbolMatch string
	symbolKind  string
	symbolJSON  bool
)

var symbolCmd = &cobra.Command{
	Use:   "symbol <name>",
	Short: "Find symbol occurrences by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runSymbol,
}

func init() {
	rootCmd.AddCommand(symbolCmd)
	symbolCmd.Flags().StringVar(&symbolMatch, "match", string(finder.MatchExact), `match mode: "exact", "prefix", or "contains"`)
	symbolCmd.Flags().StringVar(&symbolKind, "kind", "", "filter by symbol kind (func, call, macro, ...)")
	symbolCmd.Flags().BoolVar(&symbolJSON, "json", false, "output as JSON")
}

func runSymbol(cmd *cobra.Command, args []string) error {
	f, err := loadFinder()
	if err != nil {
		return err
	}
	refs := f.FindSymbol(args[0], finder.MatchMode(symbolMatch), symtab.SymbolKind(symbolKind))
	if symbolJSON {
		return printJSON(cmd.OutOrStdout(), refs)
	}
	for _, ref := range refs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s:%d\t%s\t%s\n", ref.Location.File, ref.Location.Line, ref.Kind, ref.Name)
	}
	return nil
}
