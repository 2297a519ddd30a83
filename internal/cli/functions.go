package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tender-barbarian/cscope-lens/internal/symtab"
)

var (
	functionsFile string
	functionsJSON bool
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List function definitions recorded in the database",
	Args:  cobra.NoArgs,
	RunE:  runFunctions,
}

func init() {
	rootCmd.AddCommand(functionsCmd)
	functionsCmd.Flags().StringVar(&functionsFile, "file", "", "glob filter on the defining file path")
	functionsCmd.Flags().BoolVar(&functionsJSON, "json", false, "output as JSON")
}

func runFunctions(cmd *cobra.Command, _ []string) error {
	f, err := loadFinder()
	if err != nil {
		return err
	}
	funcs, err := f.Functions(functionsFile)
	if err != nil {
		return err
	}
	if functionsJSON {
		return printJSON(cmd.OutOrStdout(), funcs)
	}
	renderFunctionTables(cmd.OutOrStdout(), funcs)
	return nil
}

// renderFunctionTables prints one table per defining file. Records arrive
// file-grouped from the scan, so a single pass suffices.
func renderFunctionTables(out io.Writer, funcs []symtab.FunctionRecord) {
	var table *tablewriter.Table
	file := ""
	for _, fn := range funcs {
		if fn.Location.File != file {
			if table != nil {
				table.Render()
			}
			file = fn.Location.File
			fmt.Fprintf(out, "\n%s\n", file)
			table = tablewriter.NewWriter(out)
			table.SetHeader([]string{"Function", "Signature", "Line"})
		}
		table.Append([]string{fn.Name, fn.Signature, strconv.Itoa(fn.Location.Line)})
	}
	if table != nil {
		table.Render()
	}
}
