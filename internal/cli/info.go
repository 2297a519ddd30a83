package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show database header fields and index statistics",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "output as JSON")
}

func runInfo(cmd *cobra.Command, _ []string) error {
	f, err := loadFinder()
	if err != nil {
		return err
	}
	info := f.Info()
	if infoJSON {
		return printJSON(cmd.OutOrStdout(), info)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "database:     %s\n", info.Path)
	fmt.Fprintf(out, "version:      %d\n", info.Version)
	fmt.Fprintf(out, "directory:    %s\n", info.Dir)
	fmt.Fprintf(out, "flags:        %s\n", strings.Join(info.Flags, " "))
	fmt.Fprintf(out, "files:        %d\n", info.FileCount)
	fmt.Fprintf(out, "functions:    %d\n", info.FunctionCount)
	fmt.Fprintf(out, "symbols:      %d\n", info.SymbolCount)
	fmt.Fprintf(out, "include dirs: %d\n", len(info.IncludeDirs))
	return nil
}
