package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	filesFilter string
	filesJSON   bool
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the source files the database covers",
	Args:  cobra.NoArgs,
	RunE:  runFiles,
}

func init() {
	rootCmd.AddCommand(filesCmd)
	filesCmd.Flags().StringVar(&filesFilter, "filter", "", "glob filter on file path")
	filesCmd.Flags().BoolVar(&filesJSON, "json", false, "output as JSON")
}

func runFiles(cmd *cobra.Command, _ []string) error {
	f, err := loadFinder()
	if err != nil {
		return err
	}
	files, err := f.Files(filesFilter)
	if err != nil {
		return err
	}
	if filesJSON {
		return printJSON(cmd.OutOrStdout(), files)
	}
	for _, path := range files {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
