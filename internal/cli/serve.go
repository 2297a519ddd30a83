package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/tender-barbarian/cscope-lens/internal/finder"
	"github.com/tender-barbarian/cscope-lens/internal/indexer"
	"github.com/tender-barbarian/cscope-lens/internal/tools"
	"github.com/tender-barbarian/cscope-lens/internal/watcher"
)

var serveWatch bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve database queries over MCP on stdio",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "re-index when the database file changes")
}

func runServe(cmd *cobra.Command, _ []string) error {
	idx, err := indexer.New(dbPath)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "Indexing database...")
	if err := idx.Index(); err != nil {
		return fmt.Errorf("indexing database: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Index ready.")

	if serveWatch {
		w, err := watcher.New(idx.Path())
		if err != nil {
			return err
		}
		// A failed re-index keeps the previous snapshot serving.
		w.Start(cmd.Context(), func() {
			if err := idx.Index(); err != nil {
				log.Printf("cscope-lens: re-index failed: %v", err)
				return
			}
			log.Printf("cscope-lens: database re-indexed")
		})
		defer w.Stop()
	}

	s := server.NewMCPServer("cscope-lens", "0.1.0")
	tools.Register(s, finder.New(idx))

	if err := server.ServeStdio(s); err != nil {
		return fmt.Errorf("serving MCP: %w", err)
	}
	return nil
}
