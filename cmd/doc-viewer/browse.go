// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pdiddy/doc-viewer/internal/api"
	"github.com/pdiddy/doc-viewer/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse documents interactively",
	Long: `Browse opens a terminal browser over the document collection. The list
view shows one card per document; enter opens the detail view with the full
summary and citation, esc goes back. Each view fetches when it opens and r
fetches again.

The browser owns the terminal, so loader warnings are discarded unless
--log-file is given.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	loc, err := displayLocation(viewerConfig)
	if err != nil {
		return err
	}

	var log io.Writer = io.Discard
	if path, _ := cmd.Flags().GetString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		log = f
	}

	startID, _ := cmd.Flags().GetString("id")
	m := tui.NewModel(cmd.Context(), tui.Config{
		Source:   api.NewClient(viewerConfig, nil),
		Location: loc,
		Log:      log,
		StartID:  startID,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && cmd.Context().Err() == nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}

func init() {
	browseCmd.Flags().String("id", "", "open the detail view of this document")
	browseCmd.Flags().String("log-file", "", "append loader warnings to this file")
	rootCmd.AddCommand(browseCmd)
}
