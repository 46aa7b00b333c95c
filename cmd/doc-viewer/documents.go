// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doc-viewer/internal/api"
	"github.com/pdiddy/doc-viewer/internal/export"
	"github.com/pdiddy/doc-viewer/internal/loader"
	"github.com/pdiddy/doc-viewer/internal/view"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Print the document list or a single document",
	Long: `Documents fetches from the backend once and prints the result. Text output
is the same view the interactive browser shows; json and yaml print the
documents as the backend returned them. A failed fetch prints the error
message and exits non-zero.`,
}

// --- list subcommand ---

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all documents, newest first",
	Args:  cobra.NoArgs,
	RunE:  runDocumentsList,
}

func runDocumentsList(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := checkFormat(format, export.FormatText, export.FormatJSON, export.FormatYAML); err != nil {
		return err
	}
	loc, err := displayLocation(viewerConfig)
	if err != nil {
		return err
	}

	l := loader.NewCollectionLoader(api.NewClient(viewerConfig, nil), os.Stderr)
	state := l.Load(cmd.Context())
	defer l.Close()

	out := cmd.OutOrStdout()
	if format == export.FormatText {
		fmt.Fprintln(out, view.RenderList(state, loc, -1))
		return shownFailure(state.Message())
	}
	docs, ok := state.Value()
	if !ok {
		return failure(state.Message())
	}
	return writeFormatted(out, format, docs)
}

// --- show subcommand ---

var documentsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one document with its citation",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsShow,
}

func runDocumentsShow(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := checkFormat(format, export.FormatText, export.FormatJSON, export.FormatYAML, export.FormatCSL); err != nil {
		return err
	}
	loc, err := displayLocation(viewerConfig)
	if err != nil {
		return err
	}

	l := loader.NewRecordLoader(api.NewClient(viewerConfig, nil), os.Stderr)
	state := l.Load(cmd.Context(), args[0])
	defer l.Close()

	out := cmd.OutOrStdout()
	if format == export.FormatText {
		fmt.Fprintln(out, view.RenderDetail(state, loc))
		return shownFailure(state.Message())
	}
	doc, ok := state.Value()
	if !ok {
		return failure(state.Message())
	}
	if format == export.FormatCSL {
		return export.WriteCSL(out, doc)
	}
	return writeFormatted(out, format, doc)
}

// failure turns a Failed state's message into the command error.
func failure(msg string, failed bool) error {
	if !failed {
		return nil
	}
	return errors.New(msg)
}

// shownFailure is failure for output that already rendered the message.
func shownFailure(msg string, failed bool) error {
	if !failed {
		return nil
	}
	return &shownError{msg: msg}
}

func checkFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q (want one of %v)", format, allowed)
}

func writeFormatted(w io.Writer, format string, v any) error {
	if format == export.FormatYAML {
		return export.WriteYAML(w, v)
	}
	return export.WriteJSON(w, v)
}

func init() {
	documentsListCmd.Flags().String("format", export.FormatText, "output format: text, json or yaml")
	documentsShowCmd.Flags().String("format", export.FormatText, "output format: text, json, yaml or csl")

	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsShowCmd)
	rootCmd.AddCommand(documentsCmd)
}
