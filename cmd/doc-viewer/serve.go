// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/doc-viewer/internal/devserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a read-only development backend",
	Long: `Serve answers GET /documents/ and GET /document/{id} from a local SQLite
database, so the viewer can run without the ingestion pipeline. --seed
imports documents from a YAML fixture file first; documents without an id
get a random UUID. There is no upload, edit or delete endpoint.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := resolveServeConfig(viper.GetViper())
	cfg.SeedFile, _ = cmd.Flags().GetString("seed")
	seedOnly, _ := cmd.Flags().GetBool("seed-only")

	store, err := devserver.OpenStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.SeedFile != "" {
		docs, err := devserver.LoadFixtures(cfg.SeedFile)
		if err != nil {
			return err
		}
		n, err := devserver.Seed(cmd.Context(), store, docs, os.Stderr)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "seeded %d document(s) into %s\n", n, cfg.DBPath)
	}
	if seedOnly {
		return nil
	}

	return devserver.ListenAndServe(cmd.Context(), cfg, devserver.NewRouter(store, os.Stderr), os.Stderr)
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8000)")
	serveCmd.Flags().String("db", "", "SQLite database path (default data/documents.db)")
	serveCmd.Flags().String("seed", "", "YAML fixture file to import before serving")
	serveCmd.Flags().Bool("seed-only", false, "import --seed and exit without serving")

	_ = viper.BindPFlag(keyServeAddr, serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag(keyServeDB, serveCmd.Flags().Lookup("db"))

	rootCmd.AddCommand(serveCmd)
}
