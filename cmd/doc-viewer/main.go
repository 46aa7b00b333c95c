// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the doc-viewer CLI.
// doc-viewer browses the documents produced by the ingestion backend:
// an interactive browser (browse), plain listing and detail output
// (documents), and a read-only development backend (serve).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/doc-viewer/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// viewerConfig is resolved once in PersistentPreRunE and read-only after.
var viewerConfig types.ViewerConfig

// rootCmd is the base command for the doc-viewer CLI.
var rootCmd = &cobra.Command{
	Use:   "doc-viewer",
	Short: "Browse documents processed by the ingestion backend",
	Long: `doc-viewer reads the document collection from the ingestion backend and
shows each document's title, summary, tags and citation.

The backend base URL comes from --api-url, DOC_VIEWER_API_URL (a .env file
is honoured), or api_url in doc-viewer.yaml, and defaults to
http://localhost:8000.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveViewerConfig(viper.GetViper())
		if err != nil {
			return err
		}
		viewerConfig = cfg
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	setDefaults(viper.GetViper())

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./doc-viewer.yaml or ~/.config/doc-viewer/doc-viewer.yaml)")
	rootCmd.PersistentFlags().String("api-url", "", "backend base URL (default http://localhost:8000)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout, 0 disables it (default 30s)")
	rootCmd.PersistentFlags().String("tz", "", "IANA time zone for timestamps (default local)")

	_ = viper.BindPFlag(keyAPIURL, rootCmd.PersistentFlags().Lookup("api-url"))
	_ = viper.BindPFlag(keyTimeout, rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag(keyDisplayTZ, rootCmd.PersistentFlags().Lookup("tz"))
}

func initConfig() {
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("doc-viewer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "doc-viewer"))
		}
	}

	bindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		reportError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// shownError is a failure whose message the command already printed as
// part of its output.
type shownError struct {
	msg string
}

func (e *shownError) Error() string { return e.msg }

// reportError prints err unless the command already showed it.
func reportError(w io.Writer, err error) {
	var shown *shownError
	if errors.As(err, &shown) {
		return
	}
	fmt.Fprintln(w, "Error:", err)
}
