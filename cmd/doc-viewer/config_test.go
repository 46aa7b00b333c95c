// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/doc-viewer/pkg/types"
)

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func TestResolveViewerConfigDefaults(t *testing.T) {
	cfg, err := resolveViewerConfig(newViper())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "doc-viewer/0.1", cfg.UserAgent)
	assert.Equal(t, "", cfg.DisplayTimezone)
}

func TestResolveViewerConfigEnv(t *testing.T) {
	t.Setenv("DOC_VIEWER_API_URL", "https://docs.example.com/api/")
	t.Setenv("DOC_VIEWER_TIMEOUT", "5s")
	t.Setenv("DOC_VIEWER_SERVE_ADDR", ":9000")

	v := newViper()
	bindEnv(v)

	cfg, err := resolveViewerConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com/api", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, ":9000", resolveServeConfig(v).Addr)
}

func TestResolveViewerConfigRejects(t *testing.T) {
	tests := []struct {
		key   string
		value any
	}{
		{keyAPIURL, "localhost:8000"},
		{keyAPIURL, "ftp://example.com"},
		{keyAPIURL, "http://"},
		{keyTimeout, -time.Second},
		{keyDisplayTZ, "Mars/Olympus_Mons"},
	}
	for _, tt := range tests {
		v := newViper()
		v.Set(tt.key, tt.value)
		if _, err := resolveViewerConfig(v); err == nil {
			t.Errorf("%s=%v: expected error", tt.key, tt.value)
		}
	}
}

func TestDisplayLocation(t *testing.T) {
	loc, err := displayLocation(types.ViewerConfig{})
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = displayLocation(types.ViewerConfig{DisplayTimezone: "UTC"})
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestResolveServeConfigDefaults(t *testing.T) {
	cfg := resolveServeConfig(newViper())
	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, "data/documents.db", cfg.DBPath)
}

func TestCheckFormat(t *testing.T) {
	assert.NoError(t, checkFormat("json", "text", "json"))
	assert.Error(t, checkFormat("csv", "text", "json"))
}

// TestDocumentsCommands runs the list and show subcommands against a fake
// backend.
func TestDocumentsCommands(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/documents/":
			w.Write([]byte(`[{"id":"123","title":"Advanced NLP Techniques","tags":["#nlp"],"created_at":"2025-01-05T15:45:00"}]`))
		case "/document/123":
			w.Write([]byte(`{"id":"123","title":"T","tags":["#a"],"citation":{"title":"T","authors":""}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"list text", []string{"documents", "list", "--tz", "UTC"}, "Jan 5, 2025, 03:45 PM", false},
		{"list json", []string{"documents", "list", "--format", "json"}, `"id": "123"`, false},
		{"show text", []string{"documents", "show", "123"}, "Title:", false},
		{"show csl", []string{"documents", "show", "123", "--format", "csl"}, "type: article", false},
		{"show missing", []string{"documents", "show", "999"}, "It may not exist", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&out)
			rootCmd.SetArgs(append(tt.args, "--api-url", ts.URL))
			t.Cleanup(func() {
				rootCmd.SetArgs(nil)
				resetFlags(t, "format", "tz", "api-url")
			})

			err := rootCmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.True(t, strings.Contains(out.String(), tt.want), "output %q lacks %q", out.String(), tt.want)
			if tt.wantErr {
				var stderr bytes.Buffer
				reportError(&stderr, err)
				assert.Empty(t, stderr.String(), "text output already showed the failure")
				assert.Equal(t, 1, strings.Count(out.String(), "It may not exist"))
			}
		})
	}
}

func TestDocumentsListFailurePrintedOnce(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"documents", "list", "--api-url", ts.URL})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags(t, "api-url")
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	reportError(&stderr, err)

	msg := "Error loading documents. Please try again later."
	assert.Equal(t, 1, strings.Count(stdout.String(), msg))
	assert.NotContains(t, stderr.String(), msg)
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, errors.New("unsupported format"))
	assert.Equal(t, "Error: unsupported format\n", buf.String())

	buf.Reset()
	reportError(&buf, &shownError{msg: "already rendered"})
	assert.Empty(t, buf.String())
}

// resetFlags restores flags that cobra keeps between Execute calls.
func resetFlags(t *testing.T, names ...string) {
	t.Helper()
	sets := []*pflag.FlagSet{
		rootCmd.PersistentFlags(),
		documentsListCmd.Flags(),
		documentsShowCmd.Flags(),
	}
	for _, fs := range sets {
		for _, name := range names {
			if f := fs.Lookup(name); f != nil {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			}
		}
	}
}
