// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for calls to the document backend.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero disables the timeout, in
	// which case a hung request leaves the view in Loading.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "doc-viewer/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ViewerConfig holds the settings of the list and detail views. It is
// resolved once at startup and passed by value afterwards.
type ViewerConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIURL is the backend base URL without a trailing slash
	// (default "http://localhost:8000").
	APIURL string `json:"api_url" yaml:"api_url"`

	// DisplayTimezone is the IANA zone timestamps are rendered in.
	// Empty means the process local zone.
	DisplayTimezone string `json:"display_timezone,omitempty" yaml:"display_timezone,omitempty"`
}

// ServeConfig holds settings for the read-only development backend.
type ServeConfig struct {
	// Addr is the listen address (default ":8000").
	Addr string `json:"addr" yaml:"addr"`

	// DBPath is the SQLite database file (default "data/documents.db").
	DBPath string `json:"db" yaml:"db"`

	// SeedFile is an optional YAML fixture file imported before serving.
	SeedFile string `json:"seed,omitempty" yaml:"seed,omitempty"`
}
