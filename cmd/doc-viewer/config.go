// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/doc-viewer/pkg/types"
)

// Configuration keys. Nested keys map to env vars with "." replaced by
// "_", e.g. serve.addr → DOC_VIEWER_SERVE_ADDR.
const (
	keyAPIURL    = "api_url"
	keyTimeout   = "timeout"
	keyUserAgent = "user_agent"
	keyDisplayTZ = "display_timezone"
	keyServeAddr = "serve.addr"
	keyServeDB   = "serve.db"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyAPIURL, "http://localhost:8000")
	v.SetDefault(keyTimeout, 30*time.Second)
	v.SetDefault(keyUserAgent, "doc-viewer/0.1")
	v.SetDefault(keyDisplayTZ, "")
	v.SetDefault(keyServeAddr, ":8000")
	v.SetDefault(keyServeDB, "data/documents.db")
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("DOC_VIEWER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// resolveViewerConfig reads and validates the viewer settings. The base
// URL must be absolute http(s); a trailing slash is dropped.
func resolveViewerConfig(v *viper.Viper) (types.ViewerConfig, error) {
	cfg := types.ViewerConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   v.GetDuration(keyTimeout),
			UserAgent: v.GetString(keyUserAgent),
		},
		APIURL:          strings.TrimRight(strings.TrimSpace(v.GetString(keyAPIURL)), "/"),
		DisplayTimezone: v.GetString(keyDisplayTZ),
	}

	u, err := url.Parse(cfg.APIURL)
	if err != nil {
		return types.ViewerConfig{}, fmt.Errorf("invalid api_url %q: %w", cfg.APIURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return types.ViewerConfig{}, fmt.Errorf("invalid api_url %q: want http(s)://host[:port]", cfg.APIURL)
	}
	if cfg.Timeout < 0 {
		return types.ViewerConfig{}, fmt.Errorf("invalid timeout %s: must not be negative", cfg.Timeout)
	}
	if _, err := displayLocation(cfg); err != nil {
		return types.ViewerConfig{}, err
	}
	return cfg, nil
}

func resolveServeConfig(v *viper.Viper) types.ServeConfig {
	return types.ServeConfig{
		Addr:   v.GetString(keyServeAddr),
		DBPath: v.GetString(keyServeDB),
	}
}

// displayLocation returns the zone timestamps are rendered in.
func displayLocation(cfg types.ViewerConfig) (*time.Location, error) {
	if cfg.DisplayTimezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid display_timezone %q: %w", cfg.DisplayTimezone, err)
	}
	return loc, nil
}
