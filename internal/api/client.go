// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api is the client for the document backend's two read endpoints:
// GET /documents/ and GET /document/{id}.
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/doc-viewer/internal/httputil"
	"github.com/pdiddy/doc-viewer/pkg/types"
)

// Client reads documents from the backend. The base URL is fixed at
// construction.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// NewClient creates a client for cfg.APIURL. When hc is nil a client with
// cfg.Timeout is created.
func NewClient(cfg types.ViewerConfig, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.APIURL, "/"),
		userAgent: cfg.UserAgent,
		http:      hc,
	}
}

// BaseURL returns the backend base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// ListDocuments fetches the complete document collection. An empty JSON
// array is a valid, empty result; a JSON null is malformed.
func (c *Client) ListDocuments(ctx context.Context) ([]types.DocumentSummary, error) {
	var docs []types.DocumentSummary
	if err := httputil.GetJSON(ctx, c.http, c.baseURL+"/documents/", c.userAgent, &docs); err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	if docs == nil {
		return nil, fmt.Errorf("listing documents: %w: expected a JSON array", httputil.ErrMalformed)
	}
	return docs, nil
}

// GetDocument fetches one document. The id is opaque: it is path-escaped
// but never validated. A response whose id differs from the requested id
// is treated as malformed.
func (c *Client) GetDocument(ctx context.Context, id string) (*types.DocumentDetail, error) {
	var doc *types.DocumentDetail
	reqURL := c.baseURL + "/document/" + url.PathEscape(id)
	if err := httputil.GetJSON(ctx, c.http, reqURL, c.userAgent, &doc); err != nil {
		return nil, fmt.Errorf("fetching document %q: %w", id, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("fetching document %q: %w: empty body", id, httputil.ErrMalformed)
	}
	if doc.ID != id {
		return nil, fmt.Errorf("fetching document %q: %w: response id %q", id, httputil.ErrMalformed, doc.ID)
	}
	return doc, nil
}
