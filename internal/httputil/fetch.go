// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP helper shared by the document loaders
// and the classification of backend failures.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Failure classes. Callers test with errors.Is; the loaders collapse all
// of them into one user-facing message and only log the distinction.
var (
	// ErrNetwork means the request could not be completed.
	ErrNetwork = errors.New("network failure")

	// ErrNotFound means the request was valid but the record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMalformed means a response arrived but could not be used.
	ErrMalformed = errors.New("malformed response")

	// ErrUnexpectedStatus matches every non-2xx StatusError.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// maxErrorBody caps how much of an error response body is kept.
const maxErrorBody = 512

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// Is makes 404 and 410 responses match ErrNotFound and every status
// error match ErrUnexpectedStatus.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound || e.StatusCode == http.StatusGone
	case ErrUnexpectedStatus:
		return true
	}
	return false
}

// GetJSON issues a GET request for rawURL and decodes a 2xx JSON body
// into out. Transport failures wrap ErrNetwork, non-2xx responses are
// returned as *StatusError, and undecodable bodies (including trailing
// data after the JSON value) wrap ErrMalformed.
// No retries are attempted.
func GetJSON(ctx context.Context, client *http.Client, rawURL, userAgent string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: creating request: %w", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("%w: trailing data after JSON value", ErrMalformed)
	}
	return nil
}

// Classify names the failure class of err for log lines.
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not found"
	case errors.Is(err, ErrMalformed):
		return "malformed response"
	case errors.Is(err, ErrUnexpectedStatus):
		return "unexpected status"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	case errors.Is(err, ErrNetwork):
		return "network failure"
	default:
		return "error"
	}
}
