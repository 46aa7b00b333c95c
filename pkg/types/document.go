// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for doc-viewer.
// Documents are produced by the ingestion backend and are read-only here:
// a value lives for the duration of one fetch response.
package types

// DocumentSummary is one entry of the document collection as returned by
// GET /documents/.
type DocumentSummary struct {
	// ID is the backend identifier. It is opaque to the viewer.
	ID string `json:"id" yaml:"id"`

	// Title is the extracted document title. Empty when absent.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Summary is the extracted summary text. Empty when absent.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Tags lists the classifier tags in backend order (e.g. "#nlp").
	Tags []string `json:"tags" yaml:"tags,omitempty"`

	// CreatedAt is the ingestion time as ISO-8601 text. It is kept as text
	// so that an unparseable value degrades to "absent" at display time
	// instead of failing the whole response.
	CreatedAt string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// DocumentDetail is a single document as returned by GET /document/{id}.
type DocumentDetail struct {
	DocumentSummary `yaml:",inline"`

	// Citation holds the bibliographic fields. Nil when the backend
	// returned no citation.
	Citation *Citation `json:"citation,omitempty" yaml:"citation,omitempty"`
}
