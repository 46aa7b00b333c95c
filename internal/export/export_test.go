// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/doc-viewer/pkg/types"
)

func sampleDetail() *types.DocumentDetail {
	return &types.DocumentDetail{
		DocumentSummary: types.DocumentSummary{
			ID:      "123",
			Title:   "Advanced NLP Techniques",
			Summary: "This paper explores NLP.",
			Tags:    []string{"#nlp", "#ai"},
		},
		Citation: types.NewCitation(
			types.CitationField{Key: "title", Value: "Advanced NLP Techniques"},
			types.CitationField{Key: "authors", Value: "Jane Smith, John Doe"},
			types.CitationField{Key: "year", Value: "2025"},
			types.CitationField{Key: "journal", Value: "Journal of AI Research"},
			types.CitationField{Key: "doi", Value: "10.1234/jair.2025.123"},
		),
	}
}

func TestWriteJSONKeepsCitationOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleDetail()))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Less(t, strings.Index(out, `"authors"`), strings.Index(out, `"year"`))
	assert.Less(t, strings.Index(out, `"year"`), strings.Index(out, `"doi"`))
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sampleDetail()))

	var back types.DocumentDetail
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, "123", back.ID)
	assert.Equal(t, []string{"#nlp", "#ai"}, back.Tags)
	assert.Equal(t, sampleDetail().Citation.Fields(), back.Citation.Fields())
}

func TestToCSLItem(t *testing.T) {
	item := ToCSLItem(sampleDetail())

	if item.Type != "article" {
		t.Errorf("Type = %q, want %q", item.Type, "article")
	}
	if item.ContainerTitle != "Journal of AI Research" {
		t.Errorf("ContainerTitle = %q", item.ContainerTitle)
	}
	if item.Issued == nil || item.Issued.DateParts[0][0] != 2025 {
		t.Errorf("Issued year should be 2025")
	}
	require.Len(t, item.Author, 2)
	assert.Equal(t, CSLName{Given: "Jane", Family: "Smith"}, item.Author[0])
	assert.Equal(t, "10.1234/jair.2025.123", item.DOI)
	assert.Equal(t, "#nlp, #ai", item.Keyword)
}

func TestToCSLItemWithoutCitation(t *testing.T) {
	item := ToCSLItem(&types.DocumentDetail{DocumentSummary: types.DocumentSummary{ID: "1", Title: "T"}})
	assert.Equal(t, "T", item.Title)
	assert.Nil(t, item.Issued)
	assert.Empty(t, item.Author)
}

func TestToCSLItemBadYear(t *testing.T) {
	doc := &types.DocumentDetail{Citation: types.NewCitation(types.CitationField{Key: "year", Value: "n.d."})}
	assert.Nil(t, ToCSLItem(doc).Issued)
}

func TestSplitAuthors(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Jane Smith, John Doe", []string{"Jane Smith", "John Doe"}},
		{"Smith, J.; Doe, J.", []string{"Smith, J.", "Doe, J."}},
		{"", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splitAuthors(tt.in), tt.in)
	}
}

func TestParseAuthorName(t *testing.T) {
	tests := []struct {
		in   string
		want CSLName
	}{
		{"Ashish Vaswani", CSLName{Given: "Ashish", Family: "Vaswani"}},
		{"Mary Jane Watson", CSLName{Given: "Mary Jane", Family: "Watson"}},
		{"Plato", CSLName{Literal: "Plato"}},
		{"  ", CSLName{}},
	}
	for _, tt := range tests {
		if got := parseAuthorName(tt.in); got != tt.want {
			t.Errorf("parseAuthorName(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestWriteCSL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSL(&buf, sampleDetail()))

	s := buf.String()
	assert.Contains(t, s, "type: article")
	assert.Contains(t, s, "container-title: Journal of AI Research")
	assert.Contains(t, s, "DOI: 10.1234/jair.2025.123")
}
