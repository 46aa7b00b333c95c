// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/doc-viewer/pkg/types"
)

// CSLItem is a bibliographic entry in CSL-YAML form, consumable by Pandoc
// and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Abstract       string    `yaml:"abstract,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
	Keyword        string    `yaml:"keyword,omitempty"`
}

// CSLName is a person's name in CSL form.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate is a date in CSL date-parts form.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// WriteCSL writes doc as a one-item CSL-YAML list.
func WriteCSL(w io.Writer, doc *types.DocumentDetail) error {
	return WriteYAML(w, []CSLItem{ToCSLItem(doc)})
}

// ToCSLItem maps the document and the citation keys it recognises (title,
// authors, year, journal, doi, url) to CSL fields. The citation title
// wins over the document title. Unknown keys are dropped.
func ToCSLItem(doc *types.DocumentDetail) CSLItem {
	if doc == nil {
		return CSLItem{Type: "article"}
	}
	item := CSLItem{
		ID:       doc.ID,
		Type:     "article",
		Title:    doc.Title,
		Abstract: doc.Summary,
		Keyword:  strings.Join(doc.Tags, ", "),
	}

	c := doc.Citation
	if v, ok := c.Get("title"); ok && v != "" {
		item.Title = v
	}
	if v, ok := c.Get("authors"); ok {
		for _, name := range splitAuthors(v) {
			item.Author = append(item.Author, parseAuthorName(name))
		}
	}
	if v, ok := c.Get("journal"); ok {
		item.ContainerTitle = v
	}
	if v, ok := c.Get("year"); ok {
		if year, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			item.Issued = &CSLDate{DateParts: [][]int{{year}}}
		}
	}
	if v, ok := c.Get("doi"); ok {
		item.DOI = v
	}
	if v, ok := c.Get("url"); ok {
		item.URL = v
	}
	return item
}

// splitAuthors splits an author list on ";" when present, else on ",".
// Citation arrays arrive joined with ", ".
func splitAuthors(s string) []string {
	sep := ","
	if strings.Contains(s, ";") {
		sep = ";"
	}
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseAuthorName splits a full name into CSL family/given parts on the
// last space. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
