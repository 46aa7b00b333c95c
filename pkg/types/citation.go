// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.yaml.in/yaml/v3"
)

// CitationField is one bibliographic field. Value is display text; an
// empty Value means the backend sent an empty or null value.
type CitationField struct {
	Key   string
	Value string
}

// Citation is an open-ended mapping of bibliographic field name to value.
// The schema is not fixed (title, authors, year, journal, doi, url, ...),
// and keys keep the order in which the backend emitted them.
type Citation struct {
	fields []CitationField
}

// NewCitation builds a Citation from fields in the given order. A repeated
// key overwrites the earlier value but keeps the earlier position.
func NewCitation(fields ...CitationField) *Citation {
	c := &Citation{}
	for _, f := range fields {
		c.set(f.Key, f.Value)
	}
	return c
}

// Fields returns a copy of the fields in key order.
func (c *Citation) Fields() []CitationField {
	if c == nil {
		return nil
	}
	out := make([]CitationField, len(c.fields))
	copy(out, c.fields)
	return out
}

// Len returns the number of keys, including keys with empty values.
func (c *Citation) Len() int {
	if c == nil {
		return 0
	}
	return len(c.fields)
}

// Get returns the value stored under key.
func (c *Citation) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	for _, f := range c.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

func (c *Citation) set(key, value string) {
	for i := range c.fields {
		if c.fields[i].Key == key {
			c.fields[i].Value = value
			return
		}
	}
	c.fields = append(c.fields, CitationField{Key: key, Value: value})
}

// UnmarshalJSON decodes a JSON object, preserving key order. Non-string
// values are converted to display text by citationText.
func (c *Citation) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("citation: invalid JSON")
	}
	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return fmt.Errorf("citation: expected JSON object, got %s", r.Type)
	}

	c.fields = nil
	r.ForEach(func(key, value gjson.Result) bool {
		c.set(key.String(), citationText(value))
		return true
	})
	return nil
}

// MarshalJSON encodes the citation as a JSON object in key order.
// Fields with an empty key cannot be addressed by a path and are dropped.
func (c Citation) MarshalJSON() ([]byte, error) {
	out := []byte("{}")
	for _, f := range c.fields {
		if f.Key == "" {
			continue
		}
		var err error
		out, err = sjson.SetBytes(out, escapePathKey(f.Key), f.Value)
		if err != nil {
			return nil, fmt.Errorf("citation: encoding %q: %w", f.Key, err)
		}
	}
	return out, nil
}

// UnmarshalYAML decodes a YAML mapping, preserving key order.
func (c *Citation) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("citation: expected mapping at line %d", node.Line)
	}
	c.fields = nil
	for i := 0; i+1 < len(node.Content); i += 2 {
		c.set(node.Content[i].Value, yamlText(node.Content[i+1]))
	}
	return nil
}

// MarshalYAML encodes the citation as a YAML mapping in key order.
func (c Citation) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range c.fields {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Value},
		)
	}
	return node, nil
}

// citationText renders a JSON value as display text: strings as-is,
// numbers and booleans as their literal text, arrays joined with ", ",
// null as empty.
func citationText(v gjson.Result) string {
	switch {
	case v.Type == gjson.Null:
		return ""
	case v.Type == gjson.String:
		return v.Str
	case v.IsArray():
		var parts []string
		for _, el := range v.Array() {
			if s := citationText(el); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case v.IsObject():
		if len(v.Map()) == 0 {
			return ""
		}
		return v.Raw
	default:
		return v.Raw
	}
}

func yamlText(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return ""
		}
		return n.Value
	case yaml.SequenceNode:
		var parts []string
		for _, el := range n.Content {
			if s := yamlText(el); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case yaml.AliasNode:
		if n.Alias != nil {
			return yamlText(n.Alias)
		}
	}
	return ""
}

// escapePathKey escapes the characters sjson treats as path syntax.
func escapePathKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\', '|', '#', '@', ':', '!', '=', '<', '>', '%':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
