// Package layout describes navigation trees declaratively and builds them
// into navtree nodes.
package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Resolver kinds accepted in a layout document.
const (
	KindDefault    = "default"
	KindVertical   = "vertical"
	KindHorizontal = "horizontal"
	KindGrid       = "grid"
	KindSpatial    = "spatial"
	KindExpr       = "expr"
)

// Kinds lists every resolver kind in documentation order.
var Kinds = []string{KindDefault, KindVertical, KindHorizontal, KindGrid, KindSpatial, KindExpr}

// Format is the serialization of a layout document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// Document is a complete layout file.
type Document struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty"`
	Root Spec   `yaml:"root" json:"root" toml:"root"`
}

// Spec describes one node and its subtree.
type Spec struct {
	ID       string `yaml:"id,omitempty" json:"id,omitempty" toml:"id,omitempty"`
	Resolver string `yaml:"resolver,omitempty" json:"resolver,omitempty" toml:"resolver,omitempty"`
	Cols     int    `yaml:"cols,omitempty" json:"cols,omitempty" toml:"cols,omitempty"`
	Expr     string `yaml:"expr,omitempty" json:"expr,omitempty" toml:"expr,omitempty"`
	Rect     *Rect  `yaml:"rect,omitempty" json:"rect,omitempty" toml:"rect,omitempty"`
	Hidden   bool   `yaml:"hidden,omitempty" json:"hidden,omitempty" toml:"hidden,omitempty"`
	Focused  bool   `yaml:"focused,omitempty" json:"focused,omitempty" toml:"focused,omitempty"`
	Children []Spec `yaml:"children,omitempty" json:"children,omitempty" toml:"children,omitempty"`
}

// Rect is a bounding box in layout units.
type Rect struct {
	Left   float64 `yaml:"left" json:"left" toml:"left"`
	Right  float64 `yaml:"right" json:"right" toml:"right"`
	Top    float64 `yaml:"top" json:"top" toml:"top"`
	Bottom float64 `yaml:"bottom" json:"bottom" toml:"bottom"`
}

// Kind returns the effective resolver kind. A node with an expression and no
// explicit kind is an expression node.
func (s Spec) Kind() string {
	if s.Resolver != "" {
		return strings.ToLower(s.Resolver)
	}
	if s.Expr != "" {
		return KindExpr
	}
	return KindDefault
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported layout file extension %q (want .yaml, .yml, .json or .toml)", filepath.Ext(path))
}

// LoadFile reads and decodes a layout file.
func LoadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode parses a layout document. Unknown fields are rejected.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML layout: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON layout: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML layout: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported layout format %q", format)
	}
	return &doc, nil
}

// Encode serializes doc in the given format.
func Encode(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case FormatTOML:
		return toml.Marshal(doc)
	}
	return nil, fmt.Errorf("unsupported layout format %q", format)
}
