package shapes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned for descriptors whose kind is not a known shape.
var ErrUnknownKind = errors.New("shapes: unknown shape kind")

// Shape kinds accepted in documents.
const (
	KindCircle    = "circle"
	KindRectangle = "rectangle"
)

// Descriptor is the document form of a single shape. Only the fields
// relevant to Kind are read; missing dimensions default to 0.
type Descriptor struct {
	Kind   string  `yaml:"kind" json:"kind"`
	Radius float64 `yaml:"radius,omitempty" json:"radius,omitempty"`
	Width  float64 `yaml:"width,omitempty" json:"width,omitempty"`
	Height float64 `yaml:"height,omitempty" json:"height,omitempty"`
}

// Shape builds the concrete shape described by d. Rectangles go through
// NewRectangle, so negative dimensions are clamped here too.
func (d Descriptor) Shape() (Shape, error) {
	switch normalizeKind(d.Kind) {
	case KindCircle:
		return NewCircle(d.Radius), nil
	case KindRectangle:
		return NewRectangle(d.Width, d.Height), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}
}

// DescriptorOf is the inverse of Descriptor.Shape for the built-in shapes.
func DescriptorOf(s Shape) (Descriptor, error) {
	switch v := s.(type) {
	case Circle:
		return Descriptor{Kind: KindCircle, Radius: v.Radius}, nil
	case *Circle:
		return Descriptor{Kind: KindCircle, Radius: v.Radius}, nil
	case Rectangle:
		return Descriptor{Kind: KindRectangle, Width: v.width, Height: v.height}, nil
	case *Rectangle:
		return Descriptor{Kind: KindRectangle, Width: v.width, Height: v.height}, nil
	default:
		return Descriptor{}, fmt.Errorf("%w: %T", ErrUnknownKind, s)
	}
}

func normalizeKind(kind string) string {
	k := strings.ToLower(strings.TrimSpace(kind))
	if k == "rect" {
		return KindRectangle
	}
	return k
}

// document accepts both a bare list and a {shapes: [...]} mapping.
type document struct {
	Shapes []Descriptor `yaml:"shapes"`
}

// DecodeShapes reads a YAML or JSON shape document from r. The document is
// either a list of descriptors or a mapping with a "shapes" list. An empty
// document yields no shapes.
func DecodeShapes(r io.Reader) ([]Shape, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("shapes: reading document: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []Shape{}, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("shapes: parsing document: %w", err)
	}

	var descs []Descriptor
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&descs); err != nil {
			return nil, fmt.Errorf("shapes: decoding shape list: %w", err)
		}
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("shapes: decoding document: %w", err)
		}
		descs = doc.Shapes
	default:
		return nil, fmt.Errorf("shapes: document must be a list or a mapping with a shapes key")
	}

	out := make([]Shape, 0, len(descs))
	for i, d := range descs {
		s, err := d.Shape()
		if err != nil {
			return nil, fmt.Errorf("shapes: shape %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// LoadShapes reads a shape document from disk.
func LoadShapes(path string) ([]Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("shapes: opening %s: %w", path, err)
	}
	defer f.Close()

	out, err := DecodeShapes(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
