// Package config loads layout documents from YAML.
//
// A document describes one Rows or Cols container. Its children are row or
// col panes and splitters:
//
//	layout:
//	  rows:
//	    - row: {id: top, height: 10px, min: 3, text: "hello"}
//	    - splitter
//	    - row: {id: bottom, command: [top]}
package config

import (
	"errors"
	"fmt"
	"os"

	"panekit/internal/layout"

	"gopkg.in/yaml.v3"
)

// Document is a parsed layout file.
type Document struct {
	Layout Node `yaml:"layout"`
}

// Node is one entry of a rows or cols list, or the document root.
// Exactly one field is set.
type Node struct {
	Rows     []Node    `yaml:"rows,omitempty"`
	Cols     []Node    `yaml:"cols,omitempty"`
	Row      *Pane     `yaml:"row,omitempty"`
	Col      *Pane     `yaml:"col,omitempty"`
	Splitter *Splitter `yaml:"splitter,omitempty"`
}

// Pane describes a row or col. Width and Height are aliases for Extent.
// A pane holds at most one of Text, Command, Button, Rows and Cols.
type Pane struct {
	ID      string   `yaml:"id,omitempty"`
	Class   string   `yaml:"class,omitempty"`
	Min     int      `yaml:"min,omitempty"`
	Extent  string   `yaml:"extent,omitempty"`
	Width   string   `yaml:"width,omitempty"`
	Height  string   `yaml:"height,omitempty"`
	Text    string   `yaml:"text,omitempty"`
	Command []string `yaml:"command,omitempty"`
	Button  *Button  `yaml:"button,omitempty"`
	Rows    []Node   `yaml:"rows,omitempty"`
	Cols    []Node   `yaml:"cols,omitempty"`
}

// Splitter describes a splitter. Zero thickness means the default.
type Splitter struct {
	Thickness int    `yaml:"thickness,omitempty"`
	Class     string `yaml:"class,omitempty"`
}

// Button describes a button. Actions name handlers registered with the
// builder.
type Button struct {
	Label      string `yaml:"label,omitempty"`
	Icon       string `yaml:"icon,omitempty"`
	Class      string `yaml:"class,omitempty"`
	Action     string `yaml:"action,omitempty"`
	IconAction string `yaml:"icon_action,omitempty"`
	Disabled   bool   `yaml:"disabled,omitempty"`
}

// UnmarshalYAML accepts "splitter" as a bare list item and "splitter:"
// with no value.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Value == "splitter" {
		n.Splitter = &Splitter{}
		return nil
	}
	type plain Node
	if err := value.Decode((*plain)(n)); err != nil {
		return err
	}
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			if value.Content[i].Value == "splitter" && n.Splitter == nil {
				n.Splitter = &Splitter{}
			}
		}
	}
	return nil
}

// Load reads and validates the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid layout")

// Validate checks the document's shape. It does not check that splitters
// sit between matching panes; that is reported when the layout mounts.
func (d *Document) Validate() error {
	root := d.Layout
	if root.Rows == nil && root.Cols == nil {
		return fmt.Errorf("%w: layout must be rows or cols", ErrInvalid)
	}
	return root.validate("layout")
}

func (n *Node) validate(path string) error {
	set := 0
	for _, ok := range []bool{n.Rows != nil, n.Cols != nil, n.Row != nil, n.Col != nil, n.Splitter != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("%w: %s: want exactly one of rows, cols, row, col, splitter", ErrInvalid, path)
	}
	switch {
	case n.Rows != nil:
		return validateList(path+".rows", n.Rows)
	case n.Cols != nil:
		return validateList(path+".cols", n.Cols)
	case n.Row != nil:
		return n.Row.validate(path+".row", layout.KindRow)
	case n.Col != nil:
		return n.Col.validate(path+".col", layout.KindCol)
	default:
		if n.Splitter.Thickness < 0 {
			return fmt.Errorf("%w: %s.splitter: negative thickness", ErrInvalid, path)
		}
		return nil
	}
}

func validateList(path string, nodes []Node) error {
	for i := range nodes {
		if err := nodes[i].validate(fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pane) validate(path string, k layout.Kind) error {
	if p.Min < 0 {
		return fmt.Errorf("%w: %s: negative min", ErrInvalid, path)
	}
	if _, _, err := p.ExtentFor(k); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	content := 0
	for _, ok := range []bool{p.Text != "", len(p.Command) > 0, p.Button != nil, p.Rows != nil, p.Cols != nil} {
		if ok {
			content++
		}
	}
	if content > 1 {
		return fmt.Errorf("%w: %s: want at most one of text, command, button, rows, cols", ErrInvalid, path)
	}
	if err := validateList(path+".rows", p.Rows); err != nil {
		return err
	}
	return validateList(path+".cols", p.Cols)
}

// ExtentFor returns the fixed extent of a pane of kind k. Height applies
// to rows and Width to cols; Extent applies to both and wins. ok is false
// for a flexible pane.
func (p *Pane) ExtentFor(k layout.Kind) (v int, ok bool, err error) {
	s := p.Extent
	if s == "" {
		switch k {
		case layout.KindRow:
			s = p.Height
		case layout.KindCol:
			s = p.Width
		}
	}
	if s == "" {
		return 0, false, nil
	}
	v, err = layout.ParsePx(s)
	if err != nil {
		return 0, false, err
	}
	if v < 0 {
		return 0, false, fmt.Errorf("negative extent %q", s)
	}
	return v, true, nil
}
