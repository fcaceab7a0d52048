package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	ierr "github.com/weft-ui/weft/internal/errors"
)

// document is the on-disk shape of a source tree. Children are a list, not a
// map, so that same-named siblings survive the round trip.
type document struct {
	Name       string         `yaml:"name" json:"name"`
	Class      string         `yaml:"class" json:"class"`
	Properties map[string]any `yaml:"properties,omitempty" json:"properties,omitempty"`
	Attributes map[string]any `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Tags       []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	Children   []document     `yaml:"children,omitempty" json:"children,omitempty"`
}

// LoadYAML parses a YAML source-tree document into an in-memory tree.
func LoadYAML(data []byte) (*MemNode, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, ierr.New("W101").Wrap(err)
	}
	return doc.build("")
}

// LoadJSONC parses a JSON-with-comments source-tree document. The document
// is translated to plain JSON first, then decoded through the YAML decoder
// (YAML is a JSON superset, and this keeps one decode path).
func LoadJSONC(data []byte) (*MemNode, error) {
	return LoadYAML(jsonc.ToJSON(data))
}

// LoadFile loads a source-tree document, picking the decoder from the file
// extension: .json/.jsonc use the JSONC decoder, everything else YAML.
func LoadFile(path string) (*MemNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return LoadJSONC(data)
	default:
		return LoadYAML(data)
	}
}

func (d *document) build(path string) (*MemNode, error) {
	if d.Class == "" {
		return nil, ierr.New("W101").WithDetail(fmt.Sprintf("node %q has no class", joinPath(path, d.Name)))
	}
	name := d.Name
	if name == "" {
		name = d.Class
	}
	n := New(d.Class, name)
	for k, v := range d.Properties {
		n.Set(k, v)
	}
	for k, v := range d.Attributes {
		n.SetAttr(k, v)
	}
	n.Tag(d.Tags...)
	for i := range d.Children {
		child, err := d.Children[i].build(joinPath(path, name))
		if err != nil {
			return nil, err
		}
		n.Add(child)
	}
	return n, nil
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
