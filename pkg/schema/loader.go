package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	ierr "github.com/weft-ui/weft/internal/errors"
)

// classDef is the on-disk shape of one class in a registry file.
type classDef struct {
	Super      string         `yaml:"super,omitempty"`
	Properties []propertyDef  `yaml:"properties,omitempty"`
}

type propertyDef struct {
	Name    string `yaml:"name"`
	Default any    `yaml:"default,omitempty"`
	Access  string `yaml:"access,omitempty"`
}

// LoadYAML parses a YAML registry definition: a map of class name to
// superclass and property list.
//
//	Frame:
//	  super: GuiObject
//	  properties:
//	    - {name: BorderSize, default: 1}
//	    - {name: AbsoluteSize, access: readonly}
func LoadYAML(data []byte) (*Registry, error) {
	var defs map[string]classDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, ierr.New("W102").Wrap(err)
	}
	classes := make([]*Class, 0, len(defs))
	for name, def := range defs {
		c := &Class{Name: name, Super: def.Super}
		for _, p := range def.Properties {
			access, err := parseAccess(p.Access)
			if err != nil {
				return nil, ierr.New("W102").WithDetail("class %q, property %q: %v", name, p.Name, err)
			}
			c.Properties = append(c.Properties, Property{
				Name:    p.Name,
				Default: p.Default,
				Access:  access,
			})
		}
		classes = append(classes, c)
	}
	reg := NewRegistry(classes...)
	if cls := reg.FindCycle(); cls != "" {
		return nil, ierr.New("W102").
			WithDetail("class %q has a cyclic super chain", cls).
			WithSuggestion("every super chain must end at a class with no super")
	}
	return reg, nil
}

// LoadFile loads a YAML registry definition from disk.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return LoadYAML(data)
}

func parseAccess(s string) (Access, error) {
	switch s {
	case "", "readwrite":
		return AccessReadWrite, nil
	case "readonly":
		return AccessReadOnly, nil
	case "hidden":
		return AccessHidden, nil
	default:
		return 0, fmt.Errorf("unknown access tier %q", s)
	}
}
