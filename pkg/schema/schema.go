// Package schema is the reflection-metadata collaborator: per-class property
// descriptors (name, default value, accessibility tier) and an "is-a"
// hierarchy test.
//
// The template engine consumes a Registry read-only; it never registers
// classes itself. Registries are either assembled in code, loaded from a
// YAML definition file, or taken from Builtin.
package schema

// Access is a property's accessibility tier.
type Access uint8

const (
	// AccessReadWrite properties are readable and settable; they are the
	// only tier that participates in property snapshots.
	AccessReadWrite Access = iota

	// AccessReadOnly properties can be read but never set by a renderer.
	AccessReadOnly

	// AccessHidden properties are internal and never exposed.
	AccessHidden
)

// String returns the string representation of the Access tier.
func (a Access) String() string {
	switch a {
	case AccessReadWrite:
		return "ReadWrite"
	case AccessReadOnly:
		return "ReadOnly"
	case AccessHidden:
		return "Hidden"
	default:
		return "Unknown"
	}
}

// Property describes one declared property of a class.
type Property struct {
	Name    string
	Default any
	Access  Access
}

// Class describes one node class: its own properties plus a superclass link
// forming the is-a hierarchy.
type Class struct {
	Name       string
	Super      string
	Properties []Property
}

// Registry holds class descriptors keyed by class name.
type Registry struct {
	classes map[string]*Class
}

// NewRegistry creates a registry from the given classes. Later classes with
// a duplicate name replace earlier ones.
func NewRegistry(classes ...*Class) *Registry {
	r := &Registry{classes: make(map[string]*Class, len(classes))}
	for _, c := range classes {
		r.classes[c.Name] = c
	}
	return r
}

// Class returns the descriptor for a class name.
func (r *Registry) Class(name string) (*Class, bool) {
	c, ok := r.classes[name]
	return c, ok
}

// PropertiesOf returns the full property set of a class, including
// inherited properties. A subclass redeclaration shadows its ancestor's.
// The second return value is false when the class is unknown.
func (r *Registry) PropertiesOf(name string) ([]Property, bool) {
	c, ok := r.classes[name]
	if !ok {
		return nil, false
	}
	var out []Property
	seen := make(map[string]struct{})
	visited := make(map[string]struct{})
	for ; c != nil; c = r.classes[c.Super] {
		// A cyclic super chain revisits a class; stop there.
		if _, again := visited[c.Name]; again {
			break
		}
		visited[c.Name] = struct{}{}
		for _, p := range c.Properties {
			if _, dup := seen[p.Name]; dup {
				continue
			}
			seen[p.Name] = struct{}{}
			out = append(out, p)
		}
		if c.Super == "" {
			break
		}
	}
	return out, true
}

// IsA reports whether class is ancestor, or a descendant of it.
func (r *Registry) IsA(class, ancestor string) bool {
	c, ok := r.classes[class]
	if !ok {
		return false
	}
	visited := make(map[string]struct{})
	for {
		if c.Name == ancestor {
			return true
		}
		if c.Super == "" {
			return false
		}
		if _, again := visited[c.Name]; again {
			return false
		}
		visited[c.Name] = struct{}{}
		c, ok = r.classes[c.Super]
		if !ok {
			return false
		}
	}
}

// FindCycle returns the name of a class whose super chain loops back on
// itself, or "" when the hierarchy is acyclic.
func (r *Registry) FindCycle() string {
	for name := range r.classes {
		visited := make(map[string]struct{})
		for c := r.classes[name]; c != nil; c = r.classes[c.Super] {
			if _, again := visited[c.Name]; again {
				return name
			}
			visited[c.Name] = struct{}{}
			if c.Super == "" {
				break
			}
		}
	}
	return ""
}
