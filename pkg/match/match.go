// Package match provides predicate selectors over source-tree nodes:
// constructors for the common shapes (name, class, hierarchy, patterns,
// attributes, tags) and combinators to compose them. Everything reduces to
// a Predicate, which the template engine evaluates against an element's
// source node in registration order.
package match

import (
	"reflect"
	"regexp"

	"github.com/weft-ui/weft/pkg/schema"
	"github.com/weft-ui/weft/pkg/tree"
)

// Predicate reports whether a source node is selected.
type Predicate func(n tree.Node) bool

// Name selects nodes with the exact name.
func Name(name string) Predicate {
	return func(n tree.Node) bool {
		return n.Name() == name
	}
}

// Class selects nodes with the exact class identifier.
func Class(class string) Predicate {
	return func(n tree.Node) bool {
		return n.Class() == class
	}
}

// IsA selects nodes whose class is ancestor or one of its descendants in
// the registry's hierarchy.
func IsA(reg *schema.Registry, ancestor string) Predicate {
	return func(n tree.Node) bool {
		return reg.IsA(n.Class(), ancestor)
	}
}

// NameMatches selects nodes whose name matches the regular expression.
// The pattern must compile; selectors are statically authored, so a bad
// pattern is a programming error and panics.
func NameMatches(pattern string) Predicate {
	re := regexp.MustCompile(pattern)
	return func(n tree.Node) bool {
		return re.MatchString(n.Name())
	}
}

// ClassMatches selects nodes whose class matches the regular expression.
func ClassMatches(pattern string) Predicate {
	re := regexp.MustCompile(pattern)
	return func(n tree.Node) bool {
		return re.MatchString(n.Class())
	}
}

// AttrEquals selects nodes carrying an attribute with the given value.
func AttrEquals(name string, value any) Predicate {
	return func(n tree.Node) bool {
		v, ok := n.Attribute(name)
		return ok && reflect.DeepEqual(v, value)
	}
}

// HasTag selects nodes carrying the given tag.
func HasTag(tag string) Predicate {
	return func(n tree.Node) bool {
		return n.HasTag(tag)
	}
}

// Any selects nodes matched by at least one of the predicates.
func Any(preds ...Predicate) Predicate {
	return func(n tree.Node) bool {
		for _, p := range preds {
			if p(n) {
				return true
			}
		}
		return false
	}
}

// All selects nodes matched by every predicate.
func All(preds ...Predicate) Predicate {
	return func(n tree.Node) bool {
		for _, p := range preds {
			if !p(n) {
				return false
			}
		}
		return true
	}
}

// Not inverts a predicate.
func Not(p Predicate) Predicate {
	return func(n tree.Node) bool {
		return !p(n)
	}
}
