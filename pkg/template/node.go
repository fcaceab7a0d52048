package template

import (
	"github.com/weft-ui/weft/pkg/tree"
	"github.com/weft-ui/weft/pkg/vdom"
)

// Props is the property map shape shared with the output tree.
type Props = vdom.Props

// Kind is the template node type discriminator.
type Kind uint8

const (
	// KindElement is a class-identified node with a frozen property
	// snapshot and a back-reference to its source node.
	KindElement Kind = iota

	// KindFragment groups same-named siblings under one logical slot.
	// Fragments have no properties and no source reference.
	KindFragment
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Node is one node of a built template tree. Nodes are frozen once Build
// returns: no field is written afterwards, which is what makes a Template
// safe to synthesize from concurrently.
type Node struct {
	Kind Kind

	// Class is the element's class identifier. Empty for fragments.
	Class string

	// Source is the originating source node. The template only reads
	// through it (selector predicates, change callbacks); it never owns
	// or mutates it. Nil for fragments.
	Source tree.Node

	// Snapshot holds the element's non-default properties, frozen at
	// build time. Nil for fragments.
	Snapshot Props

	// IsRoot is true only on the template's traversal root.
	IsRoot bool

	// SingleFragment marks an element that was grouped into a fragment
	// because its name collided with a sibling's. Its synthesized output
	// is re-wrapped in a single-entry fragment keyed by its own name, so
	// the name stays addressable.
	SingleFragment bool

	// Children maps slot names to child template nodes. Keys are unique
	// within one map.
	Children map[string]*Node
}

// Name returns the element's source name, or "" for fragments.
func (n *Node) Name() string {
	if n.Source == nil {
		return ""
	}
	return n.Source.Name()
}

// Template is the cached, immutable product of Build. One Template serves
// unboundedly many Synthesize calls.
type Template struct {
	root *Node
}

// Root returns the template's root node.
func (t *Template) Root() *Node {
	return t.root
}
