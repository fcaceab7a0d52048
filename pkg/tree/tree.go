// Package tree defines the source-tree contract consumed by the template
// engine, plus an in-memory node implementation and document loaders.
//
// The engine never mutates a source tree. It only reads names, classes,
// property values, attributes, and tags through the Node interface, and it
// keeps a back-reference to each source node inside the built template so
// that selector predicates and change callbacks can inspect it later.
package tree

import "errors"

// ErrNoProperty is returned by Property when a node holds no explicit value
// for the requested property name.
var ErrNoProperty = errors.New("tree: property not set")

// Node is one node of an externally owned source tree.
//
// Implementations must be safe for concurrent reads; the engine issues no
// writes. Children returns the child nodes in document order; sibling order
// matters because the engine resolves same-named siblings in encounter order.
type Node interface {
	// Name is the node's slot name within its parent. Sibling names may
	// collide; the template builder groups collisions into fragments.
	Name() string

	// Class is the node's class identifier, used to look up reflection
	// metadata in a schema registry.
	Class() string

	// Children enumerates child nodes in document order.
	Children() []Node

	// Property reads the node's current value for a named property.
	// A non-nil error means the value is unavailable; the snapshotter
	// treats that as "equal to the class default" and moves on.
	Property(name string) (any, error)

	// Attribute looks up a free-form attribute by name.
	Attribute(name string) (any, bool)

	// HasTag reports whether the node carries the given tag.
	HasTag(tag string) bool
}

// MemNode is an in-memory Node, useful for statically authored trees and as
// the target of the document loaders.
type MemNode struct {
	name     string
	class    string
	props    map[string]any
	attrs    map[string]any
	tags     map[string]struct{}
	children []*MemNode
}

// New creates a node with the given class and name.
func New(class, name string) *MemNode {
	return &MemNode{
		name:  name,
		class: class,
		props: make(map[string]any),
		attrs: make(map[string]any),
		tags:  make(map[string]struct{}),
	}
}

// Set assigns a property value and returns the node for chaining.
func (n *MemNode) Set(name string, value any) *MemNode {
	n.props[name] = value
	return n
}

// SetAttr assigns an attribute value and returns the node for chaining.
func (n *MemNode) SetAttr(name string, value any) *MemNode {
	n.attrs[name] = value
	return n
}

// Tag adds a tag and returns the node for chaining.
func (n *MemNode) Tag(tags ...string) *MemNode {
	for _, t := range tags {
		n.tags[t] = struct{}{}
	}
	return n
}

// Add appends child nodes in order and returns the node for chaining.
func (n *MemNode) Add(children ...*MemNode) *MemNode {
	n.children = append(n.children, children...)
	return n
}

// Name implements Node.
func (n *MemNode) Name() string { return n.name }

// Class implements Node.
func (n *MemNode) Class() string { return n.class }

// Children implements Node.
func (n *MemNode) Children() []Node {
	if len(n.children) == 0 {
		return nil
	}
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Property implements Node. It returns ErrNoProperty for names the node has
// no explicit value for.
func (n *MemNode) Property(name string) (any, error) {
	v, ok := n.props[name]
	if !ok {
		return nil, ErrNoProperty
	}
	return v, nil
}

// Attribute implements Node.
func (n *MemNode) Attribute(name string) (any, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// HasTag implements Node.
func (n *MemNode) HasTag(tag string) bool {
	_, ok := n.tags[tag]
	return ok
}
