// Package vdom defines the output tree emitted by template synthesis and
// consumed by a declarative renderer.
//
// Nodes form a small tagged union: elements carry a class identifier, a
// props map, and name-keyed children; fragments carry only name-keyed
// children and flatten multiple nodes into one logical slot; text nodes
// carry a string; component nodes defer to an external Component whose
// Render method produces the actual subtree.
//
// The package does not reconcile, diff, or mount anything. It is the data
// shape a renderer consumes, plus constructor helpers.
package vdom
