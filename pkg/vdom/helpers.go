package vdom

import "fmt"

// Element creates an element node. Props and children may be nil.
func Element(class string, props Props, children map[string]*VNode) *VNode {
	return &VNode{
		Kind:     KindElement,
		Class:    class,
		Props:    props,
		Children: children,
	}
}

// Fragment groups name-keyed nodes without a node of its own.
func Fragment(children map[string]*VNode) *VNode {
	return &VNode{
		Kind:     KindFragment,
		Children: children,
	}
}

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Comp creates a node that delegates rendering to an external component.
func Comp(c Component) *VNode {
	return &VNode{
		Kind: KindComponent,
		Comp: c,
	}
}

// ToNode coerces caller-supplied values into nodes: *VNode passes through,
// Components become component nodes, strings become text nodes, and
// anything else is formatted into a text node. nil stays nil.
func ToNode(v any) *VNode {
	switch n := v.(type) {
	case nil:
		return nil
	case *VNode:
		return n
	case Component:
		return Comp(n)
	case string:
		return Text(n)
	default:
		return Text(fmt.Sprintf("%v", n))
	}
}

// Count returns the number of nodes in the tree, components counted as one
// without rendering them.
func Count(n *VNode) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += Count(c)
	}
	return total
}
