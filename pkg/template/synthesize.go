package template

import (
	"github.com/weft-ui/weft/pkg/vdom"
)

// Synthesize produces an output tree from the template and an ordered list
// of rules. It validates every rule before any output is constructed, so a
// failed call never returns a partial tree.
//
// Synthesis is a pure function over the immutable template and the rules:
// concurrent calls against one Template are safe as long as the underlying
// source tree is not mutated meanwhile.
func (t *Template) Synthesize(rules ...Rule) (*vdom.VNode, error) {
	ix, err := buildIndex(rules)
	if err != nil {
		return nil, err
	}
	return synthesize(t.root, ix, t.root)
}

// MakeComponent returns a render function that closes over the template
// handle, suitable for handing to rendering code that re-renders with fresh
// rules each time.
func MakeComponent(t *Template) func(rules ...Rule) (*vdom.VNode, error) {
	return t.Synthesize
}

// synthesize recursively combines one template node with the resolver's
// output. entry is the root of this synthesis call; the Root marker applies
// to it and nothing else.
func synthesize(n *Node, ix *index, entry *Node) (*vdom.VNode, error) {
	if n.Kind == KindFragment {
		// Selectors never address a fragment directly, only the
		// elements inside it by their own names.
		kids := make(map[string]*vdom.VNode, len(n.Children))
		for key, child := range n.Children {
			out, err := synthesize(child, ix, entry)
			if err != nil {
				return nil, err
			}
			kids[key] = out
		}
		return vdom.Fragment(kids), nil
	}

	overrideProps, overrideChildren, err := resolve(n, ix, n == entry)
	if err != nil {
		return nil, err
	}

	var out *vdom.VNode
	if wrapValue, ok := overrideProps[WrapKey]; ok {
		out, err = wrap(n, wrapValue)
	} else {
		out, err = assemble(n, ix, entry, overrideProps, overrideChildren)
	}
	if err != nil {
		return nil, err
	}

	if n.SingleFragment {
		// Restore name-addressability lost when the element was
		// grouped under a collision fragment.
		out = vdom.Fragment(map[string]*vdom.VNode{n.Name(): out})
	}
	return out, nil
}

// wrap emits a single external-component invocation in place of the
// element's subtree. The component receives one capability: a render
// function bound to this element, re-entering synthesis with the element as
// the entry root. None of the element's descendants are synthesized here.
func wrap(n *Node, wrapValue any) (*vdom.VNode, error) {
	var wrapper Wrapper
	switch w := wrapValue.(type) {
	case Wrapper:
		wrapper = w
	case func(render RenderFunc) *vdom.VNode:
		wrapper = w
	default:
		return nil, invalidWrapper(n, wrapValue)
	}
	sub := unwrapped(n)
	bound := func(rules ...Rule) (*vdom.VNode, error) {
		ix, err := buildIndex(rules)
		if err != nil {
			return nil, err
		}
		return synthesize(sub, ix, sub)
	}
	return vdom.Comp(vdom.Func(func() *vdom.VNode {
		return wrapper(bound)
	})), nil
}

// unwrapped returns the node as seen by a wrapper's re-synthesis: identical
// but without the SingleFragment re-wrap, which the outer call has already
// applied.
func unwrapped(n *Node) *Node {
	if !n.SingleFragment {
		return n
	}
	clone := *n
	clone.SingleFragment = false
	return &clone
}

// assemble builds the element's output node: snapshot overlaid with
// override props, template children overlaid with override children.
func assemble(n *Node, ix *index, entry *Node, overrideProps Props, overrideChildren map[string]any) (*vdom.VNode, error) {
	props := n.Snapshot.Clone()
	for key, value := range overrideProps {
		if _, del := value.(Deletion); del {
			delete(props, key)
			continue
		}
		props[key] = value
	}

	kids := make(map[string]*vdom.VNode, len(n.Children))
	for key, child := range n.Children {
		// Override-children keys match only the slot name itself: a
		// collision fragment's slot, never the names inside it.
		if _, overridden := overrideChildren[key]; overridden {
			continue
		}
		out, err := synthesize(child, ix, entry)
		if err != nil {
			return nil, err
		}
		kids[key] = out
	}
	for key, value := range overrideChildren {
		if _, del := value.(Deletion); del {
			continue
		}
		// Caller-supplied children are used as-is, never re-synthesized.
		kids[key] = vdom.ToNode(value)
	}
	return vdom.Element(n.Class, props, kids), nil
}
