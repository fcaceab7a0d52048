package vdom

// ChildrenKey is the reserved props key understood by the renderer's
// reconciler. Synthesis extracts it from override props and routes its
// contents into the children map instead.
const ChildrenKey = "children"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // Class-identified visual node
	KindFragment               // Name-keyed grouping without a node of its own
	KindText                   // Plain text node
	KindComponent              // Delegation to an external component
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindFragment:
		return "Fragment"
	case KindText:
		return "Text"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Props holds element properties.
type Props map[string]any

// Clone returns a shallow copy of the props map. Cloning nil yields an
// empty, writable map.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// VNode is one node of the output tree.
type VNode struct {
	Kind     VKind             // Node type
	Class    string            // Element class identifier (e.g., "Frame")
	Props    Props             // Element properties
	Children map[string]*VNode // Name-keyed child nodes
	Text     string            // For KindText
	Comp     Component         // For KindComponent
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}
