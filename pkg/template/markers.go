package template

import (
	"github.com/weft-ui/weft/pkg/tree"
	"github.com/weft-ui/weft/pkg/vdom"
)

// RootMarker is the selector type that targets the synthesis entry point's
// root element regardless of its name. Use the Root value.
type RootMarker struct{}

// Root selects the synthesis entry point's root element.
var Root RootMarker

// Deletion is the override value type that removes a key outright when
// overlaid onto a base map, as opposed to the key merely being absent from
// the overrides. Use the Deleted value. It is recognized by type, never by
// identity.
type Deletion struct{}

// Deleted removes the targeted key from the synthesized output.
var Deleted Deletion

// WrapKey is the reserved props key whose presence in resolved overrides
// replaces a subtree's synthesis with an external component invocation.
// Its value must be a Wrapper.
const WrapKey = "$wrap"

// ChildrenKey is the reserved props key whose contents are routed into the
// children overrides instead of the props. It mirrors the renderer's
// reserved key.
const ChildrenKey = vdom.ChildrenKey

// RenderFunc synthesizes a subtree given a future set of rules. It is the
// single capability handed to a Wrapper.
type RenderFunc func(rules ...Rule) (*vdom.VNode, error)

// Wrapper is an external stateful component taking over a subtree. It
// receives a render function bound to the wrapped element; the element's
// descendants are only synthesized if and when the wrapper calls it.
type Wrapper func(render RenderFunc) *vdom.VNode

// Rule pairs a selector with the changes to apply to the elements it
// matches. Rules are an ordered list; later matches overwrite earlier
// ones key by key, and predicate selectors fire in registration order.
//
// When must be an exact element name (string), the Root marker, or a
// predicate over the element's source node (match.Predicate or any
// func(tree.Node) bool).
//
// Apply must be a props-shaped map (Props or map[string]any) or a callback
// taking the element's source node and returning one. A ChildrenKey entry
// inside the map addresses child slots rather than props; its values
// replace the slot's synthesis outright, and Deleted removes the slot.
type Rule struct {
	When  any
	Apply any
}

// Callback is the canonical change-callback signature. Plain
// func(tree.Node) Props and func(tree.Node) map[string]any are accepted
// too.
type Callback func(n tree.Node) any
