// Package weft turns statically authored trees of visual nodes into
// reusable templates and synthesizes render-ready output trees from them
// with sparse, selector-addressed overrides.
//
// The package is a thin facade over pkg/template; the engine, the source
// tree contract, the schema registry, predicate selectors, and the output
// tree live in their own packages under pkg/.
//
//	tmpl, err := weft.Build(root, schema.Builtin())
//	if err != nil {
//	    ...
//	}
//	out, err := tmpl.Synthesize(
//	    weft.Rule{When: "Title", Apply: weft.Props{"Text": "Hi"}},
//	    weft.Rule{When: match.Class("Button"), Apply: weft.Props{"Selected": true}},
//	)
package weft

import (
	"github.com/weft-ui/weft/pkg/schema"
	"github.com/weft-ui/weft/pkg/template"
	"github.com/weft-ui/weft/pkg/tree"
	"github.com/weft-ui/weft/pkg/vdom"
)

// Core types re-exported from pkg/template.
type (
	// Template is the cached, immutable product of Build.
	Template = template.Template

	// Rule pairs a selector with the changes it applies.
	Rule = template.Rule

	// Props is a property map.
	Props = template.Props

	// Wrapper is an external component taking over a subtree's synthesis.
	Wrapper = template.Wrapper

	// RenderFunc is the bound re-synthesis capability handed to a Wrapper.
	RenderFunc = template.RenderFunc
)

// Root selects the synthesis entry point's root element regardless of name.
var Root = template.Root

// Deleted removes the targeted key from the synthesized output.
var Deleted = template.Deleted

// WrapKey is the reserved props key that triggers wrap indirection.
const WrapKey = template.WrapKey

// Sentinel errors, for errors.Is.
var (
	ErrUnknownSourceType     = template.ErrUnknownSourceType
	ErrInvalidSelectorType   = template.ErrInvalidSelectorType
	ErrInvalidChangesType    = template.ErrInvalidChangesType
	ErrInvalidCallbackResult = template.ErrInvalidCallbackResult
)

// Build walks the source tree once and produces an immutable Template.
func Build(root tree.Node, reg *schema.Registry) (*Template, error) {
	return template.Build(root, reg)
}

// MakeComponent returns a render function closing over the template handle.
func MakeComponent(t *Template) func(rules ...Rule) (*vdom.VNode, error) {
	return template.MakeComponent(t)
}
