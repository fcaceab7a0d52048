package template

import (
	"reflect"

	"github.com/weft-ui/weft/pkg/schema"
	"github.com/weft-ui/weft/pkg/tree"
)

// Identity, parent, and type fields are structural, never part of a
// snapshot regardless of how the registry declares them.
var disallowedProps = map[string]struct{}{
	"Name":      {},
	"Parent":    {},
	"ClassName": {},
}

// snapshot extracts the node's non-default, settable properties. A failed
// read of any single property skips that property only; it never aborts the
// rest of the snapshot. Returns false when the class is unknown to the
// registry.
func snapshot(reg *schema.Registry, src tree.Node) (Props, bool) {
	decls, ok := reg.PropertiesOf(src.Class())
	if !ok {
		return nil, false
	}
	out := Props{}
	for _, decl := range decls {
		if decl.Access != schema.AccessReadWrite {
			continue
		}
		if _, no := disallowedProps[decl.Name]; no {
			continue
		}
		value, err := src.Property(decl.Name)
		if err != nil {
			continue
		}
		if !reflect.DeepEqual(value, decl.Default) {
			out[decl.Name] = value
		}
	}
	return out, true
}
