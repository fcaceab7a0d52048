package template

import (
	"github.com/weft-ui/weft/pkg/match"
	"github.com/weft-ui/weft/pkg/tree"
)

// selKind discriminates compiled selectors.
type selKind uint8

const (
	selRoot selKind = iota
	selName
	selPred
)

// compiledRule is one validated rule with its selector classified.
type compiledRule struct {
	kind  selKind
	name  string          // selName
	pred  match.Predicate // selPred
	apply any             // props map or callback, already validated
	pos   int             // registration position, for diagnostics
}

// index partitions a render call's rules into the fast bucket (exact-name
// and root-marker selectors, matched by field comparison) and the slow
// bucket (predicates, evaluated against source nodes in registration
// order). Both slices are nil when empty so the resolver can take the
// no-diff fast path.
type index struct {
	fast []compiledRule
	slow []compiledRule
}

// empty reports whether no selector of either kind was registered.
func (ix *index) empty() bool {
	return ix == nil || (ix.fast == nil && ix.slow == nil)
}

// buildIndex validates and classifies every rule before any output is
// produced. Malformed input fails the whole render call with
// ErrInvalidSelectorType or ErrInvalidChangesType.
func buildIndex(rules []Rule) (*index, error) {
	if len(rules) == 0 {
		return nil, nil
	}
	ix := &index{}
	for pos, rule := range rules {
		compiled := compiledRule{pos: pos}
		switch when := rule.When.(type) {
		case string:
			compiled.kind = selName
			compiled.name = when
		case RootMarker, *RootMarker:
			compiled.kind = selRoot
		case match.Predicate:
			compiled.kind = selPred
			compiled.pred = when
		case func(tree.Node) bool:
			compiled.kind = selPred
			compiled.pred = when
		default:
			return nil, invalidSelector(pos, rule.When)
		}

		switch apply := rule.Apply.(type) {
		case Props:
			compiled.apply = map[string]any(apply)
		case map[string]any:
			compiled.apply = apply
		case Callback:
			compiled.apply = (func(tree.Node) any)(apply)
		case func(tree.Node) any:
			compiled.apply = apply
		case func(tree.Node) Props:
			compiled.apply = func(n tree.Node) any { return apply(n) }
		case func(tree.Node) map[string]any:
			compiled.apply = func(n tree.Node) any { return apply(n) }
		default:
			return nil, invalidChanges(pos, rule.Apply)
		}

		if compiled.kind == selPred {
			ix.slow = append(ix.slow, compiled)
		} else {
			ix.fast = append(ix.fast, compiled)
		}
	}
	return ix, nil
}
