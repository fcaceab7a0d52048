package template

import "github.com/weft-ui/weft/pkg/tree"

// resolve computes the override props and override children for one element
// by applying every matching rule in the fixed order:
//
//  1. root-marker rules, only when the element is the synthesis entry root;
//  2. exact-name rules whose key equals the element's own name;
//  3. predicate rules, in the caller's registration order, when the
//     predicate accepts the element's source node.
//
// Later applications overwrite colliding keys from earlier ones. A
// ChildrenKey entry in any applied map is routed into the children
// overrides (same last-wins rule) instead of the props.
//
// isEntry says whether the element is the root of this synthesis call:
// the template root for ordinary calls, or the wrapped element when a
// Wrapper re-enters synthesis.
func resolve(n *Node, ix *index, isEntry bool) (Props, map[string]any, error) {
	if ix.empty() {
		// No selectors registered: no diff work, just hand the
		// synthesizer a copy of the frozen snapshot.
		return n.Snapshot.Clone(), map[string]any{}, nil
	}

	overrideProps := Props{}
	overrideChildren := map[string]any{}
	apply := func(rule compiledRule) error {
		changes, err := changesFor(n, rule)
		if err != nil {
			return err
		}
		for key, value := range changes {
			if key == ChildrenKey {
				if err := mergeChildren(n, rule, value, overrideChildren); err != nil {
					return err
				}
				continue
			}
			overrideProps[key] = value
		}
		return nil
	}

	for _, rule := range ix.fast {
		if rule.kind == selRoot && isEntry {
			if err := apply(rule); err != nil {
				return nil, nil, err
			}
		}
	}
	name := n.Name()
	for _, rule := range ix.fast {
		if rule.kind == selName && rule.name == name {
			if err := apply(rule); err != nil {
				return nil, nil, err
			}
		}
	}
	for _, rule := range ix.slow {
		if rule.pred(n.Source) {
			if err := apply(rule); err != nil {
				return nil, nil, err
			}
		}
	}
	return overrideProps, overrideChildren, nil
}

// changesFor materializes a rule's changes map, invoking a callback with
// the element's source node when needed. buildIndex already normalized
// apply to either a map or a func(tree.Node) any.
func changesFor(n *Node, rule compiledRule) (map[string]any, error) {
	if m, ok := rule.apply.(map[string]any); ok {
		return m, nil
	}
	callback := rule.apply.(func(tree.Node) any)
	result := callback(n.Source)
	switch m := result.(type) {
	case Props:
		return map[string]any(m), nil
	case map[string]any:
		return m, nil
	default:
		return nil, invalidCallbackResult(n.Source, rule.pos, result)
	}
}

// mergeChildren folds one ChildrenKey entry into the accumulated children
// overrides.
func mergeChildren(n *Node, rule compiledRule, value any, into map[string]any) error {
	var entries map[string]any
	switch m := value.(type) {
	case Props:
		entries = m
	case map[string]any:
		entries = m
	default:
		return invalidChanges(rule.pos, value)
	}
	for key, v := range entries {
		into[key] = v
	}
	return nil
}
