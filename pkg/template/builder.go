package template

import (
	"fmt"
	"strconv"

	"github.com/weft-ui/weft/pkg/schema"
	"github.com/weft-ui/weft/pkg/tree"
)

// Build walks the source tree once and produces an immutable Template.
// Every visited node's class must have metadata in reg; otherwise the build
// fails with ErrUnknownSourceType.
//
// The walk uses an explicit work list rather than recursion, so arbitrarily
// deep trees do not grow the call stack. Sibling-name collisions are
// resolved by grouping children by name first and then picking a
// representation per group: a lone child stays an element, two or more
// become a fragment whose members get unique keys and the SingleFragment
// mark.
func Build(root tree.Node, reg *schema.Registry) (*Template, error) {
	if root == nil {
		return nil, fmt.Errorf("template: nil source root")
	}
	if reg == nil {
		return nil, fmt.Errorf("template: nil schema registry")
	}
	b := &builder{reg: reg}
	rootNode, err := b.element(root, true)
	if err != nil {
		return nil, err
	}
	work := []workItem{{src: root, dst: rootNode}}
	for len(work) > 0 {
		item := work[len(work)-1]
		work = work[:len(work)-1]
		next, err := b.fillChildren(item)
		if err != nil {
			return nil, err
		}
		work = append(work, next...)
	}
	return &Template{root: rootNode}, nil
}

// workItem carries one source node and the template element whose children
// map its children get installed into.
type workItem struct {
	src tree.Node
	dst *Node
}

type builder struct {
	reg *schema.Registry
	seq int
}

func (b *builder) element(src tree.Node, isRoot bool) (*Node, error) {
	snap, ok := snapshot(b.reg, src)
	if !ok {
		return nil, unknownSourceType(src)
	}
	return &Node{
		Kind:     KindElement,
		Class:    src.Class(),
		Source:   src,
		Snapshot: snap,
		IsRoot:   isRoot,
		Children: map[string]*Node{},
	}, nil
}

// fillChildren installs item.src's children into item.dst and returns the
// follow-up work items.
func (b *builder) fillChildren(item workItem) ([]workItem, error) {
	children := item.src.Children()
	if len(children) == 0 {
		return nil, nil
	}

	// Phase one: group by name, keeping encounter order of both groups
	// and members.
	var order []string
	groups := make(map[string][]tree.Node)
	for _, child := range children {
		name := child.Name()
		if _, seen := groups[name]; !seen {
			order = append(order, name)
		}
		groups[name] = append(groups[name], child)
	}

	// Phase two: pick a representation per group.
	var next []workItem
	for _, name := range order {
		members := groups[name]
		if len(members) == 1 {
			el, err := b.element(members[0], false)
			if err != nil {
				return nil, err
			}
			item.dst.Children[name] = el
			next = append(next, workItem{src: members[0], dst: el})
			continue
		}
		frag := &Node{
			Kind:     KindFragment,
			Children: make(map[string]*Node, len(members)),
		}
		for i, member := range members {
			el, err := b.element(member, false)
			if err != nil {
				return nil, err
			}
			el.SingleFragment = true
			key := name
			if i > 0 {
				key = name + "_" + b.token()
			}
			frag.Children[key] = el
			next = append(next, workItem{src: member, dst: el})
		}
		item.dst.Children[name] = frag
	}
	return next, nil
}

// token returns a builder-unique suffix for fragment member keys. The
// counter is per build, so rebuilding an unchanged tree yields identical
// keys.
func (b *builder) token() string {
	b.seq++
	return strconv.Itoa(b.seq)
}
