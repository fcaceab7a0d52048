package template

import (
	"errors"

	ierr "github.com/weft-ui/weft/internal/errors"
	"github.com/weft-ui/weft/pkg/tree"
)

// Sentinel errors for errors.Is checks. The returned errors additionally
// carry a code, detail, and (where useful) a fix suggestion via
// internal/errors.
var (
	// ErrUnknownSourceType means a visited source node's class has no
	// entry in the schema registry. Fatal to that build.
	ErrUnknownSourceType = errors.New("unknown source class")

	// ErrInvalidSelectorType means a rule's When is not a name, the Root
	// marker, or a predicate. Fatal to that render call.
	ErrInvalidSelectorType = errors.New("invalid selector type")

	// ErrInvalidChangesType means a rule's Apply is neither props-shaped
	// nor a callback. Fatal to that render call.
	ErrInvalidChangesType = errors.New("invalid changes type")

	// ErrInvalidCallbackResult means a change callback returned something
	// other than a props-shaped map. Fatal to that render call.
	ErrInvalidCallbackResult = errors.New("invalid callback result")
)

const rootHint = "to target the template's root with a flat props map, use Rule{When: template.Root, Apply: props}"

func unknownSourceType(n tree.Node) error {
	return ierr.New("W001").
		WithDetail("node %q has class %q, which is not in the schema registry", n.Name(), n.Class()).
		Wrap(ErrUnknownSourceType)
}

func invalidSelector(pos int, when any) error {
	e := ierr.New("W002").
		WithDetail("rule %d has selector of type %T", pos, when).
		Wrap(ErrInvalidSelectorType)
	// The common misuse is handing a flat props map where a selector is
	// expected, meaning the caller wanted to target the root.
	switch when.(type) {
	case Props, map[string]any, nil:
		e = e.WithSuggestion(rootHint)
	}
	return e
}

func invalidChanges(pos int, apply any) error {
	e := ierr.New("W003").
		WithDetail("rule %d has changes of type %T", pos, apply).
		Wrap(ErrInvalidChangesType)
	if apply == nil {
		e = e.WithSuggestion(rootHint)
	}
	return e
}

func invalidWrapper(n *Node, value any) error {
	return ierr.New("W003").
		WithDetail("WrapKey value for node %q has type %T; want a template.Wrapper", n.Name(), value).
		Wrap(ErrInvalidChangesType)
}

func invalidCallbackResult(n tree.Node, pos int, result any) error {
	return ierr.New("W004").
		WithDetail("rule %d callback returned %T for node %q; want a props-shaped map", pos, result, n.Name()).
		Wrap(ErrInvalidCallbackResult)
}
