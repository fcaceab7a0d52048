package template

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/weft-ui/weft/pkg/match"
	"github.com/weft-ui/weft/pkg/schema"
	"github.com/weft-ui/weft/pkg/tree"
	"github.com/weft-ui/weft/pkg/vdom"
)

func mustBuild(t *testing.T, src tree.Node) *Template {
	t.Helper()
	tmpl, err := Build(src, schema.Builtin())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return tmpl
}

func mustSynthesize(t *testing.T, tmpl *Template, rules ...Rule) *vdom.VNode {
	t.Helper()
	out, err := tmpl.Synthesize(rules...)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	return out
}

func TestIdentityRender(t *testing.T) {
	tmpl := mustBuild(t, panelTree())
	out := mustSynthesize(t, tmpl)

	var check func(tn *Node, vn *vdom.VNode)
	check = func(tn *Node, vn *vdom.VNode) {
		if tn.Kind == KindFragment {
			if vn.Kind != vdom.KindFragment {
				t.Fatalf("output Kind = %v, want Fragment", vn.Kind)
			}
			for key, child := range tn.Children {
				check(child, vn.Children[key])
			}
			return
		}
		inner := vn
		if tn.SingleFragment {
			if vn.Kind != vdom.KindFragment || len(vn.Children) != 1 {
				t.Fatalf("collision member should synthesize a single-entry fragment, got %+v", vn)
			}
			inner = vn.Children[tn.Name()]
		}
		if inner.Class != tn.Class {
			t.Errorf("output Class = %q, want %q", inner.Class, tn.Class)
		}
		if diff := cmp.Diff(tn.Snapshot, inner.Props); diff != "" {
			t.Errorf("identity render props for %q differ (-snapshot +output):\n%s", tn.Name(), diff)
		}
		if len(inner.Children) != len(tn.Children) {
			t.Errorf("node %q has %d output children, want %d", tn.Name(), len(inner.Children), len(tn.Children))
		}
		for key, child := range tn.Children {
			check(child, inner.Children[key])
		}
	}
	check(tmpl.Root(), out)
}

func TestIdentityRenderDoesNotAliasSnapshot(t *testing.T) {
	tmpl := mustBuild(t, panelTree())
	out := mustSynthesize(t, tmpl)
	out.Props["BorderSize"] = 99
	if tmpl.Root().Snapshot["BorderSize"] != 2 {
		t.Error("mutating synthesized props leaked into the frozen snapshot")
	}
}

func TestCollisionGroupingOutput(t *testing.T) {
	src := tree.New("Frame", "List").Add(
		tree.New("Frame", "Item"),
		tree.New("Frame", "Item"),
		tree.New("Frame", "Item"),
	)
	out := mustSynthesize(t, mustBuild(t, src))

	slot := out.Children["Item"]
	if slot == nil || slot.Kind != vdom.KindFragment {
		t.Fatalf("output Item slot = %+v, want a fragment", slot)
	}
	if len(slot.Children) != 3 {
		t.Fatalf("output fragment has %d members, want 3", len(slot.Children))
	}
	for key, member := range slot.Children {
		if member.Kind != vdom.KindFragment || len(member.Children) != 1 {
			t.Fatalf("member %q = %+v, want a single-entry fragment", key, member)
		}
		el := member.Children["Item"]
		if el == nil || el.Kind != vdom.KindElement || el.Class != "Frame" {
			t.Errorf("member %q inner node = %+v, want an Item Frame element", key, el)
		}
	}
}

func TestPropOverrideAndDeletion(t *testing.T) {
	src := tree.New("Label", "Title").Set("Text", "Default").Set("Font", "Mono")
	tmpl := mustBuild(t, src)

	out := mustSynthesize(t, tmpl, Rule{When: "Title", Apply: Props{
		"Text": "Hi",
		"Font": Deleted,
	}})
	if out.Props["Text"] != "Hi" {
		t.Errorf("Text = %v, want Hi", out.Props["Text"])
	}
	if _, present := out.Props["Font"]; present {
		t.Error("Deleted prop still present in output")
	}
}

func TestChildDeletionRoundTrip(t *testing.T) {
	src := tree.New("Frame", "Panel").Add(
		tree.New("Frame", "X"),
		tree.New("Label", "Y"),
	)
	tmpl := mustBuild(t, src)

	out := mustSynthesize(t, tmpl, Rule{When: Root, Apply: Props{
		ChildrenKey: map[string]any{"X": Deleted},
	}})
	if _, present := out.Children["X"]; present {
		t.Error(`output still contains deleted child "X"`)
	}
	if _, present := out.Children["Y"]; !present {
		t.Error(`sibling "Y" should be untouched by the deletion`)
	}
}

func TestChildReplacementUsedAsIs(t *testing.T) {
	src := tree.New("Frame", "Panel").Add(
		tree.New("Frame", "X").Add(tree.New("Label", "Deep")),
	)
	tmpl := mustBuild(t, src)

	replacement := vdom.Text("injected")
	out := mustSynthesize(t, tmpl, Rule{When: Root, Apply: Props{
		ChildrenKey: map[string]any{
			"X":     replacement,
			"Extra": "plain string",
		},
	}})
	if out.Children["X"] != replacement {
		t.Error("override child should be used as-is, not re-synthesized")
	}
	extra := out.Children["Extra"]
	if extra == nil || extra.Kind != vdom.KindText || extra.Text != "plain string" {
		t.Errorf("Extra = %+v, want a text node", extra)
	}
}

func TestRootExclusivity(t *testing.T) {
	// Root and a child share the name "Panel": the root marker must hit
	// only the entry root, the name selector both.
	src := tree.New("Frame", "Panel").Add(
		tree.New("Frame", "Panel"),
	)
	tmpl := mustBuild(t, src)

	out := mustSynthesize(t, tmpl, Rule{When: Root, Apply: Props{"ZIndex": 9}})
	if out.Props["ZIndex"] != 9 {
		t.Error("root marker change missing from the entry root")
	}
	child := out.Children["Panel"]
	if _, present := child.Props["ZIndex"]; present {
		t.Error("root marker change leaked onto a non-root node")
	}

	out = mustSynthesize(t, tmpl, Rule{When: "Panel", Apply: Props{"ZIndex": 5}})
	if out.Props["ZIndex"] != 5 || out.Children["Panel"].Props["ZIndex"] != 5 {
		t.Error("name selector should match every node with that name, root included")
	}
}

func TestResolutionOrderLastWins(t *testing.T) {
	src := tree.New("Label", "Title")
	tmpl := mustBuild(t, src)

	// Registration order deliberately scrambled: application order is
	// fixed (root, then name, then predicates in registration order), so
	// the later predicate wins over everything.
	out := mustSynthesize(t, tmpl,
		Rule{When: match.Class("Label"), Apply: Props{"Text": "pred-1"}},
		Rule{When: "Title", Apply: Props{"Text": "name"}},
		Rule{When: Root, Apply: Props{"Text": "root"}},
		Rule{When: match.Name("Title"), Apply: Props{"Text": "pred-2"}},
	)
	if out.Props["Text"] != "pred-2" {
		t.Errorf("Text = %v, want pred-2 (last-applied predicate wins)", out.Props["Text"])
	}
}

func TestPredicateOrderSensitivity(t *testing.T) {
	src := tree.New("Label", "Title")
	tmpl := mustBuild(t, src)

	out := mustSynthesize(t, tmpl,
		Rule{When: match.Class("Label"), Apply: Props{"Text": "first"}},
		Rule{When: match.Name("Title"), Apply: Props{"Text": "second"}},
	)
	if out.Props["Text"] != "second" {
		t.Errorf("Text = %v, want second", out.Props["Text"])
	}

	out = mustSynthesize(t, tmpl,
		Rule{When: match.Name("Title"), Apply: Props{"Text": "second"}},
		Rule{When: match.Class("Label"), Apply: Props{"Text": "first"}},
	)
	if out.Props["Text"] != "first" {
		t.Errorf("Text = %v, want first after swapping registration order", out.Props["Text"])
	}
}

func TestCallbackChanges(t *testing.T) {
	src := tree.New("Label", "Title").SetAttr("greeting", "Hello")
	tmpl := mustBuild(t, src)

	out := mustSynthesize(t, tmpl, Rule{
		When: "Title",
		Apply: func(n tree.Node) any {
			v, _ := n.Attribute("greeting")
			return Props{"Text": v}
		},
	})
	if out.Props["Text"] != "Hello" {
		t.Errorf("Text = %v, want Hello (callback sees the source node)", out.Props["Text"])
	}
}

func TestCallbackChildrenExtraction(t *testing.T) {
	src := tree.New("Frame", "Panel").Add(tree.New("Frame", "X"))
	tmpl := mustBuild(t, src)

	out := mustSynthesize(t, tmpl, Rule{
		When: Root,
		Apply: func(tree.Node) any {
			return Props{
				"ZIndex":    3,
				ChildrenKey: map[string]any{"X": Deleted},
			}
		},
	})
	if out.Props["ZIndex"] != 3 {
		t.Errorf("ZIndex = %v, want 3", out.Props["ZIndex"])
	}
	if _, present := out.Props[ChildrenKey]; present {
		t.Error("reserved children entry must not survive into props")
	}
	if _, present := out.Children["X"]; present {
		t.Error("children entry from a callback should behave like a direct one")
	}
}

func TestWrapIndirection(t *testing.T) {
	src := tree.New("Frame", "Panel").Add(
		tree.New("Frame", "Wrapped").Add(
			tree.New("Label", "Inner").Set("Text", "deep"),
		),
	)
	tmpl := mustBuild(t, src)

	wrapperCalls := 0
	descendantHits := 0
	var wrapper Wrapper = func(render RenderFunc) *vdom.VNode {
		wrapperCalls++
		sub, err := render(Rule{When: "Inner", Apply: Props{"Text": "later"}})
		if err != nil {
			t.Fatalf("bound render error = %v", err)
		}
		return sub
	}

	out := mustSynthesize(t, tmpl,
		Rule{When: "Wrapped", Apply: Props{WrapKey: wrapper}},
		Rule{When: match.Name("Inner"), Apply: func(n tree.Node) any {
			descendantHits++
			return Props{}
		}},
	)

	if wrapperCalls != 0 {
		t.Fatalf("wrapper invoked %d times during synthesis, want 0 (deferred)", wrapperCalls)
	}
	if descendantHits != 0 {
		t.Fatalf("descendant of wrapped node resolved %d times during synthesis, want 0", descendantHits)
	}

	slot := out.Children["Wrapped"]
	if slot == nil || slot.Kind != vdom.KindComponent {
		t.Fatalf("Wrapped slot = %+v, want exactly one component invocation", slot)
	}

	sub := slot.Comp.Render()
	if wrapperCalls != 1 {
		t.Fatalf("wrapper invoked %d times after render, want 1", wrapperCalls)
	}
	if sub.Class != "Frame" {
		t.Errorf("re-synthesized subtree class = %q, want Frame", sub.Class)
	}
	if got := sub.Children["Inner"].Props["Text"]; got != "later" {
		t.Errorf("Inner Text = %v, want later (wrapper's own rules)", got)
	}
}

func TestWrapRootMarkerTargetsWrappedElement(t *testing.T) {
	src := tree.New("Frame", "Panel").Add(tree.New("Frame", "Wrapped"))
	tmpl := mustBuild(t, src)

	var wrapper Wrapper = func(render RenderFunc) *vdom.VNode {
		sub, err := render(Rule{When: Root, Apply: Props{"ZIndex": 7}})
		if err != nil {
			t.Fatalf("bound render error = %v", err)
		}
		return sub
	}
	out := mustSynthesize(t, tmpl, Rule{When: "Wrapped", Apply: Props{WrapKey: wrapper}})

	sub := out.Children["Wrapped"].Comp.Render()
	if sub.Props["ZIndex"] != 7 {
		t.Error("root marker inside a wrapper should target the wrapped element, the entry root of that call")
	}
}

func TestEndToEndScenario(t *testing.T) {
	src := tree.New("Frame", "Panel").Add(
		tree.New("Label", "Title").Set("Text", "Default"),
		tree.New("Frame", "Item"),
		tree.New("Frame", "Item"),
	)
	tmpl := mustBuild(t, src)
	out := mustSynthesize(t, tmpl, Rule{When: "Title", Apply: Props{"Text": "Hi"}})

	if out.Class != "Frame" {
		t.Fatalf("root class = %q, want Frame", out.Class)
	}
	title := out.Children["Title"]
	if title == nil || title.Class != "Label" || title.Props["Text"] != "Hi" {
		t.Errorf("Title = %+v, want a Label with Text Hi", title)
	}
	items := out.Children["Item"]
	if items == nil || items.Kind != vdom.KindFragment || len(items.Children) != 2 {
		t.Fatalf("Item slot = %+v, want a fragment wrapping two frames", items)
	}
	for key, member := range items.Children {
		inner := member.Children["Item"]
		if inner == nil || inner.Class != "Frame" {
			t.Errorf("item %q = %+v, want an unchanged Frame", key, member)
		}
		if len(inner.Props) != 0 {
			t.Errorf("item %q props = %v, want empty (unchanged)", key, inner.Props)
		}
	}
}

func TestMakeComponent(t *testing.T) {
	tmpl := mustBuild(t, panelTree())
	component := MakeComponent(tmpl)

	out, err := component(Rule{When: "Title", Apply: Props{"Text": "Hi"}})
	if err != nil {
		t.Fatalf("component render error = %v", err)
	}
	if out.Children["Title"].Props["Text"] != "Hi" {
		t.Error("component render should apply its per-call rules")
	}

	again, err := component()
	if err != nil {
		t.Fatalf("second component render error = %v", err)
	}
	if again.Children["Title"].Props["Text"] != "Default" {
		t.Error("per-call overrides must not persist across renders")
	}
}

func TestConcurrentSynthesis(t *testing.T) {
	tmpl := mustBuild(t, panelTree())
	done := make(chan error, 16)
	for i := 0; i < 16; i++ {
		go func() {
			_, err := tmpl.Synthesize(Rule{When: "Title", Apply: Props{"Text": "Hi"}})
			done <- err
		}()
	}
	for i := 0; i < 16; i++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent Synthesize() error = %v", err)
		}
	}
}
