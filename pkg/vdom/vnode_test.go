package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindFragment, "Fragment"},
		{KindText, "Text"},
		{KindComponent, "Component"},
		{VKind(255), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPropsClone(t *testing.T) {
	orig := Props{"Text": "Hi"}
	clone := orig.Clone()
	clone["Text"] = "Bye"
	if orig["Text"] != "Hi" {
		t.Error("Clone() should not alias the original map")
	}

	var nilProps Props
	c := nilProps.Clone()
	if c == nil {
		t.Fatal("Clone() of nil props should be writable")
	}
	c["x"] = 1
}

func TestConstructors(t *testing.T) {
	el := Element("Frame", Props{"ZIndex": 2}, map[string]*VNode{"T": Text("hi")})
	if el.Kind != KindElement || el.Class != "Frame" || el.Children["T"].Text != "hi" {
		t.Errorf("Element() = %+v", el)
	}

	frag := Fragment(map[string]*VNode{"A": Text("a")})
	if frag.Kind != KindFragment || len(frag.Children) != 1 {
		t.Errorf("Fragment() = %+v", frag)
	}

	if Textf("n=%d", 3).Text != "n=3" {
		t.Error("Textf() formatting broken")
	}

	comp := Comp(Func(func() *VNode { return Text("rendered") }))
	if comp.Kind != KindComponent || comp.Comp.Render().Text != "rendered" {
		t.Errorf("Comp() = %+v", comp)
	}
}

func TestToNode(t *testing.T) {
	passthrough := Text("x")
	tests := []struct {
		name string
		in   any
		want func(*VNode) bool
	}{
		{"nil", nil, func(n *VNode) bool { return n == nil }},
		{"vnode", passthrough, func(n *VNode) bool { return n == passthrough }},
		{"string", "hello", func(n *VNode) bool { return n.Kind == KindText && n.Text == "hello" }},
		{"component", Func(func() *VNode { return nil }), func(n *VNode) bool { return n.Kind == KindComponent }},
		{"other", 42, func(n *VNode) bool { return n.Kind == KindText && n.Text == "42" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToNode(tt.in); !tt.want(got) {
				t.Errorf("ToNode(%v) = %+v", tt.in, got)
			}
		})
	}
}

func TestCount(t *testing.T) {
	tree := Element("Frame", nil, map[string]*VNode{
		"A": Text("a"),
		"B": Fragment(map[string]*VNode{
			"C": Text("c"),
		}),
	})
	if got := Count(tree); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
	if Count(nil) != 0 {
		t.Error("Count(nil) should be 0")
	}
}
