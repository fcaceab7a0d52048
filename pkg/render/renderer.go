package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/weft-ui/weft/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	Pretty bool

	// Indent is the string used for each indentation level in pretty
	// mode. Defaults to two spaces.
	Indent string

	// Tags overrides the class-to-tag mapping. Unmapped classes render
	// as <div>.
	Tags map[string]string
}

// defaultTags maps the builtin visual classes to HTML tags.
var defaultTags = map[string]string{
	"Frame":          "div",
	"ScrollingFrame": "div",
	"Label":          "span",
	"Button":         "button",
	"Image":          "img",
}

// Renderer renders output trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders an output tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams an output tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindFragment:
		return r.renderFragment(w, node, depth)
	case vdom.KindText:
		return r.renderText(w, node, depth)
	case vdom.KindComponent:
		return r.renderComponent(w, node, depth)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders one element with its properties and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := r.tagFor(node.Class)

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}
	if _, err := fmt.Fprintf(w, `<%s data-class="%s"`, tag, escapeAttr(node.Class)); err != nil {
		return err
	}
	if err := r.renderProps(w, node); err != nil {
		return err
	}
	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	if text, ok := node.Props["Text"].(string); ok {
		if _, err := w.Write([]byte(escapeHTML(text))); err != nil {
			return err
		}
	}

	hasChildren := len(node.Children) > 0
	if r.config.Pretty && hasChildren {
		w.Write([]byte{'\n'})
	}
	for _, key := range sortedKeys(node.Children) {
		if err := r.renderNode(w, node.Children[key], depth+1); err != nil {
			return err
		}
	}
	if r.config.Pretty && hasChildren {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}
	return nil
}

// renderFragment renders a fragment's members in key order, no wrapper.
func (r *Renderer) renderFragment(w io.Writer, node *vdom.VNode, depth int) error {
	for _, key := range sortedKeys(node.Children) {
		if err := r.renderNode(w, node.Children[key], depth); err != nil {
			return err
		}
	}
	return nil
}

// renderText renders a text node with HTML escaping.
func (r *Renderer) renderText(w io.Writer, node *vdom.VNode, depth int) error {
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}
	if _, err := w.Write([]byte(escapeHTML(node.Text))); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}
	return nil
}

// renderComponent renders a delegated component by rendering its output.
func (r *Renderer) renderComponent(w io.Writer, node *vdom.VNode, depth int) error {
	if node.Comp == nil {
		return nil
	}
	return r.renderNode(w, node.Comp.Render(), depth)
}

// renderProps renders properties as data attributes, sorted for
// deterministic output. The Text property is rendered as content instead,
// and reserved keys (anything starting with "$", and "children") are
// skipped.
func (r *Renderer) renderProps(w io.Writer, node *vdom.VNode) error {
	for _, key := range sortedPropKeys(node.Props) {
		if key == "Text" || key == vdom.ChildrenKey || strings.HasPrefix(key, "$") {
			continue
		}
		value := propToString(node.Props[key])
		if _, err := fmt.Fprintf(w, ` data-prop-%s="%s"`, strings.ToLower(key), escapeAttr(value)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) tagFor(class string) string {
	if tag, ok := r.config.Tags[class]; ok {
		return tag
	}
	if tag, ok := defaultTags[class]; ok {
		return tag
	}
	return "div"
}

// propToString converts a property value to its attribute form.
func propToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func sortedKeys(m map[string]*vdom.VNode) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedPropKeys(m vdom.Props) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.Write([]byte(r.config.Indent))
	}
}
