package render

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// attrEscaper additionally escapes whitespace characters that could break
// attribute parsing.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
