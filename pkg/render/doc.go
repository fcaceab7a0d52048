// Package render turns synthesized output trees into HTML for the preview
// server and the CLI.
//
// It is a debugging surface, not a reconciler: each element class maps to a
// plain HTML tag, properties become data attributes (sorted for
// deterministic output), the Text property becomes escaped text content,
// and fragments flatten their members in key order without a wrapper
// element.
package render
