// Package preview serves a live HTML preview of a synthesized template
// during development.
//
// The server loads a source-tree document from a docstore, builds the
// template once, and renders it to HTML on each request. When a watch path
// is configured, file changes rebuild the template and notify connected
// browsers over a websocket so they reload. Request handling carries the
// usual middleware: structured request logging, Prometheus metrics, and
// OpenTelemetry spans.
package preview
