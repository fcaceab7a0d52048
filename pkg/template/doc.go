// Package template turns a statically authored source tree into a reusable,
// immutable template, then synthesizes output trees from it with sparse,
// selector-addressed overrides.
//
// Build walks the source tree once, snapshotting each node's non-default
// properties against a schema registry and grouping same-named siblings into
// fragments. The resulting Template is immutable and may be synthesized from
// concurrently.
//
// Synthesize applies an ordered list of rules. A rule selects elements by
// exact name, by the Root marker, or by a predicate over the element's
// source node, and applies either a props map or a callback producing one.
// Later matches overwrite earlier ones key by key. The Deleted marker
// removes a child slot outright; the WrapKey props entry replaces a
// subtree's synthesis with an external component invocation that can
// re-enter synthesis on its own schedule.
package template
