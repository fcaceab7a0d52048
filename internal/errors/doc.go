// Package errors provides structured, coded error values for weft.
//
// Each registered error has a short code (e.g. "W002") that maps to a
// category, a one-line message, and a longer explanation. Call sites attach
// per-occurrence detail and fix suggestions:
//
//	err := errors.New("W002").
//	    WithDetail(`rule 0 has selector of type weft.Props`).
//	    WithSuggestion("to target the template root, use weft.Rule{When: weft.Root, Apply: props}")
//
// Errors wrap an optional underlying error so that errors.Is and errors.As
// keep working through the usual Unwrap chain.
package errors
