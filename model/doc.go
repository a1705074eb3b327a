// Package model defines the reconstructed document structures returned by
// analysis: text lines, dense tables, label/value pairs, and the
// aggregating DocumentResult.
//
// All types are plain values created fresh per reconstruction and owned by
// the caller; nothing in this package holds references back into the input
// block collection. Every type marshals directly to JSON, so a
// DocumentResult is suitable as a response payload as-is. FieldMap
// preserves insertion order, both in iteration and in its JSON form.
package model
