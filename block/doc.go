// Package block defines the input data model: the flat, identifier-linked
// block graph emitted by a text-recognition engine.
//
// A recognition engine describes a document as an ordered list of blocks
// (pages, lines, words, tables, cells, label/value nodes) connected only by
// id references, not by nesting. This package models that arena directly:
// a [Collection] is the flat list, a [Block] holds its own data plus typed
// [Link] edges to other blocks by id.
//
// Relationships are intentionally left as ids. Reconstruction code resolves
// them through an index (see the resolver package) rather than through a
// pointer graph, which sidesteps ownership and cycle concerns.
//
// # Optional fields
//
// Zero values mean "absent": a Block with Text "" carries no literal text,
// and Row/Column 0 means the block has no grid coordinates (valid
// coordinates are 1-based).
package block
