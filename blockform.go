// Package blockform reconstructs document structure from the flat,
// relationship-linked block output of a text-recognition engine.
//
// Recognition engines emit a document as an ordered list of blocks —
// lines, words, tables, cells, label/value nodes — connected only by id
// references. This package rebuilds the parts callers actually want:
// the linear document text, dense rectangular tables, and label → value
// form fields.
//
// Basic usage:
//
//	result, warnings, err := blockform.FromBlocks(blocks).Result()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", blockform.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := blockform.FromBlocks(blocks).
//	    NormalizeText().
//	    Concurrent().
//	    Result()
//
// Lines-only extraction:
//
//	text, _, err := blockform.FromBlocks(blocks).Text()
//
// For advanced use cases the lower-level resolver, text, tables, and
// forms packages are also available.
package blockform

import (
	"github.com/tsawler/blockform/block"
)

// FromBlocks returns an Analyzer over one document's block collection
// for fluent configuration. The collection is read-only for the
// duration of any terminal operation; all results are newly allocated.
func FromBlocks(blocks block.Collection) *Analyzer {
	return &Analyzer{
		blocks:  blocks,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a terminal operation and panics if
// the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	result := blockform.MustResult(blockform.FromBlocks(blocks).Result())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
