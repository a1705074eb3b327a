// Package resolver provides block reference resolution.
//
// Recognition engines link blocks by opaque id references (e.g., a line
// "contains" the ids of its words) rather than by nesting. This package
// resolves those references: an [Index] gives O(1) id lookup over the flat
// collection, and a [Resolver] turns any block into its textual content by
// following its Contains links through the index.
//
// # Basic Usage
//
// Build an index once per document, then resolve freely:
//
//	ix := resolver.NewIndex(blocks)
//	res := resolver.New(ix)
//	text := res.Text(someBlock)
//
// # Resolution Rules
//
// A block with no Contains links resolves to its own literal text. A block
// with Contains links resolves to the space-joined text of its Word-kind
// targets, in link order. Dangling targets (ids absent from the collection)
// and non-Word targets are skipped silently — recognition output routinely
// references blocks that were filtered upstream, and that is a data-quality
// condition, not an error.
//
// Resolution follows exactly one level of Contains links, matching the
// shallow shape of the block graph; it never recurses into grandchildren.
//
// # Options
//
// Text can be NFC-normalized as it is resolved:
//
//	res := resolver.New(ix, resolver.WithNormalization())
package resolver
