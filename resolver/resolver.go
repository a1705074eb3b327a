package resolver

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/blockform/block"
)

// Index is an id → block lookup over one document's flat collection.
// It is built once per reconstruction and is immutable afterwards, so
// any number of readers may share it concurrently.
type Index struct {
	blocks map[string]*block.Block
	count  int
}

// NewIndex builds an index from the collection. No validation is
// performed; if two blocks share an id the later one wins.
func NewIndex(c block.Collection) *Index {
	ix := &Index{
		blocks: make(map[string]*block.Block, len(c)),
		count:  len(c),
	}
	for _, b := range c {
		ix.blocks[b.ID] = b
	}
	return ix
}

// Get returns the block with the given id, or false if no such block
// exists in the collection.
func (ix *Index) Get(id string) (*block.Block, bool) {
	b, ok := ix.blocks[id]
	return b, ok
}

// Len returns the number of blocks the index was built from, including
// any that were shadowed by a duplicate id.
func (ix *Index) Len() int {
	return ix.count
}

// Resolver produces the textual content of a block by following its
// Contains links through an Index.
type Resolver struct {
	index     *Index
	normalize bool
}

// Option configures the resolver.
type Option func(*Resolver)

// WithNormalization makes the resolver NFC-normalize resolved text.
// Recognition engines occasionally emit decomposed code points for
// accented characters; normalization makes downstream string comparison
// (header map keys, form field labels) reliable.
func WithNormalization() Option {
	return func(r *Resolver) {
		r.normalize = true
	}
}

// New creates a resolver over the given index.
func New(index *Index, opts ...Option) *Resolver {
	r := &Resolver{index: index}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Index returns the index the resolver reads from.
func (r *Resolver) Index() *Index {
	return r.index
}

// Text resolves the textual content of a block.
//
// A block with no Contains links resolves to its own literal text
// (possibly ""). Otherwise the Contains targets are followed in link
// order and the texts of those that are Word blocks are joined with
// single spaces; dangling targets and targets of other kinds contribute
// nothing. Only the given block's own Contains links are followed,
// never its children's.
func (r *Resolver) Text(b *block.Block) string {
	childIDs := b.Targets(block.RelationContains)
	if len(childIDs) == 0 {
		return r.clean(b.Text)
	}

	words := make([]string, 0, len(childIDs))
	for _, id := range childIDs {
		child, ok := r.index.Get(id)
		if !ok || child.Kind != block.KindWord {
			continue
		}
		words = append(words, child.Text)
	}
	return r.clean(strings.Join(words, " "))
}

func (r *Resolver) clean(s string) string {
	if r.normalize {
		return norm.NFC.String(s)
	}
	return s
}
