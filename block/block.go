package block

// Kind identifies what a block represents. Blocks are a tagged union:
// components switch on Kind rather than on concrete types, which keeps
// "kinds this component ignores" an explicit, visible decision.
type Kind int

const (
	// KindUnknown is the zero value, used for block types this library
	// does not model. Unknown blocks are carried in collections but
	// ignored by every reconstruction step.
	KindUnknown Kind = iota
	KindPage
	KindLine
	KindWord
	KindTable
	KindCell
	KindLabelValueSet
)

// String returns the kind name as emitted by recognition engines.
func (k Kind) String() string {
	switch k {
	case KindPage:
		return "PAGE"
	case KindLine:
		return "LINE"
	case KindWord:
		return "WORD"
	case KindTable:
		return "TABLE"
	case KindCell:
		return "CELL"
	case KindLabelValueSet:
		return "KEY_VALUE_SET"
	default:
		return "UNKNOWN"
	}
}

// Relation is the type of a link between two blocks.
type Relation int

const (
	// RelationContains is structural containment (page contains lines,
	// line contains words, table contains cells).
	RelationContains Relation = iota

	// RelationAssociatedValue links a label block to its value block.
	RelationAssociatedValue
)

// String returns the relation name.
func (r Relation) String() string {
	if r == RelationAssociatedValue {
		return "VALUE"
	}
	return "CHILD"
}

// Role is a non-exclusive tag on a block, orthogonal to its Kind.
// A cell may be tagged as a column header; a label/value block is tagged
// as the label or the value side of a pair.
type Role int

const (
	RoleColumnHeader Role = iota
	RoleLabel
	RoleValue
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleColumnHeader:
		return "COLUMN_HEADER"
	case RoleLabel:
		return "KEY"
	case RoleValue:
		return "VALUE"
	default:
		return "UNKNOWN"
	}
}

// Link is one edge in the block graph: a typed reference to another
// block by id. Targets are opaque ids, never pointers; a target may
// reference an id absent from the collection and consumers must
// tolerate that.
type Link struct {
	Relation Relation
	TargetID string
}

// Block is the atomic unit produced by a text-recognition engine.
// The zero value of every optional field means "absent": Text is ""
// when the block carries no literal text, and Row/Column are 0 on
// blocks without grid coordinates (valid coordinates are 1-based).
type Block struct {
	// ID is unique within one document's collection.
	ID string

	Kind Kind

	// Text is the literal recognized text. Present on Line and Word
	// blocks; structural blocks resolve their text through their
	// Contains links instead.
	Text string

	// Confidence is the engine's recognition certainty in [0,100].
	Confidence float64

	// Row and Column are 1-based grid coordinates, set only on Cell
	// blocks that belong to a table.
	Row    int
	Column int

	Roles []Role

	// Links are ordered; traversal order is significant for text
	// joining and for grid tie-breaking.
	Links []Link
}

// HasRole reports whether the block carries the given role tag.
func (b *Block) HasRole(role Role) bool {
	for _, r := range b.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Targets returns the target ids of all links with the given relation,
// in link order.
func (b *Block) Targets(rel Relation) []string {
	var ids []string
	for _, l := range b.Links {
		if l.Relation == rel {
			ids = append(ids, l.TargetID)
		}
	}
	return ids
}

// HasCoordinates reports whether the block carries grid coordinates.
// Cell blocks without coordinates are excluded from grid placement.
func (b *Block) HasCoordinates() bool {
	return b.Row > 0 && b.Column > 0
}

// Collection is the flat, ordered block list for one document.
// Order is the recognition engine's emission order and is preserved
// through every reconstruction step.
type Collection []*Block
