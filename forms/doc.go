// Package forms reconstructs label → value pairs (form fields) from the
// disjoint label/value block graph.
//
// A recognition engine represents a form field as two LabelValueSet
// blocks: one tagged with the Label role, linked to the other by an
// AssociatedValue relation. Each side resolves its visible text through
// its own Contains links. The [Reconstructor] walks the label blocks,
// follows the association, and emits one [model.LabelValuePair] per
// non-blank label.
//
// The pair list is the source of truth. [Fields] folds it into an
// order-preserving map for convenient lookup, keeping the first
// occurrence when a label repeats.
package forms
