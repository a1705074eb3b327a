// Package tables reconstructs dense rectangular tables from scattered,
// order-independent Cell blocks.
//
// A recognition engine reports a table as a Table block whose Contains
// links point at Cell blocks, each carrying its own 1-based (row, column)
// coordinates. Cells arrive in no particular order and positions may be
// missing entirely. The [Reconstructor] rebuilds each table as a dense
// grid sized by the maximum observed coordinates, with "" at every
// position no cell claims.
//
// # Determinism
//
// Two cells are never intended to claim the same position, but recognition
// output is data, not a contract: when it happens, the cell encountered
// first in the Contains traversal wins. Reconstruction of the same
// collection always yields the same grid.
//
// # Header Projection
//
// When a grid has at least two rows, each non-blank cell of row 1 is
// paired with the cell beneath it in row 2, preserving column order. This
// is a convenience projection for the common "header row plus data row"
// document (order forms, invoices), not a general multi-row table model;
// rows beyond the second are never consulted.
package tables
