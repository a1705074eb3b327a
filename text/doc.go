// Package text reconstructs the linear text of a document from its Line
// blocks: the lines themselves in input order, the newline-joined full
// text, and the document-level confidence average.
package text
