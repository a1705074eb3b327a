package blockform

import (
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/blockform/block"
	"github.com/tsawler/blockform/forms"
	"github.com/tsawler/blockform/model"
	"github.com/tsawler/blockform/resolver"
	"github.com/tsawler/blockform/tables"
	"github.com/tsawler/blockform/text"
)

// Analyzer provides a fluent interface for reconstructing a document
// from its block collection. Each configuration method returns a new
// Analyzer instance, making it safe for concurrent use and allowing
// method chaining.
type Analyzer struct {
	blocks  block.Collection
	options analyzeOptions
}

// clone creates a copy of the Analyzer with copied options. This
// ensures immutability - each chain method returns a new instance.
func (a *Analyzer) clone() *Analyzer {
	return &Analyzer{
		blocks:  a.blocks,
		options: a.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Analyzer instance)
// ============================================================================

// NormalizeText applies NFC normalization to all resolved text.
//
// Example:
//
//	result, _, err := blockform.FromBlocks(blocks).NormalizeText().Result()
func (a *Analyzer) NormalizeText() *Analyzer {
	na := a.clone()
	na.options.normalize = true
	return na
}

// Concurrent runs the line, table, and form reconstruction passes on
// separate goroutines. The passes read only from the shared immutable
// index, so the result is identical to the sequential path; this is
// purely a throughput option for large collections.
func (a *Analyzer) Concurrent() *Analyzer {
	na := a.clone()
	na.options.concurrent = true
	return na
}

// ============================================================================
// Terminal Operations (execute reconstruction and return results)
// ============================================================================

// Result reconstructs the complete document: lines, full text, tables,
// pairs, form fields, and the confidence average.
//
// Returns the result, any warnings describing data-quality findings,
// and an error. Warnings are non-fatal: every anomaly they report is
// absorbed by a defensive default and the result is still well-formed.
// An empty collection is not an error; it yields an all-empty result.
func (a *Analyzer) Result() (*model.DocumentResult, []Warning, error) {
	ix := resolver.NewIndex(a.blocks)
	warnings := scanCollection(a.blocks, ix)

	var opts []resolver.Option
	if a.options.normalize {
		opts = append(opts, resolver.WithNormalization())
	}
	res := resolver.New(ix, opts...)

	var (
		lines     []model.TextLine
		docTables []*model.Table
		pairs     []model.LabelValuePair
	)

	collectLines := func() { lines = text.NewCollector(res).Lines(a.blocks) }
	collectTables := func() { docTables = tables.NewReconstructor(res).Tables(a.blocks) }
	collectPairs := func() { pairs = forms.NewReconstructor(res).Pairs(a.blocks) }

	if a.options.concurrent {
		var g errgroup.Group
		g.Go(func() error { collectLines(); return nil })
		g.Go(func() error { collectTables(); return nil })
		g.Go(func() error { collectPairs(); return nil })
		if err := g.Wait(); err != nil {
			return nil, warnings, err
		}
	} else {
		collectLines()
		collectTables()
		collectPairs()
	}

	result := &model.DocumentResult{
		FullText:          text.FullText(lines),
		Lines:             lines,
		Tables:            docTables,
		Pairs:             pairs,
		FormFields:        forms.Fields(pairs),
		AverageConfidence: text.AverageConfidence(lines),
	}
	return result, warnings, nil
}

// Text reconstructs only the linear document text: the newline-joined,
// trailing-trimmed concatenation of line texts in original order.
//
// Example:
//
//	text, warnings, err := blockform.FromBlocks(blocks).Text()
func (a *Analyzer) Text() (string, []Warning, error) {
	tr, warnings, err := a.TextResult()
	if err != nil {
		return "", warnings, err
	}
	return tr.FullText, warnings, nil
}

// TextResult reconstructs the lines-only projection: full text, the
// per-line texts and confidences, and their average. It skips the
// table and form passes entirely.
func (a *Analyzer) TextResult() (*model.TextResult, []Warning, error) {
	ix := resolver.NewIndex(a.blocks)
	warnings := scanCollection(a.blocks, ix)

	var opts []resolver.Option
	if a.options.normalize {
		opts = append(opts, resolver.WithNormalization())
	}
	res := resolver.New(ix, opts...)

	lines := text.NewCollector(res).Lines(a.blocks)
	return &model.TextResult{
		FullText:          text.FullText(lines),
		Lines:             lines,
		AverageConfidence: text.AverageConfidence(lines),
	}, warnings, nil
}

// Tables reconstructs only the document's tables, in encounter order.
func (a *Analyzer) Tables() ([]*model.Table, []Warning, error) {
	result, warnings, err := a.Result()
	if err != nil {
		return nil, warnings, err
	}
	return result.Tables, warnings, nil
}

// FormFields reconstructs only the order-preserving label → value map.
func (a *Analyzer) FormFields() (*model.FieldMap, []Warning, error) {
	result, warnings, err := a.Result()
	if err != nil {
		return nil, warnings, err
	}
	return result.FormFields, warnings, nil
}
