package model

// TextLine is one recognized line of text with the engine's confidence
// for it, in [0,100].
type TextLine struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// DocumentResult is the complete reconstruction of one document:
// linear text, tables, and form fields, assembled from a single flat
// block collection.
type DocumentResult struct {
	// FullText is the newline-joined text of all lines in original
	// order, with trailing whitespace trimmed.
	FullText string `json:"full_text"`

	Lines  []TextLine       `json:"lines"`
	Tables []*Table         `json:"tables"`
	Pairs  []LabelValuePair `json:"pairs"`

	// FormFields is the order-preserving label → value projection of
	// Pairs, first occurrence winning on duplicate labels. Pairs is
	// the source of truth; this map is a convenience.
	FormFields *FieldMap `json:"form_fields"`

	// AverageConfidence is the unweighted mean of line confidences,
	// 0 when the document has no lines. Table and pair confidences
	// are reported individually and never folded in.
	AverageConfidence float64 `json:"average_confidence"`
}

// TextResult is the lines-only projection of a reconstruction, for
// consumers that only need linear text.
type TextResult struct {
	FullText          string     `json:"full_text"`
	Lines             []TextLine `json:"lines"`
	AverageConfidence float64    `json:"average_confidence"`
}

// TextOnly returns the lines-only projection of the result.
func (d *DocumentResult) TextOnly() *TextResult {
	return &TextResult{
		FullText:          d.FullText,
		Lines:             d.Lines,
		AverageConfidence: d.AverageConfidence,
	}
}

// Field returns the form field value for a label, or false if the
// label was not reconstructed.
func (d *DocumentResult) Field(label string) (string, bool) {
	if d.FormFields == nil {
		return "", false
	}
	return d.FormFields.Get(label)
}
