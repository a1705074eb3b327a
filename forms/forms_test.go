package forms

import (
	"testing"

	"github.com/tsawler/blockform/block"
	"github.com/tsawler/blockform/model"
	"github.com/tsawler/blockform/resolver"
)

// label builds a label-tagged LabelValueSet block with literal text and
// an AssociatedValue link to valueID (none when valueID is "").
func label(id, text string, confidence float64, valueID string) *block.Block {
	b := &block.Block{
		ID:         id,
		Kind:       block.KindLabelValueSet,
		Text:       text,
		Confidence: confidence,
		Roles:      []block.Role{block.RoleLabel},
	}
	if valueID != "" {
		b.Links = []block.Link{{Relation: block.RelationAssociatedValue, TargetID: valueID}}
	}
	return b
}

func value(id, text string, confidence float64) *block.Block {
	return &block.Block{
		ID:         id,
		Kind:       block.KindLabelValueSet,
		Text:       text,
		Confidence: confidence,
		Roles:      []block.Role{block.RoleValue},
	}
}

func pairs(c block.Collection) []model.LabelValuePair {
	res := resolver.New(resolver.NewIndex(c))
	return NewReconstructor(res).Pairs(c)
}

func TestPairsBasic(t *testing.T) {
	c := block.Collection{
		label("k1", "Order No:", 99, "v1"),
		value("v1", "528003-1322", 97),
	}

	got := pairs(c)
	if len(got) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(got))
	}

	p := got[0]
	if p.Label != "Order No:" {
		t.Errorf("expected label %q, got %q", "Order No:", p.Label)
	}
	if p.Value != "528003-1322" {
		t.Errorf("expected value %q, got %q", "528003-1322", p.Value)
	}
	if p.LabelConfidence != 99 {
		t.Errorf("expected label confidence 99, got %v", p.LabelConfidence)
	}
	if p.ValueConfidence == nil || *p.ValueConfidence != 97 {
		t.Errorf("expected value confidence 97, got %v", p.ValueConfidence)
	}
}

func TestPairsTrimTexts(t *testing.T) {
	c := block.Collection{
		label("k1", "  Date:  ", 90, "v1"),
		value("v1", " 2025-01-01 ", 90),
	}

	got := pairs(c)
	if got[0].Label != "Date:" || got[0].Value != "2025-01-01" {
		t.Errorf("expected trimmed label/value, got %q / %q", got[0].Label, got[0].Value)
	}
}

func TestBlankLabelDiscarded(t *testing.T) {
	c := block.Collection{
		label("k1", "   ", 90, "v1"),
		value("v1", "orphaned", 90),
		label("k2", "Kept:", 90, "v1"),
	}

	got := pairs(c)
	if len(got) != 1 {
		t.Fatalf("expected blank label discarded, got %d pairs", len(got))
	}
	if got[0].Label != "Kept:" {
		t.Errorf("unexpected surviving label %q", got[0].Label)
	}
}

func TestMissingValueLink(t *testing.T) {
	c := block.Collection{
		label("k1", "Lonely:", 90, ""),
	}

	got := pairs(c)
	if len(got) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(got))
	}
	if got[0].Value != "" {
		t.Errorf("expected empty value, got %q", got[0].Value)
	}
	if got[0].ValueConfidence != nil {
		t.Errorf("expected nil value confidence, got %v", *got[0].ValueConfidence)
	}
}

func TestDanglingValueTarget(t *testing.T) {
	c := block.Collection{
		label("k1", "Ref:", 90, "ghost"),
	}

	got := pairs(c)
	if got[0].Value != "" || got[0].ValueConfidence != nil {
		t.Errorf("expected dangling value absorbed, got %q / %v", got[0].Value, got[0].ValueConfidence)
	}
}

func TestValueResolvedRegardlessOfKind(t *testing.T) {
	// Value blocks are found by following the association, never by
	// their declared kind or role.
	c := block.Collection{
		label("k1", "Total:", 90, "v1"),
		{ID: "v1", Kind: block.KindLine, Text: "42.00", Confidence: 88},
	}

	got := pairs(c)
	if got[0].Value != "42.00" {
		t.Errorf("expected value from line-kind block, got %q", got[0].Value)
	}
	if got[0].ValueConfidence == nil || *got[0].ValueConfidence != 88 {
		t.Errorf("expected value confidence 88, got %v", got[0].ValueConfidence)
	}
}

func TestNonLabelBlocksIgnored(t *testing.T) {
	c := block.Collection{
		value("v1", "a value node without the label role", 90),
		{ID: "l1", Kind: block.KindLine, Text: "a line"},
	}

	if got := pairs(c); len(got) != 0 {
		t.Errorf("expected no pairs, got %d", len(got))
	}
}

func TestFieldsFirstOccurrenceWins(t *testing.T) {
	c := block.Collection{
		label("k1", "Date:", 90, "v1"),
		value("v1", "2025-01-01", 90),
		label("k2", "Date:", 90, "v2"),
		value("v2", "2025-02-02", 90),
	}

	got := pairs(c)
	if len(got) != 2 {
		t.Fatalf("expected both pairs in the list, got %d", len(got))
	}

	fields := Fields(got)
	if fields.Len() != 1 {
		t.Fatalf("expected 1 field, got %d", fields.Len())
	}
	if v, _ := fields.Get("Date:"); v != "2025-01-01" {
		t.Errorf("expected first occurrence to win, got %q", v)
	}
}

func TestFieldsPreserveEncounterOrder(t *testing.T) {
	got := Fields([]model.LabelValuePair{
		{Label: "B", Value: "2"},
		{Label: "A", Value: "1"},
		{Label: "C", Value: "3"},
	})

	keys := got.Keys()
	want := []string{"B", "A", "C"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("expected key order %v, got %v", want, keys)
		}
	}
}
