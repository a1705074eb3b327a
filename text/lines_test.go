package text

import (
	"testing"

	"github.com/tsawler/blockform/block"
	"github.com/tsawler/blockform/model"
	"github.com/tsawler/blockform/resolver"
)

func line(id, text string, confidence float64) *block.Block {
	return &block.Block{ID: id, Kind: block.KindLine, Text: text, Confidence: confidence}
}

func collect(c block.Collection) []model.TextLine {
	res := resolver.New(resolver.NewIndex(c))
	return NewCollector(res).Lines(c)
}

func TestLinesFilterAndOrder(t *testing.T) {
	c := block.Collection{
		{ID: "p", Kind: block.KindPage},
		line("l1", "first", 90),
		{ID: "t", Kind: block.KindTable},
		line("l2", "second", 80),
		{ID: "w", Kind: block.KindWord, Text: "not a line"},
	}

	lines := collect(c)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "first" || lines[1].Text != "second" {
		t.Errorf("unexpected line order: %v", lines)
	}
	if lines[0].Confidence != 90 || lines[1].Confidence != 80 {
		t.Errorf("unexpected confidences: %v", lines)
	}
}

func TestLinesResolveWordChildren(t *testing.T) {
	c := block.Collection{
		{ID: "l1", Kind: block.KindLine, Links: []block.Link{
			{Relation: block.RelationContains, TargetID: "w1"},
			{Relation: block.RelationContains, TargetID: "w2"},
		}},
		{ID: "w1", Kind: block.KindWord, Text: "two"},
		{ID: "w2", Kind: block.KindWord, Text: "words"},
	}

	lines := collect(c)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "two words" {
		t.Errorf("expected %q, got %q", "two words", lines[0].Text)
	}
}

func TestFullText(t *testing.T) {
	tests := []struct {
		name  string
		lines []model.TextLine
		want  string
	}{
		{"empty", nil, ""},
		{"single", []model.TextLine{{Text: "A"}}, "A"},
		{"joined with newline", []model.TextLine{{Text: "A"}, {Text: "B"}}, "A\nB"},
		{"trailing blank line trimmed", []model.TextLine{{Text: "A"}, {Text: ""}}, "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FullText(tt.lines); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAverageConfidence(t *testing.T) {
	tests := []struct {
		name  string
		lines []model.TextLine
		want  float64
	}{
		{"no lines", nil, 0},
		{"single line", []model.TextLine{{Confidence: 75}}, 75},
		{"mean of two", []model.TextLine{{Confidence: 90}, {Confidence: 80}}, 85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AverageConfidence(tt.lines); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
