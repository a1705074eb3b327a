package block

import "testing"

func TestHasRole(t *testing.T) {
	b := &Block{Roles: []Role{RoleLabel, RoleValue}}

	if !b.HasRole(RoleLabel) || !b.HasRole(RoleValue) {
		t.Error("expected both roles present")
	}
	if b.HasRole(RoleColumnHeader) {
		t.Error("expected column header role absent")
	}
	if (&Block{}).HasRole(RoleLabel) {
		t.Error("expected no roles on zero block")
	}
}

func TestTargets(t *testing.T) {
	b := &Block{Links: []Link{
		{Relation: RelationContains, TargetID: "a"},
		{Relation: RelationAssociatedValue, TargetID: "v"},
		{Relation: RelationContains, TargetID: "b"},
	}}

	contains := b.Targets(RelationContains)
	if len(contains) != 2 || contains[0] != "a" || contains[1] != "b" {
		t.Errorf("unexpected contains targets: %v", contains)
	}

	values := b.Targets(RelationAssociatedValue)
	if len(values) != 1 || values[0] != "v" {
		t.Errorf("unexpected value targets: %v", values)
	}

	if got := (&Block{}).Targets(RelationContains); len(got) != 0 {
		t.Errorf("expected no targets, got %v", got)
	}
}

func TestHasCoordinates(t *testing.T) {
	tests := []struct {
		name string
		b    Block
		want bool
	}{
		{"both set", Block{Row: 1, Column: 1}, true},
		{"row only", Block{Row: 2}, false},
		{"column only", Block{Column: 3}, false},
		{"neither", Block{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.HasCoordinates(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPage, "PAGE"},
		{KindLine, "LINE"},
		{KindWord, "WORD"},
		{KindTable, "TABLE"},
		{KindCell, "CELL"},
		{KindLabelValueSet, "KEY_VALUE_SET"},
		{KindUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
