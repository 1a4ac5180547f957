package token

import "testing"

func TestClassification(t *testing.T) {
	tests := []struct {
		tok  string
		kind string
	}{
		{"PROGRAM", "KEYWORD"},
		{"END", "KEYWORD"},
		{"next-is-empty", "CONDITION"},
		{"random", "CONDITION"},
		{"true", "CONDITION"},
		{"move", "IDENTIFIER"},
		{"find-food", "IDENTIFIER"},
		{"Guard2", "IDENTIFIER"},
		{"2fast", "ERROR"},
		{"-dash", "ERROR"},
		{"with space", "ERROR"},
		{"", "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			if got := Kind(tt.tok); got != tt.kind {
				t.Errorf("Kind(%q) = %s, want %s", tt.tok, got, tt.kind)
			}
		})
	}
}

func TestIdentifierExcludesReserved(t *testing.T) {
	if IsIdentifier("WHILE") {
		t.Error("keyword accepted as identifier")
	}
	if IsIdentifier("next-is-wall") {
		t.Error("condition accepted as identifier")
	}
	// Lower-case keyword spellings are ordinary identifiers.
	if !IsIdentifier("while") {
		t.Error("lower-case keyword spelling rejected")
	}
}
