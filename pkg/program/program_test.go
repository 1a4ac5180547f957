package program

import (
	"testing"

	"github.com/blLang/bugsworld/pkg/statement"
)

func call(label string) *statement.Statement {
	s := statement.New()
	s.AssembleCall(label)
	return s
}

func blockOf(labels ...string) *statement.Statement {
	b := statement.New()
	for _, l := range labels {
		b.AppendToBlock(call(l))
	}
	return b
}

func TestDefaultProgram(t *testing.T) {
	p := New()
	if p.Name() != "Unnamed" {
		t.Errorf("default name = %q", p.Name())
	}
	if p.Context().Len() != 0 {
		t.Error("default context not empty")
	}
	if p.Body().Kind() != statement.KindBlock {
		t.Error("default body not a BLOCK")
	}
}

func TestSetName(t *testing.T) {
	p := New()
	if err := p.SetName("Guard"); err != nil {
		t.Fatalf("SetName: %v", err)
	}
	if p.Name() != "Guard" {
		t.Errorf("name = %q", p.Name())
	}
	if err := p.SetName("2bad"); err == nil {
		t.Error("invalid name accepted")
	}
	if err := p.SetName("WHILE"); err == nil {
		t.Error("keyword accepted as name")
	}
}

func TestContextDefineAndLookup(t *testing.T) {
	c := NewContext()
	if err := c.Define("patrol", blockOf("move", "turnleft")); err != nil {
		t.Fatalf("Define: %v", err)
	}
	if err := c.Define("patrol", blockOf("skip")); err == nil {
		t.Error("duplicate Define accepted")
	}

	body, ok := c.Lookup("patrol")
	if !ok {
		t.Fatal("Lookup missed installed entry")
	}
	if body.LengthOfBlock() != 2 {
		t.Errorf("body has %d children", body.LengthOfBlock())
	}
	if _, ok := c.Lookup("fly"); ok {
		t.Error("Lookup found absent entry")
	}
}

func TestContextInsertionOrder(t *testing.T) {
	c := NewContext()
	for _, name := range []string{"zig", "apple", "mid"} {
		if err := c.Define(name, blockOf()); err != nil {
			t.Fatalf("Define(%q): %v", name, err)
		}
	}
	got := c.Names()
	want := []string{"zig", "apple", "mid"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}

func TestInstallValidation(t *testing.T) {
	tests := []struct {
		name string
		key  string
		body *statement.Statement
	}{
		{"non-identifier key", "2bad", blockOf()},
		{"condition key", "next-is-wall", blockOf()},
		{"primitive collision", "move", blockOf()},
		{"primitive collision infect", "infect", blockOf()},
		{"non-block body", "patrol", call("move")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContext()
			if err := c.Define(tt.key, tt.body); err != nil {
				t.Fatalf("Define: %v", err)
			}
			if err := New().SetContext(c); err == nil {
				t.Error("invalid context installed")
			}
		})
	}
}

func TestInstallValid(t *testing.T) {
	c := NewContext()
	if err := c.Define("patrol", blockOf("move")); err != nil {
		t.Fatal(err)
	}
	// "Move" only collides in canonical lower case.
	if err := c.Define("Move", blockOf("skip")); err != nil {
		t.Fatal(err)
	}
	p := New()
	if err := p.SetContext(c); err != nil {
		t.Fatalf("SetContext: %v", err)
	}
	if p.Context().Len() != 2 {
		t.Errorf("context has %d entries", p.Context().Len())
	}
}

func TestBodyOwnershipTransfer(t *testing.T) {
	p := New()
	if err := p.SetBody(blockOf("move")); err != nil {
		t.Fatalf("SetBody: %v", err)
	}
	b := p.TakeBody()
	if b.LengthOfBlock() != 1 {
		t.Error("taken body lost its children")
	}
	if p.Body().LengthOfBlock() != 0 {
		t.Error("program body not reset after TakeBody")
	}
	if err := p.SetBody(call("move")); err == nil {
		t.Error("non-BLOCK body accepted")
	}
}

func TestProgramEqualAndCopy(t *testing.T) {
	p := New()
	p.SetName("Guard")
	c := NewContext()
	c.Define("patrol", blockOf("move", "turnleft"))
	if err := p.SetContext(c); err != nil {
		t.Fatal(err)
	}
	p.SetBody(blockOf("patrol"))

	q := p.Copy()
	if !p.Equal(q) {
		t.Fatal("copy should be equal")
	}

	// Mutating the copy's context body must not affect the original.
	body, _ := q.Context().Lookup("patrol")
	body.RemoveFromBlock(0)
	if p.Equal(q) {
		t.Error("deep copy shares statements with original")
	}
}
