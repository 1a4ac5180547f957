package statement

import (
	"strings"
	"testing"
)

func call(label string) *Statement {
	s := New()
	s.AssembleCall(label)
	return s
}

func block(children ...*Statement) *Statement {
	b := New()
	for _, c := range children {
		b.AppendToBlock(c)
	}
	return b
}

func TestDefaultValue(t *testing.T) {
	s := New()
	if s.Kind() != KindBlock {
		t.Fatalf("default kind = %s, want BLOCK", s.Kind())
	}
	if s.LengthOfBlock() != 0 {
		t.Fatalf("default block has %d children", s.LengthOfBlock())
	}
}

func TestConditionNames(t *testing.T) {
	for _, name := range Conditions() {
		c, ok := ConditionByName(name)
		if !ok {
			t.Fatalf("ConditionByName(%q) failed", name)
		}
		if c.String() != name {
			t.Errorf("%q round-tripped to %q", name, c)
		}
	}
	if _, ok := ConditionByName("next-is-lava"); ok {
		t.Error("unknown condition accepted")
	}
}

func TestBlockRemoveAdd(t *testing.T) {
	b := block(call("move"), call("turnleft"), call("infect"))

	mid := b.RemoveFromBlock(1)
	if got := mid.DisassembleCall(); got != "turnleft" {
		t.Fatalf("removed %q, want turnleft", got)
	}
	mid.AssembleCall("turnleft")
	if b.LengthOfBlock() != 2 {
		t.Fatalf("length after remove = %d", b.LengthOfBlock())
	}

	b.AddToBlock(1, mid)
	want := block(call("move"), call("turnleft"), call("infect"))
	if !b.Equal(want) {
		t.Errorf("block not restored:\n%s", b)
	}
}

func TestIfRoundTrip(t *testing.T) {
	s := New()
	s.AssembleIf(NextIsWall, block(call("turnleft")))
	orig := s.Copy()

	cond, body := s.DisassembleIf()
	if cond != NextIsWall {
		t.Errorf("cond = %s", cond)
	}
	if s.Kind() != KindBlock || s.LengthOfBlock() != 0 {
		t.Error("receiver not reset to default after disassembly")
	}
	s.AssembleIf(cond, body)
	if !s.Equal(orig) {
		t.Errorf("round trip changed value:\n%s", s)
	}
}

func TestIfElseRoundTrip(t *testing.T) {
	s := New()
	s.AssembleIfElse(NextIsEnemy, block(call("infect")), block(call("move")))
	orig := s.Copy()

	cond, thenBody, elseBody := s.DisassembleIfElse()
	s.AssembleIfElse(cond, thenBody, elseBody)
	if !s.Equal(orig) {
		t.Errorf("round trip changed value:\n%s", s)
	}
}

func TestWhileRoundTrip(t *testing.T) {
	s := New()
	s.AssembleWhile(NextIsNotEmpty, block(call("move")))
	orig := s.Copy()

	cond, body := s.DisassembleWhile()
	s.AssembleWhile(cond, body)
	if !s.Equal(orig) {
		t.Errorf("round trip changed value:\n%s", s)
	}
}

func TestCallRoundTrip(t *testing.T) {
	s := call("patrol")
	label := s.DisassembleCall()
	if label != "patrol" {
		t.Fatalf("label = %q", label)
	}
	if s.Kind() != KindBlock {
		t.Error("receiver not reset after DisassembleCall")
	}
	s.AssembleCall(label)
	if !s.Equal(call("patrol")) {
		t.Error("round trip changed value")
	}
}

func TestAssembleChangesKind(t *testing.T) {
	s := call("move")
	s.AssembleWhile(True, block())
	if s.Kind() != KindWhile {
		t.Fatalf("kind = %s, want WHILE", s.Kind())
	}
}

func TestKindMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	call("move").DisassembleIf()
}

func TestEqual(t *testing.T) {
	a := New()
	a.AssembleIfElse(Random, block(call("move")), block(call("skip")))
	b := a.Copy()
	if !a.Equal(b) {
		t.Fatal("copy should be equal")
	}

	c := New()
	c.AssembleIfElse(Random, block(call("move")), block(call("turnleft")))
	if a.Equal(c) {
		t.Error("different else branches compared equal")
	}

	d := New()
	d.AssembleIf(Random, block(call("move")))
	if a.Equal(d) {
		t.Error("IF_ELSE compared equal to IF")
	}
}

func TestCopyIsDeep(t *testing.T) {
	a := block(call("move"))
	b := a.Copy()
	b.RemoveFromBlock(0)
	if a.LengthOfBlock() != 1 {
		t.Error("mutating the copy changed the original")
	}
}

func TestString(t *testing.T) {
	s := New()
	s.AssembleWhile(NextIsNotWall, block(call("move")))
	got := s.String()
	want := "WHILE next-is-not-wall DO\n    move\nEND WHILE\n"
	if got != want {
		t.Errorf("String:\n%q\nwant:\n%q", got, want)
	}

	e := New()
	e.AssembleIfElse(NextIsEnemy, block(call("infect")), block(call("turnright")))
	out := e.String()
	for _, piece := range []string{"IF next-is-enemy THEN", "ELSE", "END IF", "    infect"} {
		if !strings.Contains(out, piece) {
			t.Errorf("missing %q in:\n%s", piece, out)
		}
	}
}
