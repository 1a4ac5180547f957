// Package statement models BL statements as a tagged variant with five
// kinds: BLOCK, IF, IF_ELSE, WHILE, and CALL.
//
// The tree offers no read-only traversal. To look inside a node a
// caller disassembles it, which moves the payload out and resets the
// node to the default value (an empty BLOCK), and later assembles the
// parts back in. For every kind, assemble(disassemble(v)) restores a
// value structurally equal to v. Parts passed to these operations must
// not be aliased with values referenced elsewhere; nothing checks this
// at runtime.
package statement

import (
	"fmt"
	"strings"
)

// Kind tags the variant a Statement currently holds.
type Kind int

const (
	KindBlock Kind = iota
	KindIf
	KindIfElse
	KindWhile
	KindCall
)

func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "BLOCK"
	case KindIf:
		return "IF"
	case KindIfElse:
		return "IF_ELSE"
	case KindWhile:
		return "WHILE"
	case KindCall:
		return "CALL"
	}
	return "?"
}

// Statement is a single node of the BL statement tree. The zero value
// is the default Statement: an empty BLOCK.
type Statement struct {
	kind     Kind
	children []*Statement // BLOCK
	cond     Condition    // IF, IF_ELSE, WHILE
	body     *Statement   // IF and WHILE body; IF_ELSE then-branch
	elseBody *Statement   // IF_ELSE else-branch
	label    string       // CALL
}

// New returns the default Statement, an empty BLOCK.
func New() *Statement {
	return &Statement{}
}

// Kind returns the variant tag. The tag only changes when an Assemble*
// operation installs a new payload.
func (s *Statement) Kind() Kind {
	return s.kind
}

func (s *Statement) mustBe(k Kind, op string) {
	if s.kind != k {
		panic(fmt.Sprintf("statement: %s on %s statement", op, s.kind))
	}
}

// reset restores the receiver to the default value.
func (s *Statement) reset() {
	*s = Statement{}
}

// --- BLOCK ---

// LengthOfBlock returns the number of children of a BLOCK.
func (s *Statement) LengthOfBlock() int {
	s.mustBe(KindBlock, "LengthOfBlock")
	return len(s.children)
}

// RemoveFromBlock extracts and returns child i of a BLOCK, shifting the
// children after it down by one.
func (s *Statement) RemoveFromBlock(i int) *Statement {
	s.mustBe(KindBlock, "RemoveFromBlock")
	if i < 0 || i >= len(s.children) {
		panic(fmt.Sprintf("statement: RemoveFromBlock(%d) with %d children", i, len(s.children)))
	}
	child := s.children[i]
	s.children = append(s.children[:i], s.children[i+1:]...)
	return child
}

// AddToBlock inserts child at position i of a BLOCK, shifting the
// children at and after i up by one. The receiver takes ownership of
// child.
func (s *Statement) AddToBlock(i int, child *Statement) {
	s.mustBe(KindBlock, "AddToBlock")
	if i < 0 || i > len(s.children) {
		panic(fmt.Sprintf("statement: AddToBlock(%d) with %d children", i, len(s.children)))
	}
	s.children = append(s.children, nil)
	copy(s.children[i+1:], s.children[i:])
	s.children[i] = child
}

// AppendToBlock inserts child at the end of a BLOCK.
func (s *Statement) AppendToBlock(child *Statement) {
	s.mustBe(KindBlock, "AppendToBlock")
	s.children = append(s.children, child)
}

// --- IF ---

// AssembleIf installs (cond, body) into the receiver, making it an IF.
func (s *Statement) AssembleIf(cond Condition, body *Statement) {
	*s = Statement{kind: KindIf, cond: cond, body: body}
}

// DisassembleIf extracts the condition and body of an IF, leaving the
// receiver as the default Statement.
func (s *Statement) DisassembleIf() (Condition, *Statement) {
	s.mustBe(KindIf, "DisassembleIf")
	cond, body := s.cond, s.body
	s.reset()
	return cond, body
}

// --- IF_ELSE ---

// AssembleIfElse installs (cond, thenBody, elseBody) into the receiver,
// making it an IF_ELSE.
func (s *Statement) AssembleIfElse(cond Condition, thenBody, elseBody *Statement) {
	*s = Statement{kind: KindIfElse, cond: cond, body: thenBody, elseBody: elseBody}
}

// DisassembleIfElse extracts the condition and both branches of an
// IF_ELSE, leaving the receiver as the default Statement.
func (s *Statement) DisassembleIfElse() (Condition, *Statement, *Statement) {
	s.mustBe(KindIfElse, "DisassembleIfElse")
	cond, thenBody, elseBody := s.cond, s.body, s.elseBody
	s.reset()
	return cond, thenBody, elseBody
}

// --- WHILE ---

// AssembleWhile installs (cond, body) into the receiver, making it a
// WHILE.
func (s *Statement) AssembleWhile(cond Condition, body *Statement) {
	*s = Statement{kind: KindWhile, cond: cond, body: body}
}

// DisassembleWhile extracts the condition and body of a WHILE, leaving
// the receiver as the default Statement.
func (s *Statement) DisassembleWhile() (Condition, *Statement) {
	s.mustBe(KindWhile, "DisassembleWhile")
	cond, body := s.cond, s.body
	s.reset()
	return cond, body
}

// --- CALL ---

// AssembleCall installs label into the receiver, making it a CALL.
func (s *Statement) AssembleCall(label string) {
	*s = Statement{kind: KindCall, label: label}
}

// DisassembleCall extracts the label of a CALL, leaving the receiver as
// the default Statement.
func (s *Statement) DisassembleCall() string {
	s.mustBe(KindCall, "DisassembleCall")
	label := s.label
	s.reset()
	return label
}

// --- Whole-value operations ---

// Equal reports structural equality.
func (s *Statement) Equal(o *Statement) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case KindBlock:
		if len(s.children) != len(o.children) {
			return false
		}
		for i, child := range s.children {
			if !child.Equal(o.children[i]) {
				return false
			}
		}
		return true
	case KindIf, KindWhile:
		return s.cond == o.cond && s.body.Equal(o.body)
	case KindIfElse:
		return s.cond == o.cond && s.body.Equal(o.body) && s.elseBody.Equal(o.elseBody)
	case KindCall:
		return s.label == o.label
	}
	return false
}

// Copy returns a deep copy sharing no nodes with the receiver.
func (s *Statement) Copy() *Statement {
	c := &Statement{kind: s.kind, cond: s.cond, label: s.label}
	if s.children != nil {
		c.children = make([]*Statement, len(s.children))
		for i, child := range s.children {
			c.children[i] = child.Copy()
		}
	}
	if s.body != nil {
		c.body = s.body.Copy()
	}
	if s.elseBody != nil {
		c.elseBody = s.elseBody.Copy()
	}
	return c
}

// String renders the statement in BL surface syntax.
func (s *Statement) String() string {
	var sb strings.Builder
	s.print(&sb, 0)
	return sb.String()
}

func (s *Statement) print(sb *strings.Builder, depth int) {
	indent := strings.Repeat("    ", depth)
	switch s.kind {
	case KindBlock:
		for _, child := range s.children {
			child.print(sb, depth)
		}
	case KindIf:
		fmt.Fprintf(sb, "%sIF %s THEN\n", indent, s.cond)
		s.body.print(sb, depth+1)
		fmt.Fprintf(sb, "%sEND IF\n", indent)
	case KindIfElse:
		fmt.Fprintf(sb, "%sIF %s THEN\n", indent, s.cond)
		s.body.print(sb, depth+1)
		fmt.Fprintf(sb, "%sELSE\n", indent)
		s.elseBody.print(sb, depth+1)
		fmt.Fprintf(sb, "%sEND IF\n", indent)
	case KindWhile:
		fmt.Fprintf(sb, "%sWHILE %s DO\n", indent, s.cond)
		s.body.print(sb, depth+1)
		fmt.Fprintf(sb, "%sEND WHILE\n", indent)
	case KindCall:
		fmt.Fprintf(sb, "%s%s\n", indent, s.label)
	}
}
