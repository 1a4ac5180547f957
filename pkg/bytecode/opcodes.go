// Package bytecode defines the BugsWorld instruction set and the flat
// compiled-program form shared by the code generator, the disassembler,
// and the virtual machine.
package bytecode

import "fmt"

// Instruction is one element of the closed instruction catalog. The
// integer value of an Instruction is its byte code.
type Instruction int

// The catalog. MOVE through SKIP are primitives (no operands). JUMP and
// every JUMP_IF_NOT_* take one operand: an absolute cell index.
const (
	OpMove Instruction = iota
	OpTurnLeft
	OpTurnRight
	OpInfect
	OpSkip
	OpJump
	OpJumpIfNotNextIsEmpty
	OpJumpIfNotNextIsNotEmpty
	OpJumpIfNotNextIsEnemy
	OpJumpIfNotNextIsNotEnemy
	OpJumpIfNotNextIsFriend
	OpJumpIfNotNextIsNotFriend
	OpJumpIfNotNextIsWall
	OpJumpIfNotNextIsNotWall
	OpJumpIfNotRandom
	OpJumpIfNotTrue

	numInstructions
)

// names is the symbolic name table, indexed by byte code. Primitive
// names upper-case to the symbolic name exactly (MOVE, TURNLEFT, ...),
// which is what lets a call label round-trip through the catalog.
var names = [numInstructions]string{
	OpMove:                     "MOVE",
	OpTurnLeft:                 "TURNLEFT",
	OpTurnRight:                "TURNRIGHT",
	OpInfect:                   "INFECT",
	OpSkip:                     "SKIP",
	OpJump:                     "JUMP",
	OpJumpIfNotNextIsEmpty:     "JUMP_IF_NOT_NEXT_IS_EMPTY",
	OpJumpIfNotNextIsNotEmpty:  "JUMP_IF_NOT_NEXT_IS_NOT_EMPTY",
	OpJumpIfNotNextIsEnemy:     "JUMP_IF_NOT_NEXT_IS_ENEMY",
	OpJumpIfNotNextIsNotEnemy:  "JUMP_IF_NOT_NEXT_IS_NOT_ENEMY",
	OpJumpIfNotNextIsFriend:    "JUMP_IF_NOT_NEXT_IS_FRIEND",
	OpJumpIfNotNextIsNotFriend: "JUMP_IF_NOT_NEXT_IS_NOT_FRIEND",
	OpJumpIfNotNextIsWall:      "JUMP_IF_NOT_NEXT_IS_WALL",
	OpJumpIfNotNextIsNotWall:   "JUMP_IF_NOT_NEXT_IS_NOT_WALL",
	OpJumpIfNotRandom:          "JUMP_IF_NOT_RANDOM",
	OpJumpIfNotTrue:            "JUMP_IF_NOT_TRUE",
}

var byName = func() map[string]Instruction {
	m := make(map[string]Instruction, numInstructions)
	for op, name := range names {
		m[name] = Instruction(op)
	}
	return m
}()

// primitiveNames are the canonical lower-case spellings of the five
// primitive instructions, as they appear in BL source.
var primitiveNames = map[string]bool{
	"move":      true,
	"turnleft":  true,
	"turnright": true,
	"infect":    true,
	"skip":      true,
}

// UnknownInstructionError reports a lookup of a name that is not in the
// catalog. It is the generator's sole error channel.
type UnknownInstructionError struct {
	Name string
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("unknown instruction %q", e.Name)
}

// ByName returns the instruction with the given symbolic name.
func ByName(name string) (Instruction, error) {
	op, ok := byName[name]
	if !ok {
		return 0, &UnknownInstructionError{Name: name}
	}
	return op, nil
}

// Valid reports whether i is a byte code in the catalog.
func (i Instruction) Valid() bool {
	return i >= 0 && i < numInstructions
}

// Name returns the symbolic name of i, or "?" for a value outside the
// catalog.
func (i Instruction) Name() string {
	if !i.Valid() {
		return "?"
	}
	return names[i]
}

func (i Instruction) String() string { return i.Name() }

// IsPrimitive reports whether i is one of the five primitives.
func (i Instruction) IsPrimitive() bool {
	return i >= OpMove && i <= OpSkip
}

// IsJump reports whether i is JUMP or a conditional jump.
func (i Instruction) IsJump() bool {
	return i >= OpJump && i < numInstructions
}

// IsConditionalJump reports whether i is a JUMP_IF_NOT_* instruction.
func (i Instruction) IsConditionalJump() bool {
	return i > OpJump && i < numInstructions
}

// Arity returns the number of operand cells following i: 0 for
// primitives, 1 for every jump.
func (i Instruction) Arity() int {
	if i.IsJump() {
		return 1
	}
	return 0
}

// IsPrimitiveName reports whether name is the canonical lower-case
// spelling of a primitive instruction. Context keys must not collide
// with these.
func IsPrimitiveName(name string) bool {
	return primitiveNames[name]
}
