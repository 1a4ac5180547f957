package bytecode

import (
	"fmt"
	"io"
	"strings"
)

// Scan walks cp instruction by instruction, calling fn with the address
// of each opcode, the opcode itself, and its jump target (-1 for
// primitives). It stops with an error if a cell is not a valid opcode,
// if an operand runs past the end of the program, or if a jump target
// lies outside [0, N]. A target equal to N is valid: it is the address
// immediately past the whole program.
func (cp CompiledProgram) Scan(fn func(addr int, op Instruction, target int) error) error {
	pc := 0
	for pc < len(cp) {
		op := Instruction(cp[pc])
		if !op.Valid() {
			return fmt.Errorf("cell %d: invalid opcode %d", pc, cp[pc])
		}
		target := -1
		if op.Arity() == 1 {
			if pc+1 >= len(cp) {
				return fmt.Errorf("cell %d: %s is missing its target operand", pc, op)
			}
			target = cp[pc+1]
			if target < 0 || target > len(cp) {
				return fmt.Errorf("cell %d: %s target %d outside [0, %d]", pc, op, target, len(cp))
			}
		}
		if fn != nil {
			if err := fn(pc, op, target); err != nil {
				return err
			}
		}
		pc += 1 + op.Arity()
	}
	return nil
}

// Validate checks that cp decodes cleanly under the catalog arities:
// every cell is consumed exactly once and every jump target is a valid
// address.
func (cp CompiledProgram) Validate() error {
	return cp.Scan(nil)
}

// Disassemble writes a one-instruction-per-line listing of cp.
func (cp CompiledProgram) Disassemble(w io.Writer) error {
	return cp.Scan(func(addr int, op Instruction, target int) error {
		var err error
		if target >= 0 {
			_, err = fmt.Fprintf(w, "%4d: %s %d\n", addr, op, target)
		} else {
			_, err = fmt.Fprintf(w, "%4d: %s\n", addr, op)
		}
		return err
	})
}

// String returns the disassembly listing, or a note when the program is
// malformed.
func (cp CompiledProgram) String() string {
	var sb strings.Builder
	if err := cp.Disassemble(&sb); err != nil {
		fmt.Fprintf(&sb, "(malformed: %v)\n", err)
	}
	return sb.String()
}
