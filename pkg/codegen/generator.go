// Package codegen lowers a BL statement tree to a flat compiled
// program: a single recursive pass that appends opcodes, patches jump
// targets in place once they are known, and inlines user-defined
// instructions from the Context.
//
// Generation reads the tree through its destructive disassemble and
// assemble operations, so every node is moved out of its slot, lowered,
// and moved back. On success the tree is structurally unchanged, with
// one documented exception: a CALL naming a primitive instruction is
// reassembled with the canonical lower-case spelling, while a CALL
// naming a Context entry keeps its original spelling.
package codegen

import (
	"fmt"
	"strings"

	"github.com/blLang/bugsworld/pkg/bytecode"
	"github.com/blLang/bugsworld/pkg/program"
	"github.com/blLang/bugsworld/pkg/statement"
)

// conditionalJump maps a condition to its "jump if condition false"
// instruction. The TRUE jump never fires; it exists so an IF with a
// trivial guard lowers like any other.
func conditionalJump(c statement.Condition) bytecode.Instruction {
	switch c {
	case statement.NextIsEmpty:
		return bytecode.OpJumpIfNotNextIsEmpty
	case statement.NextIsNotEmpty:
		return bytecode.OpJumpIfNotNextIsNotEmpty
	case statement.NextIsEnemy:
		return bytecode.OpJumpIfNotNextIsEnemy
	case statement.NextIsNotEnemy:
		return bytecode.OpJumpIfNotNextIsNotEnemy
	case statement.NextIsFriend:
		return bytecode.OpJumpIfNotNextIsFriend
	case statement.NextIsNotFriend:
		return bytecode.OpJumpIfNotNextIsNotFriend
	case statement.NextIsWall:
		return bytecode.OpJumpIfNotNextIsWall
	case statement.NextIsNotWall:
		return bytecode.OpJumpIfNotNextIsNotWall
	case statement.Random:
		return bytecode.OpJumpIfNotRandom
	default:
		return bytecode.OpJumpIfNotTrue
	}
}

// Generate appends the code for s to cp, resolving CALL labels against
// ctx. It returns an *bytecode.UnknownInstructionError (wrapped) if a
// CALL names neither a Context entry nor a primitive; the pass is
// aborted and cp must be discarded, but s is still restored.
func Generate(s *statement.Statement, ctx *program.Context, cp *bytecode.CompiledProgram) error {
	const placeholder = 0

	switch s.Kind() {
	case statement.KindBlock:
		for i := 0; i < s.LengthOfBlock(); i++ {
			child := s.RemoveFromBlock(i)
			err := Generate(child, ctx, cp)
			s.AddToBlock(i, child)
			if err != nil {
				return err
			}
		}

	case statement.KindIf:
		cond, body := s.DisassembleIf()
		cp.Add(int(conditionalJump(cond)))
		fixup := cp.Len()
		cp.Add(placeholder)
		err := Generate(body, ctx, cp)
		cp.Patch(fixup, cp.Len())
		s.AssembleIf(cond, body)
		if err != nil {
			return err
		}

	case statement.KindIfElse:
		cond, thenBody, elseBody := s.DisassembleIfElse()
		cp.Add(int(conditionalJump(cond)))
		condFixup := cp.Len()
		cp.Add(placeholder)
		err := Generate(thenBody, ctx, cp)
		if err == nil {
			cp.Add(int(bytecode.OpJump))
			jumpFixup := cp.Len()
			cp.Add(placeholder)
			cp.Patch(condFixup, cp.Len())
			err = Generate(elseBody, ctx, cp)
			cp.Patch(jumpFixup, cp.Len())
		}
		s.AssembleIfElse(cond, thenBody, elseBody)
		if err != nil {
			return err
		}

	case statement.KindWhile:
		cond, body := s.DisassembleWhile()
		test := cp.Len()
		cp.Add(int(conditionalJump(cond)))
		fixup := cp.Len()
		cp.Add(placeholder)
		err := Generate(body, ctx, cp)
		if err == nil {
			cp.Add(int(bytecode.OpJump))
			cp.Add(test)
			cp.Patch(fixup, cp.Len())
		}
		s.AssembleWhile(cond, body)
		if err != nil {
			return err
		}

	case statement.KindCall:
		label := s.DisassembleCall()
		if body, ok := ctx.Lookup(label); ok {
			// Inlining is single-level: the nested pass gets an empty
			// context, so an instruction body cannot expand further
			// user-defined instructions.
			err := Generate(body, program.NewContext(), cp)
			s.AssembleCall(label)
			if err != nil {
				return err
			}
		} else {
			op, err := bytecode.ByName(strings.ToUpper(label))
			if err != nil {
				s.AssembleCall(label)
				return fmt.Errorf("call %q: %w", label, err)
			}
			cp.Add(int(op))
			s.AssembleCall(strings.ToLower(label))
		}
	}
	return nil
}

// GenerateProgram lowers the whole program: the body is generated
// against the installed Context, and both are restored into p before
// returning. On error no compiled program is produced.
func GenerateProgram(p *program.Program) (bytecode.CompiledProgram, error) {
	body := p.TakeBody()
	ctx := p.TakeContext()

	var cp bytecode.CompiledProgram
	err := Generate(body, ctx, &cp)

	// Reinstalling values that were just taken from the program cannot
	// fail validation.
	if serr := p.SetContext(ctx); serr != nil {
		panic(fmt.Sprintf("codegen: context no longer valid after generation: %v", serr))
	}
	if serr := p.SetBody(body); serr != nil {
		panic(fmt.Sprintf("codegen: body no longer valid after generation: %v", serr))
	}

	if err != nil {
		return nil, fmt.Errorf("generating code for %s: %w", p.Name(), err)
	}
	return cp, nil
}
