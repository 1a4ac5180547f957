package world

import "github.com/blLang/bugsworld/pkg/bytecode"

// maxJumpChain bounds how many jumps a bug may take in one turn before
// it forfeits the turn. A program like WHILE true DO END WHILE is all
// jumps and would otherwise spin forever.
const maxJumpChain = 256

// Step advances the world one tick: every bug executes jumps until one
// primitive instruction fires, then the primitive is applied.
func (w *World) Step() {
	for _, b := range w.Bugs {
		w.stepBug(b)
	}
	w.Tick++
}

func (w *World) stepBug(b *Bug) {
	code := b.Species.Code
	if len(code) == 0 {
		return
	}
	for jumps := 0; jumps < maxJumpChain; jumps++ {
		// Falling off the end restarts the program.
		if b.PC >= len(code) {
			b.PC = 0
		}
		op := bytecode.Instruction(code[b.PC])
		if op.IsPrimitive() {
			w.perform(b, op)
			b.PC++
			return
		}
		if !op.IsJump() || b.PC+1 >= len(code) {
			// Corrupt code; restart rather than crash the world.
			b.PC = 0
			return
		}
		target := code[b.PC+1]
		if target < 0 || target > len(code) {
			b.PC = 0
			return
		}
		switch {
		case op == bytecode.OpJump:
			b.PC = target
		case w.sense(b, op):
			b.PC += 2
		default:
			b.PC = target
		}
	}
}

// sense evaluates the condition guarded by a conditional jump, looking
// at the cell directly ahead of b.
func (w *World) sense(b *Bug, op bytecode.Instruction) bool {
	dx, dy := b.Dir.Delta()
	nx, ny := b.X+dx, b.Y+dy

	wall := w.WallAt(nx, ny)
	other := w.BugAt(nx, ny)
	empty := !wall && other == nil
	enemy := other != nil && other.Species != b.Species
	friend := other != nil && other.Species == b.Species

	switch op {
	case bytecode.OpJumpIfNotNextIsEmpty:
		return empty
	case bytecode.OpJumpIfNotNextIsNotEmpty:
		return !empty
	case bytecode.OpJumpIfNotNextIsEnemy:
		return enemy
	case bytecode.OpJumpIfNotNextIsNotEnemy:
		return !enemy
	case bytecode.OpJumpIfNotNextIsFriend:
		return friend
	case bytecode.OpJumpIfNotNextIsNotFriend:
		return !friend
	case bytecode.OpJumpIfNotNextIsWall:
		return wall
	case bytecode.OpJumpIfNotNextIsNotWall:
		return !wall
	case bytecode.OpJumpIfNotRandom:
		return w.Rng.Intn(2) == 0
	default: // JUMP_IF_NOT_TRUE
		return true
	}
}

// perform applies one primitive instruction to the world.
func (w *World) perform(b *Bug, op bytecode.Instruction) {
	switch op {
	case bytecode.OpMove:
		dx, dy := b.Dir.Delta()
		nx, ny := b.X+dx, b.Y+dy
		if w.freeAt(nx, ny) {
			w.occ[w.idx(b.X, b.Y)] = nil
			b.X, b.Y = nx, ny
			w.occ[w.idx(nx, ny)] = b
		}
	case bytecode.OpTurnLeft:
		b.Dir = b.Dir.Left()
	case bytecode.OpTurnRight:
		b.Dir = b.Dir.Right()
	case bytecode.OpInfect:
		dx, dy := b.Dir.Delta()
		if other := w.BugAt(b.X+dx, b.Y+dy); other != nil && other.Species != b.Species {
			other.Species = b.Species
			other.PC = 0
		}
	case bytecode.OpSkip:
		// do nothing this turn
	}
}
