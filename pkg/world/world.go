// Package world runs compiled BL programs in a 2D grid of competing
// bugs. Each species owns one compiled program; every bug of the
// species executes it from its own program counter.
package world

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/blLang/bugsworld/pkg/bytecode"
)

// Direction is a compass heading.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) String() string {
	return [...]string{"north", "east", "south", "west"}[d]
}

// Left returns d rotated 90 degrees counterclockwise.
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Right returns d rotated 90 degrees clockwise.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Delta returns the unit step for d. North is -y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// Species is a bug kind: a name, a display glyph, and the compiled
// program all its bugs run.
type Species struct {
	Name  string
	Glyph rune
	Code  bytecode.CompiledProgram
}

// Bug is one creature: its species, position, heading, and program
// counter into the species code.
type Bug struct {
	Species *Species
	X, Y    int
	Dir     Direction
	PC      int
}

// World is the grid: walls, bug occupancy, and the tick counter.
type World struct {
	Width, Height int
	Bugs          []*Bug
	Tick          int
	Rng           *rand.Rand

	walls []bool
	occ   []*Bug
}

// New creates an empty width x height world.
func New(width, height int, rng *rand.Rand) *World {
	return &World{
		Width:  width,
		Height: height,
		Rng:    rng,
		walls:  make([]bool, width*height),
		occ:    make([]*Bug, width*height),
	}
}

func (w *World) idx(x, y int) int {
	return y*w.Width + x
}

// InBounds reports whether (x,y) is on the grid.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

// WallAt reports whether (x,y) is a wall. Everything off the grid is a
// wall.
func (w *World) WallAt(x, y int) bool {
	if !w.InBounds(x, y) {
		return true
	}
	return w.walls[w.idx(x, y)]
}

// SetWall places or removes a wall. Placing a wall under a bug is a
// programming error.
func (w *World) SetWall(x, y int, wall bool) {
	if !w.InBounds(x, y) {
		return
	}
	if wall && w.occ[w.idx(x, y)] != nil {
		panic(fmt.Sprintf("world: wall placed on bug at (%d,%d)", x, y))
	}
	w.walls[w.idx(x, y)] = wall
}

// BugAt returns the bug occupying (x,y), or nil.
func (w *World) BugAt(x, y int) *Bug {
	if !w.InBounds(x, y) {
		return nil
	}
	return w.occ[w.idx(x, y)]
}

// freeAt reports whether (x,y) can hold a bug.
func (w *World) freeAt(x, y int) bool {
	return w.InBounds(x, y) && !w.walls[w.idx(x, y)] && w.occ[w.idx(x, y)] == nil
}

// Spawn places b in the world. If b's position is taken it tries random
// cells; returns false if no free cell was found.
func (w *World) Spawn(b *Bug) bool {
	if !w.freeAt(b.X, b.Y) {
		placed := false
		for tries := 0; tries < 100; tries++ {
			x := w.Rng.Intn(w.Width)
			y := w.Rng.Intn(w.Height)
			if w.freeAt(x, y) {
				b.X, b.Y = x, y
				placed = true
				break
			}
		}
		if !placed {
			return false
		}
	}
	w.occ[w.idx(b.X, b.Y)] = b
	w.Bugs = append(w.Bugs, b)
	return true
}

// ScatterWalls turns roughly rate of the free cells into walls.
func (w *World) ScatterWalls(rate float64) {
	for i := range w.walls {
		if w.occ[i] == nil && w.Rng.Float64() < rate {
			w.walls[i] = true
		}
	}
}

// Census returns the number of living bugs per species name.
func (w *World) Census() map[string]int {
	counts := make(map[string]int)
	for _, b := range w.Bugs {
		counts[b.Species.Name]++
	}
	return counts
}

// Render writes an ASCII view of the grid: '#' wall, '.' empty, and
// each bug as its species glyph.
func (w *World) Render(out io.Writer) {
	row := make([]byte, 0, w.Width+1)
	for y := 0; y < w.Height; y++ {
		row = row[:0]
		for x := 0; x < w.Width; x++ {
			switch {
			case w.walls[w.idx(x, y)]:
				row = append(row, '#')
			case w.occ[w.idx(x, y)] != nil:
				row = append(row, byte(w.occ[w.idx(x, y)].Species.Glyph))
			default:
				row = append(row, '.')
			}
		}
		row = append(row, '\n')
		out.Write(row)
	}
}
