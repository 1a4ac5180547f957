package bytecode

import (
	"bufio"
	"fmt"
	"io"
)

// CompiledProgram is the flat, 0-indexed sequence of integer cells a
// generation pass produces. Each cell is an opcode, a jump target, or a
// not-yet-patched placeholder; nothing in the sequence itself marks
// which is which, so readers must replay the catalog arities from cell
// 0 (see Scan).
//
// A CompiledProgram is built by appending, and a cell may be patched in
// place only after it has been appended. Once generation finishes the
// value is treated as immutable.
type CompiledProgram []int

// Add appends one cell.
func (cp *CompiledProgram) Add(v int) {
	*cp = append(*cp, v)
}

// Len returns the number of cells.
func (cp CompiledProgram) Len() int {
	return len(cp)
}

// Patch overwrites a previously appended cell. Patching a cell that was
// never appended is a programming error.
func (cp CompiledProgram) Patch(i, v int) {
	if i < 0 || i >= len(cp) {
		panic(fmt.Sprintf("bytecode: patch of cell %d in program of length %d", i, len(cp)))
	}
	cp[i] = v
}

// Encode writes the persisted form: the cell count N on the first line,
// then the N cells as decimal integers, one per line.
func (cp CompiledProgram) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(cp))
	for _, cell := range cp {
		fmt.Fprintln(bw, cell)
	}
	return bw.Flush()
}

// Decode reads the persisted form written by Encode. Any stream of
// whitespace-separated decimal integers is accepted.
func Decode(r io.Reader) (CompiledProgram, error) {
	br := bufio.NewReader(r)
	var n int
	if _, err := fmt.Fscan(br, &n); err != nil {
		return nil, fmt.Errorf("reading cell count: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("negative cell count %d", n)
	}
	cp := make(CompiledProgram, n)
	for i := range cp {
		if _, err := fmt.Fscan(br, &cp[i]); err != nil {
			return nil, fmt.Errorf("reading cell %d of %d: %w", i, n, err)
		}
	}
	return cp, nil
}
