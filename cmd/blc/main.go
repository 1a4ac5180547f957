// blc compiles BL programs to BugsWorld bytecode files.
//
// Usage: blc [-o outdir] [-disasm] [-tree] <file.bl> ...
//
// Each input produces <name>.bc next to the output directory: the cell
// count followed by one decimal cell per line, the form the BugsWorld
// VM loads.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blLang/bugsworld/pkg/codegen"
	"github.com/blLang/bugsworld/pkg/parser"
)

func main() {
	outDir := flag.String("o", ".", "Output directory")
	disasm := flag.Bool("disasm", false, "Print disassembly of the generated code")
	tree := flag.Bool("tree", false, "Print the parsed program")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: blc [-o outdir] [-disasm] [-tree] <file.bl> ...")
		os.Exit(1)
	}

	for _, path := range flag.Args() {
		if err := compileFile(path, *outDir, *disasm, *tree); err != nil {
			fmt.Fprintf(os.Stderr, "Error compiling %s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

func compileFile(path, outDir string, showDisasm, showTree bool) error {
	p, err := parser.ParseFile(path)
	if err != nil {
		return err
	}

	if showTree {
		fmt.Printf("=== %s: context ===\n", p.Name())
		for _, name := range p.Context().Names() {
			body, _ := p.Context().Lookup(name)
			fmt.Printf("INSTRUCTION %s IS\n%sEND %s\n", name, body, name)
		}
		fmt.Printf("=== %s: body ===\n", p.Name())
		fmt.Print(p.Body())
	}

	cp, err := codegen.GenerateProgram(p)
	if err != nil {
		return err
	}

	if showDisasm {
		fmt.Printf("=== %s (%d cells) ===\n", p.Name(), cp.Len())
		fmt.Print(cp)
	}

	baseName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(outDir, baseName+".bc")
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := cp.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("%s: %d cells -> %s\n", p.Name(), cp.Len(), outPath)
	return nil
}
