// bugsworld compiles the species programs named in a TOML config,
// drops the bugs into a grid world, and runs the simulation.
//
// Usage: bugsworld [-render n] [-ticks n] <config.toml>
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/tliron/commonlog"

	"github.com/blLang/bugsworld/pkg/codegen"
	"github.com/blLang/bugsworld/pkg/parser"
	"github.com/blLang/bugsworld/pkg/world"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	renderEvery := flag.Int("render", 0, "Render the grid every n ticks (0 = only at the end)")
	ticks := flag.Int("ticks", 0, "Override the tick count from the config")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: bugsworld [-render n] [-ticks n] <config.toml>")
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *renderEvery, *ticks); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, renderEvery, tickOverride int) error {
	cfg, err := world.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if tickOverride > 0 {
		cfg.Ticks = tickOverride
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	w := world.New(cfg.Width, cfg.Height, rng)
	w.ScatterWalls(cfg.WallRate)

	for _, sc := range cfg.Species {
		p, err := parser.ParseFile(sc.Program)
		if err != nil {
			return fmt.Errorf("species %q: %w", sc.Name, err)
		}
		cp, err := codegen.GenerateProgram(p)
		if err != nil {
			return fmt.Errorf("species %q: %w", sc.Name, err)
		}
		if err := cp.Validate(); err != nil {
			return fmt.Errorf("species %q: generated code is malformed: %w", sc.Name, err)
		}
		commonlog.NewInfoMessage(0, fmt.Sprintf("compiled %s for species %q: %d cells", p.Name(), sc.Name, cp.Len()))

		sp := &world.Species{Name: sc.Name, Glyph: sc.SpeciesGlyph(), Code: cp}
		for i := 0; i < sc.Count; i++ {
			bug := &world.Bug{
				Species: sp,
				X:       rng.Intn(cfg.Width),
				Y:       rng.Intn(cfg.Height),
				Dir:     world.Direction(rng.Intn(4)),
			}
			if !w.Spawn(bug) {
				return fmt.Errorf("species %q: no room for bug %d", sc.Name, i)
			}
		}
	}

	for t := 0; t < cfg.Ticks; t++ {
		w.Step()
		if renderEvery > 0 && (t+1)%renderEvery == 0 {
			fmt.Printf("--- tick %d ---\n", w.Tick)
			w.Render(os.Stdout)
		}
	}

	fmt.Printf("=== final state after %d ticks ===\n", w.Tick)
	w.Render(os.Stdout)
	census := w.Census()
	names := make([]string, 0, len(census))
	for name := range census {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s: %d bugs\n", name, census[name])
	}
	return nil
}
