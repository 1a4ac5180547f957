package world

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "sim.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
width = 10
height = 8
ticks = 50
seed = 42
wall-rate = 0.1

[[species]]
name = "guard"
program = "guard.bl"
count = 3
glyph = "G"

[[species]]
name = "wanderer"
program = "/tmp/wanderer.bl"
`)

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Width != 10 || c.Height != 8 || c.Ticks != 50 || c.Seed != 42 {
		t.Errorf("loaded %+v", c)
	}
	if c.WallRate != 0.1 {
		t.Errorf("wall rate = %v", c.WallRate)
	}
	if len(c.Species) != 2 {
		t.Fatalf("%d species", len(c.Species))
	}

	guard := c.Species[0]
	if guard.Count != 3 {
		t.Errorf("count = %d", guard.Count)
	}
	// Relative program paths resolve against the config directory.
	if guard.Program != filepath.Join(c.Dir, "guard.bl") {
		t.Errorf("program = %q", guard.Program)
	}
	if guard.SpeciesGlyph() != 'G' {
		t.Errorf("glyph = %q", guard.SpeciesGlyph())
	}

	wanderer := c.Species[1]
	if wanderer.Program != "/tmp/wanderer.bl" {
		t.Errorf("absolute path rewritten to %q", wanderer.Program)
	}
	if wanderer.Count != 1 {
		t.Errorf("default count = %d", wanderer.Count)
	}
	if wanderer.SpeciesGlyph() != 'w' {
		t.Errorf("default glyph = %q", wanderer.SpeciesGlyph())
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[[species]]
name = "g"
program = "g.bl"
`)
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Width != 24 || c.Height != 16 || c.Ticks != 100 {
		t.Errorf("defaults not applied: %+v", c)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		body string
	}{
		{"no species", "width = 5\n"},
		{"species without name", "[[species]]\nprogram = \"x.bl\"\n"},
		{"species without program", "[[species]]\nname = \"x\"\n"},
		{"bad toml", "width = = 5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, dir, tt.body)
			if _, err := LoadConfig(path); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(dir, "absent.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
