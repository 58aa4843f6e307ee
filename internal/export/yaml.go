// Package export writes generated levels to YAML files for downstream
// tooling.
package export

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/roomcarver/internal/world"
)

// LevelYAML is the on-disk representation of a generated level.
type LevelYAML struct {
	ID          string   `yaml:"id"`
	Seed        int64    `yaml:"seed"`
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	RoomsPlaced int      `yaml:"rooms_placed"`
	Start       string   `yaml:"start,omitempty"`
	End         string   `yaml:"end,omitempty"`
	Grid        []string `yaml:"grid"`
}

// FromLevel converts a level to its YAML form. Grid rows are emitted as
// strings of tile runes, one per row.
func FromLevel(l *world.Level) *LevelYAML {
	out := &LevelYAML{
		ID:          l.ID().String(),
		Seed:        l.Seed(),
		Width:       l.Width(),
		Height:      l.Height(),
		RoomsPlaced: l.RoomsPlaced(),
	}
	if l.HasMarks() {
		sy, sx := l.Start()
		ey, ex := l.End()
		out.Start = fmt.Sprintf("%d,%d", sy, sx)
		out.End = fmt.Sprintf("%d,%d", ey, ex)
	}
	for y := 0; y < l.Height(); y++ {
		row := make([]rune, l.Width())
		for x := 0; x < l.Width(); x++ {
			row[x] = l.TileAt(y, x).Rune()
		}
		out.Grid = append(out.Grid, string(row))
	}
	return out
}

// Encode writes the level as YAML to w, preceded by a header comment.
func Encode(l *world.Level, w io.Writer) error {
	fmt.Fprintf(w, "# Level %s\n", l.ID())
	fmt.Fprintf(w, "# Generated with seed: %d\n", l.Seed())
	fmt.Fprintf(w, "# Rooms placed: %d\n\n", l.RoomsPlaced())

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(FromLevel(l)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

// WriteLevelYAML writes the level to a YAML file at path.
func WriteLevelYAML(l *world.Level, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()
	return Encode(l, f)
}
