package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomcarver/internal/world"
)

// BuildFunc generates a level for the given seed.
type BuildFunc func(ctx context.Context, seed int64) (*world.Level, error)

// Viewer is the interactive loop: show a level, reroll on demand.
type Viewer struct {
	screen   *Screen
	renderer *Renderer
	build    BuildFunc
	seed     int64
	level    *world.Level
	running  bool
}

// NewViewer creates a viewer starting at the given seed.
func NewViewer(build BuildFunc, seed int64) (*Viewer, error) {
	screen, err := NewScreen()
	if err != nil {
		return nil, err
	}
	return &Viewer{
		screen:   screen,
		renderer: NewRenderer(screen),
		build:    build,
		seed:     seed,
		running:  true,
	}, nil
}

// Run executes the viewer loop until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.screen.Close()

	if err := v.regenerate(ctx); err != nil {
		return err
	}

	for v.running {
		v.renderer.Render(v.level)
		if err := v.handleInput(ctx); err != nil {
			return err
		}
	}
	return nil
}

// regenerate builds the level for the current seed.
func (v *Viewer) regenerate(ctx context.Context) error {
	level, err := v.build(ctx, v.seed)
	if err != nil {
		return err
	}
	v.level = level
	return nil
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) error {
	switch ev := v.screen.PollEvent().(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			v.running = false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			v.running = false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
			v.seed++
			return v.regenerate(ctx)
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return nil
}
