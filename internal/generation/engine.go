package generation

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomcarver/internal/geom"
	"github.com/samdwyer/roomcarver/internal/rng"
	"github.com/samdwyer/roomcarver/internal/telemetry"
	"github.com/samdwyer/roomcarver/internal/world"
)

// Configuration errors, surfaced by New before any generation happens.
var (
	ErrNoGenerators = errors.New("generation: no room generators configured")
	ErrBadWeights   = errors.New("generation: weights must be positive and match the generator count")
	ErrBadDims      = errors.New("generation: grid dimensions must be positive")
	ErrBadBudget    = errors.New("generation: room budget must be non-negative")
	// ErrTooFewWalkable is returned when start/end marking is requested
	// but fewer than two walkable cells exist.
	ErrTooFewWalkable = errors.New("generation: fewer than two walkable cells for start/end marks")
)

// Config describes one generation run.
type Config struct {
	// Seed drives the deterministic RNG. Identical seed and config
	// always reproduce the identical level.
	Seed int64
	// Height and Width are the grid dimensions in cells.
	Height int
	Width  int
	// MaxRooms is the placement attempt budget. Rooms that find no valid
	// position are dropped, so fewer rooms may actually be placed.
	MaxRooms int
	// Gens are the room generators to draw from.
	Gens []RoomGen
	// Weights biases generator selection; nil means uniform. When set it
	// must parallel Gens with positive values.
	Weights []float64
	// MarkStartEnd picks two distinct walkable cells as entry and exit.
	MarkStartEnd bool
}

// Generator runs the placement search: pick a room, slide its footprint
// over every legal offset, collect the offsets the room accepts, place at
// one of them chosen uniformly.
type Generator struct {
	cfg     Config
	weights []float64
}

// New validates the configuration and returns a Generator.
func New(cfg Config) (*Generator, error) {
	if cfg.Height <= 0 || cfg.Width <= 0 {
		return nil, ErrBadDims
	}
	if cfg.MaxRooms < 0 {
		return nil, ErrBadBudget
	}
	if len(cfg.Gens) == 0 {
		return nil, ErrNoGenerators
	}
	weights := cfg.Weights
	if weights == nil {
		weights = make([]float64, len(cfg.Gens))
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != len(cfg.Gens) {
		return nil, ErrBadWeights
	}
	for _, w := range weights {
		if w <= 0 {
			return nil, ErrBadWeights
		}
	}
	return &Generator{cfg: cfg, weights: weights}, nil
}

// Generate runs the full placement loop from the configured seed.
func (g *Generator) Generate(ctx context.Context) (*world.Level, error) {
	return g.GenerateWith(ctx, rng.NewLCG(g.cfg.Seed))
}

// GenerateWith runs the placement loop drawing from src instead of the
// seeded LCG. Tests use this to inject fixed sequences.
func (g *Generator) GenerateWith(ctx context.Context, src rng.Source) (*world.Level, error) {
	tracer := telemetry.Tracer("generation")
	_, span := tracer.Start(ctx, "level.generate")
	defer span.End()

	startTime := time.Now()
	grid := world.NewGrid(g.cfg.Height, g.cfg.Width)

	placed := 0
	for i := 0; i < g.cfg.MaxRooms; i++ {
		idx, err := rng.DiscreteSample(src, g.weights)
		if err != nil {
			// Weights were validated in New; this cannot happen.
			return nil, err
		}
		room := g.cfg.Gens[idx](src)

		offsets := fittingOffsets(grid, room)
		if placed > 0 {
			offsets = filterValid(grid, room, offsets)
		}
		if len(offsets) == 0 {
			// Expected once the grid fills up: the room is dropped.
			continue
		}
		at := offsets[rng.Intn(src, len(offsets))]
		room.PlaceAt(src, grid, at.Y, at.X)
		placed++
	}

	var marks [4]int
	if g.cfg.MarkStartEnd {
		var err error
		marks, err = markStartEnd(src, grid)
		if err != nil {
			return nil, err
		}
	}
	level := world.NewLevel(grid, g.cfg.Seed, placed)
	if g.cfg.MarkStartEnd {
		level.SetMarks(marks[0], marks[1], marks[2], marks[3])
	}

	span.SetAttributes(
		attribute.Int("level.width", g.cfg.Width),
		attribute.Int("level.height", g.cfg.Height),
		attribute.Int("level.room_budget", g.cfg.MaxRooms),
		attribute.Int("level.rooms_placed", placed),
		attribute.Int64("level.generation_us", time.Since(startTime).Microseconds()),
	)
	return level, nil
}

// fittingOffsets enumerates every offset where the room's footprint lies
// fully inside the grid, row-major.
func fittingOffsets(g *world.Grid, room Room) []geom.Point {
	maxY := g.Height() - room.Height()
	maxX := g.Width() - room.Width()
	if maxY < 0 || maxX < 0 {
		return nil
	}
	offsets := make([]geom.Point, 0, (maxY+1)*(maxX+1))
	for y := 0; y <= maxY; y++ {
		for x := 0; x <= maxX; x++ {
			offsets = append(offsets, geom.Point{Y: y, X: x})
		}
	}
	return offsets
}

// filterValid keeps the offsets the room itself accepts.
func filterValid(g *world.Grid, room Room, offsets []geom.Point) []geom.Point {
	valid := offsets[:0]
	for _, p := range offsets {
		if room.CanPlaceAt(g, p.Y, p.X) {
			valid = append(valid, p)
		}
	}
	return valid
}

// markStartEnd picks two distinct walkable cells uniformly, marks them as
// entry and exit, and returns their coordinates.
func markStartEnd(src rng.Source, grid *world.Grid) ([4]int, error) {
	cells := grid.WalkableCoords()
	if len(cells) < 2 {
		return [4]int{}, ErrTooFewWalkable
	}
	si := rng.Intn(src, len(cells))
	start := cells[si]
	cells = append(cells[:si], cells[si+1:]...)
	end := cells[rng.Intn(src, len(cells))]

	grid.Set(start[0], start[1], world.TileStart)
	grid.Set(end[0], end[1], world.TileEnd)
	return [4]int{start[0], start[1], end[0], end[1]}, nil
}
