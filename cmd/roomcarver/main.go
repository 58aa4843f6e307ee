// Package main is the entry point for roomcarver.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gookit/color"
	"github.com/joho/godotenv"

	"github.com/samdwyer/roomcarver/internal/export"
	"github.com/samdwyer/roomcarver/internal/generation"
	"github.com/samdwyer/roomcarver/internal/roomdata"
	"github.com/samdwyer/roomcarver/internal/telemetry"
	"github.com/samdwyer/roomcarver/internal/ui"
	"github.com/samdwyer/roomcarver/internal/world"
)

func main() {
	seed := flag.Int64("seed", 1, "generation seed; the same seed reproduces the same level")
	width := flag.Int("width", 60, "level width in cells")
	height := flag.Int("height", 30, "level height in cells")
	rooms := flag.Int("rooms", 18, "room placement budget")
	hallway := flag.Int("hallway", 6, "maximum corridor length for hallway rooms")
	mark := flag.Bool("mark", true, "mark random start and end cells")
	outPath := flag.String("out", "", "write the level to this YAML file and exit")
	printLevel := flag.Bool("print", false, "print the level to stdout and exit")
	flag.Parse()

	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}
	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Generator will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	registry := roomdata.MustLoadRegistry()
	build := func(ctx context.Context, seed int64) (*world.Level, error) {
		cfg := generation.Config{
			Seed:     seed,
			Height:   *height,
			Width:    *width,
			MaxRooms: *rooms,
			Gens: append([]generation.RoomGen{
				generation.RandomRect(4, 8, 4, 10, 0),
				generation.RandomRect(4, 6, 4, 6, *hallway),
			}, registry.Gens()...),
			Weights:      append([]float64{5, 3}, registry.Weights()...),
			MarkStartEnd: *mark,
		}
		gen, err := generation.New(cfg)
		if err != nil {
			return nil, err
		}
		return gen.Generate(ctx)
	}

	if *outPath != "" || *printLevel {
		level, err := build(ctx, *seed)
		if err != nil {
			log.Fatalf("Generation failed: %v", err)
		}
		if *outPath != "" {
			if err := export.WriteLevelYAML(level, *outPath); err != nil {
				log.Fatalf("Export failed: %v", err)
			}
			log.Printf("Wrote level %s to %s", level.ID(), *outPath)
		}
		if *printLevel {
			printColored(level)
		}
		return
	}

	viewer, err := ui.NewViewer(build, *seed)
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	if err := viewer.Run(ctx); err != nil {
		log.Fatalf("Viewer error: %v", err)
	}
}

// printColored dumps the level to stdout with per-tile colors.
func printColored(level *world.Level) {
	styles := map[world.Tile]color.Style{
		world.TileWall:  {color.FgGray},
		world.TileFloor: {color.FgWhite},
		world.TileDoor:  {color.FgYellow, color.OpBold},
		world.TileStart: {color.FgGreen, color.OpBold},
		world.TileEnd:   {color.FgRed, color.OpBold},
	}
	for y := 0; y < level.Height(); y++ {
		for x := 0; x < level.Width(); x++ {
			tile := level.TileAt(y, x)
			if style, ok := styles[tile]; ok {
				fmt.Print(style.Sprint(string(tile.Rune())))
			} else {
				fmt.Print(string(tile.Rune()))
			}
		}
		fmt.Println()
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_ROOMCARVER_API_KEY")
	dataset := os.Getenv("HONEYCOMB_ROOMCARVER_DATASET")
	if dataset == "" {
		dataset = "roomcarver"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
