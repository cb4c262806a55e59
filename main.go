package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-tiles/config"
	"github.com/beka-birhanu/vinom-tiles/layout"
	"github.com/beka-birhanu/vinom-tiles/logger"
	"github.com/beka-birhanu/vinom-tiles/maze"
	"github.com/beka-birhanu/vinom-tiles/service"
	"github.com/beka-birhanu/vinom-tiles/service/i"
	"github.com/beka-birhanu/vinom-tiles/telemetry"
	"github.com/beka-birhanu/vinom-tiles/tile"
	"go.opentelemetry.io/otel/trace"
)

// Global variables for dependencies
var (
	appLogger         i.Logger
	tracer            trace.Tracer
	shutdownTelemetry func(context.Context) error
	tileMaze          *maze.Maze
	assembler         *service.Assembler
)

// mustLogger creates a component logger writing to stdout, exiting on failure.
func mustLogger(prefix, color string) i.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating %s logger: %v", prefix, err))
		os.Exit(1)
	}
	return l
}

func initTelemetry(ctx context.Context) {
	tracer = telemetry.NoopTracer()
	if !config.Envs.OTELEnabled {
		return
	}

	telemetryLogger := mustLogger("TELEMETRY", config.ColorBlue)

	var err error
	shutdownTelemetry, err = telemetry.Setup(ctx)
	if err != nil {
		telemetryLogger.Warning(fmt.Sprintf("Setup failed, tracing disabled: %v", err))
		return
	}
	tracer = telemetry.Tracer("assembler")
	telemetryLogger.Info("Tracing initialized")
}

func initMaze() {
	mazeLogger := mustLogger("MAZE", config.ColorPurple)

	tileMaze = maze.New(config.Envs.MazeWidth, config.Envs.MazeHeight, maze.WithTileSize(config.Envs.MazeTileSize))
	if !tileMaze.Size().Contains(tile.NewPosition(0, 0)) {
		mazeLogger.Error("Maze must be at least one cell wide and high")
		os.Exit(1)
	}
	mazeLogger.Info(fmt.Sprintf("Maze %s initialized (%dx%d)", tileMaze.ID, config.Envs.MazeWidth, config.Envs.MazeHeight))
}

func initAssembler() {
	assemblerLogger := mustLogger("ASSEMBLER", config.ColorCyan)

	var err error
	assembler, err = service.NewAssembler(&service.AssemblerConfig{
		Compositor: tileMaze,
		Logger:     assemblerLogger,
		Tracer:     tracer,
		Strict:     config.Envs.AssemblyStrict,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating assembler: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Assembler initialized")
}

// serpentine lays a single winding corridor of 3x3 tiles: left to right on
// even tile rows, right to left on odd ones, turning down at the row's end.
func serpentine(size tile.Size) []service.Placement {
	extent := tile.NewPath().Size.Width
	cols, rows := size.Width/extent, size.Height/extent

	var placements []service.Placement
	for row := uint32(0); row < rows; row++ {
		forward := row%2 == 0
		for step := uint32(0); step < cols; step++ {
			col := step
			if !forward {
				col = cols - 1 - step
			}

			entering := step == 0 && row > 0
			leaving := step == cols-1 && row < rows-1

			var p service.Placement
			switch {
			case cols == 1:
				p = service.Placement{Tile: tile.NewPath()}
			case leaving && forward:
				p = service.Placement{Tile: tile.NewCorner()}
			case leaving:
				p = service.Placement{Tile: tile.NewCorner(), Rotations: 3}
			case entering && forward:
				p = service.Placement{Tile: tile.NewCorner(), Rotations: 2}
			case entering:
				p = service.Placement{Tile: tile.NewCorner(), Rotations: 1}
			default:
				p = service.Placement{Tile: tile.NewPath(), Rotations: 1}
			}

			p.Tile.Position = tile.NewPosition(col*extent, row*extent)
			placements = append(placements, p)
		}
	}
	return placements
}

// wilson lays a random perfect maze with one 3x3 tile per slot.
func wilson(size tile.Size, seed int64) ([]service.Placement, error) {
	extent := tile.NewPath().Size.Width
	w, err := layout.NewWilson(int(size.Width/extent), int(size.Height/extent), rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	tiles := w.Tiles()
	placements := make([]service.Placement, 0, len(tiles))
	for _, t := range tiles {
		placements = append(placements, service.Placement{Tile: t})
	}
	return placements, nil
}

// placements picks the tile layout named by the configuration.
func placements(size tile.Size) ([]service.Placement, error) {
	switch config.Envs.MazeLayout {
	case "serpentine":
		return serpentine(size), nil
	case "wilson":
		seed := config.Envs.MazeSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		mustLogger("LAYOUT", config.ColorMagenta).Info(fmt.Sprintf("Wilson layout seed %d", seed))
		return wilson(size, seed)
	default:
		return nil, fmt.Errorf("unknown maze layout %q", config.Envs.MazeLayout)
	}
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initTelemetry(ctx)
	defer func() {
		if shutdownTelemetry != nil {
			_ = shutdownTelemetry(ctx)
		}
	}()

	initMaze()
	initAssembler()

	layoutPlacements, err := placements(tileMaze.Size())
	if err != nil {
		appLogger.Error(fmt.Sprintf("Laying out maze: %v", err))
		os.Exit(1)
	}

	if _, err := assembler.Build(ctx, layoutPlacements); err != nil {
		appLogger.Error(fmt.Sprintf("Building maze: %v", err))
		os.Exit(1)
	}

	fmt.Print(tileMaze.String())
}
