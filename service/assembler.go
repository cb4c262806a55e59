package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-tiles/logger"
	"github.com/beka-birhanu/vinom-tiles/service/i"
	"github.com/beka-birhanu/vinom-tiles/telemetry"
	"github.com/beka-birhanu/vinom-tiles/tile"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Assembly errors.
var (
	ErrNilCompositor = errors.New("compositor is nil")
	ErrNilTile       = errors.New("tile is nil")
	ErrNilGroup      = errors.New("tile group is nil")
	ErrOutOfBounds   = errors.New("position is outside the maze")
	ErrDisconnected  = errors.New("tile does not connect to any neighbour")
)

// Placement is a tile and the clockwise quarter turns applied before it is
// placed.
type Placement struct {
	Tile      *tile.Tile
	Rotations int
}

// AssemblerConfig holds the dependencies of an Assembler.
type AssemblerConfig struct {
	Compositor i.Compositor // Maze receiving the tiles
	Logger     i.Logger     // Optional, discards when nil
	Tracer     trace.Tracer // Optional, noop when nil
	Strict     bool         // Reject tiles with neighbours but no walkable connection
}

// Assembler places tiles on a maze, validating bounds and connectivity
// before each insertion.
type Assembler struct {
	compositor i.Compositor
	logger     i.Logger
	tracer     trace.Tracer
	strict     bool
}

// NewAssembler creates an Assembler from the given configuration.
func NewAssembler(c *AssemblerConfig) (*Assembler, error) {
	if c == nil || c.Compositor == nil {
		return nil, ErrNilCompositor
	}

	a := &Assembler{
		compositor: c.Compositor,
		logger:     c.Logger,
		tracer:     c.Tracer,
		strict:     c.Strict,
	}

	if a.logger == nil {
		a.logger = logger.Discard()
	}
	if a.tracer == nil {
		a.tracer = telemetry.NoopTracer()
	}

	return a, nil
}

// Place rotates a copy of the placement's tile and adds it to the maze.
// In strict mode a tile that has placed neighbours must connect walkably to at
// least one of them.
func (a *Assembler) Place(ctx context.Context, p Placement) error {
	_, span := a.tracer.Start(ctx, "Assembler.Place")
	defer span.End()

	if p.Tile == nil {
		return a.fail(span, ErrNilTile)
	}

	t := p.Tile.Clone()
	t.RotateN(p.Rotations)
	span.SetAttributes(
		attribute.String("maze.id", a.compositor.GetID().String()),
		attribute.Int64("tile.x", int64(t.Position.X)),
		attribute.Int64("tile.y", int64(t.Position.Y)),
		attribute.Int("tile.rotations", p.Rotations),
	)

	if !a.compositor.Size().Contains(t.Position) {
		a.logger.Warning(fmt.Sprintf("tile at %s is outside the %dx%d maze", t.Position, a.compositor.Size().Width, a.compositor.Size().Height))
		return a.fail(span, fmt.Errorf("place tile at %s: %w", t.Position, ErrOutOfBounds))
	}

	neighbours, connected := a.connections(t)
	span.SetAttributes(
		attribute.Int("tile.neighbours", neighbours),
		attribute.StringSlice("tile.connections", directionNames(connected)),
	)

	if a.strict && neighbours > 0 && len(connected) == 0 {
		a.logger.Warning(fmt.Sprintf("tile at %s has %d neighbours but no walkable edge", t.Position, neighbours))
		return a.fail(span, fmt.Errorf("place tile at %s: %w", t.Position, ErrDisconnected))
	}

	if _, ok := a.compositor.TileAtPosition(t.Position); ok {
		a.logger.Info(fmt.Sprintf("replacing tile at %s", t.Position))
	}

	a.compositor.AddTile(t)
	a.logger.Info(fmt.Sprintf("placed tile at %s, connected: %v", t.Position, directionNames(connected)))
	return nil
}

// Stamp adds a tile group to the maze. The group's origin must lie inside the
// maze; fields past the border are dropped by the maze.
func (a *Assembler) Stamp(ctx context.Context, g *tile.Group) error {
	_, span := a.tracer.Start(ctx, "Assembler.Stamp")
	defer span.End()

	if g == nil {
		return a.fail(span, ErrNilGroup)
	}

	span.SetAttributes(
		attribute.String("maze.id", a.compositor.GetID().String()),
		attribute.Int64("group.x", int64(g.Origin.X)),
		attribute.Int64("group.y", int64(g.Origin.Y)),
		attribute.Int("group.fields", len(g.Fields)),
	)

	if !a.compositor.Size().Contains(g.Origin) {
		a.logger.Warning(fmt.Sprintf("group origin %s is outside the maze", g.Origin))
		return a.fail(span, fmt.Errorf("stamp group at %s: %w", g.Origin, ErrOutOfBounds))
	}

	a.compositor.AddTileGroup(g)
	a.logger.Info(fmt.Sprintf("stamped %dx%d group at %s", g.Size.Width, g.Size.Height, g.Origin))
	return nil
}

// Build places every placement in order and returns the composited path.
// It stops at the first failing placement or when ctx is done.
func (a *Assembler) Build(ctx context.Context, placements []Placement) ([]tile.Field, error) {
	ctx, span := a.tracer.Start(ctx, "Assembler.Build")
	defer span.End()

	span.SetAttributes(
		attribute.String("maze.id", a.compositor.GetID().String()),
		attribute.Int("placements", len(placements)),
	)

	for idx, p := range placements {
		if err := ctx.Err(); err != nil {
			return nil, a.fail(span, err)
		}
		if err := a.Place(ctx, p); err != nil {
			a.logger.Error(fmt.Sprintf("building maze %s: placement %d: %s", a.compositor.GetID(), idx, err))
			return nil, a.fail(span, fmt.Errorf("placement %d: %w", idx, err))
		}
	}

	return a.compositor.Path(), nil
}

// connections counts the placed same sized neighbours of t and returns the
// sides on which t connects to them.
func (a *Assembler) connections(t *tile.Tile) (int, []tile.Direction) {
	neighbours := 0
	var connected []tile.Direction
	for _, d := range tile.Directions() {
		pos, ok := t.NeighbourPosition(d)
		if !ok {
			continue
		}
		other, ok := a.compositor.TileAtPosition(pos)
		if !ok || t.NeighbourAt(other) != d {
			continue
		}
		neighbours++
		if t.HasWalkableNeighbour(other) {
			connected = append(connected, d)
		}
	}
	return neighbours, connected
}

func (a *Assembler) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func directionNames(dirs []tile.Direction) []string {
	names := make([]string, 0, len(dirs))
	for _, d := range dirs {
		names = append(names, d.String())
	}
	return names
}
