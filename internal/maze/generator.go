package maze

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/mazegen/internal/telemetry"
)

// SeedSource returns the seed used for the next generation.
type SeedSource func() int64

// TimeSeed seeds from the wall clock.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}

// SeedSequence returns a reproducible source: the same seed yields the same
// series of mazes, while each generation still gets a different seed.
func SeedSequence(seed int64) SeedSource {
	r := rand.New(rand.NewSource(seed))
	return r.Int63
}

// Generator owns the current maze and the dimensions of the next one.
type Generator struct {
	current Maze
	width   int
	height  int
	rng     *rand.Rand
	seeds   SeedSource
	out     io.Writer
	log     logr.Logger
	tracer  trace.Tracer
}

// Option configures a Generator.
type Option func(*Generator)

// WithOutput sets where user-facing reports and renders are written.
func WithOutput(w io.Writer) Option {
	return func(g *Generator) { g.out = w }
}

// WithLogger sets the generator's logger.
func WithLogger(l logr.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// WithSeedSource replaces the per-generation seed source.
func WithSeedSource(s SeedSource) Option {
	return func(g *Generator) { g.seeds = s }
}

// WithTracer sets the tracer used for generate, save and load spans.
func WithTracer(t trace.Tracer) Option {
	return func(g *Generator) { g.tracer = t }
}

// WithDimensions sets the initial size the same way SetDimensions does,
// without generating.
func WithDimensions(width, height int) Option {
	return func(g *Generator) { g.width, g.height = oddUp(width), oddUp(height) }
}

// NewGenerator creates a generator with no maze. Without WithDimensions its
// dimensions are zero and Generate reports that they must be set first.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		current: New(),
		seeds:   TimeSeed,
		out:     io.Discard,
		log:     logr.Discard(),
		tracer:  telemetry.NoopTracer(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.rng = rand.New(rand.NewSource(g.seeds()))
	return g
}

// Dimensions returns the size the next Generate call will produce.
func (g *Generator) Dimensions() (width, height int) {
	return g.width, g.height
}

// Current returns a copy of the current maze.
func (g *Generator) Current() Maze {
	return g.current.Clone()
}

// SetDimensions records the size of the next maze, bumping even values to
// the next odd one. If generate is true a new maze is produced immediately.
func (g *Generator) SetDimensions(ctx context.Context, width, height int, generate bool) error {
	g.width, g.height = oddUp(width), oddUp(height)
	g.log.V(1).Info("dimensions set", "width", g.width, "height", g.height, "generate", generate)

	if generate {
		return g.Generate(ctx)
	}
	return nil
}

// Generate replaces the current maze with a freshly carved one and displays it.
// Non-positive dimensions leave the current maze untouched.
func (g *Generator) Generate(ctx context.Context) error {
	_, span := g.tracer.Start(ctx, "maze.generate")
	defer span.End()

	span.SetAttributes(
		attribute.Int("maze.width", g.width),
		attribute.Int("maze.height", g.height),
	)

	if g.width <= 0 || g.height <= 0 {
		g.report("Set the maze dimensions first!\n")
		g.log.V(1).Info("generate skipped", "width", g.width, "height", g.height)
		span.SetStatus(codes.Error, ErrDimensionsNotSet.Error())
		return ErrDimensionsNotSet
	}

	startTime := time.Now()

	m := filled(g.width, g.height)
	seed := g.seeds()
	g.rng.Seed(seed)

	// (1,1) only exists inside the border once both sides are at least 3.
	if g.width >= 3 && g.height >= 3 {
		carve(&m, 1, 1, g.rng)
	}
	openEntranceAndExit(&m, g.rng)

	g.current = m

	span.SetAttributes(
		attribute.Int64("maze.seed", seed),
		attribute.Int64("maze.generation_us", time.Since(startTime).Microseconds()),
	)
	g.log.V(1).Info("maze generated", "width", m.Width, "height", m.Height, "seed", seed)

	return g.Display()
}

// Render returns the text form of the current maze: a header naming it
// followed by one line per row.
func (g *Generator) Render() (string, error) {
	if g.current.IsEmpty() {
		return "", ErrNoMaze
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Viewing '%s' maze!\n\n", g.current.Name)
	b.WriteString(g.current.String())
	return b.String(), nil
}

// Display writes the current maze to the output, or an explanation if there
// is none.
func (g *Generator) Display() error {
	text, err := g.Render()
	if errors.Is(err, ErrNoMaze) {
		g.report("There is no loaded or pre-made maze.\nPlease load or select \"Generate New Maze\"\n")
		return err
	}
	g.report(text)
	return nil
}

func (g *Generator) report(msg string, args ...any) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	_, _ = io.WriteString(g.out, msg)
}

// oddUp bumps even values to the next odd one.
func oddUp(n int) int {
	if n%2 == 0 {
		return n + 1
	}
	return n
}
