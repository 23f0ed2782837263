package maze

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// SaveTo names the current maze and writes it to w. The name only sticks if
// the write succeeds.
func (g *Generator) SaveTo(ctx context.Context, w io.Writer, name string) error {
	_, span := g.tracer.Start(ctx, "maze.save")
	defer span.End()
	span.SetAttributes(attribute.String("maze.name", name))

	m := g.current
	m.Name = name
	if err := Encode(w, m); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "encode failed")
		return err
	}

	g.current.Name = name
	return nil
}

// Save writes the current maze to filename, which also becomes its name.
// The record is written to a temporary file in the same directory and
// renamed into place, so a failed save never leaves a partial file.
func (g *Generator) Save(ctx context.Context, filename string) error {
	if err := g.saveFile(ctx, filename); err != nil {
		g.report("Error saving the maze!\n")
		g.log.V(1).Info("save failed", "file", filename, "error", err.Error())
		return err
	}

	g.report("Maze saved to %s successfully!\n", filename)
	g.log.V(1).Info("maze saved", "file", filename)
	return nil
}

func (g *Generator) saveFile(ctx context.Context, filename string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return fmt.Errorf("open %s: %w", filename, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	// Keep the current name until the rename succeeds.
	previous := g.current.Name
	if err = g.SaveTo(ctx, tmp, filename); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	if err = tmp.Chmod(saveMode(filename)); err != nil {
		g.current.Name = previous
		return fmt.Errorf("chmod %s: %w", filename, err)
	}
	if err = tmp.Close(); err != nil {
		g.current.Name = previous
		return fmt.Errorf("close %s: %w", filename, err)
	}
	if err = os.Rename(tmp.Name(), filename); err != nil {
		g.current.Name = previous
		return fmt.Errorf("rename %s: %w", filename, err)
	}
	return nil
}

// saveMode keeps the permissions of a file being overwritten; new files get 0644.
func saveMode(filename string) os.FileMode {
	if fi, err := os.Stat(filename); err == nil {
		return fi.Mode().Perm()
	}
	return 0o644
}

// LoadFrom replaces the current maze with the record read from r and makes
// its dimensions the generator's working size. source is only used for
// tracing and logs.
func (g *Generator) LoadFrom(ctx context.Context, r io.Reader, source string) error {
	_, span := g.tracer.Start(ctx, "maze.load")
	defer span.End()
	span.SetAttributes(attribute.String("maze.source", source))

	m, err := Decode(r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return err
	}

	g.current = m
	g.width, g.height = m.Width, m.Height

	span.SetAttributes(
		attribute.String("maze.name", m.Name),
		attribute.Int("maze.width", m.Width),
		attribute.Int("maze.height", m.Height),
	)
	return nil
}

// Load reads the maze stored in filename. On failure the current maze and
// working dimensions are left as they were.
func (g *Generator) Load(ctx context.Context, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		g.report("Error loading the maze! File may not exist.\n")
		g.log.V(1).Info("load failed", "file", filename, "error", err.Error())
		return fmt.Errorf("open %s: %w", filename, err)
	}
	defer f.Close()

	if err := g.LoadFrom(ctx, f, filename); err != nil {
		g.report("Error loading the maze! File is incomplete or corrupt.\n")
		g.log.V(1).Info("load failed", "file", filename, "error", err.Error())
		return fmt.Errorf("read %s: %w", filename, err)
	}

	g.report("Maze '%s' loaded from %s successfully!\n", g.current.Name, filename)
	g.log.V(1).Info("maze loaded", "file", filename, "name", g.current.Name,
		"width", g.current.Width, "height", g.current.Height)
	return nil
}
