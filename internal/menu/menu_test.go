package menu

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazegen/internal/maze"
)

func plain(s string, vars ...interface{}) string {
	if len(vars) > 0 {
		return fmt.Sprintf(s, vars...)
	}
	return s
}

type fakeViewer struct {
	viewed []maze.Maze
	err    error
}

func (v *fakeViewer) View(_ context.Context, m maze.Maze) error {
	v.viewed = append(v.viewed, m)
	return v.err
}

func run(t *testing.T, gen *maze.Generator, input string, opts ...Option) string {
	t.Helper()
	var out bytes.Buffer
	base := []Option{WithColor(false), WithTranslator(plain)}
	m := New(gen, strings.NewReader(input), &out, append(base, opts...)...)
	require.NoError(t, m.Run(context.Background()))
	return out.String()
}

func newGenerator(out *bytes.Buffer, opts ...maze.Option) *maze.Generator {
	seed := int64(0)
	return maze.NewGenerator(append([]maze.Option{
		maze.WithOutput(out),
		maze.WithSeedSource(func() int64 { seed++; return seed }),
	}, opts...)...)
}

func TestMenuShowsChoices(t *testing.T) {
	var out bytes.Buffer
	got := run(t, newGenerator(&out), "6\n")

	assert.Contains(t, got, "Maze Generator\n    1. Set dimensions\n    2. Generate New Maze\n"+
		"    3. Display Maze\n    4. Save Maze\n    5. Load Maze\n    6. Exit\nChoose an option: ")
	assert.NotContains(t, got, "7. View Maze Full Screen")
	assert.Contains(t, got, "Exiting program.")
}

func TestMenuSetDimensions(t *testing.T) {
	var out bytes.Buffer
	gen := newGenerator(&out)

	run(t, gen, "1\n10\n8\n0\n6\n")

	w, h := gen.Dimensions()
	assert.Equal(t, 11, w)
	assert.Equal(t, 9, h)
	assert.True(t, gen.Current().IsEmpty())
	assert.Empty(t, out.String())
}

func TestMenuSetDimensionsAndGenerate(t *testing.T) {
	var out bytes.Buffer
	gen := newGenerator(&out)

	run(t, gen, "1\n5\n5\n1\n6\n")

	m := gen.Current()
	assert.Equal(t, 5, m.Width)
	assert.Equal(t, 5, m.Height)
	assert.Contains(t, out.String(), "Viewing 'Unnamed' maze!")
}

func TestMenuGenerateWithoutDimensions(t *testing.T) {
	var out bytes.Buffer
	got := run(t, newGenerator(&out), "2\n6\n")

	assert.Contains(t, got, "generating maze...")
	assert.Contains(t, out.String(), "Set the maze dimensions first!")
}

func TestMenuDisplayWithoutMaze(t *testing.T) {
	var out bytes.Buffer
	run(t, newGenerator(&out), "3\n6\n")

	assert.Contains(t, out.String(), "There is no loaded or pre-made maze.")
}

func TestMenuRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"letters", "abc\n6\n", "Numeric input only, letters and symbols not allowed!"},
		{"unknown number", "9\n6\n", "Invalid choice, try again."},
		{"view without viewer", "7\n6\n", "Invalid choice, try again."},
		{"bad width", "1\nwide\n6\n", "Numeric input only, letters and symbols not allowed!"},
		{"bad generate answer", "1\n5\n5\nmaybe\n6\n", "Numeric input only, letters and symbols not allowed!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := run(t, newGenerator(&out), tt.input)
			assert.Contains(t, got, tt.want)
			assert.Contains(t, got, "Exiting program.", "menu keeps running")
		})
	}
}

func TestMenuSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved maze.bin")

	var out bytes.Buffer
	src := newGenerator(&out, maze.WithDimensions(9, 7))
	run(t, src, "2\n4\n"+path+"\n6\n")
	assert.Contains(t, out.String(), "Maze saved to "+path+" successfully!")

	out.Reset()
	dst := newGenerator(&out)
	got := run(t, dst, "5\n"+path+"\n6\n")

	assert.NotContains(t, got, "Failed to load maze.")
	assert.Equal(t, src.Current(), dst.Current())
	w, h := dst.Dimensions()
	assert.Equal(t, 9, w)
	assert.Equal(t, 7, h)
}

func TestMenuLoadFailure(t *testing.T) {
	var out bytes.Buffer
	got := run(t, newGenerator(&out), "5\n"+filepath.Join(t.TempDir(), "nope.bin")+"\n6\n")

	assert.Contains(t, out.String(), "Error loading the maze! File may not exist.")
	assert.Contains(t, got, "Failed to load maze. Try again.")
}

func TestMenuView(t *testing.T) {
	var out bytes.Buffer
	gen := newGenerator(&out, maze.WithDimensions(5, 5))
	viewer := &fakeViewer{}

	got := run(t, gen, "2\n7\n6\n", WithViewer(viewer))

	assert.Contains(t, got, "7. View Maze Full Screen")
	require.Len(t, viewer.viewed, 1)
	assert.Equal(t, gen.Current(), viewer.viewed[0])
}

func TestMenuViewWithoutMaze(t *testing.T) {
	var out bytes.Buffer
	viewer := &fakeViewer{err: maze.ErrNoMaze}

	run(t, newGenerator(&out), "7\n6\n", WithViewer(viewer))

	assert.Contains(t, out.String(), "There is no loaded or pre-made maze.")
}

func TestMenuStopsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	got := run(t, newGenerator(&out), "1\n5\n")

	assert.NotContains(t, got, "Exiting program.")
}

func TestMenuStopsWhenCancelled(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"waiting for choice", ""},
		{"waiting for width", "1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr, pw := io.Pipe()
			t.Cleanup(func() { _ = pw.Close() })

			var out, genOut bytes.Buffer
			m := New(newGenerator(&genOut), pr, &out, WithColor(false), WithTranslator(plain))

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			errc := make(chan error, 1)
			go func() { errc <- m.Run(ctx) }()

			if tt.input != "" {
				_, err := io.WriteString(pw, tt.input)
				require.NoError(t, err)
			}
			cancel()

			select {
			case err := <-errc:
				assert.ErrorIs(t, err, context.Canceled)
			case <-time.After(2 * time.Second):
				t.Fatal("menu did not stop after cancel")
			}
		})
	}
}

func TestMenuClearScreen(t *testing.T) {
	var out bytes.Buffer
	got := run(t, newGenerator(&out), "6\n", WithClearScreen(true))

	assert.Equal(t, 2, strings.Count(got, clearSequence))
}

func TestChoiceString(t *testing.T) {
	assert.Equal(t, "Set dimensions", ChoiceSetDimensions.String())
	assert.Equal(t, "Exit", ChoiceExit.String())
	assert.Equal(t, "View Maze Full Screen", ChoiceView.String())
	assert.Equal(t, "unknown", Choice(42).String())
}
