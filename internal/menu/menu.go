// Package menu provides the interactive text menu that drives a maze generator.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"github.com/samdwyer/mazegen/internal/maze"
)

const clearSequence = "\033[H\033[2J"

var (
	titleStyle = color.Style{color.FgCyan, color.OpBold}
	errorStyle = color.Style{color.FgRed, color.OpBold}
	byeStyle   = color.Style{color.FgGreen}
)

// Generator is the maze core the menu drives.
type Generator interface {
	SetDimensions(ctx context.Context, width, height int, generate bool) error
	Generate(ctx context.Context) error
	Display() error
	Save(ctx context.Context, filename string) error
	Load(ctx context.Context, filename string) error
	Current() maze.Maze
}

// Viewer shows a maze full screen.
type Viewer interface {
	View(ctx context.Context, m maze.Maze) error
}

// line is one input line, or the error that ended the input.
type line struct {
	text string
	err  error
}

// Menu reads numbered commands from its input and runs them against a generator.
type Menu struct {
	gen     Generator
	in      io.Reader
	lines   <-chan line
	out     io.Writer
	viewer  Viewer
	log     logr.Logger
	clear   bool
	color   bool
	tr      func(string, ...interface{}) string
	running bool
}

// Option configures a Menu.
type Option func(*Menu)

// WithViewer enables the full screen view choice.
func WithViewer(v Viewer) Option {
	return func(m *Menu) { m.viewer = v }
}

// WithClearScreen clears the terminal before each command's output.
func WithClearScreen(clear bool) Option {
	return func(m *Menu) { m.clear = clear }
}

// WithColor toggles colored output.
func WithColor(enabled bool) Option {
	return func(m *Menu) { m.color = enabled }
}

// WithLogger sets the menu's logger.
func WithLogger(l logr.Logger) Option {
	return func(m *Menu) { m.log = l }
}

// WithTranslator replaces the lookup used for menu strings.
func WithTranslator(tr func(string, ...interface{}) string) Option {
	return func(m *Menu) { m.tr = tr }
}

// New creates a menu reading from in and writing to out.
func New(gen Generator, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		gen:   gen,
		in:    in,
		out:   out,
		log:   logr.Discard(),
		color: true,
		tr:    gotext.Get,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the menu and executes choices until Exit is chosen, the input
// ends, or ctx is cancelled. Cancellation is noticed while waiting for input.
func (m *Menu) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	m.lines = m.scan(done)

	m.running = true
	m.clearScreen()

	for m.running {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.showMenu()

		choice, ok, err := m.readInt(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		m.clearScreen()

		if err := m.dispatch(ctx, Choice(choice)); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
	return nil
}

// dispatch runs one choice. Only input errors are returned; generator
// failures have already been reported to the user.
func (m *Menu) dispatch(ctx context.Context, c Choice) error {
	m.log.V(1).Info("menu choice", "choice", c.String())

	switch c {
	case ChoiceSetDimensions:
		return m.setDimensions(ctx)

	case ChoiceGenerate:
		m.print(m.tr("generating maze...") + "\n\n")
		_ = m.gen.Generate(ctx)

	case ChoiceDisplay:
		_ = m.gen.Display()

	case ChoiceSave:
		filename, err := m.prompt(ctx, m.tr("Enter filename to save: "))
		if err != nil {
			return err
		}
		_ = m.gen.Save(ctx, filename)

	case ChoiceLoad:
		filename, err := m.prompt(ctx, m.tr("Enter filename to load: "))
		if err != nil {
			return err
		}
		if m.gen.Load(ctx, filename) != nil {
			m.print(m.paint(errorStyle, m.tr("Failed to load maze. Try again.")) + "\n")
		}

	case ChoiceExit:
		m.print(m.paint(byeStyle, m.tr("Exiting program.")) + "\n")
		m.running = false

	case ChoiceView:
		if m.viewer == nil {
			m.invalidChoice()
			return nil
		}
		m.view(ctx)

	default:
		m.invalidChoice()
	}
	return nil
}

func (m *Menu) setDimensions(ctx context.Context) error {
	width, ok, err := m.promptInt(ctx, m.tr("Enter maze width (odd number only): "))
	if err != nil || !ok {
		return err
	}
	height, ok, err := m.promptInt(ctx, m.tr("Enter maze height (odd number only): "))
	if err != nil || !ok {
		return err
	}

	answer, err := m.prompt(ctx, m.tr("Would you like to generate (1(Yes) or 0(No))? "))
	if err != nil {
		return err
	}
	generate, perr := strconv.ParseBool(strings.TrimSpace(answer))
	if perr != nil {
		m.numericOnly()
		return nil
	}

	_ = m.gen.SetDimensions(ctx, width, height, generate)
	return nil
}

func (m *Menu) view(ctx context.Context) {
	err := m.viewer.View(ctx, m.gen.Current())
	switch {
	case err == nil:
	case errors.Is(err, maze.ErrNoMaze):
		_ = m.gen.Display()
	default:
		m.log.Error(err, "full screen view failed")
		m.print(m.paint(errorStyle, m.tr("Unable to open the full screen view: %v", err)) + "\n")
	}
}

func (m *Menu) showMenu() {
	var b strings.Builder
	b.WriteString("\n" + m.paint(titleStyle, m.tr("Maze Generator")) + "\n")
	last := ChoiceExit
	if m.viewer != nil {
		last = ChoiceView
	}
	for c := ChoiceSetDimensions; c <= last; c++ {
		fmt.Fprintf(&b, "    %d. %s\n", c, m.tr(c.String()))
	}
	b.WriteString(m.tr("Choose an option: "))
	m.print(b.String())
}

// prompt prints text and returns the next whole input line.
func (m *Menu) prompt(ctx context.Context, text string) (string, error) {
	m.print(text)
	return m.readLine(ctx)
}

func (m *Menu) promptInt(ctx context.Context, text string) (int, bool, error) {
	m.print(text)
	return m.readInt(ctx)
}

// readInt reads a line as an integer. ok is false, and the user has been
// told, when the line is not a number.
func (m *Menu) readInt(ctx context.Context) (n int, ok bool, err error) {
	text, err := m.readLine(ctx)
	if err != nil {
		return 0, false, err
	}
	n, err = strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		m.numericOnly()
		return 0, false, nil
	}
	return n, true, nil
}

// readLine waits for the next input line or for ctx to end.
func (m *Menu) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-m.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// scan feeds input lines to the returned channel until the input ends or done
// is closed. A read already blocked on the input outlives done.
func (m *Menu) scan(done <-chan struct{}) <-chan line {
	lines := make(chan line)
	go func() {
		defer close(lines)
		s := bufio.NewScanner(m.in)
		for s.Scan() {
			select {
			case lines <- line{text: strings.TrimRight(s.Text(), "\r")}:
			case <-done:
				return
			}
		}
		err := s.Err()
		if err == nil {
			err = io.EOF
		}
		select {
		case lines <- line{err: err}:
		case <-done:
		}
	}()
	return lines
}

func (m *Menu) numericOnly() {
	m.print(m.paint(errorStyle, m.tr("Numeric input only, letters and symbols not allowed!")) + "\n")
}

func (m *Menu) invalidChoice() {
	m.print(m.paint(errorStyle, m.tr("Invalid choice, try again.")) + "\n")
}

func (m *Menu) clearScreen() {
	if m.clear {
		m.print(clearSequence)
	}
}

func (m *Menu) paint(style color.Style, s string) string {
	if !m.color {
		return s
	}
	return style.Sprint(s)
}

func (m *Menu) print(s string) {
	_, _ = io.WriteString(m.out, s)
}
