// Package cli hosts the interactive launcher: it prompts for a puzzle,
// collects and validates its instructions, dispatches to the solver and
// prints the answers.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/infinity/internal/logging"
	"github.com/katalvlaran/infinity/keypad"
)

// Puzzle is one selectable solution.
type Puzzle struct {
	Day   int
	Title string
	Run   func(ctx context.Context, l *Launcher) error
}

// Launcher prompts for a puzzle on its input and writes prompts and answers
// to its output. Build one with NewLauncher; WithInput, WithOutput,
// WithLogger, WithLayouts and WithColor replace the defaults.
type Launcher struct {
	in      *bufio.Reader
	out     io.Writer
	log     *slog.Logger
	layouts *keypad.Registry
	style   *styler
	puzzles map[int]Puzzle
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithInput sets the prompt source (default os.Stdin).
func WithInput(r io.Reader) Option {
	return func(l *Launcher) {
		l.in = bufio.NewReader(r)
	}
}

// WithOutput sets the answer sink (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(l *Launcher) {
		l.out = w
	}
}

// WithLogger sets the logger (default no-op).
func WithLogger(log *slog.Logger) Option {
	return func(l *Launcher) {
		if log != nil {
			l.log = log
		}
	}
}

// WithLayouts sets the keypads used by puzzle 2 (default keypad.DefaultRegistry()).
func WithLayouts(r *keypad.Registry) Option {
	return func(l *Launcher) {
		if r != nil {
			l.layouts = r
		}
	}
}

// WithColor toggles ANSI styling of answers.
func WithColor(on bool) Option {
	return func(l *Launcher) {
		l.style = newStyler(l.out, on)
	}
}

// NewLauncher builds a Launcher with both puzzles registered.
// Options are applied in order; WithColor must follow WithOutput.
func NewLauncher(opts ...Option) *Launcher {
	l := &Launcher{
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		log:     logging.NewNop(),
		layouts: keypad.DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.style == nil {
		l.style = newStyler(l.out, false)
	}
	l.puzzles = map[int]Puzzle{
		1: {Day: 1, Title: "No Time for a Taxicab", Run: runTaxicab},
		2: {Day: 2, Title: "Bathroom Security", Run: runKeypad},
	}
	return l
}

// Available returns the selectable puzzle numbers in ascending order.
func (l *Launcher) Available() []int {
	days := make([]int, 0, len(l.puzzles))
	for d := range l.puzzles {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Run is the selection loop. It returns nil on end of input or when ctx is done.
func (l *Launcher) Run(ctx context.Context) error {
	l.printf("Welcome to infinity! Try an available solution to AoC 2016 puzzles in %v or enter EOF to quit!\n", l.Available())
	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := l.prompt("Please select a puzzle: ")
		if errors.Is(err, io.EOF) {
			l.printf("\nThanks for playing, happy holidays!\n")
			return nil
		}
		if err != nil {
			return err
		}
		day, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			l.printf("Please input an integer!\n")
			continue
		}
		p, ok := l.puzzles[day]
		if !ok {
			l.printf("That puzzle's solution is not available! Try one of %v\n", l.Available())
			continue
		}
		l.log.Info("puzzle selected", "day", p.Day, "title", p.Title)
		err = p.Run(ctx, l)
		if errors.Is(err, io.EOF) {
			l.printf("\nThanks for playing, happy holidays!\n")
			return nil
		}
		if err != nil {
			l.log.Error("puzzle failed", "day", p.Day, "error", err)
			l.printf("Error: %v\n", err)
		}
	}
}

// prompt prints msg and returns the next line without its terminator.
// A final unterminated line is returned before io.EOF.
func (l *Launcher) prompt(msg string) (string, error) {
	if msg != "" {
		l.printf("%s", msg)
	}
	line, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (l *Launcher) printf(format string, args ...any) {
	fmt.Fprintf(l.out, format, args...)
}
