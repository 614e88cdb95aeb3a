package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/infinity/keypad"
	"github.com/katalvlaran/infinity/taxicab"
)

// runTaxicab prompts until the instructions parse, then prints both distances.
func runTaxicab(ctx context.Context, l *Launcher) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := l.prompt("Instructions in <dir><steps>[, <dir><steps>]* format, please: ")
		if err != nil {
			return err
		}
		instrs, err := taxicab.ParseInstructions(line)
		if err != nil {
			l.log.Debug("instructions rejected", "error", err)
			l.printf("%s\n", l.style.warn(taxicabRejection(err)))
			continue
		}
		return l.printTaxicab(instrs)
	}
}

func taxicabRejection(err error) string {
	var pe *taxicab.ParseError
	detail := ""
	if errors.As(err, &pe) && pe.Token != "" {
		detail = fmt.Sprintf(" (token %d: %q)", pe.Index+1, pe.Token)
	}
	switch {
	case errors.Is(err, taxicab.ErrBadTurn), errors.Is(err, taxicab.ErrEmptyInput):
		return "Invalid direction detected, please check your input!" + detail
	default:
		return "Invalid step format detected, please check your input!" + detail
	}
}

// SolveTaxicab parses input and prints both distances without prompting.
func (l *Launcher) SolveTaxicab(input string) error {
	instrs, err := taxicab.ParseInstructions(input)
	if err != nil {
		return err
	}
	return l.printTaxicab(instrs)
}

func (l *Launcher) printTaxicab(instrs []taxicab.Instruction) error {
	res, err := taxicab.Walk(instrs)
	if err != nil {
		return err
	}
	crossing := "none"
	if d, ok := res.CrossingDistance(); ok {
		crossing = strconv.Itoa(d)
	}
	l.log.Debug("taxicab solved", "instructions", len(instrs), "steps", res.Steps, "final", res.Final, "crossing", crossing)
	l.printf("Taxicab distance to final destination is %s.\n", l.style.answer(strconv.Itoa(res.Distance())))
	l.printf("Taxicab distance to first path crossing is %s.\n", l.style.answer(crossing))
	return nil
}

// runKeypad collects move lines up to an empty line and prints one code per layout.
// Any invalid line discards the whole entry and prompts again.
func runKeypad(ctx context.Context, l *Launcher) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		l.printf("Instructions, one line of U, D, L, R per key, empty line to finish:\n")
		var raw []string
		for {
			line, err := l.prompt("")
			if errors.Is(err, io.EOF) && len(raw) > 0 {
				break
			}
			if err != nil {
				return err
			}
			line = strings.TrimSpace(line)
			if line == "" {
				break
			}
			raw = append(raw, line)
		}
		if len(raw) == 0 {
			l.printf("%s\n", l.style.warn("No instructions given, please check your input!"))
			continue
		}
		if bad := firstInvalidLine(raw); bad >= 0 {
			l.log.Debug("instructions rejected", "line", bad+1, "text", raw[bad])
			l.printf("%s\n", l.style.warn(fmt.Sprintf("Invalid direction detected in line %d, please check your input!", bad+1)))
			continue
		}
		lines := make([][]keypad.Move, 0, len(raw))
		for _, r := range raw {
			moves, err := keypad.ParseMoves(r)
			if err != nil {
				return err
			}
			lines = append(lines, moves)
		}
		return l.printCodes(lines, l.layouts.Layouts())
	}
}

func firstInvalidLine(lines []string) int {
	for i, line := range lines {
		if !keypad.ValidLine(line) {
			return i
		}
	}
	return -1
}

// ErrNoInstructions indicates keypad input without a single move line.
var ErrNoInstructions = errors.New("cli: no keypad instructions given")

// SolveKeypad parses text (one line per key, up to the first empty line) and
// prints a code for each named layout, or every layout when names is empty.
// Returns ErrNoInstructions when text holds no move line before that.
func (l *Launcher) SolveKeypad(text string, names []string) error {
	layouts := l.layouts.Layouts()
	if len(names) > 0 {
		layouts = make([]*keypad.Layout, 0, len(names))
		for _, n := range names {
			lay, err := l.layouts.Lookup(n)
			if err != nil {
				return err
			}
			layouts = append(layouts, lay)
		}
	}
	lines, err := keypad.ParseLines(text)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return ErrNoInstructions
	}
	return l.printCodes(lines, layouts)
}

func (l *Launcher) printCodes(lines [][]keypad.Move, layouts []*keypad.Layout) error {
	for _, lay := range layouts {
		code, err := keypad.Code(lay, lines)
		if err != nil {
			return err
		}
		l.log.Debug("keypad solved", "layout", lay.Name(), "lines", len(lines), "code", code)
		l.printf("Bathroom code on the %s keypad is %s.\n", lay.Name(), l.style.answer(code))
	}
	return nil
}

// PrintLayouts writes every configured layout.
func (l *Launcher) PrintLayouts() {
	for i, lay := range l.layouts.Layouts() {
		if i > 0 {
			l.printf("\n")
		}
		label, _ := lay.Label(lay.Origin())
		l.printf("%s (%d keys, starts on %s):\n%s\n", l.style.answer(lay.Name()), lay.Keys(), label, lay.String())
	}
}
