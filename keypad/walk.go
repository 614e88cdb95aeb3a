package keypad

import (
	"fmt"
	"regexp"
	"strings"
)

var validLine = regexp.MustCompile(`^[UDLR]+$`)

// ValidLine reports whether line is a non-empty string over {U,D,L,R}.
func ValidLine(line string) bool {
	return validLine.MatchString(line)
}

// ParseMoves converts a line over {U,D,L,R} into Moves.
// Any other symbol yields *InvalidMoveError with Index counted in runes.
func ParseMoves(line string) ([]Move, error) {
	moves := make([]Move, 0, len(line))
	col := 0
	for _, r := range line {
		var m Move
		switch r {
		case 'U':
			m = Up
		case 'D':
			m = Down
		case 'L':
			m = Left
		case 'R':
			m = Right
		default:
			return nil, &InvalidMoveError{Symbol: string(r), Index: col}
		}
		moves = append(moves, m)
		col++
	}
	return moves, nil
}

// ParseLines splits text into lines, stopping at the first empty line, and
// parses each with ParseMoves. Trailing carriage returns are dropped.
func ParseLines(text string) ([][]Move, error) {
	var out [][]Move
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			break
		}
		moves, err := ParseMoves(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		out = append(out, moves)
	}
	return out, nil
}

// Step returns the cell adjacent to p in direction m if it is Valid,
// and p itself otherwise. Only a Move outside the enum is an error.
// Complexity: O(1).
func (l *Layout) Step(p Position, m Move) (Position, error) {
	dr, dc, ok := m.Delta()
	if !ok {
		return p, &InvalidMoveError{Symbol: m.String(), Index: -1}
	}
	next := Position{Row: p.Row + dr, Col: p.Col + dc}
	if !l.Valid(next) {
		return p, nil
	}
	return next, nil
}

// Walk applies each line of moves in turn, starting from origin and then
// from wherever the previous line ended, and returns the label reached
// after every line.
// Returns ErrEmptyLayout for a nil layout, ErrOriginInvalid if origin is
// not a key and *InvalidMoveError for a Move outside the enum; the walk
// stops at the first error.
// Complexity: O(M) time, M = total moves.
func Walk(l *Layout, origin Position, lines [][]Move) ([]string, error) {
	if l == nil {
		return nil, fmt.Errorf("Walk: nil layout: %w", ErrEmptyLayout)
	}
	if !l.Valid(origin) {
		return nil, fmt.Errorf("Walk(%q): origin %v: %w", l.name, origin, ErrOriginInvalid)
	}
	pos := origin
	labels := make([]string, 0, len(lines))
	for i, line := range lines {
		for _, m := range line {
			var err error
			if pos, err = l.Step(pos, m); err != nil {
				return nil, fmt.Errorf("Walk(%q): line %d: %w", l.name, i+1, err)
			}
		}
		labels = append(labels, l.rows[pos.Row][pos.Col])
	}
	return labels, nil
}

// Code walks lines from the layout origin and concatenates the labels.
// Layouts are read-only, so one layout may serve concurrent calls.
func Code(l *Layout, lines [][]Move) (string, error) {
	if l == nil {
		return "", fmt.Errorf("Code: nil layout: %w", ErrEmptyLayout)
	}
	labels, err := Walk(l, l.origin, lines)
	if err != nil {
		return "", err
	}
	return strings.Join(labels, ""), nil
}
