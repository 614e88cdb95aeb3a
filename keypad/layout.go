package keypad

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NewLayout builds a Layout from jagged rows of labels, deep-copying the
// input so later changes to rows do not leak in.
// Returns ErrEmptyLayout if no cell holds a label and ErrOriginInvalid if
// origin is not one of the labeled cells.
// Complexity: O(cells) time and memory.
func NewLayout(name string, rows [][]string, origin Position) (*Layout, error) {
	cells := make([][]string, len(rows))
	keys := 0
	for r, row := range rows {
		cells[r] = make([]string, len(row))
		copy(cells[r], row)
		for _, label := range row {
			if label != Placeholder {
				keys++
			}
		}
	}
	if keys == 0 {
		return nil, fmt.Errorf("NewLayout(%q): %w", name, ErrEmptyLayout)
	}
	l := &Layout{name: name, rows: cells, keys: keys}
	if !l.Valid(origin) {
		return nil, fmt.Errorf("NewLayout(%q): origin %v: %w", name, origin, ErrOriginInvalid)
	}
	l.origin = origin

	return l, nil
}

// MustLayout is NewLayout for static layout tables; it panics on error.
func MustLayout(name string, rows [][]string, origin Position) *Layout {
	l, err := NewLayout(name, rows, origin)
	if err != nil {
		panic(err)
	}
	return l
}

// Name returns the layout name.
func (l *Layout) Name() string { return l.name }

// Origin returns the starting cell.
func (l *Layout) Origin() Position { return l.origin }

// Keys returns the number of labeled cells.
func (l *Layout) Keys() int { return l.keys }

// Rows returns a copy of the cell labels.
func (l *Layout) Rows() [][]string {
	out := make([][]string, len(l.rows))
	for r, row := range l.rows {
		out[r] = append([]string(nil), row...)
	}
	return out
}

// Valid reports whether p is a stopping position: the row is in range,
// the column is in range of that particular row, and the cell is not a
// placeholder. Out-of-range and placeholder cells are rejected alike.
// Complexity: O(1).
func (l *Layout) Valid(p Position) bool {
	if p.Row < 0 || p.Row >= len(l.rows) {
		return false
	}
	row := l.rows[p.Row]
	if p.Col < 0 || p.Col >= len(row) {
		return false
	}
	return row[p.Col] != Placeholder
}

// Label returns the label at p, and false if p is not Valid.
func (l *Layout) Label(p Position) (string, bool) {
	if !l.Valid(p) {
		return "", false
	}
	return l.rows[p.Row][p.Col], true
}

// Find returns the position of the first cell labeled label.
func (l *Layout) Find(label string) (Position, bool) {
	if label == Placeholder {
		return Position{}, false
	}
	for r, row := range l.rows {
		for c, v := range row {
			if v == label {
				return Position{Row: r, Col: c}, true
			}
		}
	}
	return Position{}, false
}

// String renders the layout as an aligned grid, placeholders as blanks.
func (l *Layout) String() string {
	width := 1
	for _, row := range l.rows {
		for _, v := range row {
			if n := utf8.RuneCountInString(v); n > width {
				width = n
			}
		}
	}
	var b strings.Builder
	for r, row := range l.rows {
		line := make([]string, len(row))
		for c, v := range row {
			line[c] = fmt.Sprintf("%-*s", width, v)
		}
		b.WriteString(strings.TrimRight(strings.Join(line, " "), " "))
		if r < len(l.rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
