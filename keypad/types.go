package keypad

import "fmt"

// Placeholder marks an absent cell. It aligns rows but is never a stopping position.
const Placeholder = ""

// Move is a unit step across the keypad.
type Move int

const (
	// Up decrements the row.
	Up Move = iota + 1
	// Down increments the row.
	Down
	// Left decrements the column.
	Left
	// Right increments the column.
	Right
)

// moveDeltas maps each Move to its (row, col) offset.
var moveDeltas = map[Move][2]int{
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

// Delta returns the (row, col) offset of m and false for values outside the enum.
func (m Move) Delta() (dRow, dCol int, ok bool) {
	d, ok := moveDeltas[m]
	return d[0], d[1], ok
}

func (m Move) String() string {
	switch m {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// Position addresses a cell by row and column, both zero-based.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Layout is an immutable keypad of labeled and placeholder cells.
// Rows may differ in length. The origin is always a present cell.
type Layout struct {
	name   string
	rows   [][]string
	origin Position
	keys   int
}
