package keypad

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyLayout indicates a layout without a single present cell.
	ErrEmptyLayout = errors.New("keypad: layout must have at least one key")
	// ErrOriginInvalid indicates the origin is not a present cell of the layout.
	ErrOriginInvalid = errors.New("keypad: origin must be a key of the layout")
	// ErrInvalidMove is matched by every *InvalidMoveError.
	ErrInvalidMove = errors.New("keypad: invalid move")
	// ErrUnknownLayout is matched by every *UnknownLayoutError.
	ErrUnknownLayout = errors.New("keypad: unknown layout")
	// ErrDuplicateLayout indicates a layout name is already registered.
	ErrDuplicateLayout = errors.New("keypad: duplicate layout name")
	// ErrUnnamedLayout indicates a layout was registered without a name.
	ErrUnnamedLayout = errors.New("keypad: layout name is empty")
)

// InvalidMoveError reports a move symbol outside {U,D,L,R}, or a Move value
// outside the enum. Index is the position within the line, or -1 when unknown.
type InvalidMoveError struct {
	Symbol string
	Index  int
}

func (e *InvalidMoveError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("keypad: invalid move %s", e.Symbol)
	}
	return fmt.Sprintf("keypad: invalid move %q at column %d", e.Symbol, e.Index+1)
}

// Is makes every InvalidMoveError match ErrInvalidMove.
func (e *InvalidMoveError) Is(target error) bool { return target == ErrInvalidMove }

// UnknownLayoutError reports a layout name missing from a Registry.
// Available lists the registered names in registration order.
type UnknownLayoutError struct {
	Name      string
	Available []string
}

func (e *UnknownLayoutError) Error() string {
	return fmt.Sprintf("keypad: unknown layout %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// Is makes every UnknownLayoutError match ErrUnknownLayout.
func (e *UnknownLayoutError) Is(target error) bool { return target == ErrUnknownLayout }
