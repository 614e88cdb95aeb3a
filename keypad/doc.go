// Package keypad walks a cursor over a keypad layout of arbitrary shape and
// reads off a code, one label per line of moves.
//
// What:
//
//   - Layout wraps a jagged [][]string of labels; Placeholder ("") marks an
//     absent cell kept only for alignment.
//   - Valid is the single membership predicate: row in range, column in
//     range of that row, cell not a placeholder.
//   - Step moves one cell Up/Down/Left/Right, or stays put when the target
//     fails Valid. Leaving the pad is a silent no-op, never an error.
//   - Walk/Code apply lines of moves and collect a label per line.
//   - Registry holds named layouts; Square and Diamond are built in.
//
// Layouts:
//
//	Square         Diamond
//
//	1 2 3              1
//	4 5 6            2 3 4
//	7 8 9          5 6 7 8 9
//	                 A B C
//	                   D
//
// Complexity:
//
//   - Step:    O(1).
//   - Walk:    O(M) time, M = total moves; O(L) memory, L = lines.
//   - NewLayout: O(cells) time and memory (deep copy).
//
// Errors:
//
//   - ErrEmptyLayout:     layout has no present cell.
//   - ErrOriginInvalid:   origin is off the layout or a placeholder.
//   - *InvalidMoveError:  move symbol outside {U,D,L,R} (errors.Is ErrInvalidMove).
//   - *UnknownLayoutError: Registry.Lookup miss (errors.Is ErrUnknownLayout).
//   - ErrDuplicateLayout: Registry.Register with a name already present.
package keypad
