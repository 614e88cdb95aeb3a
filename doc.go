// Package infinity collects solutions to the Advent of Code 2016 path puzzles
// and a small launcher that runs them interactively.
//
// What:
//
//   - taxicab/ — heading state machine; walks "R8, R4, R4, R8" style
//     instructions, reports the final taxicab distance and the first
//     point the path crosses itself.
//   - keypad/  — cursor walk over keypads of any shape (jagged rows,
//     placeholder cells); reads one key per line of U/D/L/R moves.
//
// Both solvers are pure: every call owns its heading, cursor and path, so
// concurrent callers need no locking.
//
// Quick ASCII example (diamond keypad, start on 5):
//
//	    1
//	  2 3 4
//	5 6 7 8 9
//	  A B C
//	    D
//
// "ULL RRDDD LURDL UUUUD" spells 5DB3 here and 1985 on the 3×3 pad.
//
//	go install github.com/katalvlaran/infinity/cmd/infinity@latest
package infinity
