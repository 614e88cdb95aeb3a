// Package taxicab walks a 2D integer plane following relative turn+distance
// instructions and measures the result in taxicab (L1) distance.
//
// What:
//
//   - Heading is a Mealy state machine over {axis0+, axis0-, axis1+, axis1-}
//     driven by Right/Left turns. Every turn swaps the axis of travel; the
//     effect on the sign depends on the axis being left.
//   - Walk applies parsed Instructions from the origin facing North and
//     records every unit step on the way (not just segment endpoints).
//   - FirstCrossing finds the first point visited twice.
//
// Transition table (s is any sign, ~s its negation):
//
//	(axis0 s, Right) -> axis1 ~s
//	(axis0 s, Left)  -> axis1  s
//	(axis1 s, Right) -> axis0  s
//	(axis1 s, Left)  -> axis0 ~s
//
// Complexity:
//
//   - Walk:          O(D) time, O(D) memory with path tracking (D = Σ distances).
//   - FirstCrossing: O(D) time and memory (visited set).
//
// Options:
//
//   - WithPathTracking(false): keep only the final point ("part 1" mode).
//   - WithOnStep(fn):          hook called after every unit step.
//
// Errors:
//
//   - *ParseError (errors.Is ErrParse): malformed "<L|R><digits>" token.
//   - ErrInvalidTurn, ErrNegativeDistance: Instruction values that could
//     not have come from ParseInstructions.
package taxicab
