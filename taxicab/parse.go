package taxicab

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInstruction parses a single "<L|R><digits>" token.
// Surrounding whitespace is ignored. The returned *ParseError has Index 0;
// ParseInstructions sets the real position.
func ParseInstruction(token string) (Instruction, error) {
	tok := strings.TrimSpace(token)
	if tok == "" {
		return Instruction{}, &ParseError{Token: token, Err: ErrEmptyInput}
	}

	var turn Turn
	switch tok[0] {
	case 'R':
		turn = Right
	case 'L':
		turn = Left
	default:
		return Instruction{}, &ParseError{Token: tok, Err: ErrBadTurn}
	}

	digits := tok[1:]
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return Instruction{}, &ParseError{Token: tok, Err: ErrBadDistance}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n > MaxDistance {
		return Instruction{}, &ParseError{Token: tok, Err: fmt.Errorf("%w (at most %d)", ErrBadDistance, MaxDistance)}
	}

	return Instruction{Turn: turn, Distance: n}, nil
}

// ParseInstructions parses a list of tokens separated by commas and/or
// newlines, e.g. "R5, L5, R5, R3". A trailing separator is tolerated;
// empty tokens between separators are not.
func ParseInstructions(s string) ([]Instruction, error) {
	if strings.TrimSpace(s) == "" {
		return nil, &ParseError{Err: ErrEmptyInput}
	}
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool { return r == '\n' })
	var tokens []string
	for _, line := range fields {
		parts := strings.Split(line, ",")
		if strings.TrimSpace(parts[len(parts)-1]) == "" {
			parts = parts[:len(parts)-1]
		}
		tokens = append(tokens, parts...)
	}

	out := make([]Instruction, 0, len(tokens))
	for i, tok := range tokens {
		in, err := ParseInstruction(tok)
		if err != nil {
			pe := err.(*ParseError)
			pe.Index = i
			return nil, pe
		}
		out = append(out, in)
	}

	return out, nil
}
