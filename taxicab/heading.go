package taxicab

import "fmt"

// Axis selects the coordinate being advanced: 0 moves Y, 1 moves X.
type Axis int

// Sign is the direction of travel along an Axis: +1 or -1.
type Sign int

// Heading is the state of the walk: the axis being advanced and its sign.
type Heading struct {
	Axis Axis
	Sign Sign
}

// North is the initial heading: axis 0, positive direction.
var North = Heading{Axis: 0, Sign: +1}

// Next returns the heading reached by applying t to h.
// The axis always flips; the sign flips iff leaving axis 0 with Right
// or axis 1 with Left. h is not modified.
// Complexity: O(1).
func (h Heading) Next(t Turn) (Heading, error) {
	if t != Right && t != Left {
		return h, fmt.Errorf("Next(%v): %w", t, ErrInvalidTurn)
	}
	sign := h.Sign
	if (h.Axis == 0 && t == Right) || (h.Axis == 1 && t == Left) {
		sign = -sign
	}

	return Heading{Axis: 1 - h.Axis, Sign: sign}, nil
}

// advance moves p one unit step along h.
func (h Heading) advance(p Point) Point {
	if h.Axis == 0 {
		p.Y += int(h.Sign)
	} else {
		p.X += int(h.Sign)
	}
	return p
}

func (h Heading) String() string {
	s := "+"
	if h.Sign < 0 {
		s = "-"
	}
	return fmt.Sprintf("axis%d%s", h.Axis, s)
}
