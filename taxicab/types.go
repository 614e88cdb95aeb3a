package taxicab

import (
	"errors"
	"fmt"
)

// Sentinel errors for taxicab operations.
var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("taxicab: malformed instruction")

	// ErrEmptyInput indicates an instruction list (or a token in it) is empty.
	ErrEmptyInput = errors.New("taxicab: empty instruction")

	// ErrBadTurn indicates a token does not start with 'R' or 'L'.
	ErrBadTurn = errors.New("taxicab: turn must be R or L")

	// ErrBadDistance indicates the token's distance is not a non-negative integer.
	ErrBadDistance = errors.New("taxicab: distance must be a non-negative integer")

	// ErrInvalidTurn indicates an Instruction carries a Turn outside {Right, Left}.
	ErrInvalidTurn = errors.New("taxicab: invalid turn")

	// ErrNegativeDistance indicates an Instruction carries a negative Distance.
	ErrNegativeDistance = errors.New("taxicab: negative distance")

	// ErrPathTooLong indicates an Instruction exceeds MaxDistance or the
	// distances add up to more than MaxSteps.
	ErrPathTooLong = errors.New("taxicab: path too long")
)

// Walk limits. MaxSteps also keeps the step total far from int overflow.
const (
	// MaxDistance is the largest distance a single instruction may carry.
	MaxDistance = 1_000_000
	// MaxSteps is the largest total number of unit steps in one walk.
	MaxSteps = 1 << 22
)

// ParseError reports a malformed instruction token.
// Index is the zero-based token position within the input list.
type ParseError struct {
	Index int
	Token string
	Err   error // one of ErrEmptyInput, ErrBadTurn, ErrBadDistance
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("taxicab: token %d %q: %v", e.Index+1, e.Token, e.Err)
}

// Unwrap exposes the specific cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Turn is a relative direction change.
type Turn int

const (
	// Right turns clockwise.
	Right Turn = iota + 1
	// Left turns counter-clockwise.
	Left
)

func (t Turn) String() string {
	switch t {
	case Right:
		return "R"
	case Left:
		return "L"
	default:
		return fmt.Sprintf("Turn(%d)", int(t))
	}
}

// Instruction is one parsed "<L|R><distance>" token.
type Instruction struct {
	Turn     Turn
	Distance int
}

func (in Instruction) String() string {
	return fmt.Sprintf("%s%d", in.Turn, in.Distance)
}

// Point is an integer position on the plane. Axis 0 advances Y, axis 1 advances X.
type Point struct {
	X, Y int
}

// Taxicab returns |X| + |Y|, the distance from the origin.
func (p Point) Taxicab() int {
	return abs(p.X) + abs(p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Result is the outcome of Walk.
type Result struct {
	// Final is the point reached after the last instruction.
	Final Point
	// Path lists every visited point in order, starting at the origin.
	// Without path tracking it holds only Final.
	Path []Point
	// Crossing is the first point visited twice; valid only if HasCrossing.
	Crossing    Point
	HasCrossing bool
	// Steps counts unit steps taken (Σ distances).
	Steps int
}

// Distance is the taxicab distance of Final.
func (r *Result) Distance() int { return r.Final.Taxicab() }

// CrossingDistance returns the taxicab distance of the first crossing,
// and false when the path never crosses itself.
func (r *Result) CrossingDistance() (int, bool) {
	if !r.HasCrossing {
		return 0, false
	}
	return r.Crossing.Taxicab(), true
}

// Option configures Walk.
type Option func(*Options)

// Options holds Walk settings.
type Options struct {
	// TrackPath records every visited point and enables crossing detection.
	TrackPath bool
	// OnStep, if non-nil, is called after each unit step. A non-nil error aborts the walk.
	OnStep func(p Point) error
}

// DefaultOptions returns Options with path tracking on and no hook.
func DefaultOptions() Options {
	return Options{
		TrackPath: true,
		OnStep:    nil,
	}
}

// WithPathTracking toggles path recording.
func WithPathTracking(on bool) Option {
	return func(o *Options) {
		o.TrackPath = on
	}
}

// WithOnStep installs a per-step hook.
func WithOnStep(fn func(p Point) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
