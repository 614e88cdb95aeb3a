package taxicab

import "fmt"

// Walk follows instrs from the origin facing North.
//
// For each instruction the heading transitions first, then Distance unit
// steps are taken. With path tracking (the default) every intermediate point
// is appended, so len(Path) == 1 + Σ Distance, and the first self-crossing is
// reported. A zero distance changes only the heading.
//
// Returns ErrInvalidTurn or ErrNegativeDistance for instructions that could
// not have come from ParseInstructions, ErrPathTooLong when a distance
// exceeds MaxDistance or the total exceeds MaxSteps, or the first error
// from OnStep. Limits are checked before anything is allocated.
// Complexity: O(D) time and memory, D = Σ Distance.
func Walk(instrs []Instruction, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	total := 0
	for i, in := range instrs {
		if in.Distance < 0 {
			return nil, fmt.Errorf("Walk: instruction %d (%d): %w", i+1, in.Distance, ErrNegativeDistance)
		}
		if in.Distance > MaxDistance || total > MaxSteps-in.Distance {
			return nil, fmt.Errorf("Walk: instruction %d (%d): %w", i+1, in.Distance, ErrPathTooLong)
		}
		total += in.Distance
	}

	var path []Point
	if o.TrackPath {
		path = make([]Point, 1, total+1)
	}
	pos := Point{}
	h := North
	for i, in := range instrs {
		next, err := h.Next(in.Turn)
		if err != nil {
			return nil, fmt.Errorf("Walk: instruction %d: %w", i+1, err)
		}
		h = next
		for step := 0; step < in.Distance; step++ {
			pos = h.advance(pos)
			if o.TrackPath {
				path = append(path, pos)
			}
			if o.OnStep != nil {
				if err = o.OnStep(pos); err != nil {
					return nil, err
				}
			}
		}
	}

	res := &Result{Final: pos, Steps: total}
	if !o.TrackPath {
		res.Path = []Point{pos}
		return res, nil
	}
	res.Path = path
	res.Crossing, res.HasCrossing = FirstCrossing(path)

	return res, nil
}

// FirstCrossing returns the first point of path, in visit order from the
// second point on, that already occurred earlier in path. Points of the
// same straight segment count. Earliest repeat wins, not the closest one.
// Complexity: O(n) time and memory.
func FirstCrossing(path []Point) (Point, bool) {
	if len(path) < 2 {
		return Point{}, false
	}
	seen := make(map[Point]struct{}, len(path))
	seen[path[0]] = struct{}{}
	for _, p := range path[1:] {
		if _, ok := seen[p]; ok {
			return p, true
		}
		seen[p] = struct{}{}
	}

	return Point{}, false
}

// Solve parses input and returns the final taxicab distance and, when the
// path crosses itself, the distance of the first crossing.
func Solve(input string) (final, crossing int, crossed bool, err error) {
	instrs, err := ParseInstructions(input)
	if err != nil {
		return 0, 0, false, err
	}
	res, err := Walk(instrs)
	if err != nil {
		return 0, 0, false, err
	}
	crossing, crossed = res.CrossingDistance()

	return res.Distance(), crossing, crossed, nil
}
