package keypad

import "fmt"

// SquareName and DiamondName are the registry names of the built-in layouts.
const (
	SquareName  = "square"
	DiamondName = "diamond"
)

// Square returns the dense 3×3 digit pad, origin at the center key 5.
func Square() *Layout {
	return MustLayout(SquareName, [][]string{
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
	}, Position{Row: 1, Col: 1})
}

// Diamond returns the 13-key diamond pad (row widths 1,3,5,3,1), origin at
// key 5, the leftmost key of the middle row.
func Diamond() *Layout {
	const o = Placeholder
	return MustLayout(DiamondName, [][]string{
		{o, o, "1", o, o},
		{o, "2", "3", "4", o},
		{"5", "6", "7", "8", "9"},
		{o, "A", "B", "C", o},
		{o, o, "D", o, o},
	}, Position{Row: 2, Col: 0})
}

// Registry is an ordered set of named layouts. The zero value is empty and
// ready to use. A Registry is not safe for concurrent Register calls.
type Registry struct {
	order  []string
	byName map[string]*Layout
}

// NewRegistry returns a registry holding layouts in the given order.
func NewRegistry(layouts ...*Layout) (*Registry, error) {
	r := &Registry{}
	for _, l := range layouts {
		if err := r.Register(l); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// DefaultRegistry returns a registry with Square then Diamond.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(Square(), Diamond())
	if err != nil {
		panic(err)
	}
	return r
}

// Register appends l. Returns ErrUnnamedLayout (also for a nil layout)
// or ErrDuplicateLayout.
func (r *Registry) Register(l *Layout) error {
	if l == nil || l.name == "" {
		return ErrUnnamedLayout
	}
	if r.byName == nil {
		r.byName = make(map[string]*Layout)
	}
	if _, ok := r.byName[l.name]; ok {
		return fmt.Errorf("Register(%q): %w", l.name, ErrDuplicateLayout)
	}
	r.byName[l.name] = l
	r.order = append(r.order, l.name)
	return nil
}

// Lookup returns the layout called name or *UnknownLayoutError listing
// the available names.
func (r *Registry) Lookup(name string) (*Layout, error) {
	if l, ok := r.byName[name]; ok {
		return l, nil
	}
	return nil, &UnknownLayoutError{Name: name, Available: r.Names()}
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Layouts returns the registered layouts in registration order.
func (r *Registry) Layouts() []*Layout {
	out := make([]*Layout, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.byName[n])
	}
	return out
}

// Len returns the number of registered layouts.
func (r *Registry) Len() int { return len(r.order) }
