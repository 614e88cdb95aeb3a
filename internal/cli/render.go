package cli

import (
	"io"

	"github.com/muesli/termenv"
)

// styler highlights answers; with color off it emits plain text.
type styler struct {
	out *termenv.Output
}

func newStyler(w io.Writer, color bool) *styler {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI256
	}
	return &styler{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

func (s *styler) answer(v string) string {
	return s.out.String(v).Bold().Foreground(s.out.Color("#c084fc")).String()
}

func (s *styler) warn(v string) string {
	return s.out.String(v).Foreground(s.out.Color("#fb7185")).String()
}
