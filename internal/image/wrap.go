package imagepkg

import (
	"iter"
	"strings"
)

// MeasureFunc returns the rendered width of s.
type MeasureFunc func(s string) float64

// Lines greedily wraps text on single spaces. A word joins the current line
// while the joined width stays under maxWidth; otherwise the line is emitted
// and the word starts the next one. A word wider than maxWidth is emitted on
// its own. Each range over the result recomputes the wrap from scratch.
func Lines(measure MeasureFunc, text string, maxWidth float64) iter.Seq[string] {
	return func(yield func(string) bool) {
		words := strings.Split(text, " ")
		line := words[0]
		for _, w := range words[1:] {
			if measure(line+" "+w) < maxWidth {
				line += " " + w
				continue
			}
			if !yield(line) {
				return
			}
			line = w
		}
		yield(line)
	}
}
