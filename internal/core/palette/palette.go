// Package palette generates distinct chart colors for a category count
package palette

import (
	"fmt"
	"math"
)

// Fallback is returned for an empty palette so callers indexing modulo the length never divide by zero
const Fallback = "#9e9e9e"

// Max is the largest palette callers may request
const Max = 1024

const (
	goldenRatioConjugate = 0.618033988749895
	saturation           = 0.65
	lightness            = 0.55
)

// Generate returns n hex colors whose hues advance by the golden ratio conjugate from 0
func Generate(n int) []string {
	if n <= 0 {
		return []string{Fallback}
	}
	out := make([]string, n)
	h := 0.0
	for i := range out {
		out[i] = hex(hslToRGB(h, saturation, lightness))
		h = math.Mod(h+goldenRatioConjugate, 1)
	}
	return out
}

func hslToRGB(h, s, l float64) (r, g, b float64) {
	c := (1 - math.Abs(2*l-1)) * s
	hp := h * 6
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	return r + m, g + m, b + m
}

func hex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
