package main

import (
	"math"

	"codeberg.org/anaseto/gruid"
)

// Distance returns the euclidean distance between two positions.
func Distance(p, q gruid.Point) float64 {
	d := p.Sub(q)
	return math.Sqrt(float64(d.X*d.X + d.Y*d.Y))
}

// Countable adds an "s" depending on quantity n.
func Countable(s string, n int) string {
	if len(s) == 0 || s[len(s)-1] == 's' || n == 1 {
		return s
	}
	return s + "s"
}

// One adds "a" or "an" to a string.
func One(s string) (text string) {
	if len(s) > 0 {
		if s[len(s)-1] == 's' {
			return s
		}
		switch s[0] {
		case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
			text = "an " + s
		default:
			text = "a " + s
		}
	}
	return text
}
