package main

import (
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestUpdateFOV(t *testing.T) {
	g := newTestGame()
	pp := g.PP()
	if !g.InFOV(pp) {
		t.Fatalf("player position %v not in view", pp)
	}
	for _, d := range []gruid.Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}} {
		p := pp.Add(d)
		if g.Map.Terrain.At(p) != Floor {
			continue
		}
		if !g.InFOV(p) {
			t.Errorf("adjacent floor %v not in view", p)
		}
		if g.Map.Known.At(p) != Floor {
			t.Errorf("adjacent floor %v not marked as explored", p)
		}
	}
	if !g.Map.Explored(pp) {
		t.Errorf("player position %v not marked as explored", pp)
	}
}

func TestFOVBlockedByWalls(t *testing.T) {
	g := newTestGame()
	pp := g.PP()
	// The home room is 11 tiles wide, so a wall tile lies within view range
	// of its center, and nothing beyond it should be seen.
	beyond := pp.Shift(-6, 0)
	if g.Map.Terrain.At(beyond) != Wall {
		t.Fatalf("expected a wall at %v", beyond)
	}
	if g.InFOV(beyond.Shift(-1, 0)) {
		t.Errorf("tile behind a wall in view")
	}
}
