package main

import (
	"testing"
)

func TestStepValue(t *testing.T) {
	for _, tc := range []struct{ u, val int }{
		{0, 0}, {1, 2}, {3, 2}, {4, 3}, {6, 5}, {10, 20}, {13, 35}, {20, 35},
	} {
		if v := stepValue(maxMonstersTable, tc.u); v != tc.val {
			t.Errorf("stepValue(maxMonstersTable, %d) = %d, want %d", tc.u, v, tc.val)
		}
	}
	for _, tc := range []struct{ u, val int }{
		{0, 0}, {2, 0}, {3, 60}, {5, 60}, {6, 90}, {13, 90},
	} {
		if v := stepValue(koboldTable, tc.u); v != tc.val {
			t.Errorf("stepValue(koboldTable, %d) = %d, want %d", tc.u, v, tc.val)
		}
	}
}

func TestWeightedIndex(t *testing.T) {
	g := newTestGame()
	if i := g.WeightedIndex([]int{0, 5, 0}); i != 1 {
		t.Errorf("only positive weight not drawn: %d", i)
	}
	weights := []int{80, 10, 0, 30, 5}
	counts := make([]int, len(weights))
	for range 1000 {
		i := g.WeightedIndex(weights)
		if i < 0 || i >= len(weights) {
			t.Fatalf("index out of range: %d", i)
		}
		counts[i]++
	}
	if counts[2] != 0 {
		t.Errorf("zero weight drawn %d times", counts[2])
	}
	if counts[0] == 0 || counts[3] == 0 {
		t.Errorf("likely weights never drawn: %v", counts)
	}
}

func TestPlaceEntitiesDepthBands(t *testing.T) {
	g := newTestGame()
	// Trolls and kobolds only spawn a few levels below the home level, so
	// the shallowest dungeon level holds rats, skeletons and orcs only.
	g.GenerateLevel(HomeDepth+1, false)
	g.UpdateFOV()
	for _, e := range g.Entities[1:] {
		if e.Fighter == nil {
			continue
		}
		switch e.Name {
		case "void rat", "rickety skeleton", "orc":
		default:
			t.Errorf("unexpected monster at depth %d: %s", g.Map.Depth, e.Name)
		}
	}
}
