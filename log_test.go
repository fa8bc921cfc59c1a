package main

import (
	"strings"
	"testing"
)

func TestLogDedup(t *testing.T) {
	g := newTestGame()
	n := len(g.Logs.Entries)
	g.Logs.NextTick = g.Logs.Index
	g.Log("you hit the wall.")
	g.Log("you hit the wall.")
	g.Log("you hit the wall.")
	if len(g.Logs.Entries) != n+1 {
		t.Fatalf("duplicates not collapsed: %d new entries", len(g.Logs.Entries)-n)
	}
	e := g.Logs.Entries[len(g.Logs.Entries)-1]
	if e.Dups != 2 {
		t.Errorf("bad duplicate count: %d", e.Dups)
	}
	if !strings.Contains(e.String(), "(3×)") {
		t.Errorf("missing duplicate suffix: %q", e.String())
	}
	if !e.Tick {
		t.Errorf("first entry of the turn not marked")
	}
}

func TestLogTickSeparation(t *testing.T) {
	g := newTestGame()
	g.Logs.NextTick = g.Logs.Index
	g.Log("you hit the wall.")
	g.EndTurn()
	// A turn boundary prevents collapsing with the previous turn's entry.
	g.Log("you hit the wall.")
	e := g.Logs.Entries[len(g.Logs.Entries)-1]
	if e.Dups != 0 || !e.Tick {
		t.Errorf("entries collapsed across turns: %+v", e)
	}
}

func TestUpperFirst(t *testing.T) {
	for _, tc := range []struct{ in, out string }{
		{"orc attacks", "Orc attacks"},
		{"Orc attacks", "Orc attacks"},
		{"", ""},
		{"équipe", "Équipe"},
	} {
		if s := UpperFirst(tc.in); s != tc.out {
			t.Errorf("UpperFirst(%q) = %q, want %q", tc.in, s, tc.out)
		}
	}
}

func TestCountable(t *testing.T) {
	for _, tc := range []struct {
		in  string
		n   int
		out string
	}{
		{"potion", 1, "potion"},
		{"potion", 2, "potions"},
		{"remains", 3, "remains"},
		{"", 2, ""},
	} {
		if s := Countable(tc.in, tc.n); s != tc.out {
			t.Errorf("Countable(%q, %d) = %q, want %q", tc.in, tc.n, s, tc.out)
		}
	}
}

func TestOne(t *testing.T) {
	for _, tc := range []struct{ in, out string }{
		{"orc", "an orc"},
		{"troll", "a troll"},
		{"remains", "remains"},
		{"", ""},
	} {
		if s := One(tc.in); s != tc.out {
			t.Errorf("One(%q) = %q, want %q", tc.in, s, tc.out)
		}
	}
}

func TestStoryLog(t *testing.T) {
	g := newTestGame()
	if len(g.Logs.Story) == 0 {
		t.Fatalf("no story entry for waking up")
	}
	if !strings.Contains(g.Logs.Story[0], "Woke up in the castle") {
		t.Errorf("bad first story entry: %q", g.Logs.Story[0])
	}
	if !strings.HasPrefix(g.Logs.Story[0], "Depth 10|") {
		t.Errorf("missing depth prefix: %q", g.Logs.Story[0])
	}
}
