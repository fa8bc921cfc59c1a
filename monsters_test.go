package main

import (
	"testing"
)

func TestChaseApproach(t *testing.T) {
	g := newTestGame()
	pp := g.PP()
	m := NewMonster("orc", 'o', ColorGreen, 25, 2, 4, 35, pp.Shift(3, 0))
	g.Entities = append(g.Entities, m)
	hp := g.Player().Fighter.HP
	g.EndTurn()
	if m.P != pp.Shift(2, 0) {
		t.Errorf("orc at %v did not step towards the player: %v", pp.Shift(3, 0), m.P)
	}
	if g.Player().Fighter.HP != hp {
		t.Errorf("player hurt by a non-adjacent orc")
	}
}

func TestChaseAttack(t *testing.T) {
	g := newTestGame()
	pf := g.Player().Fighter
	pf.BaseMaxHP = 100000
	pf.HP = pf.BaseMaxHP
	pp := g.PP()
	m := NewMonster("orc", 'o', ColorGreen, 25, 2, 100, 35, pp.Shift(1, 0))
	g.Entities = append(g.Entities, m)
	const turns = 5
	for range turns {
		g.EndTurn()
	}
	if m.P != pp.Shift(1, 0) {
		t.Errorf("adjacent orc moved to %v instead of attacking", m.P)
	}
	// With 100 attack against 0 defense every swing lands.
	if g.Stats.Hurt != turns {
		t.Errorf("got %d hits on the player after %d turns", g.Stats.Hurt, turns)
	}
	if pf.HP >= pf.BaseMaxHP {
		t.Errorf("player took no damage from an adjacent orc")
	}
}

func TestChaseBlockedStep(t *testing.T) {
	g := newTestGame()
	pp := g.PP()
	front := NewMonster("orc", 'o', ColorGreen, 25, 2, 4, 35, pp.Shift(1, 0))
	back := NewMonster("orc", 'o', ColorGreen, 25, 2, 4, 35, pp.Shift(2, 0))
	g.Entities = append(g.Entities, front, back)
	g.EndTurn()
	if back.P != pp.Shift(2, 0) {
		t.Errorf("orc moved into an occupied tile: %v", back.P)
	}
	if front.P != pp.Shift(1, 0) {
		t.Errorf("adjacent orc moved: %v", front.P)
	}
}

func TestChaseOutOfView(t *testing.T) {
	g := newTestGame()
	pp := g.PP()
	// Beyond the view range in the home room's far corner.
	p := pp.Shift(5, 5)
	if g.InFOV(p) {
		t.Fatalf("position %v should be out of view", p)
	}
	m := NewMonster("orc", 'o', ColorGreen, 25, 2, 4, 35, p)
	g.Entities = append(g.Entities, m)
	g.EndTurn()
	if m.P != p {
		t.Errorf("unseen orc moved to %v", m.P)
	}
	if g.Stats.Hurt != 0 {
		t.Errorf("unseen orc hurt the player")
	}
}
