// This file handles monster AI behaviors.

package main

import (
	"math"

	"codeberg.org/anaseto/gruid"
)

// Behavior drives a monster's turn. The concrete behaviors are registered
// for gob encoding in encoding.go.
type Behavior interface {
	Act(g *Game, e *Entity)
}

// Chase is the standard monster behavior: approach the player while visible,
// attack when adjacent. Visibility is symmetric, so a monster sees the
// player exactly when the player sees the monster.
type Chase struct{}

func (*Chase) Act(g *Game, e *Entity) {
	if !g.InFOV(e.P) {
		return
	}
	pp := g.PP()
	if Distance(e.P, pp) >= 2 {
		g.moveTowards(e, pp)
	} else if g.Player().Fighter.HP > 0 {
		g.Attack(e, g.Player())
	}
}

// Confused makes a monster stumble around for a number of turns, then
// restores its previous behavior.
type Confused struct {
	Prev  Behavior
	Turns int
}

func (c *Confused) Act(g *Game, e *Entity) {
	if c.Turns > 0 {
		g.MoveEntity(e, e.P.Shift(g.IntN(3)-1, g.IntN(3)-1))
		c.Turns--
		return
	}
	e.Behavior = c.Prev
	g.LogfStyled("The %s is no longer confused!", logCritic, e.Name)
}

// moveTowards moves e one step in the rounded unit direction of the target
// position, walls and blocking entities permitting.
func (g *Game) moveTowards(e *Entity, to gruid.Point) {
	delta := to.Sub(e.P)
	dist := Distance(e.P, to)
	dx := int(math.Round(float64(delta.X) / dist))
	dy := int(math.Round(float64(delta.Y) / dist))
	g.MoveEntity(e, e.P.Shift(dx, dy))
}
