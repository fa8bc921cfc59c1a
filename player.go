// This file handles player actions and character progression.

package main

import (
	"codeberg.org/anaseto/gruid"
)

// Character progression constants: the experience threshold for the next
// level is LevelUpBase + LevelUpFactor * level.
const (
	LevelUpBase   = 100
	LevelUpFactor = 75
)

// PlayerBump moves the player in the given direction, or attacks the
// fighter standing there. It reports whether the action consumed a turn.
func (g *Game) PlayerBump(dir gruid.Point) bool {
	to := g.PP().Add(dir)
	if m := g.FighterAt(to); m != nil {
		g.Attack(g.Player(), m)
		return true
	}
	g.MoveEntity(g.Player(), to)
	g.UpdateFOV()
	return true
}

// LevelUpXP returns the experience needed to reach the next character level.
func (g *Game) LevelUpXP() int {
	return LevelUpBase + g.Level*LevelUpFactor
}

// CanLevelUp reports whether the player gathered enough experience for the
// next character level.
func (g *Game) CanLevelUp() bool {
	pf := g.Player().Fighter
	return pf != nil && pf.XP >= g.LevelUpXP()
}

// LevelUp advances the player one character level: extra experience carries
// over and hit points refill. The stat increase is chosen separately with
// ApplyLevelUpChoice.
func (g *Game) LevelUp() {
	pf := g.Player().Fighter
	xp := g.LevelUpXP()
	g.Level++
	pf.XP -= xp
	pf.HP = g.MaxHP(g.Player())
	g.StoryLogf("Reached character level %d", g.Level)
	g.LogfStyled("Your battle skills grow stronger! You reached level %d!", logNotable, g.Level)
}

// ApplyLevelUpChoice applies the stat increase chosen in the level-up menu.
func (g *Game) ApplyLevelUpChoice(i int) {
	pf := g.Player().Fighter
	switch i {
	case 0:
		pf.BaseMaxHP += 20
		pf.HP += 20
	case 1:
		pf.BasePower++
	case 2:
		pf.BaseDefense++
	case 3:
		pf.BaseLore++
	}
}
