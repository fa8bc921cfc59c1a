// This file handles transitions between dungeon levels.

package main

import (
	"log"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// Descend takes the stairs down and generates the next level. Leaving the
// home level records it first, so that it can be restored when climbing back.
// It reports whether the player actually left the level.
func (g *Game) Descend() bool {
	if g.PP() != g.StairsP {
		g.Log("There are no stairs down here.")
		return false
	}
	if g.Map.Depth == HomeDepth {
		if err := g.SaveHome(); err != nil {
			log.Printf("writing home record: %v", err)
		}
	}
	g.LogStyled("You descend deeper into the heart of the dungeon...", logCritic)
	g.GenerateLevel(g.Map.Depth+1, false)
	g.UpdateFOV()
	if g.Map.Depth > g.Stats.DeepestDepth {
		g.Stats.DeepestDepth = g.Map.Depth
	}
	g.StoryLog("Descended the stairs")
	return true
}

// Ascend takes the stairs up. Climbing back into the home level restores it
// as it was left, with the player's current stats carried over through the
// stats record. It reports whether the player actually left the level.
func (g *Game) Ascend() bool {
	if g.PP() != g.UpstairsP {
		g.Log("There are no stairs up here.")
		return false
	}
	depth := g.Map.Depth - 1
	if depth > HomeDepth {
		g.GenerateLevel(depth, true)
		g.LogStyled("You climb up to a higher dungeon level...", logCritic)
		g.UpdateFOV()
		g.StoryLog("Climbed the stairs")
		return true
	}
	g.returnHome()
	return true
}

// returnHome restores the home level from its record. The snapshot's player
// predates the expedition, so its stats are overwritten from the stats
// record written on the way up.
func (g *Game) returnHome() {
	if err := g.SaveStats(); err != nil {
		log.Printf("writing stats record: %v", err)
	}
	hs, err := LoadHome()
	if err != nil {
		// The record is written when first leaving home, so this
		// should not happen; regenerate a fresh home level instead.
		log.Printf("reading home record: %v", err)
		g.GenerateLevel(HomeDepth, false)
		g.UpdateFOV()
		return
	}
	g.Map = hs.Map
	g.Entities = hs.Entities
	g.StairsP = hs.StairsP
	g.UpstairsP = InvalidPos
	size := g.Map.Size()
	g.PR = paths.NewPathRange(gruid.NewRange(0, 0, size.X, size.Y))
	if st, err := LoadStats(); err != nil {
		log.Printf("reading stats record: %v", err)
	} else {
		pf := g.Player().Fighter
		pf.HP = st.HP
		pf.XP = st.XP
		pf.BaseMaxHP = st.MaxHP
		pf.BasePower = st.Power
		pf.BaseDefense = st.Defense
		pf.BaseLore = st.Lore
		g.Level = st.Level
	}
	g.UpdateFOV()
	g.StoryLog("Returned to the castle")
	g.LogStyled("You enjoy a rare moment of peace in an isolated place...", logSpecial)
}
