package main

import (
	"math/rand/v2"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// Version is the game's version string of the last release.
const Version = "v0.2.0"

// InvalidPos is a special variable containing an invalid position.
var InvalidPos = gruid.Point{X: -1, Y: -1}

// GameState represents whether the session is still being played.
type GameState int

const (
	Playing GameState = iota
	Dead
)

// Game represents the state of the current game session: the level map, its
// entities, the player's inventory and progression, and the message log.
type Game struct {
	Entities  []*Entity // current level's entities; Entities[0] is the player
	Inventory []*Entity // carried items (not part of Entities)
	Map       *Map
	StairsP   gruid.Point // stairs-down position (InvalidPos if none)
	UpstairsP gruid.Point // stairs-up position (InvalidPos if none)
	Logs      *Logs
	Level     int // player's character level
	Turn      int
	State     GameState
	Stats     *Stats
	Version   string
	PR        *paths.PathRange

	rand *rand.Rand
	md   *model
}

// NewGame initializes a new game session: the player, the home level and the
// starting equipment.
func (g *Game) NewGame() {
	g.Version = Version
	g.Logs = &Logs{}
	g.State = Playing
	g.Stats = newStats()
	g.Level = 1
	player := &Entity{
		Name:    "player",
		Rune:    '@',
		Color:   ColorPlayer,
		Blocks:  true,
		Fighter: &Fighter{BaseMaxHP: 100, HP: 100},
	}
	g.Entities = []*Entity{player}
	g.GenerateLevel(HomeDepth, false)
	g.UpdateFOV()
	g.StoryLog("Woke up in the castle")
	g.LogStyled("You have awakened in a room, with no memory of how you got there. There are stairs leading down.", logCritic)
	dagger := NewWearable("dagger", '-', ColorBlue, Wearable{Slot: SlotMainHand, Power: 1}, InvalidPos)
	g.Inventory = append(g.Inventory, dagger)
	g.Equip(dagger)
}

// EndTurn runs the monster turns following a turn-consuming player action.
// Monsters act in registry order.
func (g *Game) EndTurn() {
	g.Turn++
	for _, e := range g.Entities {
		if e.Behavior != nil {
			e.Behavior.Act(g, e)
		}
	}
	g.Logs.NextTick = g.Logs.Index
}

// IntN returns a pseudo-random number in the interval [0, n). It returns 0
// if n is not positive.
func (g *Game) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return g.rand.IntN(n)
}

// RandRange returns a pseudo-random number in the inclusive range [m, n].
func (g *Game) RandRange(m, n int) int {
	if n < m {
		m, n = n, m
	}
	return m + g.IntN(n-m+1)
}

// Roll rolls an n-sided die.
func (g *Game) Roll(n int) int {
	return 1 + g.IntN(n)
}
