// This file contains the depth-indexed spawn tables for monsters and items.

package main

import (
	"codeberg.org/anaseto/gruid"
)

// step is one entry of a depth-indexed table: Val applies from depth offset
// Min onwards, until overridden by a later step.
type step struct {
	Val, Min int
}

// stepValue returns the value of the deepest step reached at depth offset u,
// or 0 when none is reached yet.
func stepValue(table []step, u int) int {
	for i := len(table) - 1; i >= 0; i-- {
		if u >= table[i].Min {
			return table[i].Val
		}
	}
	return 0
}

// Depth-indexed spawn tables, keyed on the number of levels below the home
// level.
var (
	maxMonstersTable = []step{{2, 1}, {2, 2}, {2, 3}, {3, 4}, {3, 5}, {5, 6}, {5, 7}, {6, 8}, {7, 9}, {20, 10}, {25, 11}, {30, 12}, {35, 13}}
	orcTable         = []step{{5, 1}, {10, 2}, {15, 3}, {20, 4}, {25, 5}, {35, 6}, {40, 7}, {40, 8}, {40, 9}, {50, 10}, {50, 11}, {60, 12}, {70, 13}}
	trollTable       = []step{{5, 3}, {5, 4}, {10, 5}, {15, 6}, {20, 7}, {25, 8}, {30, 9}, {40, 10}, {50, 11}, {60, 12}, {70, 13}}
	koboldTable      = []step{{60, 3}, {90, 6}}

	maxItemsTable       = []step{{1, 1}, {2, 6}}
	lightningTable      = []step{{5, 4}}
	fireballTable       = []step{{5, 6}}
	confusionTable      = []step{{4, 2}}
	shortSwordTable     = []step{{7, 4}, {1, 5}, {0, 8}}
	smallShieldTable    = []step{{10, 3}, {1, 5}, {0, 8}}
	warHammerTable      = []step{{3, 6}, {0, 7}, {1, 8}, {0, 9}}
	champShieldTable    = []step{{2, 7}, {8, 8}, {1, 10}}
	paddedArmorTable    = []step{{2, 2}, {10, 4}, {1, 5}}
	skullcapTable       = []step{{3, 2}, {1, 3}}
	brokenDaggerTable   = []step{{7, 1}, {1, 2}}
	goldenRingTable     = []step{{5, 2}, {0, 3}}
)

// NewMonster returns a new monster entity at p with the given combat stats.
func NewMonster(name string, r rune, color gruid.Color, hp, defense, power, xp int, p gruid.Point) *Entity {
	return &Entity{
		Name:     name,
		Rune:     r,
		Color:    color,
		P:        p,
		Blocks:   true,
		Fighter:  &Fighter{BaseMaxHP: hp, HP: hp, BaseDefense: defense, BasePower: power, XP: xp},
		Behavior: &Chase{},
	}
}

// WeightedIndex draws one index from a list of chances, each index with a
// probability proportional to its weight.
func (g *Game) WeightedIndex(weights []int) int {
	sum := 0
	for _, w := range weights {
		sum += w
	}
	dice := 1 + g.IntN(sum)
	run := 0
	for i, w := range weights {
		run += w
		if dice <= run {
			return i
		}
	}
	return len(weights) - 1
}

// PlaceEntities spawns monsters and items inside a room or cave, with counts
// and odds taken from the depth-indexed tables. Spawns landing on a wall or
// on a blocking entity are skipped.
func (g *Game) PlaceEntities(room Rect) {
	u := g.Map.Depth - HomeDepth
	nmonsters := g.IntN(stepValue(maxMonstersTable, u) + 1)
	for range nmonsters {
		p := gruid.Point{X: g.RandRange(room.X1+1, room.X2-1), Y: g.RandRange(room.Y1+1, room.Y2-1)}
		if g.Blocked(p) {
			continue
		}
		weights := []int{80, stepValue(orcTable, u), stepValue(trollTable, u), 30, stepValue(koboldTable, u)}
		var m *Entity
		switch g.WeightedIndex(weights) {
		case 0:
			m = NewMonster("void rat", 'r', ColorGreen, 10, 0, 0, 15, p)
		case 1:
			m = NewMonster("orc", 'o', ColorGreen, 25, 2, 4, 35, p)
		case 2:
			m = NewMonster("troll", 'T', ColorGreen, 40, 4, 8, 100, p)
		case 3:
			m = NewMonster("rickety skeleton", 's', ColorCyan, 14, 1, 1, 15, p)
		case 4:
			m = NewMonster("kobold fighter", 'k', ColorCyan, 20, 1, 2, 20, p)
		}
		g.Entities = append(g.Entities, m)
	}
	nitems := g.IntN(stepValue(maxItemsTable, u) + 1)
	for range nitems {
		p := gruid.Point{X: g.RandRange(room.X1+1, room.X2-1), Y: g.RandRange(room.Y1+1, room.Y2-1)}
		if g.Blocked(p) {
			continue
		}
		weights := []int{
			30, // healing potion
			4,  // poisoned potion
			stepValue(lightningTable, u),
			stepValue(fireballTable, u),
			stepValue(confusionTable, u),
			stepValue(shortSwordTable, u),
			stepValue(smallShieldTable, u),
			stepValue(warHammerTable, u),
			stepValue(champShieldTable, u),
			stepValue(paddedArmorTable, u),
			stepValue(skullcapTable, u),
			stepValue(brokenDaggerTable, u),
			stepValue(goldenRingTable, u),
		}
		var it *Entity
		switch g.WeightedIndex(weights) {
		case 0:
			it = NewPotion(HealPotion, p)
		case 1:
			it = NewPotion(PoisonPotion, p)
		case 2:
			it = NewScroll(LightningScroll, "scroll of lightning bolt", p)
		case 3:
			it = NewScroll(FireballScroll, "scroll of fireball", p)
		case 4:
			it = NewScroll(ConfusionScroll, "scroll of confusion", p)
		case 5:
			it = NewWearable("short sword", '&', ColorBlue, Wearable{Slot: SlotMainHand, Power: 2, MinLevel: 3}, p)
		case 6:
			it = NewWearable("small shield", '&', ColorOrange, Wearable{Slot: SlotOffHand, Defense: 1, MinLevel: 2}, p)
		case 7:
			it = NewWearable("war hammer", '&', ColorBlue, Wearable{Slot: SlotMainHand, Power: 3, Defense: -1, MinLevel: 5}, p)
		case 8:
			it = NewWearable("champion's shield", '&', ColorOrange, Wearable{Slot: SlotOffHand, Defense: 3, MinLevel: 6}, p)
		case 9:
			it = NewWearable("padded leather armor", '&', ColorOrange, Wearable{Slot: SlotBody, Defense: 2, MinLevel: 2}, p)
		case 10:
			it = NewWearable("leather skullcap", '&', ColorOrange, Wearable{Slot: SlotHead, Defense: 1, MinLevel: 1}, p)
		case 11:
			it = NewWearable("broken dagger", '&', ColorOrange, Wearable{Slot: SlotMainHand, MinLevel: 1}, p)
		case 12:
			it = NewWearable("tarnished golden ring", '*', ColorYellow, Wearable{Slot: SlotRing, Lore: 2, MinLevel: 3}, p)
		}
		g.Entities = append(g.Entities, it)
	}
}
