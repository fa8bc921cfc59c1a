package main

import (
	"fmt"
	"maps"
	"runtime/debug"
	"slices"
	"strings"

	"codeberg.org/anaseto/gruid"
)

// Stats gathers various game statistics from a run.
type Stats struct {
	NDeaths      int            // number of monster deaths
	Deaths       map[string]int // monster deaths by name
	Hits         int            // number of times you hit with a bump-attack
	Misses       int            // number of times you missed a bump-attack
	Hurt         int            // number of times you got hurt
	Damage       int            // total damage you got
	Quaffed      int            // number of potions drunk
	Read         int            // number of scrolls read
	DeepestDepth int            // deepest depth reached
}

// newStats returns newly initialized structure for statistics.
func newStats() *Stats {
	return &Stats{
		Deaths:       map[string]int{},
		DeepestDepth: HomeDepth,
	}
}

// Death registers the death of a monster with given name.
func (gs *Stats) Death(name string) {
	gs.NDeaths++
	gs.Deaths[name]++
}

// DumpSummary produces the game statistics short summary displayed at the end
// of the game.
func (g *Game) DumpSummary() string {
	var sb strings.Builder
	var version string
	info, ok := debug.ReadBuildInfo()
	if ok {
		version = info.Main.Version
	} else {
		version = Version
	}
	fmt.Fprintf(&sb, " † Game Summary — Castles and Catacombs %s †\n\n", version)
	switch {
	case g.State == Dead:
		fmt.Fprintf(&sb, "You died while exploring depth %d of the catacombs.\n", g.Map.Depth)
	case g.Map.Depth == HomeDepth:
		fmt.Fprintf(&sb, "You are resting in your home castle at depth %d.\n", HomeDepth)
	default:
		fmt.Fprintf(&sb, "You are exploring depth %d of the catacombs.\n", g.Map.Depth)
	}
	fmt.Fprintf(&sb, "You spent %d turns in the dungeon and went as deep as depth %d.\n",
		g.Turn, g.Stats.DeepestDepth)
	fmt.Fprintf(&sb, "Your adventure resulted in %d monster %s.\n",
		g.Stats.NDeaths, Countable("death", g.Stats.NDeaths))
	return sb.String()
}

// Dump produces the game statistics full summary.
func (g *Game) Dump() string {
	var sb strings.Builder
	summary := g.DumpSummary()
	sb.WriteString(summary)
	g.dumpPlayer(&sb)
	sb.WriteString("\nLast messages:\n")
	for _, e := range g.Logs.Entries[max(0, len(g.Logs.Entries)-20):] {
		fmt.Fprintf(&sb, "%s\n", e.dumpString())
	}
	sb.WriteString("\nMap:\n")
	g.dumpDungeon(&sb)
	if g.Stats.NDeaths > 0 {
		sb.WriteString("\nMonster deaths:\n")
		g.dumpKilledMonsters(&sb)
	}
	sb.WriteString("\nStatistics:\n")
	g.dumpStatistics(&sb)
	sb.WriteString("\nTimeline:\n")
	for _, s := range g.Logs.Story {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Game) dumpPlayer(sb *strings.Builder) {
	player := g.Player()
	pf := player.Fighter
	fmt.Fprintf(sb, "\nHP:%d/%d A:%d D:%d Lo:%d XL:%d XP:%d\n",
		pf.HP, g.MaxHP(player), g.Power(player), g.Defense(player),
		g.Lore(player), g.Level, pf.XP)
	sb.WriteString("\nInventory:\n")
	if len(g.Inventory) == 0 {
		sb.WriteString("- nothing\n")
		return
	}
	for _, e := range g.Inventory {
		name := e.Name
		if e.Wearable != nil && e.Wearable.Equipped {
			name = fmt.Sprintf("%s (on %s)", name, e.Wearable.Slot)
		}
		fmt.Fprintf(sb, "- %s\n", name)
	}
}

func (g *Game) dumpDungeon(sb *strings.Builder) {
	ents := make([]*Entity, len(g.Entities))
	copy(ents, g.Entities)
	slices.SortStableFunc(ents, func(e, f *Entity) int {
		return e.RenderOrder() - f.RenderOrder()
	})
	runeAt := func(p gruid.Point) rune {
		r := TerrainRune(g.Map.Known.At(p))
		switch p {
		case g.StairsP:
			if g.Map.Explored(p) {
				r = '>'
			}
		case g.UpstairsP:
			if g.Map.Explored(p) {
				r = '<'
			}
		}
		for _, e := range ents {
			if e.P != p {
				continue
			}
			if g.InFOV(p) || e.AlwaysVisible && g.Map.Explored(p) {
				r = e.Rune
			}
		}
		return r
	}
	size := g.Map.Size()
	for y := 0; y < size.Y; y++ {
		sb.WriteRune('|')
		for x := 0; x < size.X; x++ {
			sb.WriteRune(runeAt(gruid.Point{X: x, Y: y}))
		}
		sb.WriteString("|\n")
	}
}

func (g *Game) dumpKilledMonsters(sb *strings.Builder) {
	monsters := slices.Sorted(maps.Keys(g.Stats.Deaths))
	for _, mons := range monsters {
		fmt.Fprintf(sb, "- %s: %d\n", mons, g.Stats.Deaths[mons])
	}
}

func (g *Game) dumpStatistics(sb *strings.Builder) {
	timesPer100 := func(n int) string {
		return fmt.Sprintf("%d %s (%.1f per 100 turns)",
			n, times(n), float64(n)*100/float64(max(1, g.Turn)))
	}
	fmt.Fprintf(sb, "You hit foes %s.\n", timesPer100(g.Stats.Hits))
	fmt.Fprintf(sb, "You missed foes %s.\n", timesPer100(g.Stats.Misses))
	fmt.Fprintf(sb, "You got hurt %d %s and endured %d damage.\n",
		g.Stats.Hurt, times(g.Stats.Hurt), g.Stats.Damage)
	fmt.Fprintf(sb, "You drank %d %s and read %d %s.\n",
		g.Stats.Quaffed, Countable("potion", g.Stats.Quaffed),
		g.Stats.Read, Countable("scroll", g.Stats.Read))
}

func times(n int) string {
	if n == 1 {
		return "time"
	}
	return "times"
}
