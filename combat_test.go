package main

import (
	"math/rand/v2"
	"testing"
)

func newTestGame() *Game {
	g := &Game{rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	g.NewGame()
	return g
}

func TestNewGamePlayer(t *testing.T) {
	g := newTestGame()
	player := g.Player()
	if player.Fighter.HP != g.MaxHP(player) {
		t.Errorf("player not at full health: %d/%d", player.Fighter.HP, g.MaxHP(player))
	}
	if g.Level != 1 {
		t.Errorf("bad starting character level %d", g.Level)
	}
	// The starting dagger comes equipped.
	if e := g.EquippedInSlot(SlotMainHand); e == nil || e.Name != "dagger" {
		t.Errorf("no dagger in main hand: %v", e)
	}
	if g.Power(player) != player.Fighter.BasePower+1 {
		t.Errorf("dagger bonus not applied: power %d", g.Power(player))
	}
}

func TestEquipBonuses(t *testing.T) {
	g := newTestGame()
	player := g.Player()
	ring := NewWearable("tarnished golden ring", '*', ColorYellow, Wearable{Slot: SlotRing, Lore: 2, MinLevel: 3}, InvalidPos)
	g.Inventory = append(g.Inventory, ring)
	g.Equip(ring)
	if ring.Wearable.Equipped {
		t.Errorf("level 1 player equipped a level 3 ring")
	}
	g.Level = 3
	g.Equip(ring)
	if !ring.Wearable.Equipped {
		t.Errorf("level 3 player could not equip the ring")
	}
	if g.Lore(player) != player.Fighter.BaseLore+2 {
		t.Errorf("ring bonus not applied: lore %d", g.Lore(player))
	}
	g.Dequip(ring)
	if g.Lore(player) != player.Fighter.BaseLore {
		t.Errorf("removed ring still applies its bonus")
	}
}

func TestInflictDamageKill(t *testing.T) {
	g := newTestGame()
	m := NewMonster("orc", 'o', ColorGreen, 25, 2, 4, 35, g.PP().Shift(1, 0))
	g.Entities = append(g.Entities, m)
	g.InflictDamage(m, 25)
	if m.Fighter != nil || m.Behavior != nil {
		t.Errorf("dead monster still fights")
	}
	if m.Blocks {
		t.Errorf("remains block movement")
	}
	if m.Name != "remains of orc" || m.Rune != '%' {
		t.Errorf("bad remains: %q %q", m.Name, m.Rune)
	}
	if xp := g.Player().Fighter.XP; xp != 35 {
		t.Errorf("kill credited %d experience instead of 35", xp)
	}
	if g.Stats.NDeaths != 1 || g.Stats.Deaths["orc"] != 1 {
		t.Errorf("kill not recorded in statistics: %+v", g.Stats)
	}
}

func TestInflictDamageNonLethal(t *testing.T) {
	g := newTestGame()
	m := NewMonster("troll", 'T', ColorGreen, 40, 4, 8, 100, g.PP().Shift(1, 0))
	g.Entities = append(g.Entities, m)
	g.InflictDamage(m, 39)
	if m.Fighter == nil || m.Fighter.HP != 1 {
		t.Errorf("troll should survive at 1 HP")
	}
	g.InflictDamage(m, 0)
	g.InflictDamage(m, -5)
	if m.Fighter == nil || m.Fighter.HP != 1 {
		t.Errorf("non-positive damage should have no effect")
	}
}

func TestTwoHitKill(t *testing.T) {
	g := newTestGame()
	m := NewMonster("void rat", 'r', ColorGreen, 10, 0, 0, 15, g.PP().Shift(1, 0))
	g.Entities = append(g.Entities, m)
	g.InflictDamage(m, 6)
	if m.Fighter == nil || m.Fighter.HP != 4 {
		t.Fatalf("rat should survive the first hit at 4 HP")
	}
	g.InflictDamage(m, 6)
	if m.Fighter != nil {
		t.Errorf("rat should die on the second hit")
	}
	if xp := g.Player().Fighter.XP; xp != 15 {
		t.Errorf("experience credited %d times", xp/15)
	}
}

func TestHealClamp(t *testing.T) {
	g := newTestGame()
	pf := g.Player().Fighter
	pf.HP -= 50
	g.Heal(g.Player(), 20)
	if pf.HP != g.MaxHP(g.Player())-30 {
		t.Errorf("bad heal: %d", pf.HP)
	}
	g.Heal(g.Player(), 1000)
	if pf.HP != g.MaxHP(g.Player()) {
		t.Errorf("heal exceeded maximum: %d/%d", pf.HP, g.MaxHP(g.Player()))
	}
}

func TestAttackStats(t *testing.T) {
	g := newTestGame()
	m := NewMonster("troll", 'T', ColorGreen, 100000, 4, 8, 100, g.PP().Shift(1, 0))
	m.Fighter.HP = 100000
	g.Entities = append(g.Entities, m)
	for range 50 {
		g.Attack(g.Player(), m)
	}
	if g.Stats.Hits+g.Stats.Misses != 50 {
		t.Errorf("each bump-attack should count as a hit or a miss: %d+%d", g.Stats.Hits, g.Stats.Misses)
	}
	if g.Stats.Hurt != 0 || g.Stats.Damage != 0 {
		t.Errorf("player attacks recorded as received damage")
	}
}

func TestMonsterAttackStats(t *testing.T) {
	g := newTestGame()
	player := g.Player()
	player.Fighter.BaseMaxHP = 100000
	player.Fighter.HP = 100000
	m := NewMonster("orc", 'o', ColorGreen, 25, 2, 4, 35, g.PP().Shift(1, 0))
	g.Entities = append(g.Entities, m)
	for range 50 {
		g.Attack(m, player)
	}
	if got := g.MaxHP(player) - player.Fighter.HP; got != g.Stats.Damage {
		t.Errorf("recorded damage %d but lost %d HP", g.Stats.Damage, got)
	}
	if g.Stats.Hits != 0 || g.Stats.Misses != 0 {
		t.Errorf("monster attacks recorded as player bump-attacks")
	}
}

func TestPlayerDeath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	g := newTestGame()
	g.InflictDamage(g.Player(), 1000)
	if g.State != Dead {
		t.Errorf("player should be dead")
	}
	if g.Player().Rune != '%' {
		t.Errorf("dead player keeps its glyph")
	}
}
