package main

import (
	"testing"
)

func TestHealPotion(t *testing.T) {
	g := newTestGame()
	pf := g.Player().Fighter
	g.Inventory = append(g.Inventory, NewPotion(HealPotion, InvalidPos))
	i := len(g.Inventory) - 1
	g.UseItem(i)
	if len(g.Inventory) != i+1 {
		t.Errorf("drinking at full health should not consume the potion")
	}
	pf.HP -= 50
	g.UseItem(i)
	if len(g.Inventory) != i {
		t.Errorf("potion not consumed")
	}
	if pf.HP <= g.MaxHP(g.Player())-50 {
		t.Errorf("potion did not heal: %d", pf.HP)
	}
	if g.Stats.Quaffed != 1 {
		t.Errorf("drink not recorded: %d", g.Stats.Quaffed)
	}
}

func TestPoisonPotion(t *testing.T) {
	g := newTestGame()
	pf := g.Player().Fighter
	pf.HP -= 50
	hp := pf.HP
	g.Inventory = append(g.Inventory, NewPotion(PoisonPotion, InvalidPos))
	i := len(g.Inventory) - 1
	g.UseItem(i)
	if len(g.Inventory) != i {
		t.Errorf("potion not consumed")
	}
	if pf.HP <= hp {
		t.Errorf("poisoned potion should heal for now: %d -> %d", hp, pf.HP)
	}
	if g.Stats.Quaffed != 1 {
		t.Errorf("drink not recorded: %d", g.Stats.Quaffed)
	}
}

func TestLightningScrollLoreGate(t *testing.T) {
	g := newTestGame()
	g.Inventory = append(g.Inventory, NewScroll(LightningScroll, "scroll of lightning bolt", InvalidPos))
	i := len(g.Inventory) - 1
	g.UseItem(i)
	if len(g.Inventory) != i+1 {
		t.Errorf("scroll consumed without the required lore")
	}
	if g.Stats.Read != 0 {
		t.Errorf("gated cast recorded as a read scroll")
	}
}

func TestLightningScroll(t *testing.T) {
	g := newTestGame()
	g.Player().Fighter.BaseLore = 2
	g.Inventory = append(g.Inventory, NewScroll(LightningScroll, "scroll of lightning bolt", InvalidPos))
	i := len(g.Inventory) - 1
	g.UseItem(i)
	if len(g.Inventory) != i+1 {
		t.Errorf("scroll consumed with no enemy in sight")
	}
	m := NewMonster("orc", 'o', ColorGreen, 25, 2, 4, 35, g.PP().Shift(2, 0))
	g.Entities = append(g.Entities, m)
	g.UpdateFOV()
	g.UseItem(i)
	if len(g.Inventory) != i {
		t.Errorf("scroll not consumed")
	}
	if m.Fighter != nil {
		t.Errorf("orc survived a %d damage bolt with 25 HP", LightningDamage)
	}
	if g.Stats.Read != 1 {
		t.Errorf("read not recorded: %d", g.Stats.Read)
	}
}

func TestCastFireball(t *testing.T) {
	g := newTestGame()
	player := g.Player()
	player.Fighter.BaseMaxHP = 1000
	player.Fighter.HP = 1000
	m := NewMonster("troll", 'T', ColorGreen, 40, 4, 8, 100, g.PP().Shift(2, 0))
	g.Entities = append(g.Entities, m)
	g.Inventory = append(g.Inventory, NewScroll(FireballScroll, "scroll of fireball", InvalidPos))
	i := len(g.Inventory) - 1
	g.CastFireball(g.PP().Shift(1, 0), i)
	if len(g.Inventory) != i {
		t.Errorf("scroll not consumed")
	}
	// The explosion burns the caster too.
	if player.Fighter.HP != 1000-FireballDamage {
		t.Errorf("player not burned: %d", player.Fighter.HP)
	}
	if m.Fighter.HP != 40-FireballDamage {
		t.Errorf("troll not burned: %d", m.Fighter.HP)
	}
}

func TestCastConfusion(t *testing.T) {
	g := newTestGame()
	m := NewMonster("orc", 'o', ColorGreen, 25, 2, 4, 35, g.PP().Shift(3, 0))
	g.Entities = append(g.Entities, m)
	g.Inventory = append(g.Inventory, NewScroll(ConfusionScroll, "scroll of confusion", InvalidPos))
	i := len(g.Inventory) - 1
	g.CastConfusion(m, i)
	if len(g.Inventory) != i {
		t.Errorf("scroll not consumed")
	}
	c, ok := m.Behavior.(*Confused)
	if !ok {
		t.Fatalf("monster not confused: %T", m.Behavior)
	}
	if c.Turns != ConfuseTurns {
		t.Errorf("bad confusion duration: %d", c.Turns)
	}
	for range ConfuseTurns + 1 {
		m.Behavior.Act(g, m)
	}
	if _, ok := m.Behavior.(*Chase); !ok {
		t.Errorf("confusion did not wear off: %T", m.Behavior)
	}
}

func TestPickUpAndDrop(t *testing.T) {
	g := newTestGame()
	n := len(g.Inventory)
	potion := NewPotion(HealPotion, g.PP())
	g.Entities = append(g.Entities, potion)
	g.PickUp()
	if len(g.Inventory) != n+1 || g.ItemAt(g.PP()) != nil {
		t.Errorf("potion not picked up")
	}
	if potion.P != InvalidPos {
		t.Errorf("carried item keeps a map position: %v", potion.P)
	}
	g.Drop(len(g.Inventory) - 1)
	if len(g.Inventory) != n || g.ItemAt(g.PP()) != potion {
		t.Errorf("potion not dropped")
	}
}

func TestPickUpEquipsEmptySlot(t *testing.T) {
	g := newTestGame()
	skullcap := NewWearable("leather skullcap", '&', ColorOrange, Wearable{Slot: SlotHead, Defense: 1, MinLevel: 1}, g.PP())
	g.Entities = append(g.Entities, skullcap)
	g.PickUp()
	if !skullcap.Wearable.Equipped {
		t.Errorf("picked up skullcap not equipped for an empty head slot")
	}
	sword := NewWearable("short sword", '&', ColorBlue, Wearable{Slot: SlotMainHand, Power: 2, MinLevel: 3}, g.PP())
	g.Entities = append(g.Entities, sword)
	g.PickUp()
	if sword.Wearable.Equipped {
		t.Errorf("picked up sword should not replace the equipped dagger")
	}
}

func TestEquipSwapsSlot(t *testing.T) {
	g := newTestGame()
	dagger := g.EquippedInSlot(SlotMainHand)
	if dagger == nil {
		t.Fatalf("no starting weapon")
	}
	broken := NewWearable("broken dagger", '&', ColorOrange, Wearable{Slot: SlotMainHand, MinLevel: 1}, InvalidPos)
	g.Inventory = append(g.Inventory, broken)
	g.ToggleEquip(broken)
	if dagger.Wearable.Equipped {
		t.Errorf("two weapons equipped in the same slot")
	}
	if g.EquippedInSlot(SlotMainHand) != broken {
		t.Errorf("broken dagger not equipped")
	}
	g.ToggleEquip(broken)
	if broken.Wearable.Equipped {
		t.Errorf("toggle did not remove the equipped weapon")
	}
}

func TestDropEquipped(t *testing.T) {
	g := newTestGame()
	dagger := g.EquippedInSlot(SlotMainHand)
	for i, e := range g.Inventory {
		if e == dagger {
			g.Drop(i)
		}
	}
	if dagger.Wearable.Equipped {
		t.Errorf("dropped weapon still equipped")
	}
	if g.ItemAt(g.PP()) != dagger {
		t.Errorf("dropped weapon not on the ground")
	}
}

func TestInventoryFull(t *testing.T) {
	g := newTestGame()
	for len(g.Inventory) < InventorySize {
		g.Inventory = append(g.Inventory, NewPotion(HealPotion, InvalidPos))
	}
	potion := NewPotion(HealPotion, g.PP())
	g.Entities = append(g.Entities, potion)
	g.PickUp()
	if len(g.Inventory) != InventorySize {
		t.Errorf("inventory exceeded %d items", InventorySize)
	}
	if g.ItemAt(g.PP()) != potion {
		t.Errorf("potion vanished on failed pickup")
	}
}
