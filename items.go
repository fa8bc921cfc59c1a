// This file handles consumable items, wearable equipment and the inventory.

package main

import (
	"codeberg.org/anaseto/gruid"
)

// InventorySize is the maximum number of carried items, one per letter slot.
const InventorySize = 26

// Healing and poison amounts.
const (
	HealAmountMin   = 10
	HealAmountMax   = 40
	PoisonAmountMin = 5
	PoisonAmountMax = 20
)

// ConsumableKind identifies the effect of a consumable item.
type ConsumableKind int

const (
	HealPotion ConsumableKind = iota
	PoisonPotion
	LightningScroll
	FireballScroll
	ConfusionScroll
)

// Consumable is the component of one-use items. The item is destroyed when
// its effect applies, and kept when the use is cancelled.
type Consumable struct {
	Kind ConsumableKind
}

// NeedsTarget reports whether using the consumable requires selecting a
// target first.
func (c *Consumable) NeedsTarget() bool {
	return c.Kind == FireballScroll || c.Kind == ConfusionScroll
}

// MinLore returns the lore required to use the consumable.
func (c *Consumable) MinLore() int {
	switch c.Kind {
	case LightningScroll:
		return 2
	case FireballScroll:
		return 3
	case ConfusionScroll:
		return 1
	default:
		return 0
	}
}

// Slot represents an equipment slot.
type Slot int

const (
	SlotMainHand Slot = iota
	SlotOffHand
	SlotHead
	SlotBody
	SlotRing
)

func (s Slot) String() string {
	switch s {
	case SlotMainHand:
		return "right hand"
	case SlotOffHand:
		return "left hand"
	case SlotHead:
		return "head"
	case SlotBody:
		return "body"
	default:
		return "right ring finger"
	}
}

// Wearable is the component of equippable items. Its stat fields are bonuses
// added to the wearer's base stats while equipped.
type Wearable struct {
	Slot     Slot
	Power    int
	Defense  int
	Lore     int
	MaxHP    int
	MinLevel int // character level required to equip
	Equipped bool
}

// NewPotion returns a new potion entity at p. Potions all look the same:
// which ones are poisoned shows only on drinking.
func NewPotion(kind ConsumableKind, p gruid.Point) *Entity {
	return &Entity{
		Name:          "violet potion",
		Rune:          '!',
		Color:         ColorMagenta,
		P:             p,
		AlwaysVisible: true,
		Consumable:    &Consumable{Kind: kind},
	}
}

// NewScroll returns a new scroll entity at p.
func NewScroll(kind ConsumableKind, name string, p gruid.Point) *Entity {
	return &Entity{
		Name:          name,
		Rune:          '#',
		Color:         ColorYellow,
		P:             p,
		AlwaysVisible: true,
		Consumable:    &Consumable{Kind: kind},
	}
}

// NewWearable returns a new equippable entity at p.
func NewWearable(name string, r rune, color gruid.Color, w Wearable, p gruid.Point) *Entity {
	return &Entity{
		Name:          name,
		Rune:          r,
		Color:         color,
		P:             p,
		AlwaysVisible: true,
		Wearable:      &w,
	}
}

// PickUp picks up an item lying at the player's position, if any. A wearable
// picked up for an empty slot is equipped right away.
func (g *Game) PickUp() {
	for i, e := range g.Entities {
		if e.P != g.PP() || !e.IsItem() {
			continue
		}
		if len(g.Inventory) >= InventorySize {
			g.LogfStyled("Your inventory is full, cannot pick up %s.", logCritic, e.Name)
			return
		}
		g.RemoveEntity(i)
		e.P = InvalidPos
		g.Inventory = append(g.Inventory, e)
		g.LogfStyled("You picked up a %s!", logNotable, e.Name)
		if e.Wearable != nil && g.EquippedInSlot(e.Wearable.Slot) == nil {
			g.Equip(e)
		}
		return
	}
	g.Log("There is nothing here to pick up.")
}

// Drop removes inventory item i from the inventory and puts it at the
// player's position, removing it from its slot first if it was equipped.
func (g *Game) Drop(i int) {
	e := g.Inventory[i]
	if e.Wearable != nil {
		g.Dequip(e)
	}
	g.Inventory = append(g.Inventory[:i], g.Inventory[i+1:]...)
	e.P = g.PP()
	g.Entities = append(g.Entities, e)
	g.Logf("You dropped a %s.", e.Name)
}

// EquippedInSlot returns the inventory item currently equipped in the given
// slot, or nil if the slot is free.
func (g *Game) EquippedInSlot(s Slot) *Entity {
	for _, e := range g.Inventory {
		if e.Wearable != nil && e.Wearable.Slot == s && e.Wearable.Equipped {
			return e
		}
	}
	return nil
}

// ToggleEquip equips a wearable inventory item, or removes it if already
// equipped.
func (g *Game) ToggleEquip(e *Entity) {
	if e.Wearable.Equipped {
		g.Dequip(e)
	} else {
		g.Equip(e)
	}
}

// Equip wears an inventory item, removing any previous occupant of its
// slot. Equipping requires a sufficient character level.
func (g *Game) Equip(e *Entity) {
	w := e.Wearable
	if g.Level < w.MinLevel {
		g.LogfStyled("Equipping the %s requires you to be level %d.", logCritic, e.Name, w.MinLevel)
		return
	}
	if prev := g.EquippedInSlot(w.Slot); prev != nil {
		g.Dequip(prev)
	}
	w.Equipped = true
	g.LogfStyled("Equipped %s on %s.", logNotable, e.Name, w.Slot)
}

// Dequip removes an equipped inventory item from its slot.
func (g *Game) Dequip(e *Entity) {
	if !e.Wearable.Equipped {
		return
	}
	e.Wearable.Equipped = false
	g.Logf("Removed %s from %s.", e.Name, e.Wearable.Slot)
}

// UseItem uses inventory item i: wearables toggle their equipped state,
// consumables apply their effect and are destroyed unless the use was
// cancelled. Items whose effect needs a target are handled by the targeting
// mode instead.
func (g *Game) UseItem(i int) {
	e := g.Inventory[i]
	switch {
	case e.Wearable != nil:
		g.ToggleEquip(e)
	case e.Consumable != nil:
		if g.useConsumable(e.Consumable) {
			switch e.Consumable.Kind {
			case HealPotion, PoisonPotion:
				g.Stats.Quaffed++
			default:
				g.Stats.Read++
			}
			g.Inventory = append(g.Inventory[:i], g.Inventory[i+1:]...)
		}
	default:
		g.Logf("The %s cannot be used.", e.Name)
	}
}

// useConsumable applies the effect of an untargeted consumable and reports
// whether the item was consumed.
func (g *Game) useConsumable(c *Consumable) bool {
	if g.Lore(g.Player()) < c.MinLore() {
		g.LogStyled("You are not learned enough to cast this spell.", logCritic)
		return false
	}
	switch c.Kind {
	case HealPotion:
		return g.drinkHealPotion()
	case PoisonPotion:
		return g.drinkPoisonPotion()
	case LightningScroll:
		return g.castLightning()
	}
	return false
}

func (g *Game) drinkHealPotion() bool {
	player := g.Player()
	if player.Fighter.HP == g.MaxHP(player) {
		g.LogStyled("You are already at full health.", logCritic)
		return false
	}
	g.LogStyled("Your wounds start to feel better!", logSpecial)
	g.Heal(player, g.RandRange(HealAmountMin, HealAmountMax))
	return true
}

func (g *Game) drinkPoisonPotion() bool {
	amount := g.RandRange(PoisonAmountMin, PoisonAmountMax)
	g.LogfStyled("The potion was poisoned, you take %d poison damage!", logCritic, amount)
	// TODO: this heals instead of damaging; decide whether poison should
	// actually hurt before changing the balance.
	g.Heal(g.Player(), amount)
	return true
}

func (g *Game) castLightning() bool {
	m := g.ClosestMonster(LightningRange)
	if m == nil {
		g.LogStyled("No enemy is close enough to strike.", logCritic)
		return false
	}
	g.LogfStyled("A lightning bolt strikes the %s with a loud thunder! The damage is %d hit points.", logSpecial, m.Name, LightningDamage)
	g.InflictDamage(m, LightningDamage)
	return true
}

// CastFireball burns every fighter within the fireball's radius around p,
// the player included, and consumes inventory item i.
func (g *Game) CastFireball(p gruid.Point, i int) {
	g.LogfStyled("The fireball explodes, burning everything within %d tiles!", logNotable, FireballRadius)
	for _, e := range g.Entities {
		if e.Fighter != nil && Distance(e.P, p) <= FireballRadius {
			g.LogfStyled("The %s gets burned for %d hit points.", logNotable, e.Name, FireballDamage)
			g.InflictDamage(e, FireballDamage)
		}
	}
	g.Stats.Read++
	g.Inventory = append(g.Inventory[:i], g.Inventory[i+1:]...)
}

// CastConfusion wraps the behavior of the targeted monster so that it
// stumbles around for a while, and consumes inventory item i.
func (g *Game) CastConfusion(m *Entity, i int) {
	m.Behavior = &Confused{Prev: m.Behavior, Turns: ConfuseTurns}
	g.LogfStyled("The eyes of the %s look vacant, as it starts to stumble around!", logSpecial, m.Name)
	g.Stats.Read++
	g.Inventory = append(g.Inventory[:i], g.Inventory[i+1:]...)
}

// ClosestMonster returns the closest living monster in view within the given
// range, or nil if there is none.
func (g *Game) ClosestMonster(maxRange int) *Entity {
	var closest *Entity
	dist := float64(maxRange + 1)
	for _, e := range g.Entities[1:] {
		if e.Fighter == nil || !g.InFOV(e.P) {
			continue
		}
		if d := Distance(g.PP(), e.P); d < dist {
			closest = e
			dist = d
		}
	}
	return closest
}
