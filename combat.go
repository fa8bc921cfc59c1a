// This file handles attack resolution, damage and death.

package main

// Spell and combat effect constants.
const (
	LightningDamage = 40
	LightningRange  = 5
	ConfuseRange    = 8
	ConfuseTurns    = 10
	FireballRadius  = 3
	FireballDamage  = 25
)

// Fighter is the component of entities that can deal and take damage. For
// monsters, XP is the experience value credited to the player on the kill;
// for the player it accumulates earned experience.
type Fighter struct {
	HP          int
	BaseMaxHP   int
	BasePower   int
	BaseDefense int
	BaseLore    int
	XP          int
}

// equipBonuses sums the stat bonuses of all equipped inventory items. Only
// the player carries equipment.
func (g *Game) equipBonuses(e *Entity) (b Wearable) {
	if e != g.Player() {
		return b
	}
	for _, it := range g.Inventory {
		if it.Wearable != nil && it.Wearable.Equipped {
			b.Power += it.Wearable.Power
			b.Defense += it.Wearable.Defense
			b.Lore += it.Wearable.Lore
			b.MaxHP += it.Wearable.MaxHP
		}
	}
	return b
}

// MaxHP returns the effective maximum hit points of an entity, equipment
// included.
func (g *Game) MaxHP(e *Entity) int {
	return e.Fighter.BaseMaxHP + g.equipBonuses(e).MaxHP
}

// Power returns the effective attack power of an entity, equipment included.
func (g *Game) Power(e *Entity) int {
	return e.Fighter.BasePower + g.equipBonuses(e).Power
}

// Defense returns the effective defense of an entity, equipment included.
func (g *Game) Defense(e *Entity) int {
	return e.Fighter.BaseDefense + g.equipBonuses(e).Defense
}

// Lore returns the effective lore of an entity, equipment included.
func (g *Game) Lore(e *Entity) int {
	return e.Fighter.BaseLore + g.equipBonuses(e).Lore
}

// Attack makes att strike target: an opposed d20 roll decides whether the
// blow lands, a d4 roll decides the damage, and a high third roll doubles
// it. A blow lands only if both the hit and the damage rolls come out
// positive.
func (g *Game) Attack(att, target *Entity) {
	hit := g.Roll(20) + g.Power(att) - (g.Roll(20) + g.Defense(target))
	damage := g.Roll(4) + g.Power(att) - g.Defense(target)
	crit := g.Roll(20) > 18
	if hit <= 0 || damage <= 0 {
		if att == g.Player() {
			g.Stats.Misses++
		}
		g.Logf("%s attacks %s but it has no effect!", UpperFirst(att.Name), target.Name)
		return
	}
	if att == g.Player() {
		g.Stats.Hits++
	}
	if crit {
		damage *= 2
		g.LogfStyled("%s critically wounds %s for %d hit points.", logCritic, UpperFirst(att.Name), target.Name, damage)
	} else {
		g.Logf("%s attacks %s for %d hit points.", UpperFirst(att.Name), target.Name, damage)
	}
	if target == g.Player() {
		g.Stats.Hurt++
		g.Stats.Damage += damage
	}
	g.InflictDamage(target, damage)
}

// InflictDamage removes hit points from an entity and handles death.
// Monster kills credit their experience value to the player, whatever the
// damage source.
func (g *Game) InflictDamage(e *Entity, damage int) {
	if damage <= 0 || e.Fighter == nil {
		return
	}
	e.Fighter.HP -= damage
	if e.Fighter.HP > 0 {
		return
	}
	if e == g.Player() {
		g.PlayerDeath()
		return
	}
	xp := e.Fighter.XP
	g.MonsterDeath(e)
	g.Player().Fighter.XP += xp
}

// Heal restores hit points, without exceeding the effective maximum.
func (g *Game) Heal(e *Entity, amount int) {
	e.Fighter.HP += amount
	if mhp := g.MaxHP(e); e.Fighter.HP > mhp {
		e.Fighter.HP = mhp
	}
}

// MonsterDeath turns a dead monster into harmless remains.
func (g *Game) MonsterDeath(e *Entity) {
	g.Stats.Death(e.Name)
	g.LogfStyled("The %s is dead! You gain %d experience.", logNotable, e.Name, e.Fighter.XP)
	e.Rune = '%'
	e.Color = ColorCorpse
	e.Blocks = false
	e.Fighter = nil
	e.Behavior = nil
	e.Name = "remains of " + e.Name
}

// PlayerDeath ends the game: the session is over and the save file is
// removed.
func (g *Game) PlayerDeath() {
	g.LogStyled("You died!", logCritic)
	g.State = Dead
	p := g.Player()
	p.Rune = '%'
	p.Color = ColorCorpse
	RemoveDataFile("save")
}
