package main

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/ui"
)

// menu represents menus used in the game.
type menu struct {
	main *ui.Menu // typical main menu (game, settings, inventory)
	mode menuMode
}

// menuMode represents the available menu modes
type menuMode int

const (
	modeInventory menuMode = iota
	modeDrop
	modeLevelUp
	modeConfigMenu
	modeGameMenu
)

func (md *model) updateMenu(msg gruid.Msg) {
	md.menu.main.Update(msg)
	switch act := md.menu.main.Action(); act {
	case ui.MenuQuit:
		if md.menu.mode == modeLevelUp {
			// Leveling up cannot be postponed.
			break
		}
		md.mode = modeNormal
	case ui.MenuMove, ui.MenuInvoke:
		idx := md.menu.main.ActiveInvokable()
		if idx < 0 {
			break
		}
		switch md.menu.mode {
		case modeGameMenu, modeConfigMenu:
			md.updateMenuActionDesc(idx)
			if act != ui.MenuInvoke {
				break
			}
			md.action = md.menuActions[idx]
		case modeInventory:
			md.updateItemDesc(md.g.Inventory[idx])
			if act != ui.MenuInvoke {
				break
			}
			md.action = ActionUseItem{Idx: idx}
		case modeDrop:
			md.updateItemDesc(md.g.Inventory[idx])
			if act != ui.MenuInvoke {
				break
			}
			md.action = ActionDropItem{Idx: idx}
		case modeLevelUp:
			if act != ui.MenuInvoke {
				break
			}
			md.action = ActionLevelUpChoice{Idx: idx}
		}
	}
}

// updateMenuActionDesc updates the description label for the menu action of
// given index in the current menu.
func (md *model) updateMenuActionDesc(idx int) {
	if idx < 0 || idx >= len(md.menuActions) {
		md.desc.Content = ui.StyledText{}
		return
	}
	a := md.menuActions[idx]
	if ad, ok := a.(ActionDesc); ok {
		md.updateActionDesc(ad)
	} else {
		md.desc.Content = ui.StyledText{}
	}
}

// openInventory opens the inventory menu, either for using an item or for
// dropping one.
func (md *model) openInventory(m menuMode) (gruid.Effect, bool) {
	g := md.g
	if len(g.Inventory) == 0 {
		g.Log("Your inventory is empty.")
		return nil, false
	}
	title := "Inventory (use)"
	if m == modeDrop {
		title = "Inventory (drop)"
	}
	entries := []ui.MenuEntry{}
	r := 'a'
	for _, e := range g.Inventory {
		name := e.Name
		if e.Wearable != nil && e.Wearable.Equipped {
			name = fmt.Sprintf("%s (on %s)", name, e.Wearable.Slot)
		}
		entries = append(entries, ui.MenuEntry{
			Text: ui.Textf("%c - %s", r, name),
			Keys: []gruid.Key{gruid.Key(r)},
		})
		r = nextRuneKey(r)
	}
	altBgEntries(entries)
	md.menu.main.SetBox(&ui.Box{Title: ui.Text(title).WithStyle(gruid.Style{}.WithFg(ColorYellow))})
	md.menu.main.SetEntries(entries)
	md.menu.main.SetActiveInvokable(0)
	md.updateItemDesc(g.Inventory[0])
	md.mode = modeMenu
	md.menu.mode = m
	return nil, false
}

// openLevelUpMenu opens the modal stat increase menu shown when the player
// gains a character level.
func (md *model) openLevelUpMenu() {
	g := md.g
	pf := g.Player().Fighter
	choices := []string{
		fmt.Sprintf("Constitution (+20 HP, from %d)", pf.BaseMaxHP),
		fmt.Sprintf("Strength (+1 attack, from %d)", pf.BasePower),
		fmt.Sprintf("Agility (+1 defense, from %d)", pf.BaseDefense),
		fmt.Sprintf("Lore (+1 lore, from %d)", pf.BaseLore),
	}
	entries := []ui.MenuEntry{}
	for i, c := range choices {
		r := rune('a' + i)
		entries = append(entries, ui.MenuEntry{
			Text: ui.Textf("%c - %s", r, c),
			Keys: []gruid.Key{gruid.Key(r)},
		})
	}
	altBgEntries(entries)
	title := fmt.Sprintf("Level up! Welcome to level %d", g.Level)
	md.menu.main.SetBox(&ui.Box{Title: ui.Text(title).WithStyle(gruid.Style{}.WithFg(ColorYellow))})
	md.menu.main.SetEntries(entries)
	md.menu.main.SetActiveInvokable(0)
	md.desc.Content = ui.StyledText{}
	md.mode = modeMenu
	md.menu.mode = modeLevelUp
}

// updateItemDesc updates the description label for the given inventory item.
func (md *model) updateItemDesc(e *Entity) {
	l := md.desc
	stt := ui.StyledText{}.WithMarkups(Markups)
	l.Box = &ui.Box{Title: ui.Text(UpperFirst(e.Name))}
	l.Content = stt.WithText(md.g.ItemDesc(e)).Format(UIWidth/2 - 2)
}

// ItemDesc returns a short description of the given item entity.
func (g *Game) ItemDesc(e *Entity) string {
	if c := e.Consumable; c != nil {
		switch c.Kind {
		case HealPotion, PoisonPotion:
			// Both potions look the same on purpose.
			return "A small vial filled with a swirling violet liquid. Drinking it could do you a lot of good. Or maybe not."
		case LightningScroll:
			return fmt.Sprintf("A scroll that strikes the closest foe in view with a lightning bolt for %d damage. Requires %d lore.", LightningDamage, c.MinLore())
		case FireballScroll:
			return fmt.Sprintf("A scroll that makes a fiery explosion at a target tile, burning everything within %d tiles for %d damage. Requires %d lore.", FireballRadius, FireballDamage, c.MinLore())
		case ConfusionScroll:
			return fmt.Sprintf("A scroll that confuses a monster in view for %d turns, making it stumble around randomly. Requires %d lore.", ConfuseTurns, c.MinLore())
		}
	}
	if w := e.Wearable; w != nil {
		s := fmt.Sprintf("A piece of equipment worn on the %s.", w.Slot)
		if w.Power != 0 {
			s += fmt.Sprintf(" Attack %+d.", w.Power)
		}
		if w.Defense != 0 {
			s += fmt.Sprintf(" Defense %+d.", w.Defense)
		}
		if w.MaxHP != 0 {
			s += fmt.Sprintf(" Maximum HP %+d.", w.MaxHP)
		}
		if w.Lore != 0 {
			s += fmt.Sprintf(" Lore %+d.", w.Lore)
		}
		if w.MinLevel > 1 {
			s += fmt.Sprintf(" Requires level %d.", w.MinLevel)
		}
		return s
	}
	return "A somewhat mysterious item."
}
