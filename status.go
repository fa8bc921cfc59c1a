package main

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/ui"
)

// gameStatus represents the game's status bar and relevant data.
type gameStatus struct {
	menu  *ui.Menu
	desc  *ui.Label
	focus bool
}

// statusEntry represents the various kinds of entries in the status bar.
type statusEntry int

const (
	statusDepth statusEntry = iota
	statusTurns
	statusMenu
	statusHP
	statusAttack
	statusDefense
	statusLore
	statusLevel
)

func (md *model) updateStatus() {
	g := md.g
	var entries []ui.MenuEntry

	stt := ui.StyledText{}.WithMarkups(Markups)

	// Dungeon depth.
	depth := fmt.Sprintf(" D:%d ", g.Map.Depth)
	if g.Map.Depth == HomeDepth {
		depth = " D:@Ghome@N "
	}
	entries = append(entries, ui.MenuEntry{Text: stt.WithText(depth), Disabled: true})

	// Turns.
	entries = append(entries, ui.MenuEntry{Text: stt.WithTextf("T:%d ", g.Turn), Disabled: true})

	// Menu button.
	if md.mode == modeMenu && md.menu.mode == modeGameMenu {
		entries = append(entries, ui.MenuEntry{Text: stt.WithText("@Y[M]@N")})
	} else {
		entries = append(entries, ui.MenuEntry{Text: stt.WithText("[M]")})
	}

	// HP
	player := g.Player()
	pf := player.Fighter
	maxhp := g.MaxHP(player)
	entries = append(entries, ui.MenuEntry{
		Text:     stt.WithTextf(" HP:@%c%d/%d@N ", statusHPColor(pf.HP, maxhp), pf.HP, maxhp),
		Disabled: true})

	// attack
	entries = append(entries, ui.MenuEntry{
		Text:     stt.WithTextf("A:%d ", g.Power(player)),
		Disabled: true})

	// defense
	entries = append(entries, ui.MenuEntry{
		Text:     stt.WithTextf("D:%d ", g.Defense(player)),
		Disabled: true})

	// lore
	entries = append(entries, ui.MenuEntry{
		Text:     stt.WithTextf("Lo:%d ", g.Lore(player)),
		Disabled: true})

	// character level and experience
	entries = append(entries, ui.MenuEntry{
		Text:     stt.WithTextf("XL:%d(%d) ", g.Level, pf.XP),
		Disabled: true})

	if g.State == Dead {
		entries = append(entries, ui.MenuEntry{
			Text:     stt.WithText("@RDead@N "),
			Disabled: true})
	} else {
		if it := g.ItemAt(g.PP()); it != nil {
			entries = append(entries, ui.MenuEntry{
				Text:     stt.WithTextf("%c ", it.Rune).WithStyle(gruid.Style{Fg: it.Color, Attrs: AttrInMap}),
				Disabled: true})
		}
		if md.targ.kb {
			entries = append(entries, ui.MenuEntry{
				Text:     stt.WithText("@C[Examine]@N "),
				Disabled: true})
		}
	}

	md.status.menu.SetEntries(entries)
}

// statusHPColor returns the markup color rune for the given hit points.
func statusHPColor(hp, maxhp int) rune {
	switch {
	case hp <= maxhp/3:
		return 'O'
	case hp <= 3*maxhp/4:
		return 'Y'
	default:
		return 'G'
	}
}
