// This file defines most actions available in the game.

package main

import (
	"log"
	"runtime"
	"time"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/ui"
)

// Action represents types that describe and handle a game action, often the
// last UI Action performed.
type Action interface {
	// Handle processes an action and returns possibly an effect along with
	// a boolean that reports whether the action ends the player's game
	// turn.
	Handle(*model) (gruid.Effect, bool)
}

// ActionDesc is a named action with a description.
type ActionDesc interface {
	Action
	String() string
	Desc() string
}

// updateActionDesc updates the description label for the given described action.
func (md *model) updateActionDesc(a ActionDesc) {
	l := md.desc
	stt := ui.StyledText{}.WithMarkups(Markups)
	l.Box = &ui.Box{Title: ui.Text(a.String())}
	l.Content = stt.WithText(a.Desc()).Format(UIWidth/2 - 2)
}

// ActionNone does nothing.
type ActionNone struct{}

func (a ActionNone) Handle(md *model) (gruid.Effect, bool) {
	return nil, false
}

// ActionWait waits for a turn.
type ActionWait struct{}

func (a ActionWait) Handle(md *model) (gruid.Effect, bool) {
	return nil, true
}

func (a ActionWait) String() string {
	return "Wait a turn"
}

// ActionBump moves the player to a given position and updates FOV
// information, or attacks if there is a monster.
type ActionBump struct {
	Delta gruid.Point
}

func (a ActionBump) Handle(md *model) (eff gruid.Effect, done bool) {
	return nil, md.g.PlayerBump(a.Delta)
}

// ActionTarget confirms the current target: it casts the pending spell at
// it, or starts travelling to it.
type ActionTarget struct{}

func (a ActionTarget) Handle(md *model) (gruid.Effect, bool) {
	if md.targ.spell != nil {
		return nil, md.castSpellAt(md.targ.p)
	}
	tp := md.targ.p
	if tp == InvalidPos {
		return nil, false
	}
	g := md.g
	pp := g.PP()
	if tp == pp {
		// wait a turn
		return nil, true
	}
	path := md.auto.path
	if len(path) <= 1 || path[len(path)-1] != tp || path[0] != pp {
		path = g.PlayerPath(pp, tp)
	}
	if len(path) <= 1 {
		return nil, false
	}
	danger := g.DangerInFOV()
	next := path[1]
	bump := ActionBump{Delta: next.Sub(pp)}
	eff, done := bump.Handle(md)
	if !done {
		return eff, false
	}
	if g.PP() == next {
		md.auto.path = path[1:]
	}
	if danger {
		// do not start auto-travel if there was a foe in view.
		return eff, true
	}
	md.targ.CancelExamine()
	return md.UpdateAutoMode(eff, autoTravel), true
}

func (a ActionTarget) String() string {
	return "Travel to target"
}

// castSpellAt casts the pending spell at p. It reports whether the cast
// consumed a turn (spell casting is a free action, so it never does).
func (md *model) castSpellAt(p gruid.Point) bool {
	g := md.g
	sp := md.targ.spell
	if p == InvalidPos {
		return false
	}
	if !g.InFOV(p) {
		g.Log("You cannot target a tile outside your field of view.")
		return false
	}
	switch sp.kind {
	case FireballScroll:
		g.CastFireball(p, sp.item)
	case ConfusionScroll:
		m := g.FighterAt(p)
		if m == nil {
			g.Log("There is no monster there to confuse.")
			return false
		}
		if Distance(g.PP(), p) > ConfuseRange {
			g.Log("That is too far away to target.")
			return false
		}
		g.CastConfusion(m, sp.item)
	}
	md.targ.CancelExamine()
	return false
}

// ActionCursorBump moves the cursor.
type ActionCursorBump struct {
	Delta gruid.Point
}

func (a ActionCursorBump) Handle(md *model) (gruid.Effect, bool) {
	np := md.targ.p.Add(a.Delta)
	md.Examine(np)
	return nil, false
}

// ActionCursorRun moves the cursor (fast).
type ActionCursorRun struct {
	Delta gruid.Point
}

func (a ActionCursorRun) Handle(md *model) (gruid.Effect, bool) {
	np := md.targ.p.Add(a.Delta.Mul(4))
	size := md.g.Map.Size()
	if np.X < 0 {
		np.X = 0
	}
	if np.X >= size.X {
		np.X = size.X - 1
	}
	if np.Y < 0 {
		np.Y = 0
	}
	if np.Y >= size.Y {
		np.Y = size.Y - 1
	}
	md.Examine(np)
	return nil, false
}

// ActionExamine examines a given map position (mouse).
type ActionExamine struct {
	Target gruid.Point
}

func (a ActionExamine) Handle(md *model) (gruid.Effect, bool) {
	p := a.Target
	if p.In(md.g.Map.Terrain.Range()) {
		md.Examine(p)
	} else if md.targ.spell == nil {
		md.targ.CancelExamine()
	}
	return nil, false
}

// ActionExamineModeToggle enters keyboard targeting mode, or leaves it. It
// also cancels any pending spell targeting.
type ActionExamineModeToggle struct{}

func (a ActionExamineModeToggle) Handle(md *model) (gruid.Effect, bool) {
	if md.targ.spell != nil {
		md.g.Log("Cancelled.")
		md.targ.CancelExamine()
		return nil, false
	}
	if !md.targ.kb {
		md.targ.kb = true
		md.Examine(md.g.PP())
		return nil, false
	}
	md.targ.CancelExamine()
	return nil, false
}

func (a ActionExamineModeToggle) String() string {
	return "Examine (keyboard mode)"
}

// ActionPickup picks up an item lying below the player.
type ActionPickup struct{}

func (a ActionPickup) Handle(md *model) (gruid.Effect, bool) {
	md.g.PickUp()
	return nil, false
}

func (a ActionPickup) String() string {
	return "Pick up item"
}

func (a ActionPickup) Desc() string {
	return "Picks up an item lying on the ground below you and puts it into your inventory. Equipment is worn right away if the matching slot is free."
}

// ActionInventory opens the inventory menu for using an item.
type ActionInventory struct{}

func (a ActionInventory) Handle(md *model) (gruid.Effect, bool) {
	return md.openInventory(modeInventory)
}

func (a ActionInventory) String() string {
	return "Use inventory item"
}

func (a ActionInventory) Desc() string {
	return "Shows your carried items. Selecting a potion or scroll uses it, while selecting a piece of equipment wears or removes it."
}

// ActionDrop opens the inventory menu for dropping an item.
type ActionDrop struct{}

func (a ActionDrop) Handle(md *model) (gruid.Effect, bool) {
	return md.openInventory(modeDrop)
}

func (a ActionDrop) String() string {
	return "Drop inventory item"
}

func (a ActionDrop) Desc() string {
	return "Shows your carried items. The selected item is dropped on the ground below you."
}

// ActionUseItem uses an inventory item.
type ActionUseItem struct {
	Idx int
}

func (a ActionUseItem) Handle(md *model) (gruid.Effect, bool) {
	md.mode = modeNormal
	g := md.g
	e := g.Inventory[a.Idx]
	if c := e.Consumable; c != nil && c.NeedsTarget() {
		if g.Lore(g.Player()) < c.MinLore() {
			g.LogStyled("You are not learned enough to cast this spell.", logCritic)
			return nil, false
		}
		md.targ.CancelExamine()
		md.targ.kb = true
		md.targ.spell = &spellTarget{item: a.Idx, kind: c.Kind}
		md.Examine(g.PP())
		g.LogStyled("Select a target with the cursor or mouse, then confirm with ENTER.", logConfirm)
		return nil, false
	}
	g.UseItem(a.Idx)
	return nil, false
}

// ActionDropItem drops an inventory item.
type ActionDropItem struct {
	Idx int
}

func (a ActionDropItem) Handle(md *model) (gruid.Effect, bool) {
	md.mode = modeNormal
	md.g.Drop(a.Idx)
	return nil, false
}

// ActionDescend takes the stairs down.
type ActionDescend struct{}

func (a ActionDescend) Handle(md *model) (gruid.Effect, bool) {
	g := md.g
	if g.Descend() {
		md.targ.CancelExamine()
		md.updateStatus()
	}
	return nil, false
}

func (a ActionDescend) String() string {
	return "Descend stairs"
}

// ActionAscend takes the stairs up.
type ActionAscend struct{}

func (a ActionAscend) Handle(md *model) (gruid.Effect, bool) {
	g := md.g
	if g.Ascend() {
		md.targ.CancelExamine()
		md.updateStatus()
	}
	return nil, false
}

func (a ActionAscend) String() string {
	return "Ascend stairs"
}

// ActionCharacter shows the character information sheet.
type ActionCharacter struct{}

func (a ActionCharacter) Handle(md *model) (gruid.Effect, bool) {
	md.characterSheet()
	return nil, false
}

func (a ActionCharacter) String() string {
	return "Character information"
}

func (a ActionCharacter) Desc() string {
	return "Shows your character level, experience, attributes and worn equipment."
}

// ActionMenu opens the main game menu.
type ActionMenu struct{}

// menuActions represents the various entries in the main menu: they should
// have a corresponding entry in menuKeys.
var menuActions = []Action{
	ActionInventory{},
	ActionDrop{},
	ActionCharacter{},
	ActionViewMessages{},
	ActionHelp{},
	ActionDump{},
	ActionConfig{},
	ActionSaveQuit{},
	ActionQuit{},
}

var menuKeys = []rune{'i', 'd', 'c', 'm', '?', '#', 'C', 'S', 'Q'}

func init() {
	if len(menuActions) != len(menuKeys) {
		panic("length mismatch between menuActions and menuKeys")
	}
}

func (a ActionMenu) Handle(md *model) (gruid.Effect, bool) {
	md.menuActions = menuActions
	hstyle := gruid.Style{}.WithFg(ColorCyan)
	entries := []ui.MenuEntry{}
	for i, it := range md.menuActions {
		r := menuKeys[i]
		switch r {
		case 'i':
			entries = append(entries, ui.MenuEntry{
				Text:     ui.Text("Gameplay Actions").WithStyle(hstyle),
				Disabled: true,
			})
		case 'c':
			entries = append(entries, ui.MenuEntry{
				Text:     ui.Text("Gameplay Info").WithStyle(hstyle),
				Disabled: true,
			})
		case 'C':
			entries = append(entries, ui.MenuEntry{
				Text:     ui.Text("Other Actions").WithStyle(hstyle),
				Disabled: true,
			})
		}
		entries = append(entries, ui.MenuEntry{
			Text: ui.Textf("%c - %s", r, it),
			Keys: []gruid.Key{gruid.Key(r)},
		})
	}
	altBgEntries(entries)
	md.menu.main.SetBox(&ui.Box{Title: ui.Text("Menu").WithStyle(gruid.Style{}.WithFg(ColorYellow))})
	md.menu.main.SetEntries(entries)
	md.menu.main.SetActiveInvokable(0)
	md.updateMenuActionDesc(0)
	md.mode = modeMenu
	md.menu.mode = modeGameMenu
	return nil, false
}

func (a ActionMenu) String() string {
	return "Menu"
}

// ActionConfig opens settings menu.
type ActionConfig struct{}

var configActions = []Action{
	ActionToggleDarkLight{},
}

var configKeys = []rune{'c', 't'}

func (a ActionConfig) Handle(md *model) (gruid.Effect, bool) {
	md.menuActions = configActions
	entries := []ui.MenuEntry{}
	for i, it := range md.menuActions {
		r := configKeys[i]
		entries = append(entries, ui.MenuEntry{
			Text: ui.Textf("%c - %s", r, it),
			Keys: []gruid.Key{gruid.Key(r)},
		})
	}
	altBgEntries(entries)
	md.menu.main.SetBox(&ui.Box{Title: ui.Text("Config").WithStyle(gruid.Style{}.WithFg(ColorYellow))})
	md.menu.main.SetEntries(entries)
	md.menu.main.SetActiveInvokable(0)
	md.updateMenuActionDesc(0)
	md.mode = modeMenu
	md.menu.mode = modeConfigMenu
	return nil, false
}

func (a ActionConfig) String() string {
	return "Configure settings"
}

func (a ActionConfig) Desc() string {
	return "Opens a configuration menu with various options."
}

// ActionToggleDarkLight toggles dark/light mode.
type ActionToggleDarkLight struct{}

func (a ActionToggleDarkLight) Handle(md *model) (gruid.Effect, bool) {
	GameConfig.DarkColors = !GameConfig.DarkColors
	err := SaveConfig()
	if err != nil {
		log.Printf("saving config: %v", err)
		md.g.Log(err.Error())
	}
	clearCache()
	eff := gruid.Cmd(func() gruid.Msg { return gruid.MsgScreen{} })
	md.mode = modeNormal
	return eff, false
}

func (a ActionToggleDarkLight) String() string {
	if GameConfig.DarkColors {
		return "Switch to light color theme"
	}
	return "Switch to dark color theme"
}

// ActionViewMessages opens the log message viewer.
type ActionViewMessages struct{}

func (a ActionViewMessages) Handle(md *model) (gruid.Effect, bool) {
	if len(md.pager.lines) > 0 {
		md.pager.lines = md.pager.lines[:len(md.pager.lines)-1]
	}
	for _, e := range md.g.Logs.Entries[len(md.pager.lines):] {
		md.pager.lines = append(md.pager.lines, md.pager.markup.WithText(e.MText))
	}
	md.pager.pg.SetLines(md.pager.lines)
	md.pager.pg.SetCursor(gruid.Point{X: 0, Y: len(md.pager.lines)})
	md.pager.pg.SetBox(&ui.Box{Title: ui.Text("Messages").WithStyle(gruid.Style{}.WithFg(ColorYellow))})
	md.mode = modePager
	md.pager.mode = modeLogs
	return nil, false
}

func (a ActionViewMessages) String() string {
	return "View messages"
}

func (a ActionViewMessages) Desc() string {
	return "Opens a pager with previous message logs. The pager supports page-up/page-down, mouse scrolling, and other basic less-like keybindings."
}

// ActionDump writes a dump with game statistics.
type ActionDump struct{}

func (a ActionDump) Handle(md *model) (gruid.Effect, bool) {
	if msg, err := md.g.WriteDump(); err != nil {
		md.g.LogfStyled("Error: %v.", logCritic, err)
	} else {
		md.g.Log(msg)
	}
	return nil, false
}

func (a ActionDump) String() string {
	return "Dump game statistics"
}

func (a ActionDump) Desc() string {
	if runtime.GOOS == "js" {
		return "Writes game statistics below."
	}
	return "Writes game statistics to a dump.txt file in the game’s data directory."
}

// ActionSaveQuit asks for quitting the game after saving.
type ActionSaveQuit struct{}

func (a ActionSaveQuit) Handle(md *model) (gruid.Effect, bool) {
	if err := md.g.Save(); err != nil {
		md.g.LogStyled("Error while saving game.", logCritic)
		return nil, false
	}
	md.mode = modeQuitting
	return gruid.End(), false
}

func (a ActionSaveQuit) String() string {
	return "Save and Quit"
}

func (a ActionSaveQuit) Desc() string {
	return "Saves current progress and quits the game. The next time you start the game, it will directly resume from here."
}

// ActionQuit asks for quitting the game, without saving.
type ActionQuit struct{}

func (a ActionQuit) Handle(md *model) (gruid.Effect, bool) {
	md.mode = modeQuitConfirmation
	md.g.LogStyled("Do you really want to quit without saving? [y/N]", logConfirm)
	return nil, false
}

func (a ActionQuit) String() string {
	return "Quit (without saving)"
}

func (a ActionQuit) Desc() string {
	return "Deletes any saved progress for current playthrough and quits the game."
}

// ActionQuitConfirm quits the game.
type ActionQuitConfirm struct {
	State confirm
}

func (a ActionQuitConfirm) Handle(md *model) (gruid.Effect, bool) {
	switch a.State {
	case confirmTrue:
		md.mode = modeQuitting
		err := RemoveSaveFile()
		if err != nil {
			log.Printf("Error removing save file: %v", err)
		}
		RemoveReplay()
		return gruid.End(), false
	case confirmFalse:
		md.g.Log("Keep playing, then.")
		md.mode = modeNormal
	}
	return nil, false
}

// ActionLevelUpChoice applies the chosen level-up stat increase.
type ActionLevelUpChoice struct {
	Idx int
}

func (a ActionLevelUpChoice) Handle(md *model) (gruid.Effect, bool) {
	g := md.g
	g.ApplyLevelUpChoice(a.Idx)
	if g.CanLevelUp() {
		g.LevelUp()
		md.openLevelUpMenu()
		return nil, false
	}
	md.mode = modeNormal
	return nil, false
}

// actionAuto handles automatic travel movement. It is triggered when
// receiving msgAuto messages. The value of those messages is used to ensure
// that we only use it on a specific turn, or discard it.
type actionAuto struct {
	msg msgAuto
}

type msgAuto int

func (a actionAuto) Handle(md *model) (gruid.Effect, bool) {
	g := md.g
	if int(a.msg) != g.Turn {
		return nil, false
	}
	if md.auto.mode != autoTravel {
		return nil, false
	}
	if !md.KeepTraveling() {
		md.auto.mode = noAuto
		return nil, false
	}
	next := md.auto.path[1]
	bump := ActionBump{Delta: next.Sub(g.PP())}
	eff, done := bump.Handle(md)
	if !done {
		md.auto.mode = noAuto
		return eff, false
	}
	if g.PP() == next {
		md.auto.path = md.auto.path[1:]
	}
	return md.UpdateAutoMode(eff, autoTravel), true
}

// travelStepDur is the delay between automatic travel steps.
const travelStepDur = 25 * time.Millisecond

func (md *model) autoCmd() gruid.Effect {
	n := md.g.Turn
	return gruid.Cmd(func() gruid.Msg {
		t := time.NewTimer(travelStepDur)
		<-t.C
		return msgAuto(n + 1)
	})
}

// ActionHelp shows the keybindings summary.
type ActionHelp struct{}

func (a ActionHelp) Handle(md *model) (gruid.Effect, bool) {
	md.KeysHelp()
	return nil, false
}

func (a ActionHelp) String() string {
	return "Help (keybindings)"
}

func (a ActionHelp) Desc() string {
	return "Shows a short one-page summary with the keybindings."
}

func (md *model) updateKeysDescription(title string, actions []string) {
	md.pager.mode = modeHelp
	md.mode = modePager
	md.pager.pg.SetBox(&ui.Box{Title: ui.Textf(" %s ", title).WithStyle(gruid.Style{}.WithFg(ColorYellow))})
	lines := []ui.StyledText{}
	for i := 0; i < len(actions)-1; i += 2 {
		stt := ui.StyledText{}
		if actions[i+1] != "" {
			stt = stt.WithTextf(" %-36s %s", actions[i], actions[i+1])
		} else {
			stt = stt.WithTextf(" %s ", actions[i]).WithStyle(gruid.Style{}.WithFg(ColorCyan))
		}
		if i%4 == 2 {
			stt = stt.WithStyle(stt.Style().WithBg(ColorBackgroundSecondary))
		}
		lines = append(lines, stt)
	}
	md.pager.pg.SetLines(lines)
	md.pager.pg.SetCursor(gruid.Point{X: 0, Y: 0})
}

func (md *model) KeysHelp() {
	entries := []string{
		"Basic Game Actions", "",
		"Move or Attack", "arrows or hjkl (diagonals: yubn)",
		"Wait a turn", "“.” or ENTER",
		"Pick up item", "g",
		"Use inventory item", "i",
		"Drop inventory item", "d",
		"Descend/Ascend stairs", "> & <",
		"Open menu", "SPACE or mouse right",
		"Close menu, inventory…", "SPACE or ESC or mouse left outside",
		"Advanced Game Actions", "",
		"Character information", "c",
		"View previous messages", "m",
		"Toggle keyboard examine mode", "x",
		"Travel (auto-move to destination)", "“.” or ENTER in keyboard examine mode",
		"Other Common Actions", "",
		"Save and Quit", "S",
		"Quit (without saving)", "Q",
	}
	md.updateKeysDescription("Keybindings", entries)
}

// characterSheet opens the pager with the character information sheet.
func (md *model) characterSheet() {
	g := md.g
	player := g.Player()
	pf := player.Fighter
	lines := []ui.StyledText{
		md.pager.markup.WithText("@CCharacter Information@N"),
		ui.Text(""),
		ui.Textf("Level: %d", g.Level),
		ui.Textf("Experience: %d", pf.XP),
		ui.Textf("Experience to level up: %d", g.LevelUpXP()),
		ui.Text(""),
		ui.Textf("Maximum HP: %d", g.MaxHP(player)),
		ui.Textf("Attack: %d", g.Power(player)),
		ui.Textf("Defense: %d", g.Defense(player)),
		ui.Textf("Lore: %d", g.Lore(player)),
		ui.Text(""),
		md.pager.markup.WithText("@CEquipment@N"),
	}
	worn := false
	for _, e := range g.Inventory {
		if e.Wearable != nil && e.Wearable.Equipped {
			lines = append(lines, ui.Textf("%s: %s", UpperFirst(e.Wearable.Slot.String()), e.Name))
			worn = true
		}
	}
	if !worn {
		lines = append(lines, ui.Text("You are wearing nothing."))
	}
	md.pager.pg.SetLines(lines)
	md.pager.pg.SetCursor(gruid.Point{X: 0, Y: 0})
	md.pager.pg.SetBox(&ui.Box{Title: ui.Text("Character").WithStyle(gruid.Style{}.WithFg(ColorYellow))})
	md.mode = modePager
	md.pager.mode = modeHelp
}

func nextRuneKey(r rune) rune {
	for {
		r++
		switch r {
		case 'h', 'l', 'j', 'k':
		default:
			return r
		}
	}
}

// altBgEntries updates entries to use alternate background color for entries
// of odd index.
func altBgEntries(entries []ui.MenuEntry) {
	for i := range entries {
		if i%2 == 1 {
			st := entries[i].Text.Style()
			entries[i].Text = entries[i].Text.WithStyle(st.WithBg(ColorBackgroundSecondary))
		}
	}
}
