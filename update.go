// This file defines the Update method for the model.

package main

import (
	"fmt"
	"log"
	"strings"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/ui"
)

// Update implements Update() for gruid.Model.
func (md *model) Update(msg gruid.Msg) gruid.Effect {
	if _, ok := msg.(gruid.MsgInit); ok {
		return md.init()
	}
	if _, ok := msg.(gruid.MsgQuit); ok {
		if md.mode != modeQuitting && md.g.State == Playing {
			// Save game before quitting.
			if err := md.g.Save(); err != nil {
				log.Printf("saving before quitting: %v", err)
			}
		}
		md.mode = modeQuitting
		return gruid.End()
	}
	if md.interrupt(msg) {
		md.auto.mode = noAuto
	}
	return md.update(msg)
}

func (md *model) interrupt(msg gruid.Msg) bool {
	switch msg := msg.(type) {
	case gruid.MsgKeyDown:
		return true
	case gruid.MsgMouse:
		return msg.Action != gruid.MouseMove && msg.Action != gruid.MouseRelease
	}
	return false
}

func (md *model) update(msg gruid.Msg) gruid.Effect {
	md.action = ActionNone{}
	switch md.mode {
	case modeLoadGame:
		switch msg := msg.(type) {
		case gruid.MsgKeyDown:
			md.updateStatus()
			md.mode = modeNormal
		case gruid.MsgMouse:
			if msg.Action != gruid.MouseMove && msg.Action != gruid.MouseRelease {
				md.updateStatus()
				md.mode = modeNormal
			}
		}
	case modeNormal:
		md.updateNormal(msg)
	case modePager:
		return md.updatePager(msg)
	case modeMenu:
		md.updateMenu(msg)
	case modeQuitConfirmation:
		st := md.updateConfirmation(msg)
		md.action = ActionQuitConfirm{State: st}
	case modeQuitting:
		// Do nothing.
		return nil
	case modeEnd:
		if md.more(msg) {
			md.gameEnded = true
			md.mode = modePager
			md.pager.mode = modeDump
			md.dump(md.g.WriteDump())
		}
	}
	eff, done := md.action.Handle(md)
	if done {
		md.endTurn()
		md.RefreshExamineInfo()
	}
	md.updateStatus()
	return eff
}

func (md *model) more(msg gruid.Msg) bool {
	switch msg := msg.(type) {
	case gruid.MsgKeyDown:
		switch msg.Key {
		case gruid.KeyEscape, gruid.KeySpace:
			return true
		}
	case gruid.MsgMouse:
		if msg.Action == gruid.MouseSecondary {
			return true
		}
	}
	return false
}

// confirm describes the possible results a confirmation update on message.
type confirm int

const (
	confirmTrue confirm = iota
	confirmFalse
	confirmPass
)

func (md *model) updateConfirmation(msg gruid.Msg) confirm {
	switch msg := msg.(type) {
	case gruid.MsgKeyDown:
		if msg.Key == "y" || msg.Key == "Y" {
			return confirmTrue
		}
		return confirmFalse
	case gruid.MsgMouse:
		if msg.Action == gruid.MouseSecondary {
			return confirmFalse
		}
	}
	return confirmPass
}

func (md *model) updateNormal(msg gruid.Msg) {
	switch msg := msg.(type) {
	case msgAuto:
		md.action = actionAuto{msg: msg}
	case gruid.MsgKeyDown:
		md.updateKeyDown(msg)
	case gruid.MsgMouse:
		md.updateMouse(msg)
	}
}

func (md *model) updateKeyDown(msg gruid.MsgKeyDown) {
	md.status.focus = false
	if !md.targ.kb && md.targ.p != InvalidPos {
		md.targ.CancelExamine()
	}
	a := md.keysNormal[msg.Key]
	if md.targ.kb {
		b := md.keysTarget[msg.Key]
		if b != nil {
			a = b
		} else if md.targ.spell != nil {
			// Only targeting keys while aiming a spell.
			return
		}
	}
	if msg.Mod&gruid.ModShift != 0 && !msg.Key.IsRune() {
		if b, ok := a.(ActionCursorBump); ok {
			a = ActionCursorRun(b)
		}
	}
	if a != nil {
		md.action = a
	}
}

func (md *model) updateMouse(msg gruid.MsgMouse) {
	if msg.P.Y == UIHeight-1 {
		md.updateStatusMouse(msg)
		return
	}
	md.status.focus = false
	md.status.menu.SetActive(0)
	// map position relative to the camera, ignoring log lines
	p := msg.P.Add(gruid.Point{X: 0, Y: -2}).Add(md.cameraOrigin())
	switch msg.Action {
	case gruid.MouseMove:
		if md.auto.mode == noAuto && !md.targ.kb {
			md.action = ActionExamine{Target: p}
		}
	case gruid.MouseSecondary:
		md.action = ActionMenu{}
	case gruid.MouseMain:
		if md.targ.spell != nil {
			md.Examine(p)
			md.action = ActionTarget{}
			return
		}
		if !p.In(md.g.Map.Terrain.Range()) {
			if msg.P.Y <= 1 {
				md.action = ActionViewMessages{}
			}
			return
		}
		pp := md.g.PP()
		if md.targ.p != p {
			md.Examine(p)
			return
		}
		if paths.DistanceManhattan(p, pp) == 1 {
			md.action = ActionBump{Delta: p.Sub(pp)}
		} else {
			md.action = ActionTarget{}
		}
	}
}

func (md *model) updateStatusMouse(msg gruid.MsgMouse) {
	msg.P.Y = 0
	if !msg.P.In(md.status.menu.Bounds()) || md.targ.kb {
		md.status.focus = false
		return
	}
	md.status.menu.Update(msg)
	update := !md.status.focus
	switch md.status.menu.Action() {
	case ui.MenuMove:
		update = true
	case ui.MenuInvoke:
		if statusEntry(md.status.menu.Active()) == statusMenu {
			md.status.focus = false
			md.action = ActionMenu{}
			return
		}
		update = true
	}
	if !update {
		return
	}
	md.targ.CancelExamine()
	md.status.focus = true
	switch statusEntry(md.status.menu.Active()) {
	case statusDepth:
		md.status.desc.Box = &ui.Box{Title: ui.Text("Depth")}
		md.status.desc.SetText("Current dungeon depth. Depth 10 is your safe home level.")
	case statusTurns:
		md.status.desc.Box = &ui.Box{Title: ui.Text("Turns")}
		md.status.desc.SetText("Number of elapsed turns since the start.")
	case statusMenu:
		md.status.desc.Box = &ui.Box{Title: ui.Text("Menu")}
		md.status.desc.SetText("Click to open menu or press the SPACE key.")
	case statusHP:
		md.status.desc.Box = &ui.Box{Title: ui.Text("Health")}
		md.status.desc.SetText("Your hit points. You die when they reach zero.")
	case statusAttack:
		md.status.desc.Box = &ui.Box{Title: ui.Text("Attack")}
		md.status.desc.SetText("Your attack attribute, counting worn equipment.")
	case statusDefense:
		md.status.desc.Box = &ui.Box{Title: ui.Text("Defense")}
		md.status.desc.SetText("Your defense attribute, counting worn equipment.")
	case statusLore:
		md.status.desc.Box = &ui.Box{Title: ui.Text("Lore")}
		md.status.desc.SetText("Your magical knowledge. Some scrolls require a minimum lore to be cast.")
	case statusLevel:
		md.status.desc.Box = &ui.Box{Title: ui.Text("Character Level")}
		md.status.desc.SetText("Your character level and experience points.")
	default:
		md.status.focus = false
	}
}

// endTurn finalizes player's turn and runs other events until next player
// turn.
func (md *model) endTurn() {
	md.mode = modeNormal
	g := md.g
	g.EndTurn()
	if g.State == Dead {
		md.death()
		return
	}
	if g.CanLevelUp() {
		g.LevelUp()
		md.openLevelUpMenu()
	}
	g.Logs.NextTick = g.Logs.Index
}

func (md *model) death() {
	g := md.g
	g.StoryLog("Died")
	g.LogStyled("You die…", logSpecial)
	md.logConfirmContinue()
	md.mode = modeEnd
}

func (md *model) logConfirmContinue() {
	md.g.LogStyled("[SPACE/ESC to continue]", logConfirm)
	md.targ.CancelExamine()
}

func (md *model) dump(msg string, err error) {
	s := md.g.DumpSummary()
	lines := strings.Split(s, "\n")
	stts := []ui.StyledText{}
	for _, l := range lines {
		stts = append(stts, ui.Text(l))
	}
	var details string
	if err != nil {
		details = fmt.Sprintf("Error writing dump: %v.", err)
	} else {
		details = msg
	}
	stts = append(stts, ui.Text(details))
	md.pager.pg.SetLines(stts)
	md.pager.pg.SetCursor(gruid.Point{X: 0, Y: 0})
	md.pager.pg.SetBox(&ui.Box{Title: ui.Text("You died").WithStyle(gruid.Style{}.WithFg(ColorRed))})
}
