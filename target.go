package main

import (
	"codeberg.org/anaseto/gruid"
)

// targeting contains information related to targeting.
type targeting struct {
	info  targInfo     // information about target position
	kb    bool         // using keyboard examine mode
	p     gruid.Point  // target
	spell *spellTarget // pending spell cast (nil when just examining)
}

// spellTarget records the inventory item whose spell is being aimed.
type spellTarget struct {
	item int            // inventory index
	kind ConsumableKind // spell kind
}

// targInfo contains information about target position.
type targInfo struct {
	entities []*Entity // visible entities at target position
	sees     bool      // player sees target currently
	unknown  bool      // target is unexplored
}

// HideCursor hides the target cursor.
func (t *targeting) HideCursor() {
	t.p = InvalidPos
}

// SetCursor sets the target cursor.
func (t *targeting) SetCursor(p gruid.Point) {
	t.p = p
}

// CancelExamine cancels current targeting.
func (t *targeting) CancelExamine() {
	*t = targeting{}
	t.HideCursor()
}

// Examine targets a given position with the cursor (if target changed).
func (md *model) Examine(p gruid.Point) {
	if md.targ.p == p {
		return
	}
	md.examine(p)
}

// RefreshExamineInfo refreshes information for the current target position
// (if valid).
func (md *model) RefreshExamineInfo() {
	if md.targ.p != InvalidPos {
		md.examine(md.targ.p)
	}
}

// examine targets a given position with the cursor.
func (md *model) examine(p gruid.Point) {
	if !p.In(md.g.Map.Terrain.Range()) {
		return
	}
	md.targ.SetCursor(p)
	if md.targ.spell == nil {
		md.auto.path = md.g.PlayerPath(md.g.PP(), p)
	} else {
		md.auto.path = nil
	}
	md.updateTargInfo()
}

func (md *model) updateTargInfo() {
	g := md.g
	pi := targInfo{}
	p := md.targ.p
	pi.unknown = !g.Map.Explored(p)
	pi.sees = g.InFOV(p)
	for _, e := range g.Entities {
		if e.P != p {
			continue
		}
		if pi.sees || e.AlwaysVisible && !pi.unknown {
			pi.entities = append(pi.entities, e)
		}
	}
	md.targ.info = pi
}
