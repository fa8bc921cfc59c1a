package main

import (
	"codeberg.org/anaseto/gruid"
)

// auto represents information related to auto-travel.
type auto struct {
	mode autoMode
	path []gruid.Point // travelling path
}

// autoMode represents the kinds of auto-movement.
type autoMode int

const (
	noAuto autoMode = iota
	autoTravel
)

// UpdateAutoMode enables the given auto-movement mode and schedules the next
// automatic step.
func (md *model) UpdateAutoMode(eff gruid.Effect, m autoMode) gruid.Effect {
	md.auto.mode = m
	return gruid.Batch(eff, md.autoCmd())
}

// KeepTraveling reports whether auto-travel should continue for another
// step.
func (md *model) KeepTraveling() bool {
	if md.g.DangerInFOV() {
		return false
	}
	return len(md.auto.path) > 1
}

// DangerInFOV reports whether a living monster is in the player's field of
// view.
func (g *Game) DangerInFOV() bool {
	for _, e := range g.Entities[1:] {
		if e.Fighter != nil && g.InFOV(e.P) {
			return true
		}
	}
	return false
}
