// This file defines the model structure, as well as initialization functions.

package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"runtime"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/ui"
)

const (
	UIWidth  = 80 // UI width
	UIHeight = 24 // UI height
)

var (
	LogGame   = false       // write game logs to file
	ColorMode = ColorMode16 // default 16-color palette
)

// colorMode represents various color compatibility modes.
type colorMode int

const (
	ColorMode16    colorMode = iota
	ColorMode8               // use 8-color compatibility mode (default for windows)
	ColorMode256             // use solarized 256-color approximation
	ColorMode24bit           // use true color selenized palette
)

// GameConfig contains the current game config.
var GameConfig Config

// mode represents the main model mode
type mode int

const (
	modeLoadGame         mode = iota // game load screen (load game)
	modeNormal                       // map game mode
	modePager                        // pager (logs, help, character sheet)
	modeMenu                         // menu (game menu, inventory, level-up)
	modeEnd                          // game end: death
	modeQuitConfirmation             // waiting for no-save quit confirmation
	modeQuitting                     // wait until end message
)

// model describes the gruid.Model of the game.
type model struct {
	action      Action     // action to handle
	auto        *auto      // auto-travel mode info
	desc        *ui.Label  // description label (for items, examined tiles)
	g           *Game      // game state
	gameEnded   bool       // whether the game ended
	gd          gruid.Grid // drawing grid
	keysNormal  map[gruid.Key]Action
	keysTarget  map[gruid.Key]Action
	log         *ui.Label // game's last log messages
	menu        *menu     // menus (game menu, inventory, level-up)
	menuActions []Action  // invokable actions in last game/help menu
	mode        mode      // main mode
	pager       *pager    // pager (logs and the like)
	status      *gameStatus
	targ        *targeting
}

func (md *model) init() gruid.Effect {
	md.mode = modeLoadGame
	md.initWidgets()
	md.initKeys()

	g := md.g
	load, err := g.Load()
	g.md = md // handy cycle
	g.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	if !load {
		g.NewGame()
		g.LogStyled("Press SPACE for menu and ? for help. Good luck!", logSpecial)
		md.updateStatus()
		md.mode = modeNormal
	}
	if err != nil {
		g.LogStyled("Warning: could not load old saved game… starting new game.", logCritic)
		log.Printf("Error: %v", err)
	}
	md.targ.CancelExamine()
	if runtime.GOOS == "js" {
		if load {
			md.updateStatus()
			md.mode = modeNormal
		}
		return nil
	}
	return gruid.Sub(subSig)
}

func (md *model) initWidgets() {
	md.auto = &auto{}
	md.log = ui.NewLabel(ui.StyledText{}.WithMarkups(Markups))
	md.desc = ui.NewLabel(ui.StyledText{}.WithMarkups(Markups))
	md.desc.AdjustWidth = false
	md.status = &gameStatus{}
	md.status.desc = ui.NewLabel(ui.StyledText{}.WithMarkups(Markups))
	md.pager = &pager{}
	md.pager.pg = ui.NewPager(ui.PagerConfig{
		Grid: gruid.NewGrid(UIWidth, UIHeight-1),
		Box:  &ui.Box{},
		Keys: ui.PagerKeys{Quit: []gruid.Key{gruid.KeySpace, "x", "X", gruid.KeyEscape}},
	})
	md.pager.markup = ui.StyledText{}.WithMarkups(Markups)
	style := ui.MenuStyle{
		Active: gruid.Style{Fg: ColorYellow},
	}
	md.menu = &menu{}
	md.menu.main = ui.NewMenu(ui.MenuConfig{
		Grid:  gruid.NewGrid(UIWidth/2, UIHeight-1),
		Box:   &ui.Box{},
		Style: style,
		Keys:  ui.MenuKeys{Quit: []gruid.Key{gruid.KeySpace, "x", "X", gruid.KeyEscape}},
	})
	md.status.menu = ui.NewMenu(ui.MenuConfig{
		Grid:  gruid.NewGrid(UIWidth, 1),
		Style: ui.MenuStyle{Layout: gruid.Point{X: 0, Y: 1}, Active: style.Active},
	})
}

func (md *model) initKeys() {
	md.keysNormal = map[gruid.Key]Action{
		gruid.KeyEscape:     ActionNone{},
		gruid.KeyArrowLeft:  ActionBump{Delta: gruid.Point{X: -1, Y: 0}},
		gruid.KeyArrowDown:  ActionBump{Delta: gruid.Point{X: 0, Y: 1}},
		gruid.KeyArrowUp:    ActionBump{Delta: gruid.Point{X: 0, Y: -1}},
		gruid.KeyArrowRight: ActionBump{Delta: gruid.Point{X: 1, Y: 0}},
		"h":                 ActionBump{Delta: gruid.Point{X: -1, Y: 0}},
		"j":                 ActionBump{Delta: gruid.Point{X: 0, Y: 1}},
		"k":                 ActionBump{Delta: gruid.Point{X: 0, Y: -1}},
		"l":                 ActionBump{Delta: gruid.Point{X: 1, Y: 0}},
		"y":                 ActionBump{Delta: gruid.Point{X: -1, Y: -1}},
		"u":                 ActionBump{Delta: gruid.Point{X: 1, Y: -1}},
		"b":                 ActionBump{Delta: gruid.Point{X: -1, Y: 1}},
		"n":                 ActionBump{Delta: gruid.Point{X: 1, Y: 1}},
		".":                 ActionWait{},
		gruid.KeyEnter:      ActionWait{},
		"g":                 ActionPickup{},
		",":                 ActionPickup{},
		"i":                 ActionInventory{},
		"d":                 ActionDrop{},
		">":                 ActionDescend{},
		"<":                 ActionAscend{},
		"c":                 ActionCharacter{},
		"x":                 ActionExamineModeToggle{},
		gruid.KeySpace:      ActionMenu{},
		"?":                 ActionHelp{},
		"#":                 ActionDump{},
		"S":                 ActionSaveQuit{},
		"C":                 ActionConfig{},
		"m":                 ActionViewMessages{},
		"Q":                 ActionQuit{},
	}
	md.keysTarget = map[gruid.Key]Action{
		gruid.KeyArrowLeft:  ActionCursorBump{Delta: gruid.Point{X: -1, Y: 0}},
		gruid.KeyArrowDown:  ActionCursorBump{Delta: gruid.Point{X: 0, Y: 1}},
		gruid.KeyArrowUp:    ActionCursorBump{Delta: gruid.Point{X: 0, Y: -1}},
		gruid.KeyArrowRight: ActionCursorBump{Delta: gruid.Point{X: 1, Y: 0}},
		"h":                 ActionCursorBump{Delta: gruid.Point{X: -1, Y: 0}},
		"j":                 ActionCursorBump{Delta: gruid.Point{X: 0, Y: 1}},
		"k":                 ActionCursorBump{Delta: gruid.Point{X: 0, Y: -1}},
		"l":                 ActionCursorBump{Delta: gruid.Point{X: 1, Y: 0}},
		"y":                 ActionCursorBump{Delta: gruid.Point{X: -1, Y: -1}},
		"u":                 ActionCursorBump{Delta: gruid.Point{X: 1, Y: -1}},
		"b":                 ActionCursorBump{Delta: gruid.Point{X: -1, Y: 1}},
		"n":                 ActionCursorBump{Delta: gruid.Point{X: 1, Y: 1}},
		"H":                 ActionCursorRun{Delta: gruid.Point{X: -1, Y: 0}},
		"J":                 ActionCursorRun{Delta: gruid.Point{X: 0, Y: 1}},
		"K":                 ActionCursorRun{Delta: gruid.Point{X: 0, Y: -1}},
		"L":                 ActionCursorRun{Delta: gruid.Point{X: 1, Y: 0}},
		gruid.KeyEnter:      ActionTarget{},
		".":                 ActionTarget{},
		gruid.KeyEscape:     ActionExamineModeToggle{},
	}
}

// InitConfig loads saved config, if any, and initializes GameConfig.
func InitConfig() error {
	GameConfig.DarkColors = true // default to dark theme
	GameConfig.Tiles = true      // default to tiles (when available)
	GameConfig.Version = Version
	_, err := LoadConfig()
	if err != nil {
		err = fmt.Errorf("error loading config: %v", err)
		saverr := SaveConfig()
		if saverr != nil {
			log.Printf("error resetting badly loaded config: %v", err)
		}
		return err
	}
	return err
}
