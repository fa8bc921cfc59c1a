// This file handles the game's saved state: the session save, the home level
// snapshot, the stats record and the configuration. The storage primitives
// used here (SaveFile, ReadDataFile, RemoveDataFile) have both a filesystem
// and a local storage implementation.

package main

import (
	"fmt"
	"log"
)

// Save saves the game to the save file.
func (g *Game) Save() error {
	data, err := g.GameSave()
	if err != nil {
		g.Log(err.Error())
		return err
	}
	err = SaveFile("save", data)
	if err != nil {
		g.Log(err.Error())
	}
	return err
}

// RemoveSaveFile removes the save file if it exists.
func RemoveSaveFile() error {
	return RemoveDataFile("save")
}

// RemoveReplay removes the replay file if it exists.
func RemoveReplay() {
	if err := RemoveDataFile("replay.part"); err != nil {
		log.Printf("removing replay: %v", err)
	}
}

// Load loads an existing game from a saved file.
func (g *Game) Load() (bool, error) {
	data, err := ReadDataFile("save")
	if err != nil {
		return false, err
	}
	if data == nil {
		// no save file, new game
		return false, nil
	}
	lg, err := DecodeGameSave(data)
	if err != nil {
		return false, err
	}
	if lg.Version != Version {
		log.Print("ignoring incompatible old save")
		if err := RemoveDataFile("save"); err != nil {
			log.Printf("removing old save: %v", err)
		}
		return false, nil
	}
	*g = *lg
	return true, nil
}

// SaveHome writes a snapshot of the home level, so that it can be restored
// when the player climbs back from the dungeon.
func (g *Game) SaveHome() error {
	hs := &HomeSave{
		Version:  Version,
		Map:      g.Map,
		Entities: g.Entities,
		StairsP:  g.StairsP,
	}
	data, err := encode(hs)
	if err != nil {
		return err
	}
	return SaveFile("home", data)
}

// LoadHome retrieves the home level's snapshot.
func LoadHome() (*HomeSave, error) {
	data, err := ReadDataFile("home")
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("no home snapshot")
	}
	hs := &HomeSave{}
	if err := decode(data, hs); err != nil {
		return nil, err
	}
	if hs.Version != Version {
		return nil, fmt.Errorf("incompatible home snapshot")
	}
	return hs, nil
}

// SaveStats records the player's current progression, so that it survives
// the home snapshot's restoration.
func (g *Game) SaveStats() error {
	pf := g.Player().Fighter
	ss := &StatsSave{
		Version: Version,
		HP:      pf.HP,
		XP:      pf.XP,
		MaxHP:   pf.BaseMaxHP,
		Power:   pf.BasePower,
		Defense: pf.BaseDefense,
		Lore:    pf.BaseLore,
		Level:   g.Level,
	}
	data, err := encode(ss)
	if err != nil {
		return err
	}
	return SaveFile("stats", data)
}

// LoadStats retrieves the player's recorded progression.
func LoadStats() (*StatsSave, error) {
	data, err := ReadDataFile("stats")
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("no stats record")
	}
	ss := &StatsSave{}
	if err := decode(data, ss); err != nil {
		return nil, err
	}
	if ss.Version != Version {
		return nil, fmt.Errorf("incompatible stats record")
	}
	return ss, nil
}

// SaveConfig saves the game's config to the config file.
func SaveConfig() error {
	data, err := GameConfig.ConfigSave()
	if err != nil {
		return err
	}
	return SaveFile("config", data)
}

// LoadConfig loads game's config from the config file.
func LoadConfig() (bool, error) {
	data, err := ReadDataFile("config")
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	c, err := DecodeConfigSave(data)
	if err != nil {
		return false, err
	}
	if c.Version != GameConfig.Version {
		log.Print("ignoring incompatible old config")
		if err := RemoveDataFile("config"); err != nil {
			log.Printf("removing old config: %v", err)
		}
		return false, nil
	}
	GameConfig = *c
	return true, nil
}
