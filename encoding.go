package main

import (
	"bytes"
	"compress/zlib"
	"encoding/gob"

	"codeberg.org/anaseto/gruid"
)

func init() {
	// Monster behaviors.
	gob.Register(&Chase{})
	gob.Register(&Confused{})
}

// encode returns zlib-compressed gob data for the given value.
func encode(v any) ([]byte, error) {
	data := bytes.Buffer{}
	enc := gob.NewEncoder(&data)
	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	w.Write(data.Bytes())
	err = w.Close()
	return buf.Bytes(), err
}

// decode retrieves a value from data encoded with encode.
func decode(data []byte, v any) error {
	buf := bytes.NewReader(data)
	r, err := zlib.NewReader(buf)
	if err != nil {
		return err
	}
	dec := gob.NewDecoder(r)
	err = dec.Decode(v)
	if err != nil {
		return err
	}
	return r.Close()
}

// GameSave returns encoded game data for saving.
func (g *Game) GameSave() ([]byte, error) {
	return encode(g)
}

// DecodeGameSave retrieves a *Game object from game data encoded with
// GameSave.
func DecodeGameSave(data []byte) (*Game, error) {
	lg := &Game{}
	if err := decode(data, lg); err != nil {
		return nil, err
	}
	return lg, nil
}

// HomeSave is the home level's snapshot, written when first descending and
// restored when climbing back.
type HomeSave struct {
	Version  string
	Map      *Map
	Entities []*Entity
	StairsP  gruid.Point
}

// StatsSave records the player's progression for the return to the home
// level.
type StatsSave struct {
	Version string
	HP      int
	XP      int
	MaxHP   int
	Power   int
	Defense int
	Lore    int
	Level   int
}

// Config describes available configuration options.
type Config struct {
	DarkColors bool   // whether to use a dark color theme
	Tiles      bool   // whether to use Tiles or Unicode
	Version    string // config's game version
}

// ConfigSave returns encoded config data for saving.
func (c *Config) ConfigSave() ([]byte, error) {
	data := bytes.Buffer{}
	enc := gob.NewEncoder(&data)
	err := enc.Encode(c)
	if err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}

// DecodeConfigSave retrieves a *Config object from config data encoded with
// ConfigSave.
func DecodeConfigSave(data []byte) (*Config, error) {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	c := &Config{}
	err := dec.Decode(c)
	if err != nil {
		return nil, err
	}
	return c, nil
}
