//go:build !js

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DataDir returns the game's data directory location.
func DataDir() (string, error) {
	var xdg string
	if runtime.GOOS == "windows" {
		xdg = os.Getenv("LOCALAPPDATA")
	} else {
		xdg = os.Getenv("XDG_DATA_HOME")
	}
	if xdg == "" {
		xdg = filepath.Join(os.Getenv("HOME"), ".local", "share")
	}
	dataDir := filepath.Join(xdg, "catacombs")
	_, err := os.Stat(dataDir)
	if err != nil {
		err = os.MkdirAll(dataDir, 0755)
		if err != nil {
			return "", fmt.Errorf("building data directory: %v", err)
		}
	}
	return dataDir, nil
}

// SaveFile writes save data to the given file.
func SaveFile(filename string, data []byte) error {
	dataDir, err := DataDir()
	if err != nil {
		return err
	}
	tempSaveFile := filepath.Join(dataDir, "temp-"+filename)
	f, err := os.OpenFile(tempSaveFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	if err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	saveFile := filepath.Join(dataDir, filename)
	if err := os.Rename(f.Name(), saveFile); err != nil {
		return err
	}
	return err
}

// ReadDataFile reads the given file in the game's data directory. It returns
// a nil slice and no error when the file does not exist.
func ReadDataFile(file string) ([]byte, error) {
	dataDir, err := DataDir()
	if err != nil {
		return nil, err
	}
	dataFile := filepath.Join(dataDir, file)
	_, err = os.Stat(dataFile)
	if err != nil {
		return nil, nil
	}
	return os.ReadFile(dataFile)
}

// RemoveDataFile removes the given file in the game's data directory.
func RemoveDataFile(file string) error {
	dataDir, err := DataDir()
	if err != nil {
		return err
	}
	dataFile := filepath.Join(dataDir, file)
	_, err = os.Stat(dataFile)
	if err == nil {
		err := os.Remove(dataFile)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteDump writes full game statistics and returns a success log message or
// an error.
func (g *Game) WriteDump() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dataDir, "dump.txt")
	err = os.WriteFile(path, []byte(g.Dump()), 0644)
	if err != nil {
		return "", fmt.Errorf("writing game statistics: %v", err)
	}
	return fmt.Sprintf("Game statistics written to %s.", path), nil
}
