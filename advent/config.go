package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vaughan0/go-ini"
)

const (
	defaultConfigName = ".advent.ini"
	configSection     = "advent"
)

// config is read from the [advent] section of an INI file:
//
//	[advent]
//	human = true
//	inputs = /home/me/advent/inputs
//	history = /home/me/.advent_history
type config struct {
	human   bool
	inputs  string // directory of puzzle inputs named like day6.txt
	history string // readline history file for interactive solutions
}

// loadConfig loads path, or $HOME/.advent.ini if path is empty. A missing
// default file is not an error.
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, defaultConfigName)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
	}
	file, err := ini.LoadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	if s, ok := file.Get(configSection, "human"); ok {
		cfg.human, err = strconv.ParseBool(s)
		if err != nil {
			return cfg, fmt.Errorf("config %s: bad value for human: %s", path, err)
		}
	}
	cfg.inputs, _ = file.Get(configSection, "inputs")
	cfg.history, _ = file.Get(configSection, "history")
	return cfg, nil
}
