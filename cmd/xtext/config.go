package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type config struct {
	Prompt    string `toml:"prompt" yaml:"prompt"`
	Welcome   bool   `toml:"welcome" yaml:"welcome"`
	Debug     bool   `toml:"debug" yaml:"debug"`
	FailLimit int    `toml:"fail_limit" yaml:"fail_limit"`
	Color     bool   `toml:"color" yaml:"color"`
	Retries   int    `toml:"retries" yaml:"retries"`
}

func defaultConfig(interactive bool) config {
	cfg := config{FailLimit: 0}
	if interactive {
		cfg.Prompt = "> "
		cfg.Welcome = true
		cfg.Color = true
	}
	return cfg
}

// loadConfig reads file into cfg. Keys not in file keep their value. The
// format is detected from the file extension, TOML is the default.
func loadConfig(file string, cfg *config) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return fmt.Errorf("config %s: %w", file, err)
	}
	switch {
	case cfg.FailLimit < 0:
		return fmt.Errorf("config %s: negative fail_limit %d", file, cfg.FailLimit)
	case cfg.Retries < 0:
		return fmt.Errorf("config %s: negative retries %d", file, cfg.Retries)
	}
	return nil
}
