package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm = "insertion"
	DefaultDelayMS   = 800
	DefaultWidth     = 640
	DefaultHeight    = 320
	DefaultDebounce  = 150
)

// DefaultInput is used when no sequence is given anywhere.
var DefaultInput = []int{29, 10, 14, 37, 13, 5, 25, 45}

type Config struct {
	Algorithm string       `yaml:"algorithm" toml:"algorithm"`
	Input     []int        `yaml:"input" toml:"input"`
	DelayMS   int          `yaml:"delay_ms" toml:"delay_ms"`
	PreStart  bool         `yaml:"pre_start" toml:"pre_start"`
	Export    ExportConfig `yaml:"export" toml:"export"`
	Graph     GraphConfig  `yaml:"graph" toml:"graph"`
	Watch     WatchConfig  `yaml:"watch" toml:"watch"`
}

type ExportConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

type GraphConfig struct {
	Nodes int    `yaml:"nodes" toml:"nodes"`
	Edges string `yaml:"edges" toml:"edges"`
	Start int    `yaml:"start" toml:"start"`
}

type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms" toml:"debounce_ms"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Input:     append([]int(nil), DefaultInput...),
		DelayMS:   DefaultDelayMS,
		PreStart:  true,
		Export: ExportConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Graph: GraphConfig{
			Nodes: 6,
			Edges: "0-1, 0-2, 1-3, 2-4, 3-5, 4-5",
		},
		Watch: WatchConfig{DebounceMS: DefaultDebounce},
	}
}

// Load reads a YAML config, or TOML when path ends in .toml. Fields absent
// from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	if isTOML(path) {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := toml.NewEncoder(file).Encode(cfg); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func (c *Config) Delay() time.Duration {
	if c.DelayMS <= 0 {
		return DefaultDelayMS * time.Millisecond
	}
	return time.Duration(c.DelayMS) * time.Millisecond
}

func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Watch.DebounceMS) * time.Millisecond
}

// GetInput returns a copy of the configured sequence, or DefaultInput.
func (c *Config) GetInput() []int {
	if len(c.Input) == 0 {
		return append([]int(nil), DefaultInput...)
	}
	return append([]int(nil), c.Input...)
}
