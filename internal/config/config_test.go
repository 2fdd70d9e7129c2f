package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "insertion" {
		t.Errorf("expected algorithm insertion, got %s", cfg.Algorithm)
	}
	if cfg.Delay() != 800*time.Millisecond {
		t.Errorf("unexpected delay %v", cfg.Delay())
	}
	if !cfg.PreStart {
		t.Error("player should start before the first step by default")
	}
	cfg.Input[0] = -1
	if DefaultInput[0] != 29 {
		t.Error("default config must not share DefaultInput")
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "algoviz.yaml")
	data := "algorithm: quick\ninput: [3, 1, 2]\ngraph:\n  start: 2\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Algorithm != "quick" {
		t.Errorf("expected quick, got %s", cfg.Algorithm)
	}
	if !reflect.DeepEqual(cfg.Input, []int{3, 1, 2}) {
		t.Errorf("unexpected input %v", cfg.Input)
	}
	if cfg.Graph.Start != 2 || cfg.Graph.Nodes != 6 {
		t.Errorf("graph section not merged with defaults: %+v", cfg.Graph)
	}
	if cfg.DelayMS != DefaultDelayMS {
		t.Errorf("missing field should keep default, got %d", cfg.DelayMS)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "algoviz.toml")
	data := "algorithm = \"merge\"\ninput = [5, 4]\ndelay_ms = 100\n\n[export]\nwidth = 100\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Algorithm != "merge" || cfg.Delay() != 100*time.Millisecond {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Export.Width != 100 || cfg.Export.Height != DefaultHeight {
		t.Errorf("unexpected export section %+v", cfg.Export)
	}
}

func TestSaveLoad(t *testing.T) {
	for _, name := range []string{"cfg.yaml", "cfg.toml"} {
		path := filepath.Join(t.TempDir(), name)
		cfg := DefaultConfig()
		cfg.Algorithm = "bubble"
		cfg.Input = []int{9, 8, 7}

		if err := Save(path, cfg); err != nil {
			t.Fatalf("%s: save failed: %v", name, err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("%s: load failed: %v", name, err)
		}
		if !reflect.DeepEqual(got, cfg) {
			t.Errorf("%s: got %+v, want %+v", name, got, cfg)
		}
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("input: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("bubble", "classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Input) != 8 {
		t.Errorf("expected 8 values, got %d", len(cfg.Input))
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("bubble", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "classic") != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("quick")
	if !reflect.DeepEqual(presets, []string{"classic", "equal", "sorted"}) {
		t.Errorf("unexpected presets %v", presets)
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestGetInput(t *testing.T) {
	cfg := &Config{}
	if !reflect.DeepEqual(cfg.GetInput(), DefaultInput) {
		t.Error("empty input should fall back to DefaultInput")
	}
	cfg.Input = []int{1}
	in := cfg.GetInput()
	in[0] = 5
	if cfg.Input[0] != 1 {
		t.Error("GetInput must return a copy")
	}
}
