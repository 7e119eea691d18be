package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dantero/spritedicer/internal/model"
)

func TestLoadWithEmptyPathReturnsDefaults(t *testing.T) {
	prefs, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := model.DefaultPrefs()
	if prefs.UnitSize != want.UnitSize || prefs.Padding != want.Padding || prefs.AtlasSizeLimit != want.AtlasSizeLimit || prefs.PPU != want.PPU {
		t.Fatalf("got %+v, want defaults %+v", prefs, want)
	}
}

func TestLoadAppliesFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.toml")
	contents := "unit_size = 32\npadding = 1\natlas_square = true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	prefs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if prefs.UnitSize != 32 {
		t.Errorf("UnitSize = %d, want 32", prefs.UnitSize)
	}
	if prefs.Padding != 1 {
		t.Errorf("Padding = %d, want 1", prefs.Padding)
	}
	if !prefs.AtlasSquare {
		t.Error("AtlasSquare = false, want true")
	}
	if prefs.PPU != model.DefaultPrefs().PPU {
		t.Errorf("PPU = %v, want unchanged default", prefs.PPU)
	}
}

func TestLoadErrsOnMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/prefs.toml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestClampFixesOutOfRangeValues(t *testing.T) {
	prefs := model.Prefs{UnitSize: 0, Padding: 10, UVInset: 2, AtlasSizeLimit: 0, PPU: -5}
	clamped := Clamp(prefs)
	if clamped.UnitSize == 0 {
		t.Error("UnitSize still zero after clamp")
	}
	if clamped.Padding > clamped.UnitSize {
		t.Errorf("Padding %d exceeds UnitSize %d", clamped.Padding, clamped.UnitSize)
	}
	if clamped.UVInset > 0.5 {
		t.Errorf("UVInset %v exceeds 0.5", clamped.UVInset)
	}
	if clamped.AtlasSizeLimit == 0 {
		t.Error("AtlasSizeLimit still zero after clamp")
	}
	if clamped.PPU <= 0 {
		t.Errorf("PPU %v still non-positive after clamp", clamped.PPU)
	}
}
