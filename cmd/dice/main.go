// Command dice dices a directory of sprite textures into deduplicated
// atlases and a sprite mesh manifest.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	core "github.com/dantero/spritedicer"
	"github.com/dantero/spritedicer/internal/config"
	"github.com/dantero/spritedicer/internal/imageio"
)

var imageExts = map[string]bool{
	".png": true, ".bmp": true, ".tif": true, ".tiff": true,
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run() error {
	inDir := flag.String("in", "", "directory of source sprite textures")
	outDir := flag.String("out", "", "directory to write atlas-N.png and sprites.json")
	configPath := flag.String("config", "", "optional TOML preferences file")
	unitSize := flag.Uint("unit-size", 0, "override: unit size in pixels")
	padding := flag.Uint("padding", 0, "override: padding in pixels")
	atlasSize := flag.Uint("atlas-size", 0, "override: max atlas side length in pixels")
	atlasSquare := flag.Bool("atlas-square", false, "override: force square atlases")
	atlasPOT := flag.Bool("atlas-pot", false, "override: force power-of-two atlas dimensions")
	uvInset := flag.Float64("uv-inset", -1, "override: UV inset in 0.0-0.5 range")
	ppu := flag.Float64("ppu", 0, "override: pixels-per-unit")
	flag.Parse()

	if *inDir == "" || *outDir == "" {
		return fmt.Errorf("both -in and -out are required")
	}

	prefs, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(&prefs, *unitSize, *padding, *atlasSize, *atlasSquare, *atlasPOT, *uvInset, *ppu)
	prefs = config.Clamp(prefs)

	sprites, err := loadSprites(*inDir, prefs)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d sprites from %s", len(sprites), *inDir)

	artifacts, err := core.Dice(sprites, prefs)
	if err != nil {
		return err
	}
	log.Printf("Diced into %d atlas(es), %d sprites", len(artifacts.Atlases), len(artifacts.Sprites))

	return writeArtifacts(*outDir, artifacts, prefs)
}

func applyFlagOverrides(prefs *core.Prefs, unitSize, padding, atlasSize uint, atlasSquare, atlasPOT bool, uvInset, ppu float64) {
	if unitSize > 0 {
		prefs.UnitSize = uint32(unitSize)
	}
	if padding > 0 {
		prefs.Padding = uint32(padding)
	}
	if atlasSize > 0 {
		prefs.AtlasSizeLimit = uint32(atlasSize)
	}
	if atlasSquare {
		prefs.AtlasSquare = true
	}
	if atlasPOT {
		prefs.AtlasPOT = true
	}
	if uvInset >= 0 {
		prefs.UVInset = float32(uvInset)
	}
	if ppu > 0 {
		prefs.PPU = float32(ppu)
	}
}

func loadSprites(dir string, prefs core.Prefs) ([]core.SourceSprite, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	sprites := make([]core.SourceSprite, 0, len(paths))
	for i, path := range paths {
		reportDecodeProgress(prefs, i, len(paths), path)
		tex, err := imageio.Load(path)
		if err != nil {
			return nil, err
		}
		id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		sprites = append(sprites, core.SourceSprite{ID: id, Texture: tex})
	}
	return sprites, nil
}

// reportDecodeProgress reports stage 0 (decode) using the same ratio
// formula the core packages use for stages 1-3, so a caller sees one
// continuous sweep across the whole run.
func reportDecodeProgress(prefs core.Prefs, idx, total int, path string) {
	if prefs.OnProgress == nil || total == 0 {
		return
	}
	ratio := 0.2 * float32(idx+1) / float32(total)
	prefs.OnProgress(core.Progress{
		Ratio:    ratio,
		Activity: fmt.Sprintf("Decoding %s... (%d of %d)", filepath.Base(path), idx+1, total),
	})
}

func writeArtifacts(dir string, artifacts core.Artifacts, prefs core.Prefs) error {
	for i, atlas := range artifacts.Atlases {
		path := filepath.Join(dir, fmt.Sprintf("atlas-%d.png", i))
		if err := imageio.Save(path, atlas); err != nil {
			return err
		}
		if prefs.OnProgress != nil {
			ratio := 4.0/5.0 + 0.2*float32(i+1)/float32(len(artifacts.Atlases))
			prefs.OnProgress(core.Progress{Ratio: ratio, Activity: fmt.Sprintf("Encoding atlas %d of %d", i+1, len(artifacts.Atlases))})
		}
	}

	manifestPath := filepath.Join(dir, "sprites.json")
	data, err := json.MarshalIndent(artifacts.Sprites, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sprite manifest: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(manifestPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write sprite manifest: %w", err)
	}
	return nil
}
