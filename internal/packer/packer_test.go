package packer

import (
	"testing"

	"github.com/dantero/spritedicer/internal/dicer"
	"github.com/dantero/spritedicer/internal/model"
	"github.com/dantero/spritedicer/internal/testfixture"
)

func prefs() model.Prefs {
	p := model.DefaultPrefs()
	p.UnitSize = 1
	p.Padding = 0
	p.AtlasSizeLimit = 2048
	return p
}

func diceAll(t *testing.T, p model.Prefs, sprites ...model.SourceSprite) []model.DicedTexture {
	t.Helper()
	out, err := dicer.Dice(sprites, p)
	if err != nil {
		t.Fatalf("dicer.Dice: %v", err)
	}
	return out
}

func TestErrsWhenUVInsetOutOfRange(t *testing.T) {
	p := prefs()
	p.UVInset = 0.51
	diced := diceAll(t, p, testfixture.Sprite("a", testfixture.R1X1))
	_, err := Pack(diced, p)
	if err == nil || err.Error() != "UV inset should be in 0.0 to 0.5 range." {
		t.Fatalf("got %v", err)
	}
}

func TestErrsWhenAtlasSizeLimitZero(t *testing.T) {
	p := prefs()
	p.AtlasSizeLimit = 0
	diced := diceAll(t, p, testfixture.Sprite("a", testfixture.R1X1))
	_, err := Pack(diced, p)
	if err == nil || err.Error() != "Atlas size limit can't be zero." {
		t.Fatalf("got %v", err)
	}
}

func TestErrsWhenUnitAboveAtlasSizeLimit(t *testing.T) {
	p := prefs()
	p.UnitSize = 4
	p.AtlasSizeLimit = 2
	diced := diceAll(t, p, testfixture.Sprite("a", testfixture.RGB4X4))
	_, err := Pack(diced, p)
	if err == nil || err.Error() != "Unit size can't be above atlas size limit." {
		t.Fatalf("got %v", err)
	}
}

func TestErrsWhenSingleTextureCantFit(t *testing.T) {
	p := prefs()
	p.AtlasSizeLimit = 1
	diced := diceAll(t, p, testfixture.Sprite("a", testfixture.RGBY))
	_, err := Pack(diced, p)
	if err == nil || err.Error() != "Can't fit single texture; increase atlas size limit." {
		t.Fatalf("got %v", err)
	}
}

func TestSplitsIntoMultipleAtlasesWhenOverLimit(t *testing.T) {
	p := prefs()
	p.AtlasSizeLimit = 1
	diced := diceAll(t, p,
		testfixture.Sprite("a", testfixture.R1X1),
		testfixture.Sprite("b", testfixture.B1X1),
	)
	atlases, err := Pack(diced, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(atlases) != 2 {
		t.Fatalf("got %d atlases, want 2", len(atlases))
	}
	for _, a := range atlases {
		if len(a.Packed) != 1 {
			t.Fatalf("expected exactly one packed texture per atlas, got %d", len(a.Packed))
		}
	}
}

func TestSharedUnitsAreNotDuplicated(t *testing.T) {
	p := prefs()
	diced := diceAll(t, p,
		testfixture.Sprite("rgb", testfixture.RGB4X4),
		testfixture.Sprite("plt", testfixture.PLT4X4),
	)
	atlases, err := Pack(diced, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(atlases) != 1 {
		t.Fatalf("got %d atlases, want 1", len(atlases))
	}
	// RGB4X4 contributes 3 unique hashes (R, G, B) and PLT4X4 contributes
	// 16, one of which (its all-green cell) is pixel-identical to RGB4X4's
	// green unit and so must not be counted twice.
	if len(atlases[0].Rects) != 18 {
		t.Fatalf("got %d unique rects, want 18", len(atlases[0].Rects))
	}
}

func TestUVRectWithPaddingAndEdgeCrop(t *testing.T) {
	p := model.DefaultPrefs()
	p.UnitSize = 2
	p.Padding = 1
	p.AtlasSizeLimit = 2048
	diced := diceAll(t, p, testfixture.Sprite("m", testfixture.M1X1))

	atlases, err := Pack(diced, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(atlases) != 1 {
		t.Fatalf("got %d atlases", len(atlases))
	}
	var rect model.Rect
	found := false
	for _, r := range atlases[0].Rects {
		rect = model.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
		found = true
	}
	if !found {
		t.Fatal("no rect found")
	}
	want := model.Rect{X: 0.25, Y: 0.25, Width: 0.25, Height: 0.25}
	const eps = 0.0001
	if abs(rect.X-want.X) > eps || abs(rect.Y-want.Y) > eps || abs(rect.Width-want.Width) > eps || abs(rect.Height-want.Height) > eps {
		t.Fatalf("got %+v, want %+v", rect, want)
	}
}

func TestAtlasTextureCoversFullPackedArea(t *testing.T) {
	p := prefs()
	diced := diceAll(t, p, testfixture.Sprite("x", testfixture.RGBY))
	atlases, err := Pack(diced, p)
	if err != nil {
		t.Fatal(err)
	}
	tex := atlases[0].Texture
	var opaque int
	for _, px := range tex.Pixels {
		if px.Opaque() {
			opaque++
		}
	}
	if opaque != 4 {
		t.Fatalf("got %d opaque pixels, want 4", opaque)
	}
}

func TestBakeIsReproducibleAcrossRuns(t *testing.T) {
	p := prefs()
	diced1 := diceAll(t, p,
		testfixture.Sprite("a", testfixture.RGB4X4),
		testfixture.Sprite("b", testfixture.PLT4X4),
	)
	diced2 := diceAll(t, p,
		testfixture.Sprite("a", testfixture.RGB4X4),
		testfixture.Sprite("b", testfixture.PLT4X4),
	)

	a1, err := Pack(diced1, p)
	if err != nil {
		t.Fatal(err)
	}
	a2, err := Pack(diced2, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(a1) != len(a2) {
		t.Fatalf("atlas count differs: %d vs %d", len(a1), len(a2))
	}
	for i := range a1 {
		if len(a1[i].Texture.Pixels) != len(a2[i].Texture.Pixels) {
			t.Fatalf("atlas %d pixel count differs", i)
		}
		for j := range a1[i].Texture.Pixels {
			if a1[i].Texture.Pixels[j] != a2[i].Texture.Pixels[j] {
				t.Fatalf("atlas %d pixel %d differs between runs", i, j)
			}
		}
	}
}

// rgbyAndC1X1 dices the same {RGBY, C1X1} pair the original packer.rs test
// suite packs: 4 unique units from RGBY plus 1 from C1X1, for 5 total, at
// atlas_size_limit=4. n=5 makes the compact search's optimum (3x2)
// genuinely narrower than its square/POT-forced alternatives (3x3, 4x4),
// which is the whole point of pinning this scenario instead of a fixture
// where every mode happens to agree.
func rgbyAndC1X1(t *testing.T, p model.Prefs) []model.DicedTexture {
	t.Helper()
	return diceAll(t, p,
		testfixture.Sprite("rgby", testfixture.RGBY),
		testfixture.Sprite("c", testfixture.C1X1),
	)
}

func TestCompactSearchMinimizesAtlasArea(t *testing.T) {
	p := prefs()
	p.AtlasSizeLimit = 4
	diced := rgbyAndC1X1(t, p)
	atlases, err := Pack(diced, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(atlases) != 1 {
		t.Fatalf("got %d atlases, want 1", len(atlases))
	}
	tex := atlases[0].Texture
	if tex.Width != 3 || tex.Height != 2 {
		t.Fatalf("got %dx%d, want 3x2", tex.Width, tex.Height)
	}
}

func TestAtlasSquareForcesEqualDimensions(t *testing.T) {
	p := prefs()
	p.AtlasSizeLimit = 4
	p.AtlasSquare = true
	diced := rgbyAndC1X1(t, p)
	atlases, err := Pack(diced, p)
	if err != nil {
		t.Fatal(err)
	}
	tex := atlases[0].Texture
	if tex.Width != 3 || tex.Height != 3 {
		t.Fatalf("got %dx%d, want 3x3", tex.Width, tex.Height)
	}
}

func TestAtlasPOTForcesPowerOfTwoDimensions(t *testing.T) {
	p := prefs()
	p.AtlasSizeLimit = 4
	p.AtlasPOT = true
	diced := rgbyAndC1X1(t, p)
	atlases, err := Pack(diced, p)
	if err != nil {
		t.Fatal(err)
	}
	tex := atlases[0].Texture
	if tex.Width != 4 || tex.Height != 4 {
		t.Fatalf("got %dx%d, want 4x4", tex.Width, tex.Height)
	}
}

func TestUnusedAtlasPixelsAreTransparent(t *testing.T) {
	p := prefs()
	p.AtlasSizeLimit = 4
	p.AtlasPOT = true
	diced := rgbyAndC1X1(t, p)
	atlases, err := Pack(diced, p)
	if err != nil {
		t.Fatal(err)
	}
	var clear int
	for _, px := range atlases[0].Texture.Pixels {
		if px == (model.Pixel{}) {
			clear++
		}
	}
	if clear != 11 {
		t.Fatalf("got %d transparent pixels, want 11", clear)
	}
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
