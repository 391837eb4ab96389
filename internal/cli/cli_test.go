package cli

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/ddsenc/internal/dds"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestBaseName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"/a/b/hero.png":   "hero",
		"layer.tga":       "layer",
		"noext":           "noext",
		"dir/nested.tiff": "nested",
	}
	for in, want := range cases {
		if got := baseName(in); got != want {
			t.Errorf("baseName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadSourcesSingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "hero.png")
	writePNG(t, path, 4, 4)

	sources, err := loadSources(path)
	if err != nil {
		t.Fatalf("loadSources: %v", err)
	}
	if len(sources) != 1 || sources[0].Name != "hero" {
		t.Fatalf("loadSources(file) = %+v, want one source named hero", sources)
	}
}

func TestLoadSourcesDirectorySkipsUndecodable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "pos x.png"), 4, 4)
	writePNG(t, filepath.Join(dir, "neg x.png"), 4, 4)
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("not an image"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	sources, err := loadSources(dir)
	if err != nil {
		t.Fatalf("loadSources: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("loadSources(dir) = %d sources, want 2 (txt file skipped)", len(sources))
	}
}

func TestLoadSourcesDirectoryAllUndecodableErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("nope"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := loadSources(dir); err == nil {
		t.Fatalf("expected an error when no readable images are found")
	}
}

func TestCacheHashRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cachePath := filepath.Join(dir, "out.dds.ddsenc-cache")

	if err := writeCacheHash(cachePath, 0xDEADBEEF); err != nil {
		t.Fatalf("writeCacheHash: %v", err)
	}
	got, ok, err := readCacheHash(cachePath)
	if err != nil {
		t.Fatalf("readCacheHash: %v", err)
	}
	if !ok || got != 0xDEADBEEF {
		t.Fatalf("readCacheHash = (%x,%t), want (deadbeef,true)", got, ok)
	}
}

func TestReadCacheHashMissingFile(t *testing.T) {
	t.Parallel()

	_, ok, err := readCacheHash(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("readCacheHash on missing file: %v", err)
	}
	if ok {
		t.Fatalf("readCacheHash on missing file reported ok=true")
	}
}

func TestShouldSkipJobUnchanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "hero.png")
	writePNG(t, inputPath, 4, 4)
	outputPath := filepath.Join(dir, "hero.dds")
	if err := os.WriteFile(outputPath, []byte("fake dds"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	hash, err := hashFileXX(inputPath)
	if err != nil {
		t.Fatalf("hashFileXX: %v", err)
	}
	cachePath := outputPath + ".ddsenc-cache"
	if err := writeCacheHash(cachePath, hash); err != nil {
		t.Fatalf("writeCacheHash: %v", err)
	}

	if !shouldSkipJob(cachePath, outputPath, hash) {
		t.Fatalf("expected shouldSkipJob to report true for an unchanged input/output pair")
	}
}

func TestShouldSkipJobChangedHash(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outputPath := filepath.Join(dir, "hero.dds")
	if err := os.WriteFile(outputPath, []byte("fake dds"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cachePath := outputPath + ".ddsenc-cache"
	if err := writeCacheHash(cachePath, 111); err != nil {
		t.Fatalf("writeCacheHash: %v", err)
	}

	if shouldSkipJob(cachePath, outputPath, 222) {
		t.Fatalf("expected shouldSkipJob to report false when the input hash changed")
	}
}

func TestMipCountDefaultsToOne(t *testing.T) {
	t.Parallel()

	h := &dds.Header{}
	if got := mipCount(h); got != 1 {
		t.Fatalf("mipCount(no flag) = %d, want 1", got)
	}

	h = &dds.Header{Flags: dds.DMipMapCount, MipMapCount: 5}
	if got := mipCount(h); got != 5 {
		t.Fatalf("mipCount(flag set) = %d, want 5", got)
	}
}

func TestFourCCString(t *testing.T) {
	t.Parallel()

	if got := fourCCString(dds.FourCC("DXT1")); got != "DXT1" {
		t.Fatalf("fourCCString(FourCC(DXT1)) = %q, want DXT1", got)
	}
}
