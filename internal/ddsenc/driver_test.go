package ddsenc_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/woozymasta/ddsenc/internal/dds"
	"github.com/woozymasta/ddsenc/internal/ddsenc"
	"github.com/woozymasta/ddsenc/internal/ddsimage"
	"github.com/woozymasta/ddsenc/internal/imageio"
)

func solidRGBA(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func readHeader(t *testing.T, buf *bytes.Buffer) (*dds.Header, *dds.HeaderDx10) {
	t.Helper()
	h, err := dds.ReadHeader(buf)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	dx10, err := dds.ReadHeaderDx10(buf, h)
	if err != nil {
		t.Fatalf("ReadHeaderDx10: %v", err)
	}
	return h, dx10
}

// Scenario 1: a single uncompressed layer, no mipmaps.
func TestWriteDDSSelectedLayerUncompressed(t *testing.T) {
	t.Parallel()

	img := solidRGBA(8, 8, color.RGBA{R: 255, A: 255})
	src, err := imageio.NewImage([]imageio.Source{{Name: "base", Image: img, Visible: true}})
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	layer := src.Layers()[0]

	var buf bytes.Buffer
	cfg := ddsimage.DefaultEncodeConfig()
	if err := ddsenc.WriteDDS(&buf, src, layer, false, cfg); err != nil {
		t.Fatalf("WriteDDS: %v", err)
	}

	h, _ := readHeader(t, &buf)
	if h.Width != 8 || h.Height != 8 {
		t.Fatalf("header dims = %dx%d, want 8x8", h.Width, h.Height)
	}
	if h.MipMapCount != 1 {
		t.Fatalf("header mip count = %d, want 1 (single level, no mipmaps requested)", h.MipMapCount)
	}
}

// Scenario 2: BC1 compression with generated mipmaps.
func TestWriteDDSBC1WithMipmaps(t *testing.T) {
	t.Parallel()

	img := solidRGBA(16, 16, color.RGBA{G: 255, A: 255})
	src, err := imageio.NewImage([]imageio.Source{{Name: "base", Image: img, Visible: true}})
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	layer := src.Layers()[0]

	cfg := ddsimage.DefaultEncodeConfig()
	cfg.Compression = ddsimage.CompressionBC1
	cfg.MipmapMode = ddsimage.MipmapGenerate

	var buf bytes.Buffer
	if err := ddsenc.WriteDDS(&buf, src, layer, false, cfg); err != nil {
		t.Fatalf("WriteDDS: %v", err)
	}

	h, _ := readHeader(t, &buf)
	if h.MipMapCount != 5 {
		t.Fatalf("header mip count = %d, want 5 (16x16 chain)", h.MipMapCount)
	}
	if h.PixelFormat.FourCC != dds.FourCC("DXT1") {
		t.Fatalf("header FourCC = %x, want DXT1", h.PixelFormat.FourCC)
	}
}

// Scenario 3: cubemap from 6 named layers.
func TestWriteDDSCubemap(t *testing.T) {
	t.Parallel()

	names := []string{"pos x", "neg x", "pos y", "neg y", "pos z", "neg z"}
	sources := make([]imageio.Source, len(names))
	for i, n := range names {
		sources[i] = imageio.Source{Name: n, Image: solidRGBA(4, 4, color.RGBA{B: 255, A: 255}), Visible: true}
	}
	src, err := imageio.NewImage(sources)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}

	cfg := ddsimage.DefaultEncodeConfig()
	cfg.SaveType = ddsimage.SaveCubemap

	var buf bytes.Buffer
	if err := ddsenc.WriteDDS(&buf, src, src.Layers()[0], false, cfg); err != nil {
		t.Fatalf("WriteDDS: %v", err)
	}

	h, _ := readHeader(t, &buf)
	if h.Caps2&dds.Caps2Cubemap == 0 {
		t.Fatalf("header missing cubemap caps2 flag")
	}
}

// Scenario 3b: cubemap rejects a layer set missing a face.
func TestWriteDDSCubemapRejectsIncompleteFaces(t *testing.T) {
	t.Parallel()

	names := []string{"pos x", "pos x", "pos y", "neg y", "pos z", "neg z"}
	sources := make([]imageio.Source, len(names))
	for i, n := range names {
		sources[i] = imageio.Source{Name: n, Image: solidRGBA(4, 4, color.RGBA{A: 255}), Visible: true}
	}
	src, err := imageio.NewImage(sources)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}

	cfg := ddsimage.DefaultEncodeConfig()
	cfg.SaveType = ddsimage.SaveCubemap

	var buf bytes.Buffer
	err = ddsenc.WriteDDS(&buf, src, src.Layers()[0], false, cfg)
	if err == nil {
		t.Fatalf("expected an error for a cubemap missing -X")
	}
	if _, ok := err.(*ddsimage.ErrInvalidTopology); !ok {
		t.Fatalf("error = %T, want *ddsimage.ErrInvalidTopology", err)
	}
}

// Scenario 4: volume map from same-size same-type layers.
func TestWriteDDSVolume(t *testing.T) {
	t.Parallel()

	sources := make([]imageio.Source, 4)
	for i := range sources {
		sources[i] = imageio.Source{Name: "slice", Image: solidRGBA(4, 4, color.RGBA{R: 50, A: 255}), Visible: true}
	}
	src, err := imageio.NewImage(sources)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}

	cfg := ddsimage.DefaultEncodeConfig()
	cfg.SaveType = ddsimage.SaveVolumemap

	var buf bytes.Buffer
	if err := ddsenc.WriteDDS(&buf, src, src.Layers()[0], false, cfg); err != nil {
		t.Fatalf("WriteDDS: %v", err)
	}

	h, _ := readHeader(t, &buf)
	if h.Caps2&dds.Caps2Volume == 0 {
		t.Fatalf("header missing volume caps2 flag")
	}
	if h.Depth != 4 {
		t.Fatalf("header depth = %d, want 4", h.Depth)
	}
}

// Scenario 5: texture array, written with a DX10 extension header.
func TestWriteDDSArray(t *testing.T) {
	t.Parallel()

	sources := make([]imageio.Source, 3)
	for i := range sources {
		sources[i] = imageio.Source{Name: "elem", Image: solidRGBA(4, 4, color.RGBA{A: 255}), Visible: true}
	}
	src, err := imageio.NewImage(sources)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}

	cfg := ddsimage.DefaultEncodeConfig()
	cfg.SaveType = ddsimage.SaveArray

	var buf bytes.Buffer
	if err := ddsenc.WriteDDS(&buf, src, src.Layers()[0], false, cfg); err != nil {
		t.Fatalf("WriteDDS: %v", err)
	}

	h, dx10 := readHeader(t, &buf)
	if h.PixelFormat.FourCC != dds.FourCCDX10 {
		t.Fatalf("array header FourCC = %x, want DX10", h.PixelFormat.FourCC)
	}
	if dx10 == nil {
		t.Fatalf("expected a DX10 extension header for an array")
	}
	if dx10.ArraySize != 3 {
		t.Fatalf("DX10 ArraySize = %d, want 3", dx10.ArraySize)
	}
}

// Scenario 6: indexed/default pixel format emits the 1024-byte palette.
func TestWriteDDSIndexedEmitsPalette(t *testing.T) {
	t.Parallel()

	pal := color.Palette{
		color.RGBA{0, 0, 0, 255},
		color.RGBA{255, 0, 0, 255},
		color.RGBA{0, 255, 0, 255},
	}
	img := image.NewPaletted(image.Rect(0, 0, 4, 4), pal)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetColorIndex(x, y, 1)
		}
	}

	src, err := imageio.NewImage([]imageio.Source{{Name: "base", Image: img, Visible: true}})
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}

	cfg := ddsimage.DefaultEncodeConfig()

	var buf bytes.Buffer
	if err := ddsenc.WriteDDS(&buf, src, src.Layers()[0], false, cfg); err != nil {
		t.Fatalf("WriteDDS: %v", err)
	}

	h, _ := readHeader(t, &buf)
	if h.PixelFormat.Flags&dds.PFPaletteIndexed8 == 0 {
		t.Fatalf("header missing PFPaletteIndexed8 flag")
	}

	paletteBytes := make([]byte, 1024)
	if _, err := buf.Read(paletteBytes); err != nil {
		t.Fatalf("reading palette bytes: %v", err)
	}
	// Entry 1 is red, written right after the header.
	if paletteBytes[4] != 255 || paletteBytes[5] != 0 || paletteBytes[6] != 0 || paletteBytes[7] != 255 {
		t.Fatalf("palette entry 1 = %v, want [255 0 0 255]", paletteBytes[4:8])
	}

	pixelBytes := make([]byte, 4*4)
	if _, err := buf.Read(pixelBytes); err != nil {
		t.Fatalf("reading pixel bytes: %v", err)
	}
	for _, b := range pixelBytes {
		if b != 1 {
			t.Fatalf("pixel byte = %d, want 1 (raw palette index)", b)
		}
	}
}

// Volume maps are never block-compressed (§3: "When SaveType = Volumemap,
// Compression must be None").
func TestWriteDDSRejectsVolumeWithCompression(t *testing.T) {
	t.Parallel()

	sources := make([]imageio.Source, 4)
	for i := range sources {
		sources[i] = imageio.Source{Name: "slice", Image: solidRGBA(4, 4, color.RGBA{R: 50, A: 255}), Visible: true}
	}
	src, err := imageio.NewImage(sources)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}

	cfg := ddsimage.DefaultEncodeConfig()
	cfg.SaveType = ddsimage.SaveVolumemap
	cfg.Compression = ddsimage.CompressionBC1

	var buf bytes.Buffer
	err = ddsenc.WriteDDS(&buf, src, src.Layers()[0], false, cfg)
	if err == nil {
		t.Fatalf("expected an error for a compressed volume map")
	}
	if _, ok := err.(*ddsimage.ErrIncompatibleOption); !ok {
		t.Fatalf("error = %T, want *ddsimage.ErrIncompatibleOption", err)
	}
}

func TestWriteDDSRejectsCompressionWithExplicitPixelFormat(t *testing.T) {
	t.Parallel()

	img := solidRGBA(4, 4, color.RGBA{A: 255})
	src, err := imageio.NewImage([]imageio.Source{{Name: "base", Image: img, Visible: true}})
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}

	cfg := ddsimage.DefaultEncodeConfig()
	cfg.Compression = ddsimage.CompressionBC1
	cfg.PixelFormat = ddsimage.PixelFormatRGBA8

	var buf bytes.Buffer
	err = ddsenc.WriteDDS(&buf, src, src.Layers()[0], false, cfg)
	if err == nil {
		t.Fatalf("expected an error for conflicting compression/pixel format")
	}
	if _, ok := err.(*ddsimage.ErrIncompatibleOption); !ok {
		t.Fatalf("error = %T, want *ddsimage.ErrIncompatibleOption", err)
	}
}
