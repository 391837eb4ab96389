package dds

import (
	"bytes"
	"testing"
)

func TestFourCCRoundTrip(t *testing.T) {
	t.Parallel()

	v := FourCC("DXT1")
	if got := string([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}); got != "DXT1" {
		t.Fatalf("FourCC round trip = %q, want DXT1", got)
	}
}

func TestBuildWriteReadHeaderRoundTrip(t *testing.T) {
	t.Parallel()

	params := BuildParams{
		Width: 64, Height: 64, Depth: 1,
		MipMapCount:      7,
		PixelFormatFlags: PFFourCC,
		FourCC:           FourCC("DXT1"),
		PitchOrLinearSize: 2048,
		LinearSize:        true,
	}
	h := BuildHeader(params)

	var buf bytes.Buffer
	if err := WriteMagic(&buf); err != nil {
		t.Fatalf("WriteMagic: %v", err)
	}
	if err := WriteHeader(&buf, h); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}

	got, err := ReadHeader(&buf)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}

	if got.Width != h.Width || got.Height != h.Height || got.MipMapCount != h.MipMapCount {
		t.Fatalf("round trip dims/mips = %+v, want %+v", got, h)
	}
	if got.PixelFormat.FourCC != h.PixelFormat.FourCC {
		t.Fatalf("round trip FourCC = %x, want %x", got.PixelFormat.FourCC, h.PixelFormat.FourCC)
	}
	if got.Caps != h.Caps || got.Caps2 != h.Caps2 {
		t.Fatalf("round trip caps = (%x,%x), want (%x,%x)", got.Caps, got.Caps2, h.Caps, h.Caps2)
	}
}

func TestBuildHeaderCubemapFlags(t *testing.T) {
	t.Parallel()

	h := BuildHeader(BuildParams{Width: 32, Height: 32, Depth: 1, MipMapCount: 1, IsCubemap: true})
	if h.Caps2&Caps2Cubemap == 0 {
		t.Fatalf("cubemap header missing Caps2Cubemap flag")
	}
	if h.Caps2&Caps2CubemapAllFaces != Caps2CubemapAllFaces {
		t.Fatalf("cubemap header missing all-faces flags")
	}
	if h.Caps&CapsComplex == 0 {
		t.Fatalf("cubemap header missing CapsComplex flag")
	}
}

func TestBuildHeaderVolumeFlags(t *testing.T) {
	t.Parallel()

	h := BuildHeader(BuildParams{Width: 16, Height: 16, Depth: 4, MipMapCount: 1, IsVolume: true})
	if h.Flags&HeaderFlagsVolume == 0 {
		t.Fatalf("volume header missing DDepth flag")
	}
	if h.Caps2&Caps2Volume == 0 {
		t.Fatalf("volume header missing Caps2Volume flag")
	}
}

func TestReadHeaderRejectsBadMagic(t *testing.T) {
	t.Parallel()

	buf := bytes.NewBufferString("NOPE")
	if _, err := ReadHeader(buf); err == nil {
		t.Fatalf("expected an error for bad magic")
	}
}

func TestBuildHeaderDx10RoundTrip(t *testing.T) {
	t.Parallel()

	dx10 := BuildHeaderDx10(77, 3)

	var buf bytes.Buffer
	if err := WriteHeaderDx10(&buf, dx10); err != nil {
		t.Fatalf("WriteHeaderDx10: %v", err)
	}

	h := BuildHeader(BuildParams{Width: 8, Height: 8, Depth: 1, MipMapCount: 1, IsDX10: true})
	got, err := ReadHeaderDx10(&buf, h)
	if err != nil {
		t.Fatalf("ReadHeaderDx10: %v", err)
	}
	if got.DXGIFormat != 77 || got.ArraySize != 3 {
		t.Fatalf("ReadHeaderDx10 = %+v, want DXGIFormat=77 ArraySize=3", got)
	}
}
