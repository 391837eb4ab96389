package ddsconfig

import (
	"testing"

	"github.com/woozymasta/ddsenc/internal/ddsimage"
)

func TestParseCompressionAliases(t *testing.T) {
	t.Parallel()

	cases := map[string]ddsimage.Compression{
		"":      ddsimage.CompressionNone,
		"BC1":   ddsimage.CompressionBC1,
		"dxt1":  ddsimage.CompressionBC1,
		"bc3n":  ddsimage.CompressionBC3n,
		"dxt5n": ddsimage.CompressionBC3n,
		"aexp":  ddsimage.CompressionAExp,
	}
	for in, want := range cases {
		got, err := ParseCompression(in)
		if err != nil {
			t.Fatalf("ParseCompression(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseCompression(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseCompressionUnknown(t *testing.T) {
	t.Parallel()

	if _, err := ParseCompression("not-a-real-format"); err == nil {
		t.Fatalf("expected an error for an unknown compression string")
	}
}

func TestParsePixelFormatDefault(t *testing.T) {
	t.Parallel()

	got, err := ParsePixelFormat("")
	if err != nil {
		t.Fatalf("ParsePixelFormat(\"\"): %v", err)
	}
	if got != ddsimage.PixelFormatDefault {
		t.Fatalf("ParsePixelFormat(\"\") = %v, want Default", got)
	}
}

func TestParseSaveTypeAliases(t *testing.T) {
	t.Parallel()

	if got, _ := ParseSaveType("volume"); got != ddsimage.SaveVolumemap {
		t.Fatalf("ParseSaveType(volume) = %v, want SaveVolumemap", got)
	}
	if got, _ := ParseSaveType("volumemap"); got != ddsimage.SaveVolumemap {
		t.Fatalf("ParseSaveType(volumemap) = %v, want SaveVolumemap", got)
	}
}

func TestParseMipmapWrapUnknown(t *testing.T) {
	t.Parallel()

	if _, err := ParseMipmapWrap("bogus"); err == nil {
		t.Fatalf("expected an error for an unknown wrap mode")
	}
}
