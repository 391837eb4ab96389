package pixelformat

import (
	"testing"

	"github.com/woozymasta/ddsenc/internal/ddsimage"
)

func TestMipLevels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		w, h, want int
	}{
		{1, 1, 1},
		{2, 2, 2},
		{4, 4, 3},
		{256, 256, 9},
		{256, 1, 9},
		{1, 256, 9},
		{100, 100, 7},
	}
	for _, c := range cases {
		if got := MipLevels(c.w, c.h); got != c.want {
			t.Errorf("MipLevels(%d,%d) = %d, want %d", c.w, c.h, got, c.want)
		}
	}
}

func TestLevelDims(t *testing.T) {
	t.Parallel()

	w, h := LevelDims(256, 256, 0)
	if w != 256 || h != 256 {
		t.Fatalf("level 0 dims = %dx%d, want 256x256", w, h)
	}

	w, h = LevelDims(256, 256, 8)
	if w != 1 || h != 1 {
		t.Fatalf("level 8 dims = %dx%d, want 1x1", w, h)
	}

	// Never drops below 1x1 even past the chain's natural end.
	w, h = LevelDims(4, 4, 10)
	if w != 1 || h != 1 {
		t.Fatalf("past-end level dims = %dx%d, want 1x1", w, h)
	}
}

func TestSurfaceSizeUncompressed(t *testing.T) {
	t.Parallel()

	// Single level, 4 bytes/pixel: just width*height*bpp.
	got := SurfaceSize(4, 4, 1, 4, ddsimage.CompressionNone)
	want := 4 * 4 * 4
	if got != want {
		t.Fatalf("SurfaceSize = %d, want %d", got, want)
	}
}

func TestSurfaceSizeCompressed(t *testing.T) {
	t.Parallel()

	// BC1 is 8 bytes per 4x4 block; a single 4x4 level is exactly one block.
	got := SurfaceSize(4, 4, 1, 0, ddsimage.CompressionBC1)
	if got != 8 {
		t.Fatalf("SurfaceSize(BC1, 4x4) = %d, want 8", got)
	}
}

func TestVolumeSurfaceSize(t *testing.T) {
	t.Parallel()

	// Level 0 has depth slices of full size; deeper mip levels shrink depth
	// along with width/height.
	got := VolumeSurfaceSize(4, 4, 4, 1, 4, ddsimage.CompressionNone)
	want := 4 * 4 * 4 * 4
	if got != want {
		t.Fatalf("VolumeSurfaceSize = %d, want %d", got, want)
	}
}
