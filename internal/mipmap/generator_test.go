package mipmap

import (
	"testing"

	"github.com/woozymasta/ddsenc/internal/ddsimage"
)

func solidRGBA(w, h int, r, g, b, a byte) []byte {
	buf := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		buf[i*4+0] = r
		buf[i*4+1] = g
		buf[i*4+2] = b
		buf[i*4+3] = a
	}
	return buf
}

func TestGenerateChainLevelCountAndDims(t *testing.T) {
	t.Parallel()

	level0 := solidRGBA(8, 8, 200, 150, 100, 255)
	chain := GenerateChain(level0, 8, 8, 4, Options{})
	if len(chain) != 3 {
		t.Fatalf("GenerateChain produced %d levels, want 3", len(chain))
	}
	wantDims := [][2]int{{4, 4}, {2, 2}, {1, 1}}
	for i, level := range chain {
		w, h := wantDims[i][0], wantDims[i][1]
		if len(level) != w*h*4 {
			t.Fatalf("level %d has %d bytes, want %d (%dx%d)", i, len(level), w*h*4, w, h)
		}
	}
}

func TestGenerateChainNoLevelsRequested(t *testing.T) {
	t.Parallel()

	chain := GenerateChain(solidRGBA(4, 4, 1, 2, 3, 4), 4, 4, 1, Options{})
	if len(chain) != 0 {
		t.Fatalf("GenerateChain with levels=1 returned %d levels, want 0", len(chain))
	}
}

func TestGenerateChainSolidColorStaysSolid(t *testing.T) {
	t.Parallel()

	level0 := solidRGBA(4, 4, 128, 64, 32, 255)
	chain := GenerateChain(level0, 4, 4, 3, Options{})
	last := chain[len(chain)-1]
	if last[0] != 128 || last[1] != 64 || last[2] != 32 || last[3] != 255 {
		t.Fatalf("box-filtering a solid color changed it: got %v", last)
	}
}

func TestGenerateChainTriangleFilterSolidColorStaysSolid(t *testing.T) {
	t.Parallel()

	level0 := solidRGBA(4, 4, 128, 64, 32, 255)
	chain := GenerateChain(level0, 4, 4, 3, Options{Filter: ddsimage.FilterTriangle})
	last := chain[len(chain)-1]
	if last[0] != 128 || last[1] != 64 || last[2] != 32 || last[3] != 255 {
		t.Fatalf("triangle-filtering a solid color changed it: got %v", last)
	}
}

// The triangle filter's wider tent footprint must actually change the
// result relative to the box filter's 2x2 average on non-uniform input,
// otherwise FilterTriangle is a disguised no-op (§4.D).
func TestGenerateChainTriangleFilterDiffersFromBox(t *testing.T) {
	t.Parallel()

	level0 := make([]byte, 8*8*4)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			i := (y*8 + x) * 4
			v := byte(0)
			if (x+y)%2 == 0 {
				v = 255
			}
			level0[i], level0[i+1], level0[i+2], level0[i+3] = v, v, v, 255
		}
	}

	box := GenerateChain(level0, 8, 8, 2, Options{Filter: ddsimage.FilterBox})
	triangle := GenerateChain(level0, 8, 8, 2, Options{Filter: ddsimage.FilterTriangle})

	same := true
	for i := range box[0] {
		if box[0][i] != triangle[0][i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("FilterTriangle produced identical output to FilterBox on a checkerboard input")
	}
}

func TestWrapCoordClamp(t *testing.T) {
	t.Parallel()

	if got := wrapCoord(-1, 4, ddsimage.WrapClamp); got != 0 {
		t.Fatalf("wrapCoord(-1, clamp) = %d, want 0", got)
	}
	if got := wrapCoord(4, 4, ddsimage.WrapClamp); got != 3 {
		t.Fatalf("wrapCoord(4, clamp) = %d, want 3", got)
	}
}

func TestWrapCoordRepeat(t *testing.T) {
	t.Parallel()

	if got := wrapCoord(-1, 4, ddsimage.WrapRepeat); got != 3 {
		t.Fatalf("wrapCoord(-1, repeat) = %d, want 3", got)
	}
	if got := wrapCoord(4, 4, ddsimage.WrapRepeat); got != 0 {
		t.Fatalf("wrapCoord(4, repeat) = %d, want 0", got)
	}
}

func TestWrapCoordMirror(t *testing.T) {
	t.Parallel()

	if got := wrapCoord(-1, 4, ddsimage.WrapMirror); got != 0 {
		t.Fatalf("wrapCoord(-1, mirror) = %d, want 0", got)
	}
	if got := wrapCoord(4, 4, ddsimage.WrapMirror); got != 3 {
		t.Fatalf("wrapCoord(4, mirror) = %d, want 3", got)
	}
}

func TestCoveragePreservedAcrossChain(t *testing.T) {
	t.Parallel()

	// Half the texels fully opaque, half fully transparent, arranged so
	// box filtering below threshold collapses coverage without rescaling.
	level0 := make([]byte, 8*8*4)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			i := (y*8 + x) * 4
			a := byte(0)
			if x < 4 {
				a = 255
			}
			level0[i+0], level0[i+1], level0[i+2], level0[i+3] = 255, 255, 255, a
		}
	}
	refCoverage := coverage(level0, 128)

	opts := Options{PreserveAlphaCoverage: true, AlphaTestThreshold: 128}
	chain := GenerateChain(level0, 8, 8, 3, opts)
	for i, level := range chain {
		got := coverage(level, 128)
		if diff := got - refCoverage; diff < -0.3 || diff > 0.3 {
			t.Fatalf("level %d coverage = %.2f, want near reference %.2f", i, got, refCoverage)
		}
	}
}

func TestGenerateVolumeChainLevelCountAndDims(t *testing.T) {
	t.Parallel()

	level0 := solidRGBA(4, 4, 10, 20, 30, 255)
	level0 = append(level0, solidRGBA(4, 4, 10, 20, 30, 255)...)
	level0 = append(level0, solidRGBA(4, 4, 10, 20, 30, 255)...)
	level0 = append(level0, solidRGBA(4, 4, 10, 20, 30, 255)...)

	chain := GenerateVolumeChain(level0, 4, 4, 4, 3, Options{})
	if len(chain) != 2 {
		t.Fatalf("GenerateVolumeChain produced %d levels, want 2", len(chain))
	}
	if len(chain[0]) != 2*2*2*4 {
		t.Fatalf("level 1 has %d bytes, want %d (2x2x2)", len(chain[0]), 2*2*2*4)
	}
	if len(chain[1]) != 1*1*1*4 {
		t.Fatalf("level 2 has %d bytes, want %d (1x1x1)", len(chain[1]), 4)
	}
}
