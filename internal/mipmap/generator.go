// Package mipmap generates a mipmap chain from a level-0 RGBA8 buffer
// (§4.D), grounded on the box-filter halving kernel of the EDDS mip
// generator this package was adapted from, generalized with wrap modes, gamma-correct
// averaging, and alpha-coverage preservation.
package mipmap

import (
	"math"

	"github.com/woozymasta/ddsenc/internal/ddsimage"
)

// Options carries the EncodeConfig fields the filter needs (§3).
type Options struct {
	Filter                ddsimage.MipmapFilter
	Wrap                  ddsimage.MipmapWrap
	GammaCorrect          bool
	SRGB                  bool
	Gamma                 float64
	PreserveAlphaCoverage bool
	AlphaTestThreshold    uint8
}

// GenerateChain produces levels 1..levels-1 of the mipmap chain from a
// level-0 RGBA8 buffer (level 0 itself is the caller's responsibility to
// keep; §4.G only asks the kernel for the sub-levels).
func GenerateChain(level0 []byte, w, h, levels int, opts Options) [][]byte {
	out := make([][]byte, 0, levels-1)
	if levels <= 1 {
		return out
	}

	var refCoverage float64
	if opts.PreserveAlphaCoverage {
		refCoverage = coverage(level0, opts.AlphaTestThreshold)
	}

	cur := level0
	curW, curH := w, h
	for k := 1; k < levels; k++ {
		nextW, nextH := halve(curW), halve(curH)
		next := resizeToHalf(cur, curW, curH, nextW, nextH, opts)
		if opts.PreserveAlphaCoverage {
			rescaleAlphaCoverage(next, refCoverage, opts.AlphaTestThreshold)
		}
		out = append(out, next)
		cur, curW, curH = next, nextW, nextH
	}
	return out
}

func halve(n int) int {
	n >>= 1
	if n < 1 {
		return 1
	}
	return n
}

// wrapCoord maps a possibly out-of-range sample coordinate back into
// [0,n) per the configured wrap mode (§4.D).
func wrapCoord(x, n int, mode ddsimage.MipmapWrap) int {
	if n <= 1 {
		return 0
	}
	switch mode {
	case ddsimage.WrapMirror:
		period := 2 * n
		x = ((x % period) + period) % period
		if x >= n {
			x = period - 1 - x
		}
		return x
	case ddsimage.WrapRepeat:
		return ((x % n) + n) % n
	default: // WrapClamp
		if x < 0 {
			return 0
		}
		if x >= n {
			return n - 1
		}
		return x
	}
}

func linearize(v uint8, gamma float64) float64 {
	return math.Pow(float64(v)/255.0, gamma)
}

func delinearize(v float64, gamma float64) uint8 {
	if v < 0 {
		v = 0
	}
	out := math.Pow(v, 1.0/gamma) * 255.0
	return roundByte(out)
}

func roundByte(v float64) uint8 {
	v = math.Floor(v + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// boxTaps is the 2x2 box filter's sample offsets and weights, each weight
// 1/4: the plain average of the four texels a 2x downsample covers exactly.
var boxTaps = []filterTap{
	{0, 0, 1}, {1, 0, 1},
	{0, 1, 1}, {1, 1, 1},
}

// triangleTaps is a width-4 tent filter's sample offsets and weights
// (1-3-3-1 per axis, outer product, total weight 64): unlike the box
// filter's hard-edged 2x2 footprint, it blends across texel boundaries,
// trading sharpness for reduced ringing on repeated downsampling (§4.D
// FilterTriangle).
var triangleTaps = buildTriangleTaps()

type filterTap struct {
	dx, dy int
	weight float64
}

func buildTriangleTaps() []filterTap {
	offsets := [4]int{-1, 0, 1, 2}
	weights := [4]float64{1, 3, 3, 1}
	taps := make([]filterTap, 0, 16)
	for j, dy := range offsets {
		for i, dx := range offsets {
			taps = append(taps, filterTap{dx: dx, dy: dy, weight: weights[i] * weights[j]})
		}
	}
	return taps
}

// resizeToHalf filters a level down to half size per destination texel,
// honoring wrap mode, the selected filter kernel, and optional
// gamma-correct averaging.
func resizeToHalf(src []byte, srcW, srcH, dstW, dstH int, opts Options) []byte {
	taps := boxTaps
	totalWeight := 4.0
	if opts.Filter == ddsimage.FilterTriangle {
		taps = triangleTaps
		totalWeight = 64.0
	}

	dst := make([]byte, dstW*dstH*4)
	gamma := opts.Gamma
	if gamma <= 0 {
		gamma = 2.2
	}

	idx := func(x, y int) int {
		x = wrapCoord(x, srcW, opts.Wrap)
		y = wrapCoord(y, srcH, opts.Wrap)
		return (y*srcW + x) * 4
	}

	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			srcX, srcY := x*2, y*2
			dstIdx := (y*dstW + x) * 4

			for c := 0; c < 4; c++ {
				if opts.GammaCorrect && c < 3 {
					sum := 0.0
					for _, t := range taps {
						off := idx(srcX+t.dx, srcY+t.dy)
						sum += linearize(src[off+c], gamma) * t.weight
					}
					dst[dstIdx+c] = delinearize(sum/totalWeight, gamma)
				} else {
					sum := 0.0
					for _, t := range taps {
						off := idx(srcX+t.dx, srcY+t.dy)
						sum += float64(src[off+c]) * t.weight
					}
					dst[dstIdx+c] = roundByte(sum / totalWeight)
				}
			}
		}
	}
	return dst
}

// coverage returns the fraction of alpha-channel samples at or above
// threshold, the quantity alpha-test mipmap preservation tries to hold
// constant across the chain.
func coverage(rgba []byte, threshold uint8) float64 {
	if len(rgba) == 0 {
		return 0
	}
	n := len(rgba) / 4
	hits := 0
	for i := 0; i < n; i++ {
		if rgba[i*4+3] >= threshold {
			hits++
		}
	}
	return float64(hits) / float64(n)
}

// rescaleAlphaCoverage scales a mip level's alpha channel by a single
// factor, binary-searched so its alpha-test coverage matches target
// (within one texel's tolerance), so alpha-tested foliage/fences don't
// thin out as they shrink.
func rescaleAlphaCoverage(rgba []byte, target float64, threshold uint8) {
	if target <= 0 || target >= 1 {
		return
	}
	lo, hi := 0.0, 4.0
	var scale float64
	for i := 0; i < 12; i++ {
		scale = (lo + hi) / 2
		if coverageAt(rgba, threshold, scale) < target {
			lo = scale
		} else {
			hi = scale
		}
	}
	scale = hi
	n := len(rgba) / 4
	for i := 0; i < n; i++ {
		a := float64(rgba[i*4+3]) * scale
		rgba[i*4+3] = roundByte(a)
	}
}

func coverageAt(rgba []byte, threshold uint8, scale float64) float64 {
	n := len(rgba) / 4
	if n == 0 {
		return 0
	}
	hits := 0
	for i := 0; i < n; i++ {
		if roundByte(float64(rgba[i*4+3])*scale) >= threshold {
			hits++
		}
	}
	return float64(hits) / float64(n)
}
