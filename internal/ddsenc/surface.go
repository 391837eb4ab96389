package ddsenc

import (
	"github.com/woozymasta/ddsenc/internal/bcn"
	"github.com/woozymasta/ddsenc/internal/ddsimage"
	"github.com/woozymasta/ddsenc/internal/mipmap"
	"github.com/woozymasta/ddsenc/internal/pixelformat"
)

// surfaceLevel is one encoded mip level's on-disk payload.
type surfaceLevel struct {
	w, h int
	data []byte
}

// volumeLevel is one volume mip level's on-disk payload: depth slices
// already concatenated in z order.
type volumeLevel struct {
	w, h, d int
	data    []byte
}

// encodeLevel runs one fetched layer through stages 2-7 of §4.G: indexed
// collapse already happened in fetchLayer, so from here it's palette
// expansion (when the destination needs color), channel precondition, and
// either a pack kernel or a BCn block encoder.
func encodeLevel(sp sourcePixels, palette []ddsimage.RGB, cfg ddsimage.EncodeConfig) ([]byte, error) {
	if isIndexedRawOutput(cfg, sp.typ) {
		return append([]byte(nil), sp.indices...), nil
	}

	format := resolvePixelFormat(cfg, sp.typ)

	if sp.typ.IsIndexed() {
		if cfg.Compression == ddsimage.CompressionNone && format == ddsimage.PixelFormatA8 {
			return packLevel(nil, sp.indices, format), nil
		}
		return encodeCanonicalLevel(expandPalette(sp.indices, palette), sp.w, sp.h, format, cfg)
	}
	return encodeCanonicalLevel(sp.rgba, sp.w, sp.h, format, cfg)
}

// encodeCanonicalLevel encodes a buffer that is already canonical RGBA8
// (never raw indices): precondition-then-pack for uncompressed output,
// precondition-then-block-compress otherwise.
func encodeCanonicalLevel(rgba []byte, w, h int, format ddsimage.PixelFormat, cfg ddsimage.EncodeConfig) ([]byte, error) {
	if cfg.Compression == ddsimage.CompressionNone {
		return packLevel(rgba, nil, format), nil
	}
	return bcn.Compress(cfg.Compression, precondition(rgba, cfg.Compression), w, h, cfg.PerceptualMetric)
}

// buildSurface encodes a surface whose mip levels are each given directly
// by a LayerSource (§3: MipmapNone's single layer, or MipmapExisting's
// pre-built chain).
func buildSurface(layers []ddsimage.LayerSource, palette []ddsimage.RGB, cfg ddsimage.EncodeConfig) ([]surfaceLevel, error) {
	out := make([]surfaceLevel, 0, len(layers))
	for _, layer := range layers {
		sp, err := fetchLayer(layer)
		if err != nil {
			return nil, err
		}
		data, err := encodeLevel(sp, palette, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, surfaceLevel{w: sp.w, h: sp.h, data: data})
	}
	return out, nil
}

// buildSurfaceGenerated encodes a surface whose sub-levels are synthesized
// by the mipmap kernel (§4.D, box or triangle filter per opts.Filter) from
// a single level-0 layer.
// Indexed sources are promoted to RGBA8 first: mip generation needs to
// average colors, which palette indices cannot do (§12).
func buildSurfaceGenerated(layer ddsimage.LayerSource, palette []ddsimage.RGB, cfg ddsimage.EncodeConfig, opts mipmap.Options) ([]surfaceLevel, error) {
	sp, err := fetchLayer(layer)
	if err != nil {
		return nil, err
	}
	rgba := sp.rgba
	if sp.typ.IsIndexed() {
		rgba = expandPalette(sp.indices, palette)
	}

	format := resolvePixelFormat(cfg, sp.typ)
	levels := pixelformat.MipLevels(sp.w, sp.h)

	out := make([]surfaceLevel, 0, levels)
	data0, err := encodeCanonicalLevel(rgba, sp.w, sp.h, format, cfg)
	if err != nil {
		return nil, err
	}
	out = append(out, surfaceLevel{w: sp.w, h: sp.h, data: data0})

	chain := mipmap.GenerateChain(rgba, sp.w, sp.h, levels, opts)
	w, h := sp.w, sp.h
	for _, lvl := range chain {
		w, h = halveDim(w), halveDim(h)
		data, err := encodeCanonicalLevel(lvl, w, h, format, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, surfaceLevel{w: w, h: h, data: data})
	}
	return out, nil
}

// buildVolume encodes a volume map's depth slices into a mip chain (§4.G
// "Volume variant"): each depth slice is fetched and promoted to RGBA8,
// concatenated into one level-0 buffer, then the volume box filter (§4.D)
// produces sub-levels, and every level's slices are packed/compressed
// independently as ordinary 2D surfaces.
func buildVolume(layers []ddsimage.LayerSource, palette []ddsimage.RGB, cfg ddsimage.EncodeConfig, opts mipmap.Options) ([]volumeLevel, error) {
	depth := len(layers)
	w, h := layers[0].Size()
	baseType := layers[0].Type()

	level0 := make([]byte, 0, w*h*depth*4)
	for _, layer := range layers {
		sp, err := fetchLayer(layer)
		if err != nil {
			return nil, err
		}
		rgba := sp.rgba
		if sp.typ.IsIndexed() {
			rgba = expandPalette(sp.indices, palette)
		}
		level0 = append(level0, rgba...)
	}

	format := resolvePixelFormat(cfg, baseType)

	levelsCount := 1
	if cfg.MipmapMode == ddsimage.MipmapGenerate {
		levelsCount = pixelformat.MipLevels(maxInt(w, h), depth)
	}

	out := make([]volumeLevel, 0, levelsCount)
	data0, err := encodeVolumeLevel(level0, w, h, depth, format, cfg)
	if err != nil {
		return nil, err
	}
	out = append(out, volumeLevel{w: w, h: h, d: depth, data: data0})

	if levelsCount > 1 {
		chain := mipmap.GenerateVolumeChain(level0, w, h, depth, levelsCount, opts)
		curW, curH, curD := w, h, depth
		for _, lvl := range chain {
			curW, curH, curD = halveDim(curW), halveDim(curH), halveDim(curD)
			data, err := encodeVolumeLevel(lvl, curW, curH, curD, format, cfg)
			if err != nil {
				return nil, err
			}
			out = append(out, volumeLevel{w: curW, h: curH, d: curD, data: data})
		}
	}
	return out, nil
}

func encodeVolumeLevel(rgba []byte, w, h, depth int, format ddsimage.PixelFormat, cfg ddsimage.EncodeConfig) ([]byte, error) {
	sliceBytes := w * h * 4
	out := make([]byte, 0, sliceBytes*depth)
	for z := 0; z < depth; z++ {
		data, err := encodeCanonicalLevel(rgba[z*sliceBytes:(z+1)*sliceBytes], w, h, format, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, data...)
	}
	return out, nil
}

func halveDim(n int) int {
	n >>= 1
	if n < 1 {
		return 1
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
