// Package ddsenc implements the DDS layer writer and encoder driver (§4.G,
// §4.I): it consumes a host's Image/LayerSource pair and an EncodeConfig
// and produces a complete DDS byte stream on a Sink.
package ddsenc

import (
	"github.com/woozymasta/ddsenc/internal/ddsimage"
	"github.com/woozymasta/ddsenc/internal/mipmap"
	"github.com/woozymasta/ddsenc/internal/pixelformat"
	"github.com/woozymasta/ddsenc/internal/topology"
)

// WriteDDS encodes image per cfg and writes the resulting DDS stream to
// sink. The image is always duplicated and, when requested, flipped before
// any pixel is read (§12): the driver never mutates the caller's original,
// so there is no separate "already a scratch copy" flag to thread through.
//
// interactive is reserved for callers that gate a dialog on a topology
// Report before ever calling WriteDDS (§9 Design Notes); the driver itself
// always re-derives and checks topology, so it does not consult this flag.
func WriteDDS(sink ddsimage.Sink, image ddsimage.ImageSource, selectedLayer ddsimage.LayerSource, interactive bool, cfg ddsimage.EncodeConfig) error {
	_ = interactive

	if cfg.Compression != ddsimage.CompressionNone && cfg.PixelFormat != ddsimage.PixelFormatDefault {
		return &ddsimage.ErrIncompatibleOption{Reason: "compression and an explicit uncompressed pixel format are mutually exclusive"}
	}
	if cfg.SaveType == ddsimage.SaveVolumemap && cfg.Compression != ddsimage.CompressionNone {
		return &ddsimage.ErrIncompatibleOption{Reason: "volume maps cannot be block-compressed"}
	}

	work := image.Duplicate()
	if cfg.FlipVertical {
		work = work.FlipVertical()
	}
	snap := snapshot(work)

	switch cfg.SaveType {
	case ddsimage.SaveCubemap:
		return writeCubemap(sink, work, snap, cfg)
	case ddsimage.SaveVolumemap:
		return writeVolume(sink, work, snap, cfg)
	case ddsimage.SaveArray:
		return writeArray(sink, work, snap, cfg)
	case ddsimage.SaveVisibleLayers:
		merged, err := work.MergeVisible()
		if err != nil {
			return err
		}
		return writeSingle(sink, work, snap, merged, cfg)
	default: // SaveSelectedLayer
		return writeSingle(sink, work, snap, selectedLayer, cfg)
	}
}

// snapshot builds the metadata-only Image the topology package classifies
// against, without reading any pixel data.
func snapshot(image ddsimage.ImageSource) *ddsimage.Image {
	w, h := image.Size()
	sources := image.Layers()
	layers := make([]ddsimage.Layer, len(sources))
	for i, l := range sources {
		lw, lh := l.Size()
		layers[i] = ddsimage.Layer{Name: l.Name(), Width: lw, Height: lh, Type: l.Type()}
	}
	palette, _ := image.Palette()
	return &ddsimage.Image{Width: w, Height: h, BaseType: image.BaseType(), Layers: layers, Palette: palette}
}

func mipOptionsFrom(cfg ddsimage.EncodeConfig) mipmap.Options {
	return mipmap.Options{
		Filter:                cfg.MipmapFilter,
		Wrap:                  cfg.MipmapWrap,
		GammaCorrect:          cfg.GammaCorrect,
		SRGB:                  cfg.SRGB,
		Gamma:                 cfg.Gamma,
		PreserveAlphaCoverage: cfg.PreserveAlphaCoverage,
		AlphaTestThreshold:    cfg.AlphaTestThreshold,
	}
}

func writeSingle(sink ddsimage.Sink, image ddsimage.ImageSource, snap *ddsimage.Image, layer ddsimage.LayerSource, cfg ddsimage.EncodeConfig) error {
	palette, count := image.Palette()
	w, h := layer.Size()

	var levels []surfaceLevel
	var err error
	switch cfg.MipmapMode {
	case ddsimage.MipmapGenerate:
		levels, err = buildSurfaceGenerated(layer, palette, cfg, mipOptionsFrom(cfg))
	case ddsimage.MipmapExisting:
		if ok, reason := topology.IsValidExistingMipmap(snap, cfg.SaveType); !ok {
			return &ddsimage.ErrInvalidMipmapChain{Reason: reason}
		}
		levels, err = buildSurface(image.Layers(), palette, cfg)
	default:
		levels, err = buildSurface([]ddsimage.LayerSource{layer}, palette, cfg)
	}
	if err != nil {
		return err
	}

	plan := planHeader(cfg, layer.Type(), w, h, 1, len(levels), 1, false, false, false)
	if isIndexedRawOutput(cfg, layer.Type()) {
		plan.palette = buildPaletteBytes(palette, count, cfg.TransparentIndex)
	}
	return emit(sink, plan, levels)
}

func writeCubemap(sink ddsimage.Sink, image ddsimage.ImageSource, snap *ddsimage.Image, cfg ddsimage.EncodeConfig) error {
	report := topology.Classify(snap)
	if !report.IsCubemap {
		return &ddsimage.ErrInvalidTopology{Expected: ddsimage.SaveCubemap, Reason: "layer set is not a valid cubemap"}
	}
	if cfg.MipmapMode == ddsimage.MipmapExisting {
		if ok, reason := topology.IsValidExistingMipmap(snap, ddsimage.SaveCubemap); !ok {
			return &ddsimage.ErrInvalidMipmapChain{Reason: reason}
		}
	}

	palette, count := image.Palette()
	sources := image.Layers()

	allLevels := make([][]surfaceLevel, 0, 6)
	for f := 0; f < 6; f++ {
		baseIdx := report.CubeFace[f]
		layer := sources[baseIdx]

		var levels []surfaceLevel
		var err error
		switch cfg.MipmapMode {
		case ddsimage.MipmapGenerate:
			levels, err = buildSurfaceGenerated(layer, palette, cfg, mipOptionsFrom(cfg))
		case ddsimage.MipmapExisting:
			levels, err = buildSurface(existingChainFor(sources, baseIdx, report.MipLevels), palette, cfg)
		default:
			levels, err = buildSurface([]ddsimage.LayerSource{layer}, palette, cfg)
		}
		if err != nil {
			return err
		}
		allLevels = append(allLevels, levels)
	}

	plan := planHeader(cfg, snap.BaseType, snap.Width, snap.Height, 1, len(allLevels[0]), 1, true, false, false)
	if isIndexedRawOutput(cfg, snap.BaseType) {
		plan.palette = buildPaletteBytes(palette, count, cfg.TransparentIndex)
	}
	return emitMulti(sink, plan, allLevels)
}

func writeArray(sink ddsimage.Sink, image ddsimage.ImageSource, snap *ddsimage.Image, cfg ddsimage.EncodeConfig) error {
	if !topology.IsArray(snap) {
		return &ddsimage.ErrInvalidTopology{Expected: ddsimage.SaveArray, Reason: "layer set is not a valid texture array"}
	}

	palette, count := image.Palette()
	sources := image.Layers()

	mipLevels := pixelformat.MipLevels(snap.Width, snap.Height)
	existingOK, existingReason := topology.IsValidExistingMipmap(snap, ddsimage.SaveArray)

	var baseIndices []int
	switch {
	case cfg.MipmapMode == ddsimage.MipmapExisting && existingOK:
		baseIndices = baseSurfaceIndices(snap, mipLevels)
	case cfg.MipmapMode == ddsimage.MipmapExisting:
		return &ddsimage.ErrInvalidMipmapChain{Reason: existingReason}
	default:
		baseIndices = plainBaseIndices(snap)
		if cfg.MipmapMode != ddsimage.MipmapGenerate {
			mipLevels = 1
		}
	}

	allLevels := make([][]surfaceLevel, 0, len(baseIndices))
	for _, idx := range baseIndices {
		layer := sources[idx]

		var levels []surfaceLevel
		var err error
		switch cfg.MipmapMode {
		case ddsimage.MipmapGenerate:
			levels, err = buildSurfaceGenerated(layer, palette, cfg, mipOptionsFrom(cfg))
		case ddsimage.MipmapExisting:
			levels, err = buildSurface(existingChainFor(sources, idx, mipLevels), palette, cfg)
		default:
			levels, err = buildSurface([]ddsimage.LayerSource{layer}, palette, cfg)
		}
		if err != nil {
			return err
		}
		allLevels = append(allLevels, levels)
	}

	plan := planHeader(cfg, snap.BaseType, snap.Width, snap.Height, 1, mipLevels, len(allLevels), false, false, true)
	if isIndexedRawOutput(cfg, snap.BaseType) {
		plan.palette = buildPaletteBytes(palette, count, cfg.TransparentIndex)
	}
	return emitMulti(sink, plan, allLevels)
}

func writeVolume(sink ddsimage.Sink, image ddsimage.ImageSource, snap *ddsimage.Image, cfg ddsimage.EncodeConfig) error {
	if !topology.IsVolume(snap) {
		return &ddsimage.ErrInvalidTopology{Expected: ddsimage.SaveVolumemap, Reason: "layer set is not a valid volume map"}
	}
	if cfg.MipmapMode == ddsimage.MipmapExisting {
		return &ddsimage.ErrInvalidMipmapChain{Reason: "existing mipmap chains are not valid for volume maps"}
	}

	palette, _ := image.Palette()
	sources := image.Layers()

	levels, err := buildVolume(sources, palette, cfg, mipOptionsFrom(cfg))
	if err != nil {
		return err
	}

	plan := planHeader(cfg, snap.BaseType, snap.Width, snap.Height, len(sources), len(levels), 1, false, true, false)
	return emitVolume(sink, plan, levels)
}

// existingChainFor returns the mipLevels consecutive layers making up one
// surface's pre-built chain, starting at its level-0 index (§3: existing
// chains group a surface's levels contiguously, surface-major).
func existingChainFor(sources []ddsimage.LayerSource, baseIdx, mipLevels int) []ddsimage.LayerSource {
	return sources[baseIdx : baseIdx+mipLevels]
}

func baseSurfaceIndices(snap *ddsimage.Image, mipLevels int) []int {
	n := len(snap.Layers) / mipLevels
	out := make([]int, n)
	for i := range out {
		out[i] = i * mipLevels
	}
	return out
}

func plainBaseIndices(snap *ddsimage.Image) []int {
	var out []int
	for i, l := range snap.Layers {
		if l.Width == snap.Width && l.Height == snap.Height {
			out = append(out, i)
		}
	}
	return out
}
