package ddsenc

import (
	"github.com/woozymasta/ddsenc/internal/dds"
	"github.com/woozymasta/ddsenc/internal/ddsimage"
	"github.com/woozymasta/ddsenc/internal/pixelformat"
)

// headerPlan is the built DDS_HEADER, and its DX10 extension when present.
type headerPlan struct {
	header  *dds.Header
	dx10    *dds.HeaderDx10
	palette []byte // 1024 bytes, non-nil only for indexed/default/uncompressed (§4.H)
}

// planHeader assembles the on-disk header for one encode (§4.H, §4.I).
// isArray is the only topology that carries the DX10 extension header
// (§14 Open Question: DX10 is used solely to carry ArraySize).
func planHeader(cfg ddsimage.EncodeConfig, baseType ddsimage.PixelType, w, h, depth, mipCount, arraySize int, isCubemap, isVolume, isArray bool) headerPlan {
	format := resolvePixelFormat(cfg, baseType)
	info := pixelformat.Describe(format)

	params := dds.BuildParams{
		Width: uint32(w), Height: uint32(h), Depth: uint32(depth),
		MipMapCount: uint32(mipCount), ArraySize: uint32(arraySize),
		IsCubemap: isCubemap, IsVolume: isVolume,
	}

	switch {
	case cfg.Compression != ddsimage.CompressionNone:
		params.FourCC = dds.FourCC(cfg.Compression.FourCC())
		params.PixelFormatFlags = dds.PFFourCC
		if cfg.Compression.SetsNormalFlag() {
			params.PixelFormatFlags |= dds.PFNormal
		}
		if sem := cfg.Compression.SemanticFourCC(); sem != "" {
			params.SemanticFourCC = dds.FourCC(sem)
		}
		params.LinearSize = true
		params.PitchOrLinearSize = uint32(pixelformat.CompressedLevelSize(w, h, cfg.Compression))
	case isIndexedRawOutput(cfg, baseType):
		// §4.H: raw palette-index bytes, one per pixel, with a 256-entry
		// RGBA palette emitted right after the header (§4.I step 5).
		params.PixelFormatFlags = dds.PFPaletteIndexed8
		params.RGBBitCount = 8
		params.LinearSize = false
		params.PitchOrLinearSize = uint32(w)
	default:
		params.PixelFormatFlags = pixelFormatFlags(info, format)
		params.RGBBitCount = uint32(info.BytesPerPixel * 8)
		params.RMask, params.GMask, params.BMask, params.AMask = info.RMask, info.GMask, info.BMask, info.AMask
		params.LinearSize = false
		params.PitchOrLinearSize = uint32(w * info.BytesPerPixel)
	}

	params.IsDX10 = isArray
	if isArray {
		params.DXGIFormat = dxgiFormatFor(cfg, info)
	}

	header := dds.BuildHeader(params)
	var dx10 *dds.HeaderDx10
	if isArray {
		dx10 = dds.BuildHeaderDx10(params.DXGIFormat, uint32(arraySize))
	}
	return headerPlan{header: header, dx10: dx10}
}

// buildPaletteBytes assembles the 256-entry RGBA palette written right
// after the header for the indexed/default/uncompressed case (§4.H,
// scenario 6): entries beyond count are zero, the transparentIndex entry
// has A=0, every other real entry has A=255.
func buildPaletteBytes(colors []ddsimage.RGB, count, transparentIndex int) []byte {
	out := make([]byte, 256*4)
	for i := 0; i < count && i < 256 && i < len(colors); i++ {
		c := colors[i]
		a := uint8(255)
		if i == transparentIndex {
			a = 0
		}
		out[i*4], out[i*4+1], out[i*4+2], out[i*4+3] = c.R, c.G, c.B, a
	}
	return out
}

func pixelFormatFlags(info pixelformat.Info, format ddsimage.PixelFormat) uint32 {
	if format == ddsimage.PixelFormatA8 {
		return dds.PFAlphaPixels | dds.PFAlpha
	}
	flags := uint32(0)
	if info.IsLuminance {
		flags |= dds.PFLuminance
	} else {
		flags |= dds.PFRGB
	}
	if info.HasAlpha {
		flags |= dds.PFAlphaPixels
	}
	return flags
}

func dxgiFormatFor(cfg ddsimage.EncodeConfig, info pixelformat.Info) uint32 {
	switch cfg.Compression {
	case ddsimage.CompressionBC1:
		return 71 // DXGI_FORMAT_BC1_UNORM
	case ddsimage.CompressionBC2:
		return 74 // DXGI_FORMAT_BC2_UNORM
	case ddsimage.CompressionBC3, ddsimage.CompressionBC3n, ddsimage.CompressionRXGB,
		ddsimage.CompressionYCoCg, ddsimage.CompressionYCoCgS, ddsimage.CompressionAExp:
		return 77 // DXGI_FORMAT_BC3_UNORM
	case ddsimage.CompressionBC4:
		return 80 // DXGI_FORMAT_BC4_UNORM
	case ddsimage.CompressionBC5:
		return 83 // DXGI_FORMAT_BC5_UNORM
	default:
		return info.DXGIFormat
	}
}
