package ddsenc

import "github.com/woozymasta/ddsenc/internal/ddsimage"

// sourcePixels holds one fetched layer's pixels, expanded to canonical RGBA8
// (§4.G stage 1) except for indexed sources, which keep their raw palette
// indices instead — expansion happens later, once the destination format is
// known, so the A8 "alpha = index" quirk (§4.A) can see the original bytes.
type sourcePixels struct {
	w, h    int
	typ     ddsimage.PixelType
	rgba    []byte
	indices []byte
}

func fetchLayer(layer ddsimage.LayerSource) (sourcePixels, error) {
	w, h := layer.Size()
	typ := layer.Type()
	raw, err := layer.ReadRect(0, 0, w, h, ddsimage.LayoutFor(typ))
	if err != nil {
		return sourcePixels{}, err
	}

	sp := sourcePixels{w: w, h: h, typ: typ}
	switch typ {
	case ddsimage.PixelRGBA:
		sp.rgba = raw
	case ddsimage.PixelRGB:
		sp.rgba = expandRGB(raw)
	case ddsimage.PixelGray:
		sp.rgba = expandGray(raw)
	case ddsimage.PixelGrayA:
		sp.rgba = expandGrayAlpha(raw)
	case ddsimage.PixelIndexed:
		sp.indices = raw
	case ddsimage.PixelIndexedA:
		// §4.G stage 2: IndexedA's own alpha channel is discarded; what's
		// left is a plain index stream.
		sp.indices = dropAlphaByte(raw)
	}
	return sp, nil
}

func expandRGB(raw []byte) []byte {
	n := len(raw) / 3
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		out[i*4], out[i*4+1], out[i*4+2], out[i*4+3] = raw[i*3], raw[i*3+1], raw[i*3+2], 255
	}
	return out
}

func expandGray(raw []byte) []byte {
	out := make([]byte, len(raw)*4)
	for i, v := range raw {
		out[i*4], out[i*4+1], out[i*4+2], out[i*4+3] = v, v, v, 255
	}
	return out
}

func expandGrayAlpha(raw []byte) []byte {
	n := len(raw) / 2
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v, a := raw[i*2], raw[i*2+1]
		out[i*4], out[i*4+1], out[i*4+2], out[i*4+3] = v, v, v, a
	}
	return out
}

func dropAlphaByte(raw []byte) []byte {
	n := len(raw) / 2
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = raw[i*2]
	}
	return out
}

// expandPalette resolves a raw index stream to canonical RGBA8 (alpha
// always opaque — the only place an index feeds alpha directly is the A8
// pack path, which never goes through this function).
func expandPalette(indices []byte, palette []ddsimage.RGB) []byte {
	out := make([]byte, len(indices)*4)
	for i, idx := range indices {
		var c ddsimage.RGB
		if int(idx) < len(palette) {
			c = palette[idx]
		}
		out[i*4], out[i*4+1], out[i*4+2], out[i*4+3] = c.R, c.G, c.B, 255
	}
	return out
}

// isIndexedRawOutput reports whether a source's pixels are written to disk
// as raw palette-index bytes accompanied by a 256-entry RGBA palette (§4.H
// "Palette emission"): indexed source, default pixel format, no
// compression. Any explicit PixelFormat (including A8's index-as-alpha
// quirk) or any compression expands through the palette instead.
func isIndexedRawOutput(cfg ddsimage.EncodeConfig, srcType ddsimage.PixelType) bool {
	return srcType.IsIndexed() && cfg.Compression == ddsimage.CompressionNone && cfg.PixelFormat == ddsimage.PixelFormatDefault
}

// resolvePixelFormat maps PixelFormatDefault onto the explicit format that
// matches a source's own channel count (§4.A): everything downstream of
// this call deals in a concrete PixelFormat, never Default.
func resolvePixelFormat(cfg ddsimage.EncodeConfig, srcType ddsimage.PixelType) ddsimage.PixelFormat {
	if cfg.PixelFormat != ddsimage.PixelFormatDefault {
		return cfg.PixelFormat
	}
	switch srcType {
	case ddsimage.PixelGray:
		return ddsimage.PixelFormatL8
	case ddsimage.PixelGrayA:
		return ddsimage.PixelFormatL8A8
	case ddsimage.PixelRGBA, ddsimage.PixelIndexedA:
		return ddsimage.PixelFormatRGBA8
	default:
		return ddsimage.PixelFormatRGB8
	}
}
