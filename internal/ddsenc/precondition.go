package ddsenc

import (
	"github.com/woozymasta/ddsenc/internal/ddsimage"
	"github.com/woozymasta/ddsenc/internal/pixelformat"
)

// precondition applies §4.G stage 4 to a canonical RGBA8 buffer: the
// channel repurposing the BC3-on-disk semantic variants need before their
// bytes go through the ordinary BC3 block encoder. BC1/BC2/BC4/BC5 and
// plain BC3 pass the buffer through unchanged.
func precondition(rgba []byte, c ddsimage.Compression) []byte {
	switch c {
	case ddsimage.CompressionBC3n:
		return preconditionNormal(rgba)
	case ddsimage.CompressionRXGB:
		return preconditionRXGB(rgba)
	case ddsimage.CompressionYCoCg, ddsimage.CompressionYCoCgS:
		return preconditionYCoCg(rgba)
	case ddsimage.CompressionAExp:
		return preconditionAExp(rgba)
	default:
		return rgba
	}
}

// preconditionNormal moves red into alpha (BC3's alpha block interpolates
// at higher precision than its color block) and forces red/blue to white,
// the DXT5nm convention BC3n writes (§4.H).
func preconditionNormal(rgba []byte) []byte {
	out := make([]byte, len(rgba))
	n := len(rgba) / 4
	for i := 0; i < n; i++ {
		r, g := rgba[i*4], rgba[i*4+1]
		out[i*4], out[i*4+1], out[i*4+2], out[i*4+3] = 255, g, 255, r
	}
	return out
}

// preconditionRXGB swaps red and alpha, the RXGB convention (§4.H): the
// normal map's X channel moves into alpha at BC3's higher alpha precision,
// and alpha's old value (unused by a normal map) lands in the color block's
// red slot.
func preconditionRXGB(rgba []byte) []byte {
	out := make([]byte, len(rgba))
	n := len(rgba) / 4
	for i := 0; i < n; i++ {
		r, g, b, a := rgba[i*4], rgba[i*4+1], rgba[i*4+2], rgba[i*4+3]
		out[i*4], out[i*4+1], out[i*4+2], out[i*4+3] = a, g, b, r
	}
	return out
}

// preconditionYCoCg stores Y in alpha (full precision) and Co/Cg in the
// color block's red/green, the standard YCoCg-in-DXT5 trick.
func preconditionYCoCg(rgba []byte) []byte {
	out := make([]byte, len(rgba))
	n := len(rgba) / 4
	for i := 0; i < n; i++ {
		r, g, b := rgba[i*4], rgba[i*4+1], rgba[i*4+2]
		y, co, cg := pixelformat.RGBToYCoCg(r, g, b)
		out[i*4], out[i*4+1], out[i*4+2], out[i*4+3] = co, cg, 0, y
	}
	return out
}

func preconditionAExp(rgba []byte) []byte {
	out := make([]byte, len(rgba))
	n := len(rgba) / 4
	for i := 0; i < n; i++ {
		r, g, b := rgba[i*4], rgba[i*4+1], rgba[i*4+2]
		r2, g2, b2, a := pixelformat.AlphaExpChannels(r, g, b)
		out[i*4], out[i*4+1], out[i*4+2], out[i*4+3] = r2, g2, b2, a
	}
	return out
}

// packLevel emits an uncompressed level's on-disk bytes. The A8 format is
// special when raw palette indices are available: the index itself becomes
// the alpha byte (§4.A), bypassing palette resolution entirely.
func packLevel(rgba, indices []byte, format ddsimage.PixelFormat) []byte {
	if format == ddsimage.PixelFormatA8 && indices != nil {
		return append([]byte(nil), indices...)
	}
	return pixelformat.Pack(format, rgba)
}
