// Package pixelformat implements the pixel-pack kernels (§4.A), the
// channel-swizzle helpers (§4.B), and mipmap/surface sizing (§4.C).
package pixelformat

import "github.com/woozymasta/ddsenc/internal/ddsimage"

// Info describes an explicit uncompressed on-disk layout: bytes per pixel
// and the four channel masks the header builder needs (§4.H).
type Info struct {
	BytesPerPixel int
	RMask, GMask, BMask, AMask uint32
	HasAlpha      bool
	IsLuminance   bool
	DXGIFormat    uint32 // 0 = "unknown", no DXGI code applies
}

// Describe returns the Info for an explicit (non-Default) PixelFormat.
func Describe(f ddsimage.PixelFormat) Info {
	switch f {
	case ddsimage.PixelFormatRGB8:
		return Info{BytesPerPixel: 3, RMask: 0x00ff0000, GMask: 0x0000ff00, BMask: 0x000000ff}
	case ddsimage.PixelFormatRGBA8:
		return Info{BytesPerPixel: 4, RMask: 0x00ff0000, GMask: 0x0000ff00, BMask: 0x000000ff, AMask: 0xff000000, HasAlpha: true, DXGIFormat: 87}
	case ddsimage.PixelFormatBGR8:
		return Info{BytesPerPixel: 3, RMask: 0x000000ff, GMask: 0x0000ff00, BMask: 0x00ff0000}
	case ddsimage.PixelFormatABGR8:
		return Info{BytesPerPixel: 4, RMask: 0x000000ff, GMask: 0x0000ff00, BMask: 0x00ff0000, AMask: 0xff000000, HasAlpha: true, DXGIFormat: 28}
	case ddsimage.PixelFormatR5G6B5:
		return Info{BytesPerPixel: 2, RMask: 0xF800, GMask: 0x07E0, BMask: 0x001F}
	case ddsimage.PixelFormatRGBA4:
		return Info{BytesPerPixel: 2, RMask: 0x0F00, GMask: 0x00F0, BMask: 0x000F, AMask: 0xF000, HasAlpha: true}
	case ddsimage.PixelFormatRGB5A1:
		return Info{BytesPerPixel: 2, RMask: 0x7C00, GMask: 0x03E0, BMask: 0x001F, AMask: 0x8000, HasAlpha: true}
	case ddsimage.PixelFormatRGB10A2:
		return Info{BytesPerPixel: 4, RMask: 0x000003FF, GMask: 0x000FFC00, BMask: 0x3FF00000, AMask: 0xC0000000, HasAlpha: true}
	case ddsimage.PixelFormatR3G3B2:
		return Info{BytesPerPixel: 1, RMask: 0xE0, GMask: 0x1C, BMask: 0x03}
	case ddsimage.PixelFormatA8:
		return Info{BytesPerPixel: 1, AMask: 0xFF, HasAlpha: true}
	case ddsimage.PixelFormatL8:
		return Info{BytesPerPixel: 1, IsLuminance: true}
	case ddsimage.PixelFormatL8A8:
		return Info{BytesPerPixel: 2, AMask: 0xFF00, HasAlpha: true, IsLuminance: true}
	case ddsimage.PixelFormatYCoCg:
		return Info{BytesPerPixel: 4, AMask: 0xFF000000, HasAlpha: true}
	case ddsimage.PixelFormatAExp:
		return Info{BytesPerPixel: 4, AMask: 0xFF000000, HasAlpha: true}
	default:
		return Info{}
	}
}

// Luminance computes the Rec.601-style luma used by L8/L8A8 and indexed
// palette expansion.
func Luminance(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000) //nolint:gosec // 0..255 by construction.
}

// PackPixel converts one canonical (r,g,b,a) tuple into its on-disk bytes
// for the given explicit PixelFormat (§4.A's table). a is the fetched
// alpha, already holding the palette-index quirk value for A8 destinations
// when the source was indexed (callers arrange that before calling Pack).
func PackPixel(f ddsimage.PixelFormat, r, g, b, a uint8) []byte {
	switch f {
	case ddsimage.PixelFormatRGB8:
		return []byte{b, g, r}
	case ddsimage.PixelFormatRGBA8:
		return []byte{b, g, r, a}
	case ddsimage.PixelFormatBGR8:
		return []byte{r, g, b}
	case ddsimage.PixelFormatABGR8:
		return []byte{r, g, b, a}
	case ddsimage.PixelFormatR5G6B5:
		v := (uint16(r)&0xF8)<<8 | (uint16(g)&0xFC)<<3 | uint16(b>>3)
		return []byte{byte(v), byte(v >> 8)}
	case ddsimage.PixelFormatRGBA4:
		v := (uint16(a)&0xF0)<<8 | (uint16(r)&0xF0)<<4 | uint16(g&0xF0) | uint16(b>>4)
		return []byte{byte(v), byte(v >> 8)}
	case ddsimage.PixelFormatRGB5A1:
		v := (uint16(a)&0x80)<<8 | (uint16(r)&0xF8)<<7 | (uint16(g)&0xF8)<<2 | uint16(b>>3)
		return []byte{byte(v), byte(v >> 8)}
	case ddsimage.PixelFormatRGB10A2:
		v := (uint32(a)&0xC0)<<24 | (uint32(b)<<2)<<20 | (uint32(g)<<2)<<10 | uint32(r)<<2
		return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	case ddsimage.PixelFormatR3G3B2:
		v := (r & 0xE0) | ((g & 0xE0) >> 3) | (b >> 6)
		return []byte{v}
	case ddsimage.PixelFormatA8:
		return []byte{a}
	case ddsimage.PixelFormatL8:
		return []byte{Luminance(r, g, b)}
	case ddsimage.PixelFormatL8A8:
		return []byte{Luminance(r, g, b), a}
	case ddsimage.PixelFormatYCoCg:
		y, co, cg := RGBToYCoCg(r, g, b)
		return []byte{a, y, co, cg}
	case ddsimage.PixelFormatAExp:
		return AlphaExp(r, g, b, a)
	default:
		return []byte{b, g, r, a}
	}
}

// Pack packs a whole RGBA8 (canonical r,g,b,a quadruples) buffer into the
// target explicit PixelFormat.
func Pack(f ddsimage.PixelFormat, rgba []byte) []byte {
	info := Describe(f)
	n := len(rgba) / 4
	out := make([]byte, 0, n*info.BytesPerPixel)
	for i := 0; i < n; i++ {
		p := rgba[i*4 : i*4+4]
		out = append(out, PackPixel(f, p[0], p[1], p[2], p[3])...)
	}
	return out
}
