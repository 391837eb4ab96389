package ddsconfig

import (
	"fmt"
	"strings"

	"github.com/woozymasta/ddsenc/internal/ddsimage"
)

// ParseCompression maps a manifest/CLI string to a Compression value.
func ParseCompression(s string) (ddsimage.Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ddsimage.CompressionNone, nil
	case "bc1", "dxt1":
		return ddsimage.CompressionBC1, nil
	case "bc2", "dxt3":
		return ddsimage.CompressionBC2, nil
	case "bc3", "dxt5":
		return ddsimage.CompressionBC3, nil
	case "bc3n", "dxt5n":
		return ddsimage.CompressionBC3n, nil
	case "rxgb":
		return ddsimage.CompressionRXGB, nil
	case "bc4", "ati1":
		return ddsimage.CompressionBC4, nil
	case "bc5", "ati2":
		return ddsimage.CompressionBC5, nil
	case "ycocg":
		return ddsimage.CompressionYCoCg, nil
	case "ycocgs", "ycocg-scaled":
		return ddsimage.CompressionYCoCgS, nil
	case "aexp", "alpha-exponent":
		return ddsimage.CompressionAExp, nil
	default:
		return ddsimage.CompressionNone, fmt.Errorf("unknown compression %q", s)
	}
}

// ParsePixelFormat maps a manifest/CLI string to a PixelFormat value.
func ParsePixelFormat(s string) (ddsimage.PixelFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return ddsimage.PixelFormatDefault, nil
	case "rgb8":
		return ddsimage.PixelFormatRGB8, nil
	case "rgba8":
		return ddsimage.PixelFormatRGBA8, nil
	case "bgr8":
		return ddsimage.PixelFormatBGR8, nil
	case "abgr8":
		return ddsimage.PixelFormatABGR8, nil
	case "r5g6b5":
		return ddsimage.PixelFormatR5G6B5, nil
	case "rgba4":
		return ddsimage.PixelFormatRGBA4, nil
	case "rgb5a1":
		return ddsimage.PixelFormatRGB5A1, nil
	case "rgb10a2":
		return ddsimage.PixelFormatRGB10A2, nil
	case "r3g3b2":
		return ddsimage.PixelFormatR3G3B2, nil
	case "a8":
		return ddsimage.PixelFormatA8, nil
	case "l8":
		return ddsimage.PixelFormatL8, nil
	case "l8a8":
		return ddsimage.PixelFormatL8A8, nil
	case "ycocg":
		return ddsimage.PixelFormatYCoCg, nil
	case "aexp":
		return ddsimage.PixelFormatAExp, nil
	default:
		return ddsimage.PixelFormatDefault, fmt.Errorf("unknown pixel format %q", s)
	}
}

// ParseMipmapMode maps a manifest/CLI string to a MipmapMode value.
func ParseMipmapMode(s string) (ddsimage.MipmapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ddsimage.MipmapNone, nil
	case "generate":
		return ddsimage.MipmapGenerate, nil
	case "existing":
		return ddsimage.MipmapExisting, nil
	default:
		return ddsimage.MipmapNone, fmt.Errorf("unknown mipmap mode %q", s)
	}
}

// ParseSaveType maps a manifest/CLI string to a SaveType value.
func ParseSaveType(s string) (ddsimage.SaveType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "selected_layer":
		return ddsimage.SaveSelectedLayer, nil
	case "visible_layers":
		return ddsimage.SaveVisibleLayers, nil
	case "cubemap":
		return ddsimage.SaveCubemap, nil
	case "volume", "volumemap":
		return ddsimage.SaveVolumemap, nil
	case "array":
		return ddsimage.SaveArray, nil
	default:
		return ddsimage.SaveSelectedLayer, fmt.Errorf("unknown save type %q", s)
	}
}

// ParseMipmapFilter maps a manifest/CLI string to a MipmapFilter value.
func ParseMipmapFilter(s string) (ddsimage.MipmapFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "box":
		return ddsimage.FilterBox, nil
	case "triangle":
		return ddsimage.FilterTriangle, nil
	default:
		return ddsimage.FilterBox, fmt.Errorf("unknown mipmap filter %q", s)
	}
}

// ParseMipmapWrap maps a manifest/CLI string to a MipmapWrap value.
func ParseMipmapWrap(s string) (ddsimage.MipmapWrap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clamp":
		return ddsimage.WrapClamp, nil
	case "mirror":
		return ddsimage.WrapMirror, nil
	case "repeat":
		return ddsimage.WrapRepeat, nil
	default:
		return ddsimage.WrapClamp, fmt.Errorf("unknown mipmap wrap %q", s)
	}
}
