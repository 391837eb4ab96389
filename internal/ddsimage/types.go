// Package ddsimage holds the DDS encoder's data model: the image/layer
// shape it consumes, the encode configuration it is driven by, and the
// host interfaces a caller implements to supply pixels.
package ddsimage

// PixelType is the per-layer channel layout of a source image.
type PixelType int

const (
	PixelRGB PixelType = iota
	PixelRGBA
	PixelGray
	PixelGrayA
	PixelIndexed
	PixelIndexedA
)

// Channels returns the canonical fetch width in bytes/pixel for the type
// (§4.G stage 1: 1=Y, 2=YA, 3=RGB, 4=RGBA; indexed types fetch one/two
// index bytes per pixel, matching Gray/GrayA's byte width).
func (t PixelType) Channels() int {
	switch t {
	case PixelGray, PixelIndexed:
		return 1
	case PixelGrayA, PixelIndexedA:
		return 2
	case PixelRGB:
		return 3
	case PixelRGBA:
		return 4
	default:
		return 0
	}
}

// IsIndexed reports whether pixels are palette indices rather than color.
func (t PixelType) IsIndexed() bool {
	return t == PixelIndexed || t == PixelIndexedA
}

// SaveType selects how the layer list maps onto DDS surfaces.
type SaveType int

const (
	SaveSelectedLayer SaveType = iota
	SaveVisibleLayers
	SaveCubemap
	SaveVolumemap
	SaveArray
)

// MipmapMode selects how sub-levels beyond level 0 are obtained.
type MipmapMode int

const (
	MipmapNone MipmapMode = iota
	MipmapGenerate
	MipmapExisting
)

// Compression selects the on-disk block format, including the BC3-on-disk
// semantically-tagged variants (§4.H).
type Compression int

const (
	CompressionNone Compression = iota
	CompressionBC1
	CompressionBC2
	CompressionBC3
	CompressionBC3n
	CompressionRXGB
	CompressionBC4
	CompressionBC5
	CompressionYCoCg
	CompressionYCoCgS
	CompressionAExp
)

// IsBC3OnDisk reports whether the compression physically writes BC3/DXT5
// blocks, regardless of the semantic meaning layered on top (§4.H, §6).
func (c Compression) IsBC3OnDisk() bool {
	switch c {
	case CompressionBC3, CompressionBC3n, CompressionRXGB, CompressionYCoCg, CompressionYCoCgS, CompressionAExp:
		return true
	default:
		return false
	}
}

// SemanticFourCC returns the offset-44 tag for compressions that need one
// to disambiguate their BC3-on-disk payload, or "" for none.
func (c Compression) SemanticFourCC() string {
	switch c {
	case CompressionAExp:
		return "AEXP"
	case CompressionYCoCg:
		return "YCG1"
	case CompressionYCoCgS:
		return "YCG2"
	default:
		return ""
	}
}

// FourCC returns the pixel-format FourCC written for this compression.
func (c Compression) FourCC() string {
	switch c {
	case CompressionBC1:
		return "DXT1"
	case CompressionBC2:
		return "DXT3"
	case CompressionBC3, CompressionBC3n, CompressionYCoCg, CompressionYCoCgS, CompressionAExp:
		return "DXT5"
	case CompressionRXGB:
		return "RXGB"
	case CompressionBC4:
		return "ATI1"
	case CompressionBC5:
		return "ATI2"
	default:
		return ""
	}
}

// BlockBytes returns the compressed bytes per 4x4 block for this
// compression (§4.C): 8 for BC1/BC4, 16 for everything else on-disk BC2/BC3.
func (c Compression) BlockBytes() int {
	switch c {
	case CompressionBC1, CompressionBC4:
		return 8
	default:
		return 16
	}
}

// SetsNormalFlag reports whether the pixel-format NORMAL flag (§4.H) is set
// for this compression (BC3n/RXGB repurpose channels as a normal map).
func (c Compression) SetsNormalFlag() bool {
	return c == CompressionBC3n || c == CompressionRXGB
}

// PixelFormat selects an explicit uncompressed on-disk packed layout, or
// Default to fall back to the source's own channel count (§4.A).
type PixelFormat int

const (
	PixelFormatDefault PixelFormat = iota
	PixelFormatRGB8
	PixelFormatRGBA8
	PixelFormatBGR8
	PixelFormatABGR8
	PixelFormatR5G6B5
	PixelFormatRGBA4
	PixelFormatRGB5A1
	PixelFormatRGB10A2
	PixelFormatR3G3B2
	PixelFormatA8
	PixelFormatL8
	PixelFormatL8A8
	PixelFormatYCoCg
	PixelFormatAExp
)

// MipmapFilter selects the box/triangle kernel used when generating
// sub-levels (§4.D).
type MipmapFilter int

const (
	FilterBox MipmapFilter = iota
	FilterTriangle
)

// MipmapWrap selects how edge samples are handled by the mipmap filter
// (§4.D).
type MipmapWrap int

const (
	WrapClamp MipmapWrap = iota
	WrapMirror
	WrapRepeat
)

// Layer is one raster surface: a cubemap face, a volume slice, an array
// element, a plain image, or one level of a pre-built mipmap chain.
type Layer struct {
	Name          string
	Width, Height int
	Type          PixelType
	Visible       bool
}

// Image is the host's multi-layer raster, read-only from the encoder's
// point of view except through the explicit duplicate/flip/merge calls in
// ImageSource.
type Image struct {
	Width, Height int
	BaseType      PixelType // RGB, Gray, or Indexed — the image's native model
	Layers        []Layer
	Palette       []RGB // up to 256 entries, valid when BaseType is indexed
}

// RGB is a single 8-bit-per-channel palette entry.
type RGB struct {
	R, G, B uint8
}

// EncodeConfig is the immutable (post-validation) set of knobs the driver
// consults (§3).
type EncodeConfig struct {
	Compression    Compression
	PixelFormat    PixelFormat
	MipmapMode     MipmapMode
	SaveType       SaveType
	MipmapFilter   MipmapFilter
	MipmapWrap     MipmapWrap
	FlipVertical   bool
	GammaCorrect   bool
	SRGB           bool
	Gamma          float64
	PreserveAlphaCoverage bool
	AlphaTestThreshold    uint8
	PerceptualMetric      bool
	TransparentIndex      int
}

// DefaultEncodeConfig returns the zero-value-safe baseline config: no
// compression, no mipmaps, selected-layer save, box filter, clamp wrap,
// gamma 2.2, alpha test threshold 128 — the values the original dialog
// preselects before the user touches anything.
func DefaultEncodeConfig() EncodeConfig {
	return EncodeConfig{
		Compression:        CompressionNone,
		PixelFormat:        PixelFormatDefault,
		MipmapMode:         MipmapNone,
		SaveType:           SaveSelectedLayer,
		MipmapFilter:       FilterBox,
		MipmapWrap:         WrapClamp,
		Gamma:              2.2,
		AlphaTestThreshold: 128,
		TransparentIndex:   -1,
	}
}
