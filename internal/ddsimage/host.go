package ddsimage

import "io"

// ChannelLayout names the byte layout a fetched rectangle is returned in.
type ChannelLayout int

const (
	LayoutGray ChannelLayout = iota
	LayoutGrayAlpha
	LayoutRGB
	LayoutRGBA
	// LayoutIndex and LayoutIndexAlpha fetch raw palette-index bytes
	// (plus a trailing alpha byte for IndexAlpha) rather than expanded
	// color, matching the source PixelType's own byte width (§4.G stage 1).
	LayoutIndex
	LayoutIndexAlpha
)

// LayoutFor returns the ChannelLayout a layer of type t is fetched in at
// §4.G stage 1 (canonical channel order: 1=Y, 2=YA, 3=RGB, 4=RGBA).
func LayoutFor(t PixelType) ChannelLayout {
	switch t {
	case PixelGray:
		return LayoutGray
	case PixelGrayA:
		return LayoutGrayAlpha
	case PixelRGB:
		return LayoutRGB
	case PixelRGBA:
		return LayoutRGBA
	case PixelIndexed:
		return LayoutIndex
	case PixelIndexedA:
		return LayoutIndexAlpha
	default:
		return LayoutRGBA
	}
}

// LayerSource is the narrow slice of the host's layer model the encoder
// consumes (§6): query geometry/type/name, and fetch a rectangle of pixels
// already expanded into the requested channel layout.
type LayerSource interface {
	Size() (w, h int)
	Type() PixelType
	Name() string
	ReadRect(x, y, w, h int, layout ChannelLayout) ([]byte, error)
}

// ImageSource is the narrow slice of the host's image model the encoder
// consumes (§6). Duplicate/FlipVertical/MergeVisible never mutate the
// receiver — they return a new value, so the driver's "always duplicate"
// rule (§12) costs nothing extra to honor.
type ImageSource interface {
	Size() (w, h int)
	BaseType() PixelType
	Layers() []LayerSource
	Palette() (colors []RGB, count int)
	MergeVisible() (LayerSource, error)
	Duplicate() ImageSource
	FlipVertical() ImageSource
}

// Sink is the output the encoder writes bytes to. Any io.Writer satisfies
// it; it is named so call sites read as "the DDS sink", not "a writer".
type Sink = io.Writer
