package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/woozymasta/ddsenc/internal/ddsimage"
)

// Source is one decoded file: its pixels, a caller-supplied name (used for
// cubemap face matching and array/volume ordering), and whether it should
// count as "visible" for VisibleLayers merging.
type Source struct {
	Name    string
	Image   image.Image
	Visible bool
}

// hostLayer adapts a decoded image.Image to ddsimage.LayerSource.
type hostLayer struct {
	name    string
	img     image.Image
	typ     ddsimage.PixelType
	visible bool
}

// DetectPixelType classifies a decoded image.Image into the PixelType the
// encoder's data model expects. Paletted sources stay indexed; grayscale
// sources stay single/dual-channel; everything else is treated as RGBA,
// matching how every other supported codec (PNG/BMP/TGA/TIFF) decodes
// through Go's image package.
func DetectPixelType(img image.Image) ddsimage.PixelType {
	switch img.(type) {
	case *image.Paletted:
		return ddsimage.PixelIndexed
	case *image.Gray, *image.Gray16:
		return ddsimage.PixelGray
	default:
		return ddsimage.PixelRGBA
	}
}

// NewLayer wraps one decoded image as a ddsimage.LayerSource.
func NewLayer(name string, img image.Image, visible bool) ddsimage.LayerSource {
	return &hostLayer{name: name, img: img, typ: DetectPixelType(img), visible: visible}
}

func (l *hostLayer) Size() (int, int) {
	b := l.img.Bounds()
	return b.Dx(), b.Dy()
}

func (l *hostLayer) Type() ddsimage.PixelType { return l.typ }
func (l *hostLayer) Name() string             { return l.name }

func (l *hostLayer) ReadRect(x, y, w, h int, layout ddsimage.ChannelLayout) ([]byte, error) {
	b := l.img.Bounds()
	if x < 0 || y < 0 || x+w > b.Dx() || y+h > b.Dy() {
		return nil, fmt.Errorf("imageio: read rect (%d,%d,%d,%d) out of bounds for %q (%dx%d)", x, y, w, h, l.name, b.Dx(), b.Dy())
	}

	if pal, ok := l.img.(*image.Paletted); ok && (layout == ddsimage.LayoutIndex || layout == ddsimage.LayoutIndexAlpha) {
		return readIndices(pal, x, y, w, h, layout), nil
	}

	return readExpanded(l.img, x, y, w, h, layout), nil
}

func readIndices(pal *image.Paletted, x, y, w, h int, layout ddsimage.ChannelLayout) []byte {
	perPixel := 1
	if layout == ddsimage.LayoutIndexAlpha {
		perPixel = 2
	}
	out := make([]byte, 0, w*h*perPixel)
	base := pal.Bounds().Min
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := pal.ColorIndexAt(base.X+x+col, base.Y+y+row)
			out = append(out, idx)
			if perPixel == 2 {
				_, _, _, a := pal.Palette[idx].RGBA()
				out = append(out, byte(a>>8))
			}
		}
	}
	return out
}

func readExpanded(img image.Image, x, y, w, h int, layout ddsimage.ChannelLayout) []byte {
	base := img.Bounds().Min
	var perPixel int
	switch layout {
	case ddsimage.LayoutGray:
		perPixel = 1
	case ddsimage.LayoutGrayAlpha:
		perPixel = 2
	case ddsimage.LayoutRGB:
		perPixel = 3
	default:
		perPixel = 4
	}

	out := make([]byte, 0, w*h*perPixel)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c := color.NRGBAModel.Convert(img.At(base.X+x+col, base.Y+y+row)).(color.NRGBA)
			switch layout {
			case ddsimage.LayoutGray:
				out = append(out, Luminance(c.R, c.G, c.B))
			case ddsimage.LayoutGrayAlpha:
				out = append(out, Luminance(c.R, c.G, c.B), c.A)
			case ddsimage.LayoutRGB:
				out = append(out, c.R, c.G, c.B)
			default:
				out = append(out, c.R, c.G, c.B, c.A)
			}
		}
	}
	return out
}

// Luminance computes the Rec.601-style luma used for Gray/GrayAlpha
// fetches, mirroring internal/pixelformat's own helper for the encoder
// side (kept here too so imageio has no dependency on the encode path for
// a one-line computation).
func Luminance(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000) //nolint:gosec // 0..255 by construction.
}

// hostImage adapts a set of decoded Sources to ddsimage.ImageSource.
type hostImage struct {
	width, height int
	baseType      ddsimage.PixelType
	layers        []ddsimage.LayerSource
	palette       []ddsimage.RGB
	paletteCount  int
}

// NewImage builds a ddsimage.ImageSource from one or more decoded sources.
// Width/height are taken from the first source; baseType is derived from
// it too (mixed-type inputs are the caller's problem — the topology
// classifier rejects them at encode time).
func NewImage(sources []Source) (ddsimage.ImageSource, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("imageio: at least one source image is required")
	}

	w, h := sources[0].Image.Bounds().Dx(), sources[0].Image.Bounds().Dy()
	baseType := DetectPixelType(sources[0].Image)

	layers := make([]ddsimage.LayerSource, len(sources))
	for i, s := range sources {
		layers[i] = NewLayer(s.Name, s.Image, s.Visible)
	}

	var palette []ddsimage.RGB
	count := 0
	if pal, ok := sources[0].Image.(*image.Paletted); ok {
		palette = make([]ddsimage.RGB, len(pal.Palette))
		for i, c := range pal.Palette {
			r, g, b, _ := c.RGBA()
			palette[i] = ddsimage.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
		}
		count = len(palette)
	}

	return &hostImage{width: w, height: h, baseType: baseType, layers: layers, palette: palette, paletteCount: count}, nil
}

func (h *hostImage) Size() (int, int)            { return h.width, h.height }
func (h *hostImage) BaseType() ddsimage.PixelType { return h.baseType }
func (h *hostImage) Layers() []ddsimage.LayerSource { return h.layers }

func (h *hostImage) Palette() ([]ddsimage.RGB, int) { return h.palette, h.paletteCount }

// Duplicate returns a shallow copy: layers are immutable decoded images,
// so nothing but the slice header needs to be copied for the "always
// duplicate before a destructive op" rule (§12) to be safe.
func (h *hostImage) Duplicate() ddsimage.ImageSource {
	dup := *h
	dup.layers = append([]ddsimage.LayerSource(nil), h.layers...)
	dup.palette = append([]ddsimage.RGB(nil), h.palette...)
	return &dup
}

// FlipVertical returns a new ImageSource whose layers are vertically
// flipped copies; the receiver's own pixels are never touched.
func (h *hostImage) FlipVertical() ddsimage.ImageSource {
	dup := &hostImage{width: h.width, height: h.height, baseType: h.baseType, palette: h.palette, paletteCount: h.paletteCount}
	dup.layers = make([]ddsimage.LayerSource, len(h.layers))
	for i, l := range h.layers {
		hl := l.(*hostLayer)
		dup.layers[i] = &hostLayer{name: hl.name, img: flipVertical(hl.img), typ: hl.typ, visible: hl.visible}
	}
	return dup
}

func flipVertical(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		srcY := b.Max.Y - 1 - (y - b.Min.Y) + b.Min.Y
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.At(x, srcY))
		}
	}
	return out
}

// MergeVisible composites every visible layer bottom-to-top with ordinary
// alpha-over blending into a single RGBA layer (§4.I SaveVisibleLayers).
func (h *hostImage) MergeVisible() (ddsimage.LayerSource, error) {
	out := image.NewRGBA(image.Rect(0, 0, h.width, h.height))
	any := false
	for _, l := range h.layers {
		hl := l.(*hostLayer)
		if !hl.visible {
			continue
		}
		any = true
		draw.Draw(out, out.Bounds(), hl.img, hl.img.Bounds().Min, draw.Over)
	}
	if !any {
		return nil, fmt.Errorf("imageio: no visible layers to merge")
	}
	return NewLayer("merged", out, true), nil
}
