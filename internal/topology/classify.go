package topology

import (
	"strings"

	"github.com/woozymasta/ddsenc/internal/ddsimage"
	"github.com/woozymasta/ddsenc/internal/pixelformat"
)

// Report is the immutable classification of an Image's layer list,
// computed once and shared by the interactive dialog (widget gating) and
// the encoder driver (§9 Design Notes), instead of the mutable globals the
// original plugin used.
type Report struct {
	Width, Height int
	MipLevels     int

	IsCubemap bool
	// CubeFace maps each Face to its layer index in Image.Layers, valid
	// when IsCubemap is true.
	CubeFace [int(faceCount)]int

	IsVolume bool
	IsArray  bool
}

// surfacesAtBase returns the indices of layers whose (w,h) equal (W,H).
func surfacesAtBase(img *ddsimage.Image) []int {
	var out []int
	for i, l := range img.Layers {
		if l.Width == img.Width && l.Height == img.Height {
			out = append(out, i)
		}
	}
	return out
}

func sameType(img *ddsimage.Image, indices []int) bool {
	if len(indices) == 0 {
		return true
	}
	t := img.Layers[indices[0]].Type
	for _, i := range indices {
		if img.Layers[i].Type != t {
			return false
		}
	}
	return true
}

// Classify computes the full topology report for img (§4.F).
func Classify(img *ddsimage.Image) Report {
	r := Report{
		Width:     img.Width,
		Height:    img.Height,
		MipLevels: pixelformat.MipLevels(img.Width, img.Height),
	}

	r.IsCubemap = classifyCubemap(img, &r)
	r.IsVolume = IsVolume(img)
	r.IsArray = IsArray(img)

	return r
}

func classifyCubemap(img *ddsimage.Image, r *Report) bool {
	n := len(img.Layers)
	if n < 6 || n%6 != 0 {
		return false
	}
	if n > 6 {
		ok, _ := IsValidExistingMipmap(img, ddsimage.SaveCubemap)
		if !ok {
			return false
		}
	}

	base := surfacesAtBase(img)
	if !sameType(img, base) {
		return false
	}

	var assigned [int(faceCount)]bool
	var faceLayer [int(faceCount)]int
	for _, idx := range base {
		name := img.Layers[idx].Name
	rows:
		for _, row := range faceNameRows {
			for f, token := range row {
				if !assigned[f] && strings.Contains(name, token) {
					assigned[f] = true
					faceLayer[f] = idx
					break rows
				}
			}
		}
	}

	for f := 0; f < int(faceCount); f++ {
		if !assigned[f] {
			return false
		}
	}

	r.CubeFace = faceLayer
	return true
}

// IsVolume reports whether img qualifies as a volume map (§4.F): two or
// more layers sharing (w,h) and PixelType.
func IsVolume(img *ddsimage.Image) bool {
	if len(img.Layers) < 2 {
		return false
	}
	base := surfacesAtBase(img)
	if len(base) != len(img.Layers) {
		return false
	}
	return sameType(img, base)
}

// IsArray reports whether img qualifies as a texture array (§4.F): either
// a valid existing-mipmap array, or two or more layers sharing (w,h) and
// PixelType.
func IsArray(img *ddsimage.Image) bool {
	if ok, _ := IsValidExistingMipmap(img, ddsimage.SaveArray); ok {
		return true
	}
	base := surfacesAtBase(img)
	return len(base) >= 2 && sameType(img, base)
}

// IsValidExistingMipmap validates a pre-built mipmap chain layer sequence
// against save (§4.F). Volumemap is always rejected — existing-mipmap
// volumes are never valid input (§3).
func IsValidExistingMipmap(img *ddsimage.Image, save ddsimage.SaveType) (bool, string) {
	if save == ddsimage.SaveVolumemap {
		return false, "existing mipmap chains are not valid for volume maps"
	}

	minSurfaces, maxSurfaces := 1, 1
	switch save {
	case ddsimage.SaveCubemap:
		minSurfaces, maxSurfaces = 6, 6
	case ddsimage.SaveArray:
		minSurfaces, maxSurfaces = 2, 1<<30
	}

	base := surfacesAtBase(img)
	numSurfaces := len(base)
	if numSurfaces < minSurfaces || numSurfaces > maxSurfaces {
		return false, "surface count out of range for save type"
	}

	allIndices := make([]int, len(img.Layers))
	for i := range allIndices {
		allIndices[i] = i
	}
	if !sameType(img, allIndices) {
		return false, "layers do not share a pixel type"
	}

	mipLevels := pixelformat.MipLevels(img.Width, img.Height)
	if len(img.Layers) != numSurfaces*mipLevels {
		return false, "layer count does not match surfaces * mip levels"
	}

	for s := 0; s < numSurfaces; s++ {
		for k := 0; k < mipLevels; k++ {
			layer := img.Layers[s*mipLevels+k]
			wantW, wantH := pixelformat.LevelDims(img.Width, img.Height, k)
			if layer.Width != wantW || layer.Height != wantH {
				return false, "mip level dimensions do not halve correctly"
			}
		}
	}

	return true, ""
}
