package topology

import (
	"testing"

	"github.com/woozymasta/ddsenc/internal/ddsimage"
)

func cubemapImage() *ddsimage.Image {
	names := []string{"pos x", "neg x", "pos y", "neg y", "pos z", "neg z"}
	layers := make([]ddsimage.Layer, len(names))
	for i, n := range names {
		layers[i] = ddsimage.Layer{Name: n, Width: 64, Height: 64, Type: ddsimage.PixelRGBA}
	}
	return &ddsimage.Image{Width: 64, Height: 64, BaseType: ddsimage.PixelRGBA, Layers: layers}
}

func TestClassifyCubemap(t *testing.T) {
	t.Parallel()

	img := cubemapImage()
	report := Classify(img)
	if !report.IsCubemap {
		t.Fatalf("expected cubemap classification")
	}
	for f := 0; f < int(faceCount); f++ {
		if report.CubeFace[f] < 0 || report.CubeFace[f] >= len(img.Layers) {
			t.Fatalf("face %d maps to out-of-range index %d", f, report.CubeFace[f])
		}
	}
}

// Cubemap face matching is order-independent: shuffling the layer list
// must still resolve to the correct face each time, since face matching
// keys on name content, not position.
func TestClassifyCubemapPermutationInvariant(t *testing.T) {
	t.Parallel()

	img := cubemapImage()
	img.Layers[0], img.Layers[5] = img.Layers[5], img.Layers[0]
	img.Layers[1], img.Layers[3] = img.Layers[3], img.Layers[1]

	report := Classify(img)
	if !report.IsCubemap {
		t.Fatalf("expected cubemap classification after shuffling layers")
	}
	if img.Layers[report.CubeFace[FacePosX]].Name != "pos x" {
		t.Fatalf("+X face resolved to %q, want \"pos x\"", img.Layers[report.CubeFace[FacePosX]].Name)
	}
	if img.Layers[report.CubeFace[FaceNegZ]].Name != "neg z" {
		t.Fatalf("-Z face resolved to %q, want \"neg z\"", img.Layers[report.CubeFace[FaceNegZ]].Name)
	}
}

func TestClassifyCubemapRejectsMissingFace(t *testing.T) {
	t.Parallel()

	img := cubemapImage()
	img.Layers[5].Name = "pos x" // duplicate, -Z now unmatched

	report := Classify(img)
	if report.IsCubemap {
		t.Fatalf("expected non-cubemap when a face name is missing")
	}
}

func TestIsVolume(t *testing.T) {
	t.Parallel()

	img := &ddsimage.Image{
		Width: 32, Height: 32, BaseType: ddsimage.PixelRGBA,
		Layers: []ddsimage.Layer{
			{Name: "slice0", Width: 32, Height: 32, Type: ddsimage.PixelRGBA},
			{Name: "slice1", Width: 32, Height: 32, Type: ddsimage.PixelRGBA},
			{Name: "slice2", Width: 32, Height: 32, Type: ddsimage.PixelRGBA},
		},
	}
	if !IsVolume(img) {
		t.Fatalf("expected volume classification for 3 same-size same-type layers")
	}
	if IsArray(img) == false {
		// A volume candidate also structurally satisfies the array
		// predicate (same w/h, same type, 2+ layers); SaveType alone
		// disambiguates which topology the caller actually requested.
		t.Fatalf("expected IsArray to also hold for a volume-shaped layer set")
	}
}

func TestIsVolumeRejectsSingleLayer(t *testing.T) {
	t.Parallel()

	img := &ddsimage.Image{
		Width: 32, Height: 32, BaseType: ddsimage.PixelRGBA,
		Layers: []ddsimage.Layer{{Name: "only", Width: 32, Height: 32, Type: ddsimage.PixelRGBA}},
	}
	if IsVolume(img) {
		t.Fatalf("a single layer must not classify as a volume")
	}
}

func TestIsValidExistingMipmapChain(t *testing.T) {
	t.Parallel()

	// 4x4 base needs 3 levels: 4x4, 2x2, 1x1.
	img := &ddsimage.Image{
		Width: 4, Height: 4, BaseType: ddsimage.PixelRGBA,
		Layers: []ddsimage.Layer{
			{Name: "mip0", Width: 4, Height: 4, Type: ddsimage.PixelRGBA},
			{Name: "mip1", Width: 2, Height: 2, Type: ddsimage.PixelRGBA},
			{Name: "mip2", Width: 1, Height: 1, Type: ddsimage.PixelRGBA},
		},
	}
	ok, reason := IsValidExistingMipmap(img, ddsimage.SaveSelectedLayer)
	if !ok {
		t.Fatalf("expected a valid existing mipmap chain, got reason %q", reason)
	}
}

func TestIsValidExistingMipmapRejectsVolume(t *testing.T) {
	t.Parallel()

	img := &ddsimage.Image{Width: 4, Height: 4, BaseType: ddsimage.PixelRGBA}
	ok, reason := IsValidExistingMipmap(img, ddsimage.SaveVolumemap)
	if ok {
		t.Fatalf("existing mipmap chains must never validate for volume maps")
	}
	if reason == "" {
		t.Fatalf("expected a non-empty rejection reason")
	}
}

func TestIsValidExistingMipmapRejectsWrongDims(t *testing.T) {
	t.Parallel()

	img := &ddsimage.Image{
		Width: 4, Height: 4, BaseType: ddsimage.PixelRGBA,
		Layers: []ddsimage.Layer{
			{Name: "mip0", Width: 4, Height: 4, Type: ddsimage.PixelRGBA},
			{Name: "mip1", Width: 3, Height: 3, Type: ddsimage.PixelRGBA}, // should be 2x2
			{Name: "mip2", Width: 1, Height: 1, Type: ddsimage.PixelRGBA},
		},
	}
	ok, _ := IsValidExistingMipmap(img, ddsimage.SaveSelectedLayer)
	if ok {
		t.Fatalf("a chain that doesn't halve correctly must be rejected")
	}
}
