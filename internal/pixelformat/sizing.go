package pixelformat

import "github.com/woozymasta/ddsenc/internal/ddsimage"

// MipLevels computes 1 + floor(log2(max(w,h))), the mipmap chain length
// down to the 1x1 level (§4.C). Always >= 1.
func MipLevels(w, h int) int {
	m := w
	if h > m {
		m = h
	}
	levels := 1
	for m > 1 {
		m >>= 1
		levels++
	}
	return levels
}

// LevelDims returns the dimensions of mip level k (§4.C): max(1, w>>k).
func LevelDims(w, h, k int) (int, int) {
	lw := w >> k
	if lw < 1 {
		lw = 1
	}
	lh := h >> k
	if lh < 1 {
		lh = 1
	}
	return lw, lh
}

// blocksAcross returns ceil(n/4), floored to at least 1.
func blocksAcross(n int) int {
	b := (n + 3) / 4
	if b < 1 {
		return 1
	}
	return b
}

// UncompressedLevelSize returns w*h*bpp.
func UncompressedLevelSize(w, h, bpp int) int {
	return w * h * bpp
}

// CompressedLevelSize returns the block-payload size of one level for the
// given compression (§4.C).
func CompressedLevelSize(w, h int, c ddsimage.Compression) int {
	return blocksAcross(w) * blocksAcross(h) * c.BlockBytes()
}

// SurfaceSize returns the total byte size of one surface's payload across
// mipCount levels (§4.C "Mipmapped total = sum over levels"), uncompressed
// when c == CompressionNone, block-compressed otherwise.
func SurfaceSize(w, h, mipCount, bpp int, c ddsimage.Compression) int {
	total := 0
	for k := 0; k < mipCount; k++ {
		lw, lh := LevelDims(w, h, k)
		if c == ddsimage.CompressionNone {
			total += UncompressedLevelSize(lw, lh, bpp)
		} else {
			total += CompressedLevelSize(lw, lh, c)
		}
	}
	return total
}

// VolumeSurfaceSize is SurfaceSize's volume variant: each level's payload
// is multiplied by max(1, depth>>k) slices (§4.C).
func VolumeSurfaceSize(w, h, depth, mipCount, bpp int, c ddsimage.Compression) int {
	total := 0
	for k := 0; k < mipCount; k++ {
		lw, lh := LevelDims(w, h, k)
		d := depth >> k
		if d < 1 {
			d = 1
		}
		var levelSize int
		if c == ddsimage.CompressionNone {
			levelSize = UncompressedLevelSize(lw, lh, bpp)
		} else {
			levelSize = CompressedLevelSize(lw, lh, c)
		}
		total += levelSize * d
	}
	return total
}
