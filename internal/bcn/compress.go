package bcn

import (
	"fmt"

	"github.com/woozymasta/ddsenc/internal/ddsimage"
)

// Compress block-compresses an RGBA8 level according to c (§4.E). The
// BC3-on-disk variants (BC3n, RXGB, YCoCg, YCoCgS, AExp) all physically
// write BC3 blocks: their semantics live entirely in how the caller
// preconditioned the channel layout before calling Compress, and in the
// header tag written alongside (§4.H), not in a distinct block encoder.
// perceptual mirrors EncodeConfig.PerceptualMetric (§4.G step 7, the
// original's DXT_PERCEPTUAL flag): BC4/BC5 ignore it, since their channel
// planes carry no color to weight perceptually.
func Compress(c ddsimage.Compression, rgba []byte, width, height int, perceptual bool) ([]byte, error) {
	switch c {
	case ddsimage.CompressionBC1:
		return EncodeBC1(rgba, width, height, perceptual)
	case ddsimage.CompressionBC2:
		return EncodeBC2(rgba, width, height, perceptual)
	case ddsimage.CompressionBC3, ddsimage.CompressionBC3n, ddsimage.CompressionRXGB,
		ddsimage.CompressionYCoCg, ddsimage.CompressionYCoCgS, ddsimage.CompressionAExp:
		return EncodeBC3(rgba, width, height, perceptual)
	case ddsimage.CompressionBC4:
		return EncodeBC4(rgba, width, height)
	case ddsimage.CompressionBC5:
		return EncodeBC5(rgba, width, height)
	default:
		return nil, fmt.Errorf("compress: unsupported compression %d", c)
	}
}
