// Package bcn provides BC2 (DXT2/DXT3) codec.
package bcn

import "fmt"

// encodeBlockBC2 encodes a 4x4 block to BC2 format: 4-bit explicit alpha
// (8 bytes) followed by a BC1 color block that ignores alpha entirely.
func encodeBlockBC2(block [16]ColorRGBA, perceptual bool) [16]byte {
	var alphaBytes [8]byte
	for i := 0; i < 8; i++ {
		lo := block[i*2].A >> 4
		hi := block[i*2+1].A >> 4
		alphaBytes[i] = lo | (hi << 4)
	}

	colorBlock := encodeBlockBC1(block, perceptual)

	var result [16]byte
	copy(result[0:8], alphaBytes[:])
	copy(result[8:16], colorBlock[:])
	return result
}

// EncodeBC2 encodes RGBA image data to BC2 format. perceptual mirrors
// EncodeConfig.PerceptualMetric, applied to the BC1 color block.
func EncodeBC2(rgba []byte, width, height int, perceptual bool) ([]byte, error) {
	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	result := make([]byte, blocksW*blocksH*16)

	for y := 0; y < blocksH; y++ {
		for x := 0; x < blocksW; x++ {
			block := fetchBlock(rgba, x*4, y*4, width, height)
			encoded := encodeBlockBC2(block, perceptual)
			offset := (y*blocksW + x) * 16
			copy(result[offset:], encoded[:])
		}
	}

	return result, nil
}

// DecodeBC2 decodes BC2 data to RGBA (BC2 uses explicit alpha, BC1 color).
// BC2: 16 bytes - 4-bit alpha per pixel (64 bits) + BC1 color (8 bytes)
func DecodeBC2(data []byte, width, height int) ([]byte, error) {
	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	expectedSize := blocksW * blocksH * 16

	if len(data) < expectedSize {
		return nil, fmt.Errorf("BC2 data too short: expected %d bytes, got %d", expectedSize, len(data))
	}

	result := make([]byte, width*height*4)

	for y := 0; y < blocksH; y++ {
		for x := 0; x < blocksW; x++ {
			offset := (y*blocksW + x) * 16

			// Decode 4-bit alpha values (first 8 bytes)
			var alphas [16]uint8
			for i := 0; i < 8; i++ {
				byteVal := data[offset+i]
				alphas[i*2] = (byteVal & 0x0F) * 17 // Scale 4-bit to 8-bit
				alphas[i*2+1] = (byteVal >> 4) * 17
			}

			// Decode color from BC1 (last 8 bytes)
			colorBlock := decodeBlockBC1(data[offset+8 : offset+16])

			// Combine
			for i := range colorBlock {
				colorBlock[i].A = alphas[i]
			}

			// Write block to result
			for row := 0; row < 4; row++ {
				for col := 0; col < 4; col++ {
					px := x*4 + col
					py := y*4 + row
					if px < width && py < height {
						idx := (py*width + px) * 4
						c := colorBlock[row*4+col]
						result[idx] = c.R
						result[idx+1] = c.G
						result[idx+2] = c.B
						result[idx+3] = c.A
					}
				}
			}
		}
	}

	return result, nil
}
