// Package bcn provides BC5 codec: two independent BC4-style channel
// blocks, one for R and one for G (§ glossary "BC5: two BC4 channels").
package bcn

import "fmt"

// encodeChannelBlock BC4-encodes one 4x4 channel plane using the same
// min/max + 6-or-4-value interpolation table as BC4's alpha channel.
func encodeChannelBlock(vals [16]uint8) [8]byte {
	minV, maxV := vals[0], vals[0]
	for _, v := range vals {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	ref := genAlphaRef(maxV, minV)

	var indices [16]uint8
	for i, v := range vals {
		minDelta := int32(0x7FFFFFFF)
		target := int32(v)
		for j, r := range ref {
			d := abs(int32(r) - target)
			if d < minDelta {
				minDelta = d
				indices[i] = uint8(j) //nolint:gosec // j is 0..7.
			}
		}
	}

	table := [6]uint8{
		(indices[0] << 0) | (indices[1] << 3) | (indices[2] << 6),
		(indices[2] >> 2) | (indices[3] << 1) | (indices[4] << 4) | (indices[5] << 7),
		(indices[5] >> 1) | (indices[6] << 2) | (indices[7] << 5),
		(indices[8] << 0) | (indices[9] << 3) | (indices[10] << 6),
		(indices[10] >> 2) | (indices[11] << 1) | (indices[12] << 4) | (indices[13] << 7),
		(indices[13] >> 1) | (indices[14] << 2) | (indices[15] << 5),
	}

	return [8]byte{maxV, minV, table[0], table[1], table[2], table[3], table[4], table[5]}
}

// decodeChannelBlock is encodeChannelBlock's inverse, shared by BC4's
// alpha decode and BC5's per-channel decode.
func decodeChannelBlock(data []byte) [16]uint8 {
	return decodeBlockBC4(data)
}

func fetchChannel(rgba []byte, x, y, width, height, channel int) [16]uint8 {
	var vals [16]uint8
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			px := x + col
			py := y + row
			if px < width && py < height {
				idx := (py*width+px)*4 + channel
				vals[row*4+col] = rgba[idx]
			}
		}
	}
	return vals
}

// EncodeBC5 compresses the R and G channels of an RGBA buffer into two
// interleaved BC4-style blocks per 4x4 tile (16 bytes/tile).
func EncodeBC5(rgba []byte, width, height int) ([]byte, error) {
	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	result := make([]byte, blocksW*blocksH*16)

	for y := 0; y < blocksH; y++ {
		for x := 0; x < blocksW; x++ {
			rVals := fetchChannel(rgba, x*4, y*4, width, height, 0)
			gVals := fetchChannel(rgba, x*4, y*4, width, height, 1)
			rBlock := encodeChannelBlock(rVals)
			gBlock := encodeChannelBlock(gVals)

			offset := (y*blocksW + x) * 16
			copy(result[offset:offset+8], rBlock[:])
			copy(result[offset+8:offset+16], gBlock[:])
		}
	}

	return result, nil
}

// DecodeBC5 expands a BC5 stream to RGBA (B is 0, A is 255: BC5 carries no
// blue or alpha information).
func DecodeBC5(data []byte, width, height int) ([]byte, error) {
	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	expected := blocksW * blocksH * 16
	if len(data) < expected {
		return nil, fmt.Errorf("BC5 data too short: expected %d bytes, got %d", expected, len(data))
	}

	result := make([]byte, width*height*4)
	for i := 3; i < len(result); i += 4 {
		result[i] = 255
	}

	for y := 0; y < blocksH; y++ {
		for x := 0; x < blocksW; x++ {
			offset := (y*blocksW + x) * 16
			rVals := decodeChannelBlock(data[offset : offset+8])
			gVals := decodeChannelBlock(data[offset+8 : offset+16])

			for row := 0; row < 4; row++ {
				for col := 0; col < 4; col++ {
					px := x*4 + col
					py := y*4 + row
					if px < width && py < height {
						idx := (py*width + px) * 4
						result[idx] = rVals[row*4+col]
						result[idx+1] = gVals[row*4+col]
					}
				}
			}
		}
	}

	return result, nil
}
