package dds

import "encoding/binary"

// FourCC packs a 4-byte ASCII tag into its little-endian uint32 wire form.
func FourCC(tag string) uint32 {
	var b [4]byte
	copy(b[:], tag)
	return binary.LittleEndian.Uint32(b[:])
}

// BuildParams carries every field the header builder needs to populate the
// 128-byte DDS header and, when requested, the DX10 extension header.
type BuildParams struct {
	Width, Height, Depth uint32
	MipMapCount          uint32
	ArraySize            uint32

	IsCubemap bool
	IsVolume  bool
	IsDX10    bool

	// PixelFormatFlags/FourCC/RGBBitCount/Masks describe the on-disk pixel
	// layout: for compressed surfaces FourCC names the block format and the
	// mask/bitcount fields are left zero; for uncompressed surfaces FourCC
	// is zero and the mask/bitcount fields describe the packed layout.
	PixelFormatFlags uint32
	FourCC           uint32
	RGBBitCount      uint32
	RMask, GMask, BMask, AMask uint32

	// PitchOrLinearSize is precomputed by the caller (§4.C): row pitch for
	// uncompressed surfaces, total level-0 block-payload size otherwise.
	PitchOrLinearSize uint32
	LinearSize        bool // true selects DLinearSize over DPitch in flags.

	// SemanticFourCC, when non-zero, is written at Reserved1[3] (offset 44)
	// to recover AExp/YCoCg encodings that are otherwise indistinguishable
	// from plain BC3 on disk.
	SemanticFourCC uint32

	// DXGIFormat is only consulted when IsDX10 is true.
	DXGIFormat uint32
}

// BuildHeader assembles a DDS_HEADER per §4.H from BuildParams.
func BuildHeader(p BuildParams) *Header {
	flags := uint32(HeaderFlagsTexture)
	if p.LinearSize {
		flags |= HeaderFlagsLinearSize
	} else {
		flags |= HeaderFlagsPitch
	}
	if p.MipMapCount > 1 {
		flags |= HeaderFlagsMipMap
	}
	if p.IsVolume {
		flags |= HeaderFlagsVolume
	}

	caps := uint32(CapsTexture)
	if p.MipMapCount > 1 || p.IsCubemap || p.IsVolume {
		caps |= CapsComplex
	}
	if p.MipMapCount > 1 {
		caps |= CapsMipMap
	}

	caps2 := uint32(0)
	if p.IsCubemap {
		caps2 |= Caps2Cubemap | Caps2CubemapAllFaces
	}
	if p.IsVolume {
		caps2 |= Caps2Volume
	}

	fourCC := p.FourCC
	pfFlags := p.PixelFormatFlags
	if p.IsDX10 {
		fourCC = FourCCDX10
		pfFlags = PFFourCC
	}

	reserved1 := [11]uint32{}
	reserved1[0] = WriterSignature
	reserved1[1] = WriterTag
	reserved1[2] = WriterVersion
	reserved1[3] = p.SemanticFourCC

	return &Header{
		Size:              HeaderSize,
		Flags:             flags,
		Height:            p.Height,
		Width:             p.Width,
		PitchOrLinearSize: p.PitchOrLinearSize,
		Depth:             p.Depth,
		MipMapCount:       p.MipMapCount,
		Reserved1:         reserved1,
		PixelFormat: PixelFormat{
			Size:        PixelFormatSize,
			Flags:       pfFlags,
			FourCC:      fourCC,
			RGBBitCount: p.RGBBitCount,
			RBitMask:    p.RMask,
			GBitMask:    p.GMask,
			BBitMask:    p.BMask,
			ABitMask:    p.AMask,
		},
		Caps:  caps,
		Caps2: caps2,
	}
}

// BuildHeaderDx10 assembles the DDS_HEADER_DXT10 extension (§4.H).
func BuildHeaderDx10(dxgiFormat, arraySize uint32) *HeaderDx10 {
	return &HeaderDx10{
		DXGIFormat:        dxgiFormat,
		ResourceDimension: 3, // D3D10_RESOURCE_DIMENSION_TEXTURE2D
		MiscFlag:          0,
		ArraySize:         arraySize,
		MiscFlags2:        0,
	}
}
