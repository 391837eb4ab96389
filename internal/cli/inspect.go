package cli

import (
	"fmt"
	"os"

	"github.com/woozymasta/ddsenc/internal/bcn"
	"github.com/woozymasta/ddsenc/internal/dds"
)

// CmdInspect prints a DDS file's header fields without decoding any pixel
// data, for verifying what an encode actually produced.
type CmdInspect struct {
	Args struct {
		Path string `positional-arg-name:"path" description:"DDS file to inspect" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

// Execute runs the inspect command.
func (c *CmdInspect) Execute(args []string) error {
	return runInspect(c)
}

func runInspect(opts *CmdInspect) error {
	f, err := os.Open(opts.Args.Path)
	if err != nil {
		return fmt.Errorf("open %q: %w", opts.Args.Path, err)
	}
	defer func() { _ = f.Close() }()

	header, err := dds.ReadHeader(f)
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	dx10, err := dds.ReadHeaderDx10(f, header)
	if err != nil {
		return fmt.Errorf("read DX10 header: %w", err)
	}

	printHeader(opts.Args.Path, header, dx10)
	return nil
}

func printHeader(path string, h *dds.Header, dx10 *dds.HeaderDx10) {
	fmt.Printf("%s\n", path)
	fmt.Printf("  size:        %dx%d\n", h.Width, h.Height)
	if h.Flags&dds.DDepth != 0 {
		fmt.Printf("  depth:       %d\n", h.Depth)
	}
	fmt.Printf("  mip levels:  %d\n", mipCount(h))
	fmt.Printf("  pitch/size:  %d\n", h.PitchOrLinearSize)

	switch {
	case h.PixelFormat.Flags&dds.PFFourCC != 0:
		fmt.Printf("  format:      FourCC %s\n", fourCCString(h.PixelFormat.FourCC))
	case h.PixelFormat.Flags&dds.PFPaletteIndexed8 != 0:
		fmt.Printf("  format:       8-bit palette-indexed\n")
	default:
		fmt.Printf("  format:      %d-bit uncompressed (R=%#08x G=%#08x B=%#08x A=%#08x)\n",
			h.PixelFormat.RGBBitCount, h.PixelFormat.RBitMask, h.PixelFormat.GBitMask, h.PixelFormat.BBitMask, h.PixelFormat.ABitMask)
	}

	fmt.Printf("  cubemap:     %t\n", h.Caps2&dds.Caps2Cubemap != 0)
	fmt.Printf("  volume:      %t\n", h.Caps2&dds.Caps2Volume != 0)

	if dx10 != nil {
		fmt.Printf("  dxgi format: %d\n", dx10.DXGIFormat)
		fmt.Printf("  array size:  %d\n", dx10.ArraySize)
	}

	block, tag := bcn.DetectFormat(h, dx10)
	fmt.Printf("  block codec: %s (%s)\n", block, tag)
}

func mipCount(h *dds.Header) uint32 {
	if h.Flags&dds.DMipMapCount == 0 || h.MipMapCount == 0 {
		return 1
	}
	return h.MipMapCount
}

func fourCCString(v uint32) string {
	b := [4]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	return string(b[:])
}
