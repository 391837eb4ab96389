package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/woozymasta/ddsenc/internal/ddsconfig"
	"github.com/woozymasta/ddsenc/internal/ddsimage"
	"github.com/woozymasta/ddsenc/internal/ddsenc"
	"github.com/woozymasta/ddsenc/internal/imageio"
)

// CmdEncodeFlags defines the encode knobs shared between the encode and
// batch commands.
type CmdEncodeFlags struct {
	Compression  string `short:"c" long:"compression" description:"Compression" choice:"none" choice:"bc1" choice:"bc2" choice:"bc3" choice:"bc3n" choice:"rxgb" choice:"bc4" choice:"bc5" choice:"ycocg" choice:"ycocgs" choice:"aexp" default:"none" yaml:"compression"`
	PixelFormat  string `short:"p" long:"pixel-format" description:"Explicit uncompressed pixel format" default:"default" yaml:"pixel_format"`
	MipmapMode   string `short:"x" long:"mipmap" description:"Mipmap mode" choice:"none" choice:"generate" choice:"existing" default:"none" yaml:"mipmap"`
	SaveType     string `short:"s" long:"save-as" description:"Surface topology" choice:"selected_layer" choice:"visible_layers" choice:"cubemap" choice:"volume" choice:"array" default:"selected_layer" yaml:"save_as"`
	MipmapFilter string `long:"mipmap-filter" description:"Mipmap filter" choice:"box" choice:"triangle" default:"box" yaml:"mipmap_filter"`
	MipmapWrap   string `long:"mipmap-wrap" description:"Mipmap edge wrap mode" choice:"clamp" choice:"mirror" choice:"repeat" default:"clamp" yaml:"mipmap_wrap"`

	FlipVertical          bool    `long:"flip" description:"Flip the image vertically before encoding" yaml:"flip_vertical"`
	GammaCorrect          bool    `long:"gamma-correct" description:"Average mipmap samples in linear light" yaml:"gamma_correct"`
	SRGB                  bool    `long:"srgb" description:"Treat the source as sRGB-encoded" yaml:"srgb"`
	Gamma                 float64 `long:"gamma" description:"Gamma value used for linearization" default:"2.2" yaml:"gamma"`
	PreserveAlphaCoverage bool    `long:"preserve-alpha-coverage" description:"Rescale generated mip alpha to preserve alpha-test coverage" yaml:"preserve_alpha_coverage"`
	AlphaTestThreshold    int     `long:"alpha-test-threshold" description:"Alpha test threshold 0..255" default:"128" yaml:"alpha_test_threshold"`
	PerceptualMetric      bool    `long:"perceptual-metric" description:"Use a perceptual error metric when compressing" yaml:"perceptual_metric"`
	TransparentIndex      int     `long:"transparent-index" description:"Palette index forced to alpha=0 for indexed output" default:"-1" yaml:"transparent_index"`
}

// toEncodeConfig translates the flag group into a ddsimage.EncodeConfig.
func (f CmdEncodeFlags) toEncodeConfig() (ddsimage.EncodeConfig, error) {
	job := ddsconfig.Job{
		Compression:           f.Compression,
		PixelFormat:           f.PixelFormat,
		MipmapMode:            f.MipmapMode,
		SaveType:              f.SaveType,
		MipmapFilter:          f.MipmapFilter,
		MipmapWrap:            f.MipmapWrap,
		FlipVertical:          f.FlipVertical,
		GammaCorrect:          f.GammaCorrect,
		SRGB:                  f.SRGB,
		Gamma:                 f.Gamma,
		PreserveAlphaCoverage: f.PreserveAlphaCoverage,
		AlphaTestThreshold:    f.AlphaTestThreshold,
		PerceptualMetric:      f.PerceptualMetric,
		TransparentIndex:      f.TransparentIndex,
	}
	return job.EncodeConfig()
}

// CmdEncode encodes a single source image (or, for multi-layer topologies,
// a directory of named source images) into one DDS file.
type CmdEncode struct {
	Flags CmdEncodeFlags `group:"Encode"`
	Force bool           `short:"f" long:"force" description:"Overwrite an existing output file"`

	Args struct {
		Input  string `positional-arg-name:"input" description:"Source image file, or a directory of named layers for cubemap/array/volume" required:"yes"`
		Output string `positional-arg-name:"output" description:"Output DDS file path" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

// Execute runs the encode command.
func (c *CmdEncode) Execute(args []string) error {
	return runEncode(c)
}

func runEncode(opts *CmdEncode) error {
	cfg, err := opts.Flags.toEncodeConfig()
	if err != nil {
		return err
	}

	if !opts.Force {
		if _, err := os.Stat(opts.Args.Output); err == nil {
			return fmt.Errorf("output %q already exists (use --force to overwrite)", opts.Args.Output)
		}
	}

	return encodeToFile(opts.Args.Input, opts.Args.Output, cfg)
}

// encodeToFile loads one or more source images, builds the host image
// model, and writes the DDS output. A directory input supplies multiple
// named layers (cubemap faces, array elements, volume slices, or an
// existing mipmap chain); a file input supplies a single layer.
func encodeToFile(input, output string, cfg ddsimage.EncodeConfig) error {
	sources, err := loadSources(input)
	if err != nil {
		return err
	}

	img, err := imageio.NewImage(sources)
	if err != nil {
		return err
	}

	var selected ddsimage.LayerSource
	if layers := img.Layers(); len(layers) > 0 {
		selected = layers[0]
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := ddsenc.WriteDDS(f, img, selected, false, cfg); err != nil {
		return fmt.Errorf("encode %q: %w", output, err)
	}
	return nil
}

func loadSources(input string) ([]imageio.Source, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	if !info.IsDir() {
		decoded, err := imageio.Read(input)
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", input, err)
		}
		return []imageio.Source{{Name: baseName(input), Image: decoded, Visible: true}}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("read dir %q: %w", input, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	sources := make([]imageio.Source, 0, len(names))
	for _, name := range names {
		decoded, err := imageio.Read(filepath.Join(input, name))
		if err != nil {
			continue // skip files the decoder doesn't recognize
		}
		sources = append(sources, imageio.Source{Name: baseName(name), Image: decoded, Visible: true})
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no readable images found in %q", input)
	}
	return sources, nil
}

func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
