// Package ddsconfig loads batch-encode job manifests: a YAML document
// listing one or more encode jobs, each resolving to an input path, an
// output path, and a ddsimage.EncodeConfig, mirroring the teacher's
// project-manifest pattern for multi-target builds.
package ddsconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/ddsenc/internal/ddsimage"
)

const defaultManifestName = ".ddsenc.yaml"

// Job is one encode target parsed from a manifest entry.
type Job struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
	// Output defaults to Input with its extension replaced by .dds when empty.
	Output string `yaml:"output"`

	Compression  string `yaml:"compression" default:"none"`
	PixelFormat  string `yaml:"pixel_format" default:"default"`
	MipmapMode   string `yaml:"mipmap" default:"none"`
	SaveType     string `yaml:"save_as" default:"selected_layer"`
	MipmapFilter string `yaml:"mipmap_filter" default:"box"`
	MipmapWrap   string `yaml:"mipmap_wrap" default:"clamp"`

	FlipVertical          bool    `yaml:"flip_vertical"`
	GammaCorrect          bool    `yaml:"gamma_correct" default:"true"`
	SRGB                  bool    `yaml:"srgb"`
	Gamma                 float64 `yaml:"gamma" default:"2.2"`
	PreserveAlphaCoverage bool    `yaml:"preserve_alpha_coverage"`
	AlphaTestThreshold    int     `yaml:"alpha_test_threshold" default:"128"`
	PerceptualMetric      bool    `yaml:"perceptual_metric"`
	TransparentIndex      int     `yaml:"transparent_index" default:"-1"`
}

// Manifest is the parsed top-level document: either `jobs: [...]` or a bare
// top-level list, matching the teacher's build.go fallback between a keyed
// and an unkeyed document shape.
type Manifest struct {
	Jobs []Job
}

// Load reads and parses a manifest file, applying defaults.Set to every
// job and resolving relative input/output paths against the manifest's
// own directory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	jobs, err := parseJobs(data)
	if err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no jobs found in %q", path)
	}

	baseDir := filepath.Dir(path)
	for i := range jobs {
		if err := defaults.Set(&jobs[i]); err != nil {
			return nil, fmt.Errorf("apply defaults: %w", err)
		}
		normalizePaths(&jobs[i], baseDir)
	}

	return &Manifest{Jobs: jobs}, nil
}

// ResolvePath finds the manifest to load: an explicit file or directory
// argument, falling back to the default manifest name in the current
// directory when arg is empty.
func ResolvePath(arg string) (string, error) {
	if strings.TrimSpace(arg) == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get cwd: %w", err)
		}
		path := filepath.Join(cwd, defaultManifestName)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("manifest not found: %s", path)
		}
		return path, nil
	}

	info, err := os.Stat(arg)
	if err != nil {
		return "", fmt.Errorf("manifest path: %w", err)
	}
	if info.IsDir() {
		path := filepath.Join(arg, defaultManifestName)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("manifest not found: %s", path)
		}
		return path, nil
	}
	return arg, nil
}

func parseJobs(data []byte) ([]Job, error) {
	var doc struct {
		Jobs []Job `yaml:"jobs"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Jobs) > 0 {
		return doc.Jobs, nil
	}

	var list []Job
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func normalizePaths(j *Job, baseDir string) {
	j.Input = resolveRelative(baseDir, j.Input)
	if strings.TrimSpace(j.Output) == "" {
		j.Output = strings.TrimSuffix(j.Input, filepath.Ext(j.Input)) + ".dds"
	} else {
		j.Output = resolveRelative(baseDir, j.Output)
	}
}

func resolveRelative(baseDir, path string) string {
	if strings.TrimSpace(path) == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// Filter keeps only the jobs named in only, by Name or, when a job has no
// name, by its output file's base name. An empty only keeps every job.
func (m *Manifest) Filter(only []string) (*Manifest, error) {
	if len(only) == 0 {
		return m, nil
	}

	onlySet := make(map[string]struct{}, len(only))
	for _, name := range only {
		name = strings.TrimSpace(name)
		if name != "" {
			onlySet[name] = struct{}{}
		}
	}
	if len(onlySet) == 0 {
		return nil, fmt.Errorf("no valid --job values")
	}

	out := make([]Job, 0, len(m.Jobs))
	for _, j := range m.Jobs {
		key := j.Name
		if key == "" {
			key = strings.TrimSuffix(filepath.Base(j.Output), filepath.Ext(j.Output))
		}
		if _, ok := onlySet[key]; ok {
			out = append(out, j)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no jobs selected")
	}
	return &Manifest{Jobs: out}, nil
}

// EncodeConfig translates a parsed job's string fields into a validated
// ddsimage.EncodeConfig. Every field is taken from the job, so a field the
// manifest leaves unset carries the Job's own default tag (gamma_correct
// defaults to true here, while ddsimage.DefaultEncodeConfig leaves
// GammaCorrect off); on a parse error ddsimage.DefaultEncodeConfig is
// returned alongside the error.
func (j Job) EncodeConfig() (ddsimage.EncodeConfig, error) {
	cfg := ddsimage.DefaultEncodeConfig()

	compression, err := ParseCompression(j.Compression)
	if err != nil {
		return cfg, err
	}
	pixelFormat, err := ParsePixelFormat(j.PixelFormat)
	if err != nil {
		return cfg, err
	}
	mipmapMode, err := ParseMipmapMode(j.MipmapMode)
	if err != nil {
		return cfg, err
	}
	saveType, err := ParseSaveType(j.SaveType)
	if err != nil {
		return cfg, err
	}
	filter, err := ParseMipmapFilter(j.MipmapFilter)
	if err != nil {
		return cfg, err
	}
	wrap, err := ParseMipmapWrap(j.MipmapWrap)
	if err != nil {
		return cfg, err
	}

	cfg.Compression = compression
	cfg.PixelFormat = pixelFormat
	cfg.MipmapMode = mipmapMode
	cfg.SaveType = saveType
	cfg.MipmapFilter = filter
	cfg.MipmapWrap = wrap
	cfg.FlipVertical = j.FlipVertical
	cfg.GammaCorrect = j.GammaCorrect
	cfg.SRGB = j.SRGB
	cfg.Gamma = j.Gamma
	cfg.PreserveAlphaCoverage = j.PreserveAlphaCoverage
	cfg.AlphaTestThreshold = uint8(j.AlphaTestThreshold)
	cfg.PerceptualMetric = j.PerceptualMetric
	cfg.TransparentIndex = j.TransparentIndex

	return cfg, nil
}
