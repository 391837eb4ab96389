package ddsconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".ddsenc.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadAppliesDefaultsAndResolvesPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, `
jobs:
  - name: hero
    input: hero.png
`)

	m, err := Load(filepath.Join(dir, ".ddsenc.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Jobs) != 1 {
		t.Fatalf("Load produced %d jobs, want 1", len(m.Jobs))
	}
	job := m.Jobs[0]
	if job.Input != filepath.Join(dir, "hero.png") {
		t.Fatalf("job.Input = %q, want absolute path under %q", job.Input, dir)
	}
	if job.Output != filepath.Join(dir, "hero.dds") {
		t.Fatalf("job.Output = %q, want derived .dds path", job.Output)
	}
	if job.Compression != "none" || job.MipmapFilter != "box" {
		t.Fatalf("job defaults not applied: %+v", job)
	}
	if !job.GammaCorrect {
		t.Fatalf("job.GammaCorrect default not applied")
	}
}

func TestLoadBareListShape(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, `
- name: a
  input: a.png
- name: b
  input: b.png
`)

	m, err := Load(filepath.Join(dir, ".ddsenc.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Jobs) != 2 {
		t.Fatalf("Load produced %d jobs, want 2", len(m.Jobs))
	}
}

func TestLoadRejectsEmptyManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "jobs: []\n")

	if _, err := Load(filepath.Join(dir, ".ddsenc.yaml")); err == nil {
		t.Fatalf("expected an error for a manifest with no jobs")
	}
}

func TestManifestFilterByName(t *testing.T) {
	t.Parallel()

	m := &Manifest{Jobs: []Job{{Name: "a"}, {Name: "b"}}}
	filtered, err := m.Filter([]string{"b"})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(filtered.Jobs) != 1 || filtered.Jobs[0].Name != "b" {
		t.Fatalf("Filter([b]) = %+v, want just job b", filtered.Jobs)
	}
}

func TestManifestFilterEmptyKeepsAll(t *testing.T) {
	t.Parallel()

	m := &Manifest{Jobs: []Job{{Name: "a"}, {Name: "b"}}}
	filtered, err := m.Filter(nil)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(filtered.Jobs) != 2 {
		t.Fatalf("Filter(nil) = %d jobs, want 2", len(filtered.Jobs))
	}
}

func TestManifestFilterNoMatchErrors(t *testing.T) {
	t.Parallel()

	m := &Manifest{Jobs: []Job{{Name: "a"}}}
	if _, err := m.Filter([]string{"missing"}); err == nil {
		t.Fatalf("expected an error when no job matches --job")
	}
}

func TestResolvePathExplicitFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeManifest(t, dir, "jobs: []\n")

	got, err := ResolvePath(path)
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	if got != path {
		t.Fatalf("ResolvePath(%q) = %q, want %q", path, got, path)
	}
}

func TestResolvePathDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "jobs: []\n")

	got, err := ResolvePath(dir)
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	if got != filepath.Join(dir, ".ddsenc.yaml") {
		t.Fatalf("ResolvePath(dir) = %q, want default manifest name under dir", got)
	}
}

func TestJobEncodeConfigTranslatesFields(t *testing.T) {
	t.Parallel()

	j := Job{
		Compression:        "bc1",
		PixelFormat:        "default",
		MipmapMode:         "generate",
		SaveType:           "cubemap",
		MipmapFilter:       "triangle",
		MipmapWrap:         "mirror",
		Gamma:              2.4,
		AlphaTestThreshold: 96,
		TransparentIndex:   3,
	}
	cfg, err := j.EncodeConfig()
	if err != nil {
		t.Fatalf("EncodeConfig: %v", err)
	}
	if cfg.AlphaTestThreshold != 96 {
		t.Fatalf("cfg.AlphaTestThreshold = %d, want 96", cfg.AlphaTestThreshold)
	}
	if cfg.TransparentIndex != 3 {
		t.Fatalf("cfg.TransparentIndex = %d, want 3", cfg.TransparentIndex)
	}
	if cfg.Gamma != 2.4 {
		t.Fatalf("cfg.Gamma = %v, want 2.4", cfg.Gamma)
	}
}

func TestJobEncodeConfigRejectsUnknownEnum(t *testing.T) {
	t.Parallel()

	j := Job{Compression: "not-real"}
	if _, err := j.EncodeConfig(); err == nil {
		t.Fatalf("expected an error for an unknown compression string")
	}
}
