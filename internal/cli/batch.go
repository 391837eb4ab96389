package cli

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/woozymasta/ddsenc/internal/ddsconfig"
)

// CmdBatch runs every encode job in a YAML manifest.
type CmdBatch struct {
	Only []string `short:"j" long:"job" description:"Run only the named job(s) (repeatable)"`
	Skip bool     `short:"u" long:"skip-unchanged" description:"Skip a job when its input is unchanged since the last run and its output still exists"`

	Args struct {
		Path string `positional-arg-name:"path" description:"Path to manifest file or directory (default: ./.ddsenc.yaml)"`
	} `positional-args:"yes"`
}

// Execute runs the batch command.
func (c *CmdBatch) Execute(args []string) error {
	return runBatch(c)
}

func runBatch(opts *CmdBatch) error {
	manifestPath, err := ddsconfig.ResolvePath(opts.Args.Path)
	if err != nil {
		return err
	}

	manifest, err := ddsconfig.Load(manifestPath)
	if err != nil {
		return err
	}

	manifest, err = manifest.Filter(opts.Only)
	if err != nil {
		return err
	}

	for _, job := range manifest.Jobs {
		if err := runBatchJob(job, opts.Skip); err != nil {
			return fmt.Errorf("job %q: %w", job.Name, err)
		}
	}
	return nil
}

func runBatchJob(job ddsconfig.Job, skipUnchanged bool) error {
	cachePath := job.Output + ".ddsenc-cache"

	if skipUnchanged {
		inputHash, err := hashFileXX(job.Input)
		if err == nil {
			if shouldSkipJob(cachePath, job.Output, inputHash) {
				return nil
			}
		}
	}

	cfg, err := job.EncodeConfig()
	if err != nil {
		return err
	}

	if err := encodeToFile(job.Input, job.Output, cfg); err != nil {
		return err
	}

	if skipUnchanged {
		if inputHash, err := hashFileXX(job.Input); err == nil {
			_ = writeCacheHash(cachePath, inputHash)
		}
	}
	return nil
}

// shouldSkipJob reports whether the job's output is already up to date:
// the cached input hash matches and the output file still exists.
func shouldSkipJob(cachePath, outputPath string, nextHash uint64) bool {
	prevHash, ok, err := readCacheHash(cachePath)
	if err != nil || !ok || prevHash != nextHash {
		return false
	}
	_, err = os.Stat(outputPath)
	return err == nil
}

func readCacheHash(path string) (uint64, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read cache: %w", err)
	}
	if len(data) != 8 {
		return 0, false, nil
	}
	return binary.LittleEndian.Uint64(data), true, nil
}

func writeCacheHash(path string, hash uint64) error {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, hash)
	if err := os.WriteFile(path, buf, 0o600); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}

func hashFileXX(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, fmt.Errorf("hash %q: %w", path, err)
	}
	return h.Sum64(), nil
}
