// Package cli implements the ddsenc command-line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/woozymasta/ddsenc/internal/vars"
)

// Root defines global CLI flags.
type Root struct{}

// CmdVersion prints build metadata.
type CmdVersion struct{}

// Execute runs the version command.
func (c *CmdVersion) Execute(args []string) error {
	vars.Print()
	return nil
}

// Run parses arguments and executes the selected command.
func Run(args []string) error {
	var root Root

	parser := flags.NewParser(&root, flags.Default)
	parser.Name = filepath.Base(os.Args[0])
	prog := parser.Name

	if _, err := parser.AddCommand(
		"encode",
		"Encode a single image into a DDS file",
		fmt.Sprintf(
			`Encode one source image into a DDS file.

Examples:
  %s encode icon.png icon.dds
  %s encode diffuse.tga diffuse.dds --compression bc1
  %s encode normal.png normal.dds --compression bc3n --mipmap generate`,
			prog, prog, prog,
		),
		&CmdEncode{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"batch",
		"Run encode jobs from a manifest file",
		fmt.Sprintf(
			`Run multiple encode jobs from a YAML manifest.

Examples:
  %s batch ./ddsenc.yaml
  %s batch --job ui --job icons`,
			prog, prog,
		),
		&CmdBatch{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"inspect",
		"Print a DDS file's header fields",
		fmt.Sprintf(
			`Parse and print a DDS file's header without decoding pixel data.

Examples:
  %s inspect atlas.dds`,
			prog,
		),
		&CmdInspect{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"version",
		"Print build metadata",
		fmt.Sprintf(
			`Show build information.

Examples:
  %s version`,
			prog,
		),
		&CmdVersion{},
	); err != nil {
		return err
	}

	_, err := parser.ParseArgs(args)
	if err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	return nil
}
