package main

import (
	"fmt"
	"os"

	"github.com/woozymasta/ddsenc/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ddsenc: %v\n", err)
		os.Exit(1)
	}
}
