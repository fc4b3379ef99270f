// Package main provides the CLI entrypoint for svg2svelte.
//
// svg2svelte converts SVG icons into Svelte 5 components:
//   - Cleans up the markup (metadata, editor data, redundant attributes)
//   - Validates the result against the supported element set
//   - Exposes root attributes as props with the original values as defaults
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"svg2svelte/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Run(ctx, os.Args[1:], afero.NewOsFs(), cli.Streams{Out: os.Stdout, Err: os.Stderr})

	stop()
	os.Exit(code)
}
