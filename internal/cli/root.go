// Package cli implements the svg2svelte command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"svg2svelte/internal/batch"
	"svg2svelte/internal/config"
	"svg2svelte/internal/diagnostic"
	"svg2svelte/internal/logger"
	"svg2svelte/internal/naming"
	"svg2svelte/internal/pipeline"
)

const (
	appName   = "svg2svelte"
	usageLine = "Usage: " + appName + " <input-dir-or-svg-file> [output-dir] [--include-class]"
)

// errReported marks a failure whose details were already written to stderr.
var errReported = errors.New("failures reported")

// Streams are the report destinations.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// app holds the state of one invocation.
type app struct {
	fs      afero.Fs
	streams Streams
	flags   flags
}

// NewRootCmd builds the root command reading and writing through fsys.
func NewRootCmd(fsys afero.Fs, streams Streams) *cobra.Command {
	a := &app{fs: fsys, streams: streams}

	cmd := &cobra.Command{
		Use:   appName + " <input-dir-or-svg-file> [output-dir]",
		Short: "Convert SVG files into parametrized Svelte components",
		Long: `svg2svelte cleans up SVG markup and turns every file into a Svelte 5
component whose root attributes are exposed as props with the original
values as defaults.

The output directory defaults to the input's directory.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				fmt.Fprintln(streams.Err, usageLine)
				return errReported
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.run,
	}

	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)
	bindFlags(cmd.Flags(), &a.flags)

	return cmd
}

// Run executes the command line and returns the process exit code.
func Run(ctx context.Context, args []string, fsys afero.Fs, streams Streams) int {
	cmd := NewRootCmd(fsys, streams)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if !errors.Is(err, errReported) {
		fmt.Fprintf(streams.Err, "Error: %v\n", err)
	}

	return 1
}

// fail writes an error line and returns errReported.
func (a *app) fail(format string, args ...any) error {
	fmt.Fprintf(a.streams.Err, "Error: "+format+"\n", args...)
	return errReported
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	input := args[0]

	info, err := a.fs.Stat(input)
	if errors.Is(err, os.ErrNotExist) {
		return a.fail("Input path does not exist: %s", input)
	}

	if err != nil {
		return fmt.Errorf("reading input %s: %w", input, err)
	}

	base := input
	if !info.IsDir() {
		base = filepath.Dir(input)
	}

	cfg, err := a.loadConfig(cmd, base)
	if err != nil {
		return err
	}

	if len(args) > 1 {
		cfg.OutputDir = args[1]
	}

	if a.flags.printConfig {
		data, err := config.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("printing config: %w", err)
		}

		_, err = a.streams.Out.Write(data)

		return err
	}

	level, _ := logger.ParseLevel(cfg.LogLevel)
	log := logger.NewLogger(&logger.Config{
		Level:      level,
		Output:     a.streams.Err,
		JSON:       cfg.LogJSON,
		TimeFormat: logger.DefaultConfig().TimeFormat,
	})
	ctx := logger.ContextWithLogger(cmd.Context(), log)

	switch {
	case info.Mode().IsRegular():
		if !strings.HasSuffix(input, naming.SourceExt) {
			return a.fail("Input file must be an SVG file (%s)", naming.SourceExt)
		}

		return a.convert(ctx, cfg, base, &batch.Selection{Files: []string{input}}, false)
	case info.IsDir():
		sel, err := batch.Discover(a.fs, input, cfg.Recursive, cfg.Exclude)
		if err != nil {
			return err
		}

		if len(sel.Files) == 0 {
			return a.fail("No %s files found in %s", naming.SourceExt, input)
		}

		fmt.Fprintf(a.streams.Out, "Found %d SVG file(s)\n", len(sel.Files))

		if skipped := sel.Skipped(); len(skipped) > 0 {
			fmt.Fprintf(a.streams.Out, "Skipped %d excluded file(s)\n", len(skipped))
		}

		return a.convert(ctx, cfg, base, sel, true)
	default:
		return a.fail("Input must be a file or directory")
	}
}

// loadConfig resolves defaults, then the config file, then flags.
func (a *app) loadConfig(cmd *cobra.Command, base string) (*config.Config, error) {
	path := a.flags.configPath
	if path == "" {
		found, err := config.Find(a.fs, base)
		if err != nil {
			return nil, err
		}

		path = found
	}

	cfg := config.Default()

	if path != "" {
		loaded, err := config.LoadFile(a.fs, path)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	applyFlags(cmd.Flags(), &a.flags, cfg)

	if res := config.Validate(cfg); res.HasErrors() {
		return nil, fmt.Errorf("invalid configuration: %w", res.Error())
	}

	return cfg, nil
}

// convert runs the batch and prints per-file lines plus, for directories,
// the closing summary.
func (a *app) convert(ctx context.Context, cfg *config.Config, base string, sel *batch.Selection, summary bool) error {
	converter := pipeline.NewDefault(pipeline.Options{IncludeClass: cfg.IncludeClass})
	runner := batch.NewRunner(a.fs, converter, batch.Options{
		OutputDir: cfg.OutputDir,
		Jobs:      cfg.Jobs,
		Extension: cfg.Extension,
	}, a.report)

	res, err := runner.Run(ctx, base, sel.Files)
	res.Diagnostics.Merge(sel.Diagnostics)

	logDiagnostics(logger.FromContext(ctx), &res.Diagnostics)

	if summary {
		fmt.Fprintf(a.streams.Out, "\n%s\n", res.Summary())
	}

	if err != nil {
		return fmt.Errorf("conversion interrupted: %w", err)
	}

	if res.Failed > 0 {
		return errReported
	}

	return nil
}

// logDiagnostics logs skipped sources at debug level and, after failures,
// the combined failure list.
func logDiagnostics(log logger.Logger, diags *diagnostic.Diagnostics) {
	for _, d := range diags.Infos {
		if d.Code == diagnostic.CodeSkipped {
			log.Debug("Skipped", "file", d.File, "reason", d.Message)
		}
	}

	if err := diags.Error(); err != nil {
		log.Warn("Batch finished with failures", "failed", len(diags.Errors), "error", err)
	}
}

func (a *app) report(o batch.Outcome) {
	fmt.Fprintf(a.streams.Out, "Processing: %s\n", o.Source)

	if o.OK() {
		fmt.Fprintf(a.streams.Out, "  → %s\n", o.Target)
		return
	}

	fmt.Fprintf(a.streams.Err, "Failed to process %s:\n", o.Name)
	fmt.Fprintf(a.streams.Err, "  %s\n", o.Err)
}
