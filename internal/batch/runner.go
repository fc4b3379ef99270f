// Package batch converts many SVG files concurrently, isolating failures to
// the file that caused them.
package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"svg2svelte/internal/diagnostic"
	"svg2svelte/internal/gen"
	"svg2svelte/internal/logger"
	"svg2svelte/internal/naming"
	"svg2svelte/internal/normalize"
	"svg2svelte/internal/pipeline"
	"svg2svelte/internal/svg"
)

// Options controls where and how files are converted.
type Options struct {
	// OutputDir receives the components. Empty means next to each source.
	OutputDir string
	// Jobs bounds parallel conversions; values below 1 mean one at a time.
	Jobs int
	// Extension is the component file extension.
	Extension string
}

// Outcome is the result of converting one file.
type Outcome struct {
	// Source is the input path.
	Source string
	// Name is the source path relative to the batch base directory.
	Name string
	// Target is the output path.
	Target string
	// Code classifies a failure; empty on success.
	Code string
	// Err is the failure cause, nil on success.
	Err error
}

// OK reports whether the file was converted and written.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// ReportFunc is called once per finished file. Calls never overlap.
type ReportFunc func(Outcome)

// Result summarizes a batch.
type Result struct {
	// Outcomes are in input order.
	Outcomes    []Outcome
	Succeeded   int
	Failed      int
	Diagnostics diagnostic.Diagnostics
}

// Summary returns the closing report line.
func (r *Result) Summary() string {
	return fmt.Sprintf("Complete: %d succeeded, %d failed", r.Succeeded, r.Failed)
}

// Runner converts files from an afero file system.
type Runner struct {
	fs        afero.Fs
	converter *pipeline.Converter
	opts      Options
	report    ReportFunc
}

// NewRunner creates a Runner. report may be nil.
func NewRunner(fsys afero.Fs, converter *pipeline.Converter, opts Options, report ReportFunc) *Runner {
	if opts.Jobs < 1 {
		opts.Jobs = 1
	}

	if opts.Extension == "" {
		opts.Extension = naming.ComponentExt
	}

	return &Runner{fs: fsys, converter: converter, opts: opts, report: report}
}

// TargetPath returns where the component for source is written. The source
// path relative to base is mirrored below the output directory.
func (r *Runner) TargetPath(base, source string) string {
	outDir := r.opts.OutputDir
	if outDir == "" {
		outDir = base
	}

	rel, err := filepath.Rel(base, filepath.Dir(source))
	if err != nil {
		rel = "."
	}

	return filepath.Join(outDir, rel, naming.ComponentFile(source, r.opts.Extension))
}

// Run converts files, each of which must lie under base. A failed file never
// stops the others; cancellation of ctx stops scheduling and marks the
// remaining files as canceled. The returned error is only ctx.Err().
func (r *Runner) Run(ctx context.Context, base string, files []string) (*Result, error) {
	log := logger.FromContext(ctx).With("component", "batch")
	outcomes := make([]Outcome, len(files))

	var mu sync.Mutex

	finish := func(idx int, o Outcome) {
		mu.Lock()
		defer mu.Unlock()

		outcomes[idx] = o
		if r.report != nil {
			r.report(o)
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.opts.Jobs)

	log.Debug("Starting batch", "files", len(files), "jobs", r.opts.Jobs)

	for idx, source := range files {
		if groupCtx.Err() != nil {
			finish(idx, r.canceled(base, source, groupCtx.Err()))
			continue
		}

		group.Go(func() error {
			o := r.convertOne(groupCtx, base, source)
			if o.OK() {
				log.Debug("Converted", "file", o.Name, "target", o.Target)
			} else {
				log.Error("Conversion failed", "file", o.Name, "code", o.Code, "error", o.Err)
			}

			finish(idx, o)

			return nil
		})
	}

	// Workers never return errors; failures live in the outcomes.
	_ = group.Wait()

	res := &Result{Outcomes: outcomes}
	for _, o := range outcomes {
		if o.OK() {
			res.Succeeded++
			res.Diagnostics.AddInfo(diagnostic.CodeConverted, o.Target, o.Name, "")

			continue
		}

		res.Failed++
		res.Diagnostics.AddError(o.Code, o.Err.Error(), o.Name, "")
	}

	log.Debug("Batch finished", "succeeded", res.Succeeded, "failed", res.Failed)

	return res, ctx.Err()
}

func (r *Runner) newOutcome(base, source string) Outcome {
	name, err := filepath.Rel(base, source)
	if err != nil {
		name = filepath.Base(source)
	}

	return Outcome{Source: source, Name: name, Target: r.TargetPath(base, source)}
}

func (r *Runner) canceled(base, source string, cause error) Outcome {
	o := r.newOutcome(base, source)
	o.Code = diagnostic.CodeCanceled
	o.Err = cause

	return o
}

func (r *Runner) convertOne(ctx context.Context, base, source string) Outcome {
	o := r.newOutcome(base, source)

	if err := ctx.Err(); err != nil {
		return r.canceled(base, source, err)
	}

	data, err := afero.ReadFile(r.fs, source)
	if err != nil {
		o.Code, o.Err = diagnostic.CodeReadFailed, fmt.Errorf("reading %s: %w", source, err)
		return o
	}

	file, err := r.converter.ConvertFile(string(data), source, r.opts.Extension)
	if err != nil {
		o.Code, o.Err = failureCode(err), err
		return o
	}

	err = gen.WriteFiles(r.fs, []gen.GeneratedFile{file}, filepath.Dir(o.Target))
	if err != nil {
		o.Code, o.Err = diagnostic.CodeWriteFailed, err
		return o
	}

	return o
}

// failureCode classifies a conversion error by the stage that produced it.
func failureCode(err error) string {
	var normErr *normalize.Error
	if errors.As(err, &normErr) {
		return diagnostic.CodeNormalizeFailed
	}

	var parseErr *svg.ParseError
	if errors.As(err, &parseErr) {
		return diagnostic.CodeParseFailed
	}

	return diagnostic.CodeConvertFailed
}
