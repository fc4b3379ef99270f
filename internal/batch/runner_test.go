package batch

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svg2svelte/internal/diagnostic"
	"svg2svelte/internal/logger"
	"svg2svelte/internal/pipeline"
)

const validSVG = `<svg width="24" height="24" viewBox="0 0 24 24"><circle cx="12" cy="12" r="10"/></svg>`

func testContext(t *testing.T) context.Context {
	t.Helper()

	return logger.ContextWithLogger(t.Context(), logger.NewLogger(logger.TestConfig()))
}

func newRunner(fs afero.Fs, opts Options, report ReportFunc) *Runner {
	return NewRunner(fs, pipeline.NewDefault(pipeline.Options{}), opts, report)
}

func TestRunner_Run_IsolatesFailures(t *testing.T) {
	fs := afero.NewMemMapFs()
	for i := range 5 {
		require.NoError(t, afero.WriteFile(fs, fmt.Sprintf("/icons/icon-%d.svg", i), []byte(validSVG), 0o644))
	}

	require.NoError(t, afero.WriteFile(fs, "/icons/broken.svg", []byte(`<svg width="1"/>`), 0o644))

	sel, err := Discover(fs, "/icons", false, nil)
	require.NoError(t, err)
	require.Len(t, sel.Files, 6)

	files := sel.Files

	var reported atomic.Int32

	runner := newRunner(fs, Options{Jobs: 3}, func(Outcome) { reported.Add(1) })

	res, err := runner.Run(testContext(t), "/icons", files)
	require.NoError(t, err)

	assert.Equal(t, 5, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, "Complete: 5 succeeded, 1 failed", res.Summary())
	assert.Equal(t, int32(6), reported.Load())

	require.Len(t, res.Diagnostics.Errors, 1)
	failure := res.Diagnostics.Errors[0]
	assert.Equal(t, diagnostic.CodeParseFailed, failure.Code)
	assert.Equal(t, "broken.svg", failure.File)
	assert.Equal(t, "Invalid SVG: SVG has no child elements found", failure.Message)

	written, err := afero.Glob(fs, "/icons/*.svelte")
	require.NoError(t, err)

	sort.Strings(written)
	assert.Equal(t, []string{
		"/icons/Icon0.svelte", "/icons/Icon1.svelte", "/icons/Icon2.svelte",
		"/icons/Icon3.svelte", "/icons/Icon4.svelte",
	}, written)

	content, err := afero.ReadFile(fs, "/icons/Icon0.svelte")
	require.NoError(t, err)
	assert.Contains(t, string(content), "  <circle cx=\"12\" cy=\"12\" r=\"10\" />\n")
}

func TestRunner_Run_OutcomesInInputOrder(t *testing.T) {
	fs := newTree(t, "/in/a.svg", "/in/b.svg", "/in/c.svg")
	files := []string{"/in/c.svg", "/in/a.svg", "/in/b.svg"}

	res, err := newRunner(fs, Options{Jobs: 4}, nil).Run(testContext(t), "/in", files)
	require.NoError(t, err)

	require.Len(t, res.Outcomes, 3)
	for i, o := range res.Outcomes {
		assert.Equal(t, files[i], o.Source)
		assert.True(t, o.OK())
	}
}

func TestRunner_Run_MirrorsDirectories(t *testing.T) {
	fs := newTree(t, "/in/arrow-left.svg", "/in/nav/chevron-up.svg")

	sel, err := Discover(fs, "/in", true, nil)
	require.NoError(t, err)

	res, err := newRunner(fs, Options{OutputDir: "/out", Jobs: 2}, nil).Run(testContext(t), "/in", sel.Files)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Succeeded)

	for _, path := range []string{"/out/ArrowLeft.svelte", "/out/nav/ChevronUp.svelte"} {
		ok, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.True(t, ok, path)
	}
}

func TestRunner_Run_Extension(t *testing.T) {
	fs := newTree(t, "/in/home.svg")

	_, err := newRunner(fs, Options{Extension: ".component.svelte"}, nil).
		Run(testContext(t), "/in", []string{"/in/home.svg"})
	require.NoError(t, err)

	ok, err := afero.Exists(fs, "/in/Home.component.svelte")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRunner_Run_ReadAndWriteFailures(t *testing.T) {
	base := newTree(t, "/in/a.svg")

	res, err := newRunner(base, Options{}, nil).Run(testContext(t), "/in", []string{"/in/missing.svg"})
	require.NoError(t, err)
	require.Len(t, res.Outcomes, 1)
	assert.Equal(t, diagnostic.CodeReadFailed, res.Outcomes[0].Code)

	readOnly := afero.NewReadOnlyFs(base)

	res, err = newRunner(readOnly, Options{OutputDir: "/out"}, nil).Run(testContext(t), "/in", []string{"/in/a.svg"})
	require.NoError(t, err)
	require.Len(t, res.Outcomes, 1)
	assert.Equal(t, diagnostic.CodeWriteFailed, res.Outcomes[0].Code)
	assert.Equal(t, 1, res.Failed)
}

func TestRunner_Run_NormalizeFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/bad.svg", []byte(`<svg><g></svg>`), 0o644))

	res, err := newRunner(fs, Options{}, nil).Run(testContext(t), "/in", []string{"/in/bad.svg"})
	require.NoError(t, err)
	assert.Equal(t, diagnostic.CodeNormalizeFailed, res.Outcomes[0].Code)
}

func TestRunner_Run_Canceled(t *testing.T) {
	fs := newTree(t, "/in/a.svg", "/in/b.svg")

	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	res, err := newRunner(fs, Options{}, nil).Run(ctx, "/in", []string{"/in/a.svg", "/in/b.svg"})
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, 2, res.Failed)
	for _, o := range res.Outcomes {
		assert.Equal(t, diagnostic.CodeCanceled, o.Code)
	}
}

func TestRunner_Run_SuccessLoggedAtDebug(t *testing.T) {
	fs := newTree(t, "/in/a.svg")

	run := func(level logger.LogLevel) string {
		var buf bytes.Buffer

		cfg := logger.TestConfig()
		cfg.Level = level
		cfg.Output = &buf
		ctx := logger.ContextWithLogger(t.Context(), logger.NewLogger(cfg))

		res, err := newRunner(fs, Options{}, nil).Run(ctx, "/in", []string{"/in/a.svg"})
		require.NoError(t, err)
		require.Equal(t, 1, res.Succeeded)

		return buf.String()
	}

	assert.NotContains(t, run(logger.InfoLevel), "Converted")
	assert.Contains(t, run(logger.DebugLevel), "Converted")
}

func TestRunner_TargetPath(t *testing.T) {
	r := newRunner(afero.NewMemMapFs(), Options{}, nil)
	assert.Equal(t, "/in/sub/GitBranch.svelte", r.TargetPath("/in", "/in/sub/git-branch.svg"))

	r = newRunner(afero.NewMemMapFs(), Options{OutputDir: "/out"}, nil)
	assert.Equal(t, "/out/sub/GitBranch.svelte", r.TargetPath("/in", "/in/sub/git-branch.svg"))
	assert.Equal(t, "/out/GitBranch.svelte", r.TargetPath("/in", "/in/git-branch.svg"))
}
