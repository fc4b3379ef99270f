package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSVG = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" class="icon">
  <title>Circle</title>
  <circle cx="12" cy="12" r="10"/>
</svg>`

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, fs afero.Fs, args ...string) result {
	t.Helper()

	var out, errOut bytes.Buffer

	args = append(args, "--log-level", "disabled")
	code := Run(t.Context(), args, fs, Streams{Out: &out, Err: &errOut})

	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	return string(data)
}

func TestRun_Usage(t *testing.T) {
	var out, errOut bytes.Buffer

	code := Run(t.Context(), nil, afero.NewMemMapFs(), Streams{Out: &out, Err: &errOut})

	assert.Equal(t, 1, code)
	assert.Equal(t, usageLine+"\n", errOut.String())
	assert.Empty(t, out.String())
}

func TestRun_MissingInput(t *testing.T) {
	res := run(t, afero.NewMemMapFs(), "/nope")

	assert.Equal(t, 1, res.code)
	assert.Equal(t, "Error: Input path does not exist: /nope\n", res.stderr)
}

func TestRun_NotAnSVGFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/icons/readme.md", "# icons")

	res := run(t, fs, "/icons/readme.md")

	assert.Equal(t, 1, res.code)
	assert.Equal(t, "Error: Input file must be an SVG file (.svg)\n", res.stderr)
}

func TestRun_EmptyDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/icons", 0o755))

	res := run(t, fs, "/icons")

	assert.Equal(t, 1, res.code)
	assert.Equal(t, "Error: No .svg files found in /icons\n", res.stderr)
}

func TestRun_SingleFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/icons/arrow-left.svg", validSVG)

	res := run(t, fs, "/icons/arrow-left.svg")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Processing: /icons/arrow-left.svg\n  → /icons/ArrowLeft.svelte\n", res.stdout)
	assert.Empty(t, res.stderr)

	component := readFile(t, fs, "/icons/ArrowLeft.svelte")
	assert.Contains(t, component, `"aria-label": ariaLabel = "Circle",`)
	assert.NotContains(t, component, "className")
}

func TestRun_SingleFileFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/icons/broken.svg", `<svg width="1"><image href="a.png"/></svg>`)

	res := run(t, fs, "/icons/broken.svg")

	assert.Equal(t, 1, res.code)
	assert.Equal(t, "Processing: /icons/broken.svg\n", res.stdout)
	assert.Equal(t, "Failed to process broken.svg:\n  Invalid SVG: Raster image elements are not supported\n", res.stderr)
}

func TestRun_Directory(t *testing.T) {
	fs := afero.NewMemMapFs()
	for i := range 5 {
		writeFile(t, fs, fmt.Sprintf("/icons/icon-%d.svg", i), validSVG)
	}

	writeFile(t, fs, "/icons/zz-broken.svg", `<svg width="1"/>`)

	res := run(t, fs, "/icons", "/out", "--include-class", "--jobs", "1")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "Found 6 SVG file(s)\n")
	assert.Contains(t, res.stdout, "Processing: /icons/icon-0.svg\n  → /out/Icon0.svelte\n")
	assert.Contains(t, res.stdout, "\nComplete: 5 succeeded, 1 failed\n")
	assert.Contains(t, res.stderr, "Failed to process zz-broken.svg:\n  Invalid SVG: SVG has no child elements found\n")

	for i := range 5 {
		component := readFile(t, fs, fmt.Sprintf("/out/Icon%d.svelte", i))
		assert.Contains(t, component, `"class": className = "icon",`)
	}

	ok, err := afero.Exists(fs, "/out/ZzBroken.svelte")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRun_DirectoryAllSucceed(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/icons/a.svg", validSVG)
	writeFile(t, fs, "/icons/b.svg", validSVG)

	res := run(t, fs, "/icons")

	assert.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "\nComplete: 2 succeeded, 0 failed\n")
	assert.Contains(t, readFile(t, fs, "/icons/A.svelte"), "<svg\n")
}

func TestRun_RecursiveWithConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/icons/home.svg", validSVG)
	writeFile(t, fs, "/icons/nav/chevron-up.svg", validSVG)
	writeFile(t, fs, "/icons/drafts/wip.svg", validSVG)
	writeFile(t, fs, "/icons/.svg2svelte.yaml", `
output_dir: /out
recursive: true
include_class: true
exclude:
  - "drafts/**"
`)

	res := run(t, fs, "/icons")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Found 2 SVG file(s)\nSkipped 1 excluded file(s)\n")
	assert.Contains(t, readFile(t, fs, "/out/nav/ChevronUp.svelte"), "className")
	assert.Contains(t, readFile(t, fs, "/out/Home.svelte"), "className")
}

func TestRun_LogsDiagnostics(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/icons/home.svg", validSVG)
	writeFile(t, fs, "/icons/broken.svg", `<svg width="1"/>`)
	writeFile(t, fs, "/icons/draft-x.svg", validSVG)

	runAt := func(level string) result {
		var out, errOut bytes.Buffer

		args := []string{"/icons", "/out", "--exclude", "draft-*", "--log-level", level}
		code := Run(t.Context(), args, fs, Streams{Out: &out, Err: &errOut})

		return result{code: code, stdout: out.String(), stderr: errOut.String()}
	}

	res := runAt("info")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Batch finished with failures")
	assert.Contains(t, res.stderr, "broken.svg: [parse_failed] Invalid SVG: SVG has no child elements found")
	assert.NotContains(t, res.stderr, "Converted")
	assert.NotContains(t, res.stderr, "Skipped")

	res = runAt("debug")
	assert.Contains(t, res.stderr, "Skipped")
	assert.Contains(t, res.stderr, "excluded by draft-*")
	assert.Contains(t, res.stderr, "Converted")
}

func TestRun_FlagsOverrideConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/icons/home.svg", validSVG)
	writeFile(t, fs, "/conf.yaml", "include_class: true\nextension: .svx\n")

	res := run(t, fs, "/icons/home.svg", "--config", "/conf.yaml", "--include-class=false")

	require.Equal(t, 0, res.code, res.stderr)
	assert.NotContains(t, readFile(t, fs, "/icons/Home.svx"), "className")
}

func TestRun_InvalidConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/icons/home.svg", validSVG)

	res := run(t, fs, "/icons", "--jobs", "-2")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Error: invalid configuration:")
	assert.Contains(t, res.stderr, "jobs must be at least 1")
}

func TestRun_PrintConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/icons/home.svg", validSVG)

	res := run(t, fs, "/icons", "/out", "--print-config", "--jobs", "3")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "output_dir: /out\n")
	assert.Contains(t, res.stdout, "jobs: 3\n")

	ok, err := afero.Exists(fs, "/out")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRun_UnknownFlag(t *testing.T) {
	res := run(t, afero.NewMemMapFs(), "/icons", "--bogus")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Error: unknown flag: --bogus")
}
