package config

import (
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
include_class: true
output_dir: out/components
recursive: true
jobs: 3
extension: .svelte
exclude:
  - "**/legacy/*.svg"
  - draft-*.svg
log_level: debug
log_json: true
`

	c, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, "1", c.Version)
	assert.True(t, c.IncludeClass)
	assert.Equal(t, "out/components", c.OutputDir)
	assert.True(t, c.Recursive)
	assert.Equal(t, 3, c.Jobs)
	assert.Equal(t, ".svelte", c.Extension)
	assert.Equal(t, []string{"**/legacy/*.svg", "draft-*.svg"}, c.Exclude)
	assert.Equal(t, "debug", c.LogLevel)
	assert.True(t, c.LogJSON)
	assert.True(t, Validate(c).IsValid())
}

func TestParse_Defaults(t *testing.T) {
	c, err := Parse([]byte("include_class: false\n"))
	require.NoError(t, err)

	assert.Equal(t, Default(), c)
	assert.Equal(t, "1", c.Version)
	assert.Equal(t, runtime.NumCPU(), c.Jobs)
	assert.Equal(t, ".svelte", c.Extension)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.OutputDir)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("jobs: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"negative jobs", func(c *Config) { c.Jobs = -1 }, "jobs"},
		{"bad extension", func(c *Config) { c.Extension = "svelte" }, "extension"},
		{"extension with separator", func(c *Config) { c.Extension = "./x" }, "extension"},
		{"bad exclude", func(c *Config) { c.Exclude = []string{"[a-"} }, "exclude"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"bad version", func(c *Config) { c.Version = "2" }, "version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)

			res := Validate(c)
			require.True(t, res.HasErrors())
			require.Len(t, res.Errors, 1)
			assert.Equal(t, tt.field, res.Errors[0].Field)
		})
	}

	assert.True(t, Validate(nil).HasErrors())
}

func TestLoadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/icons/.svg2svelte.yaml", []byte("jobs: 2\n"), 0o644))

	c, err := LoadFile(fs, "/icons/.svg2svelte.yaml")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Jobs)

	_, err = LoadFile(fs, "/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file /missing.yaml")
}

func TestFind(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/empty", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/icons/.svg2svelte.yaml", []byte("{}"), 0o644))

	path, err := Find(fs, "/icons")
	require.NoError(t, err)
	assert.Equal(t, "/icons/.svg2svelte.yaml", path)

	path, err = Find(fs, "/empty")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestMarshal_RoundTripsDefaults(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	c, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}
