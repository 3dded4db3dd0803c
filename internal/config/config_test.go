package config

// Test plan:
// - defaults apply when no config file exists
// - .potx/config.yml values override defaults
// - environment variables override file values
// - validation rejects broken mappings and custom definitions
// - ToSpec and OutputPath resolve paths against the project root

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, ".potx")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0644))
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfigFromDir(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, []string{"."}, cfg.Sources.Paths)
	assert.Equal(t, "UTF-8", cfg.Sources.Charset)
	assert.Contains(t, cfg.Sources.Exclude, "node_modules")
	assert.Contains(t, cfg.Sources.Keywords, "ngettext:1,2")
	assert.Equal(t, "po/messages.pot", cfg.Extract.Output)
	assert.Equal(t, "xgettext", cfg.Tools.XGettext)
	assert.Equal(t, "msgcat", cfg.Tools.Msgcat)
}

func TestLoad_FromFile(t *testing.T) {
	root := t.TempDir()
	writeConfigFile(t, root, `
sources:
  paths:
    - src
    - lib
  charset: ISO-8859-1
extract:
  output: locale/app.pot
  mappings:
    - pattern: "*.vue"
      extractor: gettext:javascript
  custom:
    - name: my-tool
      extensions: [tpl]
      command: my-tool -o %o %F
tools:
  xgettext: /opt/gettext/bin/xgettext
`)

	cfg, err := LoadConfigFromDir(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"src", "lib"}, cfg.Sources.Paths)
	assert.Equal(t, "ISO-8859-1", cfg.Sources.Charset)
	assert.Equal(t, "locale/app.pot", cfg.Extract.Output)
	require.Len(t, cfg.Extract.Mappings, 1)
	assert.Equal(t, "*.vue", cfg.Extract.Mappings[0].Pattern)
	assert.Equal(t, "gettext:javascript", cfg.Extract.Mappings[0].Extractor)
	require.Len(t, cfg.Extract.Custom, 1)
	assert.Equal(t, "my-tool", cfg.Extract.Custom[0].Name)
	assert.Equal(t, "/opt/gettext/bin/xgettext", cfg.Tools.XGettext)
	// Unset file values keep defaults.
	assert.Equal(t, "msgcat", cfg.Tools.Msgcat)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	root := t.TempDir()
	writeConfigFile(t, root, "sources:\n  charset: ISO-8859-1\n")

	t.Setenv("POTX_SOURCES_CHARSET", "UTF-16")
	t.Setenv("POTX_EXTRACT_OUTPUT", "env/out.pot")

	cfg, err := LoadConfigFromDir(root)
	require.NoError(t, err)

	assert.Equal(t, "UTF-16", cfg.Sources.Charset)
	assert.Equal(t, "env/out.pot", cfg.Extract.Output)
}

func TestLoad_RejectsInvalidConfig(t *testing.T) {
	root := t.TempDir()
	writeConfigFile(t, root, `
extract:
  mappings:
    - pattern: "*.vue"
      extractor: javascript
  custom:
    - name: broken
      command: tool %o
`)

	_, err := LoadConfigFromDir(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gettext:<language>")
	assert.Contains(t, err.Error(), "at least one extension or pattern")
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Sources.Charset = ""
	cfg.Extract.Output = ""
	cfg.Tools.Msgcat = ""

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sources.charset")
	assert.Contains(t, err.Error(), "extract.output")
	assert.Contains(t, err.Error(), "tools.msgcat")
}

func TestToSpec(t *testing.T) {
	cfg := Default()
	cfg.Extract.Mappings = []MappingConfig{{Pattern: "*.tt", Extractor: "gettext:perl"}}
	cfg.Extract.ExtraFlags = "--no-location"

	spec := cfg.ToSpec("/proj")
	assert.Equal(t, "/proj", spec.BasePath)
	assert.Equal(t, cfg.Sources.Paths, spec.SearchPaths)
	require.Len(t, spec.TypeMapping, 1)
	assert.Equal(t, "gettext:perl", spec.TypeMapping[0].Extractor)
	assert.Equal(t, "--no-location", spec.XHeaders["X-Poedit-Flags-xgettext"])
}

func TestOutputPath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("/proj", "po", "messages.pot"), cfg.OutputPath("/proj"))

	cfg.Extract.Output = "/abs/out.pot"
	assert.Equal(t, "/abs/out.pot", cfg.OutputPath("/proj"))
}
