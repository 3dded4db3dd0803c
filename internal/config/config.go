package config

import (
	"path/filepath"

	"potx/internal/extract"
)

// Config represents the complete potx project configuration. It can be
// loaded from .potx/config.yml with environment variable overrides.
type Config struct {
	Sources SourcesConfig `yaml:"sources" mapstructure:"sources"`
	Extract ExtractConfig `yaml:"extract" mapstructure:"extract"`
	Tools   ToolsConfig   `yaml:"tools" mapstructure:"tools"`
}

// SourcesConfig defines which files feed an extraction run.
type SourcesConfig struct {
	Paths    []string `yaml:"paths" mapstructure:"paths"`       // search paths relative to the project root
	Exclude  []string `yaml:"exclude" mapstructure:"exclude"`   // literal prefixes or wildcard patterns
	Charset  string   `yaml:"charset" mapstructure:"charset"`   // source file encoding
	Keywords []string `yaml:"keywords" mapstructure:"keywords"` // translation-marking identifiers
}

// ExtractConfig defines how recognized files map onto extraction backends
// and where the result lands.
type ExtractConfig struct {
	// Mappings bind nonstandard file patterns to gettext scanners,
	// e.g. pattern "*.vue" -> extractor "gettext:javascript".
	Mappings []MappingConfig `yaml:"mappings" mapstructure:"mappings"`

	// Custom declares user-defined command extractors.
	Custom []extract.CustomDefinition `yaml:"custom" mapstructure:"custom"`

	// Output is the POT file written at the end of a run, relative to the
	// project root.
	Output string `yaml:"output" mapstructure:"output"`

	// ExtraFlags is injected into the catalog headers as
	// X-Poedit-Flags-xgettext.
	ExtraFlags string `yaml:"extra_flags" mapstructure:"extra_flags"`
}

// MappingConfig is one pattern-to-extractor binding.
type MappingConfig struct {
	Pattern   string `yaml:"pattern" mapstructure:"pattern"`
	Extractor string `yaml:"extractor" mapstructure:"extractor"`
}

// ToolsConfig locates the external gettext tools.
type ToolsConfig struct {
	XGettext string `yaml:"xgettext" mapstructure:"xgettext"`
	Msgcat   string `yaml:"msgcat" mapstructure:"msgcat"`
}

// Default returns a configuration with sensible defaults: scan everything
// under the project root except the usual dependency and VCS directories,
// and mark strings with the common gettext keyword set.
func Default() *Config {
	return &Config{
		Sources: SourcesConfig{
			Paths: []string{"."},
			Exclude: []string{
				".git",
				".hg",
				"node_modules",
				"vendor",
				"build",
				"dist",
				"*.min.js",
			},
			Charset: "UTF-8",
			Keywords: []string{
				"_",
				"gettext",
				"dgettext:2",
				"ngettext:1,2",
				"dngettext:2,3",
				"pgettext:1c,2",
				"npgettext:1c,2,3",
			},
		},
		Extract: ExtractConfig{
			Output: "po/messages.pot",
		},
		Tools: ToolsConfig{
			XGettext: "xgettext",
			Msgcat:   "msgcat",
		},
	}
}

// ToSpec converts the configuration into an extraction spec rooted at the
// given project directory.
func (c *Config) ToSpec(rootDir string) *extract.SourceCodeSpec {
	spec := &extract.SourceCodeSpec{
		BasePath:      rootDir,
		SearchPaths:   c.Sources.Paths,
		ExcludedPaths: c.Sources.Exclude,
		Keywords:      c.Sources.Keywords,
		Charset:       c.Sources.Charset,
		XHeaders:      map[string]string{},
	}
	for _, m := range c.Extract.Mappings {
		spec.TypeMapping = append(spec.TypeMapping, extract.TypeMapping{
			Pattern:   m.Pattern,
			Extractor: m.Extractor,
		})
	}
	if c.Extract.ExtraFlags != "" {
		spec.XHeaders["X-Poedit-Flags-xgettext"] = c.Extract.ExtraFlags
	}
	return spec
}

// ToOptions converts the configuration into extraction options.
func (c *Config) ToOptions() extract.Options {
	return extract.Options{
		XGettextPath: c.Tools.XGettext,
		MsgcatPath:   c.Tools.Msgcat,
		Custom:       c.Extract.Custom,
	}
}

// OutputPath returns the configured POT output path resolved against the
// project root.
func (c *Config) OutputPath(rootDir string) string {
	if filepath.IsAbs(c.Extract.Output) {
		return c.Extract.Output
	}
	return filepath.Join(rootDir, c.Extract.Output)
}
