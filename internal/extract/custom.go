package extract

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// CustomDefinition describes a user-configured extraction command. Command
// is split on whitespace into argv tokens; tokens are expanded per run:
//
//	%o  output file path
//	%C  source charset
//	%K  one keyword (the token repeats per keyword)
//	%F  one input file (the token repeats per file)
type CustomDefinition struct {
	Name       string   `yaml:"name" mapstructure:"name"`
	Extensions []string `yaml:"extensions" mapstructure:"extensions"`
	Patterns   []string `yaml:"patterns" mapstructure:"patterns"`
	Command    string   `yaml:"command" mapstructure:"command"`
}

// commandExtractor runs a user-defined command template. User commands get
// PriorityHigh so they win over the built-in gettext extractors.
type commandExtractor struct {
	FileMatcher
	def    CustomDefinition
	runner Runner
}

func newCommandExtractor(def CustomDefinition, opts Options) (*commandExtractor, error) {
	c := &commandExtractor{
		FileMatcher: NewFileMatcher(PriorityHigh),
		def:         def,
		runner:      opts.Runner,
	}
	for _, ext := range def.Extensions {
		c.RegisterExtension(ext)
	}
	for _, pattern := range def.Patterns {
		if err := c.RegisterWildcard(pattern); err != nil {
			return nil, fmt.Errorf("extractor %q: invalid pattern %q: %w", def.Name, pattern, err)
		}
	}
	return c, nil
}

func (c *commandExtractor) ID() string {
	return c.def.Name
}

// Extract implements Extractor. The command runs with the spec's base path
// as working directory, since file tokens are relative.
func (c *commandExtractor) Extract(ctx context.Context, scratch *ScratchDir, spec *SourceCodeSpec, files []string) (Output, error) {
	outFile := scratch.CreateFileName(c.def.Name + ".pot")

	argv := expandCommand(c.def.Command, outFile, spec, files)
	if len(argv) == 0 {
		return Output{}, &Error{Kind: ErrUnspecified, Err: fmt.Errorf("extractor %q has an empty command", c.def.Name)}
	}

	result, err := c.runner.Run(ctx, spec.BasePath, argv[0], argv[1:]...)
	if err != nil {
		return Output{}, &Error{Kind: ErrUnspecified, Err: err}
	}

	diags := ParseToolStderr(result.Stderr)
	if result.ExitCode != 0 {
		return Output{Diagnostics: diags}, &Error{
			Kind: ErrUnspecified,
			Err:  fmt.Errorf("extractor %q exited with status %d", c.def.Name, result.ExitCode),
		}
	}

	// Tools are allowed to succeed without producing a catalog (e.g. no
	// translatable strings in the claimed files).
	if _, err := os.Stat(outFile); err != nil {
		logger.Debug().Str("extractor", c.def.Name).Msg("command produced no catalog")
		return Output{Diagnostics: diags}, nil
	}

	return Output{POTFile: outFile, Diagnostics: diags}, nil
}

// expandCommand turns a command template into argv. Tokens containing %K or
// %F repeat per keyword or per file respectively; %o and %C substitute in
// place.
func expandCommand(command, outFile string, spec *SourceCodeSpec, files []string) []string {
	charset := spec.Charset
	if charset == "" {
		charset = "UTF-8"
	}

	var argv []string
	for _, token := range strings.Fields(command) {
		switch {
		case strings.Contains(token, "%K"):
			for _, kw := range spec.Keywords {
				argv = append(argv, strings.ReplaceAll(token, "%K", kw))
			}
		case strings.Contains(token, "%F"):
			for _, f := range files {
				argv = append(argv, strings.ReplaceAll(token, "%F", f))
			}
		default:
			token = strings.ReplaceAll(token, "%o", outFile)
			token = strings.ReplaceAll(token, "%C", charset)
			argv = append(argv, token)
		}
	}
	return argv
}
