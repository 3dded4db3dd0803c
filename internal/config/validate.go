package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for problems a run would only discover
// halfway through. All problems are reported at once.
func Validate(cfg *Config) error {
	var problems []string

	if len(cfg.Sources.Paths) == 0 {
		problems = append(problems, "sources.paths must not be empty")
	}
	if cfg.Sources.Charset == "" {
		problems = append(problems, "sources.charset must not be empty")
	}

	if cfg.Extract.Output == "" {
		problems = append(problems, "extract.output must not be empty")
	}

	for i, m := range cfg.Extract.Mappings {
		if m.Pattern == "" {
			problems = append(problems, fmt.Sprintf("extract.mappings[%d]: pattern must not be empty", i))
		}
		if !strings.HasPrefix(m.Extractor, "gettext:") {
			problems = append(problems, fmt.Sprintf("extract.mappings[%d]: extractor must be of the form gettext:<language>", i))
		}
	}

	for i, c := range cfg.Extract.Custom {
		if c.Name == "" {
			problems = append(problems, fmt.Sprintf("extract.custom[%d]: name must not be empty", i))
		}
		if c.Command == "" {
			problems = append(problems, fmt.Sprintf("extract.custom[%d]: command must not be empty", i))
		}
		if len(c.Extensions) == 0 && len(c.Patterns) == 0 {
			problems = append(problems, fmt.Sprintf("extract.custom[%d]: needs at least one extension or pattern", i))
		}
	}

	if cfg.Tools.XGettext == "" {
		problems = append(problems, "tools.xgettext must not be empty")
	}
	if cfg.Tools.Msgcat == "" {
		problems = append(problems, "tools.msgcat must not be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}
