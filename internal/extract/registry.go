package extract

import (
	"sort"
	"strings"
)

// Options configures an extraction run: where to find the external tools,
// how to run them, user-defined extractors, and progress reporting.
type Options struct {
	// Runner executes external tools; nil means a real ExecRunner.
	Runner Runner

	// XGettextPath and MsgcatPath locate the gettext tools; empty means
	// looking them up on PATH.
	XGettextPath string
	MsgcatPath   string

	// Custom holds user-defined command extractors.
	Custom []CustomDefinition

	// Progress receives run milestones; nil means no reporting.
	Progress ProgressReporter
}

func (o Options) withDefaults() Options {
	if o.Runner == nil {
		o.Runner = &ExecRunner{}
	}
	if o.XGettextPath == "" {
		o.XGettextPath = "xgettext"
	}
	if o.MsgcatPath == "" {
		o.MsgcatPath = "msgcat"
	}
	if o.Progress == nil {
		o.Progress = NoOpProgressReporter{}
	}
	return o
}

// CreateAllExtractors returns the extractor instances applicable to the
// spec, sorted by ascending priority with ties keeping registration order.
// Subsequent extractors should only see files not claimed by earlier ones;
// ExtractWithAll enforces that.
func CreateAllExtractors(spec *SourceCodeSpec, opts Options) ([]Extractor, error) {
	opts = opts.withDefaults()

	var list []Extractor

	// User-defined command extractors register first so they win priority
	// ties against everything at the same level.
	for _, def := range opts.Custom {
		ex, err := newCommandExtractor(def, opts)
		if err != nil {
			return nil, err
		}
		list = append(list, ex)
	}

	list = append(list, newGettextExtractor(opts))
	list = append(list, newNonstandardPHPExtractor(opts))

	// Per-spec type mappings onto gettext scanners, e.g. "*.vue" ->
	// "gettext:javascript". These are user customization and outrank the
	// built-ins.
	for _, m := range spec.TypeMapping {
		lang, ok := strings.CutPrefix(m.Extractor, "gettext:")
		if !ok {
			logger.Warn().Str("mapping", m.Extractor).Msg("ignoring unknown extractor mapping")
			continue
		}
		ex := newCustomGettextExtractor(lang, opts)
		ex.SetPriority(PriorityCustomExtension)
		if strings.ContainsAny(m.Pattern, "*?[") {
			if err := ex.RegisterWildcard(m.Pattern); err != nil {
				return nil, &Error{Kind: ErrUnspecified, Err: err}
			}
		} else {
			ex.RegisterExtension(m.Pattern)
		}
		list = append(list, ex)
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Priority() < list[j].Priority()
	})

	return list, nil
}
