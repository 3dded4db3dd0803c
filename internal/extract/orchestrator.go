// Package extract discovers candidate source files and orchestrates
// external string-extraction backends (xgettext and user-defined commands)
// into a single POT catalog plus a structured diagnostic list.
package extract

import (
	"context"

	"github.com/rs/zerolog/log"
)

var logger = log.With().Str("sys", "extract").Logger()

// ExtractWithAll partitions files across the spec's extractors in priority
// order — each file goes to the first extractor that supports it — runs
// each non-empty partition, and merges the partial outputs. Files no
// extractor claims are silently skipped.
//
// Per-file problems surface as Diagnostics on the returned Output; an error
// return means the whole run was aborted.
func ExtractWithAll(ctx context.Context, scratch *ScratchDir, spec *SourceCodeSpec, files []string, opts Options) (Output, error) {
	opts = opts.withDefaults()

	extractors, err := CreateAllExtractors(spec, opts)
	if err != nil {
		return Output{}, err
	}

	return extractWithExtractors(ctx, scratch, spec, files, extractors, opts)
}

func extractWithExtractors(ctx context.Context, scratch *ScratchDir, spec *SourceCodeSpec, files []string, extractors []Extractor, opts Options) (Output, error) {
	remaining := files
	var partials []Output
	for _, ex := range extractors {
		if len(remaining) == 0 {
			break
		}

		claimed := FilterFiles(ex, remaining)
		if len(claimed) == 0 {
			continue
		}
		remaining = subtract(remaining, claimed)

		logger.Debug().
			Str("extractor", ex.ID()).
			Int("files", len(claimed)).
			Msg("running extractor")

		opts.Progress.OnPartitionStart(ex.ID(), len(claimed))
		out, err := ex.Extract(ctx, scratch, spec, claimed)
		if err != nil {
			return Output{}, err
		}
		opts.Progress.OnPartitionDone(ex.ID(), out)

		partials = append(partials, out)
	}

	for _, f := range remaining {
		logger.Debug().Str("file", f).Msg("no extractor claims file, skipping")
	}

	return ConcatPartials(ctx, scratch, partials, opts)
}

// subtract returns files minus claimed, preserving order. Both inputs
// preserve the order of the original sorted file list.
func subtract(files, claimed []string) []string {
	drop := make(map[string]bool, len(claimed))
	for _, f := range claimed {
		drop[f] = true
	}
	var rest []string
	for _, f := range files {
		if !drop[f] {
			rest = append(rest, f)
		}
	}
	return rest
}
