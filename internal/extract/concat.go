package extract

import (
	"context"
	"fmt"
)

// ConcatPartials merges per-extractor outputs into one result. Diagnostics
// are concatenated in input order regardless of whether their partial
// produced a catalog. Catalogs are merged with msgcat; a single catalog is
// returned as-is, and no catalogs at all yield a zero-value (not OK)
// Output without an error.
func ConcatPartials(ctx context.Context, scratch *ScratchDir, partials []Output, opts Options) (Output, error) {
	opts = opts.withDefaults()

	var diags []Diagnostic
	var catalogs []string
	for _, p := range partials {
		diags = append(diags, p.Diagnostics...)
		if p.OK() {
			catalogs = append(catalogs, p.POTFile)
		}
	}

	switch len(catalogs) {
	case 0:
		return Output{Diagnostics: diags}, nil
	case 1:
		return Output{POTFile: catalogs[0], Diagnostics: diags}, nil
	}

	outFile := scratch.CreateFileName("concatenated.pot")
	args := append([]string{"--force-po", "--use-first", "-o", outFile}, catalogs...)

	result, err := opts.Runner.Run(ctx, "", opts.MsgcatPath, args...)
	if err != nil {
		return Output{}, &Error{Kind: ErrUnspecified, Err: err}
	}

	diags = append(diags, ParseToolStderr(result.Stderr)...)
	if result.ExitCode != 0 {
		return Output{Diagnostics: diags}, &Error{
			Kind: ErrUnspecified,
			Err:  fmt.Errorf("%s exited with status %d", opts.MsgcatPath, result.ExitCode),
		}
	}

	return Output{POTFile: outFile, Diagnostics: diags}, nil
}
