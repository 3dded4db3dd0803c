package extract

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// gettextExtensions lists the extensions recognized by xgettext's built-in
// language detection, synced with the EXTENSIONS_* tables in
// gettext-tools/src/x-*.h.
var gettextExtensions = []string{
	"appdata.xml", // appdata - ITS

	"awk", "gawk", "twjr", // awk

	"c", "h", // C
	"C", "c++", "cc", "cxx", "cpp", "hh", "hxx", "hpp", // C++
	"m", // Objective-C

	"cs", // C#

	"desktop",

	"el", // Emacs Lisp

	"glade", "glade2", "ui", // glade - ITS

	"gschema.xml", // GSettings - ITS

	"java",

	"js", "jsx",

	"jl", // librep

	"lisp",

	"lua",

	"pl", "PL", "pm", "perl", // Perl; .cgi is too generic

	"php", "php3", "php4",

	"py",

	"scm", // Scheme

	"st", // Smalltalk

	"tcl",

	"vala",

	"ycp",

	// Added in recent gettext releases.
	// TODO: gate these on the installed xgettext version once the runner
	// exposes a version probe.
	"rs",          // Rust (>= 0.24)
	"d",           // D (>= 0.25)
	"go",          // Go (>= 0.25)
	"ts", "tsx",   // TypeScript (>= 0.25)
}

// gettextExtractor invokes xgettext over its claimed files. A non-empty
// language forces xgettext's -L flag, which is how nonstandard extensions
// are mapped onto a known scanner.
type gettextExtractor struct {
	FileMatcher
	id       string
	language string
	tool     string
	runner   Runner
}

func (g *gettextExtractor) ID() string {
	return g.id
}

// newGettextExtractor builds the standard extractor covering everything
// xgettext recognizes on its own.
func newGettextExtractor(opts Options) *gettextExtractor {
	g := &gettextExtractor{
		FileMatcher: NewFileMatcher(PriorityDefault),
		id:          "gettext",
		tool:        opts.XGettextPath,
		runner:      opts.Runner,
	}
	for _, ext := range gettextExtensions {
		g.RegisterExtension(ext)
	}
	return g
}

// newCustomGettextExtractor builds an extractor that forces a language on
// xgettext, for file types xgettext cannot detect by extension.
func newCustomGettextExtractor(language string, opts Options) *gettextExtractor {
	return &gettextExtractor{
		FileMatcher: NewFileMatcher(PriorityDefault),
		id:          "gettext-" + language,
		language:    language,
		tool:        opts.XGettextPath,
		runner:      opts.Runner,
	}
}

// newNonstandardPHPExtractor covers template extensions conventionally
// holding PHP (Zend's .phtml, CakePHP's .ctp).
func newNonstandardPHPExtractor(opts Options) *gettextExtractor {
	g := newCustomGettextExtractor("php", opts)
	g.RegisterExtension("phtml")
	g.RegisterExtension("ctp")
	return g
}

// Extract implements Extractor by running xgettext with a --files-from list
// written into the scratch directory.
func (g *gettextExtractor) Extract(ctx context.Context, scratch *ScratchDir, spec *SourceCodeSpec, files []string) (Output, error) {
	listFile := scratch.CreateFileName("gettext_filelist.txt")
	if err := os.WriteFile(listFile, []byte(strings.Join(files, "\n")+"\n"), 0644); err != nil {
		return Output{}, fmt.Errorf("failed to write file list: %w", err)
	}

	outFile := scratch.CreateFileName("gettext.pot")

	charset := spec.Charset
	if charset == "" {
		charset = "UTF-8"
	}

	args := []string{
		"--force-po",
		"-o", outFile,
		"--directory=" + spec.BasePath,
		"--files-from=" + listFile,
		"--from-code=" + charset,
	}
	if g.language != "" {
		args = append(args, "-L", g.language)
	}
	for _, kw := range spec.Keywords {
		args = append(args, "-k"+kw)
	}

	extraFlags := spec.XHeaders["X-Poedit-Flags-xgettext"]
	if !strings.Contains(extraFlags, "--add-comments") {
		args = append(args, "--add-comments=TRANSLATORS:")
	}
	if extraFlags != "" {
		args = append(args, strings.Fields(extraFlags)...)
	}

	result, err := g.runner.Run(ctx, "", g.tool, args...)
	if err != nil {
		return Output{}, &Error{Kind: ErrUnspecified, Err: err}
	}

	diags := ParseToolStderr(result.Stderr)
	if result.ExitCode != 0 {
		for _, d := range diags {
			logger.Error().Str("extractor", g.id).Msg(d.String())
		}
		return Output{Diagnostics: diags}, &Error{
			Kind: ErrUnspecified,
			Err:  fmt.Errorf("%s exited with status %d", g.tool, result.ExitCode),
		}
	}

	return Output{POTFile: outFile, Diagnostics: diags}, nil
}
