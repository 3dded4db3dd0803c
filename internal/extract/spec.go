package extract

// TypeMapping binds a filename pattern to a named extractor backend, e.g.
// {"*.vue", "gettext:javascript"}. Order matters: earlier entries register
// earlier and win priority ties.
type TypeMapping struct {
	Pattern   string
	Extractor string
}

// SourceCodeSpec describes one extraction run over a source tree. It is an
// immutable input: orchestration never modifies it.
type SourceCodeSpec struct {
	// BasePath is the project root all other paths are relative to.
	BasePath string

	// SearchPaths are the files or directories to scan, relative to
	// BasePath. Empty means the whole base path.
	SearchPaths []string

	// ExcludedPaths are literal path prefixes or wildcard patterns
	// (e.g. "vendor", "*.min.js") removed from the scan.
	ExcludedPaths []string

	// Keywords are the translation-marking identifiers passed to the
	// backends (e.g. "_", "N_:1", "ngettext:1,2").
	Keywords []string

	// Charset is the source files' encoding; empty means UTF-8.
	Charset string

	// TypeMapping maps nonstandard file patterns to extractor backends.
	TypeMapping []TypeMapping

	// XHeaders carries additional catalog header keys; the
	// "X-Poedit-Flags-xgettext" key injects extra xgettext flags.
	XHeaders map[string]string
}

// Output is the complete result of running an extraction task. POTFile and
// Diagnostics are independent signals: a run can succeed with warnings, and
// a failed run may or may not carry diagnostics.
type Output struct {
	// POTFile is the produced catalog template; empty means the run
	// produced nothing.
	POTFile string

	// Diagnostics are the parsed errors and warnings, in the order the
	// backends reported them.
	Diagnostics []Diagnostic
}

// OK reports whether the extraction produced a catalog.
func (o Output) OK() bool {
	return o.POTFile != ""
}
