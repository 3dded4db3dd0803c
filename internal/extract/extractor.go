package extract

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Priority orders extractors; lower values are consulted first. Ties keep
// registration order.
type Priority int

const (
	PriorityHighest              Priority = 1
	PriorityCustomExtension      Priority = 2 // user customization wins over built-ins
	PriorityHigh                 Priority = 10
	PrioritySpecializedExtension Priority = 95 // e.g. *.blade.php before plain *.php
	PriorityDefault              Priority = 100
)

// Extractor extracts translatable strings from source files of one language
// family. Implementations typically shell out to an external tool and
// confine side effects to the supplied scratch directory.
type Extractor interface {
	// ID returns the extractor's symbolic name.
	ID() string

	// Priority returns the dispatch priority; see FilterFiles.
	Priority() Priority

	// IsFileSupported reports whether the extractor recognizes the file.
	IsFileSupported(file string) bool

	// Extract produces a partial catalog and diagnostics for the given
	// files. Files are slash-relative to spec.BasePath.
	Extract(ctx context.Context, scratch *ScratchDir, spec *SourceCodeSpec, files []string) (Output, error)
}

// FileMatcher provides the default IsFileSupported implementation based on
// registered extensions and wildcard patterns. The zero value matches
// nothing and has PriorityDefault semantics once a priority is set.
type FileMatcher struct {
	priority   Priority
	extensions []string
	wildcards  []glob.Glob
}

// NewFileMatcher returns a matcher with the given priority.
func NewFileMatcher(priority Priority) FileMatcher {
	return FileMatcher{priority: priority}
}

// Priority implements part of the Extractor interface.
func (m *FileMatcher) Priority() Priority {
	return m.priority
}

// SetPriority overrides the matcher's priority.
func (m *FileMatcher) SetPriority(p Priority) {
	m.priority = p
}

// RegisterExtension adds a known extension (without leading dot). Matching
// is case-sensitive and suffix-based, so multi-dot extensions such as
// "gschema.xml" work.
func (m *FileMatcher) RegisterExtension(ext string) {
	m.extensions = append(m.extensions, "."+strings.TrimPrefix(ext, "."))
}

// RegisterWildcard adds a wildcard pattern matched against the file's base
// name and its full relative path.
func (m *FileMatcher) RegisterWildcard(pattern string) error {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return err
	}
	m.wildcards = append(m.wildcards, g)
	return nil
}

// IsFileSupported implements part of the Extractor interface.
func (m *FileMatcher) IsFileSupported(file string) bool {
	base := filepath.Base(file)
	for _, ext := range m.extensions {
		if strings.HasSuffix(base, ext) {
			return true
		}
	}
	for _, g := range m.wildcards {
		if g.Match(base) || g.Match(file) {
			return true
		}
	}
	return false
}

// FilterFiles returns the subset of files the extractor claims, preserving
// input order.
func FilterFiles(e Extractor, files []string) []string {
	var claimed []string
	for _, f := range files {
		if e.IsFileSupported(f) {
			claimed = append(claimed, f)
		}
	}
	return claimed
}
