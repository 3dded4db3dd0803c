package extract

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// CollectAllFiles walks the spec's search paths under BasePath, skipping
// excluded paths, and returns the candidate files as a sorted, deduplicated
// list of slash-separated paths relative to BasePath. The list may include
// files no extractor will claim.
//
// It fails with ErrNoSourcesFound when nothing matches and with
// ErrPermissionDenied when a directory cannot be read.
func CollectAllFiles(spec *SourceCodeSpec) ([]string, error) {
	excl, err := compileExclusions(spec.ExcludedPaths)
	if err != nil {
		return nil, &Error{Kind: ErrUnspecified, Err: err}
	}

	searchPaths := spec.SearchPaths
	if len(searchPaths) == 0 {
		searchPaths = []string{"."}
	}

	seen := make(map[string]bool)
	for _, sp := range searchPaths {
		root := filepath.Join(spec.BasePath, filepath.FromSlash(sp))

		info, err := os.Stat(root)
		if err != nil {
			if os.IsPermission(err) {
				return nil, &Error{Kind: ErrPermissionDenied, File: sp, Err: err}
			}
			// A missing search path contributes nothing; this mirrors how
			// stale project settings behave.
			logger.Debug().Str("path", sp).Msg("search path does not exist, skipping")
			continue
		}

		if !info.IsDir() {
			if rel, ok := relTo(spec.BasePath, root); ok && !excl.matches(rel) {
				seen[rel] = true
			}
			continue
		}

		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				rel, _ := relTo(spec.BasePath, path)
				if os.IsPermission(err) {
					return &Error{Kind: ErrPermissionDenied, File: rel, Err: err}
				}
				return err
			}

			rel, ok := relTo(spec.BasePath, path)
			if !ok {
				return nil
			}

			if d.IsDir() {
				// The tool's own metadata directory is never a source.
				if d.Name() == metaDirName {
					return filepath.SkipDir
				}
				if rel != "." && excl.matches(rel) {
					return filepath.SkipDir
				}
				return nil
			}

			if excl.matches(rel) || excl.matches(d.Name()) {
				return nil
			}
			seen[rel] = true
			return nil
		})
		if walkErr != nil {
			var e *Error
			if errors.As(walkErr, &e) {
				return nil, e
			}
			return nil, &Error{Kind: ErrUnspecified, Err: walkErr}
		}
	}

	if len(seen) == 0 {
		return nil, &Error{Kind: ErrNoSourcesFound}
	}

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}

// metaDirName is the tool's per-project metadata directory, always excluded
// from discovery.
const metaDirName = ".potx"

// relTo converts path to a slash-separated path relative to base.
func relTo(base, path string) (string, bool) {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// exclusions is the compiled form of SourceCodeSpec.ExcludedPaths: literal
// entries match a path or any path under it, wildcard entries match by
// glob.
type exclusions struct {
	literals []string
	globs    []glob.Glob
}

func compileExclusions(entries []string) (*exclusions, error) {
	excl := &exclusions{}
	for _, e := range entries {
		e = strings.TrimSuffix(filepath.ToSlash(e), "/")
		if e == "" {
			continue
		}
		if strings.ContainsAny(e, "*?[") {
			g, err := glob.Compile(e, '/')
			if err != nil {
				return nil, err
			}
			excl.globs = append(excl.globs, g)
		} else {
			excl.literals = append(excl.literals, e)
		}
	}
	return excl, nil
}

func (e *exclusions) matches(rel string) bool {
	for _, lit := range e.literals {
		if rel == lit || strings.HasPrefix(rel, lit+"/") {
			return true
		}
	}
	for _, g := range e.globs {
		if g.Match(rel) {
			return true
		}
	}
	return false
}
