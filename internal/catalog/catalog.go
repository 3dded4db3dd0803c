// Package catalog provides a minimal read-side for PO/POT files, enough to
// summarize the result of an extraction run.
package catalog

import (
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"
)

// Info summarizes a PO/POT catalog file.
type Info struct {
	// Entries counts the message entries, excluding the header.
	Entries int

	// Language is the catalog's Language header, empty for templates.
	Language string

	// PluralForms is the Plural-Forms header, if present.
	PluralForms string
}

// Inspect parses the catalog at path and returns its summary.
func Inspect(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	po := gotext.NewPo()
	po.Parse(data)

	domain := po.GetDomain()

	entries := 0
	for msgid := range domain.GetTranslations() {
		if msgid == "" {
			continue // header entry
		}
		entries++
	}
	for _, byID := range domain.GetCtxTranslations() {
		for msgid := range byID {
			if msgid == "" {
				continue
			}
			entries++
		}
	}

	return &Info{
		Entries:     entries,
		Language:    domain.Language,
		PluralForms: domain.PluralForms,
	}, nil
}
