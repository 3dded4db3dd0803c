package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ScratchDir is a per-run temporary directory that hands out unique file
// names and can be removed as a unit. All extraction side effects are
// confined to it.
type ScratchDir struct {
	dir string
}

// NewScratchDir creates a fresh scratch directory under the system temp
// location.
func NewScratchDir() (*ScratchDir, error) {
	dir, err := os.MkdirTemp("", "potx-")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	return &ScratchDir{dir: dir}, nil
}

// Root returns the scratch directory path.
func (s *ScratchDir) Root() string {
	return s.dir
}

// CreateFileName returns a unique path inside the scratch directory for the
// given base name. The file itself is not created.
func (s *ScratchDir) CreateFileName(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return filepath.Join(s.dir, fmt.Sprintf("%s-%s%s", stem, uuid.NewString()[:8], ext))
}

// Cleanup removes the scratch directory and everything in it.
func (s *ScratchDir) Cleanup() error {
	return os.RemoveAll(s.dir)
}
