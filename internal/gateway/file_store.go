package gateway

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileReportStore implements the ReportStore interface on the local file system.
type FileReportStore struct {
	dir string
}

// NewFileReportStore creates a store writing into dir. The directory is
// created on the first save when it does not exist.
func NewFileReportStore(dir string) *FileReportStore {
	return &FileReportStore{dir: dir}
}

// Save writes data to dir/name, replacing any previous file, and returns its absolute path.
func (s *FileReportStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("invalid report file name %q", name)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
