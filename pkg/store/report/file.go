package report

import (
	"context"
	"fmt"
	"os"

	"github.com/ci-tools/cloud-insight/pkg/models/domain"
)

// FileStore reads the report from a local path, typically the analyzer's
// final_report.json output during development and CLI runs.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Fetch(_ context.Context) (*domain.ReportSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file %s: %w", s.path, err)
	}
	return Parse(data)
}
