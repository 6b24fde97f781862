package report

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ci-tools/cloud-insight/pkg/models/domain"
)

const defaultFetchTimeout = 30 * time.Second

// HTTPStore fetches the report from a URL, the dashboard's original fetch
// collaborator.
type HTTPStore struct {
	url    string
	client *http.Client
}

func NewHTTPStore(url string, client *http.Client) *HTTPStore {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	return &HTTPStore{url: url, client: client}
}

func (s *HTTPStore) Fetch(ctx context.Context) (*domain.ReportSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build report request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report from %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching report from %s", resp.StatusCode, s.url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read report body: %w", err)
	}

	return Parse(data)
}
