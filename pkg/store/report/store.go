package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ci-tools/cloud-insight/pkg/adapters"
	"github.com/ci-tools/cloud-insight/pkg/models/domain"
	"github.com/ci-tools/cloud-insight/pkg/models/store"
)

// ErrMalformedReport marks a document that cannot be read as a report at
// all. Missing fields inside a well-formed document are never an error;
// they fall back to defaults during mapping.
var ErrMalformedReport = errors.New("malformed report document")

// Store fetches the analyzer's current report and parses it into a
// snapshot. Implementations cover the supported report locations.
type Store interface {
	Fetch(ctx context.Context) (*domain.ReportSnapshot, error)
}

// Parse decodes raw report bytes into an immutable snapshot.
func Parse(data []byte) (*domain.ReportSnapshot, error) {
	var doc store.Report
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReport, err)
	}

	snap := adapters.MapStoreReportToDomainSnapshot(doc)
	return &snap, nil
}
