package report

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/ci-tools/cloud-insight/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockObjectGetter struct {
	mock.Mock
}

func (m *mockObjectGetter) GetObject(
	ctx context.Context,
	params *s3.GetObjectInput,
	optFns ...func(*s3.Options),
) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func TestS3Store_Fetch(t *testing.T) {
	getter := new(mockObjectGetter)
	getter.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return *in.Bucket == "insight-reports" && *in.Key == "final_report.json"
	})).Return(&s3.GetObjectOutput{
		Body: io.NopCloser(strings.NewReader(`{"cost_health": "critical"}`)),
	}, nil)

	store := NewS3Store(getter, "insight-reports", "final_report.json", false)

	snap, err := store.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.CostHealthCritical, snap.CostHealth)
	getter.AssertExpectations(t)
}

func TestS3Store_Fetch_DatePrefix(t *testing.T) {
	getter := new(mockObjectGetter)
	getter.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return *in.Key == "2025/01/15/final_report.json"
	})).Return(&s3.GetObjectOutput{
		Body: io.NopCloser(strings.NewReader(`{}`)),
	}, nil)

	store := NewS3Store(getter, "insight-reports", "final_report.json", true)
	store.now = func() time.Time {
		return time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	}

	_, err := store.Fetch(context.Background())
	require.NoError(t, err)
	getter.AssertExpectations(t)
}
