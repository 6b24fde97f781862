package report

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ci-tools/cloud-insight/pkg/models/domain"
)

// ObjectGetter is the slice of the S3 client the store needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Store fetches the report object the analyzer uploads to S3. When
// useDatePrefix is set the key is resolved under today's yyyy/mm/dd prefix,
// matching the analyzer's upload layout.
type S3Store struct {
	client        ObjectGetter
	bucket        string
	key           string
	useDatePrefix bool
	now           func() time.Time
}

func NewS3Store(client ObjectGetter, bucket, key string, useDatePrefix bool) *S3Store {
	return &S3Store{
		client:        client,
		bucket:        bucket,
		key:           key,
		useDatePrefix: useDatePrefix,
		now:           time.Now,
	}
}

func (s *S3Store) Fetch(ctx context.Context) (*domain.ReportSnapshot, error) {
	key := s.key
	if s.useDatePrefix {
		key = path.Join(s.now().UTC().Format("2006/01/02"), key)
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report s3://%s/%s: %w", s.bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read report object body: %w", err)
	}

	return Parse(data)
}
