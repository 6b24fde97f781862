package report

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ci-tools/cloud-insight/pkg/models/domain"
)

// NewStoreForEnvironment builds the store matching an environment profile
// from the registry.
func NewStoreForEnvironment(ctx context.Context, env domain.Environment) (Store, error) {
	switch env.Source {
	case domain.SourceFile:
		if env.Path == "" {
			return nil, fmt.Errorf("environment %s: file source requires a path", env.Name)
		}
		return NewFileStore(env.Path), nil
	case domain.SourceHTTP:
		if env.URL == "" {
			return nil, fmt.Errorf("environment %s: http source requires a url", env.Name)
		}
		return NewHTTPStore(env.URL, nil), nil
	case domain.SourceS3:
		if env.Bucket == "" || env.Key == "" {
			return nil, fmt.Errorf("environment %s: s3 source requires bucket and key", env.Name)
		}
		var opts []func(*awsconfig.LoadOptions) error
		if env.Region != "" {
			opts = append(opts, awsconfig.WithRegion(env.Region))
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config for environment %s: %w", env.Name, err)
		}
		return NewS3Store(s3.NewFromConfig(cfg), env.Bucket, env.Key, env.UseDatePrefix), nil
	default:
		return nil, fmt.Errorf("environment %s: unsupported source %q", env.Name, env.Source)
	}
}
