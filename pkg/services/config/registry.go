package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/ci-tools/cloud-insight/pkg/models/domain"
)

// Registry exposes the monitored environments declared in the
// .cloudinsightcfg profile file. Each section names one environment and
// where its analyzer report lives:
//
//	[prod]
//	source = s3
//	bucket = insight-reports
//	key    = final_report.json
//	region = us-east-1
//	date_prefix = true
//
//	[dev]
//	source = http
//	url = http://localhost:9000/final_report.json
type Registry interface {
	GetEnvironments(ctx context.Context) ([]domain.Environment, error)
	GetEnvironment(ctx context.Context, name string) (domain.Environment, error)
}

type envRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &envRegistry{cfg: cfg}, nil
}

func (r *envRegistry) GetEnvironments(_ context.Context) ([]domain.Environment, error) {
	var envs []domain.Environment
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		env, err := sectionToEnvironment(section)
		if err != nil {
			return nil, err
		}
		envs = append(envs, env)
	}
	return envs, nil
}

func (r *envRegistry) GetEnvironment(_ context.Context, name string) (domain.Environment, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil {
		return domain.Environment{}, fmt.Errorf("environment %s not found", name)
	}
	return sectionToEnvironment(section)
}

func sectionToEnvironment(section *ini.Section) (domain.Environment, error) {
	env := domain.Environment{
		Name:          section.Name(),
		Source:        domain.SourceType(section.Key("source").String()),
		Path:          section.Key("path").String(),
		URL:           section.Key("url").String(),
		Bucket:        section.Key("bucket").String(),
		Key:           section.Key("key").String(),
		Region:        section.Key("region").String(),
		UseDatePrefix: section.Key("date_prefix").MustBool(false),
	}

	switch env.Source {
	case domain.SourceFile, domain.SourceHTTP, domain.SourceS3:
		return env, nil
	default:
		return domain.Environment{}, fmt.Errorf("environment %s: unknown source %q", env.Name, env.Source)
	}
}
