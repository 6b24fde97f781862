package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/ci-tools/cloud-insight/pkg/models/domain"
)

// AnalysisConfig mirrors the analyzer's config.yaml sections the dashboard
// displays: watched log files, watched cost categories and the abnormal
// thresholds driving status derivation.
type AnalysisConfig struct {
	ProjectName    string   `mapstructure:"project_name"`
	LogFiles       []string `mapstructure:"log_files"`
	CostCategories []string `mapstructure:"cost_categories"`

	Thresholds struct {
		CriticalLogCount       int     `mapstructure:"critical_log_count"`
		CostIncreasePercentage float64 `mapstructure:"cost_increase_percentage"`
	} `mapstructure:"thresholds"`
}

// LoadAnalysisConfig reads the analysis config from path. A missing file is
// not an error; defaults apply. INSIGHT_-prefixed environment variables
// override file values (e.g. INSIGHT_THRESHOLDS_CRITICAL_LOG_COUNT).
func LoadAnalysisConfig(path string) (*AnalysisConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("project_name", "Cloud Insight")
	v.SetDefault("cost_categories", []string{"EC2", "RDS", "S3", "Lambda", "DynamoDB"})
	v.SetDefault("thresholds.critical_log_count", domain.DefaultCriticalLogCount)
	v.SetDefault("thresholds.cost_increase_percentage", domain.DefaultCostIncreasePercentage)

	v.SetEnvPrefix("INSIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read analysis config: %w", err)
	}

	var cfg AnalysisConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse analysis config: %w", err)
	}
	return &cfg, nil
}

// DomainThresholds converts the configured limits into the normalized form
// the evaluator consumes.
func (c *AnalysisConfig) DomainThresholds() domain.Thresholds {
	return domain.Thresholds{
		CriticalLogCount:       c.Thresholds.CriticalLogCount,
		CostIncreasePercentage: c.Thresholds.CostIncreasePercentage,
	}.Normalized()
}
