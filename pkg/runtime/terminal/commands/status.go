package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ci-tools/cloud-insight/pkg/models/domain"
	"github.com/ci-tools/cloud-insight/pkg/services/config"
	"github.com/ci-tools/cloud-insight/pkg/services/insight"
	"github.com/ci-tools/cloud-insight/pkg/store/report"
)

// Renderer outputs a derived dashboard; the terminal reporter satisfies it.
type Renderer interface {
	Handle(d domain.Dashboard) error
}

type StatusCmd struct {
	env        string
	configPath string
	registry   config.Registry
	renderer   Renderer
}

func NewStatusCmd(registry config.Registry, renderer Renderer) *cobra.Command {
	sc := &StatusCmd{registry: registry, renderer: renderer}
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Fetch the latest report for an environment and show its health",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.env, "env", "", "Environment profile to inspect")
	cmd.Flags().StringVar(&sc.configPath, "config", "insight.yaml", "Path to the analysis config")

	_ = cmd.MarkFlagRequired("env")

	return cmd
}

func (sc *StatusCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	env, err := sc.registry.GetEnvironment(ctx, sc.env)
	if err != nil {
		return fmt.Errorf("failed to resolve environment %s: %w", sc.env, err)
	}

	store, err := report.NewStoreForEnvironment(ctx, env)
	if err != nil {
		return fmt.Errorf("failed to create report store: %w", err)
	}

	snap, err := store.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch report: %w", err)
	}

	cfg, err := config.LoadAnalysisConfig(sc.configPath)
	if err != nil {
		return fmt.Errorf("failed to load analysis config: %w", err)
	}

	return sc.renderer.Handle(insight.Evaluate(*snap, cfg.DomainThresholds()))
}
