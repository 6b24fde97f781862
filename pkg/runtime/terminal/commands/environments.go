package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ci-tools/cloud-insight/pkg/services/config"
)

type EnvironmentsCmd struct {
	registry config.Registry
}

func NewEnvironmentsCmd(registry config.Registry) *cobra.Command {
	ec := &EnvironmentsCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "environments",
		Short: "List configured environment profiles",
		RunE:  ec.run,
	}
	return cmd
}

func (ec *EnvironmentsCmd) run(cmd *cobra.Command, _ []string) error {
	envs, err := ec.registry.GetEnvironments(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list environments: %w", err)
	}

	if len(envs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No environments configured.")
		return nil
	}

	for _, env := range envs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", env)
	}
	return nil
}
