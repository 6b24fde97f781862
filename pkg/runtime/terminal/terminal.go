package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ci-tools/cloud-insight/pkg/runtime/terminal/commands"
	"github.com/ci-tools/cloud-insight/pkg/services/config"
)

// CLI represents the command-line interface
type CLI struct {
	registry config.Registry
	reporter *Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry config.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		registry: opts.Registry,
		reporter: NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insight",
		Short: "Cloud environment health dashboard",
	}

	cmd.AddCommand(commands.NewStatusCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewEnvironmentsCmd(cli.registry))

	return cmd
}
