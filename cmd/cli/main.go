package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/ci-tools/cloud-insight/pkg/runtime/terminal"
	"github.com/ci-tools/cloud-insight/pkg/services/config"
)

func main() {
	usr, _ := user.Current()
	registryPath := fmt.Sprintf("%s/.cloudinsightcfg", usr.HomeDir)
	if path := os.Getenv("INSIGHT_REGISTRY"); path != "" {
		registryPath = path
	}

	registry, err := config.NewRegistry(registryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load registry %s: %v\n", registryPath, err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Registry: registry,
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
