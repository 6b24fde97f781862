package main

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ci-tools/cloud-insight/pkg/server"
	"github.com/ci-tools/cloud-insight/pkg/services/config"
	"github.com/ci-tools/cloud-insight/pkg/services/refresh"
	"github.com/ci-tools/cloud-insight/pkg/store/report"
)

var (
	registryPath    string
	configPath      string
	environment     string
	refreshInterval time.Duration
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Cloud Insight dashboard server",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultRegistry := fmt.Sprintf("%s/.cloudinsightcfg", usr.HomeDir)

	rootCmd.Flags().StringVarP(&registryPath, "registry", "r", defaultRegistry,
		"Path to the environment registry (default is $HOME/.cloudinsightcfg)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "insight.yaml",
		"Path to the analysis config")
	rootCmd.Flags().StringVarP(&environment, "env", "e", "default",
		"Environment profile to monitor")
	rootCmd.Flags().DurationVar(&refreshInterval, "refresh", 5*time.Minute,
		"Report refresh interval")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := config.NewRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("failed to create environment registry: %w", err)
	}

	env, err := registry.GetEnvironment(ctx, environment)
	if err != nil {
		return fmt.Errorf("failed to resolve environment %s: %w", environment, err)
	}

	analysisCfg, err := config.LoadAnalysisConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load analysis config: %w", err)
	}

	store, err := report.NewStoreForEnvironment(ctx, env)
	if err != nil {
		return fmt.Errorf("failed to create report store: %w", err)
	}

	refresher := refresh.NewRefresher(store, refreshInterval)
	if err := refresher.Refresh(ctx); err != nil {
		logger.Warn().Err(err).Msg("initial report fetch failed, serving degraded until next cycle")
	}
	go refresher.Run(ctx)

	logger.Info().Msgf("Monitoring environment `%s` (%s)", env.Name, env.Source)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" {
		host = "0.0.0.0"
	}
	if port == "" {
		port = "8080"
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Snapshots: refresher,
			Config:    analysisCfg,
		},
	})

	return webAPI.Start()
}
