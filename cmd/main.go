package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/desertthunder/tdx/internal/services"
	"github.com/desertthunder/tdx/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

func main() {
	logger := shared.NewLogger(nil)

	configPath := "config.toml"
	config := shared.DefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		if loadedConfig, err := shared.LoadConfig(configPath); err == nil {
			config = loadedConfig
		} else {
			logger.Warnf("failed to load config, using defaults: %v", err)
		}
	}

	service := services.NewTaskAPIService(
		config.API.BaseURL,
		apiClient(config),
		config.API.RateLimit,
	)

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		Service:    service,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "tdx",
		Usage:    "Manage tasks from the terminal",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Initialize database and run migrations",
		Flags:  []cli.Flag{configFlag()},
		Action: r.SetupDatabase,
	}
}

// apiClient builds the HTTP client for the task API. When a bearer token is
// configured the client injects it on every request, keeping auth out of the
// transport layer.
func apiClient(config *shared.Config) *http.Client {
	timeout := time.Duration(config.API.TimeoutSeconds) * time.Second

	if config.API.BearerToken == "" {
		return &http.Client{Timeout: timeout}
	}

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: config.API.BearerToken})
	client := oauth2.NewClient(context.Background(), source)
	client.Timeout = timeout
	return client
}
