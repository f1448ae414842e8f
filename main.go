package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/whoisbatch/domain_query_api/pkg/query"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARN: Error loading .env file, using environment variables from system if set.")
	}

	cliApp := &cli.App{
		Name:  "domain-query-api",
		Usage: "bulk domain availability query service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "host",
				Usage:   "listen address",
				Value:   "127.0.0.1",
				EnvVars: []string{"DOMAIN_QUERY_HOST"},
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   "listen port",
				Value:   8000,
				EnvVars: []string{"DOMAIN_QUERY_PORT"},
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to the domain suffix configuration file",
				Value:   "config/domain_suffixes.json",
				EnvVars: []string{"DOMAIN_QUERY_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "static-dir",
				Usage:   "directory holding the web form page",
				Value:   "static",
				EnvVars: []string{"DOMAIN_QUERY_STATIC_DIR"},
			},
			&cli.DurationFlag{
				Name:    "whois-timeout",
				Usage:   "per-lookup request timeout",
				Value:   10 * time.Second,
				EnvVars: []string{"WHOIS_TIMEOUT"},
			},
			&cli.IntFlag{
				Name:    "whois-max-retries",
				Usage:   "additional attempts after a rate-limited lookup",
				Value:   1,
				EnvVars: []string{"WHOIS_MAX_RETRIES"},
			},
			&cli.DurationFlag{
				Name:    "whois-retry-delay",
				Usage:   "pause between rate-limited attempts",
				Value:   2 * time.Second,
				EnvVars: []string{"WHOIS_RETRY_DELAY"},
			},
			&cli.BoolFlag{
				Name:    "whois-respect-rate-limit",
				Usage:   "retry lookups the upstream reports as rate limited",
				Value:   true,
				EnvVars: []string{"WHOIS_RESPECT_RATE_LIMIT"},
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "verbose console logging",
				EnvVars: []string{"DOMAIN_QUERY_DEBUG"},
			},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func run(c *cli.Context) error {
	logger, err := newLogger(c.Bool("debug"))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // flush is best effort on shutdown

	client := query.NewWhoisAPIClient(query.ClientPolicy{
		Timeout:          c.Duration("whois-timeout"),
		MaxRetries:       c.Int("whois-max-retries"),
		RetryDelay:       c.Duration("whois-retry-delay"),
		RespectRateLimit: c.Bool("whois-respect-rate-limit"),
	})

	app, err := NewApp(AppConfig{
		SuffixConfigPath: c.String("config"),
		Client:           client,
		Logger:           logger,
		StaticDir:        c.String("static-dir"),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", c.String("host"), c.Int("port"))
	return app.Start(addr)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
