// Package main provides the entry point for the race report API.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SvyatElkind/race-report/internal/api"
	"github.com/SvyatElkind/race-report/internal/config"
	"github.com/SvyatElkind/race-report/internal/database"
	"github.com/SvyatElkind/race-report/internal/ingest"
	"github.com/SvyatElkind/race-report/internal/logger"
	"github.com/SvyatElkind/race-report/internal/report"
	"github.com/SvyatElkind/race-report/internal/repository"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	cfg        *config.Config
	appLog     *logrus.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "race-report",
	Short: "Read-only race timing report API",
	Long:  `Serves ranked race results, driver lists and single driver lookups in JSON or XML over HTTP.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd == versionCmd {
			return nil
		}
		return loadConfig()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long:  `Seeds the store from the timing logs if it is empty, then serves the report API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load the timing logs into the store and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIngest()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("race-report %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			return fmt.Errorf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			return fmt.Errorf("failed to load secrets: %w", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appLog = logger.NewLogger(cfg.App.LogLevel)
	return nil
}

func setupStore(ctx context.Context) (*database.DB, *repository.Repositories, error) {
	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repos, err := repository.NewRepositories(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return db, repos, nil
}

func runIngest() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, repos, err := setupStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	seeder := ingest.NewSeeder(repos, ingest.Files{
		Abbreviations: cfg.Data.Abbreviations,
		StartLog:      cfg.Data.StartLog,
		EndLog:        cfg.Data.EndLog,
	}, appLog)

	return seeder.Seed(ctx)
}

func runServe() error {
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
		"version":     Version,
	}).Info("Race report API starting")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, repos, err := setupStore(ctx)
	cancel()
	if err != nil {
		return err
	}
	defer db.Close()

	appLog.Info("Database connection established")

	// One-time ingestion on first startup; a populated store is left
	// untouched.
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	seeder := ingest.NewSeeder(repos, ingest.Files{
		Abbreviations: cfg.Data.Abbreviations,
		StartLog:      cfg.Data.StartLog,
		EndLog:        cfg.Data.EndLog,
	}, appLog)
	err = seeder.Seed(seedCtx)
	seedCancel()
	if err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}

	var provider report.Provider = report.NewService(repos, appLog)
	if cfg.Cache.Enabled {
		provider = report.NewCachedService(provider, time.Duration(cfg.Cache.TTLSeconds)*time.Second, appLog)
		appLog.WithField("ttl_seconds", cfg.Cache.TTLSeconds).Info("Report cache enabled")
	}

	router := api.SetupRouter(api.Options{
		Config:  cfg,
		Logger:  appLog,
		Reports: provider,
		Pinger:  db,
		Version: Version,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLog.WithField("addr", server.Addr).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		appLog.WithField("signal", sig.String()).Info("Shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	appLog.Info("Server stopped")
	return nil
}
