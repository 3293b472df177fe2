package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/lobziq/pdmafiadatabase/config"
	"github.com/lobziq/pdmafiadatabase/fetch"
	"github.com/lobziq/pdmafiadatabase/logging"
	"github.com/lobziq/pdmafiadatabase/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// globalFlags override the resolved configuration when set.
type globalFlags struct {
	baseURL  string
	storage  string
	dsn      string
	logLevel string
	logFile  string
	verbose  bool
}

// env holds what every crawl or list command needs.
type env struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   store.Store
	fetcher *fetch.HTTPFetcher
	runID   uuid.UUID
}

func main() {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "pdmafia",
		Short: "pdmafia - archive settings and games from pdmafia.com",
		Long: `pdmafia crawls the pdmafia.com game tracker and stores every setting
(role roster and author) and every game (metadata, winning factions and
player outcomes) as one record each.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.baseURL, "base-url", "", "Site base URL (env "+config.EnvBaseURL+")")
	pf.StringVar(&flags.storage, "storage", "", "Storage type: file or sqlite (env "+config.EnvStorage+")")
	pf.StringVar(&flags.dsn, "dsn", "", "Storage directory or database path (env "+config.EnvDSN+")")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFile, "log-file", "", "Write JSON logs to this file instead of stderr")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Shorthand for --log-level debug")

	rootCmd.AddCommand(settingsCmd(flags))
	rootCmd.AddCommand(gamesCmd(flags))
	rootCmd.AddCommand(listCmd(flags))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup resolves configuration and opens the logger, store and fetcher.
// The returned func releases them.
func setup(flags *globalFlags) (*env, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	cfg.Merge(&config.Config{
		BaseURL: flags.baseURL,
		Storage: config.StorageConfig{Type: flags.storage, DSN: flags.dsn},
		Log:     config.LogConfig{Level: flags.logLevel, File: flags.logFile},
	})
	if flags.verbose {
		cfg.Log.Level = "debug"
	}

	runID := uuid.New()

	logger, closeLogger, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, nil, err
	}
	logger = logger.With(zap.String("run_id", runID.String()))

	st, err := store.Open(cfg.Storage.Type, cfg.Storage.DSN, runID)
	if err != nil {
		closeLogger()
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}

	fetcher := fetch.NewHTTPFetcher(fetch.Options{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
		Logger:    logger,
	})

	e := &env{
		cfg:     cfg,
		logger:  logger,
		store:   st,
		fetcher: fetcher,
		runID:   runID,
	}
	return e, func() {
		if err := st.Close(); err != nil {
			logger.Warn("failed to close store", zap.Error(err))
		}
		closeLogger()
	}, nil
}
