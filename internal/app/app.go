package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/niveshapp/nivesh/internal/clients/quoteapi"
	"github.com/niveshapp/nivesh/internal/common"
	"github.com/niveshapp/nivesh/internal/interfaces"
	"github.com/niveshapp/nivesh/internal/metrics"
	"github.com/niveshapp/nivesh/internal/notify"
	"github.com/niveshapp/nivesh/internal/services/refresh"
	"github.com/niveshapp/nivesh/internal/storage"
)

// App holds the initialized configuration, storage, clients, and services.
// It is the shared core behind cmd/nivesh-server.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Storage     interfaces.Storage
	QuoteClient interfaces.QuoteClient
	Engine      interfaces.RefreshEngine
	Metrics     *metrics.Metrics
	Scheduler   *Scheduler
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, storage, the quote client, and the
// refresh engine. configPath may be empty, in which case NIVESH_CONFIG,
// then a nivesh.toml next to the binary, then config/nivesh.toml are tried.
func NewApp(configPath string) (*App, error) {
	binDir := getBinaryDir()

	if configPath == "" {
		configPath = os.Getenv("NIVESH_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "nivesh.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/nivesh.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative storage path to the binary directory so the server
	// is self-contained regardless of the working directory.
	if config.Storage.Path != "" && !filepath.IsAbs(config.Storage.Path) {
		config.Storage.Path = filepath.Join(binDir, config.Storage.Path)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	store, err := storage.NewStore(logger, config.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	quoteClient := quoteapi.NewClient(
		quoteapi.WithBaseURL(config.Clients.QuoteAPI.BaseURL),
		quoteapi.WithLogger(logger),
		quoteapi.WithRateLimit(config.Clients.QuoteAPI.RateLimit),
		quoteapi.WithTimeout(config.Clients.QuoteAPI.GetTimeout()),
	)

	m := metrics.New()

	// Every successful save republishes the widget summary.
	bridge := notify.NewWidgetBridge(store.KV(), logger)
	store.SetSyncFunc(bridge.Publish)

	sink := notify.NewSink(logger, bridge)
	engine := refresh.NewService(store, quoteClient, sink, m, logger, config.Refresh.AlertThresholdPct)

	app := &App{
		Config:      config,
		Logger:      logger,
		Storage:     store,
		QuoteClient: quoteClient,
		Engine:      engine,
		Metrics:     m,
		Scheduler:   NewScheduler(engine, logger, config.Refresh.GetInterval()),
	}

	logger.Info().
		Str("version", common.GetVersion()).
		Str("environment", config.Environment).
		Str("storage", config.Storage.Path).
		Str("quote_api", config.Clients.QuoteAPI.BaseURL).
		Msg("Application initialized")

	return app, nil
}

// Close stops the scheduler and releases storage.
func (a *App) Close() error {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.Storage != nil {
		return a.Storage.Close()
	}
	return nil
}
