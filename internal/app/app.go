package app

import (
	"path/filepath"

	"go.uber.org/zap"

	"patternlab/internal/catalog"
	"patternlab/internal/config"
	"patternlab/internal/domain"
	"patternlab/internal/logging"
	"patternlab/internal/runner"
	"patternlab/internal/store"
)

// App bundles config, catalog, history and runner for the CLI.
type App struct {
	Cfg     config.Config
	Catalog domain.Registry
	History domain.HistoryStore // nil when disabled
	Runner  domain.Runner
	Log     *zap.Logger

	cleanup func()
}

// New constructs the dependency graph from cfg.
func New(cfg Config) (*App, error) {
	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = filepath.Join(cfg.Home, "config.yaml")
	}
	fileCfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, cleanup, err := logging.Setup(cfg.Home, fileCfg.Logging, cfg.Debug)
	if err != nil {
		return nil, err
	}

	cat := catalog.New(catalog.Options{
		ObserverSubscribers: fileCfg.Observer.Subscribers,
	})

	var history domain.HistoryStore
	if fileCfg.History.Enabled {
		history = store.NewFileStore(cfg.Home)
	}

	return &App{
		Cfg:     fileCfg,
		Catalog: cat,
		History: history,
		Runner:  runner.New(cat, history, log),
		Log:     log,
		cleanup: cleanup,
	}, nil
}

// Close flushes and releases logging resources.
func (a *App) Close() {
	if a.cleanup != nil {
		a.cleanup()
	}
}
