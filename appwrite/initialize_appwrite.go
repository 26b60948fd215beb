package appwrite

import (
	"sync"

	"appwrite_api/config"
	"appwrite_api/types"

	"github.com/appwrite/sdk-for-go/appwrite"
	"go.uber.org/zap"
)

// InitAppwriteApp builds the Appwrite client from cfg and binds the account,
// databases and functions handles to it.
func InitAppwriteApp(cfg *types.Config, logger *zap.Logger) (*types.AppwriteApp, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := config.ValidateConfig(cfg); err != nil {
		logger.Error("Error validating Appwrite configuration", zap.String("status", "error"), zap.Error(err))
		return nil, err
	}

	// Initialize the client shared by every handle
	client := appwrite.NewClient(
		appwrite.WithEndpoint(cfg.Endpoint),
		appwrite.WithProject(cfg.ProjectID),
	)
	logger.Info("Appwrite client initialized successfully",
		zap.String("status", "success"),
		zap.String("endpoint", cfg.Endpoint),
		zap.String("project", cfg.ProjectID),
	)

	account := appwrite.NewAccount(client)
	logger.Info("Account handle initialized successfully", zap.String("status", "success"))

	databases := appwrite.NewDatabases(client)
	logger.Info("Databases handle initialized successfully", zap.String("status", "success"))

	functions := appwrite.NewFunctions(client)
	logger.Info("Functions handle initialized successfully", zap.String("status", "success"))

	return &types.AppwriteApp{
		Endpoint:  cfg.Endpoint,
		ProjectID: cfg.ProjectID,
		Client:    client,
		Account:   account,
		Databases: databases,
		Functions: functions,
		Logger:    logger,
	}, nil
}

// Loader builds the Appwrite handles at most once and hands out the same result on every call.
type Loader struct {
	loadConfig func() (*types.Config, error)

	once sync.Once
	app  *types.AppwriteApp
	err  error
}

// NewLoader returns a Loader reading its configuration from loadConfig.
func NewLoader(loadConfig func() (*types.Config, error)) *Loader {
	return &Loader{loadConfig: loadConfig}
}

// Get returns the shared handles, constructing them on the first call.
// A failed first call is not retried; the same error is returned from then on.
func (l *Loader) Get(logger *zap.Logger) (*types.AppwriteApp, error) {
	l.once.Do(func() {
		cfg, err := l.loadConfig()
		if err != nil {
			if logger != nil {
				logger.Error("Error loading Appwrite configuration", zap.String("status", "error"), zap.Error(err))
			}
			l.err = err
			return
		}
		l.app, l.err = InitAppwriteApp(cfg, logger)
	})
	return l.app, l.err
}

var defaultLoader = NewLoader(config.LoadConfig)

// GetAppwriteApp returns the process-wide handles, loading the configuration
// from the environment on first use.
func GetAppwriteApp(logger *zap.Logger) (*types.AppwriteApp, error) {
	return defaultLoader.Get(logger)
}
