package logs

import (
	"context"
	"fmt"

	"appwrite_api/types"

	"cloud.google.com/go/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/api/option"
)

// NewLogger builds the process logger from the configuration.
// When a Google Cloud project is configured, entries are also forwarded to Cloud Logging.
// The returned close function flushes and releases the cloud sink and is never nil.
func NewLogger(ctx context.Context, cfg *types.Config, opts ...option.ClientOption) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing log level: %w", err)
	}

	var zapConfig zap.Config
	if cfg.LogFormat == types.LOG_FORMAT_CONSOLE {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("error building logger: %w", err)
	}

	if cfg.GCPProjectID == "" {
		return logger, func() { _ = logger.Sync() }, nil
	}

	loggingClient, err := logging.NewClient(ctx, cfg.GCPProjectID, opts...)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, fmt.Errorf("error initializing logging client: %w", err)
	}
	cloudLogger := loggingClient.Logger(types.CLOUD_LOGGER_NAME)

	logger = logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, NewCloudCore(cloudLogger, level))
	}))
	logger.Info("Logging client initialized successfully", zap.String("status", "success"))

	return logger, func() {
		_ = logger.Sync()
		_ = loggingClient.Close()
	}, nil
}
