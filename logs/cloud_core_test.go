package logs

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"appwrite_api/types"

	"cloud.google.com/go/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/api/option"
)

type fakeEntryLogger struct {
	entries []logging.Entry
	flushes int
}

func (f *fakeEntryLogger) Log(e logging.Entry) {
	f.entries = append(f.entries, e)
}

func (f *fakeEntryLogger) Flush() error {
	f.flushes++
	return nil
}

func TestCloudCore_WritesPayloadAndLabels(t *testing.T) {
	sink := &fakeEntryLogger{}
	logger := zap.New(NewCloudCore(sink, zapcore.DebugLevel)).Named("bootstrap")

	logger.Error("Error initializing Account handle",
		zap.String("status", "error"),
		zap.Error(errors.New("boom")),
		zap.Int("attempt", 1),
	)

	require.Len(t, sink.entries, 1)
	entry := sink.entries[0]
	assert.Equal(t, logging.Error, entry.Severity)
	assert.Equal(t, map[string]string{"status": "error", "error": "boom", "logger": "bootstrap"}, entry.Labels)

	payload, ok := entry.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Error initializing Account handle", payload["message"])
	assert.Equal(t, int64(1), payload["attempt"])
}

func TestCloudCore_WithKeepsContextFields(t *testing.T) {
	sink := &fakeEntryLogger{}
	logger := zap.New(NewCloudCore(sink, zapcore.DebugLevel)).With(zap.String("component", "appwrite"))

	logger.Info("first")
	logger.With(zap.String("handle", "functions")).Info("second")
	logger.Info("third")

	require.Len(t, sink.entries, 3)
	second := sink.entries[1].Payload.(map[string]interface{})
	assert.Equal(t, "appwrite", second["component"])
	assert.Equal(t, "functions", second["handle"])

	third := sink.entries[2].Payload.(map[string]interface{})
	assert.NotContains(t, third, "handle")
	assert.Nil(t, sink.entries[2].Labels)
}

func TestCloudCore_RespectsLevel(t *testing.T) {
	sink := &fakeEntryLogger{}
	logger := zap.New(NewCloudCore(sink, zapcore.WarnLevel))

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")

	require.Len(t, sink.entries, 1)
	assert.Equal(t, logging.Warning, sink.entries[0].Severity)
}

func TestCloudCore_SyncFlushes(t *testing.T) {
	sink := &fakeEntryLogger{}
	logger := zap.New(NewCloudCore(sink, zapcore.InfoLevel))

	require.NoError(t, logger.Sync())
	assert.Equal(t, 1, sink.flushes)
}

func TestCloudCore_FlushesAboveError(t *testing.T) {
	sink := &fakeEntryLogger{}
	logger := zap.New(NewCloudCore(sink, zapcore.InfoLevel))

	logger.Error("not flushed")
	assert.Equal(t, 0, sink.flushes)

	logger.DPanic("flushed")
	require.Len(t, sink.entries, 2)
	assert.Equal(t, 1, sink.flushes)
	assert.Equal(t, logging.Critical, sink.entries[1].Severity)
}

func TestSeverity(t *testing.T) {
	tests := map[zapcore.Level]logging.Severity{
		zapcore.DebugLevel:  logging.Debug,
		zapcore.InfoLevel:   logging.Info,
		zapcore.WarnLevel:   logging.Warning,
		zapcore.ErrorLevel:  logging.Error,
		zapcore.DPanicLevel: logging.Critical,
		zapcore.PanicLevel:  logging.Alert,
		zapcore.FatalLevel:  logging.Emergency,
	}

	for level, want := range tests {
		assert.Equal(t, want, Severity(level), level.String())
	}
}

func TestNewLogger_WithoutCloudProject(t *testing.T) {
	for _, format := range []string{types.LOG_FORMAT_JSON, types.LOG_FORMAT_CONSOLE} {
		t.Run(format, func(t *testing.T) {
			logger, closeLogger, err := NewLogger(context.Background(), &types.Config{LogLevel: "warn", LogFormat: format})
			require.NoError(t, err)
			require.NotNil(t, closeLogger)
			defer closeLogger()

			assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
			assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
		})
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, _, err := NewLogger(context.Background(), &types.Config{LogLevel: "verbose"})
	assert.Error(t, err)
}

func TestNewLogger_CloudClientErrorIsWrapped(t *testing.T) {
	cfg := &types.Config{LogLevel: "info", GCPProjectID: "gcp-project"}
	missing := filepath.Join(t.TempDir(), "missing-credentials.json")

	_, _, err := NewLogger(context.Background(), cfg, option.WithCredentialsFile(missing))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error initializing logging client")
	assert.NotNil(t, errors.Unwrap(err))
}
