package logs

import (
	"fmt"

	"cloud.google.com/go/logging"
	"go.uber.org/zap/zapcore"
)

// EntryLogger is the part of *logging.Logger the cloud core writes to.
type EntryLogger interface {
	Log(e logging.Entry)
	Flush() error
}

type cloudCore struct {
	zapcore.LevelEnabler
	logger EntryLogger
	fields []zapcore.Field
}

// NewCloudCore returns a zap core that forwards entries to Cloud Logging.
// Fields become the JSON payload; "status" and "error" fields are copied into labels.
func NewCloudCore(logger EntryLogger, enabler zapcore.LevelEnabler) zapcore.Core {
	return &cloudCore{LevelEnabler: enabler, logger: logger}
}

func (c *cloudCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return &clone
}

func (c *cloudCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *cloudCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	payload := make(map[string]interface{}, len(enc.Fields)+1)
	for k, v := range enc.Fields {
		payload[k] = v
	}
	payload["message"] = ent.Message

	var labels map[string]string
	for _, key := range []string{"status", "error"} {
		if v, ok := enc.Fields[key]; ok {
			if labels == nil {
				labels = make(map[string]string)
			}
			labels[key] = fmt.Sprint(v)
		}
	}
	if ent.LoggerName != "" {
		if labels == nil {
			labels = make(map[string]string)
		}
		labels["logger"] = ent.LoggerName
	}

	c.logger.Log(logging.Entry{
		Timestamp: ent.Time,
		Severity:  Severity(ent.Level),
		Payload:   payload,
		Labels:    labels,
	})

	// Flush before a panic or fatal exit drops the bundled entries
	if ent.Level > zapcore.ErrorLevel {
		return c.Sync()
	}
	return nil
}

func (c *cloudCore) Sync() error {
	return c.logger.Flush()
}

// Severity maps a zap level to its Cloud Logging severity.
func Severity(level zapcore.Level) logging.Severity {
	switch level {
	case zapcore.DebugLevel:
		return logging.Debug
	case zapcore.InfoLevel:
		return logging.Info
	case zapcore.WarnLevel:
		return logging.Warning
	case zapcore.ErrorLevel:
		return logging.Error
	case zapcore.DPanicLevel:
		return logging.Critical
	case zapcore.PanicLevel:
		return logging.Alert
	case zapcore.FatalLevel:
		return logging.Emergency
	default:
		return logging.Default
	}
}
