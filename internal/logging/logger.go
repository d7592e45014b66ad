// Package logging builds the zap logger escp2renderd's components share,
// following the teacher's LoggerManager construction sequence: pick an
// encoder for the configured format, pick a write syncer (stdout/stderr/
// rotating file), parse the level, and wire them into one core.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"escp2render/internal/config"
)

// manager holds the configuration createLogger needs across its helper
// methods, mirroring the teacher's LoggerManager.
type manager struct {
	cfg *config.LoggingConfig
}

// New builds a *zap.Logger from the given logging configuration.
func New(cfg *config.LoggingConfig) (*zap.Logger, error) {
	m := &manager{cfg: cfg}

	encoderConfig := m.encoderConfig()

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "console":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	writeSyncer, err := m.writeSyncer()
	if err != nil {
		return nil, fmt.Errorf("build write syncer: %w", err)
	}

	level, err := m.level()
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	core := zapcore.NewCore(encoder, writeSyncer, level)
	return zap.New(core, m.options()...), nil
}

func (m *manager) encoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	ec.LevelKey = "level"
	ec.EncodeLevel = zapcore.LowercaseLevelEncoder
	ec.CallerKey = "caller"
	ec.EncodeCaller = zapcore.ShortCallerEncoder
	ec.MessageKey = "message"
	ec.StacktraceKey = "stacktrace"

	if m.cfg.Format == "console" {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	}
	return ec
}

func (m *manager) writeSyncer() (zapcore.WriteSyncer, error) {
	switch m.cfg.Output {
	case "stdout", "":
		return zapcore.AddSync(os.Stdout), nil
	case "stderr":
		return zapcore.AddSync(os.Stderr), nil
	default:
		dir := filepath.Dir(m.cfg.Output)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		rotator := &lumberjack.Logger{
			Filename:   m.cfg.Output,
			MaxSize:    m.cfg.MaxSize,
			MaxBackups: m.cfg.MaxBackups,
			MaxAge:     m.cfg.MaxAge,
			Compress:   m.cfg.Compress,
		}
		return zapcore.AddSync(rotator), nil
	}
}

func (m *manager) level() (zapcore.Level, error) {
	switch m.cfg.Level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	case "fatal":
		return zapcore.FatalLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", m.cfg.Level)
	}
}

func (m *manager) options() []zap.Option {
	return []zap.Option{
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	}
}

// Sync flushes any buffered log entries. Callers should defer this at
// process shutdown; the teacher's CloseLogger plays the same role.
func Sync(logger *zap.Logger) error {
	return logger.Sync()
}
