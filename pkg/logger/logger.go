package logger

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger every layer depends on. Errors are passed
// explicitly so call sites cannot forget the cause.
type Logger interface {
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, err error, fields ...zap.Field)
	Fatal(msg string, err error, fields ...zap.Field)
	With(fields ...zap.Field) Logger
	Sync() error
}

type Option func(*zap.Config)

// WithLevel overrides the level implied by the environment. Unknown names
// are ignored.
func WithLevel(level string) Option {
	return func(cfg *zap.Config) {
		if level == "" {
			return
		}
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			log.Printf("warning: unknown log level %q, keeping %s", level, cfg.Level.Level())
			return
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
}

func WithService(name string) Option {
	return func(cfg *zap.Config) {
		if cfg.InitialFields == nil {
			cfg.InitialFields = map[string]any{}
		}
		cfg.InitialFields["service"] = name
	}
}

func configFor(env string) zap.Config {
	if env == "production" {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.DisableStacktrace = true
		return cfg
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

// NewZapLogger builds a JSON logger for production and a console logger for
// every other env.
func NewZapLogger(env string, opts ...Option) Logger {
	cfg := configFor(env)
	for _, opt := range opts {
		opt(&cfg)
	}

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	return FromZap(zl)
}

// FromZap adapts an existing zap logger, e.g. one backed by an observer core
// in tests.
func FromZap(zl *zap.Logger) Logger {
	return &zapLogger{z: zl}
}

// NewNopLogger discards everything.
func NewNopLogger() Logger {
	return FromZap(zap.NewNop())
}

type zapLogger struct {
	z *zap.Logger
}

func withCause(fields []zap.Field, err error) []zap.Field {
	if err == nil {
		return fields
	}
	return append(fields, zap.Error(err))
}

func (l *zapLogger) Info(msg string, fields ...zap.Field) { l.z.Info(msg, fields...) }

func (l *zapLogger) Warn(msg string, fields ...zap.Field) { l.z.Warn(msg, fields...) }

func (l *zapLogger) Error(msg string, err error, fields ...zap.Field) {
	l.z.Error(msg, withCause(fields, err)...)
}

func (l *zapLogger) Fatal(msg string, err error, fields ...zap.Field) {
	l.z.Fatal(msg, withCause(fields, err)...)
}

func (l *zapLogger) With(fields ...zap.Field) Logger {
	return FromZap(l.z.With(fields...))
}

func (l *zapLogger) Sync() error { return l.z.Sync() }
