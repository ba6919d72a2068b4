package xlog

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xds/lib/infra"
)

type xLogger struct {
	logger              *zap.Logger
	dynamicLevelEnabler zap.AtomicLevel
	writers             []zapcore.WriteSyncer
}

func (l *xLogger) zap() *zap.Logger {
	return l.logger
}

// IncreaseLogLevel changes the level of this logger and all its named children.
func (l *xLogger) IncreaseLogLevel(level zapcore.Level) {
	l.dynamicLevelEnabler.SetLevel(level)
}

func (l *xLogger) Level() string {
	return l.dynamicLevelEnabler.Level().String()
}

// Sync flushes every writer and reports all failures together.
func (l *xLogger) Sync() error {
	var merr error
	for _, ws := range l.writers {
		merr = multierr.Append(merr, ws.Sync())
	}
	return merr
}

func (l *xLogger) Named(name string) XLogger {
	return &xLogger{
		logger:              l.logger.Named(name),
		dynamicLevelEnabler: l.dynamicLevelEnabler,
		writers:             l.writers,
	}
}

func (l *xLogger) Debug(msg string, fields ...zap.Field) {
	l.logger.Debug(msg, fields...)
}

func (l *xLogger) Info(msg string, fields ...zap.Field) {
	l.logger.Info(msg, fields...)
}

func (l *xLogger) Warn(msg string, fields ...zap.Field) {
	l.logger.Warn(msg, fields...)
}

func (l *xLogger) Error(err error, msg string, fields ...zap.Field) {
	newFields := make([]zap.Field, 0, len(fields)+1)
	if err != nil {
		newFields = append(newFields, zap.String("error", err.Error()))
	}
	newFields = append(newFields, fields...)
	l.logger.Error(msg, newFields...)
}

func (l *xLogger) ErrorStack(err error, msg string, fields ...zap.Field) {
	newFields := make([]zap.Field, 0, len(fields)+1)
	if es, ok := err.(infra.ErrorStack); ok && es != nil {
		newFields = append(newFields, zap.Inline(es))
	} else if err != nil {
		newFields = append(newFields, zap.String("error", err.Error()))
	}
	newFields = append(newFields, fields...)
	l.logger.Error(msg, newFields...)
}

type loggerCfg struct {
	encoderType *logEncoderType
	lvlEncoder  zapcore.LevelEncoder
	tsEncoder   zapcore.TimeEncoder
	level       *zapcore.Level
	writers     []zapcore.WriteSyncer
}

type XLoggerOption func(*loggerCfg) error

// NewXLogger panics on an invalid option. Without a level option the
// level is read from the XLOG_LVL environment variable, DEBUG by default.
func NewXLogger(opts ...XLoggerOption) XLogger {
	cfg := &loggerCfg{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(cfg); err != nil {
			panic(err)
		}
	}

	xl := &xLogger{}
	enc := JSON
	if cfg.encoderType != nil {
		enc = *cfg.encoderType
	}
	if cfg.level != nil {
		xl.dynamicLevelEnabler = zap.NewAtomicLevelAt(*cfg.level)
	} else {
		xl.dynamicLevelEnabler = zap.NewAtomicLevelAt(envLogLevelOrDefault())
	}
	if cfg.lvlEncoder == nil {
		cfg.lvlEncoder = zapcore.CapitalLevelEncoder
	}
	if cfg.tsEncoder == nil {
		cfg.tsEncoder = zapcore.ISO8601TimeEncoder
	}
	if len(cfg.writers) == 0 {
		cfg.writers = []zapcore.WriteSyncer{nil}
	}

	cores := make([]zapcore.Core, 0, len(cfg.writers))
	for _, ws := range cfg.writers {
		core := newConsoleCore(xl.dynamicLevelEnabler, enc, ws, cfg.lvlEncoder, cfg.tsEncoder)
		cores = append(cores, core)
		if ws != nil {
			xl.writers = append(xl.writers, ws)
		}
	}

	// Disable zap logger error stack.
	xl.logger = zap.New(
		zapcore.NewTee(cores...),
		zap.AddCallerSkip(1),
		zap.AddCaller(),
	)
	return xl
}

// NewNopXLogger discards everything.
func NewNopXLogger() XLogger {
	return &xLogger{
		logger:              zap.NewNop(),
		dynamicLevelEnabler: zap.NewAtomicLevelAt(zapcore.FatalLevel),
	}
}

func WithXLoggerEncoder(logEnc logEncoderType) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if logEnc >= _encMax {
			return infra.NewErrorStack("[xlog] unknown xlogger encoder")
		}
		cfg.encoderType = &logEnc
		return nil
	}
}

func WithXLoggerLevel(lvl logLevel) XLoggerOption {
	return func(cfg *loggerCfg) error {
		_lvl := lvl.zapLevel()
		cfg.level = &_lvl
		return nil
	}
}

func WithXLoggerLevelEncoder(lvlEnc zapcore.LevelEncoder) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if lvlEnc == nil {
			lvlEnc = zapcore.CapitalColorLevelEncoder
		}
		cfg.lvlEncoder = lvlEnc
		return nil
	}
}

func WithXLoggerTimeEncoder(tsEnc zapcore.TimeEncoder) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if tsEnc == nil {
			tsEnc = zapcore.ISO8601TimeEncoder
		}
		cfg.tsEncoder = tsEnc
		return nil
	}
}

// WithXLoggerWriter adds an output. Every writer gets its own core,
// the logger writes each entry to all of them.
func WithXLoggerWriter(ws zapcore.WriteSyncer) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if ws == nil {
			return infra.NewErrorStack("[xlog] nil writer")
		}
		cfg.writers = append(cfg.writers, ws)
		return nil
	}
}

func WithXLoggerStdOutWriter() XLoggerOption {
	return func(cfg *loggerCfg) error {
		cfg.writers = append(cfg.writers, nil)
		return nil
	}
}
