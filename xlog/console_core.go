package xlog

import (
	"os"

	"go.uber.org/zap/zapcore"
)

func newConsoleEncoderConfig(lvlEnc zapcore.LevelEncoder, tsEnc zapcore.TimeEncoder) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		EncodeLevel:   lvlEnc,
		TimeKey:       "ts",
		EncodeTime:    tsEnc,
		CallerKey:     "callAt",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		FunctionKey:   coreKeyIgnored,
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: coreKeyIgnored,
	}
}

// A nil writer falls back to the locked stdout.
func newConsoleCore(
	lvlEnabler zapcore.LevelEnabler,
	encoder logEncoderType,
	ws zapcore.WriteSyncer,
	lvlEnc zapcore.LevelEncoder,
	tsEnc zapcore.TimeEncoder,
) zapcore.Core {
	if ws == nil {
		ws = zapcore.Lock(os.Stdout)
	}
	cfg := newConsoleEncoderConfig(lvlEnc, tsEnc)
	return zapcore.NewCore(getEncoderByType(encoder)(cfg), ws, lvlEnabler)
}
