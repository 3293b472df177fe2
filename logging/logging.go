package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func DefaultEncoderConfig() zapcore.EncoderConfig {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return encoderConfig
}

// Caller info on every entry; stack traces only from DPanic up.
func DefaultOption() []zap.Option {
	var stackTraceLevel zap.LevelEnablerFunc = func(level zapcore.Level) bool {
		return level >= zapcore.DPanicLevel
	}
	return []zap.Option{
		zap.AddCaller(),
		zap.AddStacktrace(stackTraceLevel),
	}
}

// Rotates every 200MB, compressed, old files never pruned.
func DefaultLumberjackLogger(filename string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:  filename,
		MaxSize:   200,
		LocalTime: true,
		Compress:  true,
	}
}

// New builds a logger at the named level. With an empty file it writes
// human-readable lines to stderr; otherwise JSON lines to a rotating file.
// The returned func flushes the logger and closes the file.
func New(level, file string) (*zap.Logger, func(), error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if file == "" {
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(DefaultEncoderConfig()),
			zapcore.Lock(os.Stderr),
			lvl,
		)
		logger := zap.New(core, DefaultOption()...)
		return logger, func() { _ = logger.Sync() }, nil
	}

	writer := DefaultLumberjackLogger(file)
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(DefaultEncoderConfig()),
		zapcore.AddSync(writer),
		lvl,
	)
	logger := zap.New(core, DefaultOption()...)
	return logger, func() {
		_ = logger.Sync()
		_ = writer.Close()
	}, nil
}
