package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the application-wide structured logger, set by Init. It
// defaults to a no-op so packages can log before wiring in tests.
var Logger = zap.NewNop()

// Init builds a zap logger writing JSON to a rotated app.log and a
// console stream on stderr. Dev mode lowers the threshold to debug.
func Init(dir string, dev bool) (*zap.Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create logs dir: %w", err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zap.InfoLevel
	if dev {
		level = zap.DebugLevel
	}

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(&lumberjack.Logger{
			Filename: filepath.Join(dir, "app.log"),
			MaxSize:  100,
			MaxAge:   28,
			Compress: true,
		}),
		level,
	)
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)

	Logger = zap.New(zapcore.NewTee(fileCore, consoleCore))
	return Logger, nil
}
