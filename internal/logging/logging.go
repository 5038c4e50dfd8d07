// ABOUTME: Structured logging setup: zap with lumberjack rotation.
// ABOUTME: The CLI logs to a rotating file so terminal output stays clean.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a JSON file logger with rotation at the given path. Falls back
// to a no-op logger if the log directory cannot be created.
func New(path string) *zap.Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return zap.NewNop()
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), writer, zap.InfoLevel)
	return zap.New(core, zap.AddCaller())
}
