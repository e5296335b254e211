// Package logging builds the zap logger used by the command line tool.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const (
	DebugLevelStr   string = "debug"
	InfoLevelStr    string = "info"
	WarningLevelStr string = "warning"
	ErrorLevelStr   string = "error"
)

func parseLevel(logLevel string) (zapcore.Level, error) {
	switch logLevel {
	case DebugLevelStr:
		return zap.DebugLevel, nil
	case InfoLevelStr:
		return zap.InfoLevel, nil
	case WarningLevelStr:
		return zap.WarnLevel, nil
	case ErrorLevelStr:
		return zap.ErrorLevel, nil
	default:
		return zapcore.InvalidLevel, fmt.Errorf("unknown log level %s", logLevel)
	}
}

// New returns a named sugared logger writing console lines to w, or to a
// rotated logFile when one is given.
func New(name string, logLevel string, logFile string, w io.Writer) (*zap.SugaredLogger, error) {
	level, err := parseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	encoderConfig := zapcore.EncoderConfig{
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	var sink zapcore.WriteSyncer
	if logFile != "" {
		encoderConfig.TimeKey = "ts"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	} else {
		sink = zapcore.AddSync(w)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), sink, level)
	return zap.New(core).Named(name).Sugar(), nil
}
