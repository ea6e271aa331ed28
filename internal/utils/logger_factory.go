package utils

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	structuredEncodingNameConstant       = "json"
	consoleEncodingNameConstant          = "console"
	unsupportedLogLevelTemplateConstant  = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant = "unsupported log format: %s"
	loggerConstructionTemplateConstant   = "unable to build logger: %w"
)

// LogLevel selects the minimum severity a logger emits.
type LogLevel string

// Log levels accepted by the common configuration section.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat selects the encoder used for log output.
type LogFormat string

// Log formats accepted by the common configuration section.
const (
	LogFormatStructured LogFormat = "structured"
	LogFormatConsole    LogFormat = "console"
)

// LoggerFactory builds zap.Logger instances from the configured level and format.
type LoggerFactory struct{}

// NewLoggerFactory constructs a new logger factory.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{}
}

// CreateLogger produces a production zap.Logger honoring the requested log level and format.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	zapLogLevel, levelError := resolveZapLevel(requestedLogLevel)
	if levelError != nil {
		return nil, levelError
	}

	zapEncoding, encodingError := resolveZapEncoding(requestedLogFormat)
	if encodingError != nil {
		return nil, encodingError
	}

	loggerConfiguration := zap.NewProductionConfig()
	loggerConfiguration.Level = zap.NewAtomicLevelAt(zapLogLevel)
	loggerConfiguration.Encoding = zapEncoding

	logger, buildError := loggerConfiguration.Build()
	if buildError != nil {
		return nil, fmt.Errorf(loggerConstructionTemplateConstant, buildError)
	}

	return logger, nil
}

func resolveZapLevel(requestedLogLevel LogLevel) (zapcore.Level, error) {
	switch requestedLogLevel {
	case LogLevelDebug:
		return zapcore.DebugLevel, nil
	case LogLevelInfo:
		return zapcore.InfoLevel, nil
	case LogLevelWarn:
		return zapcore.WarnLevel, nil
	case LogLevelError:
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InvalidLevel, fmt.Errorf(unsupportedLogLevelTemplateConstant, requestedLogLevel)
	}
}

func resolveZapEncoding(requestedLogFormat LogFormat) (string, error) {
	switch requestedLogFormat {
	case LogFormatStructured:
		return structuredEncodingNameConstant, nil
	case LogFormatConsole:
		return consoleEncodingNameConstant, nil
	default:
		return "", fmt.Errorf(unsupportedLogFormatTemplateConstant, requestedLogFormat)
	}
}
