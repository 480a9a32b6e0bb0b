// Package logger provides the prefixed, coloured console logger used by every component.
package logger

import (
	"errors"
	"io"

	"github.com/beka-birhanu/maze-runner/service/i"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const colorReset = "\033[0m"

var _ i.Logger = (*Logger)(nil)

// Logger writes leveled console lines tagged with a coloured component prefix.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New creates a logger writing to w. Every line carries prefix in the given ANSI colour.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, errors.New("logger: nil writer")
	}
	if prefix == "" {
		return nil, errors.New("logger: empty prefix")
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encCfg.EncodeName = func(name string, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(color + "[" + name + "]" + colorReset)
	}
	encCfg.CallerKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return &Logger{sugar: zap.New(core).Named(prefix).Sugar()}, nil
}

// Info logs msg at info level.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Warning logs msg at warn level.
func (l *Logger) Warning(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}

// Error logs msg at error level.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
