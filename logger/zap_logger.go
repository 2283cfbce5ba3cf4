package logger

import (
	"fmt"

	"github.com/celer-network/cosmos-sidecar/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLogger struct {
	*zap.SugaredLogger
}

var _ types.Logger = (*ZapLogger)(nil)

// NewZapLogger creates a wrapped zap logger
func NewZapLogger(logger *zap.SugaredLogger) *ZapLogger {
	return &ZapLogger{
		SugaredLogger: logger,
	}
}

// New builds a production JSON logger at the given level ("debug", "info",
// "warn", "error") tagged with the sidecar component name.
func New(level string) (*ZapLogger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return NewZapLogger(l.Sugar().With("component", "cosmos-sidecar")), nil
}

// Trace is a shim stand-in for when we have real trace-level logging support
func (zl *ZapLogger) Trace(args ...interface{}) {
	zl.Debug(append([]interface{}{"TRACE: "}, args...)...)
}

// Tracef is a shim stand-in for when we have real trace-level logging support
func (zl *ZapLogger) Tracef(format string, values ...interface{}) {
	zl.Debugf("TRACE: " + fmt.Sprintf(format, values...))
}

// Tracew is a shim stand-in for when we have real trace-level logging support
func (zl *ZapLogger) Tracew(msg string, keysAndValues ...interface{}) {
	zl.Debugw("TRACE: "+msg, keysAndValues...)
}
