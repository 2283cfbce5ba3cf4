package logger

import (
	"fmt"
	"io"

	"github.com/celer-network/cosmos-sidecar/types"
	"github.com/rs/zerolog"
)

// ZerologLogger adapts a zerolog.Logger to types.Logger for callers that
// already run zerolog. Key/value pairs become event fields.
type ZerologLogger struct {
	log zerolog.Logger
}

var _ types.Logger = (*ZerologLogger)(nil)

func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{
		log: logger.With().Str("component", "cosmos-sidecar").Logger(),
	}
}

// NewConsole builds a human readable zerolog logger writing to w.
func NewConsole(w io.Writer, level string) (*ZerologLogger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: true}
	return NewZerologLogger(zerolog.New(out).Level(lvl).With().Timestamp().Logger()), nil
}

func withFields(e *zerolog.Event, keysAndValues []interface{}) *zerolog.Event {
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 == len(keysAndValues) {
			e = e.Interface("!BADKEY", keysAndValues[i])
			break
		}
		e = e.Interface(key, keysAndValues[i+1])
	}
	return e
}

func (l *ZerologLogger) Panic(args ...interface{}) { l.log.Panic().Msg(fmt.Sprint(args...)) }
func (l *ZerologLogger) Error(args ...interface{}) { l.log.Error().Msg(fmt.Sprint(args...)) }
func (l *ZerologLogger) Warn(args ...interface{})  { l.log.Warn().Msg(fmt.Sprint(args...)) }
func (l *ZerologLogger) Info(args ...interface{})  { l.log.Info().Msg(fmt.Sprint(args...)) }
func (l *ZerologLogger) Debug(args ...interface{}) { l.log.Debug().Msg(fmt.Sprint(args...)) }
func (l *ZerologLogger) Trace(args ...interface{}) { l.log.Trace().Msg(fmt.Sprint(args...)) }

func (l *ZerologLogger) Panicw(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Panic(), keysAndValues).Msg(msg)
}

func (l *ZerologLogger) Errorw(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Error(), keysAndValues).Msg(msg)
}

func (l *ZerologLogger) Warnw(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Warn(), keysAndValues).Msg(msg)
}

func (l *ZerologLogger) Infow(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Info(), keysAndValues).Msg(msg)
}

func (l *ZerologLogger) Debugw(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Debug(), keysAndValues).Msg(msg)
}

func (l *ZerologLogger) Tracew(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Trace(), keysAndValues).Msg(msg)
}

func (l *ZerologLogger) Panicf(format string, v ...interface{}) { l.log.Panic().Msgf(format, v...) }
func (l *ZerologLogger) Errorf(format string, v ...interface{}) { l.log.Error().Msgf(format, v...) }
func (l *ZerologLogger) Warnf(format string, v ...interface{})  { l.log.Warn().Msgf(format, v...) }
func (l *ZerologLogger) Infof(format string, v ...interface{})  { l.log.Info().Msgf(format, v...) }
func (l *ZerologLogger) Debugf(format string, v ...interface{}) { l.log.Debug().Msgf(format, v...) }
func (l *ZerologLogger) Tracef(format string, v ...interface{}) { l.log.Trace().Msgf(format, v...) }
