package obslog

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// zerologLogger adapts a github.com/rs/zerolog.Logger to the Logger
// interface. zerolog is used directly as the one fixed backend; a
// single backend needs no generic pluggable-event facade on top.
type zerologLogger struct {
	log zerolog.Logger
}

// NewZerolog wraps a zerolog.Logger as a Logger. Pass zerolog.New(w)
// (optionally with .With().Timestamp().Logger() applied) as log.
func NewZerolog(log zerolog.Logger) Logger {
	return zerologLogger{log: log}
}

// NewZerologWriter is a convenience constructor building a leveled,
// timestamped JSON zerolog.Logger writing to w at the given level.
func NewZerologWriter(w io.Writer, level zerolog.Level) Logger {
	log := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return NewZerolog(log)
}

func (z zerologLogger) WithField(key string, value any) Logger {
	return zerologLogger{log: z.log.With().Interface(key, value).Logger()}
}

func (z zerologLogger) WithFields(fields map[string]any) Logger {
	return zerologLogger{log: z.log.With().Fields(fields).Logger()}
}

func (z zerologLogger) WithError(err error) Logger {
	return zerologLogger{log: z.log.With().Err(err).Logger()}
}

func (z zerologLogger) Debug(args ...any) { z.log.Debug().Msg(joinArgs(args)) }
func (z zerologLogger) Info(args ...any)  { z.log.Info().Msg(joinArgs(args)) }
func (z zerologLogger) Warn(args ...any)  { z.log.Warn().Msg(joinArgs(args)) }
func (z zerologLogger) Error(args ...any) { z.log.Error().Msg(joinArgs(args)) }

// joinArgs renders variadic log arguments the same way fmt.Sprint
// does: a space is added between two operands only when neither of
// them is a string, matching the conventional log.Logger.Info(args...)
// idiom.
func joinArgs(args []any) string {
	return fmt.Sprint(args...)
}
