package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/out"
)

type ConsoleLogger struct {
	base          zerolog.Logger
	defaultFields out.LogFields
	module        string
}

// NewConsoleLogger пишет в stdout: в local окружении человекочитаемо, иначе JSON
func NewConsoleLogger(timezone string, pretty bool) (*ConsoleLogger, error) {
	var w io.Writer = os.Stdout
	if pretty {
		w = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "2006-01-02 15:04:05.000",
		}
	}
	return NewLogger(w, timezone), nil
}

// NewLogger is the writer-agnostic constructor, used in tests.
func NewLogger(w io.Writer, timezone string) *ConsoleLogger {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	// Время в логах в таймзоне логгера, глобальный zerolog.TimestampFunc не трогаем
	base := zerolog.New(w).Hook(zerolog.HookFunc(func(e *zerolog.Event, _ zerolog.Level, _ string) {
		e.Time(zerolog.TimestampFieldName, time.Now().In(loc))
	}))

	return &ConsoleLogger{
		base:          base,
		defaultFields: make(out.LogFields),
	}
}

func (l *ConsoleLogger) WithFields(fields out.LogFields) out.LoggerPort {
	newLogger := &ConsoleLogger{
		base:          l.base,
		defaultFields: make(out.LogFields, len(l.defaultFields)+len(fields)),
		module:        l.module,
	}

	// Копируем существующие поля
	for k, v := range l.defaultFields {
		newLogger.defaultFields[k] = v
	}

	// Добавляем новые поля
	for k, v := range fields {
		newLogger.defaultFields[k] = v
	}

	return newLogger
}

func (l *ConsoleLogger) WithModule(module string) out.LoggerPort {
	return &ConsoleLogger{
		base:          l.base,
		defaultFields: l.defaultFields,
		module:        module,
	}
}

func (l *ConsoleLogger) Debug(event string, fields out.LogFields) {
	l.log(out.LogLevelDebug, event, fields)
}

func (l *ConsoleLogger) Info(event string, fields out.LogFields) {
	l.log(out.LogLevelInfo, event, fields)
}

func (l *ConsoleLogger) Warn(event string, fields out.LogFields) {
	l.log(out.LogLevelWarn, event, fields)
}

func (l *ConsoleLogger) Error(event string, fields out.LogFields) {
	l.log(out.LogLevelError, event, fields)
}

func (l *ConsoleLogger) log(level out.LogLevel, event string, fields out.LogFields) {
	module := l.module
	if module == "" {
		module = "unknown"
	}

	var e *zerolog.Event
	switch level {
	case out.LogLevelDebug:
		e = l.base.Debug()
	case out.LogLevelWarn:
		e = l.base.Warn()
	case out.LogLevelError:
		e = l.base.Error()
	default:
		e = l.base.Info()
	}

	e.Str("module", module).
		Fields(map[string]interface{}(l.defaultFields)).
		Fields(map[string]interface{}(fields)).
		Msg(event)
}
