// Package logger configures the global zerolog logger of the portfolio service.
package logger

import (
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelWriter splits log lines by level onto separate writers.
type LevelWriter struct {
	io.Writer
	ErrorWriter io.Writer
	InfoWriter  io.Writer
	TraceWriter io.Writer
	WarnWriter  io.Writer
}

// WriteLevel implements zerolog.LevelWriter.
// Trace and warn have their own writer, debug joins info, everything above warn goes to error.
func (lw *LevelWriter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	var w io.Writer

	switch {
	case l == zerolog.Disabled:
		return 0, nil
	case l == zerolog.TraceLevel:
		w = lw.TraceWriter
	case l == zerolog.WarnLevel:
		w = lw.WarnWriter
	case l > zerolog.WarnLevel:
		w = lw.ErrorWriter
	default:
		w = lw.InfoWriter
	}

	return w.Write(p) //nolint:wrapcheck
}

// Init the zerolog logger.
// With neither console nor file enabled the service logs nothing.
func Init(cfg Log) error {
	logLevel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "loglevel %s is not supported", cfg.LogLevel)
	}

	if cfg.ServiceName == "" {
		return ErrServiceNameIsEmpty
	}

	if cfg.AppName == "" {
		return ErrAppNameIsEmpty
	}

	stack := logLevel == zerolog.TraceLevel
	if stack {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.ErrorHandler = ErrorHandler //nolint:reassign

	var writers []io.Writer

	if cfg.Console.Enabled {
		writers = append(writers, NewConsoleWriter(cfg))
	}

	if cfg.File.Enabled {
		if fw := newRollingLevelFiles(cfg.File); fw != nil {
			writers = append(writers, fw)
		}
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Hook(NewPrometheusHook(cfg.ServiceName)).
		With().
		Timestamp().
		Str("app", cfg.AppName)

	switch {
	case cfg.ReportCaller && stack:
		ctx = ctx.Stack()
	case cfg.ReportCaller:
		ctx = ctx.Caller()
	}

	log.Logger = ctx.Logger()

	return nil
}

// NewRollingFile returns a lumberjack writer for one rotation below dir.
func NewRollingFile(dir string, r Rotation) io.Writer {
	return &lumberjack.Logger{
		Filename:   path.Join(dir, r.Name),
		MaxSize:    r.MaxSize,
		MaxAge:     r.MaxAge,
		MaxBackups: r.MaxBackups,
	}
}

func newRollingLevelFiles(f LogFile) io.Writer {
	if err := os.MkdirAll(f.Path, 0o750); err != nil { //nolint:mnd
		log.Error().Err(err).Str("path", f.Path).Msg("can't create log directory")

		return nil
	}

	return &LevelWriter{
		ErrorWriter: NewRollingFile(f.Path, f.Error),
		InfoWriter:  NewRollingFile(f.Path, f.Info),
		TraceWriter: NewRollingFile(f.Path, f.Trace),
		WarnWriter:  NewRollingFile(f.Path, f.Warn),
	}
}

// NewConsoleWriter writes info and debug to stdout, everything else to stderr.
func NewConsoleWriter(cfg Log) io.Writer {
	wrap := func(out io.Writer) io.Writer {
		if !cfg.Console.UseConsoleWriter {
			return out
		}

		return zerolog.ConsoleWriter{Out: out, TimeFormat: zerolog.TimeFieldFormat}
	}

	return &LevelWriter{
		ErrorWriter: wrap(os.Stderr),
		InfoWriter:  wrap(os.Stdout),
		TraceWriter: wrap(os.Stderr),
		WarnWriter:  wrap(os.Stderr),
	}
}
