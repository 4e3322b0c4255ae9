// Package fiber provides the zerolog based access log middleware.
package fiber

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KittyCore/portfolio/internal/logger"
)

// Config implements fiber middleware struct.
type Config struct {
	// Next defines a function to skip this middleware when returned true.
	//
	// Optional. Default: nil
	Next func(c *fiber.Ctx) bool

	// Config of the logger.
	Config logger.Log

	// CacheControlError max-age caching on chain errors.
	CacheControlError string

	// CheckAliveURI for disabling logging of check alive http calls.
	CheckAliveURI string

	// SkipPrefixes are path prefixes that are served but never logged (static assets, metrics).
	SkipPrefixes []string
}

// ConfigDefault is the default config for fiber.
var ConfigDefault = Config{ //nolint:gochecknoglobals
	CacheControlError: "max-age=0",
}

func configDefault(config ...Config) Config {
	if len(config) < 1 {
		return ConfigDefault
	}

	cfg := config[0]
	if cfg.CacheControlError == "" {
		cfg.CacheControlError = ConfigDefault.CacheControlError
	}

	return cfg
}

// New creates a new fiber access logging middleware using zerolog.
func New(config ...Config) fiber.Handler {
	var (
		cfg        = configDefault(config...)
		once       sync.Once
		errHandler fiber.ErrorHandler
	)

	accessLog := zerolog.New(zerolog.MultiLevelWriter(writers(&cfg.Config)...)).
		With().
		Timestamp().
		Logger().
		Level(zerolog.NoLevel)

	return func(ctx *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(ctx) {
			return ctx.Next()
		}

		once.Do(func() {
			errHandler = ctx.App().ErrorHandler
		})

		start := time.Now()

		chainErr := ctx.Next()
		if chainErr != nil {
			if errH := errHandler(ctx, chainErr); errH != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError) //nolint:errcheck
				ctx.Response().Header.Set(fiber.HeaderCacheControl, cfg.CacheControlError)
			}
		}

		elapsed := time.Since(start).Seconds()
		ctx.Response().Header.Set("X-Performance", strconv.FormatFloat(elapsed, 'f', 6, 64))

		// fasthttp normalizes //a to /a, ctx.Path() keeps what the client sent
		p := ctx.Path()
		if cfg.skip(p) {
			return nil
		}

		if q := ctx.Request().URI().QueryString(); len(q) > 0 {
			p += "?" + string(q)
		}

		event := accessLog.Log().
			Str("IP", ctx.IP()).
			Int("status", ctx.Response().StatusCode()).
			Float64("X-Performance", elapsed).
			Str("URI", p).
			Str("method", ctx.Method()).
			Bytes("host", ctx.Request().Host()).
			Str(fiber.HeaderXForwardedFor, ctx.Get(fiber.HeaderXForwardedFor)).
			Str(fiber.HeaderUserAgent, ctx.Get(fiber.HeaderUserAgent)).
			Str(fiber.HeaderReferer, ctx.Get(fiber.HeaderReferer))

		if chainErr != nil {
			event.Err(chainErr)
		}

		event.Send()

		return nil
	}
}

func (cfg *Config) skip(p string) bool {
	if cfg.Config.DisableCheckAlive && cfg.CheckAliveURI != "" && p == cfg.CheckAliveURI {
		return true
	}

	for _, prefix := range cfg.SkipPrefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}

	return false
}

func writers(cfg *logger.Log) []io.Writer {
	var out []io.Writer

	if cfg.File.Enabled {
		if err := os.MkdirAll(cfg.File.Path, 0o750); err != nil { //nolint:mnd
			log.Error().Err(err).Str("path", cfg.File.Path).Msg("can't create log directory")
		} else {
			out = append(out, logger.NewRollingFile(cfg.File.Path, cfg.File.Access))
		}
	}

	// console access logs need both flags
	if cfg.Console.Enabled && cfg.EnableAccessLogToConsole {
		if cfg.Console.UseConsoleWriter {
			out = append(out, zerolog.ConsoleWriter{
				Out:          os.Stdout,
				TimeFormat:   zerolog.TimeFieldFormat,
				PartsExclude: []string{"level"},
			})
		} else {
			out = append(out, os.Stdout)
		}
	}

	return out
}
