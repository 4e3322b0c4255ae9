// Package daemon wires storage, mail, media and the web service together.
package daemon

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/memory/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"

	"github.com/KittyCore/portfolio/internal/auth"
	"github.com/KittyCore/portfolio/internal/config"
	"github.com/KittyCore/portfolio/internal/db"
	"github.com/KittyCore/portfolio/internal/db/dsn"
	"github.com/KittyCore/portfolio/internal/media"
	"github.com/KittyCore/portfolio/internal/notify"
	"github.com/KittyCore/portfolio/internal/web"
	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/session"
)

const sessionTable = "sessions"

// SendTimeout bounds one notification: the primary attempt and the fallback each get Timeout.
// Without a Timeout notifications are not bounded.
func SendTimeout(m config.Mail) time.Duration {
	if m.Timeout <= 0 {
		return 0
	}

	return 2*m.Timeout + time.Second //nolint:mnd
}

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
	dispatcher *notify.Dispatcher
}

// Start serves http until SIGINT or SIGTERM, then waits for pending notifications.
func (d *Daemon) Start() error {
	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)

	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	go func() {
		if err := d.webService.Start(addr); err != nil {
			log.Error().Err(err).Msg("web service stopped")
		}
	}()

	d.webService.WaitShutdown()

	log.Info().Msg("waiting for pending notifications ...")
	d.dispatcher.Wait()

	return nil
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	database, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	storage, err := sessionStorage(cfg)
	if err != nil {
		return nil, err
	}

	secure := !cfg.DevMode && strings.HasPrefix(cfg.Webserver.URL, "https://")

	dispatcher := notify.NewDispatcher(notify.NewSMTPSender(cfg.Mail), SendTimeout(cfg.Mail))

	deps := &handler.Deps{
		Cfg:      cfg,
		DB:       database,
		Sessions: session.New(storage, cfg.Webserver.Session.ExpiryTime, secure),
		Notifier: dispatcher,
		Converter: media.NewConverter(cfg.Media, media.FFmpeg{
			Path:    cfg.Media.FFmpegPath,
			Bitrate: cfg.Media.Bitrate,
		}),
		Verifier: auth.NewVerifier(cfg.Admin.Password),
	}

	if !auth.IsHash(cfg.Admin.Password) {
		log.Warn().Msg("admin password is stored in plain text, use the hash-password command")
	}

	webService, err := web.New(cfg, deps)
	if err != nil {
		return nil, err
	}

	return &Daemon{
		cfg:        cfg,
		webService: webService,
		dispatcher: dispatcher,
	}, nil
}

// sessionStorage keeps sessions next to the data. SQLite setups keep them in memory.
func sessionStorage(cfg *config.Config) (fiber.Storage, error) {
	switch cfg.DB.GormEngine {
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.PostgresURI(cfg),
			Table:         sessionTable,
		}), nil
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.MySQL(cfg),
			Table:         sessionTable,
		}), nil
	case config.EngineSQLite:
		log.Warn().Msg("sqlite engine: sessions are kept in memory and lost on restart")

		return memory.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownGormEngine, cfg.DB.GormEngine)
	}
}
