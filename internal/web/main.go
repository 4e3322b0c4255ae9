package web

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/KittyCore/portfolio/internal/config"
	fiberlog "github.com/KittyCore/portfolio/internal/logger/adapter/fiber"
	"github.com/KittyCore/portfolio/internal/notify"
	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/handler/admin/apprequests"
	adminfeedback "github.com/KittyCore/portfolio/internal/web/handler/admin/feedback"
	"github.com/KittyCore/portfolio/internal/web/handler/admin/messages"
	"github.com/KittyCore/portfolio/internal/web/handler/admin/tickets"
	adminwishlist "github.com/KittyCore/portfolio/internal/web/handler/admin/wishlist"
	"github.com/KittyCore/portfolio/internal/web/handler/audio"
	"github.com/KittyCore/portfolio/internal/web/handler/contact"
	"github.com/KittyCore/portfolio/internal/web/handler/dashboard"
	"github.com/KittyCore/portfolio/internal/web/handler/login"
	"github.com/KittyCore/portfolio/internal/web/handler/logout"
	"github.com/KittyCore/portfolio/internal/web/handler/page"
	"github.com/KittyCore/portfolio/internal/web/handler/request"
	"github.com/KittyCore/portfolio/internal/web/handler/review"
	"github.com/KittyCore/portfolio/internal/web/handler/support"
	authmiddleware "github.com/KittyCore/portfolio/internal/web/middleware/auth"
)

const (
	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"

	staticPath = "/static"
	mb         = 1024 * 1024
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown blocks until SIGINT or SIGTERM and shuts the http server down.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown fails the check alive endpoint for the configured time, then stops the server.
func (s *Service) Shutdown() {
	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// CookieKey derives the cookie encryption key from the configured secret.
func CookieKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))

	return base64.StdEncoding.EncodeToString(sum[:])
}

func newTemplateEngine(cfg *config.Config) *html.Engine {
	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in debug mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	templateEngine.AddFunc("label", handler.StatusLabel)
	templateEngine.AddFunc("stars", notify.Stars)
	templateEngine.AddFunc("join", strings.Join)
	templateEngine.AddFunc("date", func(t time.Time) string {
		if t.IsZero() {
			return ""
		}

		return t.Local().Format("Jan 2, 2006 15:04")
	})

	return templateEngine
}

// New creates the web service and registers every handler.
func New(cfg *config.Config, deps *handler.Deps) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if deps == nil || deps.DB == nil || deps.Sessions == nil {
		return nil, handler.ErrNilDeps
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			BodyLimit:      cfg.Webserver.BodyLimitMB * mb,
			Views:          newTemplateEngine(cfg),
		},
	)

	service := &Service{
		cfg: cfg,
		App: app,
	}
	service.alive.Store(true)

	app.Use(recover.New())
	app.Use(fiberlog.New(fiberlog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
		SkipPrefixes:  []string{staticPath + "/", MetricsPath},
	}))
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: CookieKey(cfg.Webserver.SecretKey),
	}))

	// serve embedded static files
	app.Use(staticPath,
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	app.Use(func(c *fiber.Ctx) error {
		c.Locals(handler.LocalsSiteTitle, cfg.Title)
		return c.Next()
	})
	app.Use(authmiddleware.MarkAdmin(deps.Sessions))

	if err := register(app, deps); err != nil {
		return nil, err
	}

	return service, nil
}

func register(app *fiber.App, deps *handler.Deps) error {
	public := []handler.Service{
		&page.Handler,
		&contact.Handler,
		&support.Handler,
		&review.Handler,
		&request.Handler,
		&audio.Handler,
		&login.Handler,
		&logout.Handler,
	}

	for _, h := range public {
		if err := h.Init(app, deps); err != nil {
			return err
		}
	}

	// registered after login and logout, which stay reachable without a session
	admin := app.Group(handler.AdminPath, authmiddleware.RequireAdmin(deps.Sessions))

	for _, h := range []handler.Service{
		&dashboard.Handler,
		&messages.Handler,
		&tickets.Handler,
		&adminfeedback.Handler,
		&adminwishlist.Handler,
		&apprequests.Handler,
	} {
		if err := h.Init(admin, deps); err != nil {
			return err
		}
	}

	return nil
}
