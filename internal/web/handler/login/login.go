package login

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/KittyCore/portfolio/internal/auth"
	"github.com/KittyCore/portfolio/internal/web/flash"
	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/navigation"
	"github.com/KittyCore/portfolio/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = handler.LoginPath

	// TemplateName is the name of the login template.
	TemplateName = "login"

	msgInvalidPassword = "Invalid password"
	msgLoginOK         = "Login successful!"
)

// ErrNoVerifier is returned by Init without a session store or verifier.
var ErrNoVerifier = errors.New("session store or verifier is nil")

// Form is the posted login form.
type Form struct {
	Password string `form:"password"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if err := deps.Check(router); err != nil {
		return err
	}

	if deps.Sessions == nil || deps.Verifier == nil {
		return ErrNoVerifier
	}

	s.deps = deps

	// register routes
	router.Route(Path, func(r fiber.Router) {
		r.Get(handler.RootPath, s.Get)
		r.Post(handler.RootPath, s.Post)
	})

	return nil
}

func (s *Service) render(c *fiber.Ctx, errMsg string) error {
	data := fiber.Map{}
	if errMsg != "" {
		data["error"] = errMsg
		c.Status(fiber.StatusUnauthorized)
	}

	return handler.Render(c, TemplateName, navigation.Public("login", "Admin Login"), data)
}

// Get handles the login page rendering. A logged in admin goes straight to the dashboard.
func (s *Service) Get(c *fiber.Ctx) error {
	if data, err := s.deps.Sessions.Current(c); err == nil && data.Admin {
		return c.Redirect(handler.AdminPath)
	}

	return s.render(c, "")
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		log.Debug().Err(err).Msg("can't parse login form")
		return s.render(c, ErrInvalidFormData.Error())
	}

	if err := s.deps.Verifier.Verify(form.Password); err != nil {
		if !errors.Is(err, auth.ErrInvalidPassword) && !errors.Is(err, auth.ErrEmptyPassword) {
			log.Error().Err(err).Msg("password verification failed")
		}

		log.Warn().Str("ip", c.IP()).Msg("failed admin login")

		return s.render(c, msgInvalidPassword)
	}

	if err := s.deps.Sessions.Start(c, &session.Data{Admin: true, LoginAt: time.Now()}); err != nil {
		log.Error().Err(err).Msg("failed to start session")
		return s.render(c, ErrInternalServerError.Error())
	}

	log.Info().Str("ip", c.IP()).Msg("admin logged in")
	flash.Success(c, msgLoginOK)

	return c.Redirect(handler.AdminPath)
}
