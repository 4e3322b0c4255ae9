package logout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/KittyCore/portfolio/internal/web/flash"
	"github.com/KittyCore/portfolio/internal/web/handler"
)

// Service is the logout handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Handler is the logout handler.
var Handler = Service{}

// Init initializes the logout handler.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if err := deps.Check(router); err != nil {
		return err
	}

	if deps.Sessions == nil {
		return handler.ErrNilDeps
	}

	s.deps = deps

	// logout route (outside auth middleware protection)
	router.Get(handler.LogoutPath, s.Logout)
	router.Post(handler.LogoutPath, s.Logout)

	return nil
}

// Logout handles admin logout by deleting the session.
func (s *Service) Logout(c *fiber.Ctx) error {
	if err := s.deps.Sessions.Destroy(c); err != nil {
		log.Error().Err(err).Msg("failed to delete session")
	}

	flash.Success(c, "Logged out successfully")

	return c.Redirect(handler.RootPath)
}
