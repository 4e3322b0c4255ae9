package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/session"
)

// RequireAdmin lets requests with a valid admin session through and
// redirects everything else to the login page.
func RequireAdmin(store *session.Store) fiber.Handler {
	if store == nil {
		panic("session store is nil")
	}

	return func(c *fiber.Ctx) error {
		data, err := store.Current(c)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) {
				log.Warn().Err(err).Str("path", c.Path()).Msg("can't read admin session")
			}

			return c.Redirect(handler.LoginPath)
		}

		if !data.Admin {
			return c.Redirect(handler.LoginPath)
		}

		c.Locals(handler.LocalsAdmin, true)

		return c.Next()
	}
}

// MarkAdmin sets the admin local for requests that carry a valid session
// without enforcing one, so public pages can show the admin menu entry.
func MarkAdmin(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Cookies(session.CookieName) == "" {
			return c.Next()
		}

		if data, err := store.Current(c); err == nil && data.Admin {
			c.Locals(handler.LocalsAdmin, true)
		}

		return c.Next()
	}
}
