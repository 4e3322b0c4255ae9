// Package handler holds what the page handlers share: their dependencies,
// rendering with the base layout, redirects and form validation.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/KittyCore/portfolio/internal/auth"
	"github.com/KittyCore/portfolio/internal/config"
	"github.com/KittyCore/portfolio/internal/media"
	"github.com/KittyCore/portfolio/internal/notify"
	"github.com/KittyCore/portfolio/internal/web/session"
)

// ErrNilDeps is returned by Init when a required dependency is missing.
var ErrNilDeps = errors.New("router, cfg or db is nil")

// Deps are the shared dependencies handed to every handler.
type Deps struct {
	Cfg       *config.Config
	DB        *gorm.DB
	Sessions  *session.Store
	Notifier  notify.Notifier
	Converter *media.Converter
	Verifier  *auth.Verifier
}

// Check returns ErrNilDeps unless router, config and database are set.
func (d *Deps) Check(router fiber.Router) error {
	if router == nil || d == nil || d.Cfg == nil || d.DB == nil {
		return ErrNilDeps
	}

	return nil
}

// Service is the interface for a web handler service.
type Service interface {
	Init(router fiber.Router, deps *Deps) error
}
