// Package support serves the public support ticket form.
package support

import (
	"github.com/gofiber/fiber/v2"

	supportdb "github.com/KittyCore/portfolio/internal/db/controller/support"
	"github.com/KittyCore/portfolio/internal/db/models"
	"github.com/KittyCore/portfolio/internal/notify"
	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/navigation"
)

const (
	// Path is the path to the support page.
	Path = "/support"

	// TemplateName is the name of the support template.
	TemplateName = "support"

	msgInvalid = "Please tell us your name, the page and the issue."
)

var intake = handler.Intake{ //nolint:gochecknoglobals
	Kind:    notify.KindSupport,
	Path:    Path,
	Success: "Support request submitted! We'll get back to you soon.",
	Failure: "Error submitting support request",
}

// Form is the posted support form. Email is optional.
type Form struct {
	Name  string `form:"name" validate:"required,max=200"`
	Email string `form:"email" validate:"omitempty,email,max=320"`
	Page  string `form:"page" validate:"required,max=200"`
	Issue string `form:"issue" validate:"required"`
}

// Service is the support handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Handler is the support handler.
var Handler = Service{}

// Init initializes the support handler.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if err := deps.Check(router); err != nil {
		return err
	}

	s.deps = deps

	router.Route(Path, func(r fiber.Router) {
		r.Get(handler.RootPath, s.Get)
		r.Post(handler.RootPath, s.Post)
	})

	return nil
}

// Get renders the support form.
func (s *Service) Get(c *fiber.Ctx) error {
	return handler.Render(c, TemplateName, navigation.Public("support", "Support"), fiber.Map{
		"Page": c.Query("page"),
	})
}

// Post stores a support ticket and notifies the site owner.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(Form)
	if err := handler.ParseForm(c, form); err != nil {
		return intake.Rejected(c, err, msgInvalid)
	}

	ticket := &models.SupportTicket{
		Name:  form.Name,
		Email: form.Email,
		Page:  form.Page,
		Issue: form.Issue,
	}

	err := supportdb.Create(s.deps.DB, ticket)

	return intake.Stored(c, err, s.deps.Notifier, func() notify.Message {
		return notify.SupportMessage(ticket)
	})
}
