// Package contact serves the public contact form.
package contact

import (
	"github.com/gofiber/fiber/v2"

	contactdb "github.com/KittyCore/portfolio/internal/db/controller/contact"
	"github.com/KittyCore/portfolio/internal/db/models"
	"github.com/KittyCore/portfolio/internal/notify"
	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/navigation"
)

const (
	// Path is the path to the contact page.
	Path = "/contact"

	// TemplateName is the name of the contact template.
	TemplateName = "contact"

	msgInvalid = "Please fill in your name, a valid email address and a message."
)

var intake = handler.Intake{ //nolint:gochecknoglobals
	Kind:    notify.KindContact,
	Path:    Path,
	Success: "Message sent successfully!",
	Failure: "Error saving contact submission",
}

// Form is the posted contact form.
type Form struct {
	Name    string `form:"HumanName" validate:"required,max=200"`
	Email   string `form:"EmailAddy" validate:"required,email,max=320"`
	Message string `form:"message" validate:"required"`
}

// Service is the contact handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Handler is the contact handler.
var Handler = Service{}

// Init initializes the contact handler.
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

// Get renders the contact form.
func (s *Service) Get(c *fiber.Ctx) error {
	return handler.Render(c, TemplateName, navigation.Public("contact", "Contact"), nil)
}

// Post stores a contact submission and notifies the site owner.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(Form)
	if err := handler.ParseForm(c, form); err != nil {
		return intake.Rejected(c, err, msgInvalid)
	}

	sub := &models.ContactSubmission{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	}

	err := contactdb.Create(s.deps.DB, sub)

	return intake.Stored(c, err, s.deps.Notifier, func() notify.Message {
		return notify.ContactMessage(sub)
	})
}
