// Package request serves the public app and website request form.
package request

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KittyCore/portfolio/internal/db/controller/apprequest"
	"github.com/KittyCore/portfolio/internal/db/models"
	"github.com/KittyCore/portfolio/internal/notify"
	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/navigation"
)

const (
	// Path is the path to the request page.
	Path = "/request"

	// TemplateName is the name of the request template.
	TemplateName = "request"

	msgInvalid = "Please add your name, a valid email address and some project details."
)

var intake = handler.Intake{ //nolint:gochecknoglobals
	Kind:    notify.KindAppRequest,
	Path:    Path,
	Success: "🚀 Request received! I'll be in touch soon.",
	Failure: "❌ Error submitting request. Please try again.",
}

// ProjectTypes are offered in the type select.
var ProjectTypes = []string{"Website", "Web App", "Mobile App", "Game", "Other"} //nolint:gochecknoglobals

// Form is the posted request.
type Form struct {
	Name     string `form:"name" validate:"required,max=200"`
	Email    string `form:"email" validate:"required,email,max=320"`
	Phone    string `form:"phone" validate:"max=50"`
	Type     string `form:"type" validate:"max=100"`
	Timeline string `form:"timeline" validate:"max=100"`
	Budget   string `form:"budget" validate:"max=100"`
	Details  string `form:"details" validate:"required"`
}

// Service is the request handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Handler is the request handler.
var Handler = Service{}

// Init initializes the request handler.
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

// Get renders the request form.
func (s *Service) Get(c *fiber.Ctx) error {
	return handler.Render(c, TemplateName, navigation.Public("request", "Request an App"), fiber.Map{
		"ProjectTypes": ProjectTypes,
	})
}

// Post stores an app request and notifies the site owner.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(Form)
	if err := handler.ParseForm(c, form); err != nil {
		return intake.Rejected(c, err, msgInvalid)
	}

	req := &models.AppRequest{
		Name:            form.Name,
		Email:           form.Email,
		Phone:           form.Phone,
		Type:            form.Type,
		ProjectTimeline: form.Timeline,
		Budget:          form.Budget,
		ProjectDetails:  form.Details,
	}

	err := apprequest.Create(s.deps.DB, req)

	return intake.Stored(c, err, s.deps.Notifier, func() notify.Message {
		return notify.AppRequestMessage(req)
	})
}
