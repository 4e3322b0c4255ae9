// Package review serves the public game review form.
package review

import (
	"github.com/gofiber/fiber/v2"

	feedbackdb "github.com/KittyCore/portfolio/internal/db/controller/feedback"
	"github.com/KittyCore/portfolio/internal/db/models"
	"github.com/KittyCore/portfolio/internal/notify"
	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/navigation"
)

const (
	// Path is the path to the review page.
	Path = "/review"

	// TemplateName is the name of the review template.
	TemplateName = "review"

	msgInvalid = "❌ Please add your name, a review and a rating from 1 to 5 stars."
)

var intake = handler.Intake{ //nolint:gochecknoglobals
	Kind:    notify.KindFeedback,
	Path:    Path,
	Success: "⭐ Thanks for your feedback! You're pawsome!",
	Failure: "❌ Error submitting feedback. Please try again.",
}

// Form is the posted review. Stars arrive as text and must parse to 1..5.
type Form struct {
	Name   string `form:"name" validate:"required,max=200"`
	Email  string `form:"email" validate:"omitempty,email,max=320"`
	Stars  int    `form:"stars" validate:"min=1,max=5"`
	Review string `form:"review" validate:"required"`
}

// Service is the review handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Handler is the review handler.
var Handler = Service{}

// Init initializes the review handler.
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

// Get renders the review form.
func (s *Service) Get(c *fiber.Ctx) error {
	return handler.Render(c, TemplateName, navigation.Public("review", "Review the Game"), fiber.Map{
		"Stars": []int{feedbackdb.MinStars, 2, 3, 4, feedbackdb.MaxStars},
	})
}

// Post stores a review and notifies the site owner.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(Form)
	if err := handler.ParseForm(c, form); err != nil {
		return intake.Rejected(c, err, msgInvalid)
	}

	fb := &models.GameFeedback{
		Name:   form.Name,
		Email:  form.Email,
		Stars:  form.Stars,
		Review: form.Review,
	}

	err := feedbackdb.Create(s.deps.DB, fb)

	return intake.Stored(c, err, s.deps.Notifier, func() notify.Message {
		return notify.FeedbackMessage(fb)
	})
}
