// Package feedback lists game reviews in the admin area and promotes them to the wishlist.
package feedback

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/KittyCore/portfolio/internal/db/controller"
	feedbackdb "github.com/KittyCore/portfolio/internal/db/controller/feedback"
	"github.com/KittyCore/portfolio/internal/db/controller/wishlist"
	"github.com/KittyCore/portfolio/internal/db/models"
	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/navigation"
)

const (
	// Path is the admin list of game reviews.
	Path = "/game-feedback"

	// TemplateName is the name of the feedback template.
	TemplateName = "admin/feedback"

	msgPromoted = "✨ Added to wishlist successfully!"
	msgNotFound = "❌ Feedback not found"
	msgPromote  = "❌ Error adding to wishlist"
)

var mutation = handler.Mutation{Entity: "feedback", Fallback: handler.AdminPath + Path} //nolint:gochecknoglobals

// Service is the feedback handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Handler is the feedback handler.
var Handler = Service{}

// Init registers the routes on the admin group.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if err := deps.Check(router); err != nil {
		return err
	}

	s.deps = deps

	router.Get(Path, s.List)
	router.Post("/feedback/:id/status/:status", s.UpdateStatus)
	router.Post("/feedback/:id/add-to-wishlist", s.AddToWishlist)

	return nil
}

// List renders the reviews, optionally filtered by status.
func (s *Service) List(c *fiber.Ctx) error {
	filter := handler.StatusFilter[models.FeedbackStatus](c)

	rows, err := feedbackdb.List(s.deps.DB, filter)
	if err != nil {
		handler.LoadError(c, err, "game feedback")
	}

	counts, err := feedbackdb.CountByStatus(s.deps.DB)
	if err != nil {
		handler.LoadError(c, err, "feedback counts")
	}

	avg, err := feedbackdb.AverageStars(s.deps.DB)
	if err != nil {
		handler.LoadError(c, err, "average rating")
	}

	return handler.Render(c, TemplateName, navigation.Admin("feedback", "Game Feedback"), fiber.Map{
		"Reviews":      rows,
		"Statuses":     handler.StatusCounts(counts, models.FeedbackStatuses()),
		"NewCount":     counts[models.FeedbackNew],
		"AverageStars": fmt.Sprintf("%.1f", avg),
		"FilterStatus": string(filter),
	})
}

// UpdateStatus moves a review to the status named in the path.
func (s *Service) UpdateStatus(c *fiber.Ctx) error {
	status := models.FeedbackStatus(c.Params("status"))

	id, err := handler.ParamID(c)
	if err == nil {
		err = feedbackdb.UpdateStatus(s.deps.DB, id, status)
	}

	return mutation.Done(c, id, err,
		fmt.Sprintf("Review marked as %s!", handler.StatusLabel(string(status))),
		"Error updating status",
	)
}

// AddToWishlist copies a review into a new wishlist item and marks the review.
func (s *Service) AddToWishlist(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err == nil {
		_, err = wishlist.PromoteFeedback(s.deps.DB, id)
	}

	failure := msgPromote
	if errors.Is(err, controller.ErrNotFound) || errors.Is(err, controller.ErrInvalidID) {
		failure = msgNotFound
	}

	return mutation.Done(c, id, err, msgPromoted, failure)
}
