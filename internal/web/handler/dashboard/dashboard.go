// Package dashboard provides the admin dashboard with a summary of every inbox.
package dashboard

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/KittyCore/portfolio/internal/db/controller/apprequest"
	contactdb "github.com/KittyCore/portfolio/internal/db/controller/contact"
	feedbackdb "github.com/KittyCore/portfolio/internal/db/controller/feedback"
	supportdb "github.com/KittyCore/portfolio/internal/db/controller/support"
	wishlistdb "github.com/KittyCore/portfolio/internal/db/controller/wishlist"
	"github.com/KittyCore/portfolio/internal/db/models"
	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/navigation"
)

const (
	// TemplateName is the name of the dashboard template.
	TemplateName = "admin/dashboard"

	// RecentItems is the number of rows listed per section.
	RecentItems = 5
)

// Section summarizes one entity.
type Section[T any] struct {
	Statuses []handler.StatusCount
	Open     int64 // rows in the initial state
	Total    int64
	Recent   []T
}

func newSection[T any](statuses []handler.StatusCount, recent []T) Section[T] {
	s := Section[T]{Statuses: statuses, Total: handler.Total(statuses), Recent: recent}
	if len(statuses) > 0 {
		s.Open = statuses[0].Count
	}

	return s
}

// Data represents the complete dashboard data.
type Data struct {
	Contacts     Section[models.ContactSubmission]
	Tickets      Section[models.SupportTicket]
	Reviews      Section[models.GameFeedback]
	AppRequests  Section[models.AppRequest]
	Wishlist     Section[models.WishlistItem]
	AverageStars string
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init registers the dashboard on the admin group.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if err := deps.Check(router); err != nil {
		return err
	}

	s.deps = deps

	router.Get(handler.RootPath, s.Get)

	return nil
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.Admin("dashboard", "Dashboard")

	data, err := s.load()
	if err != nil {
		handler.LoadError(c, err, "dashboard")
	}

	log.Debug().
		Int64("unread_contacts", data.Contacts.Open).
		Int64("new_tickets", data.Tickets.Open).
		Int64("new_reviews", data.Reviews.Open).
		Int64("app_requests", data.AppRequests.Total).
		Msg("dashboard loaded")

	return handler.Render(c, TemplateName, nav, fiber.Map{
		"Data": data,
	})
}

// load reads every summary. It stops at the first error and returns what it has.
func (s *Service) load() (Data, error) {
	var data Data

	db := s.deps.DB

	contactCounts, err := contactdb.CountByStatus(db)
	if err != nil {
		return data, err
	}

	contacts, err := contactdb.Recent(db, RecentItems)
	if err != nil {
		return data, err
	}

	data.Contacts = newSection(handler.StatusCounts(contactCounts, models.ContactStatuses()), contacts)

	ticketCounts, err := supportdb.CountByStatus(db)
	if err != nil {
		return data, err
	}

	tickets, err := supportdb.Recent(db, RecentItems)
	if err != nil {
		return data, err
	}

	data.Tickets = newSection(handler.StatusCounts(ticketCounts, models.SupportStatuses()), tickets)

	reviewCounts, err := feedbackdb.CountByStatus(db)
	if err != nil {
		return data, err
	}

	reviews, err := feedbackdb.Recent(db, RecentItems)
	if err != nil {
		return data, err
	}

	data.Reviews = newSection(handler.StatusCounts(reviewCounts, models.FeedbackStatuses()), reviews)

	avg, err := feedbackdb.AverageStars(db)
	if err != nil {
		return data, err
	}

	data.AverageStars = fmt.Sprintf("%.1f", avg)

	stats, err := apprequest.GetStats(db, RecentItems)
	if err != nil {
		return data, err
	}

	data.AppRequests = newSection(handler.StatusCounts(stats.ByStatus, models.AppRequestStatuses()), stats.Recent)

	wishCounts, err := wishlistdb.CountByStatus(db)
	if err != nil {
		return data, err
	}

	data.Wishlist = newSection[models.WishlistItem](handler.StatusCounts(wishCounts, models.WishlistStatuses()), nil)

	return data, nil
}
