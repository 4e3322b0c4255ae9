// Package messages lists contact submissions in the admin area.
package messages

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	contactdb "github.com/KittyCore/portfolio/internal/db/controller/contact"
	"github.com/KittyCore/portfolio/internal/db/models"
	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/navigation"
)

const (
	// Path is the admin list of contact submissions.
	Path = "/messages-suggestions"

	// TemplateName is the name of the messages template.
	TemplateName = "admin/messages"
)

var mutation = handler.Mutation{Entity: "contact", Fallback: handler.AdminPath + Path} //nolint:gochecknoglobals

// Service is the messages handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Handler is the messages handler.
var Handler = Service{}

// Init registers the routes on the admin group.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if err := deps.Check(router); err != nil {
		return err
	}

	s.deps = deps

	router.Get(Path, s.List)
	router.Post("/contact/update-status/:id/:status", s.UpdateStatus)

	return nil
}

// List renders the submissions, optionally filtered by status.
func (s *Service) List(c *fiber.Ctx) error {
	filter := handler.StatusFilter[models.ContactStatus](c)

	rows, err := contactdb.List(s.deps.DB, filter)
	if err != nil {
		handler.LoadError(c, err, "messages")
	}

	counts, err := contactdb.CountByStatus(s.deps.DB)
	if err != nil {
		handler.LoadError(c, err, "message counts")
	}

	statuses := handler.StatusCounts(counts, models.ContactStatuses())

	return handler.Render(c, TemplateName, navigation.Admin("messages", "Messages & Suggestions"), fiber.Map{
		"Messages":     rows,
		"Statuses":     statuses,
		"Total":        handler.Total(statuses),
		"FilterStatus": string(filter),
	})
}

// UpdateStatus moves a submission to the status named in the path.
func (s *Service) UpdateStatus(c *fiber.Ctx) error {
	status := models.ContactStatus(c.Params("status"))

	id, err := handler.ParamID(c)
	if err == nil {
		err = contactdb.UpdateStatus(s.deps.DB, id, status)
	}

	return mutation.Done(c, id, err,
		fmt.Sprintf("Contact marked as %s", handler.StatusLabel(string(status))),
		"Error updating status",
	)
}
