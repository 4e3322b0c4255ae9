// Package tickets lists support tickets in the admin area.
package tickets

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	supportdb "github.com/KittyCore/portfolio/internal/db/controller/support"
	"github.com/KittyCore/portfolio/internal/db/models"
	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/navigation"
)

const (
	// Path is the admin list of support tickets.
	Path = "/support"

	// TemplateName is the name of the tickets template.
	TemplateName = "admin/support"
)

var mutation = handler.Mutation{Entity: "support", Fallback: handler.AdminPath + Path} //nolint:gochecknoglobals

// Service is the tickets handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Handler is the tickets handler.
var Handler = Service{}

// Init registers the routes on the admin group.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if err := deps.Check(router); err != nil {
		return err
	}

	s.deps = deps

	router.Get(Path, s.List)
	router.Post(Path+"/:id/status/:status", s.UpdateStatus)

	return nil
}

// List renders the tickets, optionally filtered by status.
func (s *Service) List(c *fiber.Ctx) error {
	filter := handler.StatusFilter[models.SupportStatus](c)

	rows, err := supportdb.List(s.deps.DB, filter)
	if err != nil {
		handler.LoadError(c, err, "support tickets")
	}

	counts, err := supportdb.CountByStatus(s.deps.DB)
	if err != nil {
		handler.LoadError(c, err, "ticket counts")
	}

	return handler.Render(c, TemplateName, navigation.Admin("support", "Support Tickets"), fiber.Map{
		"Tickets":      rows,
		"Statuses":     handler.StatusCounts(counts, models.SupportStatuses()),
		"NewCount":     counts[models.SupportNew],
		"FilterStatus": string(filter),
	})
}

// UpdateStatus moves a ticket to the status named in the path.
func (s *Service) UpdateStatus(c *fiber.Ctx) error {
	status := models.SupportStatus(c.Params("status"))

	id, err := handler.ParamID(c)
	if err == nil {
		err = supportdb.UpdateStatus(s.deps.DB, id, status)
	}

	return mutation.Done(c, id, err,
		fmt.Sprintf("Ticket marked as %s!", handler.StatusLabel(string(status))),
		"Error updating status",
	)
}
