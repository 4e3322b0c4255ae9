// Package apprequests manages app and website requests in the admin area.
package apprequests

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/KittyCore/portfolio/internal/db/controller/apprequest"
	"github.com/KittyCore/portfolio/internal/db/models"
	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/navigation"
)

const (
	// Path is the admin list of app requests.
	Path = "/app_requests"

	// TemplateName is the name of the app requests template.
	TemplateName = "admin/app_requests"

	// ArchivedQuery switches the list to archived requests.
	ArchivedQuery = "archived"
)

var mutation = handler.Mutation{Entity: "app_request", Fallback: handler.AdminPath + Path} //nolint:gochecknoglobals

// NotesForm is the posted notes update.
type NotesForm struct {
	Notes string `form:"notes"`
}

// Service is the app requests handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Handler is the app requests handler.
var Handler = Service{}

// Init registers the routes on the admin group.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if err := deps.Check(router); err != nil {
		return err
	}

	s.deps = deps

	router.Route(Path, func(r fiber.Router) {
		r.Get(handler.RootPath, s.List)
		r.Post("/update-status/:id/:status", s.UpdateStatus)
		r.Post("/update-notes/:id", s.UpdateNotes)
		r.Post("/:id/archive", s.Archive)
	})

	return nil
}

// List renders open requests filtered by status, or the archived requests.
func (s *Service) List(c *fiber.Ctx) error {
	var (
		rows     []models.AppRequest
		err      error
		filter   = handler.StatusFilter[models.AppRequestStatus](c)
		archived = c.QueryBool(ArchivedQuery)
	)

	if archived {
		rows, err = apprequest.ListArchived(s.deps.DB)
	} else {
		rows, err = apprequest.List(s.deps.DB, filter)
	}

	if err != nil {
		handler.LoadError(c, err, "app requests")
	}

	counts, err := apprequest.CountByStatus(s.deps.DB)
	if err != nil {
		handler.LoadError(c, err, "app request counts")
	}

	statuses := handler.StatusCounts(counts, models.AppRequestStatuses())

	return handler.Render(c, TemplateName, navigation.Admin("app_requests", "App Requests"), fiber.Map{
		"Requests":     rows,
		"Statuses":     statuses,
		"AllCount":     handler.Total(statuses),
		"FilterStatus": string(filter),
		"Archived":     archived,
	})
}

// UpdateStatus moves a request to the status named in the path.
func (s *Service) UpdateStatus(c *fiber.Ctx) error {
	status := models.AppRequestStatus(c.Params("status"))

	id, err := handler.ParamID(c)
	if err == nil {
		err = apprequest.UpdateStatus(s.deps.DB, id, status)
	}

	return mutation.Done(c, id, err,
		fmt.Sprintf("App request marked as %s", handler.StatusLabel(string(status))),
		"Error updating status",
	)
}

// UpdateNotes replaces the notes of a request.
func (s *Service) UpdateNotes(c *fiber.Ctx) error {
	form := new(NotesForm)

	id, err := handler.ParamID(c)
	if err == nil {
		err = c.BodyParser(form)
	}

	if err == nil {
		err = apprequest.UpdateNotes(s.deps.DB, id, form.Notes)
	}

	return mutation.Done(c, id, err, "Notes updated!", "Error updating notes")
}

// Archive hides a request from the open list.
func (s *Service) Archive(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err == nil {
		err = apprequest.Archive(s.deps.DB, id)
	}

	return mutation.Done(c, id, err, "App request archived!", "Error archiving request")
}
