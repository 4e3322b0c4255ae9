// Package wishlist manages the enhancement wishlist in the admin area.
package wishlist

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	wishlistdb "github.com/KittyCore/portfolio/internal/db/controller/wishlist"
	"github.com/KittyCore/portfolio/internal/db/models"
	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/navigation"
)

const (
	// Path is the admin wishlist page.
	Path = "/wishlist"

	// TemplateName is the name of the wishlist template.
	TemplateName = "admin/wishlist"

	// ArchivedQuery switches the list to archived items.
	ArchivedQuery = "archived"

	defaultSource = "Me"
)

var mutation = handler.Mutation{Entity: "wishlist", Fallback: handler.AdminPath + Path} //nolint:gochecknoglobals

// AddForm is the posted new item.
type AddForm struct {
	Source          string `form:"source" validate:"max=200"`
	EnhancementType string `form:"enhancement_type" validate:"required,max=100"`
	Details         string `form:"details" validate:"required"`
	Notes           string `form:"notes"`
}

// NotesForm is the posted notes update.
type NotesForm struct {
	Notes string `form:"notes"`
}

// Service is the wishlist handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Handler is the wishlist handler.
var Handler = Service{}

// Init registers the routes on the admin group.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if err := deps.Check(router); err != nil {
		return err
	}

	s.deps = deps

	router.Route(Path, func(r fiber.Router) {
		r.Get(handler.RootPath, s.List)
		r.Post("/add", s.Add)
		r.Post("/update-status/:id/:status", s.UpdateStatus)
		r.Post("/update-notes/:id", s.UpdateNotes)
		r.Post("/:id/archive", s.Archive)
		r.Post("/:id/delete", s.Delete)
	})

	return nil
}

// List renders open items filtered by status, or the archived items.
func (s *Service) List(c *fiber.Ctx) error {
	var (
		items    []models.WishlistItem
		err      error
		filter   = handler.StatusFilter[models.WishlistStatus](c)
		archived = c.QueryBool(ArchivedQuery)
	)

	if archived {
		items, err = wishlistdb.ListArchived(s.deps.DB)
	} else {
		items, err = wishlistdb.List(s.deps.DB, filter)
	}

	if err != nil {
		handler.LoadError(c, err, "wishlist")
	}

	counts, err := wishlistdb.CountByStatus(s.deps.DB)
	if err != nil {
		handler.LoadError(c, err, "wishlist counts")
	}

	statuses := handler.StatusCounts(counts, models.WishlistStatuses())

	return handler.Render(c, TemplateName, navigation.Admin("wishlist", "Wishlist"), fiber.Map{
		"Items":        items,
		"Statuses":     statuses,
		"AllCount":     handler.Total(statuses),
		"FilterStatus": string(filter),
		"Archived":     archived,
	})
}

// Add creates an item entered by hand.
func (s *Service) Add(c *fiber.Ctx) error {
	form := new(AddForm)

	err := handler.ParseForm(c, form)
	if err == nil {
		if form.Source == "" {
			form.Source = defaultSource
		}

		err = wishlistdb.Create(s.deps.DB, &models.WishlistItem{
			Source:          form.Source,
			EnhancementType: form.EnhancementType,
			Details:         form.Details,
			Notes:           form.Notes,
		})
	}

	return mutation.Done(c, 0, err, "Wishlist item added!", "Error adding wishlist item")
}

// UpdateStatus moves an item to the status named in the path.
func (s *Service) UpdateStatus(c *fiber.Ctx) error {
	status := models.WishlistStatus(c.Params("status"))

	id, err := handler.ParamID(c)
	if err == nil {
		err = wishlistdb.UpdateStatus(s.deps.DB, id, status)
	}

	return mutation.Done(c, id, err,
		fmt.Sprintf("Wishlist item marked as %s", handler.StatusLabel(string(status))),
		"Error updating status",
	)
}

// UpdateNotes replaces the notes of an item.
func (s *Service) UpdateNotes(c *fiber.Ctx) error {
	form := new(NotesForm)

	id, err := handler.ParamID(c)
	if err == nil {
		err = c.BodyParser(form)
	}

	if err == nil {
		err = wishlistdb.UpdateNotes(s.deps.DB, id, form.Notes)
	}

	return mutation.Done(c, id, err, "Notes updated!", "Error updating notes")
}

// Archive hides an item from the open list.
func (s *Service) Archive(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err == nil {
		err = wishlistdb.Archive(s.deps.DB, id)
	}

	return mutation.Done(c, id, err, "Wishlist item archived successfully!", "Error archiving item")
}

// Delete removes an item permanently.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err == nil {
		err = wishlistdb.Delete(s.deps.DB, id)
	}

	return mutation.Done(c, id, err, "Wishlist item permanently deleted!", "Error deleting item")
}
