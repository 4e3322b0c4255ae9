package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/KittyCore/portfolio/internal/db/controller"
	"github.com/KittyCore/portfolio/internal/web/flash"
)

// FilterStatusQuery is the query parameter filtering admin lists.
const FilterStatusQuery = "filter_status"

// StatusFilter returns the filter_status query value, or "" when it is not a known state.
func StatusFilter[S controller.Status](c *fiber.Ctx) S {
	s := S(c.Query(FilterStatusQuery))
	if !s.Valid() {
		return ""
	}

	return s
}

// Mutation finishes an admin POST: it flashes the outcome and redirects back.
type Mutation struct {
	Entity   string
	Fallback string // redirect target without a usable Referer
}

// Done flashes success when err is nil and failure otherwise.
func (m Mutation) Done(c *fiber.Ctx, id uint64, err error, success, failure string) error {
	if err != nil {
		log.Error().Err(err).Str("entity", m.Entity).Uint64("id", id).Msg("admin update failed")
		flash.Error(c, failure)
	} else {
		log.Debug().Str("entity", m.Entity).Uint64("id", id).Msg("admin update")
		flash.Success(c, success)
	}

	return RedirectBack(c, m.Fallback)
}

// LoadError logs a failed read, queues an error flash and sets status 500.
// The caller still renders its page.
func LoadError(c *fiber.Ctx, err error, what string) {
	log.Error().Err(err).Str("path", c.Path()).Msg("can't load " + what)
	flash.Error(c, "Error loading "+what)

	c.Status(fiber.StatusInternalServerError)
}

// StatusCount is one state of a workflow with its row count.
type StatusCount struct {
	Status string
	Label  string
	Count  int64
}

// StatusCounts orders counts by the workflow order of the states.
func StatusCounts[S controller.Status](counts map[S]int64, order []S) []StatusCount {
	out := make([]StatusCount, 0, len(order))
	for _, s := range order {
		out = append(out, StatusCount{Status: string(s), Label: StatusLabel(string(s)), Count: counts[s]})
	}

	return out
}

// Total sums all counts.
func Total(counts []StatusCount) int64 {
	var n int64
	for _, c := range counts {
		n += c.Count
	}

	return n
}
