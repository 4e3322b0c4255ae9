// Package support stores support tickets.
package support

import (
	"time"

	"gorm.io/gorm"

	"github.com/KittyCore/portfolio/internal/db/controller"
	"github.com/KittyCore/portfolio/internal/db/models"
)

const newestFirst = "timestamp DESC, id DESC"

// Create inserts a ticket with status new unless one is given.
func Create(db *gorm.DB, t *models.SupportTicket) error {
	if db == nil {
		return controller.ErrDBNil
	}

	if t.Status == "" {
		t.Status = models.SupportNew
	}

	if !t.Status.Valid() {
		return controller.ErrInvalidStatus
	}

	t.ID = 0
	t.Timestamp = time.Time{} // set by autoCreateTime

	return db.Create(t).Error
}

// List returns tickets newest first, optionally restricted to one status.
func List(db *gorm.DB, status models.SupportStatus) ([]models.SupportTicket, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	q := db.Order(newestFirst)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	return controller.Find[models.SupportTicket](q)
}

// Recent returns the n newest tickets.
func Recent(db *gorm.DB, n int) ([]models.SupportTicket, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	if n <= 0 {
		return nil, controller.ErrInvalidLimit
	}

	return controller.Find[models.SupportTicket](db.Order(newestFirst).Limit(n))
}

// Get returns one ticket.
func Get(db *gorm.DB, id uint64) (*models.SupportTicket, error) {
	return controller.Get[models.SupportTicket](db, id)
}

// UpdateStatus moves a ticket to status.
func UpdateStatus(db *gorm.DB, id uint64, status models.SupportStatus) error {
	if !status.Valid() {
		return controller.ErrInvalidStatus
	}

	return controller.Update[models.SupportTicket](db, "id", id, map[string]any{"status": status})
}

// CountByStatus counts tickets per state.
func CountByStatus(db *gorm.DB) (map[models.SupportStatus]int64, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	return controller.CountByStatus(db.Model(&models.SupportTicket{}), models.SupportStatuses())
}
