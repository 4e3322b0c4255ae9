// Package contact stores contact form submissions.
package contact

import (
	"time"

	"gorm.io/gorm"

	"github.com/KittyCore/portfolio/internal/db/controller"
	"github.com/KittyCore/portfolio/internal/db/models"
)

const newestFirst = "timestamp DESC, id DESC"

// Create inserts a submission. An empty status becomes unread; the timestamp is set by the database layer.
func Create(db *gorm.DB, c *models.ContactSubmission) error {
	if db == nil {
		return controller.ErrDBNil
	}

	if c.Status == "" {
		c.Status = models.ContactUnread
	}

	if !c.Status.Valid() {
		return controller.ErrInvalidStatus
	}

	c.ID = 0
	c.Timestamp = time.Time{} // set by autoCreateTime

	return db.Create(c).Error
}

// List returns submissions newest first, all of them when status is empty.
func List(db *gorm.DB, status models.ContactStatus) ([]models.ContactSubmission, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	q := db.Order(newestFirst)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	return controller.Find[models.ContactSubmission](q)
}

// Recent returns the n newest submissions.
func Recent(db *gorm.DB, n int) ([]models.ContactSubmission, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	if n <= 0 {
		return nil, controller.ErrInvalidLimit
	}

	return controller.Find[models.ContactSubmission](db.Order(newestFirst).Limit(n))
}

// Get returns one submission.
func Get(db *gorm.DB, id uint64) (*models.ContactSubmission, error) {
	return controller.Get[models.ContactSubmission](db, id)
}

// UpdateStatus moves a submission to status.
func UpdateStatus(db *gorm.DB, id uint64, status models.ContactStatus) error {
	if !status.Valid() {
		return controller.ErrInvalidStatus
	}

	return controller.Update[models.ContactSubmission](db, "id", id, map[string]any{"status": status})
}

// CountByStatus counts submissions per state.
func CountByStatus(db *gorm.DB) (map[models.ContactStatus]int64, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	return controller.CountByStatus(db.Model(&models.ContactSubmission{}), models.ContactStatuses())
}
