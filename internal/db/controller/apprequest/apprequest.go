// Package apprequest stores app and website requests.
package apprequest

import (
	"time"

	"gorm.io/gorm"

	"github.com/KittyCore/portfolio/internal/db/controller"
	"github.com/KittyCore/portfolio/internal/db/models"
)

const newestFirst = "time_submitted DESC, id DESC"

// Stats summarizes the open (non archived) requests.
type Stats struct {
	Total    int64
	ByStatus map[models.AppRequestStatus]int64
	Recent   []models.AppRequest
}

// Create inserts a request with status new unless one is given.
func Create(db *gorm.DB, r *models.AppRequest) error {
	if db == nil {
		return controller.ErrDBNil
	}

	if r.Status == "" {
		r.Status = models.AppRequestNew
	}

	if !r.Status.Valid() {
		return controller.ErrInvalidStatus
	}

	r.Archived = false

	r.ID = 0
	r.TimeSubmitted = time.Time{} // set by autoCreateTime
	r.UpdatedAt = time.Time{}

	return db.Create(r).Error
}

// List returns open requests newest first, optionally restricted to one status.
func List(db *gorm.DB, status models.AppRequestStatus) ([]models.AppRequest, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	q := db.Where("archived = ?", false).Order(newestFirst)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	return controller.Find[models.AppRequest](q)
}

// ListArchived returns archived requests, most recently touched first.
func ListArchived(db *gorm.DB) ([]models.AppRequest, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	return controller.Find[models.AppRequest](db.Where("archived = ?", true).Order("updated_at DESC, id DESC"))
}

// Get returns one request, archived or not.
func Get(db *gorm.DB, id uint64) (*models.AppRequest, error) {
	return controller.Get[models.AppRequest](db, id)
}

// UpdateStatus moves a request to status.
func UpdateStatus(db *gorm.DB, id uint64, status models.AppRequestStatus) error {
	if !status.Valid() {
		return controller.ErrInvalidStatus
	}

	return controller.Update[models.AppRequest](db, "id", id, map[string]any{
		"status":     status,
		"updated_at": time.Now(),
	})
}

// UpdateNotes replaces the admin notes of a request.
func UpdateNotes(db *gorm.DB, id uint64, notes string) error {
	return controller.Update[models.AppRequest](db, "id", id, map[string]any{
		"notes":      notes,
		"updated_at": time.Now(),
	})
}

// Archive hides a request from List. Archiving twice is not an error.
func Archive(db *gorm.DB, id uint64) error {
	return controller.Update[models.AppRequest](db, "id", id, map[string]any{
		"archived":   true,
		"updated_at": time.Now(),
	})
}

// CountByStatus counts open requests per state.
func CountByStatus(db *gorm.DB) (map[models.AppRequestStatus]int64, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	return controller.CountByStatus(
		db.Model(&models.AppRequest{}).Where("archived = ?", false),
		models.AppRequestStatuses(),
	)
}

// GetStats returns totals and the recent open requests for the dashboard.
func GetStats(db *gorm.DB, recent int) (*Stats, error) {
	byStatus, err := CountByStatus(db)
	if err != nil {
		return nil, err
	}

	if recent <= 0 {
		return nil, controller.ErrInvalidLimit
	}

	rows, err := controller.Find[models.AppRequest](
		db.Where("archived = ?", false).Order(newestFirst).Limit(recent),
	)
	if err != nil {
		return nil, err
	}

	stats := &Stats{ByStatus: byStatus, Recent: rows}
	for _, n := range byStatus {
		stats.Total += n
	}

	return stats, nil
}
