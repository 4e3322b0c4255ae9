// Package wishlist stores planned enhancements.
package wishlist

import (
	"time"

	"gorm.io/gorm"

	"github.com/KittyCore/portfolio/internal/db/controller"
	"github.com/KittyCore/portfolio/internal/db/models"
)

const (
	pk          = "wishlist_id"
	newestFirst = "created_at DESC, wishlist_id DESC"
)

// Create inserts an item with status not_started unless one is given.
func Create(db *gorm.DB, item *models.WishlistItem) error {
	if db == nil {
		return controller.ErrDBNil
	}

	if item.Status == "" {
		item.Status = models.WishlistNotStarted
	}

	if !item.Status.Valid() {
		return controller.ErrInvalidStatus
	}

	item.Archived = false

	item.ID = 0
	item.CreatedAt = time.Time{} // set by autoCreateTime
	item.UpdatedAt = time.Time{}

	return db.Create(item).Error
}

// List returns open items newest first, optionally restricted to one status.
func List(db *gorm.DB, status models.WishlistStatus) ([]models.WishlistItem, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	q := db.Where("archived = ?", false).Order(newestFirst)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	return controller.Find[models.WishlistItem](q)
}

// ListArchived returns archived items, most recently touched first.
func ListArchived(db *gorm.DB) ([]models.WishlistItem, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	return controller.Find[models.WishlistItem](db.Where("archived = ?", true).Order("updated_at DESC, wishlist_id DESC"))
}

// Get returns one item, archived or not.
func Get(db *gorm.DB, id uint64) (*models.WishlistItem, error) {
	return controller.Get[models.WishlistItem](db, id)
}

// UpdateStatus moves an item to status.
func UpdateStatus(db *gorm.DB, id uint64, status models.WishlistStatus) error {
	if !status.Valid() {
		return controller.ErrInvalidStatus
	}

	return controller.Update[models.WishlistItem](db, pk, id, map[string]any{
		"status":     status,
		"updated_at": time.Now(),
	})
}

// UpdateNotes replaces the notes of an item.
func UpdateNotes(db *gorm.DB, id uint64, notes string) error {
	return controller.Update[models.WishlistItem](db, pk, id, map[string]any{
		"notes":      notes,
		"updated_at": time.Now(),
	})
}

// Archive hides an item from List. Archiving twice is not an error.
func Archive(db *gorm.DB, id uint64) error {
	return controller.Update[models.WishlistItem](db, pk, id, map[string]any{
		"archived":   true,
		"updated_at": time.Now(),
	})
}

// Delete removes an item permanently.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return controller.ErrDBNil
	}

	if id == 0 {
		return controller.ErrInvalidID
	}

	result := db.Where(pk+" = ?", id).Delete(&models.WishlistItem{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return controller.ErrNotFound
	}

	return nil
}

// CountByStatus counts open items per state.
func CountByStatus(db *gorm.DB) (map[models.WishlistStatus]int64, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	return controller.CountByStatus(
		db.Model(&models.WishlistItem{}).Where("archived = ?", false),
		models.WishlistStatuses(),
	)
}
