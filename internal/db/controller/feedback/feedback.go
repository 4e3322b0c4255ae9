// Package feedback stores game reviews.
package feedback

import (
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/KittyCore/portfolio/internal/db/controller"
	"github.com/KittyCore/portfolio/internal/db/models"
)

const (
	newestFirst = "timestamp DESC, id DESC"

	// MinStars and MaxStars bound a rating.
	MinStars = 1
	MaxStars = 5
)

// ErrStarsOutOfRange is returned for a rating outside MinStars..MaxStars.
var ErrStarsOutOfRange = errors.New("stars must be between 1 and 5")

// Create inserts a review.
func Create(db *gorm.DB, f *models.GameFeedback) error {
	if db == nil {
		return controller.ErrDBNil
	}

	if f.Stars < MinStars || f.Stars > MaxStars {
		return ErrStarsOutOfRange
	}

	if f.Status == "" {
		f.Status = models.FeedbackNew
	}

	if !f.Status.Valid() {
		return controller.ErrInvalidStatus
	}

	f.ID = 0
	f.Timestamp = time.Time{} // set by autoCreateTime

	return db.Create(f).Error
}

// List returns reviews newest first, optionally restricted to one status.
func List(db *gorm.DB, status models.FeedbackStatus) ([]models.GameFeedback, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	q := db.Order(newestFirst)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	return controller.Find[models.GameFeedback](q)
}

// Recent returns the n newest reviews.
func Recent(db *gorm.DB, n int) ([]models.GameFeedback, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	if n <= 0 {
		return nil, controller.ErrInvalidLimit
	}

	return controller.Find[models.GameFeedback](db.Order(newestFirst).Limit(n))
}

// Get returns one review.
func Get(db *gorm.DB, id uint64) (*models.GameFeedback, error) {
	return controller.Get[models.GameFeedback](db, id)
}

// UpdateStatus moves a review to status.
func UpdateStatus(db *gorm.DB, id uint64, status models.FeedbackStatus) error {
	if !status.Valid() {
		return controller.ErrInvalidStatus
	}

	return controller.Update[models.GameFeedback](db, "id", id, map[string]any{"status": status})
}

// CountByStatus counts reviews per state.
func CountByStatus(db *gorm.DB) (map[models.FeedbackStatus]int64, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	return controller.CountByStatus(db.Model(&models.GameFeedback{}), models.FeedbackStatuses())
}

// AverageStars returns the mean rating over all reviews, zero without reviews.
func AverageStars(db *gorm.DB) (float64, error) {
	if db == nil {
		return 0, controller.ErrDBNil
	}

	var avg sql.NullFloat64

	if err := db.Model(&models.GameFeedback{}).Select("AVG(stars)").Row().Scan(&avg); err != nil {
		return 0, err
	}

	return avg.Float64, nil
}
