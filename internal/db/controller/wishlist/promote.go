package wishlist

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/KittyCore/portfolio/internal/db/controller/feedback"
	"github.com/KittyCore/portfolio/internal/db/models"
)

const (
	promotedType   = "Game Feature"
	promotedSource = "%s (Game Review)"
	promotedNotes  = "From review by %s on %s"
	reviewDate     = "01-02-2006"
)

// FromFeedback builds the wishlist item a review turns into.
func FromFeedback(f *models.GameFeedback) *models.WishlistItem {
	return &models.WishlistItem{
		Source:          fmt.Sprintf(promotedSource, f.Name),
		EnhancementType: promotedType,
		Details:         fmt.Sprintf("⭐ %d/5 - %s", f.Stars, f.Review),
		Status:          models.WishlistNotStarted,
		Notes:           fmt.Sprintf(promotedNotes, f.Name, f.Timestamp.Format(reviewDate)),
	}
}

// PromoteFeedback copies a review into the wishlist and marks the review as added_to_wishlist.
//
// The insert and the status change are two separate writes. When the insert fails the review
// keeps its status. When only the status change fails the new item is returned together with
// the error.
func PromoteFeedback(db *gorm.DB, feedbackID uint64) (*models.WishlistItem, error) {
	f, err := feedback.Get(db, feedbackID)
	if err != nil {
		return nil, err
	}

	item := FromFeedback(f)
	if err = Create(db, item); err != nil {
		return nil, err
	}

	if err = feedback.UpdateStatus(db, feedbackID, models.FeedbackAddedToWishlist); err != nil {
		return item, err
	}

	return item, nil
}
