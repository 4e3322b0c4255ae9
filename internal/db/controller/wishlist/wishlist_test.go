package wishlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KittyCore/portfolio/internal/db/controller"
	"github.com/KittyCore/portfolio/internal/db/controller/feedback"
	"github.com/KittyCore/portfolio/internal/db/dbtest"
	"github.com/KittyCore/portfolio/internal/db/models"
)

func TestCreateAndFilter(t *testing.T) {
	db := dbtest.New(t)

	a := &models.WishlistItem{Source: "Me", EnhancementType: "UI", Details: "dark mode"}
	b := &models.WishlistItem{Source: "Me", EnhancementType: "Game", Details: "boss fight", Status: models.WishlistInProgress}
	require.NoError(t, Create(db, a))
	require.NoError(t, Create(db, b))
	require.ErrorIs(t, Create(db, &models.WishlistItem{Source: "Me", Details: "x", Status: "someday"}),
		controller.ErrInvalidStatus)

	assert.Equal(t, models.WishlistNotStarted, a.Status)

	all, err := List(db, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, b.ID, all[0].ID)

	inProgress, err := List(db, models.WishlistInProgress)
	require.NoError(t, err)
	require.Len(t, inProgress, 1)
	assert.Equal(t, "boss fight", inProgress[0].Details)

	counts, err := CountByStatus(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[models.WishlistNotStarted])
	assert.Equal(t, int64(1), counts[models.WishlistInProgress])
	assert.Zero(t, counts[models.WishlistRevisiting])
}

func TestUpdates(t *testing.T) {
	db := dbtest.New(t)

	item := &models.WishlistItem{Source: "Me", EnhancementType: "UI", Details: "dark mode"}
	require.NoError(t, Create(db, item))

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, UpdateStatus(db, item.ID, models.WishlistRevisiting))
	require.NoError(t, UpdateNotes(db, item.ID, "needs a toggle"))

	got, err := Get(db, item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WishlistRevisiting, got.Status)
	assert.Equal(t, "needs a toggle", got.Notes)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	require.ErrorIs(t, UpdateStatus(db, 999, models.WishlistCompleted), controller.ErrNotFound)
	require.ErrorIs(t, UpdateNotes(db, 0, "x"), controller.ErrInvalidID)
}

func TestArchiveAndDelete(t *testing.T) {
	db := dbtest.New(t)

	item := &models.WishlistItem{Source: "Me", EnhancementType: "UI", Details: "dark mode"}
	require.NoError(t, Create(db, item))

	require.NoError(t, Archive(db, item.ID))
	require.NoError(t, Archive(db, item.ID))

	open, err := List(db, "")
	require.NoError(t, err)
	assert.Empty(t, open)

	archived, err := ListArchived(db)
	require.NoError(t, err)
	require.Len(t, archived, 1)

	require.NoError(t, Delete(db, item.ID))
	require.ErrorIs(t, Delete(db, item.ID), controller.ErrNotFound)

	_, err = Get(db, item.ID)
	require.ErrorIs(t, err, controller.ErrNotFound)
}

func TestPromoteFeedback(t *testing.T) {
	db := dbtest.New(t)

	f := &models.GameFeedback{Name: "Gus", Stars: 4, Review: "add a level editor"}
	require.NoError(t, feedback.Create(db, f))

	stored, err := feedback.Get(db, f.ID)
	require.NoError(t, err)

	item, err := PromoteFeedback(db, f.ID)
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.Equal(t, "Gus (Game Review)", item.Source)
	assert.Equal(t, "Game Feature", item.EnhancementType)
	assert.Equal(t, "⭐ 4/5 - add a level editor", item.Details)
	assert.Equal(t, models.WishlistNotStarted, item.Status)
	assert.Equal(t, "From review by Gus on "+stored.Timestamp.Format("01-02-2006"), item.Notes)

	promoted, err := feedback.Get(db, f.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackAddedToWishlist, promoted.Status)

	items, err := List(db, "")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestPromoteUnknownFeedback(t *testing.T) {
	db := dbtest.New(t)

	item, err := PromoteFeedback(db, 404)
	require.ErrorIs(t, err, controller.ErrNotFound)
	assert.Nil(t, item)

	items, err := List(db, "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPromoteInsertFailureKeepsFeedbackStatus(t *testing.T) {
	db := dbtest.New(t)

	f := &models.GameFeedback{Name: "Hal", Stars: 2, Review: "too hard"}
	require.NoError(t, feedback.Create(db, f))

	// without the wishlist table the insert fails
	require.NoError(t, db.Migrator().DropTable(&models.WishlistItem{}))

	_, err := PromoteFeedback(db, f.ID)
	require.Error(t, err)

	got, err := feedback.Get(db, f.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackNew, got.Status)
}

func TestCreateIgnoresCallerIDAndTimestamp(t *testing.T) {
	db := dbtest.New(t)
	past := time.Date(2001, 1, 2, 3, 4, 5, 0, time.UTC)

	item := &models.WishlistItem{ID: 999, Source: "Me", EnhancementType: "UI", Details: "x", CreatedAt: past, UpdatedAt: past}
	require.NoError(t, Create(db, item))
	assert.NotEqual(t, uint64(999), item.ID)

	got, err := Get(db, item.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), got.CreatedAt, time.Minute)
}
