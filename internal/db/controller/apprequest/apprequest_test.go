package apprequest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/KittyCore/portfolio/internal/db/controller"
	"github.com/KittyCore/portfolio/internal/db/dbtest"
	"github.com/KittyCore/portfolio/internal/db/models"
)

func newRequest(t *testing.T, db *gorm.DB, name string) *models.AppRequest {
	t.Helper()

	r := &models.AppRequest{
		Name:            name,
		Email:           name + "@example.com",
		Type:            "website",
		ProjectTimeline: "1-3 months",
		ProjectDetails:  "a landing page",
	}
	require.NoError(t, Create(db, r))

	return r
}

func TestCreateDefaults(t *testing.T) {
	db := dbtest.New(t)

	r := newRequest(t, db, "eve")

	got, err := Get(db, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppRequestNew, got.Status)
	assert.False(t, got.Archived)
	assert.False(t, got.TimeSubmitted.IsZero())
}

func TestArchiveHidesFromList(t *testing.T) {
	db := dbtest.New(t)

	keep := newRequest(t, db, "keep")
	gone := newRequest(t, db, "gone")

	before, err := Get(db, gone.ID)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, Archive(db, gone.ID))
	// idempotent
	require.NoError(t, Archive(db, gone.ID))

	open, err := List(db, "")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, keep.ID, open[0].ID)

	archived, err := ListArchived(db)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, gone.ID, archived[0].ID)

	// archived rows stay reachable by id
	got, err := Get(db, gone.ID)
	require.NoError(t, err)
	assert.True(t, got.Archived)
	assert.True(t, got.UpdatedAt.After(before.UpdatedAt))

	require.ErrorIs(t, Archive(db, 999), controller.ErrNotFound)
}

func TestNotesAndStatus(t *testing.T) {
	db := dbtest.New(t)
	r := newRequest(t, db, "fay")

	require.NoError(t, UpdateNotes(db, r.ID, "called back on monday"))
	require.NoError(t, UpdateStatus(db, r.ID, models.AppRequestInProgress))
	require.ErrorIs(t, UpdateStatus(db, r.ID, "shipped"), controller.ErrInvalidStatus)
	require.ErrorIs(t, UpdateNotes(db, 999, "x"), controller.ErrNotFound)

	got, err := Get(db, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "called back on monday", got.Notes)
	assert.Equal(t, models.AppRequestInProgress, got.Status)

	inProgress, err := List(db, models.AppRequestInProgress)
	require.NoError(t, err)
	assert.Len(t, inProgress, 1)
}

func TestGetStats(t *testing.T) {
	db := dbtest.New(t)

	for _, name := range []string{"a", "b", "c"} {
		newRequest(t, db, name)
	}

	archived := newRequest(t, db, "d")
	require.NoError(t, Archive(db, archived.ID))

	stats, err := GetStats(db, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(3), stats.ByStatus[models.AppRequestNew])
	assert.Len(t, stats.Recent, 2)

	_, err = GetStats(db, 0)
	require.ErrorIs(t, err, controller.ErrInvalidLimit)
}

func TestCreateIgnoresCallerIDAndTimestamp(t *testing.T) {
	db := dbtest.New(t)
	past := time.Date(2001, 1, 2, 3, 4, 5, 0, time.UTC)

	r := &models.AppRequest{ID: 999, Name: "dan", Email: "dan@example.com", TimeSubmitted: past, UpdatedAt: past}
	require.NoError(t, Create(db, r))
	assert.NotEqual(t, uint64(999), r.ID)

	got, err := Get(db, r.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), got.TimeSubmitted, time.Minute)
	assert.WithinDuration(t, time.Now(), got.UpdatedAt, time.Minute)
}
