package feedback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KittyCore/portfolio/internal/db/controller"
	"github.com/KittyCore/portfolio/internal/db/dbtest"
	"github.com/KittyCore/portfolio/internal/db/models"
)

func TestCreateStars(t *testing.T) {
	db := dbtest.New(t)

	testCases := []struct {
		name          string
		stars         int
		expectedError error
	}{
		{name: "zero stars", stars: 0, expectedError: ErrStarsOutOfRange},
		{name: "one star", stars: 1},
		{name: "five stars", stars: 5},
		{name: "six stars", stars: 6, expectedError: ErrStarsOutOfRange},
		{name: "negative", stars: -3, expectedError: ErrStarsOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := &models.GameFeedback{Name: "Dee", Stars: tc.stars, Review: "fun"}

			err := Create(db, f)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Zero(t, f.ID)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, models.FeedbackNew, f.Status)
		})
	}

	all, err := List(db, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	avg, err := AverageStars(db)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, avg, 0.001)
}

func TestAverageStarsEmpty(t *testing.T) {
	avg, err := AverageStars(dbtest.New(t))
	require.NoError(t, err)
	assert.Zero(t, avg)
}

func TestUpdateStatus(t *testing.T) {
	db := dbtest.New(t)

	f := &models.GameFeedback{Name: "Dee", Stars: 4, Review: "more levels"}
	require.NoError(t, Create(db, f))

	require.NoError(t, UpdateStatus(db, f.ID, models.FeedbackReviewed))
	require.ErrorIs(t, UpdateStatus(db, f.ID, "liked"), controller.ErrInvalidStatus)
	require.ErrorIs(t, UpdateStatus(db, f.ID+1, models.FeedbackReviewed), controller.ErrNotFound)

	reviewed, err := List(db, models.FeedbackReviewed)
	require.NoError(t, err)
	require.Len(t, reviewed, 1)

	counts, err := CountByStatus(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[models.FeedbackReviewed])
	assert.Zero(t, counts[models.FeedbackNew])

	recent, err := Recent(db, 5)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestCreateIgnoresCallerIDAndTimestamp(t *testing.T) {
	db := dbtest.New(t)
	past := time.Date(2001, 1, 2, 3, 4, 5, 0, time.UTC)

	row := &models.GameFeedback{ID: 999, Name: "Cy", Stars: 4, Review: "fun", Timestamp: past}
	require.NoError(t, Create(db, row))
	assert.NotEqual(t, uint64(999), row.ID)

	got, err := Get(db, row.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), got.Timestamp, time.Minute)
}
