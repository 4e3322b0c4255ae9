package controller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/KittyCore/portfolio/internal/db/controller"
	"github.com/KittyCore/portfolio/internal/db/dbtest"
	"github.com/KittyCore/portfolio/internal/db/models"
)

func TestGet(t *testing.T) {
	db := dbtest.New(t)

	row := models.ContactSubmission{Name: "Ann", Email: "ann@example.com", Message: "hi", Status: models.ContactUnread}
	require.NoError(t, db.Create(&row).Error)

	testCases := []struct {
		name          string
		db            *gorm.DB
		id            uint64
		expectedError error
	}{
		{name: "nil database", db: nil, id: row.ID, expectedError: controller.ErrDBNil},
		{name: "zero id", db: db, id: 0, expectedError: controller.ErrInvalidID},
		{name: "not found", db: db, id: 999, expectedError: controller.ErrNotFound},
		{name: "found", db: db, id: row.ID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := controller.Get[models.ContactSubmission](tc.db, tc.id)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Ann", got.Name)
		})
	}
}

func TestUpdateUnknownIDWritesNothing(t *testing.T) {
	db := dbtest.New(t)

	err := controller.Update[models.ContactSubmission](db, "id", 42, map[string]any{"status": models.ContactRead})
	require.ErrorIs(t, err, controller.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.ContactSubmission{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFindReturnsEmptySlice(t *testing.T) {
	db := dbtest.New(t)

	rows, err := controller.Find[models.SupportTicket](db)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestCountByStatusFillsMissingStates(t *testing.T) {
	db := dbtest.New(t)

	for _, s := range []models.SupportStatus{models.SupportNew, models.SupportNew, models.SupportResolved} {
		require.NoError(t, db.Create(&models.SupportTicket{Name: "n", Page: "p", Issue: "i", Status: s}).Error)
	}

	counts, err := controller.CountByStatus(db.Model(&models.SupportTicket{}), models.SupportStatuses())
	require.NoError(t, err)

	assert.Equal(t, map[models.SupportStatus]int64{
		models.SupportNew:        2,
		models.SupportInProgress: 0,
		models.SupportResolved:   1,
	}, counts)
}
