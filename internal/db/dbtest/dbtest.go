// Package dbtest provides an in-memory database for tests.
package dbtest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KittyCore/portfolio/internal/db"
)

// New returns a migrated in-memory SQLite database private to t.
// A single connection keeps concurrent callers on the same memory database.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	name := "file:" + uuid.NewString() + "?mode=memory&cache=shared"

	gdb, err := gorm.Open(sqlite.Open(name), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb), "failed to migrate test database")

	return gdb
}
