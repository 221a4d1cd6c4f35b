package testhelpers

import (
	"testing"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"openride/internal/config"
)

// NewTestDB returns a migrated in-memory SQLite database. It is closed when
// the test completes.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.OpenSQLite(":memory:", &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = config.Close(db)
	})

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
