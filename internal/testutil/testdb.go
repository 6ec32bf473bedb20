package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/almanac/internal/db"
	"github.com/alexanderramin/almanac/internal/domain"
	"github.com/google/uuid"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// NewTestProfile returns an unsaved profile wrapping a NewTestContext.
func NewTestProfile(name string, situation domain.Situation, opts ...ContextOption) *domain.Profile {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Profile{
		ID:        uuid.New().String(),
		Name:      name,
		Context:   NewTestContext(situation, opts...),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
