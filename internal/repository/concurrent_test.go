package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/almanac/internal/db"
	"github.com/alexanderramin/almanac/internal/domain"
	"github.com/alexanderramin/almanac/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all pooled connections.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := newConcurrentTestDB(t)
	repo := NewSQLiteProfileRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProfile("seed", domain.SituationSaving)))

	const writers, readers = 4, 4
	var wg sync.WaitGroup
	errs := make(chan error, writers+readers*5)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := testutil.NewTestProfile(fmt.Sprintf("writer-%d", i), domain.SituationBudgeting,
				testutil.WithGoals("goal"))
			if err := repo.Create(ctx, p); err != nil {
				errs <- err
			}
		}(i)
	}
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				if _, err := repo.List(ctx); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	profiles, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, profiles, writers+1)
}
