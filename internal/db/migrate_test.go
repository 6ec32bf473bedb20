package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesTablesAndIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"profiles", "profile_items"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
	for _, idx := range []string{"idx_profiles_updated", "idx_profile_items_profile"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_RejectsUnknownSituation(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO profiles (id, name, situation, risk_profile, life_stage, created_at, updated_at)
		VALUES ('p', 'n', 'gambling', 'moderate', 'student', 'x', 'x')`)

	assert.Error(t, err)
}

func TestMigrate_ItemsCascadeOnProfileDelete(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO profiles (id, name, situation, risk_profile, life_stage, created_at, updated_at)
		VALUES ('p', 'n', 'saving', 'moderate', 'student', 'x', 'x')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO profile_items (profile_id, kind, position, value) VALUES ('p', 'goal', 0, 'save more')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM profiles WHERE id = 'p'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM profile_items`).Scan(&n))
	assert.Zero(t, n)
}

func TestOpenDB_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "almanac.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)
}
