package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent and run in order on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL UNIQUE,
		situation        TEXT NOT NULL
		                 CHECK(situation IN ('budgeting','overspending','saving','investing','debt_management','financial_planning')),
		risk_profile     TEXT NOT NULL
		                 CHECK(risk_profile IN ('conservative','moderate','aggressive')),
		life_stage       TEXT NOT NULL
		                 CHECK(life_stage IN ('student','professional','family','retired')),
		monthly_income   REAL,
		monthly_expenses REAL,
		savings_rate     REAL,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS profile_items (
		profile_id  TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		kind        TEXT NOT NULL CHECK(kind IN ('goal','category')),
		position    INTEGER NOT NULL,
		value       TEXT NOT NULL,
		PRIMARY KEY (profile_id, kind, position)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_profiles_updated ON profiles(updated_at)`,
	`CREATE INDEX IF NOT EXISTS idx_profile_items_profile ON profile_items(profile_id)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
