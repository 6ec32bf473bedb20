package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/almanac/internal/db"
	"github.com/alexanderramin/almanac/internal/domain"
)

const (
	itemGoal     = "goal"
	itemCategory = "category"
)

const profileColumns = `id, name, situation, risk_profile, life_stage,
	monthly_income, monthly_expenses, savings_rate, created_at, updated_at`

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
// Goals and top spending categories live in profile_items, so Create and
// Update should run inside a UnitOfWork to stay atomic.
type SQLiteProfileRepo struct {
	db db.DBTX
}

func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	sp := p.Context.SpendingPattern
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		string(p.Context.Situation),
		string(p.Context.RiskProfile),
		string(p.Context.LifeStage),
		nullableFloatToValue(sp.MonthlyIncome),
		nullableFloatToValue(sp.MonthlyExpenses),
		nullableFloatToValue(sp.SavingsRate),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("profile %q: %w", p.Name, ErrDuplicateName)
		}
		return fmt.Errorf("inserting profile: %w", err)
	}
	return r.insertItems(ctx, p)
}

func (r *SQLiteProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id)
	return r.getOne(ctx, row)
}

func (r *SQLiteProfileRepo) GetByName(ctx context.Context, name string) (*domain.Profile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE name = ?`, name)
	return r.getOne(ctx, row)
}

// List returns every profile ordered by name.
func (r *SQLiteProfileRepo) List(ctx context.Context) ([]*domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+profileColumns+` FROM profiles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	var profiles []*domain.Profile
	byID := make(map[string]*domain.Profile)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		profiles = append(profiles, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}
	rows.Close()

	if len(profiles) == 0 {
		return profiles, nil
	}
	if err := r.loadItems(ctx, `SELECT profile_id, kind, value FROM profile_items ORDER BY profile_id, kind, position`, byID); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *SQLiteProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles SET name = ?, situation = ?, risk_profile = ?, life_stage = ?,
		monthly_income = ?, monthly_expenses = ?, savings_rate = ?, updated_at = ?
		WHERE id = ?`
	sp := p.Context.SpendingPattern
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		string(p.Context.Situation),
		string(p.Context.RiskProfile),
		string(p.Context.LifeStage),
		nullableFloatToValue(sp.MonthlyIncome),
		nullableFloatToValue(sp.MonthlyExpenses),
		nullableFloatToValue(sp.SavingsRate),
		p.UpdatedAt.UTC().Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("profile %q: %w", p.Name, ErrDuplicateName)
		}
		return fmt.Errorf("updating profile: %w", err)
	}
	if err := requireAffected(res, "profile"); err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM profile_items WHERE profile_id = ?`, p.ID); err != nil {
		return fmt.Errorf("clearing profile items: %w", err)
	}
	return r.insertItems(ctx, p)
}

// Delete removes a profile; its items go with it through the foreign key cascade.
func (r *SQLiteProfileRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	return requireAffected(res, "profile")
}

func (r *SQLiteProfileRepo) insertItems(ctx context.Context, p *domain.Profile) error {
	insert := func(kind string, values []string) error {
		for i, v := range values {
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO profile_items (profile_id, kind, position, value) VALUES (?, ?, ?, ?)`,
				p.ID, kind, i, v)
			if err != nil {
				return fmt.Errorf("inserting profile %s: %w", kind, err)
			}
		}
		return nil
	}
	if err := insert(itemGoal, p.Context.Goals); err != nil {
		return err
	}
	return insert(itemCategory, p.Context.SpendingPattern.TopCategories)
}

func (r *SQLiteProfileRepo) getOne(ctx context.Context, row *sql.Row) (*domain.Profile, error) {
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, err
	}
	byID := map[string]*domain.Profile{p.ID: p}
	query := `SELECT profile_id, kind, value FROM profile_items WHERE profile_id = ? ORDER BY kind, position`
	if err := r.loadItems(ctx, query, byID, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// loadItems attaches goals and categories from query to the profiles in byID.
// Rows are expected in position order.
func (r *SQLiteProfileRepo) loadItems(ctx context.Context, query string, byID map[string]*domain.Profile, args ...any) error {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("loading profile items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var profileID, kind, value string
		if err := rows.Scan(&profileID, &kind, &value); err != nil {
			return fmt.Errorf("scanning profile item: %w", err)
		}
		p, ok := byID[profileID]
		if !ok {
			continue
		}
		switch kind {
		case itemGoal:
			p.Context.Goals = append(p.Context.Goals, value)
		case itemCategory:
			p.Context.SpendingPattern.TopCategories = append(p.Context.SpendingPattern.TopCategories, value)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating profile items: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(s rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	var situation, risk, stage, createdAt, updatedAt string
	var income, expenses, rate sql.NullFloat64

	err := s.Scan(&p.ID, &p.Name, &situation, &risk, &stage,
		&income, &expenses, &rate, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	p.Context.Situation = domain.Situation(situation)
	p.Context.RiskProfile = domain.RiskProfile(risk)
	p.Context.LifeStage = domain.LifeStage(stage)
	p.Context.SpendingPattern.MonthlyIncome = parseNullableFloat(income)
	p.Context.SpendingPattern.MonthlyExpenses = parseNullableFloat(expenses)
	p.Context.SpendingPattern.SavingsRate = parseNullableFloat(rate)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
