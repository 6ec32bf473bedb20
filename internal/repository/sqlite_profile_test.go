package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/almanac/internal/domain"
	"github.com/alexanderramin/almanac/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	p := testutil.NewTestProfile("household", domain.SituationDebtManagement,
		testutil.WithGoals("pay off credit card", "build emergency fund"),
		testutil.WithTopCategories("dining", "travel"),
		testutil.WithIncomeAndExpenses(5200, 4900),
		testutil.WithRisk(domain.RiskAggressive),
	)
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)

	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "household", got.Name)
	assert.Equal(t, domain.SituationDebtManagement, got.Context.Situation)
	assert.Equal(t, domain.RiskAggressive, got.Context.RiskProfile)
	assert.Equal(t, domain.StageProfessional, got.Context.LifeStage)
	assert.Equal(t, []string{"pay off credit card", "build emergency fund"}, got.Context.Goals)
	assert.Equal(t, []string{"dining", "travel"}, got.Context.SpendingPattern.TopCategories)
	require.NotNil(t, got.Context.SpendingPattern.MonthlyIncome)
	assert.Equal(t, 5200.0, *got.Context.SpendingPattern.MonthlyIncome)
	assert.Nil(t, got.Context.SpendingPattern.SavingsRate, "unknown stays unknown, not zero")
	assert.True(t, p.CreatedAt.Equal(got.CreatedAt))
}

func TestProfileRepo_GetByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	p := testutil.NewTestProfile("student", domain.SituationBudgeting, testutil.WithStage(domain.StageStudent))
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByName(ctx, "student")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Empty(t, got.Context.Goals)
}

func TestProfileRepo_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByName(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "missing"), ErrNotFound)

	ghost := testutil.NewTestProfile("ghost", domain.SituationSaving)
	assert.ErrorIs(t, repo.Update(ctx, ghost), ErrNotFound)
}

func TestProfileRepo_DuplicateName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProfile("home", domain.SituationSaving)))

	err := repo.Create(ctx, testutil.NewTestProfile("home", domain.SituationInvesting))
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestProfileRepo_ListOrderedByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	for _, name := range []string{"zoe", "adam", "mira"} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestProfile(name, domain.SituationSaving,
			testutil.WithGoals("goal of "+name))))
	}

	profiles, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, profiles, 3)
	assert.Equal(t, "adam", profiles[0].Name)
	assert.Equal(t, "mira", profiles[1].Name)
	assert.Equal(t, "zoe", profiles[2].Name)
	assert.Equal(t, []string{"goal of mira"}, profiles[1].Context.Goals)
}

func TestProfileRepo_ListEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)

	profiles, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestProfileRepo_UpdateReplacesItems(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	p := testutil.NewTestProfile("home", domain.SituationSaving,
		testutil.WithGoals("old goal"), testutil.WithTopCategories("groceries"))
	require.NoError(t, repo.Create(ctx, p))

	rate := 0.12
	p.Context.Goals = []string{"new goal", "second goal"}
	p.Context.SpendingPattern.TopCategories = nil
	p.Context.SpendingPattern.SavingsRate = &rate
	p.Context.Situation = domain.SituationInvesting
	p.UpdatedAt = p.UpdatedAt.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SituationInvesting, got.Context.Situation)
	assert.Equal(t, []string{"new goal", "second goal"}, got.Context.Goals)
	assert.Empty(t, got.Context.SpendingPattern.TopCategories)
	require.NotNil(t, got.Context.SpendingPattern.SavingsRate)
	assert.Equal(t, 0.12, *got.Context.SpendingPattern.SavingsRate)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestProfileRepo_DeleteCascadesItems(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	p := testutil.NewTestProfile("home", domain.SituationSaving, testutil.WithGoals("a", "b"))
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err := repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM profile_items WHERE profile_id = ?`, p.ID).Scan(&n))
	assert.Zero(t, n)
}
