package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiprdesign/fitness-plan-ai/internal/health"
	"github.com/aiprdesign/fitness-plan-ai/internal/weightlog"
)

// setupPostgresStore connects to TEST_DB_URL (already migrated) and clears
// the session tables. Skips when no test database is configured.
func setupPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()
	dsn := os.Getenv("TEST_DB_URL")
	if dsn == "" {
		t.Skip("TEST_DB_URL not set")
	}

	ctx := context.Background()
	pool, err := NewPool(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, "DELETE FROM sessions")
	require.NoError(t, err)
	return NewPostgresStore(pool)
}

func TestPostgresStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	p := setupPostgresStore(t)

	s, err := p.Create(ctx)
	require.NoError(t, err)
	assert.Nil(t, s.Profile)

	profile := health.UserProfile{
		Age: 30, WeightKG: 70, HeightCM: 170, Sex: health.Male,
		ActivityLevel: health.Sedentary, DietaryPreference: health.Vegan, FitnessGoal: health.GainMuscle,
	}
	require.NoError(t, p.SetProfile(ctx, s.ID, profile))

	for _, e := range []struct {
		day string
		kg  float64
	}{{"2024-01-05", 70}, {"2024-01-01", 71}, {"2024-01-05", 69.8}} {
		d, err := weightlog.ParseDate(e.day)
		require.NoError(t, err)
		_, err = p.LogWeight(ctx, s.ID, d, e.kg)
		require.NoError(t, err)
	}

	_, err = p.LogWeight(ctx, s.ID, weightlog.NewDate(time.Now()), 0)
	assert.ErrorIs(t, err, weightlog.ErrInvalidWeight)

	got, err := p.Get(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Profile)
	assert.Equal(t, profile, *got.Profile)
	require.Len(t, got.WeightLog, 3)
	assert.Equal(t, "2024-01-05", got.WeightLog[0].Date.String())
	assert.Equal(t, "2024-01-01", got.WeightLog[1].Date.String())
	assert.Equal(t, 69.8, got.WeightLog[2].WeightKG)

	require.NoError(t, p.End(ctx, s.ID))
	_, err = p.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresStore_UnknownSession(t *testing.T) {
	ctx := context.Background()
	p := setupPostgresStore(t)
	id := uuid.New()

	_, err := p.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, p.SetProfile(ctx, id, health.UserProfile{}), ErrNotFound)
	_, err = p.LogWeight(ctx, id, weightlog.NewDate(time.Now()), 70)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, p.End(ctx, id), ErrNotFound)
}

func TestPostgresStore_ExpireIdle(t *testing.T) {
	ctx := context.Background()
	p := setupPostgresStore(t)

	s, err := p.Create(ctx)
	require.NoError(t, err)

	n, err := p.ExpireIdle(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = p.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
