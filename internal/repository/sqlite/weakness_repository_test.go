package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yida7942-create/gmat-tutor/internal/models"
	"github.com/yida7942-create/gmat-tutor/internal/repository/sqlite"
	"github.com/yida7942-create/gmat-tutor/internal/testutil"
)

func TestWeaknessRepository_UpsertRoundTrip(t *testing.T) {
	repo := sqlite.NewWeaknessRepository(testutil.NewTestDB(t).DB)
	ctx := context.Background()

	lastSeen := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	w := models.Weakness{Tag: "Assumption", ErrorCount: 3, TotalAttempts: 8, LastSeen: lastSeen, Weight: 1.42}
	require.NoError(t, repo.Upsert(ctx, w))

	got, err := repo.ByTag(ctx, "Assumption")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.ErrorCount)
	assert.Equal(t, 8, got.TotalAttempts)
	assert.Equal(t, 1.42, got.Weight)
	assert.True(t, got.LastSeen.Equal(lastSeen))

	// Second upsert replaces, it does not duplicate.
	w.ErrorCount = 4
	w.TotalAttempts = 9
	w.Weight = 1.55
	require.NoError(t, repo.Upsert(ctx, w))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 4, all[0].ErrorCount)
	assert.Equal(t, 1.55, all[0].Weight)
}

func TestWeaknessRepository_ByTagMissing(t *testing.T) {
	repo := sqlite.NewWeaknessRepository(testutil.NewTestDB(t).DB)

	got, err := repo.ByTag(context.Background(), "Never Practiced")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWeaknessRepository_AllOrderedByWeight(t *testing.T) {
	repo := sqlite.NewWeaknessRepository(testutil.NewTestDB(t).DB)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Upsert(ctx, models.Weakness{Tag: "Inference", LastSeen: now, Weight: 1.1}))
	require.NoError(t, repo.Upsert(ctx, models.Weakness{Tag: "Weaken", LastSeen: now, Weight: 2.3}))
	require.NoError(t, repo.Upsert(ctx, models.Weakness{Tag: "Idiom", LastSeen: now, Weight: 0.7}))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Weaken", all[0].Tag)
	assert.Equal(t, "Inference", all[1].Tag)
	assert.Equal(t, "Idiom", all[2].Tag)
}
