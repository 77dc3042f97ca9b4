package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yida7942-create/gmat-tutor/internal/repository/sqlite"
	"github.com/yida7942-create/gmat-tutor/internal/testutil"
)

func TestSessionStateRepository_SaveLoadDelete(t *testing.T) {
	repo := sqlite.NewSessionStateRepository(testutil.NewTestDB(t).DB)
	ctx := context.Background()

	_, found, err := repo.Load(ctx, "plan")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Save(ctx, "plan", `{"index":3}`))

	value, found, err := repo.Load(ctx, "plan")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"index":3}`, value)

	// Overwrite under the same key.
	require.NoError(t, repo.Save(ctx, "plan", `{"index":4}`))
	value, _, err = repo.Load(ctx, "plan")
	require.NoError(t, err)
	assert.Equal(t, `{"index":4}`, value)

	require.NoError(t, repo.Delete(ctx, "plan"))
	_, found, err = repo.Load(ctx, "plan")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionStateRepository_Clear(t *testing.T) {
	repo := sqlite.NewSessionStateRepository(testutil.NewTestDB(t).DB)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "a", "1"))
	require.NoError(t, repo.Save(ctx, "b", "2"))
	require.NoError(t, repo.Clear(ctx))

	for _, key := range []string{"a", "b"} {
		_, found, err := repo.Load(ctx, key)
		require.NoError(t, err)
		assert.False(t, found)
	}
}
