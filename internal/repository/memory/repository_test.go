package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimpyjack/stream-donations/internal/model"
)

func TestDonationInsertIsIdempotent(t *testing.T) {
	repo := NewInMemoryDonationRepository()
	ctx := context.Background()

	donation := model.NewDonation("msg-1", "Jane Doe", 19.00, "", model.SourceVenmo, "")

	inserted, err := repo.Insert(ctx, donation)
	require.NoError(t, err)
	assert.True(t, inserted)

	// Same id again: not inserted, not an error.
	inserted, err = repo.Insert(ctx, donation)
	require.NoError(t, err)
	assert.False(t, inserted)

	ids, err := repo.AllIDs(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestDonationFindAllNewestFirst(t *testing.T) {
	repo := NewInMemoryDonationRepository()
	ctx := context.Background()

	_, err := repo.Insert(ctx, model.NewDonation("first", "A", 1, "", model.SourceVenmo, ""))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, model.NewDonation("second", "B", 2, "", model.SourceZelle, ""))
	require.NoError(t, err)

	donations, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, donations, 2)
	assert.Equal(t, "second", donations[0].ID)
	assert.Equal(t, "first", donations[1].ID)
}

func TestDonationClear(t *testing.T) {
	repo := NewInMemoryDonationRepository()
	ctx := context.Background()

	_, err := repo.Insert(ctx, model.NewDonation("a", "A", 1, "", model.SourceVenmo, ""))
	require.NoError(t, err)
	require.NoError(t, repo.Clear(ctx))

	donations, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, donations)

	// Cleared ids may be recorded again.
	inserted, err := repo.Insert(ctx, model.NewDonation("a", "A", 1, "", model.SourceVenmo, ""))
	require.NoError(t, err)
	assert.True(t, inserted)
}

func TestSettingsRepository(t *testing.T) {
	repo := NewInMemorySettingsRepository()
	ctx := context.Background()

	_, found, err := repo.Get(ctx, "goal")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Set(ctx, "goal", []byte(`{"target":100}`)))

	value, found, err := repo.Get(ctx, "goal")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"target":100}`, string(value))
}
