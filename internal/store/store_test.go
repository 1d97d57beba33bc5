package store_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcpath/internal/store"
)

// openMemory returns an ephemeral store, closed with the test.
func openMemory(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// TestStore_RecordAndRecent round-trips a run through the table.
func TestStore_RecordAndRecent(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id, err := s.Record(ctx, store.Run{
		CreatedAt: at,
		Kind:      store.KindEuropean,
		Paths:     50_000,
		Steps:     100,
		Seed:      42,
		Params:    "S=300 K=250 T=1 r=0.03 vola=0.15",
		Estimate:  58.82,
		Elapsed:   375 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	runs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, at, got.CreatedAt)
	assert.Equal(t, store.KindEuropean, got.Kind)
	assert.Equal(t, 50_000, got.Paths)
	assert.Equal(t, 100, got.Steps)
	assert.Equal(t, uint64(42), got.Seed)
	assert.Equal(t, "S=300 K=250 T=1 r=0.03 vola=0.15", got.Params)
	assert.Equal(t, 58.82, got.Estimate)
	assert.Equal(t, 375*time.Millisecond, got.Elapsed)
}

// TestStore_RecentOrderAndLimit: newest first, limit honoured.
func TestStore_RecentOrderAndLimit(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := s.Record(ctx, store.Run{
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Kind:      store.KindSimulate,
			Paths:     1000,
			Steps:     10,
			Seed:      uint64(i),
		})
		require.NoError(t, err)
	}

	runs, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, uint64(2), runs[0].Seed)
	assert.Equal(t, uint64(1), runs[1].Seed)
}

// TestStore_SeedRoundTrip: seeds above MaxInt64 survive the int64 cast.
func TestStore_SeedRoundTrip(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	_, err := s.Record(ctx, store.Run{
		Kind: store.KindBasket,
		Seed: math.MaxUint64,
	})
	require.NoError(t, err)

	runs, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, uint64(math.MaxUint64), runs[0].Seed)
}

// TestStore_StampsZeroCreatedAt: a zero CreatedAt gets the current time.
func TestStore_StampsZeroCreatedAt(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	_, err := s.Record(ctx, store.Run{Kind: store.KindSimulate})
	require.NoError(t, err)

	runs, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.False(t, runs[0].CreatedAt.Before(before))
}
