package seed_test

import (
	"context"
	"testing"

	"github.com/dealdeskhq/dealdesk_backend/internal/adapters/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDeals_Deterministic(t *testing.T) {
	loader := seed.NewDealSeedLoader()

	first, err := loader.LoadDeals(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := loader.LoadDeals(context.Background())
	require.NoError(t, err)
	require.Len(t, second, len(first))

	for i := range first {
		assert.Equal(t, first[i].DealID, second[i].DealID)
		assert.Equal(t, first[i].Name, second[i].Name)
	}
}

func TestLoadDeals_ReturnsIndependentCopies(t *testing.T) {
	loader := seed.NewDealSeedLoader()

	first, err := loader.LoadDeals(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, first[0].Participants)

	first[0].Participants[0].Name = "mutated"
	first[0].Name = "mutated"

	second, err := loader.LoadDeals(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Name)
	assert.NotEqual(t, "mutated", second[0].Participants[0].Name)
}

func TestLoadDeals_UniqueIDs(t *testing.T) {
	loader := seed.NewDealSeedLoader()

	deals, err := loader.LoadDeals(context.Background())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, d := range deals {
		assert.False(t, seen[d.DealID], "duplicate deal id %s", d.DealID)
		seen[d.DealID] = true
	}
}
