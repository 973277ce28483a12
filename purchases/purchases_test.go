package purchases

import (
	"context"
	"errors"
	"testing"

	"itinero/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurchaseStore struct {
	owned map[string][]string
	err   error
}

func (f *fakePurchaseStore) Create(context.Context, *models.Purchase) error { return nil }

func (f *fakePurchaseStore) PurchasedAmong(_ context.Context, userID string, ids []string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []string
	for _, id := range ids {
		for _, have := range f.owned[userID] {
			if id == have {
				out = append(out, id)
			}
		}
	}
	return out, nil
}

func (f *fakePurchaseStore) ListByUser(_ context.Context, userID string) ([]models.Purchase, error) {
	return nil, nil
}

func TestHasPurchased(t *testing.T) {
	st := &fakePurchaseStore{owned: map[string][]string{"user-1": {"it-1"}}}

	bought, err := HasPurchased(context.Background(), st, "user-1", "it-1")
	require.NoError(t, err)
	assert.True(t, bought)

	bought, err = HasPurchased(context.Background(), st, "user-1", "it-2")
	require.NoError(t, err)
	assert.False(t, bought)

	bought, err = HasPurchased(context.Background(), st, "user-2", "it-1")
	require.NoError(t, err)
	assert.False(t, bought)
}

func TestHasPurchased_StoreError(t *testing.T) {
	st := &fakePurchaseStore{err: errors.New("connection reset")}

	bought, err := HasPurchased(context.Background(), st, "user-1", "it-1")
	assert.Error(t, err)
	assert.False(t, bought)
}
