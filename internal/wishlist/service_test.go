package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snkrsdev/snkrs-backend/internal/catalog"
	"github.com/snkrsdev/snkrs-backend/pkg/contract"
	pkgerrors "github.com/snkrsdev/snkrs-backend/pkg/errors"
)

func TestWishlistServiceAddRejectsUnknownShoe(t *testing.T) {
	db := setupWishlistTestDB(t)
	svc, err := NewService(ServiceParams{
		Repo:        NewRepository(db),
		CatalogRepo: catalog.NewRepository(db),
	})
	require.NoError(t, err)

	_, err = svc.AddItem(context.Background(), "dev-user", contract.InsertWishlistItem{ShoeID: 424242})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestWishlistServiceAddAndRemove(t *testing.T) {
	db := setupWishlistTestDB(t)
	svc, err := NewService(ServiceParams{
		Repo:        NewRepository(db),
		CatalogRepo: catalog.NewRepository(db),
	})
	require.NoError(t, err)
	shoe := seedShoe(t, db)

	item, err := svc.AddItem(context.Background(), "dev-user", contract.InsertWishlistItem{ShoeID: shoe.ID})
	require.NoError(t, err)
	assert.Equal(t, "dev-user", item.UserID)

	require.NoError(t, svc.RemoveItem(context.Background(), "dev-user", item.ID))
	// Removing again is still fine.
	require.NoError(t, svc.RemoveItem(context.Background(), "dev-user", item.ID))

	items, err := svc.GetWishlist(context.Background(), "dev-user")
	require.NoError(t, err)
	assert.Empty(t, items)
}
