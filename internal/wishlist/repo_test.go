package wishlist

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/snkrsdev/snkrs-backend/pkg/db/models"
)

func setupWishlistTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	shoes := `
CREATE TABLE IF NOT EXISTS shoes (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  brand TEXT NOT NULL,
  model TEXT NOT NULL,
  colorway TEXT NOT NULL,
  retail_price INTEGER NOT NULL,
  market_price INTEGER,
  image_url TEXT NOT NULL,
  description TEXT NOT NULL,
  is_trending INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME
);`
	wishlistItems := `
CREATE TABLE IF NOT EXISTS wishlist_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  shoe_id INTEGER NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(shoes).Error)
	require.NoError(t, db.Exec(wishlistItems).Error)
	return db
}

func seedShoe(t *testing.T, db *gorm.DB) models.Shoe {
	t.Helper()
	shoe := models.Shoe{
		Name:        "Nike Dunk Low 'Panda'",
		Brand:       "Nike",
		Model:       "Dunk Low",
		Colorway:    "White/Black",
		RetailPrice: 11000,
		ImageURL:    "https://example.com/dunk.jpg",
		Description: "test shoe",
	}
	require.NoError(t, db.Create(&shoe).Error)
	return shoe
}

func TestWishlistInsertAndList(t *testing.T) {
	db := setupWishlistTestDB(t)
	repo := NewRepository(db)
	shoe := seedShoe(t, db)

	created, err := repo.Insert(context.Background(), models.WishlistItem{UserID: "dev-user", ShoeID: shoe.ID})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	items, err := repo.ListForUser(context.Background(), "dev-user")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
	assert.Equal(t, shoe.ID, items[0].Shoe.ID)
	assert.Equal(t, "Nike Dunk Low 'Panda'", items[0].Shoe.Name)
}

func TestWishlistAllowsDuplicateShoes(t *testing.T) {
	db := setupWishlistTestDB(t)
	repo := NewRepository(db)
	shoe := seedShoe(t, db)

	_, err := repo.Insert(context.Background(), models.WishlistItem{UserID: "dev-user", ShoeID: shoe.ID})
	require.NoError(t, err)
	_, err = repo.Insert(context.Background(), models.WishlistItem{UserID: "dev-user", ShoeID: shoe.ID})
	require.NoError(t, err)

	items, err := repo.ListForUser(context.Background(), "dev-user")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestWishlistDeleteRequiresOwnership(t *testing.T) {
	db := setupWishlistTestDB(t)
	repo := NewRepository(db)
	shoe := seedShoe(t, db)

	item, err := repo.Insert(context.Background(), models.WishlistItem{UserID: "alice", ShoeID: shoe.ID})
	require.NoError(t, err)

	// Foreign delete leaves the row in place.
	require.NoError(t, repo.DeleteOwned(context.Background(), item.ID, "bob"))
	items, err := repo.ListForUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, repo.DeleteOwned(context.Background(), item.ID, "alice"))
	items, err = repo.ListForUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, items)
}
