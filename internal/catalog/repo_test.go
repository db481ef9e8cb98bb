package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/snkrsdev/snkrs-backend/pkg/db/models"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
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
	require.NoError(t, db.Exec(shoes).Error)
	return db
}

func insertShoe(t *testing.T, repo *Repository, name, brand string, trending bool) models.Shoe {
	t.Helper()
	shoe, err := repo.Create(context.Background(), models.Shoe{
		Name:        name,
		Brand:       brand,
		Model:       "Test Model",
		Colorway:    "White/Black",
		RetailPrice: 11000,
		ImageURL:    "https://example.com/shoe.jpg",
		Description: "test shoe",
		IsTrending:  trending,
	})
	require.NoError(t, err)
	return shoe
}

func TestCatalogCreateThenFind(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))

	created := insertShoe(t, repo, "Nike Dunk Low 'Panda'", "Nike", true)
	require.NotZero(t, created.ID)

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Nike Dunk Low 'Panda'", found.Name)
	assert.Equal(t, 11000, found.RetailPrice)
	assert.True(t, found.IsTrending)
}

func TestCatalogFindMissing(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))

	_, err := repo.FindByID(context.Background(), 9999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCatalogListNewestFirst(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))

	first := insertShoe(t, repo, "First", "Nike", false)
	second := insertShoe(t, repo, "Second", "Adidas", false)

	shoes, err := repo.ListShoes(context.Background(), ListFilter{})
	require.NoError(t, err)
	require.Len(t, shoes, 2)
	assert.Equal(t, second.ID, shoes[0].ID)
	assert.Equal(t, first.ID, shoes[1].ID)
}

func TestCatalogListSearchIsCaseInsensitive(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))

	insertShoe(t, repo, "Air Jordan 1", "Jordan", false)
	insertShoe(t, repo, "Dunk Low", "Nike", false)

	shoes, err := repo.ListShoes(context.Background(), ListFilter{Search: "jORdAn"})
	require.NoError(t, err)
	require.Len(t, shoes, 1)
	assert.Equal(t, "Air Jordan 1", shoes[0].Name)

	// Search matches brand, model, and colorway too.
	shoes, err = repo.ListShoes(context.Background(), ListFilter{Search: "white/bl"})
	require.NoError(t, err)
	assert.Len(t, shoes, 2)
}

func TestCatalogListTrendingOnly(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))

	insertShoe(t, repo, "Quiet", "Nike", false)
	hot := insertShoe(t, repo, "Hot", "Jordan", true)

	shoes, err := repo.ListShoes(context.Background(), ListFilter{TrendingOnly: true})
	require.NoError(t, err)
	require.Len(t, shoes, 1)
	assert.Equal(t, hot.ID, shoes[0].ID)
}

func TestCatalogListEmptyIsNotNil(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))

	shoes, err := repo.ListShoes(context.Background(), ListFilter{})
	require.NoError(t, err)
	assert.NotNil(t, shoes)
	assert.Empty(t, shoes)
}

func TestCatalogSeedOnlyWhenEmpty(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))

	require.NoError(t, Seed(context.Background(), repo, nil))
	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(len(seedShoes)), count)

	// Second run must not duplicate.
	require.NoError(t, Seed(context.Background(), repo, nil))
	count, err = repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(len(seedShoes)), count)
}
