package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/snkrsdev/snkrs-backend/api/middleware"
	"github.com/snkrsdev/snkrs-backend/internal/catalog"
	"github.com/snkrsdev/snkrs-backend/internal/collection"
	"github.com/snkrsdev/snkrs-backend/internal/wishlist"
	"github.com/snkrsdev/snkrs-backend/pkg/config"
	"github.com/snkrsdev/snkrs-backend/pkg/contract"
	"github.com/snkrsdev/snkrs-backend/pkg/db/models"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

func setupRouterTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS shoes (
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
);`,
		`CREATE TABLE IF NOT EXISTS collection_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  shoe_id INTEGER NOT NULL,
  size TEXT NOT NULL,
  purchase_price INTEGER,
  purchase_date TEXT,
  condition TEXT NOT NULL DEFAULT 'new',
  notes TEXT,
  created_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS wishlist_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  shoe_id INTEGER NOT NULL,
  created_at DATETIME
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func setupTestRouter(t *testing.T) http.Handler {
	t.Helper()
	db := setupRouterTestDB(t)

	catalogRepo := catalog.NewRepository(db)
	catalogService, err := catalog.NewService(catalog.ServiceParams{Repo: catalogRepo})
	require.NoError(t, err)
	collectionService, err := collection.NewService(collection.ServiceParams{
		Repo:        collection.NewRepository(db),
		CatalogRepo: catalogRepo,
	})
	require.NoError(t, err)
	wishlistService, err := wishlist.NewService(wishlist.ServiceParams{
		Repo:        wishlist.NewRepository(db),
		CatalogRepo: catalogRepo,
	})
	require.NoError(t, err)

	return NewRouter(RouterParams{
		Config:     &config.Config{App: config.AppConfig{Env: "test"}},
		DB:         stubPinger{},
		Identity:   middleware.StaticResolver{ID: "dev-user"},
		Catalog:    catalogService,
		Collection: collectionService,
		Wishlist:   wishlistService,
	})
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

const validShoePayload = `{
	"name": "Air Jordan 1 Retro High OG 'Lost & Found'",
	"brand": "Jordan",
	"model": "Air Jordan 1",
	"colorway": "Varsity Red/Black/Sail/Muslin",
	"retailPrice": 18000,
	"marketPrice": 35000,
	"imageUrl": "https://example.com/aj1.jpg",
	"description": "A tribute to the original 1985 colorway.",
	"isTrending": true
}`

func TestCreateThenFetchShoeRoundTrip(t *testing.T) {
	router := setupTestRouter(t)

	created := doJSON(t, router, http.MethodPost, "/api/shoes", validShoePayload)
	require.Equal(t, http.StatusCreated, created.Code)

	var shoe models.Shoe
	require.NoError(t, json.NewDecoder(created.Body).Decode(&shoe))
	require.NotZero(t, shoe.ID)
	assert.Equal(t, 18000, shoe.RetailPrice)

	fetched := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/shoes/%d", shoe.ID), "")
	require.Equal(t, http.StatusOK, fetched.Code)

	var got models.Shoe
	require.NoError(t, json.NewDecoder(fetched.Body).Decode(&got))
	assert.Equal(t, shoe.ID, got.ID)
	assert.Equal(t, "Jordan", got.Brand)
	require.NotNil(t, got.MarketPrice)
	assert.Equal(t, 35000, *got.MarketPrice)
}

func TestShoeValidationErrorShape(t *testing.T) {
	router := setupTestRouter(t)

	payload := `{
		"name": "Air Jordan 1",
		"model": "AJ1",
		"colorway": "Chicago",
		"retailPrice": 18000,
		"imageUrl": "https://example.com/aj1.jpg",
		"description": "classic"
	}`
	resp := doJSON(t, router, http.MethodPost, "/api/shoes", payload)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body contract.ValidationError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "brand", body.Field)
	assert.NotEmpty(t, body.Message)
}

func TestShoeNotFoundShape(t *testing.T) {
	router := setupTestRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/api/shoes/424242", "")
	require.Equal(t, http.StatusNotFound, resp.Code)

	var body contract.NotFoundError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Message)
}

func TestTrendingFilter(t *testing.T) {
	router := setupTestRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/shoes", validShoePayload).Code)
	quiet := strings.Replace(validShoePayload, `"isTrending": true`, `"isTrending": false`, 1)
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/shoes", quiet).Code)

	resp := doJSON(t, router, http.MethodGet, "/api/shoes?trending=true", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var shoes []models.Shoe
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&shoes))
	require.Len(t, shoes, 1)
	assert.True(t, shoes[0].IsTrending)
}

func TestCollectionLifecycle(t *testing.T) {
	router := setupTestRouter(t)

	created := doJSON(t, router, http.MethodPost, "/api/shoes", validShoePayload)
	require.Equal(t, http.StatusCreated, created.Code)
	var shoe models.Shoe
	require.NoError(t, json.NewDecoder(created.Body).Decode(&shoe))

	addPayload := fmt.Sprintf(`{"shoeId": %d, "size": "10.5", "purchasePrice": 18000, "purchaseDate": "2023-11-20", "condition": "new", "notes": "Black Friday pickup"}`, shoe.ID)
	added := doJSON(t, router, http.MethodPost, "/api/collection", addPayload)
	require.Equal(t, http.StatusCreated, added.Code)

	var item models.CollectionItem
	require.NoError(t, json.NewDecoder(added.Body).Decode(&item))
	require.NotZero(t, item.ID)
	assert.Equal(t, "dev-user", item.UserID)
	assert.Equal(t, "new", item.Condition)
	require.NotNil(t, item.PurchasePrice)
	assert.Equal(t, 18000, *item.PurchasePrice)

	listed := doJSON(t, router, http.MethodGet, "/api/collection", "")
	require.Equal(t, http.StatusOK, listed.Code)
	var rows []struct {
		ID   int64 `json:"id"`
		Shoe struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"shoe"`
	}
	require.NoError(t, json.NewDecoder(listed.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, shoe.ID, rows[0].Shoe.ID)

	updated := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/collection/%d", item.ID), `{"size": "11"}`)
	require.Equal(t, http.StatusOK, updated.Code)
	var after models.CollectionItem
	require.NoError(t, json.NewDecoder(updated.Body).Decode(&after))
	assert.Equal(t, "11", after.Size)
	assert.Equal(t, "new", after.Condition)

	deleted := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/collection/%d", item.ID), "")
	require.Equal(t, http.StatusNoContent, deleted.Code)

	// Deleting again still succeeds.
	deleted = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/collection/%d", item.ID), "")
	require.Equal(t, http.StatusNoContent, deleted.Code)
}

func TestCollectionAddUnknownShoe(t *testing.T) {
	router := setupTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/collection", `{"shoeId": 424242, "size": "10"}`)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestWishlistLifecycle(t *testing.T) {
	router := setupTestRouter(t)

	created := doJSON(t, router, http.MethodPost, "/api/shoes", validShoePayload)
	require.Equal(t, http.StatusCreated, created.Code)
	var shoe models.Shoe
	require.NoError(t, json.NewDecoder(created.Body).Decode(&shoe))

	added := doJSON(t, router, http.MethodPost, "/api/wishlist", fmt.Sprintf(`{"shoeId": %d}`, shoe.ID))
	require.Equal(t, http.StatusCreated, added.Code)
	var item models.WishlistItem
	require.NoError(t, json.NewDecoder(added.Body).Decode(&item))
	assert.Equal(t, "dev-user", item.UserID)

	listed := doJSON(t, router, http.MethodGet, "/api/wishlist", "")
	require.Equal(t, http.StatusOK, listed.Code)

	deleted := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/wishlist/%d", item.ID), "")
	require.Equal(t, http.StatusNoContent, deleted.Code)
}

func TestHealthEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	live := doJSON(t, router, http.MethodGet, "/health/live", "")
	require.Equal(t, http.StatusOK, live.Code)

	ready := doJSON(t, router, http.MethodGet, "/health/ready", "")
	require.Equal(t, http.StatusOK, ready.Code)
}
