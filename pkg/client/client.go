// Package client is the typed consumer of the API contract. It builds every
// request from the same endpoint descriptors the server mounts and validates
// payloads with the same rules, so the two sides cannot silently drift apart.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/snkrsdev/snkrs-backend/pkg/contract"
	"github.com/snkrsdev/snkrs-backend/pkg/db/models"
)

// APIError is a non-2xx response decoded into the contract's error body.
type APIError struct {
	Status  int
	Message string
	Field   string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("api error %d: %s (field %s)", e.Status, e.Message, e.Field)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether the error is a 404 from the API.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

// Doer lets callers swap the transport (retries, tracing, test doubles).
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

type cacheKey string

const (
	cacheShoes      cacheKey = "shoes"
	cacheCollection cacheKey = "collection"
	cacheWishlist   cacheKey = "wishlist"
)

// Client talks to the sneaker API. Unfiltered list responses are cached until
// a mutation of the same resource invalidates them, mirroring the query-cache
// behavior of the original web client.
type Client struct {
	baseURL string
	http    Doer

	mu    sync.Mutex
	cache map[cacheKey]any
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default transport.
func WithHTTPClient(doer Doer) Option {
	return func(c *Client) {
		if doer != nil {
			c.http = doer
		}
	}
}

// New builds a client for the API served at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		cache:   make(map[cacheKey]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) cached(key cacheKey) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.cache[key]
	return value, ok
}

func (c *Client) store(key cacheKey, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = value
}

func (c *Client) invalidate(keys ...cacheKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.cache, key)
	}
}

// ShoeFilters narrows ListShoes. The zero value lists everything.
type ShoeFilters struct {
	Search   string
	Trending bool
}

func (f ShoeFilters) empty() bool {
	return f.Search == "" && !f.Trending
}

// ListShoes fetches the catalog. Unfiltered results are served from cache
// until the catalog is mutated.
func (c *Client) ListShoes(ctx context.Context, filters ShoeFilters) ([]models.Shoe, error) {
	if filters.empty() {
		if value, ok := c.cached(cacheShoes); ok {
			return value.([]models.Shoe), nil
		}
	}

	query := url.Values{}
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}
	if filters.Trending {
		query.Set("trending", "true")
	}

	var shoes []models.Shoe
	if err := c.call(ctx, contract.ShoesList, nil, query, nil, &shoes); err != nil {
		return nil, err
	}
	if filters.empty() {
		c.store(cacheShoes, shoes)
	}
	return shoes, nil
}

// GetShoe fetches one catalog entry.
func (c *Client) GetShoe(ctx context.Context, id int64) (models.Shoe, error) {
	var shoe models.Shoe
	err := c.call(ctx, contract.ShoesGet, map[string]any{"id": id}, nil, nil, &shoe)
	return shoe, err
}

// CreateShoe validates and adds a catalog entry.
func (c *Client) CreateShoe(ctx context.Context, input contract.InsertShoe) (models.Shoe, error) {
	if err := contract.Validate(input); err != nil {
		return models.Shoe{}, err
	}
	var shoe models.Shoe
	if err := c.call(ctx, contract.ShoesCreate, nil, nil, input, &shoe); err != nil {
		return models.Shoe{}, err
	}
	c.invalidate(cacheShoes)
	return shoe, nil
}

// GetCollection fetches the acting user's collection with joined shoes.
func (c *Client) GetCollection(ctx context.Context) ([]models.CollectionItemWithShoe, error) {
	if value, ok := c.cached(cacheCollection); ok {
		return value.([]models.CollectionItemWithShoe), nil
	}

	var items []models.CollectionItemWithShoe
	if err := c.call(ctx, contract.CollectionList, nil, nil, nil, &items); err != nil {
		return nil, err
	}
	c.store(cacheCollection, items)
	return items, nil
}

// AddToCollection validates and inserts an owned item.
func (c *Client) AddToCollection(ctx context.Context, input contract.InsertCollectionItem) (models.CollectionItem, error) {
	if err := contract.Validate(input); err != nil {
		return models.CollectionItem{}, err
	}
	var item models.CollectionItem
	if err := c.call(ctx, contract.CollectionAdd, nil, nil, input, &item); err != nil {
		return models.CollectionItem{}, err
	}
	c.invalidate(cacheCollection)
	return item, nil
}

// UpdateCollectionItem applies a partial mutation to an owned item.
func (c *Client) UpdateCollectionItem(ctx context.Context, id int64, input contract.UpdateCollectionItem) (models.CollectionItem, error) {
	if err := contract.Validate(input); err != nil {
		return models.CollectionItem{}, err
	}
	var item models.CollectionItem
	if err := c.call(ctx, contract.CollectionUpdate, map[string]any{"id": id}, nil, input, &item); err != nil {
		return models.CollectionItem{}, err
	}
	c.invalidate(cacheCollection)
	return item, nil
}

// DeleteCollectionItem removes an owned item. Absent items succeed too.
func (c *Client) DeleteCollectionItem(ctx context.Context, id int64) error {
	if err := c.call(ctx, contract.CollectionDelete, map[string]any{"id": id}, nil, nil, nil); err != nil {
		return err
	}
	c.invalidate(cacheCollection)
	return nil
}

// GetWishlist fetches the acting user's wishlist with joined shoes.
func (c *Client) GetWishlist(ctx context.Context) ([]models.WishlistItemWithShoe, error) {
	if value, ok := c.cached(cacheWishlist); ok {
		return value.([]models.WishlistItemWithShoe), nil
	}

	var items []models.WishlistItemWithShoe
	if err := c.call(ctx, contract.WishlistList, nil, nil, nil, &items); err != nil {
		return nil, err
	}
	c.store(cacheWishlist, items)
	return items, nil
}

// AddToWishlist validates and adds a shoe to the wishlist.
func (c *Client) AddToWishlist(ctx context.Context, input contract.InsertWishlistItem) (models.WishlistItem, error) {
	if err := contract.Validate(input); err != nil {
		return models.WishlistItem{}, err
	}
	var item models.WishlistItem
	if err := c.call(ctx, contract.WishlistAdd, nil, nil, input, &item); err != nil {
		return models.WishlistItem{}, err
	}
	c.invalidate(cacheWishlist)
	return item, nil
}

// DeleteWishlistItem removes a wishlist row. Absent rows succeed too.
func (c *Client) DeleteWishlistItem(ctx context.Context, id int64) error {
	if err := c.call(ctx, contract.WishlistDelete, map[string]any{"id": id}, nil, nil, nil); err != nil {
		return err
	}
	c.invalidate(cacheWishlist)
	return nil
}

func (c *Client) call(ctx context.Context, endpoint contract.Endpoint, params map[string]any, query url.Values, body any, out any) error {
	target := c.baseURL + endpoint.URL(params)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, endpoint.Method, target, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", endpoint.Method, endpoint.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != endpoint.Success {
		return decodeAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var body contract.ValidationError
	if err := json.Unmarshal(raw, &body); err != nil || body.Message == "" {
		body.Message = strings.TrimSpace(string(raw))
		if body.Message == "" {
			body.Message = http.StatusText(resp.StatusCode)
		}
	}
	return &APIError{
		Status:  resp.StatusCode,
		Message: body.Message,
		Field:   body.Field,
	}
}
