// Package contract is the single source of truth for the HTTP API: one
// descriptor per operation (method, path template, expected success status)
// plus the input types both sides validate against. The server router and the
// typed client both import this package, so request and response shapes cannot
// drift apart.
package contract

import (
	"fmt"
	"net/http"
	"strings"
)

// Endpoint describes one API operation. Path templates use a single ":name"
// placeholder per resource id, substituted by BuildURL.
type Endpoint struct {
	Method  string
	Path    string
	Success int
}

var (
	ShoesList   = Endpoint{Method: http.MethodGet, Path: "/api/shoes", Success: http.StatusOK}
	ShoesGet    = Endpoint{Method: http.MethodGet, Path: "/api/shoes/:id", Success: http.StatusOK}
	ShoesCreate = Endpoint{Method: http.MethodPost, Path: "/api/shoes", Success: http.StatusCreated}

	CollectionList   = Endpoint{Method: http.MethodGet, Path: "/api/collection", Success: http.StatusOK}
	CollectionAdd    = Endpoint{Method: http.MethodPost, Path: "/api/collection", Success: http.StatusCreated}
	CollectionUpdate = Endpoint{Method: http.MethodPut, Path: "/api/collection/:id", Success: http.StatusOK}
	CollectionDelete = Endpoint{Method: http.MethodDelete, Path: "/api/collection/:id", Success: http.StatusNoContent}

	WishlistList   = Endpoint{Method: http.MethodGet, Path: "/api/wishlist", Success: http.StatusOK}
	WishlistAdd    = Endpoint{Method: http.MethodPost, Path: "/api/wishlist", Success: http.StatusCreated}
	WishlistDelete = Endpoint{Method: http.MethodDelete, Path: "/api/wishlist/:id", Success: http.StatusNoContent}
)

// BuildURL substitutes ":key" tokens in the path template with literal values.
func BuildURL(path string, params map[string]any) string {
	url := path
	for key, value := range params {
		token := ":" + key
		if strings.Contains(url, token) {
			url = strings.Replace(url, token, fmt.Sprint(value), 1)
		}
	}
	return url
}

// ChiPattern rewrites the ":id" template into the "{id}" form chi mounts.
func (e Endpoint) ChiPattern() string {
	segments := strings.Split(e.Path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			segments[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

// URL builds the concrete request URL for this endpoint.
func (e Endpoint) URL(params map[string]any) string {
	return BuildURL(e.Path, params)
}

// ValidationError is the 400 body: the first failing field's message and its
// dotted path.
type ValidationError struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// NotFoundError is the 404 (and generic error) body.
type NotFoundError struct {
	Message string `json:"message"`
}

// InsertShoe is the catalog-add payload. Prices are integer minor units.
type InsertShoe struct {
	Name        string `json:"name" validate:"required"`
	Brand       string `json:"brand" validate:"required"`
	Model       string `json:"model" validate:"required"`
	Colorway    string `json:"colorway" validate:"required"`
	RetailPrice *int   `json:"retailPrice" validate:"required,gte=0"`
	MarketPrice *int   `json:"marketPrice" validate:"omitempty,gte=0"`
	ImageURL    string `json:"imageUrl" validate:"required,url"`
	Description string `json:"description" validate:"required"`
	IsTrending  bool   `json:"isTrending"`
}

// InsertCollectionItem is the add-to-collection payload. The owner is taken
// from the request identity, never from the body.
type InsertCollectionItem struct {
	ShoeID        int64   `json:"shoeId" validate:"required,gt=0"`
	Size          string  `json:"size" validate:"required"`
	PurchasePrice *int    `json:"purchasePrice" validate:"omitempty,gte=0"`
	PurchaseDate  *string `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02"`
	Condition     string  `json:"condition" validate:"omitempty,oneof=new used worn"`
	Notes         *string `json:"notes"`
}

// UpdateCollectionItem is the partial mutation payload; nil fields are left
// untouched.
type UpdateCollectionItem struct {
	ShoeID        *int64  `json:"shoeId" validate:"omitempty,gt=0"`
	Size          *string `json:"size" validate:"omitempty,min=1"`
	PurchasePrice *int    `json:"purchasePrice" validate:"omitempty,gte=0"`
	PurchaseDate  *string `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02"`
	Condition     *string `json:"condition" validate:"omitempty,oneof=new used worn"`
	Notes         *string `json:"notes"`
}

// Empty reports whether the update carries no changes at all.
func (u UpdateCollectionItem) Empty() bool {
	return u.ShoeID == nil && u.Size == nil && u.PurchasePrice == nil &&
		u.PurchaseDate == nil && u.Condition == nil && u.Notes == nil
}

// InsertWishlistItem is the add-to-wishlist payload.
type InsertWishlistItem struct {
	ShoeID int64 `json:"shoeId" validate:"required,gt=0"`
}
