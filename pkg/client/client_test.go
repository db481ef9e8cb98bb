package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/snkrsdev/snkrs-backend/pkg/contract"
	"github.com/snkrsdev/snkrs-backend/pkg/db/models"
	pkgerrors "github.com/snkrsdev/snkrs-backend/pkg/errors"
)

func intPtr(v int) *int {
	return &v
}

func TestListShoesSendsFilters(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Shoe{{ID: 1, Name: "Dunk Low"}})
	}))
	defer server.Close()

	c := New(server.URL)
	shoes, err := c.ListShoes(context.Background(), ShoeFilters{Search: "dunk", Trending: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shoes) != 1 || shoes[0].Name != "Dunk Low" {
		t.Fatalf("unexpected shoes: %+v", shoes)
	}
	if gotPath != "/api/shoes" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if gotQuery != "search=dunk&trending=true" {
		t.Fatalf("unexpected query: %q", gotQuery)
	}
}

func TestGetShoeBuildsIDPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/shoes/42" {
			t.Errorf("unexpected path: %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Shoe{ID: 42})
	}))
	defer server.Close()

	shoe, err := New(server.URL).GetShoe(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shoe.ID != 42 {
		t.Fatalf("unexpected shoe id: %d", shoe.ID)
	}
}

func TestCreateShoeSendsJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %q", ct)
		}
		var input contract.InsertShoe
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Shoe{ID: 7, Name: input.Name})
	}))
	defer server.Close()

	shoe, err := New(server.URL).CreateShoe(context.Background(), contract.InsertShoe{
		Name:        "Air Jordan 1",
		Brand:       "Jordan",
		Model:       "AJ1",
		Colorway:    "Chicago",
		RetailPrice: intPtr(18000),
		ImageURL:    "https://example.com/aj1.jpg",
		Description: "classic",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shoe.ID != 7 || shoe.Name != "Air Jordan 1" {
		t.Fatalf("unexpected shoe: %+v", shoe)
	}
}

func TestCreateShoeValidatesBeforeSending(t *testing.T) {
	serverHit := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverHit = true
	}))
	defer server.Close()

	_, err := New(server.URL).CreateShoe(context.Background(), contract.InsertShoe{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
	if serverHit {
		t.Fatal("invalid payload must not reach the server")
	}
}

func TestValidationErrorDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(contract.ValidationError{Message: "size is required", Field: "size"})
	}))
	defer server.Close()

	// The payload passes local validation; the server still gets the last word.
	_, err := New(server.URL).AddToCollection(context.Background(), contract.InsertCollectionItem{ShoeID: 1, Size: "10"})
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError got %T", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Field != "size" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestListShoesCacheInvalidatedByMutation(t *testing.T) {
	listCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(models.Shoe{ID: 2})
			return
		}
		listCalls++
		_ = json.NewEncoder(w).Encode([]models.Shoe{{ID: 1}})
	}))
	defer server.Close()

	c := New(server.URL)
	ctx := context.Background()

	if _, err := c.ListShoes(ctx, ShoeFilters{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.ListShoes(ctx, ShoeFilters{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listCalls != 1 {
		t.Fatalf("expected cached second read, server saw %d list calls", listCalls)
	}

	// Filtered reads bypass the cache.
	if _, err := c.ListShoes(ctx, ShoeFilters{Trending: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listCalls != 2 {
		t.Fatalf("expected filtered read to hit the server, saw %d", listCalls)
	}

	if _, err := c.CreateShoe(ctx, contract.InsertShoe{
		Name:        "Air Jordan 1",
		Brand:       "Jordan",
		Model:       "AJ1",
		Colorway:    "Chicago",
		RetailPrice: intPtr(18000),
		ImageURL:    "https://example.com/aj1.jpg",
		Description: "classic",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.ListShoes(ctx, ShoeFilters{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listCalls != 3 {
		t.Fatalf("expected mutation to invalidate cache, saw %d list calls", listCalls)
	}
}

func TestNotFoundDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(contract.NotFoundError{Message: "shoe not found"})
	}))
	defer server.Close()

	_, err := New(server.URL).GetShoe(context.Background(), 424242)
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDeleteAcceptsNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("unexpected method: %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	if err := New(server.URL).DeleteCollectionItem(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := New(server.URL).DeleteWishlistItem(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
