package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type failingResolver struct{}

func (failingResolver) UserID(*http.Request) (string, error) {
	return "", nil
}

func TestIdentityInjectsStaticUser(t *testing.T) {
	var gotUser string
	handler := Identity(StaticResolver{ID: "dev-user"}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/collection", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if gotUser != "dev-user" {
		t.Fatalf("expected dev-user got %q", gotUser)
	}
}

func TestIdentityRejectsEmptyUser(t *testing.T) {
	handlerCalled := false
	handler := Identity(failingResolver{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/collection", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	if handlerCalled {
		t.Fatal("handler must not run without identity")
	}
}

func TestIdentityRejectsNilResolver(t *testing.T) {
	handler := Identity(nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/collection", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
