package middleware

import (
	"net/http"
	"strings"

	"github.com/snkrsdev/snkrs-backend/api/responses"
	pkgerrors "github.com/snkrsdev/snkrs-backend/pkg/errors"
	"github.com/snkrsdev/snkrs-backend/pkg/logger"
)

// Resolver determines the acting user for a request. The default deployment
// uses a fixed development identity; a real authentication layer swaps in its
// own implementation without touching handlers or services.
type Resolver interface {
	UserID(r *http.Request) (string, error)
}

// StaticResolver always resolves to the same user id.
type StaticResolver struct {
	ID string
}

func (s StaticResolver) UserID(_ *http.Request) (string, error) {
	return s.ID, nil
}

// Identity attaches the resolved user id to the request context. Requests the
// resolver cannot attribute to a user are rejected.
func Identity(resolver Resolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if resolver == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "no identity resolver configured"))
				return
			}

			userID, err := resolver.UserID(r)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "resolve identity"))
				return
			}
			if strings.TrimSpace(userID) == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "unauthenticated"))
				return
			}

			ctx := WithUserID(r.Context(), userID)
			if logg != nil {
				ctx = logg.WithUserID(ctx, userID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
