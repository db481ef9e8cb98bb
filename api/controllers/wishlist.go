package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snkrsdev/snkrs-backend/api/middleware"
	"github.com/snkrsdev/snkrs-backend/api/responses"
	"github.com/snkrsdev/snkrs-backend/api/validators"
	"github.com/snkrsdev/snkrs-backend/internal/wishlist"
	"github.com/snkrsdev/snkrs-backend/pkg/contract"
	pkgerrors "github.com/snkrsdev/snkrs-backend/pkg/errors"
	"github.com/snkrsdev/snkrs-backend/pkg/logger"
)

// WishlistList returns the acting user's wishlist with joined shoes.
func WishlistList(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(ctx)
		if userID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "unauthenticated"))
			return
		}

		items, err := svc.GetWishlist(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, contract.WishlistList.Success, items)
	}
}

// WishlistAdd adds a shoe to the acting user's wishlist.
func WishlistAdd(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(ctx)
		if userID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "unauthenticated"))
			return
		}

		var input contract.InsertWishlistItem
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.AddItem(ctx, userID, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, contract.WishlistAdd.Success, item)
	}
}

// WishlistDelete removes a wishlist row. Absent or foreign rows are a no-op.
func WishlistDelete(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(ctx)
		if userID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "unauthenticated"))
			return
		}

		id, err := validators.ParsePathID(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.RemoveItem(ctx, userID, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}
