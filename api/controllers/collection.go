package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snkrsdev/snkrs-backend/api/middleware"
	"github.com/snkrsdev/snkrs-backend/api/responses"
	"github.com/snkrsdev/snkrs-backend/api/validators"
	"github.com/snkrsdev/snkrs-backend/internal/collection"
	"github.com/snkrsdev/snkrs-backend/pkg/contract"
	pkgerrors "github.com/snkrsdev/snkrs-backend/pkg/errors"
	"github.com/snkrsdev/snkrs-backend/pkg/logger"
)

// CollectionList returns the acting user's collection with joined shoes.
func CollectionList(svc collection.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "collection service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(ctx)
		if userID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "unauthenticated"))
			return
		}

		items, err := svc.GetCollection(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, contract.CollectionList.Success, items)
	}
}

// CollectionAdd inserts an item into the acting user's collection.
func CollectionAdd(svc collection.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "collection service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(ctx)
		if userID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "unauthenticated"))
			return
		}

		var input contract.InsertCollectionItem
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.AddItem(ctx, userID, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, contract.CollectionAdd.Success, item)
	}
}

// CollectionUpdate applies a partial mutation to an owned item.
func CollectionUpdate(svc collection.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "collection service unavailable"))
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

		var input contract.UpdateCollectionItem
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.UpdateItem(ctx, userID, id, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, contract.CollectionUpdate.Success, item)
	}
}

// CollectionDelete removes an owned item. Absent or foreign rows are a no-op.
func CollectionDelete(svc collection.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "collection service unavailable"))
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
