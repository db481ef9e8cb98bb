package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snkrsdev/snkrs-backend/api/responses"
	"github.com/snkrsdev/snkrs-backend/api/validators"
	"github.com/snkrsdev/snkrs-backend/internal/catalog"
	"github.com/snkrsdev/snkrs-backend/pkg/contract"
	pkgerrors "github.com/snkrsdev/snkrs-backend/pkg/errors"
	"github.com/snkrsdev/snkrs-backend/pkg/logger"
)

// ShoesList returns the catalog, optionally filtered by search and trending.
func ShoesList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		trending, err := validators.ParseQueryBool(r, "trending", false)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		shoes, err := svc.ListShoes(ctx, catalog.ListFilter{
			Search:       r.URL.Query().Get("search"),
			TrendingOnly: trending,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, contract.ShoesList.Success, shoes)
	}
}

// ShoesGet returns a single catalog entry by id.
func ShoesGet(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := validators.ParsePathID(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		shoe, err := svc.GetShoe(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, contract.ShoesGet.Success, shoe)
	}
}

// ShoesCreate adds a new catalog entry.
func ShoesCreate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var input contract.InsertShoe
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		shoe, err := svc.CreateShoe(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, contract.ShoesCreate.Success, shoe)
	}
}
