package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snkrsdev/snkrs-backend/api/controllers"
	"github.com/snkrsdev/snkrs-backend/api/middleware"
	"github.com/snkrsdev/snkrs-backend/internal/catalog"
	"github.com/snkrsdev/snkrs-backend/internal/collection"
	"github.com/snkrsdev/snkrs-backend/internal/wishlist"
	"github.com/snkrsdev/snkrs-backend/pkg/config"
	"github.com/snkrsdev/snkrs-backend/pkg/contract"
	"github.com/snkrsdev/snkrs-backend/pkg/logger"
	"github.com/snkrsdev/snkrs-backend/pkg/metrics"
	"github.com/snkrsdev/snkrs-backend/pkg/redis"
)

// RouterParams groups everything the HTTP surface needs.
type RouterParams struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             controllers.Pinger
	Redis          *redis.Client
	Identity       middleware.Resolver
	RequestMetrics *metrics.RequestMetrics
	MetricsHandler http.Handler
	Catalog        catalog.Service
	Collection     collection.Service
	Wishlist       wishlist.Service
}

// NewRouter mounts the API using the contract's endpoint descriptors, so the
// served routes cannot drift from what the typed client calls.
func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.Metrics(p.RequestMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.DB, redisPinger(p.Redis)))
	})

	if p.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", p.MetricsHandler)
	}

	// Catalog routes are public; creation gets idempotent replay when a redis
	// client is configured.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Idempotency(idempotencyStore(p.Redis), p.Logger))

		mount(r, contract.ShoesList, controllers.ShoesList(p.Catalog, p.Logger))
		mount(r, contract.ShoesGet, controllers.ShoesGet(p.Catalog, p.Logger))
		mount(r, contract.ShoesCreate, controllers.ShoesCreate(p.Catalog, p.Logger))
	})

	// Identity must resolve before idempotency so replay records are scoped
	// per user and unauthenticated requests never reach a stored response.
	r.Group(func(r chi.Router) {
		r.Use(
			middleware.Identity(p.Identity, p.Logger),
			middleware.Idempotency(idempotencyStore(p.Redis), p.Logger),
		)

		mount(r, contract.CollectionList, controllers.CollectionList(p.Collection, p.Logger))
		mount(r, contract.CollectionAdd, controllers.CollectionAdd(p.Collection, p.Logger))
		mount(r, contract.CollectionUpdate, controllers.CollectionUpdate(p.Collection, p.Logger))
		mount(r, contract.CollectionDelete, controllers.CollectionDelete(p.Collection, p.Logger))

		mount(r, contract.WishlistList, controllers.WishlistList(p.Wishlist, p.Logger))
		mount(r, contract.WishlistAdd, controllers.WishlistAdd(p.Wishlist, p.Logger))
		mount(r, contract.WishlistDelete, controllers.WishlistDelete(p.Wishlist, p.Logger))
	})

	return r
}

func mount(r chi.Router, e contract.Endpoint, handler http.HandlerFunc) {
	r.Method(e.Method, e.ChiPattern(), handler)
}

func redisPinger(client *redis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}

func idempotencyStore(client *redis.Client) redis.IdempotencyStore {
	if client == nil {
		return nil
	}
	return client
}
