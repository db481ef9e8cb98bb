package catalog

import (
	"context"

	"github.com/snkrsdev/snkrs-backend/pkg/db/models"
	pkgerrors "github.com/snkrsdev/snkrs-backend/pkg/errors"
	"github.com/snkrsdev/snkrs-backend/pkg/logger"
)

func intPtr(v int) *int { return &v }

var seedShoes = []models.Shoe{
	{
		Name:        "Air Jordan 1 Retro High OG 'Lost & Found'",
		Brand:       "Jordan",
		Model:       "Air Jordan 1",
		Colorway:    "Varsity Red/Black/Sail/Muslin",
		RetailPrice: 18000,
		MarketPrice: intPtr(35000),
		ImageURL:    "https://images.unsplash.com/photo-1556906781-9a412961c28c",
		Description: "A tribute to the original 1985 Chicago colorway with vintage-style details.",
		IsTrending:  true,
	},
	{
		Name:        "Nike Dunk Low 'Panda'",
		Brand:       "Nike",
		Model:       "Dunk Low",
		Colorway:    "White/Black",
		RetailPrice: 11000,
		MarketPrice: intPtr(15000),
		ImageURL:    "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a",
		Description: "The ever-popular two-tone Dunk that sells out on every restock.",
		IsTrending:  true,
	},
}

// Seed inserts the starter catalog when the shoes table is empty. It is only
// invoked from dev bootstrapping, never in production.
func Seed(ctx context.Context, repo *Repository, logg *logger.Logger) error {
	if repo == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}

	count, err := repo.Count(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count shoes")
	}
	if count > 0 {
		return nil
	}

	for _, shoe := range seedShoes {
		if _, err := repo.Create(ctx, shoe); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed shoe")
		}
	}
	if logg != nil {
		logg.Info(logg.WithField(ctx, "count", len(seedShoes)), "catalog.seeded")
	}
	return nil
}
