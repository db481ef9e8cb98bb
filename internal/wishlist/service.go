package wishlist

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/snkrsdev/snkrs-backend/internal/catalog"
	"github.com/snkrsdev/snkrs-backend/pkg/contract"
	"github.com/snkrsdev/snkrs-backend/pkg/db/models"
	pkgerrors "github.com/snkrsdev/snkrs-backend/pkg/errors"
)

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	Repo        *Repository
	CatalogRepo *catalog.Repository
}

// Service exposes business rules for a user's wishlist.
type Service interface {
	GetWishlist(ctx context.Context, userID string) ([]models.WishlistItemWithShoe, error)
	AddItem(ctx context.Context, userID string, input contract.InsertWishlistItem) (models.WishlistItem, error)
	RemoveItem(ctx context.Context, userID string, id int64) error
}

type service struct {
	repo        *Repository
	catalogRepo *catalog.Repository
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist repo is required")
	}
	if params.CatalogRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}
	return &service{repo: params.Repo, catalogRepo: params.CatalogRepo}, nil
}

func (s *service) GetWishlist(ctx context.Context, userID string) ([]models.WishlistItemWithShoe, error) {
	items, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlist")
	}
	return items, nil
}

// AddItem verifies the shoe exists and inserts the row for the acting user.
// Wanting the same shoe twice is allowed; each add is its own row.
func (s *service) AddItem(ctx context.Context, userID string, input contract.InsertWishlistItem) (models.WishlistItem, error) {
	if _, err := s.catalogRepo.FindByID(ctx, input.ShoeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.WishlistItem{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "shoe not found")
		}
		return models.WishlistItem{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shoe")
	}

	created, err := s.repo.Insert(ctx, models.WishlistItem{UserID: userID, ShoeID: input.ShoeID})
	if err != nil {
		return models.WishlistItem{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add wishlist item")
	}
	return created, nil
}

// RemoveItem deletes the row when owned by the user; absent rows succeed too.
func (s *service) RemoveItem(ctx context.Context, userID string, id int64) error {
	if err := s.repo.DeleteOwned(ctx, id, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete wishlist item")
	}
	return nil
}
