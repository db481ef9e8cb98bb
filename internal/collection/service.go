package collection

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/snkrsdev/snkrs-backend/internal/catalog"
	"github.com/snkrsdev/snkrs-backend/pkg/contract"
	"github.com/snkrsdev/snkrs-backend/pkg/db/models"
	pkgerrors "github.com/snkrsdev/snkrs-backend/pkg/errors"
)

const defaultCondition = "new"

// ServiceParams groups dependencies for the collection service.
type ServiceParams struct {
	Repo        *Repository
	CatalogRepo *catalog.Repository
}

// Service exposes business rules for a user's owned collection.
type Service interface {
	GetCollection(ctx context.Context, userID string) ([]models.CollectionItemWithShoe, error)
	AddItem(ctx context.Context, userID string, input contract.InsertCollectionItem) (models.CollectionItem, error)
	UpdateItem(ctx context.Context, userID string, id int64, input contract.UpdateCollectionItem) (models.CollectionItem, error)
	RemoveItem(ctx context.Context, userID string, id int64) error
}

type service struct {
	repo        *Repository
	catalogRepo *catalog.Repository
}

// NewService builds a collection service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "collection repo is required")
	}
	if params.CatalogRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}
	return &service{repo: params.Repo, catalogRepo: params.CatalogRepo}, nil
}

func (s *service) GetCollection(ctx context.Context, userID string) ([]models.CollectionItemWithShoe, error) {
	items, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list collection")
	}
	return items, nil
}

// AddItem verifies the referenced shoe exists and inserts the row for the
// acting user. The owner always comes from the request identity.
func (s *service) AddItem(ctx context.Context, userID string, input contract.InsertCollectionItem) (models.CollectionItem, error) {
	if err := s.ensureShoe(ctx, input.ShoeID); err != nil {
		return models.CollectionItem{}, err
	}

	condition := input.Condition
	if condition == "" {
		condition = defaultCondition
	}

	item := models.CollectionItem{
		UserID:        userID,
		ShoeID:        input.ShoeID,
		Size:          input.Size,
		PurchasePrice: input.PurchasePrice,
		PurchaseDate:  input.PurchaseDate,
		Condition:     condition,
		Notes:         input.Notes,
	}
	created, err := s.repo.Insert(ctx, item)
	if err != nil {
		return models.CollectionItem{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add collection item")
	}
	return created, nil
}

// UpdateItem applies a partial mutation. Rows owned by other users look
// exactly like absent rows: both come back as not found.
func (s *service) UpdateItem(ctx context.Context, userID string, id int64, input contract.UpdateCollectionItem) (models.CollectionItem, error) {
	if input.ShoeID != nil {
		if err := s.ensureShoe(ctx, *input.ShoeID); err != nil {
			return models.CollectionItem{}, err
		}
	}

	changes := buildChanges(input)
	if len(changes) == 0 {
		item, err := s.repo.FindOwned(ctx, id, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.CollectionItem{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "collection item not found")
			}
			return models.CollectionItem{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load collection item")
		}
		return item, nil
	}

	matched, err := s.repo.UpdateOwned(ctx, id, userID, changes)
	if err != nil {
		return models.CollectionItem{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update collection item")
	}
	if !matched {
		return models.CollectionItem{}, pkgerrors.New(pkgerrors.CodeNotFound, "collection item not found")
	}

	item, err := s.repo.FindOwned(ctx, id, userID)
	if err != nil {
		return models.CollectionItem{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload collection item")
	}
	return item, nil
}

// RemoveItem deletes the row when owned by the user. It succeeds regardless
// of whether a row was deleted.
func (s *service) RemoveItem(ctx context.Context, userID string, id int64) error {
	if err := s.repo.DeleteOwned(ctx, id, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete collection item")
	}
	return nil
}

func (s *service) ensureShoe(ctx context.Context, shoeID int64) error {
	if _, err := s.catalogRepo.FindByID(ctx, shoeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "shoe not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shoe")
	}
	return nil
}

func buildChanges(input contract.UpdateCollectionItem) map[string]any {
	changes := map[string]any{}
	if input.ShoeID != nil {
		changes["shoe_id"] = *input.ShoeID
	}
	if input.Size != nil {
		changes["size"] = *input.Size
	}
	if input.PurchasePrice != nil {
		changes["purchase_price"] = *input.PurchasePrice
	}
	if input.PurchaseDate != nil {
		changes["purchase_date"] = *input.PurchaseDate
	}
	if input.Condition != nil {
		changes["condition"] = *input.Condition
	}
	if input.Notes != nil {
		changes["notes"] = *input.Notes
	}
	return changes
}
