package collection

import (
	"context"

	"gorm.io/gorm"

	"github.com/snkrsdev/snkrs-backend/pkg/db/models"
)

// Repository encapsulates collection persistence. Every row-level mutation
// filters by id AND user_id in the same statement, so a caller can never
// reach another user's rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a collection repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListForUser returns the user's collection newest first, each row joined with
// its catalog shoe.
func (r *Repository) ListForUser(ctx context.Context, userID string) ([]models.CollectionItemWithShoe, error) {
	var items []models.CollectionItem
	err := r.db.WithContext(ctx).
		Preload("Shoe").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	joined := make([]models.CollectionItemWithShoe, 0, len(items))
	for _, item := range items {
		row := models.CollectionItemWithShoe{CollectionItem: item}
		if item.Shoe != nil {
			row.Shoe = *item.Shoe
			row.CollectionItem.Shoe = nil
		}
		joined = append(joined, row)
	}
	return joined, nil
}

// Insert adds a collection row and returns it with generated fields.
func (r *Repository) Insert(ctx context.Context, item models.CollectionItem) (models.CollectionItem, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return models.CollectionItem{}, err
	}
	return item, nil
}

// FindOwned loads the row only when it belongs to the user.
func (r *Repository) FindOwned(ctx context.Context, id int64, userID string) (models.CollectionItem, error) {
	var item models.CollectionItem
	err := r.db.WithContext(ctx).
		First(&item, "id = ? AND user_id = ?", id, userID).Error
	return item, err
}

// UpdateOwned applies the column changes to the row matching both id and
// owner. It reports whether any row matched.
func (r *Repository) UpdateOwned(ctx context.Context, id int64, userID string, changes map[string]any) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.CollectionItem{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(changes)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteOwned removes the row matching both id and owner. Deleting a row that
// does not exist, or that belongs to someone else, is a no-op.
func (r *Repository) DeleteOwned(ctx context.Context, id int64, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.CollectionItem{}).
		Error
}
