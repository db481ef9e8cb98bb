package wishlist

import (
	"context"

	"gorm.io/gorm"

	"github.com/snkrsdev/snkrs-backend/pkg/db/models"
)

// Repository encapsulates wishlist persistence. Deletes filter by id AND
// user_id in one statement so the ownership check cannot race the removal.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a wishlist repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListForUser returns the user's wishlist newest first, each row joined with
// its catalog shoe.
func (r *Repository) ListForUser(ctx context.Context, userID string) ([]models.WishlistItemWithShoe, error) {
	var items []models.WishlistItem
	err := r.db.WithContext(ctx).
		Preload("Shoe").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	joined := make([]models.WishlistItemWithShoe, 0, len(items))
	for _, item := range items {
		row := models.WishlistItemWithShoe{WishlistItem: item}
		if item.Shoe != nil {
			row.Shoe = *item.Shoe
			row.WishlistItem.Shoe = nil
		}
		joined = append(joined, row)
	}
	return joined, nil
}

// Insert adds a wishlist row and returns it with generated fields.
func (r *Repository) Insert(ctx context.Context, item models.WishlistItem) (models.WishlistItem, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return models.WishlistItem{}, err
	}
	return item, nil
}

// DeleteOwned removes the row matching both id and owner. Absent rows and
// rows owned by someone else are a no-op.
func (r *Repository) DeleteOwned(ctx context.Context, id int64, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.WishlistItem{}).
		Error
}
