package catalog

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/snkrsdev/snkrs-backend/pkg/db/models"
)

// ListFilter narrows the catalog listing. Zero value means "everything".
type ListFilter struct {
	Search       string
	TrendingOnly bool
}

// Repository encapsulates shoe catalog persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListShoes returns catalog entries newest first, optionally filtered by a
// case-insensitive substring over name, brand, model, and colorway, and by the
// trending flag.
func (r *Repository) ListShoes(ctx context.Context, filter ListFilter) ([]models.Shoe, error) {
	query := r.db.WithContext(ctx).Model(&models.Shoe{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"lower(name) LIKE ? OR lower(brand) LIKE ? OR lower(model) LIKE ? OR lower(colorway) LIKE ?",
			needle, needle, needle, needle,
		)
	}
	if filter.TrendingOnly {
		query = query.Where("is_trending = ?", true)
	}

	var shoes []models.Shoe
	if err := query.Order("created_at DESC").Order("id DESC").Find(&shoes).Error; err != nil {
		return nil, err
	}
	if shoes == nil {
		shoes = []models.Shoe{}
	}
	return shoes, nil
}

// FindByID loads a single shoe or gorm.ErrRecordNotFound.
func (r *Repository) FindByID(ctx context.Context, id int64) (models.Shoe, error) {
	var shoe models.Shoe
	err := r.db.WithContext(ctx).First(&shoe, "id = ?", id).Error
	return shoe, err
}

// Create inserts a shoe and returns it with the generated id and timestamp.
func (r *Repository) Create(ctx context.Context, shoe models.Shoe) (models.Shoe, error) {
	if err := r.db.WithContext(ctx).Create(&shoe).Error; err != nil {
		return models.Shoe{}, err
	}
	return shoe, nil
}

// Count returns the number of catalog entries.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Shoe{}).Count(&count).Error
	return count, err
}
