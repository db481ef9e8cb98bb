package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/snkrsdev/snkrs-backend/pkg/contract"
	"github.com/snkrsdev/snkrs-backend/pkg/db/models"
	pkgerrors "github.com/snkrsdev/snkrs-backend/pkg/errors"
)

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Repo *Repository
}

// Service exposes business rules for the shoe catalog.
type Service interface {
	ListShoes(ctx context.Context, filter ListFilter) ([]models.Shoe, error)
	GetShoe(ctx context.Context, id int64) (models.Shoe, error)
	CreateShoe(ctx context.Context, input contract.InsertShoe) (models.Shoe, error)
}

type service struct {
	repo *Repository
}

// NewService builds a catalog service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) ListShoes(ctx context.Context, filter ListFilter) ([]models.Shoe, error) {
	shoes, err := s.repo.ListShoes(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list shoes")
	}
	return shoes, nil
}

func (s *service) GetShoe(ctx context.Context, id int64) (models.Shoe, error) {
	shoe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Shoe{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "shoe not found")
		}
		return models.Shoe{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shoe")
	}
	return shoe, nil
}

func (s *service) CreateShoe(ctx context.Context, input contract.InsertShoe) (models.Shoe, error) {
	if input.RetailPrice == nil {
		return models.Shoe{}, pkgerrors.New(pkgerrors.CodeValidation, "retailPrice is required").WithField("retailPrice")
	}
	shoe := models.Shoe{
		Name:        input.Name,
		Brand:       input.Brand,
		Model:       input.Model,
		Colorway:    input.Colorway,
		RetailPrice: *input.RetailPrice,
		MarketPrice: input.MarketPrice,
		ImageURL:    input.ImageURL,
		Description: input.Description,
		IsTrending:  input.IsTrending,
	}
	created, err := s.repo.Create(ctx, shoe)
	if err != nil {
		return models.Shoe{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create shoe")
	}
	return created, nil
}
