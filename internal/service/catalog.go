package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/trendyfy/storefront/internal/models"
	"github.com/trendyfy/storefront/internal/storage"
)

type CatalogService struct {
	Catalog storage.Catalog
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Catalog.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) GetProducts(ctx context.Context, offset, limit int) (int64, []models.Product, error) {
	return s.Catalog.List(ctx, offset, limit)
}

func (s *CatalogService) GetFeatured(ctx context.Context) ([]models.Product, error) {
	return s.Catalog.ListFeatured(ctx)
}
