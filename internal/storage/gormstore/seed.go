package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/trendyfy/storefront/internal/models"
	"github.com/trendyfy/storefront/internal/storage"
)

// Seed inserts the demo catalog when the products table is empty.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	products := storage.SeedProducts()
	return db.WithContext(ctx).Create(&products).Error
}
