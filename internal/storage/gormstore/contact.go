package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/trendyfy/storefront/internal/models"
)

type Contact struct {
	DB *gorm.DB
}

func (r *Contact) Insert(ctx context.Context, inquiry *models.ContactInquiry) error {
	return r.DB.WithContext(ctx).Create(inquiry).Error
}
