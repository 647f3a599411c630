package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/trendyfy/storefront/internal/models"
	"github.com/trendyfy/storefront/internal/storage"
)

type Cart struct {
	DB *gorm.DB
}

func (r *Cart) ListForUser(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Cart) Find(ctx context.Context, userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *Cart) FindEntry(ctx context.Context, userID, entryID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *Cart) Insert(ctx context.Context, item *models.CartItem) error {
	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return storage.ErrConflict
		}
		return err
	}
	return nil
}

func (r *Cart) SetQuantity(ctx context.Context, entryID, quantity uint) error {
	res := r.DB.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ?", entryID).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *Cart) Delete(ctx context.Context, entryID, userID uint) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.CartItem{}).Error
}

func (r *Cart) SumQuantity(ctx context.Context, userID uint) (uint, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&models.CartItem{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return uint(total), nil
}
