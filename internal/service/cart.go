package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/trendyfy/storefront/internal/logging"
	"github.com/trendyfy/storefront/internal/models"
	"github.com/trendyfy/storefront/internal/storage"
)

// CartService enforces the cart invariants: quantity >= 1, at most one
// entry per (user, product), and the stock admission check on every
// mutation. Stock itself is never decremented here.
type CartService struct {
	Catalog storage.Catalog
	Cart    storage.CartStore
}

type AddResult struct {
	Created  bool `json:"created"`
	EntryID  uint `json:"entry_id"`
	Quantity uint `json:"quantity"`
}

type CartEntry struct {
	ID       uint           `json:"id"`
	Quantity uint           `json:"quantity"`
	Product  models.Product `json:"product"`
}

// AddToCart admits the requested quantity against available stock and
// merges it into an existing entry for the same product, if any. A
// failed merge leaves the existing entry untouched.
func (s *CartService) AddToCart(ctx context.Context, userID, productID, quantity uint) (*AddResult, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	product, err := s.Catalog.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("product %d: %w", productID, ErrNotFound)
		}
		return nil, err
	}

	if product.StockQty < quantity {
		return nil, fmt.Errorf("product %d has %d in stock: %w", productID, product.StockQty, ErrInsufficientStock)
	}

	existing, err := s.Cart.Find(ctx, userID, productID)
	switch {
	case err == nil:
		merged := existing.Quantity + quantity
		if product.StockQty < merged {
			return nil, fmt.Errorf("product %d has %d in stock: %w", productID, product.StockQty, ErrInsufficientStock)
		}
		if err := s.Cart.SetQuantity(ctx, existing.ID, merged); err != nil {
			return nil, err
		}
		return &AddResult{Created: false, EntryID: existing.ID, Quantity: merged}, nil
	case errors.Is(err, storage.ErrNotFound):
		item := models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
		if err := s.Cart.Insert(ctx, &item); err != nil {
			if errors.Is(err, storage.ErrConflict) {
				// lost a race against a concurrent add for the same
				// pair; retry once as a merge
				logging.FromContext(ctx).Warn("add_to_cart_conflict_retry", "user_id", userID, "product_id", productID)
				return s.AddToCart(ctx, userID, productID, quantity)
			}
			return nil, err
		}
		return &AddResult{Created: true, EntryID: item.ID, Quantity: item.Quantity}, nil
	default:
		return nil, err
	}
}

// UpdateQuantity replaces an entry's quantity after the ownership and
// stock admission checks. A foreign entry is indistinguishable from a
// missing one.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, entryID, quantity uint) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	entry, err := s.Cart.FindEntry(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("cart item %d: %w", entryID, ErrNotFound)
		}
		return err
	}

	product, err := s.Catalog.FindByID(ctx, entry.ProductID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("product %d: %w", entry.ProductID, ErrNotFound)
		}
		return err
	}
	if product.StockQty < quantity {
		return fmt.Errorf("product %d has %d in stock: %w", entry.ProductID, product.StockQty, ErrInsufficientStock)
	}

	return s.Cart.SetQuantity(ctx, entryID, quantity)
}

// RemoveEntry deletes an owned entry. Removing a missing or foreign
// entry succeeds silently.
func (s *CartService) RemoveEntry(ctx context.Context, userID, entryID uint) error {
	return s.Cart.Delete(ctx, entryID, userID)
}

func (s *CartService) CartCount(ctx context.Context, userID uint) (uint, error) {
	return s.Cart.SumQuantity(ctx, userID)
}

// GetCart returns the user's entries joined with product data. Entries
// whose product has disappeared from the catalog are skipped.
func (s *CartService) GetCart(ctx context.Context, userID uint) ([]CartEntry, error) {
	items, err := s.Cart.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]CartEntry, 0, len(items))
	for _, it := range items {
		product, err := s.Catalog.FindByID(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, err
		}
		entries = append(entries, CartEntry{ID: it.ID, Quantity: it.Quantity, Product: *product})
	}
	return entries, nil
}
