// Package storage defines the store contracts the services depend on.
// Two implementations exist: gormstore (Postgres or SQLite through gorm)
// and memstore (in-process, for demo deployments and tests). Services
// only ever see these interfaces.
package storage

import (
	"context"
	"errors"

	"github.com/trendyfy/storefront/internal/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// Catalog is read-only product reference data. Nothing in this
// repository ever mutates stock; stock_qty is an admission gate only.
type Catalog interface {
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	ListAll(ctx context.Context) ([]models.Product, error)
	List(ctx context.Context, offset, limit int) (int64, []models.Product, error)
	ListFeatured(ctx context.Context) ([]models.Product, error)
}

// CartStore holds at most one entry per (user, product) pair.
type CartStore interface {
	ListForUser(ctx context.Context, userID uint) ([]models.CartItem, error)
	Find(ctx context.Context, userID, productID uint) (*models.CartItem, error)
	FindEntry(ctx context.Context, userID, entryID uint) (*models.CartItem, error)
	// Insert fails with ErrConflict if an entry already exists for the
	// (user, product) pair.
	Insert(ctx context.Context, item *models.CartItem) error
	// SetQuantity fails with ErrNotFound if no such entry exists.
	SetQuantity(ctx context.Context, entryID, quantity uint) error
	// Delete removes the entry only when owned by userID. Removing a
	// missing or foreign entry is a no-op.
	Delete(ctx context.Context, entryID, userID uint) error
	SumQuantity(ctx context.Context, userID uint) (uint, error)
}

type UserStore interface {
	// Create fails with ErrConflict when the email is already taken.
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

type ContactStore interface {
	Insert(ctx context.Context, inquiry *models.ContactInquiry) error
}
