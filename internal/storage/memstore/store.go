// Package memstore is the ephemeral backing for demo deployments and
// tests: plain slices behind one RWMutex, satisfying the same contracts
// as gormstore.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/trendyfy/storefront/internal/models"
	"github.com/trendyfy/storefront/internal/storage"
)

type Store struct {
	mu        sync.RWMutex
	products  []models.Product
	cartItems []models.CartItem
	users     []models.User
	inquiries []models.ContactInquiry

	nextProductID uint
	nextCartID    uint
	nextUserID    uint
	nextInquiryID uint
}

func New() *Store {
	return &Store{
		nextProductID: 1,
		nextCartID:    1,
		nextUserID:    1,
		nextInquiryID: 1,
	}
}

// Load replaces the catalog, assigning ids in order. Used at startup to
// seed the demo products.
func (s *Store) Load(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = s.products[:0]
	for _, p := range products {
		p.ID = s.nextProductID
		s.nextProductID++
		if p.CreatedAt.IsZero() {
			p.CreatedAt = time.Now().UTC()
		}
		s.products = append(s.products, p)
	}
}

func (s *Store) Catalog() *Catalog { return &Catalog{s} }
func (s *Store) Cart() *Cart       { return &Cart{s} }
func (s *Store) Users() *Users     { return &Users{s} }
func (s *Store) Contact() *Contact { return &Contact{s} }

type Catalog struct{ s *Store }

func (c *Catalog) FindByID(_ context.Context, id uint) (*models.Product, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	for i := range c.s.products {
		if c.s.products[i].ID == id {
			p := c.s.products[i]
			return &p, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (c *Catalog) ListAll(_ context.Context) ([]models.Product, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	// newest first, matching the relational store's ordering
	out := make([]models.Product, len(c.s.products))
	for i, p := range c.s.products {
		out[len(out)-1-i] = p
	}
	return out, nil
}

func (c *Catalog) List(ctx context.Context, offset, limit int) (int64, []models.Product, error) {
	all, err := c.ListAll(ctx)
	if err != nil {
		return 0, nil, err
	}
	total := int64(len(all))
	if offset >= len(all) {
		return total, []models.Product{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return total, all[offset:end], nil
}

func (c *Catalog) ListFeatured(_ context.Context) ([]models.Product, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	var out []models.Product
	for _, p := range c.s.products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out, nil
}

type Cart struct{ s *Store }

func (c *Cart) ListForUser(_ context.Context, userID uint) ([]models.CartItem, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	var out []models.CartItem
	for _, it := range c.s.cartItems {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (c *Cart) Find(_ context.Context, userID, productID uint) (*models.CartItem, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	for i := range c.s.cartItems {
		if c.s.cartItems[i].UserID == userID && c.s.cartItems[i].ProductID == productID {
			it := c.s.cartItems[i]
			return &it, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (c *Cart) FindEntry(_ context.Context, userID, entryID uint) (*models.CartItem, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	for i := range c.s.cartItems {
		if c.s.cartItems[i].ID == entryID && c.s.cartItems[i].UserID == userID {
			it := c.s.cartItems[i]
			return &it, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (c *Cart) Insert(_ context.Context, item *models.CartItem) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	for i := range c.s.cartItems {
		if c.s.cartItems[i].UserID == item.UserID && c.s.cartItems[i].ProductID == item.ProductID {
			return storage.ErrConflict
		}
	}
	item.ID = c.s.nextCartID
	c.s.nextCartID++
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now().UTC()
	}
	c.s.cartItems = append(c.s.cartItems, *item)
	return nil
}

func (c *Cart) SetQuantity(_ context.Context, entryID, quantity uint) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	for i := range c.s.cartItems {
		if c.s.cartItems[i].ID == entryID {
			c.s.cartItems[i].Quantity = quantity
			return nil
		}
	}
	return storage.ErrNotFound
}

func (c *Cart) Delete(_ context.Context, entryID, userID uint) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	for i := range c.s.cartItems {
		if c.s.cartItems[i].ID == entryID && c.s.cartItems[i].UserID == userID {
			c.s.cartItems = append(c.s.cartItems[:i], c.s.cartItems[i+1:]...)
			return nil
		}
	}
	return nil
}

func (c *Cart) SumQuantity(_ context.Context, userID uint) (uint, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	var total uint
	for _, it := range c.s.cartItems {
		if it.UserID == userID {
			total += it.Quantity
		}
	}
	return total, nil
}

type Users struct{ s *Store }

func (u *Users) Create(_ context.Context, user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for i := range u.s.users {
		if u.s.users[i].Email == user.Email {
			return storage.ErrConflict
		}
	}
	user.ID = u.s.nextUserID
	u.s.nextUserID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	u.s.users = append(u.s.users, *user)
	return nil
}

func (u *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for i := range u.s.users {
		if u.s.users[i].Email == email {
			usr := u.s.users[i]
			return &usr, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (u *Users) FindByID(_ context.Context, id uint) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for i := range u.s.users {
		if u.s.users[i].ID == id {
			usr := u.s.users[i]
			return &usr, nil
		}
	}
	return nil, storage.ErrNotFound
}

type Contact struct{ s *Store }

func (c *Contact) Insert(_ context.Context, inquiry *models.ContactInquiry) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	inquiry.ID = c.s.nextInquiryID
	c.s.nextInquiryID++
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now().UTC()
	}
	c.s.inquiries = append(c.s.inquiries, *inquiry)
	return nil
}
