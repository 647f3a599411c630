package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendyfy/storefront/internal/models"
	"github.com/trendyfy/storefront/internal/storage/memstore"
)

func newTestCartService(products ...models.Product) *CartService {
	store := memstore.New()
	store.Load(products)
	return &CartService{Catalog: store.Catalog(), Cart: store.Cart()}
}

func TestCartService_AddToCart_CreatesEntry(t *testing.T) {
	t.Parallel()

	svc := newTestCartService(models.Product{Name: "Oversized Tee", Price: 88900, StockQty: 10})
	ctx := context.Background()

	res, err := svc.AddToCart(ctx, 1, 1, 3)
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, uint(3), res.Quantity)
	assert.NotZero(t, res.EntryID)
}

func TestCartService_AddToCart_MergesIntoExistingEntry(t *testing.T) {
	t.Parallel()

	svc := newTestCartService(models.Product{Name: "Oversized Tee", Price: 88900, StockQty: 10})
	ctx := context.Background()

	first, err := svc.AddToCart(ctx, 1, 1, 2)
	require.NoError(t, err)

	second, err := svc.AddToCart(ctx, 1, 1, 4)
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.EntryID, second.EntryID)
	assert.Equal(t, uint(6), second.Quantity)

	entries, err := svc.GetCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint(6), entries[0].Quantity)
}

func TestCartService_AddToCart_StockAdmission(t *testing.T) {
	t.Parallel()

	svc := newTestCartService(models.Product{Name: "Oversized Tee", Price: 88900, StockQty: 10})
	ctx := context.Background()

	res, err := svc.AddToCart(ctx, 1, 1, 7)
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, uint(7), res.Quantity)

	// 7 + 5 would exceed the 10 in stock, the entry must stay at 7
	_, err = svc.AddToCart(ctx, 1, 1, 5)
	require.ErrorIs(t, err, ErrInsufficientStock)

	entries, err := svc.GetCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint(7), entries[0].Quantity)

	// 7 + 3 fills the stock exactly
	res, err = svc.AddToCart(ctx, 1, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, uint(10), res.Quantity)
}

func TestCartService_AddToCart_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestCartService(models.Product{Name: "Oversized Tee", Price: 88900, StockQty: 10})
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, 1, 1, 0)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddToCart(ctx, 1, 999, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCartService_AddToCart_ZeroStockProduct(t *testing.T) {
	t.Parallel()

	svc := newTestCartService(models.Product{Name: "Sold Out Shirt", Price: 88900, StockQty: 0})
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, 1, 1, 1)
	require.ErrorIs(t, err, ErrInsufficientStock)
}

func TestCartService_AddToCart_CartsAreIndependentPerUser(t *testing.T) {
	t.Parallel()

	svc := newTestCartService(models.Product{Name: "Oversized Tee", Price: 88900, StockQty: 10})
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, 1, 1, 8)
	require.NoError(t, err)

	// stock admits each cart on its own, carts do not reserve stock
	res, err := svc.AddToCart(ctx, 2, 1, 8)
	require.NoError(t, err)
	assert.True(t, res.Created)

	count1, err := svc.CartCount(ctx, 1)
	require.NoError(t, err)
	count2, err := svc.CartCount(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(8), count1)
	assert.Equal(t, uint(8), count2)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	t.Parallel()

	svc := newTestCartService(models.Product{Name: "Oversized Tee", Price: 88900, StockQty: 10})
	ctx := context.Background()

	res, err := svc.AddToCart(ctx, 1, 1, 2)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateQuantity(ctx, 1, res.EntryID, 9))

	entries, err := svc.GetCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint(9), entries[0].Quantity)
}

func TestCartService_UpdateQuantity_Errors(t *testing.T) {
	t.Parallel()

	svc := newTestCartService(models.Product{Name: "Oversized Tee", Price: 88900, StockQty: 10})
	ctx := context.Background()

	res, err := svc.AddToCart(ctx, 1, 1, 2)
	require.NoError(t, err)

	tests := []struct {
		name     string
		userID   uint
		entryID  uint
		quantity uint
		want     error
	}{
		{name: "zero quantity", userID: 1, entryID: res.EntryID, quantity: 0, want: ErrValidation},
		{name: "over stock", userID: 1, entryID: res.EntryID, quantity: 11, want: ErrInsufficientStock},
		{name: "unknown entry", userID: 1, entryID: 999, quantity: 1, want: ErrNotFound},
		{name: "another user's entry", userID: 2, entryID: res.EntryID, quantity: 1, want: ErrNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := svc.UpdateQuantity(ctx, tt.userID, tt.entryID, tt.quantity)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCartService_RemoveEntry(t *testing.T) {
	t.Parallel()

	svc := newTestCartService(models.Product{Name: "Oversized Tee", Price: 88900, StockQty: 10})
	ctx := context.Background()

	res, err := svc.AddToCart(ctx, 1, 1, 2)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveEntry(ctx, 1, res.EntryID))

	entries, err := svc.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// removing again is a no-op, not an error
	require.NoError(t, svc.RemoveEntry(ctx, 1, res.EntryID))
	require.NoError(t, svc.RemoveEntry(ctx, 1, 999))
}

func TestCartService_RemoveEntry_DoesNotTouchOtherUsers(t *testing.T) {
	t.Parallel()

	svc := newTestCartService(models.Product{Name: "Oversized Tee", Price: 88900, StockQty: 10})
	ctx := context.Background()

	res, err := svc.AddToCart(ctx, 1, 1, 2)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveEntry(ctx, 2, res.EntryID))

	entries, err := svc.GetCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestCartService_CartCount_SumsQuantities(t *testing.T) {
	t.Parallel()

	svc := newTestCartService(
		models.Product{Name: "Oversized Tee", Price: 88900, StockQty: 10},
		models.Product{Name: "Flannel Shirt", Price: 88900, StockQty: 5},
	)
	ctx := context.Background()

	count, err := svc.CartCount(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = svc.AddToCart(ctx, 1, 1, 3)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, 1, 2, 4)
	require.NoError(t, err)

	count, err = svc.CartCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(7), count)
}

func TestCartService_GetCart_IncludesProducts(t *testing.T) {
	t.Parallel()

	svc := newTestCartService(
		models.Product{Name: "Oversized Tee", Price: 88900, StockQty: 10},
		models.Product{Name: "Flannel Shirt", Price: 88900, StockQty: 5},
	)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, 1, 2, 1)
	require.NoError(t, err)

	entries, err := svc.GetCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Flannel Shirt", entries[0].Product.Name)
	assert.Equal(t, int64(88900), entries[0].Product.Price)
}
