package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/0x00whitecode/hng-audiophile/database"
	"github.com/0x00whitecode/hng-audiophile/models"
	"github.com/0x00whitecode/hng-audiophile/repository"
	"github.com/0x00whitecode/hng-audiophile/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newCartService() *services.CartService {
	store := database.NewMemoryStore()
	repo := repository.NewCartRepository(store, time.Hour)
	logger, _ := zap.NewDevelopment()
	return services.NewCartService(repo, logger)
}

func TestCartService_AddMergesSameProduct(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	item := models.CartItem{ProductID: "yx1", Name: "YX1 Earphones", Price: 599, Quantity: 1}
	_, err := svc.AddItem(ctx, "s1", item)
	assert.NoError(t, err)

	item.Quantity = 2
	cart, err := svc.AddItem(ctx, "s1", item)
	assert.NoError(t, err)

	assert.Len(t, cart.Items, 1, "Same product id must not duplicate the entry")
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestCartService_AddAppendsDistinctProducts(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, _ = svc.AddItem(ctx, "s1", models.CartItem{ProductID: "yx1", Price: 599, Quantity: 1})
	cart, err := svc.AddItem(ctx, "s1", models.CartItem{ProductID: "zx9", Price: 4500, Quantity: 1})
	assert.NoError(t, err)

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, "yx1", cart.Items[0].ProductID, "Insertion order is preserved")
	assert.Equal(t, "zx9", cart.Items[1].ProductID)
}

func TestCartService_RemoveAbsentIsNoop(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, _ = svc.AddItem(ctx, "s1", models.CartItem{ProductID: "yx1", Price: 599, Quantity: 1})
	cart, err := svc.RemoveItem(ctx, "s1", "ghost")

	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCartService_RemoveDeletesEntry(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, _ = svc.AddItem(ctx, "s1", models.CartItem{ProductID: "yx1", Price: 599, Quantity: 1})
	_, _ = svc.AddItem(ctx, "s1", models.CartItem{ProductID: "zx9", Price: 4500, Quantity: 1})

	cart, err := svc.RemoveItem(ctx, "s1", "yx1")
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "zx9", cart.Items[0].ProductID)
}

func TestCartService_SetQuantityReplaces(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, _ = svc.AddItem(ctx, "s1", models.CartItem{ProductID: "yx1", Price: 599, Quantity: 1})
	cart, err := svc.SetQuantity(ctx, "s1", "yx1", 5)

	assert.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartService_TotalsRecomputedAfterEveryMutation(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, _ = svc.AddItem(ctx, "s1", models.CartItem{ProductID: "yx1", Price: 599, Quantity: 1})
	view := svc.View(ctx, "s1")
	assert.Equal(t, 709, view.Totals.GrandTotal)

	_, _ = svc.SetQuantity(ctx, "s1", "yx1", 2)
	view = svc.View(ctx, "s1")
	assert.Equal(t, 1198, view.Totals.Subtotal, "Totals must reflect the mutation immediately")

	_, _ = svc.RemoveItem(ctx, "s1", "yx1")
	view = svc.View(ctx, "s1")
	assert.Equal(t, 0, view.Totals.GrandTotal)
	assert.Equal(t, 0, view.Totals.Shipping)
}

func TestCartService_ClearIsIdempotent(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, _ = svc.AddItem(ctx, "s1", models.CartItem{ProductID: "yx1", Price: 599, Quantity: 1})

	assert.NoError(t, svc.Clear(ctx, "s1"))
	assert.NoError(t, svc.Clear(ctx, "s1"))
	assert.Empty(t, svc.View(ctx, "s1").Items)
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, _ = svc.AddItem(ctx, "s1", models.CartItem{ProductID: "yx1", Price: 599, Quantity: 1})

	other := svc.View(ctx, "s2")
	assert.Empty(t, other.Items)
}
