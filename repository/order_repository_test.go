package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/0x00whitecode/hng-audiophile/database"
	"github.com/0x00whitecode/hng-audiophile/models"
	"github.com/0x00whitecode/hng-audiophile/repository"

	"github.com/stretchr/testify/assert"
)

func sampleOrder(id string) *models.Order {
	return &models.Order{
		ID:       id,
		Customer: models.Customer{Name: "Jane Doe", Email: "jane@example.com"},
		Shipping: models.ShippingAddress{Address: "12 Harbor Road", City: "Lagos", Country: "Nigeria", Zip: "10001"},
		Items:    []models.CartItem{{ProductID: "yx1", Name: "YX1 Earphones", Price: 599, Quantity: 1}},
		Totals:   models.OrderTotals{Subtotal: 599, Shipping: 50, Tax: 60, GrandTotal: 709},
		Status:   models.OrderStatusProcessing,
	}
}

func TestOrderRepository_SnapshotRoundTrip(t *testing.T) {
	repo := repository.NewOrderRepository(database.NewMemoryStore(), time.Hour)
	ctx := context.Background()

	assert.NoError(t, repo.SaveSnapshot(ctx, "s1", sampleOrder("ord-1")))

	got, err := repo.GetSnapshot(ctx, "s1", "ord-1")
	assert.NoError(t, err)
	assert.Equal(t, "ord-1", got.ID)
	assert.Equal(t, 709, got.Totals.GrandTotal)
}

func TestOrderRepository_MissingSnapshotIsNotFound(t *testing.T) {
	repo := repository.NewOrderRepository(database.NewMemoryStore(), time.Hour)

	_, err := repo.GetSnapshot(context.Background(), "s1", "ghost")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_StoreFailureReadsAsNotFound(t *testing.T) {
	repo := repository.NewOrderRepository(failingStore{}, time.Hour)

	_, err := repo.GetSnapshot(context.Background(), "s1", "ord-1")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound, "Storage errors fail open to not-found")

	_, err = repo.GetLastOrderID(context.Background(), "s1")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_LastOrderTracksMostRecent(t *testing.T) {
	repo := repository.NewOrderRepository(database.NewMemoryStore(), time.Hour)
	ctx := context.Background()

	_ = repo.SaveSnapshot(ctx, "s1", sampleOrder("ord-1"))
	_ = repo.SaveSnapshot(ctx, "s1", sampleOrder("ord-2"))

	last, err := repo.GetLastOrderID(ctx, "s1")
	assert.NoError(t, err)
	assert.Equal(t, "ord-2", last)
}

func TestCheckoutRepository_StateFailsOpenToInitial(t *testing.T) {
	repo := repository.NewCheckoutRepository(failingStore{}, time.Hour)

	state := repo.GetState(context.Background(), "s1")
	assert.Equal(t, models.StepShipping, state.Step, "A broken store must still yield a usable initial state")
	assert.Nil(t, repo.GetShippingInfo(context.Background(), "s1"))
}
