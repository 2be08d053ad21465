package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/0x00whitecode/hng-audiophile/database"
	"github.com/0x00whitecode/hng-audiophile/models"
	"github.com/0x00whitecode/hng-audiophile/repository"

	"github.com/stretchr/testify/assert"
)

// failingStore errors on every access, standing in for restricted storage.
type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) {
	return "", errors.New("storage access denied")
}
func (failingStore) Set(context.Context, string, string, time.Duration) error {
	return errors.New("storage access denied")
}
func (failingStore) Delete(context.Context, string) error {
	return errors.New("storage access denied")
}

func TestCartRepository_RoundTrip(t *testing.T) {
	repo := repository.NewCartRepository(database.NewMemoryStore(), time.Hour)
	ctx := context.Background()

	cart := &models.Cart{
		SessionID: "s1",
		Items:     []models.CartItem{{ProductID: "yx1", Name: "YX1 Earphones", Price: 599, Quantity: 2}},
	}
	assert.NoError(t, repo.SaveCart(ctx, cart))

	got, err := repo.GetCart(ctx, "s1")
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestCartRepository_MissingCartIsNil(t *testing.T) {
	repo := repository.NewCartRepository(database.NewMemoryStore(), time.Hour)

	cart, err := repo.GetCart(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, cart)
}

func TestCartRepository_DeleteIsIdempotent(t *testing.T) {
	store := database.NewMemoryStore()
	repo := repository.NewCartRepository(store, time.Hour)
	ctx := context.Background()

	_ = repo.SaveCart(ctx, &models.Cart{SessionID: "s1"})
	assert.NoError(t, repo.DeleteCart(ctx, "s1"))
	assert.NoError(t, repo.DeleteCart(ctx, "s1"))
}

func TestCartRepository_ExpiredCartIsGone(t *testing.T) {
	store := database.NewMemoryStore()
	repo := repository.NewCartRepository(store, time.Millisecond)
	ctx := context.Background()

	_ = repo.SaveCart(ctx, &models.Cart{SessionID: "s1", Items: []models.CartItem{{ProductID: "p", Quantity: 1}}})
	time.Sleep(5 * time.Millisecond)

	cart, err := repo.GetCart(ctx, "s1")
	assert.NoError(t, err)
	assert.Nil(t, cart)
}
