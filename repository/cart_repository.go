package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/0x00whitecode/hng-audiophile/database"
	"github.com/0x00whitecode/hng-audiophile/models"
)

// CartRepository persists one cart per session in the key-value store.
type CartRepository struct {
	store database.Store
	ttl   time.Duration
}

func NewCartRepository(store database.Store, ttl time.Duration) *CartRepository {
	return &CartRepository{store: store, ttl: ttl}
}

func (r *CartRepository) getKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

// GetCart returns the cart for a session, or nil when none exists. Store
// errors are treated the same as an absent cart.
func (r *CartRepository) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	data, err := r.store.Get(ctx, r.getKey(sessionID))
	if err != nil {
		if err == database.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepository) SaveCart(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()

	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.getKey(cart.SessionID), string(data), r.ttl)
}

func (r *CartRepository) DeleteCart(ctx context.Context, sessionID string) error {
	return r.store.Delete(ctx, r.getKey(sessionID))
}
