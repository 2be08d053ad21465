package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/0x00whitecode/hng-audiophile/database"
	"github.com/0x00whitecode/hng-audiophile/models"
)

// ErrOrderNotFound is returned when no snapshot exists for the id in the
// caller's session. Store failures surface as this same error: the
// confirmation view fails open to "not found", never to a crash.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository keeps per-session order snapshots. A snapshot is the
// client-side copy retained purely for the confirmation view; it is not
// guaranteed consistent with whatever the external webhook stored.
type OrderRepository struct {
	store database.Store
	ttl   time.Duration
}

func NewOrderRepository(store database.Store, ttl time.Duration) *OrderRepository {
	return &OrderRepository{store: store, ttl: ttl}
}

func (r *OrderRepository) orderKey(sessionID, orderID string) string {
	return fmt.Sprintf("order:%s:%s", sessionID, orderID)
}

func (r *OrderRepository) lastOrderKey(sessionID string) string {
	return fmt.Sprintf("last_order:%s", sessionID)
}

// SaveSnapshot stores the order under its id and records it as the session's
// most recent order.
func (r *OrderRepository) SaveSnapshot(ctx context.Context, sessionID string, order *models.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, r.orderKey(sessionID, order.ID), string(data), r.ttl); err != nil {
		return err
	}
	return r.store.Set(ctx, r.lastOrderKey(sessionID), order.ID, r.ttl)
}

// GetSnapshot looks up an order snapshot by id within the session.
func (r *OrderRepository) GetSnapshot(ctx context.Context, sessionID, orderID string) (*models.Order, error) {
	data, err := r.store.Get(ctx, r.orderKey(sessionID, orderID))
	if err != nil {
		return nil, ErrOrderNotFound
	}

	var order models.Order
	if err := json.Unmarshal([]byte(data), &order); err != nil {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

// GetLastOrderID returns the id of the session's most recent order.
func (r *OrderRepository) GetLastOrderID(ctx context.Context, sessionID string) (string, error) {
	id, err := r.store.Get(ctx, r.lastOrderKey(sessionID))
	if err != nil || id == "" {
		return "", ErrOrderNotFound
	}
	return id, nil
}
