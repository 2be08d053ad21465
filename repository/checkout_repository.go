package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/0x00whitecode/hng-audiophile/database"
	"github.com/0x00whitecode/hng-audiophile/models"
)

// CheckoutRepository persists the per-session wizard state, plus the shipping
// form a customer chose to save for prefill on a later visit. The saved
// shipping info is keyed independently of any order.
type CheckoutRepository struct {
	store database.Store
	ttl   time.Duration
}

func NewCheckoutRepository(store database.Store, ttl time.Duration) *CheckoutRepository {
	return &CheckoutRepository{store: store, ttl: ttl}
}

func (r *CheckoutRepository) stateKey(sessionID string) string {
	return fmt.Sprintf("checkout:%s", sessionID)
}

func (r *CheckoutRepository) shippingKey(sessionID string) string {
	return fmt.Sprintf("shipping_info:%s", sessionID)
}

// GetState returns the wizard state for a session, or a fresh initial state
// when none exists or the store read fails.
func (r *CheckoutRepository) GetState(ctx context.Context, sessionID string) *models.CheckoutState {
	data, err := r.store.Get(ctx, r.stateKey(sessionID))
	if err != nil {
		return models.NewCheckoutState()
	}

	var state models.CheckoutState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return models.NewCheckoutState()
	}
	return &state
}

func (r *CheckoutRepository) SaveState(ctx context.Context, sessionID string, state *models.CheckoutState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.stateKey(sessionID), string(data), r.ttl)
}

func (r *CheckoutRepository) DeleteState(ctx context.Context, sessionID string) error {
	return r.store.Delete(ctx, r.stateKey(sessionID))
}

// SaveShippingInfo stores the validated shipping form for future prefill.
func (r *CheckoutRepository) SaveShippingInfo(ctx context.Context, sessionID string, form *models.ShippingForm) error {
	data, err := json.Marshal(form)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.shippingKey(sessionID), string(data), r.ttl)
}

// GetShippingInfo returns the saved shipping form, or nil when none was
// saved or the read fails.
func (r *CheckoutRepository) GetShippingInfo(ctx context.Context, sessionID string) *models.ShippingForm {
	data, err := r.store.Get(ctx, r.shippingKey(sessionID))
	if err != nil {
		return nil
	}

	var form models.ShippingForm
	if err := json.Unmarshal([]byte(data), &form); err != nil {
		return nil
	}
	return &form
}
