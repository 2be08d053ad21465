package services

import (
	"context"

	"github.com/0x00whitecode/hng-audiophile/models"
	"github.com/0x00whitecode/hng-audiophile/repository"

	"go.uber.org/zap"
)

// CartView is what the view layer consumes: the line items plus the always
// freshly recomputed totals.
type CartView struct {
	Items  []models.CartItem  `json:"items"`
	Totals models.OrderTotals `json:"totals"`
}

// CartService owns the per-session cart: keyed merge on add, removal,
// quantity replacement and the derived totals projection.
type CartService struct {
	repo   *repository.CartRepository
	logger *zap.Logger
}

func NewCartService(repo *repository.CartRepository, logger *zap.Logger) *CartService {
	return &CartService{repo: repo, logger: logger}
}

// GetCart returns the session's cart, creating an empty one in memory when
// none is stored yet. Store read failures degrade to an empty cart.
func (s *CartService) GetCart(ctx context.Context, sessionID string) *models.Cart {
	cart, err := s.repo.GetCart(ctx, sessionID)
	if err != nil {
		s.logger.Warn("Cart read failed, treating as empty", zap.String("session_id", sessionID), zap.Error(err))
	}
	if cart == nil {
		cart = &models.Cart{SessionID: sessionID, Items: []models.CartItem{}}
	}
	return cart
}

// View returns the cart items together with the recomputed totals.
func (s *CartService) View(ctx context.Context, sessionID string) CartView {
	cart := s.GetCart(ctx, sessionID)
	return CartView{Items: cart.Items, Totals: models.ComputeTotals(cart.Items)}
}

// AddItem merges an item into the cart: an existing entry for the same
// product id has its quantity incremented, otherwise the item is appended.
func (s *CartService) AddItem(ctx context.Context, sessionID string, item models.CartItem) (*models.Cart, error) {
	cart := s.GetCart(ctx, sessionID)

	found := false
	for i, existing := range cart.Items {
		if existing.ProductID == item.ProductID {
			cart.Items[i].Quantity += item.Quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, item)
	}

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	return cart, nil
}

// RemoveItem deletes the matching entry. Removing an absent product id is a
// no-op, not an error.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (*models.Cart, error) {
	cart := s.GetCart(ctx, sessionID)

	newItems := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ProductID != productID {
			newItems = append(newItems, item)
		}
	}
	cart.Items = newItems

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		s.logger.Error("Failed to update cart", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	return cart, nil
}

// SetQuantity replaces the quantity of the matching entry. Callers are
// responsible for clamping to a positive integer before calling; the store
// itself does not reject invalid input. An absent product id is a no-op.
func (s *CartService) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*models.Cart, error) {
	cart := s.GetCart(ctx, sessionID)

	for i, item := range cart.Items {
		if item.ProductID == productID {
			cart.Items[i].Quantity = quantity
			break
		}
	}

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		s.logger.Error("Failed to update cart", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	return cart, nil
}

// Clear empties the cart. Idempotent.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.repo.DeleteCart(ctx, sessionID); err != nil {
		s.logger.Error("Failed to clear cart", zap.String("session_id", sessionID), zap.Error(err))
		return err
	}
	return nil
}
