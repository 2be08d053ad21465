package services

import (
	"context"
	"math"
	"net/http"
	"strings"

	"github.com/0x00whitecode/hng-audiophile/models"
	"github.com/0x00whitecode/hng-audiophile/repository"

	"go.uber.org/zap"
)

// Action is a checkout wizard input.
type Action string

const (
	ActionContinue Action = "continue"
	ActionBack     Action = "back"
)

// transitions is the wizard's transition table: step x action -> next step.
// A missing entry means the transition is blocked.
var transitions = map[models.Step]map[Action]models.Step{
	models.StepShipping: {
		ActionContinue: models.StepPayment,
	},
	models.StepPayment: {
		ActionContinue: models.StepReview,
		ActionBack:     models.StepShipping,
	},
	models.StepReview: {
		ActionBack: models.StepPayment,
	},
}

// nextStep resolves the transition table.
func nextStep(from models.Step, action Action) (models.Step, bool) {
	next, ok := transitions[from][action]
	return next, ok
}

// CheckoutView is the wizard state the view layer consumes.
type CheckoutView struct {
	Step         models.Step          `json:"step"`
	Shipping     *models.ShippingForm `json:"shipping,omitempty"`
	Method       models.PaymentMethod `json:"method,omitempty"`
	Discount     int                  `json:"discount"`
	Totals       models.OrderTotals   `json:"totals"`
	PayableTotal int                  `json:"payable_total"`
}

// OrderAck is the submission acknowledgment.
type OrderAck struct {
	ID string `json:"id"`
}

// CheckoutService drives the three-step checkout wizard for one session:
// step transitions with validation guards, the promo discount, and the final
// submission handoff to the order gateway.
type CheckoutService struct {
	repo      *repository.CheckoutRepository
	cart      *CartService
	orders    *OrderService
	snapshots *repository.OrderRepository
	logger    *zap.Logger
}

func NewCheckoutService(
	repo *repository.CheckoutRepository,
	cart *CartService,
	orders *OrderService,
	snapshots *repository.OrderRepository,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		repo:      repo,
		cart:      cart,
		orders:    orders,
		snapshots: snapshots,
		logger:    logger,
	}
}

// State returns the current wizard state with totals after discount.
func (s *CheckoutService) State(ctx context.Context, sessionID string) CheckoutView {
	state := s.repo.GetState(ctx, sessionID)
	return s.view(ctx, sessionID, state)
}

func (s *CheckoutService) view(ctx context.Context, sessionID string, state *models.CheckoutState) CheckoutView {
	totals := s.cart.View(ctx, sessionID).Totals
	return CheckoutView{
		Step:         state.Step,
		Shipping:     state.Shipping,
		Method:       state.Method,
		Discount:     state.Discount,
		Totals:       totals,
		PayableTotal: payableTotal(totals, state.Discount),
	}
}

// payableTotal applies the discount to the grand total, floored at zero.
func payableTotal(totals models.OrderTotals, discount int) int {
	payable := totals.GrandTotal - discount
	if payable < 0 {
		payable = 0
	}
	return payable
}

// SubmitShipping validates the shipping form and, on success, advances the
// wizard to the payment step. When saveInfo is set the validated form is
// stored for prefill on a later visit. Validation failures are field-scoped
// and leave the wizard where it is.
func (s *CheckoutService) SubmitShipping(ctx context.Context, sessionID string, form *models.ShippingForm, saveInfo bool) (map[string]string, *ServiceError) {
	state := s.repo.GetState(ctx, sessionID)

	next, ok := nextStep(state.Step, ActionContinue)
	if !ok || state.Step != models.StepShipping {
		return nil, &ServiceError{StatusCode: http.StatusConflict, Message: "Not on the shipping step"}
	}

	if fieldErrs := ValidateShipping(form); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	if saveInfo {
		if err := s.repo.SaveShippingInfo(ctx, sessionID, form); err != nil {
			// Prefill is a convenience; losing it must not block checkout.
			s.logger.Warn("Failed to save shipping info", zap.String("session_id", sessionID), zap.Error(err))
		}
	}

	state.Shipping = form
	state.Step = next
	if err := s.repo.SaveState(ctx, sessionID, state); err != nil {
		s.logger.Error("Failed to save checkout state", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to save checkout state"}
	}
	return nil, nil
}

// SavedShippingInfo returns the shipping form a customer previously chose to
// save, or nil when none exists.
func (s *CheckoutService) SavedShippingInfo(ctx context.Context, sessionID string) *models.ShippingForm {
	return s.repo.GetShippingInfo(ctx, sessionID)
}

// SubmitPayment validates the payment method and advances to review. PayPal
// passes without further fields; card details are shape-checked. Failures
// are field-scoped and keep the wizard on the payment step.
func (s *CheckoutService) SubmitPayment(ctx context.Context, sessionID string, method models.PaymentMethod, card *models.CardDetails) (map[string]string, *ServiceError) {
	state := s.repo.GetState(ctx, sessionID)

	next, ok := nextStep(state.Step, ActionContinue)
	if !ok || state.Step != models.StepPayment {
		return nil, &ServiceError{StatusCode: http.StatusConflict, Message: "Not on the payment step"}
	}

	if method != models.PaymentMethodCard && method != models.PaymentMethodPaypal {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Unknown payment method"}
	}

	if fieldErrs := ValidatePayment(method, card); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	state.Method = method
	state.Step = next
	if err := s.repo.SaveState(ctx, sessionID, state); err != nil {
		s.logger.Error("Failed to save checkout state", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to save checkout state"}
	}
	return nil, nil
}

// Back steps the wizard backwards (review -> payment, payment -> shipping).
// Going back from the shipping step is blocked.
func (s *CheckoutService) Back(ctx context.Context, sessionID string) (CheckoutView, *ServiceError) {
	state := s.repo.GetState(ctx, sessionID)

	next, ok := nextStep(state.Step, ActionBack)
	if !ok {
		return CheckoutView{}, &ServiceError{StatusCode: http.StatusConflict, Message: "Cannot go back from the shipping step"}
	}

	state.Step = next
	if err := s.repo.SaveState(ctx, sessionID, state); err != nil {
		s.logger.Error("Failed to save checkout state", zap.String("session_id", sessionID), zap.Error(err))
		return CheckoutView{}, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to save checkout state"}
	}
	return s.view(ctx, sessionID, state), nil
}

// ApplyPromo applies a discount code against the current cart. The code is
// trimmed and case-insensitive. Each application replaces any previous
// discount; an unknown non-empty code resets the discount to zero and
// reports an error message; an empty code is a no-op.
func (s *CheckoutService) ApplyPromo(ctx context.Context, sessionID, code string) (CheckoutView, string, *ServiceError) {
	state := s.repo.GetState(ctx, sessionID)
	totals := s.cart.View(ctx, sessionID).Totals

	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return s.view(ctx, sessionID, state), "", nil
	}

	promoErr := ""
	switch normalized {
	case "SAVE10":
		state.Discount = int(math.Round(float64(totals.Subtotal) * 0.10))
		state.PromoCode = normalized
	case "FREESHIP":
		state.Discount = totals.Shipping
		state.PromoCode = normalized
	default:
		state.Discount = 0
		state.PromoCode = ""
		promoErr = "Invalid promo code"
	}

	if err := s.repo.SaveState(ctx, sessionID, state); err != nil {
		s.logger.Error("Failed to save checkout state", zap.String("session_id", sessionID), zap.Error(err))
		return CheckoutView{}, "", &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to save checkout state"}
	}
	return s.view(ctx, sessionID, state), promoErr, nil
}

// Submit finalizes the order. It is blocked unless the wizard is on the
// review step with a validated shipping form and a non-empty cart. On
// success the cart and wizard state are cleared, a snapshot is stored for
// the confirmation view, and the fresh order id is returned.
func (s *CheckoutService) Submit(ctx context.Context, sessionID string) (*OrderAck, *ServiceError) {
	state := s.repo.GetState(ctx, sessionID)

	if state.Step != models.StepReview {
		return nil, &ServiceError{StatusCode: http.StatusConflict, Message: "Checkout is not ready for submission"}
	}
	if state.Shipping == nil {
		return nil, &ServiceError{StatusCode: http.StatusConflict, Message: "Shipping information is missing"}
	}

	cart := s.cart.GetCart(ctx, sessionID)
	if len(cart.Items) == 0 {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Cart is empty"}
	}

	totals := models.ComputeTotals(cart.Items)
	totals.GrandTotal = payableTotal(totals, state.Discount)

	order := s.orders.PlaceOrder(&models.OrderRequest{
		Customer: state.Shipping.Customer(),
		Shipping: state.Shipping.ShippingAddress(),
		Items:    cart.Items,
		Totals:   totals,
	}, state.Method)

	// The snapshot is what the confirmation view reads; losing it only means
	// the confirmation renders "not found", so it never blocks the ack.
	if err := s.snapshots.SaveSnapshot(ctx, sessionID, order); err != nil {
		s.logger.Warn("Failed to store order snapshot", zap.String("order_id", order.ID), zap.Error(err))
	}

	if err := s.cart.Clear(ctx, sessionID); err != nil {
		s.logger.Warn("Failed to clear cart after submission", zap.String("session_id", sessionID), zap.Error(err))
	}
	if err := s.repo.DeleteState(ctx, sessionID); err != nil {
		s.logger.Warn("Failed to clear checkout state", zap.String("session_id", sessionID), zap.Error(err))
	}

	s.logger.Info("Order submitted",
		zap.String("order_id", order.ID),
		zap.String("session_id", sessionID),
		zap.Int("payable_total", totals.GrandTotal),
	)
	return &OrderAck{ID: order.ID}, nil
}
