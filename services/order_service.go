package services

import (
	"context"
	"time"

	"github.com/0x00whitecode/hng-audiophile/models"
	"github.com/0x00whitecode/hng-audiophile/sender"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderPersister pushes a finished order to an external store.
type OrderPersister interface {
	PersistOrder(ctx context.Context, order *models.Order) error
}

// OrderService constructs orders and triggers the two submission side
// effects. Success is purely local: the order id is returned as soon as the
// record is built, and persistence and email each run in their own goroutine
// with an isolated failure boundary. Failures are logged, never surfaced,
// and never retried.
type OrderService struct {
	persister OrderPersister // nil when no webhook endpoint is configured
	sender    sender.Sender  // nil when SMTP is not configured
	from      string
	baseURL   string
	logger    *zap.Logger
}

func NewOrderService(persister OrderPersister, mailSender sender.Sender, from, baseURL string, logger *zap.Logger) *OrderService {
	return &OrderService{
		persister: persister,
		sender:    mailSender,
		from:      from,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// PlaceOrder builds the order record and kicks off both side effects. The
// caller gets the finished order back immediately; neither side effect can
// block or fail the submission.
func (s *OrderService) PlaceOrder(req *models.OrderRequest, method models.PaymentMethod) *models.Order {
	order := &models.Order{
		ID:            uuid.NewString(),
		Customer:      req.Customer,
		Shipping:      req.Shipping,
		Items:         req.Items,
		Totals:        req.Totals,
		Status:        models.OrderStatusProcessing,
		PaymentMethod: method,
		CreatedAt:     time.Now(),
	}

	go s.persistOrder(order)
	go s.sendConfirmation(order)

	return order
}

func (s *OrderService) persistOrder(order *models.Order) {
	if s.persister == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.persister.PersistOrder(ctx, order); err != nil {
		s.logger.Error("Order persistence failed",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		return
	}
	s.logger.Info("Order persisted", zap.String("order_id", order.ID))
}

func (s *OrderService) sendConfirmation(order *models.Order) {
	if s.sender == nil {
		return
	}

	html, err := sender.RenderOrderEmail(order, s.baseURL)
	if err != nil {
		s.logger.Error("Order email render failed", zap.String("order_id", order.ID), zap.Error(err))
		return
	}

	subject := "Order Confirmation #" + order.ID
	if err := s.sender.Send(s.from, order.Customer.Email, subject, html); err != nil {
		s.logger.Error("Order confirmation email failed",
			zap.String("order_id", order.ID),
			zap.String("to", order.Customer.Email),
			zap.Error(err),
		)
		return
	}
	s.logger.Info("Order confirmation email sent", zap.String("order_id", order.ID))
}
