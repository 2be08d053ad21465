package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/0x00whitecode/hng-audiophile/models"
	"github.com/0x00whitecode/hng-audiophile/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// --- Mock persister ---

type mockPersister struct {
	err   error
	calls chan *models.Order
}

func newMockPersister(err error) *mockPersister {
	return &mockPersister{err: err, calls: make(chan *models.Order, 1)}
}

func (m *mockPersister) PersistOrder(_ context.Context, order *models.Order) error {
	m.calls <- order
	return m.err
}

// --- Mock sender ---

type mockSender struct {
	err   error
	calls chan string
}

func newMockSender(err error) *mockSender {
	return &mockSender{err: err, calls: make(chan string, 1)}
}

func (m *mockSender) Send(_, to, _, _ string) error {
	m.calls <- to
	return m.err
}

// --- Helpers ---

func orderRequest() *models.OrderRequest {
	return &models.OrderRequest{
		Customer: models.Customer{Name: "Jane Doe", Email: "jane@example.com", Phone: "08012345678"},
		Shipping: models.ShippingAddress{Address: "12 Harbor Road", City: "Lagos", Country: "Nigeria", Zip: "10001"},
		Items:    []models.CartItem{{ProductID: "yx1", Name: "YX1 Earphones", Price: 599, Quantity: 1}},
		Totals:   models.OrderTotals{Subtotal: 599, Shipping: 50, Tax: 60, GrandTotal: 709},
	}
}

func waitFor[T any](t *testing.T, ch chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for side effect")
		panic("unreachable")
	}
}

// --- Tests ---

func TestOrderService_PlaceOrderBuildsOrder(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	svc := services.NewOrderService(nil, nil, "orders@audiophile.dev", "http://localhost:8080", logger)

	order := svc.PlaceOrder(orderRequest(), models.PaymentMethodCard)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.Equal(t, models.PaymentMethodCard, order.PaymentMethod)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestOrderService_IDsAreUniquePerSubmission(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	svc := services.NewOrderService(nil, nil, "orders@audiophile.dev", "http://localhost:8080", logger)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		order := svc.PlaceOrder(orderRequest(), models.PaymentMethodPaypal)
		assert.False(t, seen[order.ID])
		seen[order.ID] = true
	}
}

func TestOrderService_PersisterFailureStillReturnsOrder(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	persister := newMockPersister(errors.New("endpoint always errors"))
	svc := services.NewOrderService(persister, nil, "orders@audiophile.dev", "http://localhost:8080", logger)

	order := svc.PlaceOrder(orderRequest(), models.PaymentMethodCard)

	assert.NotEmpty(t, order.ID, "Persistence failure must not block the ack")
	persisted := waitFor(t, persister.calls)
	assert.Equal(t, order.ID, persisted.ID)
}

func TestOrderService_SenderFailureDoesNotBlockPersistence(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	persister := newMockPersister(nil)
	mailSender := newMockSender(errors.New("smtp down"))
	svc := services.NewOrderService(persister, mailSender, "orders@audiophile.dev", "http://localhost:8080", logger)

	order := svc.PlaceOrder(orderRequest(), models.PaymentMethodCard)

	assert.NotEmpty(t, order.ID)
	persisted := waitFor(t, persister.calls)
	assert.Equal(t, order.ID, persisted.ID, "Email failure must not prevent the persistence call")
	to := waitFor(t, mailSender.calls)
	assert.Equal(t, "jane@example.com", to)
}

func TestOrderService_EmailSentToCustomer(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	mailSender := newMockSender(nil)
	svc := services.NewOrderService(nil, mailSender, "orders@audiophile.dev", "http://localhost:8080", logger)

	svc.PlaceOrder(orderRequest(), models.PaymentMethodPaypal)

	to := waitFor(t, mailSender.calls)
	assert.Equal(t, "jane@example.com", to)
}
