package models

import "time"

// OrderStatus is the lifecycle state of an order. Orders are created as
// "processing"; nothing in this service transitions them to "completed".
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
)

// Customer is the contact captured for a single order. There is no
// persistent identity behind it.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ShippingAddress is the delivery destination for an order.
type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

// OrderRequest is the payload handed to the order gateway: the finalized
// cart contents plus customer data, with totals already discounted.
type OrderRequest struct {
	Customer Customer        `json:"customer"`
	Shipping ShippingAddress `json:"shipping"`
	Items    []CartItem      `json:"items"`
	Totals   OrderTotals     `json:"totals"`
}

// Order is the record built at submission time. It is never mutated after
// creation.
type Order struct {
	ID            string          `json:"id"`
	Customer      Customer        `json:"customer"`
	Shipping      ShippingAddress `json:"shipping"`
	Items         []CartItem      `json:"items"`
	Totals        OrderTotals     `json:"totals"`
	Status        OrderStatus     `json:"status"`
	PaymentMethod PaymentMethod   `json:"payment_method,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
