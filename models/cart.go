package models

import (
	"math"
	"time"
)

// ShippingFee is the flat shipping surcharge applied to any non-empty cart.
const ShippingFee = 50

// TaxRate is the tax fraction applied to the subtotal.
const TaxRate = 0.10

// CartItem is one line in a cart: a product reference with the price
// snapshotted at the time it was added.
type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Cart holds the line items for one session. At most one item per product id;
// adding an existing product increments its quantity.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// OrderTotals is the derived money projection of a cart. It is recomputed on
// demand and never stored alongside the cart.
type OrderTotals struct {
	Subtotal   int `json:"subtotal"`
	Shipping   int `json:"shipping"`
	Tax        int `json:"tax"`
	GrandTotal int `json:"grandTotal"`
}

// ComputeTotals derives the totals for a set of items. Shipping is charged
// only when the subtotal is positive; tax is rounded half away from zero.
func ComputeTotals(items []CartItem) OrderTotals {
	subtotal := 0
	for _, i := range items {
		subtotal += i.Price * i.Quantity
	}

	shipping := 0
	if subtotal > 0 {
		shipping = ShippingFee
	}

	tax := int(math.Round(float64(subtotal) * TaxRate))

	return OrderTotals{
		Subtotal:   subtotal,
		Shipping:   shipping,
		Tax:        tax,
		GrandTotal: subtotal + shipping + tax,
	}
}
