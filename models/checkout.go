package models

// Step is one of the checkout wizard states.
type Step string

const (
	StepShipping Step = "shipping"
	StepPayment  Step = "payment"
	StepReview   Step = "review"
)

func (s Step) String() string {
	return string(s)
}

// PaymentMethod is the payment option chosen on the payment step.
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPaypal PaymentMethod = "paypal"
)

// ShippingForm is the shipping-step input: customer contact plus address.
type ShippingForm struct {
	Name    string `json:"name" validate:"min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"min=6"`
	Address string `json:"address" validate:"min=4"`
	Zip     string `json:"zip" validate:"min=3"`
	City    string `json:"city" validate:"min=2"`
	Country string `json:"country" validate:"min=2"`
}

// Customer extracts the contact fields of a shipping form.
func (f ShippingForm) Customer() Customer {
	return Customer{Name: f.Name, Email: f.Email, Phone: f.Phone}
}

// ShippingAddress extracts the address fields of a shipping form.
func (f ShippingForm) ShippingAddress() ShippingAddress {
	return ShippingAddress{Address: f.Address, City: f.City, Country: f.Country, Zip: f.Zip}
}

// CardDetails is the card input collected when the payment method is "card".
// The values are validated for shape only; no charge is ever attempted.
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc"`
}

// CheckoutState is the per-session wizard state persisted between requests.
type CheckoutState struct {
	Step      Step          `json:"step"`
	Shipping  *ShippingForm `json:"shipping,omitempty"`
	Method    PaymentMethod `json:"method,omitempty"`
	PromoCode string        `json:"promo_code,omitempty"`
	Discount  int           `json:"discount"`
}

// NewCheckoutState returns the initial wizard state.
func NewCheckoutState() *CheckoutState {
	return &CheckoutState{Step: StepShipping}
}
