package services

import (
	"regexp"
	"strings"

	"github.com/0x00whitecode/hng-audiophile/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Per-field messages for the shipping form, keyed by struct field name.
var shippingMessages = map[string]struct{ field, message string }{
	"Name":    {"name", "Required"},
	"Email":   {"email", "Invalid email"},
	"Phone":   {"phone", "Invalid"},
	"Address": {"address", "Required"},
	"Zip":     {"zip", "Invalid"},
	"City":    {"city", "Required"},
	"Country": {"country", "Required"},
}

// ValidateShipping checks the shipping form and returns a map of field name
// to message for every failing field. An empty map means the form is valid.
func ValidateShipping(form *models.ShippingForm) map[string]string {
	errs := make(map[string]string)

	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "Invalid input"
		return errs
	}

	for _, fe := range validationErrs {
		if m, known := shippingMessages[fe.StructField()]; known {
			errs[m.field] = m.message
		}
	}
	return errs
}

var (
	cardNumberPattern = regexp.MustCompile(`^\d{13,19}$`)
	cardExpiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cardCVCPattern    = regexp.MustCompile(`^\d{3,4}$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// ValidatePayment checks the chosen payment method. PayPal collects no
// further fields and always passes; card details are validated for shape
// only. Returns field-scoped messages, empty when valid.
func ValidatePayment(method models.PaymentMethod, card *models.CardDetails) map[string]string {
	errs := make(map[string]string)

	if method == models.PaymentMethodPaypal {
		return errs
	}

	if card == nil {
		card = &models.CardDetails{}
	}

	number := whitespacePattern.ReplaceAllString(card.Number, "")
	if !cardNumberPattern.MatchString(number) {
		errs["number"] = "Enter a valid card number"
	}
	if !cardExpiryPattern.MatchString(card.Expiry) {
		errs["expiry"] = "Use MM/YY format"
	}
	if !cardCVCPattern.MatchString(strings.TrimSpace(card.CVC)) {
		errs["cvc"] = "CVC must be 3-4 digits"
	}
	return errs
}
