package controllers

import (
	"net/http"

	"github.com/0x00whitecode/hng-audiophile/middleware"
	"github.com/0x00whitecode/hng-audiophile/models"
	"github.com/0x00whitecode/hng-audiophile/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	Checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Checkout: checkout}
}

type shippingRequest struct {
	models.ShippingForm
	SaveInfo bool `json:"save_info"`
}

type paymentRequest struct {
	Method models.PaymentMethod `json:"method" binding:"required"`
	Card   *models.CardDetails  `json:"card"`
}

type promoRequest struct {
	Code string `json:"code"`
}

// GetState returns the current wizard step, captured data and discounted totals
func (cc *CheckoutController) GetState(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	c.JSON(http.StatusOK, cc.Checkout.State(c.Request.Context(), sessionID))
}

// SubmitShipping validates the shipping step and advances to payment
func (cc *CheckoutController) SubmitShipping(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req shippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	fieldErrs, svcErr := cc.Checkout.SubmitShipping(c.Request.Context(), sessionID, &req.ShippingForm, req.SaveInfo)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}
	c.JSON(http.StatusOK, cc.Checkout.State(c.Request.Context(), sessionID))
}

// SavedShipping returns the shipping form previously saved for prefill
func (cc *CheckoutController) SavedShipping(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	form := cc.Checkout.SavedShippingInfo(c.Request.Context(), sessionID)
	if form == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no saved shipping info"})
		return
	}
	c.JSON(http.StatusOK, form)
}

// SubmitPayment validates the payment step and advances to review
func (cc *CheckoutController) SubmitPayment(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	fieldErrs, svcErr := cc.Checkout.SubmitPayment(c.Request.Context(), sessionID, req.Method, req.Card)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}
	c.JSON(http.StatusOK, cc.Checkout.State(c.Request.Context(), sessionID))
}

// Back steps the wizard backwards one step
func (cc *CheckoutController) Back(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	view, svcErr := cc.Checkout.Back(c.Request.Context(), sessionID)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, view)
}

// ApplyPromo applies a discount code against the current cart
func (cc *CheckoutController) ApplyPromo(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req promoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	view, promoErr, svcErr := cc.Checkout.ApplyPromo(c.Request.Context(), sessionID, req.Code)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	if promoErr != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": promoErr, "state": view})
		return
	}
	c.JSON(http.StatusOK, view)
}

// Submit places the order and returns its id
func (cc *CheckoutController) Submit(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	ack, svcErr := cc.Checkout.Submit(c.Request.Context(), sessionID)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusCreated, ack)
}
