package controllers

import (
	"net/http"

	"github.com/0x00whitecode/hng-audiophile/middleware"
	"github.com/0x00whitecode/hng-audiophile/models"
	"github.com/0x00whitecode/hng-audiophile/repository"
	"github.com/0x00whitecode/hng-audiophile/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Cart     *services.CartService
	Products *repository.ProductRepository
}

func NewCartController(cart *services.CartService, products *repository.ProductRepository) *CartController {
	return &CartController{Cart: cart, Products: products}
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type setQuantityRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// GetCart returns the session's cart items and totals
func (cc *CartController) GetCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	c.JSON(http.StatusOK, cc.Cart.View(c.Request.Context(), sessionID))
}

// AddItem resolves the product and merges it into the cart, snapshotting
// the catalog name and price at time of add
func (cc *CartController) AddItem(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	product, err := cc.Products.FindByID(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	item := models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  req.Quantity,
	}

	cart, err := cc.Cart.AddItem(c.Request.Context(), sessionID, item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, services.CartView{Items: cart.Items, Totals: models.ComputeTotals(cart.Items)})
}

// SetQuantity replaces an item's quantity, clamped to a minimum of 1
func (cc *CartController) SetQuantity(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	// The store accepts whatever it is given; clamping is this caller's job.
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	cart, err := cc.Cart.SetQuantity(c.Request.Context(), sessionID, req.ProductID, req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, services.CartView{Items: cart.Items, Totals: models.ComputeTotals(cart.Items)})
}

// RemoveItem removes a specific item from the cart
func (cc *CartController) RemoveItem(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	productID := c.Param("product_id")

	cart, err := cc.Cart.RemoveItem(c.Request.Context(), sessionID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, services.CartView{Items: cart.Items, Totals: models.ComputeTotals(cart.Items)})
}

// ClearCart removes all items from the cart
func (cc *CartController) ClearCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	if err := cc.Cart.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
