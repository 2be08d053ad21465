package controllers

import (
	"net/http"

	"github.com/0x00whitecode/hng-audiophile/middleware"
	"github.com/0x00whitecode/hng-audiophile/repository"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Repo *repository.OrderRepository
}

func NewOrderController(repo *repository.OrderRepository) *OrderController {
	return &OrderController{Repo: repo}
}

// GetOrder returns the snapshot stored for an order id within the caller's
// session. Snapshots for orders placed elsewhere are not visible here.
func (oc *OrderController) GetOrder(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	orderID := c.Param("id")

	order, err := oc.Repo.GetSnapshot(c.Request.Context(), sessionID, orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found for this session"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetLastOrder returns the id of the session's most recent order
func (oc *OrderController) GetLastOrder(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	id, err := oc.Repo.GetLastOrderID(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no recent order for this session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
