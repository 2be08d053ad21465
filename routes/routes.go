package routes

import (
	"github.com/0x00whitecode/hng-audiophile/config"
	"github.com/0x00whitecode/hng-audiophile/controllers"
	"github.com/0x00whitecode/hng-audiophile/database"
	"github.com/0x00whitecode/hng-audiophile/logger"
	"github.com/0x00whitecode/hng-audiophile/repository"
	"github.com/0x00whitecode/hng-audiophile/sender"
	"github.com/0x00whitecode/hng-audiophile/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes wires the repositories, services and controllers onto the
// router.
func RegisterRoutes(r *gin.Engine, store database.Store, cfg config.Config) {
	log := logger.Log

	productRepo := repository.NewProductRepository(nil)
	cartRepo := repository.NewCartRepository(store, cfg.SessionTTL)
	checkoutRepo := repository.NewCheckoutRepository(store, cfg.SessionTTL)
	orderRepo := repository.NewOrderRepository(store, cfg.SessionTTL)

	var persister services.OrderPersister
	if cfg.OrderWebhookURL != "" {
		persister = services.NewWebhookPersister(cfg.OrderWebhookURL)
	} else {
		log.Info("No order webhook configured, skipping external persistence")
	}

	var mailSender sender.Sender
	if cfg.EmailEnabled() {
		smtp, err := sender.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
		if err != nil {
			log.Warn("SMTP sender unavailable, confirmation emails disabled", zap.Error(err))
		} else {
			mailSender = smtp
		}
	} else {
		log.Info("SMTP not configured, confirmation emails disabled")
	}

	cartSvc := services.NewCartService(cartRepo, log)
	orderSvc := services.NewOrderService(persister, mailSender, cfg.EmailFrom, cfg.BaseURL, log)
	checkoutSvc := services.NewCheckoutService(checkoutRepo, cartSvc, orderSvc, orderRepo, log)

	productCtrl := controllers.NewProductController(productRepo)
	cartCtrl := controllers.NewCartController(cartSvc, productRepo)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	orderCtrl := controllers.NewOrderController(orderRepo)

	r.GET("/products", productCtrl.ListProducts)
	r.GET("/products/:slug", productCtrl.GetProduct)
	r.GET("/categories/:name/products", productCtrl.ListByCategory)

	cart := r.Group("/cart")
	{
		cart.GET("", cartCtrl.GetCart)
		cart.POST("/add", cartCtrl.AddItem)
		cart.PUT("/quantity", cartCtrl.SetQuantity)
		cart.DELETE("/remove/:product_id", cartCtrl.RemoveItem)
		cart.DELETE("/clear", cartCtrl.ClearCart)
	}

	checkout := r.Group("/checkout")
	{
		checkout.GET("", checkoutCtrl.GetState)
		checkout.POST("/shipping", checkoutCtrl.SubmitShipping)
		checkout.GET("/shipping/saved", checkoutCtrl.SavedShipping)
		checkout.POST("/payment", checkoutCtrl.SubmitPayment)
		checkout.POST("/back", checkoutCtrl.Back)
		checkout.POST("/promo", checkoutCtrl.ApplyPromo)
		checkout.POST("/submit", checkoutCtrl.Submit)
	}

	orders := r.Group("/orders")
	{
		orders.GET("/last", orderCtrl.GetLastOrder)
		orders.GET("/:id", orderCtrl.GetOrder)
	}
}
