package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MiguelRM25/v0-cafeteria-system-interface/config"
	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/cart"
	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/catalog"
	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/inventory"
	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/orderflow"
	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/salelog"
	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/session"
)

// InitRoutes builds the whole system — stores, ledger, sale log, cart,
// order flow, session — and binds every endpoint on the given Gin engine.
// The inventory is seeded on first run and loaded verbatim afterwards.
func InitRoutes(e *gin.Engine, cfg *config.Config, logger *zap.Logger) error {
	ledger, err := inventory.Open(inventory.NewFileStore(cfg.DataDir), catalog.All(), logger)
	if err != nil {
		return fmt.Errorf("open inventory ledger: %w", err)
	}

	sales, err := salelog.Open(salelog.NewFileStore(cfg.DataDir), logger)
	if err != nil {
		return fmt.Errorf("open sale log: %w", err)
	}

	flow := orderflow.New(cart.New(), ledger, sales, logger)
	sess := session.New([]session.Credentials{
		{Username: cfg.CashierUser, Password: cfg.CashierPassword, Role: session.RoleCashier},
		{Username: cfg.AdminUser, Password: cfg.AdminPassword, Role: session.RoleAdmin},
	}, logger)

	h := NewPOSHandler(flow, sess, ledger, sales, logger)

	e.POST("/login", h.handleLogin)
	e.POST("/logout", h.handleLogout)
	e.GET("/menu/:section", h.handleMenu)

	order := e.Group("/order", h.requireRole(session.RoleCashier))
	order.GET("", h.handleOrderState)
	order.POST("/items", h.handleAddItem)
	order.DELETE("/items/:id", h.handleRemoveItem)
	order.POST("/navigate", h.handleNavigate)
	order.POST("/back", h.handleBack)
	order.POST("/finish", h.handleFinishSelection)
	order.POST("/add-more", h.handleAddMore)
	order.POST("/cross-sell", h.handleCrossSell)
	order.POST("/checkout", h.handleCheckout)
	order.POST("/confirm", h.handleConfirm)
	order.POST("/cancel", h.handleCancel)
	order.POST("/close", h.handleCloseFinalTotal)

	admin := e.Group("/admin", h.requireRole(session.RoleAdmin))
	admin.GET("/inventory", h.handleAdminInventory)
	admin.POST("/inventory/:id/restock", h.handleRestock)
	admin.GET("/sales", h.handleAdminSales)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	return nil
}
