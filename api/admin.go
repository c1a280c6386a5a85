package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/inventory"
)

// inventoryView is one ledger entry plus its derived stock level for the
// admin dashboard.
type inventoryView struct {
	inventory.Entry
	Level string `json:"level"`
}

func (h *posHandler) handleAdminInventory(c *gin.Context) {
	h.mu.Lock()
	entries := h.ledger.Entries()
	h.mu.Unlock()

	views := make([]inventoryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, inventoryView{Entry: e, Level: e.Level()})
	}
	c.JSON(http.StatusOK, gin.H{"inventory": views})
}

func (h *posHandler) handleRestock(c *gin.Context) {
	var req struct {
		Amount int `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	h.mu.Lock()
	entry, err := h.ledger.Restock(c.Param("id"), req.Amount)
	h.mu.Unlock()
	if err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inventory entry not found"})
			return
		}
		h.logger.Error("restock failed", zap.String("product_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to restock item"})
		return
	}

	c.JSON(http.StatusOK, inventoryView{Entry: entry, Level: entry.Level()})
}

// handleAdminSales lists the full sale history with the derived
// aggregates. The admin view never mutates the sale log.
func (h *posHandler) handleAdminSales(c *gin.Context) {
	h.mu.Lock()
	sales := h.sales.Sales()
	summary := h.sales.Summarize()
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"results": sales, "metadata": summary})
}
