package api

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/cart"
	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/catalog"
	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/inventory"
	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/orderflow"
	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/salelog"
	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/session"
)

// posHandler holds the core collaborators and implements the HTTP surface
// over them. The mutex serializes actions: the core is single-operator and
// processes one fully-formed action at a time.
type posHandler struct {
	mu      sync.Mutex
	flow    *orderflow.Flow
	session *session.Session
	ledger  *inventory.Ledger
	sales   *salelog.Log
	logger  *zap.Logger
}

// NewPOSHandler creates a new handler over the order flow and its
// collaborators.
func NewPOSHandler(flow *orderflow.Flow, sess *session.Session, ledger *inventory.Ledger, sales *salelog.Log, logger *zap.Logger) *posHandler {
	return &posHandler{
		flow:    flow,
		session: sess,
		ledger:  ledger,
		sales:   sales,
		logger:  logger,
	}
}

// requireRole guards a route group behind one of the two fixed roles.
func (h *posHandler) requireRole(role session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.mu.Lock()
		current := h.session.Role()
		h.mu.Unlock()
		if current != role {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		}
	}
}

func (h *posHandler) handleLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	h.mu.Lock()
	role, err := h.session.Login(req.Username, req.Password)
	h.mu.Unlock()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": role})
}

// handleLogout ends the session: the cart is abandoned and navigation
// resets, but the sale log and inventory are untouched.
func (h *posHandler) handleLogout(c *gin.Context) {
	h.mu.Lock()
	h.flow.Reset()
	h.session.Logout()
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *posHandler) handleMenu(c *gin.Context) {
	items := catalog.Items(catalog.Section(c.Param("section")))
	if items == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown menu section"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *posHandler) handleOrderState(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.JSON(http.StatusOK, h.stateResponse())
}

func (h *posHandler) handleAddItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.flow.Add(req.ProductID); err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.stateResponse())
}

func (h *posHandler) handleRemoveItem(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.flow.Remove(c.Param("id"))
	c.JSON(http.StatusOK, h.stateResponse())
}

func (h *posHandler) handleNavigate(c *gin.Context) {
	var req struct {
		View string `json:"view"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	view, ok := orderflow.ParseView(req.View)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown view"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.flow.Navigate(view); err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.stateResponse())
}

func (h *posHandler) handleBack(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.flow.Back(); err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.stateResponse())
}

func (h *posHandler) handleFinishSelection(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.flow.FinishSelection(); err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.stateResponse())
}

func (h *posHandler) handleAddMore(c *gin.Context) {
	var req struct {
		AddMore bool `json:"add_more"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.flow.AnswerAddMore(req.AddMore); err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.stateResponse())
}

func (h *posHandler) handleCrossSell(c *gin.Context) {
	var req struct {
		AddOther bool `json:"add_other"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.flow.AnswerCrossSell(req.AddOther); err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.stateResponse())
}

func (h *posHandler) handleCheckout(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.flow.Checkout(); err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.stateResponse())
}

func (h *posHandler) handleConfirm(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	sale, err := h.flow.ConfirmSale()
	if err != nil {
		h.renderFlowError(c, err)
		return
	}

	resp := h.stateResponse()
	resp["sale"] = sale
	c.JSON(http.StatusOK, resp)
}

func (h *posHandler) handleCancel(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.flow.CancelConfirm(); err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.stateResponse())
}

func (h *posHandler) handleCloseFinalTotal(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.flow.DismissFinalTotal(); err != nil {
		h.renderFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.stateResponse())
}

// stateResponse renders everything the presentation collaborator needs:
// the navigation state, the pending prompt with its data, and the cart
// with its running total. Callers hold the mutex.
func (h *posHandler) stateResponse() gin.H {
	lines := h.flow.Cart().Lines()
	if lines == nil {
		lines = []cart.Line{}
	}
	return gin.H{
		"view":   h.flow.View(),
		"prompt": promptJSON(h.flow.Prompt()),
		"cart":   lines,
		"total":  h.flow.Cart().Total(),
	}
}

func promptJSON(p orderflow.Prompt) gin.H {
	switch p := p.(type) {
	case orderflow.AddMore:
		return gin.H{"type": "add-more", "category": p.Category}
	case orderflow.CrossSell:
		return gin.H{"type": "cross-sell", "category": p.Category}
	case orderflow.Confirm:
		return gin.H{"type": "confirm-order"}
	case orderflow.FinalTotal:
		return gin.H{"type": "final-total", "total": p.Total}
	}
	return nil
}

func (h *posHandler) renderFlowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, orderflow.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
	case errors.Is(err, orderflow.ErrPromptPending):
		c.JSON(http.StatusConflict, gin.H{"error": "answer the pending prompt first"})
	case errors.Is(err, orderflow.ErrNoPrompt):
		c.JSON(http.StatusConflict, gin.H{"error": "no such prompt is pending"})
	case errors.Is(err, orderflow.ErrNoActiveCategory):
		c.JSON(http.StatusConflict, gin.H{"error": "no active category"})
	case errors.Is(err, orderflow.ErrUnknownProduct):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown product"})
	default:
		h.logger.Error("order action failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
