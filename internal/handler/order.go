package handler

import (
	"net/http"

	"crane-parts-backend/internal/middleware"
	"crane-parts-backend/internal/service"
	"crane-parts-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// OrderHandler は注文のHTTPハンドラー
type OrderHandler struct {
	orderService service.OrderService
	log          *logger.Logger
}

// NewOrderHandler は新しい注文ハンドラーを作成
func NewOrderHandler(orderService service.OrderService, log *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log.WithComponent("order_handler"),
	}
}

// GetAdminOrders は全ディーラーのルーティングを含む注文一覧を取得
// Both filters are optional; an absent parameter imposes no constraint.
func (h *OrderHandler) GetAdminOrders(c *gin.Context) {
	filters := service.OrderFilters{
		Status:   c.Query("status"),
		DealerID: c.Query("dealerId"),
	}

	orders, count, err := h.orderService.ListAdminOrders(c.Request.Context(), filters)
	if err != nil {
		h.log.Error("failed to list admin orders", "error", err, "status", filters.Status, "dealer_id", filters.DealerID)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
		"count":   count,
	})
}

// GetDealerOrders はディーラー自身の注文一覧を取得
// The dealer identity comes from the authenticated session, never from a
// request parameter.
func (h *OrderHandler) GetDealerOrders(c *gin.Context) {
	user, exists := middleware.GetUserFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication required"})
		return
	}

	if user.DealerID == nil || *user.DealerID == "" {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "no dealer associated with this account"})
		return
	}

	orders, err := h.orderService.ListDealerOrders(c.Request.Context(), *user.DealerID, c.Query("status"))
	if err != nil {
		h.log.Error("failed to list dealer orders", "error", err, "dealer_id", *user.DealerID)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}
