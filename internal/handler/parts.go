package handler

import (
	"errors"
	"net/http"
	"strconv"

	"crane-parts-backend/internal/middleware"
	"crane-parts-backend/internal/service"
	"crane-parts-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PartsHandler は部品互換性・提案のHTTPハンドラー
// These endpoints use the bare {error} envelope; existing clients depend
// on it.
type PartsHandler struct {
	partsService service.PartsService
	log          *logger.Logger
}

// NewPartsHandler は新しい部品ハンドラーを作成
func NewPartsHandler(partsService service.PartsService, log *logger.Logger) *PartsHandler {
	return &PartsHandler{
		partsService: partsService,
		log:          log.WithComponent("parts_handler"),
	}
}

// GetCompatibleParts は機種に適合する部品一覧を取得
func (h *PartsHandler) GetCompatibleParts(c *gin.Context) {
	machineID := c.Param("id")
	if machineID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "machine id is required"})
		return
	}

	parts, err := h.partsService.GetCompatibleParts(c.Request.Context(), machineID)
	if err != nil {
		if errors.Is(err, service.ErrMachineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "machine not found"})
			return
		}
		h.log.Error("failed to get compatible parts", "error", err, "machine_id", machineID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get compatible parts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"parts": parts})
}

// GetSuggestions はユーザー向けの部品提案を取得
func (h *PartsHandler) GetSuggestions(c *gin.Context) {
	user, exists := middleware.GetUserFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 {
			limit = l
		}
	}

	suggestions, err := h.partsService.GetPartSuggestions(c.Request.Context(), user.ID, limit)
	if err != nil {
		h.log.Error("failed to get part suggestions", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get suggestions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
