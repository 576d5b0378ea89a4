package handler

import (
	"errors"
	"net/http"
	"strconv"

	"crane-parts-backend/internal/service"
	"crane-parts-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ProductHandler は商品のHTTPハンドラー
type ProductHandler struct {
	productService service.ProductService
	log            *logger.Logger
}

// NewProductHandler は新しい商品ハンドラーを作成
func NewProductHandler(productService service.ProductService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		log:            log.WithComponent("product_handler"),
	}
}

// GetProducts はアクティブな商品の1ページ分を取得
func (h *ProductHandler) GetProducts(c *gin.Context) {
	filters := service.ProductFilters{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	// Non-numeric paging input falls back to the defaults instead of
	// propagating a parse failure into the query.
	if page := c.Query("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil && p > 0 {
			filters.Page = p
		}
	}
	if limit := c.Query("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			filters.Limit = l
		}
	}

	response, err := h.productService.ListProducts(c.Request.Context(), filters)
	if err != nil {
		h.log.Error("failed to list products", "error", err, "category", filters.Category, "search", filters.Search)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to list products"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetProduct は指定された商品を取得
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")

	product, err := h.productService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "product not found"})
			return
		}
		h.log.Error("failed to get product", "error", err, "product_id", productID)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to get product"})
		return
	}

	c.JSON(http.StatusOK, product)
}
