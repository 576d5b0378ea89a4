package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crane-parts-backend/internal/model"
	"crane-parts-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductService struct {
	resp       *model.ProductListResponse
	err        error
	gotFilters *service.ProductFilters

	product    *model.Product
	productErr error
}

func (f *fakeProductService) ListProducts(ctx context.Context, filters service.ProductFilters) (*model.ProductListResponse, error) {
	f.gotFilters = &filters
	return f.resp, f.err
}

func (f *fakeProductService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return f.product, f.productErr
}

func productRouter(svc service.ProductService) *gin.Engine {
	r := gin.New()
	h := NewProductHandler(svc, testLogger())
	r.GET("/api/products", h.GetProducts)
	r.GET("/api/products/:id", h.GetProduct)
	return r
}

func getProducts(t *testing.T, r *gin.Engine, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/products"+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func emptyListResponse() *model.ProductListResponse {
	return &model.ProductListResponse{
		Products:   []model.Product{},
		Pagination: model.Pagination{Page: 1, Limit: 12, Total: 0, TotalPages: 1},
	}
}

func Test_GetProducts_PassesFilters(t *testing.T) {
	svc := &fakeProductService{resp: emptyListResponse()}
	r := productRouter(svc)

	w := getProducts(t, r, "?category=hydraulics&search=pump&page=2&limit=24")

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.gotFilters)
	assert.Equal(t, "hydraulics", svc.gotFilters.Category)
	assert.Equal(t, "pump", svc.gotFilters.Search)
	assert.Equal(t, 2, svc.gotFilters.Page)
	assert.Equal(t, 24, svc.gotFilters.Limit)
}

func Test_GetProducts_NonNumericPagingFallsBack(t *testing.T) {
	svc := &fakeProductService{resp: emptyListResponse()}
	r := productRouter(svc)

	w := getProducts(t, r, "?page=abc&limit=-5")

	// Unparseable values never reach the query layer; the zero values are
	// normalized to the defaults by the service.
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.gotFilters)
	assert.Equal(t, 0, svc.gotFilters.Page)
	assert.Equal(t, 0, svc.gotFilters.Limit)
}

func Test_GetProducts_ResponseShape(t *testing.T) {
	svc := &fakeProductService{resp: &model.ProductListResponse{
		Products: []model.Product{{ID: "prd-1", Name: "Hydraulic Pump HP-220"}},
		Pagination: model.Pagination{
			Page:       3,
			Limit:      12,
			Total:      25,
			TotalPages: 3,
		},
	}}
	r := productRouter(svc)

	w := getProducts(t, r, "?page=3")

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Products   []model.Product  `json:"products"`
		Pagination model.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Products, 1)
	assert.Equal(t, 3, body.Pagination.Page)
	assert.Equal(t, int64(25), body.Pagination.Total)
	assert.Equal(t, 3, body.Pagination.TotalPages)
}

func Test_GetProduct_NotFound(t *testing.T) {
	svc := &fakeProductService{productErr: service.ErrProductNotFound}
	r := productRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/products/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_GetProduct_Found(t *testing.T) {
	svc := &fakeProductService{product: &model.Product{ID: "prd-1", Name: "Hydraulic Pump HP-220"}}
	r := productRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/products/prd-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var product model.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, "prd-1", product.ID)
}

func Test_GetProducts_ServiceFailure(t *testing.T) {
	svc := &fakeProductService{err: assert.AnError}
	r := productRouter(svc)

	w := getProducts(t, r, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}
