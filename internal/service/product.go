package service

import (
	"context"
	"errors"
	"fmt"

	"crane-parts-backend/internal/model"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ErrProductNotFound は商品が見つからないエラー
var ErrProductNotFound = errors.New("product not found")

const (
	defaultPage  = 1
	defaultLimit = 12
)

// ProductFilters は商品フィルタリング条件
type ProductFilters struct {
	Category string
	Search   string
	Page     int // ページ番号（1から開始）
	Limit    int // 1ページあたりの件数
}

// ProductService は商品サービスのインターフェース
type ProductService interface {
	ListProducts(ctx context.Context, filters ProductFilters) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
}

// productServiceImpl は商品サービスの実装
type productServiceImpl struct {
	db *gorm.DB
}

// NewProductService は新しい商品サービスを作成
func NewProductService(db *gorm.DB) ProductService {
	return &productServiceImpl{db: db}
}

// normalizePaging clamps page and limit to at least 1 so the offset
// arithmetic can never go negative. Zero values fall back to defaults.
func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// totalPageCount は総ページ数を計算
func totalPageCount(total int64, limit int) int {
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// applyProductFilters はクエリに商品フィルタを適用
// Inactive products are always excluded regardless of the other filters.
func (s *productServiceImpl) applyProductFilters(query *gorm.DB, filters ProductFilters) *gorm.DB {
	query = query.Where("is_active = ?", true)

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where(
			s.db.Where("name ILIKE ?", pattern).
				Or("part_number ILIKE ?", pattern).
				Or("description ILIKE ?", pattern),
		)
	}
	return query
}

// ListProducts はアクティブな商品の1ページ分を取得
// The page fetch and the total count run concurrently over the same
// predicate; both are read-only, so neither observes a partial effect of
// the other.
func (s *productServiceImpl) ListProducts(ctx context.Context, filters ProductFilters) (*model.ProductListResponse, error) {
	page, limit := normalizePaging(filters.Page, filters.Limit)
	offset := (page - 1) * limit

	var (
		products []model.Product
		total    int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		query := s.applyProductFilters(s.db.WithContext(gctx).Model(&model.Product{}), filters)
		if err := query.Count(&total).Error; err != nil {
			return fmt.Errorf("failed to count products: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		query := s.applyProductFilters(s.db.WithContext(gctx).Model(&model.Product{}), filters)
		err := query.
			Order("created_at DESC").
			Offset(offset).
			Limit(limit).
			Find(&products).Error
		if err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if products == nil {
		products = []model.Product{}
	}

	return &model.ProductListResponse{
		Products: products,
		Pagination: model.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPageCount(total, limit),
		},
	}, nil
}

// GetProduct は商品を取得
func (s *productServiceImpl) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}
