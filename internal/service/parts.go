package service

import (
	"context"
	"errors"
	"fmt"

	"crane-parts-backend/internal/model"

	"gorm.io/gorm"
)

// ErrMachineNotFound は機種が見つからないエラー
var ErrMachineNotFound = errors.New("machine not found")

const defaultSuggestionLimit = 6

// PartsService は部品互換性・提案サービスのインターフェース
type PartsService interface {
	GetCompatibleParts(ctx context.Context, machineID string) ([]model.Product, error)
	GetPartSuggestions(ctx context.Context, userID string, limit int) ([]model.Product, error)
}

// partsServiceImpl は部品サービスの実装
type partsServiceImpl struct {
	db *gorm.DB
}

// NewPartsService は新しい部品サービスを作成
func NewPartsService(db *gorm.DB) PartsService {
	return &partsServiceImpl{db: db}
}

// GetCompatibleParts は機種に適合するアクティブな部品一覧を取得
func (s *partsServiceImpl) GetCompatibleParts(ctx context.Context, machineID string) ([]model.Product, error) {
	var machine model.Machine
	if err := s.db.WithContext(ctx).Where("id = ?", machineID).First(&machine).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMachineNotFound
		}
		return nil, fmt.Errorf("failed to get machine: %w", err)
	}

	var parts []model.Product
	err := s.db.WithContext(ctx).Model(&model.Product{}).
		Joins("JOIN machine_compatibilities mc ON mc.product_id = products.id").
		Where("mc.machine_id = ?", machineID).
		Where("products.is_active = ?", true).
		Order("products.name ASC").
		Find(&parts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get compatible parts: %w", err)
	}

	if parts == nil {
		parts = []model.Product{}
	}
	return parts, nil
}

// GetPartSuggestions はユーザーの注文履歴に基づく部品提案を取得
// The user's most-ordered active parts come first (by summed quantity);
// the list is topped up with the newest active products to reach the limit.
func (s *partsServiceImpl) GetPartSuggestions(ctx context.Context, userID string, limit int) ([]model.Product, error) {
	if limit < 1 {
		limit = defaultSuggestionLimit
	}

	var historyIDs []string
	err := s.db.WithContext(ctx).Model(&model.OrderItem{}).
		Select("order_items.product_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.user_id = ?", userID).
		Where("products.is_active = ?", true).
		Group("order_items.product_id").
		Order("SUM(order_items.quantity) DESC").
		Limit(limit).
		Pluck("order_items.product_id", &historyIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get order history: %w", err)
	}

	suggestions, err := s.loadProductsInOrder(ctx, historyIDs)
	if err != nil {
		return nil, err
	}

	if remaining := limit - len(suggestions); remaining > 0 {
		fill, err := s.newestActiveProducts(ctx, historyIDs, remaining)
		if err != nil {
			return nil, err
		}
		suggestions = append(suggestions, fill...)
	}

	return suggestions, nil
}

// loadProductsInOrder は指定されたID順で商品を取得
// IN queries do not preserve order, so rows are re-sequenced in memory.
func (s *partsServiceImpl) loadProductsInOrder(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	var products []model.Product
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load suggested products: %w", err)
	}

	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	ordered := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// newestActiveProducts は最新のアクティブ商品を取得（除外ID付き）
func (s *partsServiceImpl) newestActiveProducts(ctx context.Context, excludeIDs []string, limit int) ([]model.Product, error) {
	query := s.db.WithContext(ctx).Model(&model.Product{}).
		Where("is_active = ?", true)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var products []model.Product
	err := query.Order("created_at DESC").Limit(limit).Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load newest products: %w", err)
	}
	return products, nil
}
