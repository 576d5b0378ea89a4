package service

import (
	"context"
	"fmt"

	"crane-parts-backend/internal/model"

	"gorm.io/gorm"
)

// OrderFilters は注文一覧のフィルタリング条件
type OrderFilters struct {
	Status   string
	DealerID string
}

// OrderService は注文サービスのインターフェース
type OrderService interface {
	// ListAdminOrders returns the full routing fan-out for every matching
	// order, plus the total count. DealerID narrows which orders match but
	// never which routing rows are returned.
	ListAdminOrders(ctx context.Context, filters OrderFilters) ([]model.OrderView, int64, error)
	// ListDealerOrders returns orders routed to the dealer, with the
	// routing payload restricted to that dealer's own rows.
	ListDealerOrders(ctx context.Context, dealerID, status string) ([]model.OrderView, error)
}

// orderServiceImpl は注文サービスの実装
type orderServiceImpl struct {
	db *gorm.DB
}

// NewOrderService は新しい注文サービスを作成
func NewOrderService(db *gorm.DB) OrderService {
	return &orderServiceImpl{db: db}
}

// routedToDealerClause matches orders having at least one routing row for
// the dealer. Status, when present, must hold on the same routing row, not
// as an independent existential.
func routedToDealerClause(dealerID, routingStatus string) (string, []interface{}) {
	clause := "EXISTS (SELECT 1 FROM routings WHERE routings.order_id = orders.id AND routings.dealer_id = ?"
	args := []interface{}{dealerID}
	if routingStatus != "" {
		clause += " AND routings.status = ?"
		args = append(args, routingStatus)
	}
	clause += ")"
	return clause, args
}

// applyAdminOrderFilters は管理者向けの注文フィルタを適用
// Absent parameters impose no constraint.
func applyAdminOrderFilters(query *gorm.DB, filters OrderFilters) *gorm.DB {
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.DealerID != "" {
		clause, args := routedToDealerClause(filters.DealerID, "")
		query = query.Where(clause, args...)
	}
	return query
}

// ListAdminOrders は全ディーラーのルーティングを含む注文一覧を取得
func (s *orderServiceImpl) ListAdminOrders(ctx context.Context, filters OrderFilters) ([]model.OrderView, int64, error) {
	var count int64
	countQuery := applyAdminOrderFilters(s.db.WithContext(ctx).Model(&model.Order{}), filters)
	if err := countQuery.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	// No pagination on order listings: the full result set is part of the
	// endpoint contract.
	var orders []model.Order
	query := applyAdminOrderFilters(s.db.WithContext(ctx).Model(&model.Order{}), filters)
	err := query.
		Preload("Items.Product").
		Preload("Routings.Dealer").
		Preload("User").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	return composeOrderViews(orders, false), count, nil
}

// ListDealerOrders はディーラー自身に割り当てられた注文一覧を取得
func (s *orderServiceImpl) ListDealerOrders(ctx context.Context, dealerID, status string) ([]model.OrderView, error) {
	if dealerID == "" {
		return nil, fmt.Errorf("dealer id is required")
	}

	clause, args := routedToDealerClause(dealerID, status)

	var orders []model.Order
	err := s.db.WithContext(ctx).Model(&model.Order{}).
		Where(clause, args...).
		Preload("Items.Product").
		// Relation-scoped filter: only this dealer's routing rows are
		// loaded, not post-filtered in memory.
		Preload("Routings", "dealer_id = ?", dealerID).
		Preload("Routings.Dealer").
		Preload("User").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list dealer orders: %w", err)
	}

	return composeOrderViews(orders, true), nil
}

// composeOrderViews は注文レコードを非正規化レスポンスに変換
// The user's phone number is visible to dealers only.
func composeOrderViews(orders []model.Order, includePhone bool) []model.OrderView {
	views := make([]model.OrderView, 0, len(orders))
	for _, order := range orders {
		user := model.OrderUser{
			ID:    order.User.ID,
			Name:  order.User.Name,
			Email: order.User.Email,
		}
		if includePhone {
			user.Phone = order.User.Phone
		}

		views = append(views, model.OrderView{
			ID:          order.ID,
			OrderNumber: order.OrderNumber,
			Status:      order.Status,
			TotalAmount: order.TotalAmount,
			User:        user,
			Items:       order.Items,
			Routing:     order.Routings,
			CreatedAt:   order.CreatedAt,
		})
	}
	return views
}
