package service

import (
	"testing"
	"time"

	"crane-parts-backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func Test_routedToDealerClause(t *testing.T) {
	t.Run("dealer only", func(t *testing.T) {
		clause, args := routedToDealerClause("dealer-001", "")
		assert.Equal(t,
			"EXISTS (SELECT 1 FROM routings WHERE routings.order_id = orders.id AND routings.dealer_id = ?)",
			clause)
		assert.Equal(t, []interface{}{"dealer-001"}, args)
	})

	t.Run("status narrows the same routing row", func(t *testing.T) {
		clause, args := routedToDealerClause("dealer-001", "accepted")
		// One EXISTS with both conditions, not two independent existentials.
		assert.Equal(t,
			"EXISTS (SELECT 1 FROM routings WHERE routings.order_id = orders.id AND routings.dealer_id = ? AND routings.status = ?)",
			clause)
		assert.Equal(t, []interface{}{"dealer-001", "accepted"}, args)
	})
}

func sampleOrders() []model.Order {
	return []model.Order{
		{
			ID:          "ord-1",
			OrderNumber: "ORD-2024-0001",
			Status:      model.OrderStatusProcessing,
			TotalAmount: 4170,
			User: model.User{
				ID:    "usr-1",
				Name:  "Carl Customer",
				Email: "carl@example.com",
				Phone: "+49-30-555-1004",
			},
			Items: []model.OrderItem{
				{ID: "itm-1", OrderID: "ord-1", ProductID: "prd-1", Quantity: 1, UnitPrice: 2890},
			},
			Routings: []model.Routing{
				{ID: "rt-1", OrderID: "ord-1", DealerID: "dlr-1", Status: model.RoutingStatusAssigned},
				{ID: "rt-2", OrderID: "ord-1", DealerID: "dlr-2", Status: model.RoutingStatusAccepted},
			},
			CreatedAt: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
		},
	}
}

func Test_composeOrderViews_adminOmitsPhone(t *testing.T) {
	views := composeOrderViews(sampleOrders(), false)

	assert.Len(t, views, 1)
	assert.Equal(t, "usr-1", views[0].User.ID)
	assert.Equal(t, "Carl Customer", views[0].User.Name)
	assert.Equal(t, "carl@example.com", views[0].User.Email)
	assert.Empty(t, views[0].User.Phone)

	// The routing fan-out passes through untouched for administrators.
	assert.Len(t, views[0].Routing, 2)
	assert.Len(t, views[0].Items, 1)
}

func Test_composeOrderViews_dealerSeesPhone(t *testing.T) {
	views := composeOrderViews(sampleOrders(), true)

	assert.Len(t, views, 1)
	assert.Equal(t, "+49-30-555-1004", views[0].User.Phone)
}

func Test_composeOrderViews_emptyInput(t *testing.T) {
	views := composeOrderViews(nil, false)

	assert.NotNil(t, views)
	assert.Empty(t, views)
}
