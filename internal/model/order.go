package model

import "time"

// Order status values observed in production data. Transitions are not
// validated at this layer; filters treat status as an opaque string, so an
// unknown value simply matches zero rows.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Routing status values, independent of the order status.
const (
	RoutingStatusAssigned  = "assigned"
	RoutingStatusAccepted  = "accepted"
	RoutingStatusFulfilled = "fulfilled"
)

// Order is a customer order. Items are owned and removed with the order;
// routings fan the order out to one or more dealers.
type Order struct {
	ID          string      `json:"id" gorm:"type:varchar(36);primaryKey"`
	OrderNumber string      `json:"order_number" gorm:"type:varchar(32);uniqueIndex;not null"`
	UserID      string      `json:"user_id" gorm:"type:varchar(36);not null;index"`
	User        User        `json:"-"`
	Status      string      `json:"status" gorm:"type:varchar(30);not null;index"`
	TotalAmount float64     `json:"total_amount"`
	Items       []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Routings    []Routing   `json:"routing" gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderItem is a line item with the unit price snapshotted at order time.
type OrderItem struct {
	ID        string  `json:"id" gorm:"type:varchar(36);primaryKey"`
	OrderID   string  `json:"order_id" gorm:"type:varchar(36);not null;index"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36);not null;index"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	UnitPrice float64 `json:"unit_price" gorm:"not null"`
	Product   Product `json:"product"`
}

// Routing assigns an order to a dealer. Its status is tracked separately
// from the order status.
type Routing struct {
	ID         string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	OrderID    string    `json:"order_id" gorm:"type:varchar(36);not null;index"`
	DealerID   string    `json:"dealer_id" gorm:"type:varchar(36);not null;index"`
	Dealer     Dealer    `json:"dealer"`
	Status     string    `json:"status" gorm:"type:varchar(30);not null"`
	AssignedAt time.Time `json:"assigned_at"`
}

// OrderUser is the projection of the owning user embedded in order
// listings. Phone is populated on the dealer view only; administrators do
// not see it.
type OrderUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// OrderView is the denormalized order record served by the listing
// endpoints. The routing slice is the full fan-out for administrators and
// the dealer's own rows only on the dealer endpoint.
type OrderView struct {
	ID          string      `json:"id"`
	OrderNumber string      `json:"order_number"`
	Status      string      `json:"status"`
	TotalAmount float64     `json:"total_amount"`
	User        OrderUser   `json:"user"`
	Items       []OrderItem `json:"items"`
	Routing     []Routing   `json:"routing"`
	CreatedAt   time.Time   `json:"created_at"`
}
