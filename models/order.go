package models

import "time"

// OrderStatus type for order lifecycle states
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusConfirmed  OrderStatus = "CONFIRMED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCanceled   OrderStatus = "CANCELED"
)

// statusTransitions is the explicit transition table for the order
// lifecycle. DELIVERED and CANCELED are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusCanceled},
	StatusProcessing: {StatusConfirmed, StatusCanceled},
	StatusConfirmed:  {StatusDelivered, StatusCanceled},
	StatusDelivered:  {},
	StatusCanceled:   {},
}

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// Terminal reports whether no further transitions leave s.
func (s OrderStatus) Terminal() bool {
	return len(statusTransitions[s]) == 0 && s.Valid()
}

// CanTransitionTo reports whether the transition table allows moving from
// s to next. Re-setting the current status is always allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Counted reports whether orders in this status count as real orders for
// dashboard purposes. Orders still in the basket (PENDING) and canceled
// orders do not.
func (s OrderStatus) Counted() bool {
	return s != StatusPending && s != StatusCanceled
}

// DeliveryType type for order fulfilment
type DeliveryType string

const (
	DeliveryCourier DeliveryType = "DELIVERY"
	DeliveryPickup  DeliveryType = "PICKUP"
)

// Order represents orders table. Total is fixed at creation time and is
// never recomputed from items afterwards.
type Order struct {
	OrderID        uint         `gorm:"primaryKey;column:order_id" json:"order_id"`
	UserID         uint         `gorm:"not null;index" json:"user_id"`
	Status         OrderStatus  `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	Total          int64        `gorm:"not null" json:"total"`
	DeliveryType   DeliveryType `gorm:"type:varchar(20);not null" json:"delivery_type"`
	DeliveryAt     time.Time    `gorm:"not null" json:"delivery_at"`
	RecipientName  string       `gorm:"type:varchar(100);not null" json:"recipient_name"`
	RecipientPhone string       `gorm:"type:varchar(20);not null" json:"recipient_phone"`

	// Address fields, required when DeliveryType is DELIVERY
	Address   *string `gorm:"type:text" json:"address,omitempty"`
	Apartment *string `gorm:"type:varchar(20)" json:"apartment,omitempty"`
	Entrance  *string `gorm:"type:varchar(20)" json:"entrance,omitempty"`
	Room      *string `gorm:"type:varchar(20)" json:"room,omitempty"`

	// IdempotencyKey guards against duplicate checkout submissions.
	IdempotencyKey *string `gorm:"type:varchar(64);unique" json:"idempotency_key,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents order_items table. Name and Price are value
// snapshots captured at checkout, so historical totals stay stable when
// the referenced product is edited or deleted later.
type OrderItem struct {
	ItemID    uint      `gorm:"primaryKey;column:item_id" json:"item_id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	Price     int64     `gorm:"not null" json:"price"`
	Quantity  int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for OrderItem
func (OrderItem) TableName() string {
	return "order_items"
}

// Subtotal returns the line total for the item.
func (i OrderItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}
