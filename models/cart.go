package models

import "time"

// CartItem represents cart_items table, used by the database-backed cart
// store. SessionID scopes items to one anonymous shopping session.
type CartItem struct {
	CartItemID uint      `gorm:"primaryKey;column:cart_item_id" json:"cart_item_id"`
	SessionID  string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_cart_session_product" json:"session_id"`
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_cart_session_product" json:"product_id"`
	Quantity   int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for CartItem
func (CartItem) TableName() string {
	return "cart_items"
}
