package models

import "time"

// Product represents products table. Price is stored in minor currency units.
type Product struct {
	ProductID   uint      `gorm:"primaryKey;column:product_id" json:"product_id"`
	ProductName string    `gorm:"type:varchar(200);not null" json:"product_name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Price       int64     `gorm:"not null;check:price > 0" json:"price"`
	ImageURL    *string   `gorm:"type:text;column:image_url" json:"image_url,omitempty"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}
