package models

import "time"

// Category represents categories table. The taxonomy is two levels deep:
// root categories have ParentID nil, subcategories point at a root.
type Category struct {
	CategoryID   uint      `gorm:"primaryKey;column:category_id" json:"category_id"`
	CategoryName string    `gorm:"type:varchar(100);not null" json:"category_name"`
	ParentID     *uint     `gorm:"index" json:"parent_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Parent        *Category  `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	SubCategories []Category `gorm:"foreignKey:ParentID" json:"sub_categories,omitempty"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}

// IsRoot reports whether the category sits at the top of the taxonomy.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
