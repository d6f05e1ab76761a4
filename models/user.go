package models

import "time"

// UserRole type for user roles
type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleAdmin    UserRole = "ADMIN"
)

// User represents users table
type User struct {
	UserID       uint     `gorm:"primaryKey;column:user_id" json:"user_id"`
	FullName     string   `gorm:"type:varchar(100);not null" json:"full_name"`
	Phone        string   `gorm:"type:varchar(20);not null;unique" json:"phone"`
	Email        *string  `gorm:"type:varchar(100)" json:"email,omitempty"`
	PasswordHash string   `gorm:"type:varchar(100)" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'CUSTOMER'" json:"role"`

	// Default delivery address
	Address   *string `gorm:"type:text" json:"address,omitempty"`
	Apartment *string `gorm:"type:varchar(20)" json:"apartment,omitempty"`
	Entrance  *string `gorm:"type:varchar(20)" json:"entrance,omitempty"`
	Room      *string `gorm:"type:varchar(20)" json:"room,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
